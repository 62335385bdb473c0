package pattern

import "mirror-frame/pkg/media"

type yuv struct{ y, u, v byte }

// 75% bars, BT.601 limited range.
var bars = [...]yuv{
	{180, 128, 128}, // white
	{162, 44, 142},  // yellow
	{131, 156, 44},  // cyan
	{112, 72, 58},   // green
	{84, 184, 198},  // magenta
	{65, 100, 212},  // red
	{35, 212, 114},  // blue
	{16, 128, 128},  // black
}

const (
	bandHeight = 8
	bandStep   = 4
	bandLuma   = 235
)

// BandRow returns the first row of the moving band for frame index in a
// picture of the given height.
func BandRow(index uint64, height int) int {
	if height <= 0 {
		return 0
	}
	return int((index * bandStep) % uint64(height))
}

// Draw paints vertical color bars into f with a white band whose position
// depends on index. f must be a valid YUV420P frame.
func Draw(f *media.Frame, index uint64) {
	w, h := f.Width, f.Height
	cw, ch := media.ChromaSize(w, h)
	band := BandRow(index, h)

	for y := 0; y < h; y++ {
		row := f.Planes[0][y*f.Pitches[0] : y*f.Pitches[0]+w]
		inBand := y >= band && y < band+bandHeight
		for x := range row {
			if inBand {
				row[x] = bandLuma
				continue
			}
			row[x] = bars[barAt(x, w)].y
		}
	}
	for y := 0; y < ch; y++ {
		u := f.Planes[1][y*f.Pitches[1] : y*f.Pitches[1]+cw]
		v := f.Planes[2][y*f.Pitches[2] : y*f.Pitches[2]+cw]
		for x := 0; x < cw; x++ {
			b := bars[barAt(x*2, w)]
			u[x], v[x] = b.u, b.v
		}
	}
}

func barAt(x, width int) int {
	i := x * len(bars) / width
	if i >= len(bars) {
		i = len(bars) - 1
	}
	return i
}
