package snapshot

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"mirror-frame/pkg/geometry"
	"mirror-frame/pkg/media"
)

// ToImage wraps the planes of a YUV420P frame without copying them.
func ToImage(frame *media.Frame) (*image.YCbCr, error) {
	if err := frame.Validate(); err != nil {
		return nil, err
	}
	return &image.YCbCr{
		Y:              frame.Planes[0],
		Cb:             frame.Planes[1],
		Cr:             frame.Planes[2],
		YStride:        frame.Pitches[0],
		CStride:        frame.Pitches[1],
		SubsampleRatio: image.YCbCrSubsampleRatio420,
		Rect:           image.Rect(0, 0, frame.Width, frame.Height),
	}, nil
}

// orientationTransform returns the matrix mapping source coordinates to
// destination coordinates for a w x h source displayed with o.
func orientationTransform(o geometry.Orientation, w, h int) f64.Aff3 {
	W, H := float64(w), float64(h)
	switch o {
	case geometry.Orientation90:
		return f64.Aff3{0, -1, H, 1, 0, 0}
	case geometry.Orientation180:
		return f64.Aff3{-1, 0, W, 0, -1, H}
	case geometry.Orientation270:
		return f64.Aff3{0, 1, 0, -1, 0, W}
	case geometry.OrientationFlip0:
		return f64.Aff3{-1, 0, W, 0, 1, 0}
	case geometry.OrientationFlip90:
		return f64.Aff3{0, -1, H, -1, 0, W}
	case geometry.OrientationFlip180:
		return f64.Aff3{1, 0, 0, 0, -1, H}
	case geometry.OrientationFlip270:
		return f64.Aff3{0, 1, 0, 1, 0, 0}
	}
	return f64.Aff3{1, 0, 0, 0, 1, 0}
}

// Orient renders src as displayed with orientation o.
func Orient(src image.Image, o geometry.Orientation) (*image.RGBA, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("invalid orientation %d", o)
	}
	b := src.Bounds()
	if b.Min != (image.Point{}) {
		return nil, fmt.Errorf("source bounds %v must start at the origin", b)
	}

	size := geometry.OrientedSize(geometry.Size{Width: b.Dx(), Height: b.Dy()}, o)
	dst := image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))
	// pixel centers map to pixel centers, nearest neighbor is exact
	draw.NearestNeighbor.Transform(dst, orientationTransform(o, b.Dx(), b.Dy()), src, b, draw.Src, nil)
	return dst, nil
}

// Downscale shrinks img to maxWidth, keeping the aspect ratio. img is
// returned as is when it is narrow enough or maxWidth is 0.
func Downscale(img *image.RGBA, maxWidth int) *image.RGBA {
	b := img.Bounds()
	if maxWidth <= 0 || b.Dx() <= maxWidth {
		return img
	}
	height := max(1, b.Dy()*maxWidth/b.Dx())
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
