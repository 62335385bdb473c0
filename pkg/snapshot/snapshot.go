// Package snapshot saves the presented frame as a PNG, oriented as it is
// displayed, to a local directory or an S3 bucket.
package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"mirror-frame/pkg/geometry"
	"mirror-frame/pkg/media"
)

// Taker encodes and stores snapshots in the background.
type Taker struct {
	store    Store
	maxWidth int
	now      func() time.Time

	wg sync.WaitGroup
}

// NewTaker creates a taker writing to store. maxWidth limits the snapshot
// width, 0 keeps the content size.
func NewTaker(store Store, maxWidth int) *Taker {
	return &Taker{store: store, maxWidth: maxWidth, now: time.Now}
}

// Encode converts frame to a PNG oriented with o.
func (t *Taker) Encode(frame *media.Frame, o geometry.Orientation) ([]byte, error) {
	src, err := ToImage(frame)
	if err != nil {
		return nil, err
	}
	img, err := Orient(src, o)
	if err != nil {
		return nil, err
	}
	img = Downscale(img, t.maxWidth)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func (t *Taker) name() string {
	return fmt.Sprintf("mirror-%s-%s.png", t.now().Format("20060102-150405"), uuid.New().String())
}

// Take encodes frame and stores it, returning its location. frame must not
// be modified until Take returns.
func (t *Taker) Take(ctx context.Context, frame *media.Frame, o geometry.Orientation) (string, error) {
	data, err := t.Encode(frame, o)
	if err != nil {
		return "", err
	}
	return t.store.Put(ctx, t.name(), data)
}

// TakeAsync runs Take on its own goroutine and logs the outcome. The frame is
// owned by the taker afterwards. A requested snapshot is completed even if ctx
// is canceled later; Wait blocks until it is stored.
func (t *Taker) TakeAsync(ctx context.Context, frame *media.Frame, o geometry.Orientation) {
	ctx = context.WithoutCancel(ctx)
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		start := time.Now()
		location, err := t.Take(ctx, frame, o)
		if err != nil {
			log.Printf("Snapshot: failed: %v", err)
			return
		}
		log.Printf("Snapshot: saved %s in %v", location, time.Since(start).Round(time.Millisecond))
	}()
}

// Wait blocks until background snapshots are done.
func (t *Taker) Wait() {
	t.wg.Wait()
}
