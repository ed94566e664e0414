package gfx

import (
	"context"
)

// PendingImage is the result of a decode running off the render thread.
// The render thread polls it once per frame and uploads the image when it
// arrives.
type PendingImage struct {
	Name string

	done chan struct{}
	img  Image
	err  error
}

// Go runs decode in a new goroutine.
func Go(name string, decode func() (Image, error)) *PendingImage {
	p := &PendingImage{Name: name, done: make(chan struct{})}
	go func() {
		defer close(p.done)
		p.img, p.err = decode()
	}()
	return p
}

// Resolved returns a PendingImage that is already complete.
func Resolved(name string, img Image, err error) *PendingImage {
	p := &PendingImage{Name: name, done: make(chan struct{}), img: img, err: err}
	close(p.done)
	return p
}

// Poll returns the result without blocking. ok is false while the decode
// is still running.
func (p *PendingImage) Poll() (img Image, err error, ok bool) {
	select {
	case <-p.done:
		return p.img, p.err, true
	default:
		return Image{}, nil, false
	}
}

// Wait blocks until the decode finishes or ctx is done.
func (p *PendingImage) Wait(ctx context.Context) (Image, error) {
	select {
	case <-p.done:
		return p.img, p.err
	case <-ctx.Done():
		return Image{}, ctx.Err()
	}
}
