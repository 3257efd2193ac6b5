package golf

import (
	"bytes"
	"testing"
)

func TestRenderObservationShape(t *testing.T) {
	r := uniformRaster(10, 10, uint8(CodeFairway))
	img := RenderObservation(r, 5, 5, Point{5, 9})

	b := img.Bounds()
	if b.Dx() != StateImageWidth || b.Dy() != StateImageHeight {
		t.Fatalf("observation is %dx%d, want %dx%d", b.Dx(), b.Dy(), StateImageWidth, StateImageHeight)
	}
}

func TestRenderObservationOutsideFill(t *testing.T) {
	// a raster much smaller than the window: most samples are outside
	r := uniformRaster(10, 10, uint8(CodeFairway))
	img := RenderObservation(r, 5, 5, Point{5, 9})

	corners := [][2]int{{0, 0}, {StateImageWidth - 1, 0}, {0, StateImageHeight - 1}, {StateImageWidth - 1, StateImageHeight - 1}}
	for _, c := range corners {
		if got := img.GrayAt(c[0], c[1]).Y; got != OutOfImageIntensity {
			t.Errorf("corner (%d, %d) = %d, want outside intensity %d", c[0], c[1], got, OutOfImageIntensity)
		}
	}
}

func TestRenderObservationOrientation(t *testing.T) {
	// ball at (250, 100) with the pin straight above: the egocentric frame's
	// first axis points along +y. Mark the raster 50 pixels above the ball.
	const mark = 99
	pix := make([]uint8, 500*500)
	for i := range pix {
		pix[i] = uint8(CodeFairway)
	}
	r := NewRaster(500, 500, pix)
	r.pix[(500-1-150)*500+250] = mark // (x=250, y=150)

	img := RenderObservation(r, 250, 100, Point{250, 400})

	// local (along=50, across=0) is window row ri=50-offset, column ci=w/2,
	// mirrored into the output
	ri := 50 - StateImageOffsetHeight
	ci := StateImageWidth / 2
	got := img.GrayAt(StateImageWidth-1-ci, StateImageHeight-1-ri).Y
	if got != mark {
		t.Errorf("marked pixel = %d at mirrored position, want %d", got, mark)
	}
}

func TestRenderObservationPure(t *testing.T) {
	r := DefaultCourse()
	a := RenderObservation(r, StartX, StartY, Point{PinX, PinY})
	b := RenderObservation(r, StartX, StartY, Point{PinX, PinY})
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("repeated renders of the same position differ")
	}
}
