package golf

import (
	"image"
	"image/color"
	"math"

	"github.com/zeu5/golf-rl/util"
	"gonum.org/v1/gonum/mat"
)

const (
	StateImageWidth        = 300
	StateImageHeight       = 300
	StateImageOffsetHeight = -20

	// intensity written for sampled pixels that fall outside the raster
	OutOfImageIntensity = 0
)

// Observation is what an agent sees after reset or a step: the egocentric
// view of the course and the remaining distance to the pin.
type Observation struct {
	Image         *image.Gray
	DistanceToPin float64
}

// RenderObservation resamples the raster into the egocentric frame of a ball
// at (x, y), the frame's first axis pointing at the pin. The window covers
// StateImageHeight rows from StateImageOffsetHeight onwards along the heading
// and StateImageWidth columns centered on the ball. Both output axes are
// mirrored: pixel (0,0) of the result is the far corner of the window. Any
// trained policy replays against exactly this orientation, so it must not
// change.
func RenderObservation(r *Raster, x, y float64, pin Point) *image.Gray {
	heading := math.Atan2(pin.Y-y, pin.X-x)
	t01 := util.RigidTransform2D(x, y, heading)

	img := image.NewGray(image.Rect(0, 0, StateImageWidth, StateImageHeight))
	local := mat.NewVecDense(3, nil)
	world := mat.NewVecDense(3, nil)

	for ri := 0; ri < StateImageHeight; ri++ {
		along := float64(ri + StateImageOffsetHeight)
		for ci := 0; ci < StateImageWidth; ci++ {
			across := float64(ci - StateImageWidth/2)

			local.SetVec(0, along)
			local.SetVec(1, across)
			local.SetVec(2, 1)
			world.MulVec(t01, local)

			x0 := int(math.Round(world.AtVec(0)))
			y0 := int(math.Round(world.AtVec(1)))

			v := uint8(OutOfImageIntensity)
			if r.Contains(x0, y0) {
				v = r.At(x0, y0)
			}
			img.SetGray(StateImageWidth-1-ci, StateImageHeight-1-ri, color.Gray{Y: v})
		}
	}
	return img
}
