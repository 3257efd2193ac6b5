package golf

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
)

// LoadRaster reads a grayscale classification image from a PNG file.
func LoadRaster(path string) (*Raster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding course raster %s: %w", path, err)
	}
	return RasterFromImage(img), nil
}

// RasterFromImage converts any image into a grayscale raster.
func RasterFromImage(img image.Image) *Raster {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			pix[y*w+x] = g.Y
		}
	}
	return NewRaster(w, h, pix)
}

// DefaultCourse builds the synthetic 500x500 reference course: rough
// background, an out-of-bounds ring, a fairway corridor from the start to
// the pin, a green around the pin and a sand and a water patch flanking the
// corridor. Pixel values are the codes of DefaultTerrainTable.
func DefaultCourse() *Raster {
	const w, h = ImageSizeX, ImageSizeY
	pix := make([]uint8, w*h)

	set := func(x, y int, v uint8) {
		pix[(h-1-y)*w+x] = v
	}
	disc := func(cx, cy float64, radius float64, v uint8) {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if math.Hypot(float64(x)-cx, float64(y)-cy) <= radius {
					set(x, y, v)
				}
			}
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			set(x, y, uint8(CodeRough))
		}
	}

	// fairway corridor around the start-pin segment
	start := Point{StartX, StartY}
	pin := Point{PinX, PinY}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if distToSegment(Point{float64(x), float64(y)}, start, pin) <= 55 {
				set(x, y, uint8(CodeFairway))
			}
		}
	}

	disc(180, 300, 22, uint8(CodeSand))
	disc(355, 265, 38, uint8(CodeWater))
	disc(pin.X, pin.Y, 28, uint8(CodeGreen))

	// out-of-bounds ring
	const rim = 8
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < rim || x >= w-rim || y < rim || y >= h-rim {
				set(x, y, uint8(OutOfImageCode))
			}
		}
	}

	return NewRaster(w, h, pix)
}

func distToSegment(p, a, b Point) float64 {
	abx, aby := b.X-a.X, b.Y-a.Y
	apx, apy := p.X-a.X, p.Y-a.Y
	len2 := abx*abx + aby*aby
	if len2 == 0 {
		return p.Dist(a)
	}
	t := (apx*abx + apy*aby) / len2
	t = math.Max(0, math.Min(1, t))
	return p.Dist(Point{a.X + t*abx, a.Y + t*aby})
}
