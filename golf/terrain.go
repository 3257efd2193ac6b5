package golf

import (
	"math"

	"github.com/zeu5/golf-rl/util"
	"gonum.org/v1/gonum/interp"
)

// TerrainCode is a classification value read from the course raster.
type TerrainCode int

// OutOfImageCode is the sentinel code for positions outside the raster. It
// must always have an entry in the terrain table.
const OutOfImageCode TerrainCode = 0

// OnLandAction describes what happens to the ball after it lands.
type OnLandAction int

const (
	// OnLandNone settles the ball where it landed
	OnLandNone OnLandAction = iota
	// OnLandRollback returns the ball to its pre-shot position
	OnLandRollback
	// OnLandShore drifts the ball away from the pin until it leaves the hazard
	OnLandShore
)

// RewardFunc maps the distance to the pin of a landing to its reward.
type RewardFunc func(distanceToPin float64) float64

// TerrainInfo is the immutable per-terrain record of the table. DistCoef
// scales the flight distance of shots taken from this terrain, DevCoef
// scales their dispersion.
type TerrainInfo struct {
	Name       string
	DistCoef   float64
	DevCoef    float64
	OnLand     OnLandAction
	Terminates bool
	Reward     RewardFunc
}

const (
	CodeTee     TerrainCode = -1
	CodeWater   TerrainCode = 5
	CodeSand    TerrainCode = 50
	CodeRough   TerrainCode = 55
	CodeFairway TerrainCode = 70
	CodeGreen   TerrainCode = 80
)

func fixedReward(r float64) RewardFunc {
	return func(float64) float64 { return r }
}

// GreenReward returns the piecewise-linear green reward over distance to the
// pin, interpolating between the control points (0,-1) (1,-1) (3,-2) (15,-3)
// (100,-3) and holding the end values outside that range.
func GreenReward() RewardFunc {
	var pl interp.PiecewiseLinear
	if err := pl.Fit(
		[]float64{0, 1, 3, 15, 100},
		[]float64{-1, -1, -2, -3, -3},
	); err != nil {
		panic(err)
	}
	return func(d float64) float64 {
		return pl.Predict(math.Max(0, math.Min(100, d)))
	}
}

// DefaultTerrainTable is the canonical code to terrain mapping of the
// reference course.
func DefaultTerrainTable() map[TerrainCode]TerrainInfo {
	return map[TerrainCode]TerrainInfo{
		CodeTee:        {"TEE", 1.0, 1.0, OnLandNone, false, fixedReward(-1)},
		CodeFairway:    {"FAIRWAY", 1.0, 1.0, OnLandNone, false, fixedReward(-1)},
		CodeGreen:      {"GREEN", 1.0, 1.0, OnLandNone, true, GreenReward()},
		CodeSand:       {"SAND", 0.6, 1.5, OnLandNone, false, fixedReward(-1)},
		CodeWater:      {"WATER", 0.4, 1.0, OnLandShore, false, fixedReward(-2)},
		CodeRough:      {"ROUGH", 0.8, 1.5, OnLandNone, false, fixedReward(-1)},
		OutOfImageCode: {"OB", 1.0, 1.0, OnLandRollback, false, fixedReward(-3)},
	}
}

// Raster is an immutable grayscale classification surface addressed with the
// origin at the bottom-left corner, y increasing upwards.
type Raster struct {
	width  int
	height int
	// stored top-down as decoded, flipped on access
	pix []uint8
}

// NewRaster wraps a top-down row-major pixel buffer of the given dimensions.
// The buffer is copied.
func NewRaster(width, height int, pix []uint8) *Raster {
	p := make([]uint8, len(pix))
	copy(p, pix)
	return &Raster{width: width, height: height, pix: p}
}

func (r *Raster) Width() int  { return r.width }
func (r *Raster) Height() int { return r.height }

// At returns the pixel at column x, row y counted from the bottom.
func (r *Raster) At(x, y int) uint8 {
	return r.pix[(r.height-1-y)*r.width+x]
}

// Contains reports whether the pixel coordinate lies inside the raster,
// boundary included.
func (r *Raster) Contains(x, y int) bool {
	return util.IsWithin(
		[]float64{0, 0},
		[]float64{float64(r.width - 1), float64(r.height - 1)},
		[]float64{float64(x), float64(y)},
		true,
	)
}

// Diagonal returns the length of the raster diagonal in pixels.
func (r *Raster) Diagonal() float64 {
	return math.Hypot(float64(r.width), float64(r.height))
}

// TerrainMap pairs a raster with the terrain table and answers position
// classification queries. It is read-only after construction and safe to
// share between environment instances.
type TerrainMap struct {
	raster *Raster
	table  map[TerrainCode]TerrainInfo
}

// NewTerrainMap builds a terrain map, checking that every distinct raster
// value and the out-of-raster sentinel have a table entry. A missing code is
// returned as an UnclassifiedTerrainError so the mismatch is caught at
// construction instead of mid-episode.
func NewTerrainMap(raster *Raster, table map[TerrainCode]TerrainInfo) (*TerrainMap, error) {
	if _, ok := table[OutOfImageCode]; !ok {
		return nil, &UnclassifiedTerrainError{Code: OutOfImageCode}
	}
	seen := make(map[TerrainCode]bool)
	for _, v := range raster.pix {
		code := TerrainCode(v)
		if seen[code] {
			continue
		}
		seen[code] = true
		if _, ok := table[code]; !ok {
			return nil, &UnclassifiedTerrainError{Code: code}
		}
	}
	return &TerrainMap{raster: raster, table: table}, nil
}

func (m *TerrainMap) Raster() *Raster { return m.raster }

// Classify rounds the position to the nearest pixel and returns its raster
// value, or the sentinel code when the position is off the raster. Rounding
// is half away from zero so neighbouring sub-pixel positions classify
// consistently.
func (m *TerrainMap) Classify(x, y float64) TerrainCode {
	x0 := int(math.Round(x))
	y0 := int(math.Round(y))
	if !m.raster.Contains(x0, y0) {
		return OutOfImageCode
	}
	return TerrainCode(m.raster.At(x0, y0))
}

// Lookup resolves a code against the table. A miss is an
// UnclassifiedTerrainError; with a map that passed construction this only
// fires for codes that never came from Classify.
func (m *TerrainMap) Lookup(code TerrainCode) (TerrainInfo, error) {
	info, ok := m.table[code]
	if !ok {
		return TerrainInfo{}, &UnclassifiedTerrainError{Code: code}
	}
	return info, nil
}
