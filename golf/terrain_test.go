package golf

import (
	"errors"
	"math"
	"testing"
)

// uniformRaster builds a w x h raster filled with a single code.
func uniformRaster(w, h int, fill uint8) *Raster {
	pix := make([]uint8, w*h)
	for i := range pix {
		pix[i] = fill
	}
	return NewRaster(w, h, pix)
}

func mustTerrainMap(t *testing.T, r *Raster, table map[TerrainCode]TerrainInfo) *TerrainMap {
	t.Helper()
	m, err := NewTerrainMap(r, table)
	if err != nil {
		t.Fatalf("building terrain map: %v", err)
	}
	return m
}

func TestClassifyReadsMirroredRows(t *testing.T) {
	// 3x3 raster, top-down rows: row y=2 is 1,2,3; y=1 is 4,5,6; y=0 is 7,8,9
	r := NewRaster(3, 3, []uint8{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	table := make(map[TerrainCode]TerrainInfo)
	for c := TerrainCode(0); c <= 9; c++ {
		table[c] = TerrainInfo{Name: "T", Reward: func(float64) float64 { return 0 }}
	}
	m := mustTerrainMap(t, r, table)

	cases := []struct {
		x, y float64
		want TerrainCode
	}{
		{0, 0, 7},
		{2, 0, 9},
		{0, 2, 1},
		{2, 2, 3},
		{1, 1, 5},
		{1.4, 0.6, 5}, // rounds to (1, 1)
		{0.5, 1.5, 2}, // half rounds away from zero to (1, 2)
	}
	for _, c := range cases {
		if got := m.Classify(c.x, c.y); got != c.want {
			t.Errorf("Classify(%f, %f) = %d, want %d", c.x, c.y, got, c.want)
		}
	}
}

func TestClassifyOutsideReturnsSentinel(t *testing.T) {
	m := mustTerrainMap(t, uniformRaster(10, 10, uint8(CodeFairway)), DefaultTerrainTable())

	outside := [][2]float64{
		{-1, 5}, {5, -1}, {10, 5}, {5, 10}, {-0.51, 0}, {9.51, 0},
	}
	for _, p := range outside {
		if got := m.Classify(p[0], p[1]); got != OutOfImageCode {
			t.Errorf("Classify(%f, %f) = %d, want sentinel %d", p[0], p[1], got, OutOfImageCode)
		}
	}
	// boundary pixels are inside (closed bounds)
	if got := m.Classify(0, 0); got != CodeFairway {
		t.Errorf("Classify(0, 0) = %d, want %d", got, CodeFairway)
	}
	if got := m.Classify(9.4, 9.4); got != CodeFairway {
		t.Errorf("Classify(9.4, 9.4) = %d, want %d", got, CodeFairway)
	}
}

func TestLookupUnclassified(t *testing.T) {
	m := mustTerrainMap(t, uniformRaster(4, 4, uint8(CodeFairway)), DefaultTerrainTable())

	_, err := m.Lookup(TerrainCode(123))
	var uerr *UnclassifiedTerrainError
	if !errors.As(err, &uerr) {
		t.Fatalf("Lookup(123) error = %v, want UnclassifiedTerrainError", err)
	}
	if uerr.Code != 123 {
		t.Errorf("error code = %d, want 123", uerr.Code)
	}
}

func TestNewTerrainMapChecksRasterCodes(t *testing.T) {
	r := uniformRaster(4, 4, 42) // 42 is not in the default table
	if _, err := NewTerrainMap(r, DefaultTerrainTable()); err == nil {
		t.Fatal("expected construction error for uncovered raster code")
	}

	table := map[TerrainCode]TerrainInfo{
		CodeFairway: {Name: "FAIRWAY", Reward: func(float64) float64 { return -1 }},
	}
	// sentinel missing
	if _, err := NewTerrainMap(uniformRaster(4, 4, uint8(CodeFairway)), table); err == nil {
		t.Fatal("expected construction error for missing sentinel entry")
	}
}

func TestGreenReward(t *testing.T) {
	reward := GreenReward()

	cases := []struct {
		d    float64
		want float64
	}{
		{0, -1},
		{1, -1},
		{3, -2},
		{15, -3},
		{100, -3},
		{2, -1.5}, // midpoint of (1,-1)-(3,-2)
		{9, -2.5}, // midpoint of (3,-2)-(15,-3)
		{500, -3}, // clamped right
		{-5, -1},  // clamped left
	}
	for _, c := range cases {
		if got := reward(c.d); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("GreenReward(%f) = %f, want %f", c.d, got, c.want)
		}
	}
}

func TestDefaultTerrainTable(t *testing.T) {
	table := DefaultTerrainTable()

	for code, info := range table {
		terminates := info.Terminates
		if (code == CodeGreen) != terminates {
			t.Errorf("%s terminates = %v", info.Name, terminates)
		}
	}
	if table[CodeWater].OnLand != OnLandShore {
		t.Errorf("water on-land action = %d, want shore", table[CodeWater].OnLand)
	}
	if table[OutOfImageCode].OnLand != OnLandRollback {
		t.Errorf("OB on-land action = %d, want rollback", table[OutOfImageCode].OnLand)
	}
	if got := table[CodeWater].Reward(10); got != -2 {
		t.Errorf("water reward = %f, want -2", got)
	}
	if got := table[OutOfImageCode].Reward(10); got != -3 {
		t.Errorf("OB reward = %f, want -3", got)
	}
	if table[CodeSand].DistCoef != 0.6 || table[CodeSand].DevCoef != 1.5 {
		t.Errorf("sand coefficients = (%f, %f), want (0.6, 1.5)", table[CodeSand].DistCoef, table[CodeSand].DevCoef)
	}
}

func TestDefaultCourseClassification(t *testing.T) {
	m := mustTerrainMap(t, DefaultCourse(), DefaultTerrainTable())

	if got := m.Classify(StartX, StartY); got != CodeFairway {
		t.Errorf("start classified as %d, want fairway %d", got, CodeFairway)
	}
	if got := m.Classify(PinX, PinY); got != CodeGreen {
		t.Errorf("pin classified as %d, want green %d", got, CodeGreen)
	}
	if got := m.Classify(0, 0); got != OutOfImageCode {
		t.Errorf("corner classified as %d, want OB %d", got, OutOfImageCode)
	}
}
