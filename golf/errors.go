package golf

import "fmt"

// UnclassifiedTerrainError signals a raster value with no entry in the
// terrain table. It is a configuration defect (raster and table disagree),
// not a recoverable condition.
type UnclassifiedTerrainError struct {
	Code TerrainCode
}

func (e *UnclassifiedTerrainError) Error() string {
	return fmt.Sprintf("cannot convert pixel intensity %d to terrain info", e.Code)
}

// ShoreResolutionError signals that the shoreline walk did not leave the
// hazard within the iteration bound. The bound is the raster diagonal, so
// hitting it means the table maps too much of the raster to a shore action.
type ShoreResolutionError struct {
	Bound int
	X, Y  float64
}

func (e *ShoreResolutionError) Error() string {
	return fmt.Sprintf("no shore found within %d steps from (%.1f, %.1f)", e.Bound, e.X, e.Y)
}
