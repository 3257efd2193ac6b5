package golf

import "math"

// FlightModel converts the magnitude component of an action into a flight
// distance and the dispersion of the shot. How the magnitude is interpreted
// (club index, raw distance, ...) is up to the implementation; the engine
// treats it as opaque.
type FlightModel interface {
	Flight(magnitude float64) (distance, devX, devY float64)
}

// Club is one entry of the skill model: a nominal carry with its along-shot
// and cross-shot dispersion, plus the distance window in which picking this
// club makes sense.
type Club struct {
	Name   string
	Carry  float64
	DevX   float64
	DevY   float64
	MinUse float64
	MaxUse float64
}

// Fits reports whether the club is a sensible pick for the given distance to
// the pin.
func (c Club) Fits(distance float64) bool {
	return c.MinUse <= distance && distance < c.MaxUse
}

// DefaultClubs is the reference bag, longest club first.
func DefaultClubs() []Club {
	return []Club{
		{"DR", 210, 30, 12, 180, math.Inf(1)},
		{"W3", 180, 26, 10, 150, 210},
		{"I3", 160, 22, 9, 130, 190},
		{"I5", 140, 18, 8, 110, 170},
		{"I7", 120, 14, 7, 90, 150},
		{"I9", 100, 10, 6, 70, 130},
		{"PW", 80, 8, 5, 40, 110},
		{"SW", 50, 6, 4, 10, 80},
		{"PT", 10, 2, 2, 0, 30},
	}
}

// ClubModel is a flight model that reads the magnitude as an index into a
// fixed bag of clubs. Out-of-range indices clamp to the nearest club.
type ClubModel struct {
	Clubs []Club
}

func NewClubModel() *ClubModel {
	return &ClubModel{Clubs: DefaultClubs()}
}

var _ FlightModel = &ClubModel{}

func (c *ClubModel) Flight(magnitude float64) (float64, float64, float64) {
	i := int(magnitude)
	if i < 0 {
		i = 0
	}
	if i >= len(c.Clubs) {
		i = len(c.Clubs) - 1
	}
	club := c.Clubs[i]
	return club.Carry, club.DevX, club.DevY
}

// FixedFlight always flies the configured distance with the configured
// dispersion, ignoring the magnitude. Useful for tests and noise-free runs.
type FixedFlight struct {
	Distance float64
	DevX     float64
	DevY     float64
}

var _ FlightModel = &FixedFlight{}

func (f *FixedFlight) Flight(float64) (float64, float64, float64) {
	return f.Distance, f.DevX, f.DevY
}
