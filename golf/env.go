package golf

import (
	"fmt"
	"math"

	"github.com/zeu5/golf-rl/util"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	ImageSizeX = 500
	ImageSizeY = 500

	StartX = 256
	StartY = 116
	PinX   = 280
	PinY   = 430
)

// Point is a 2D position in raster pixel coordinates, origin at the bottom
// left.
type Point struct {
	X float64
	Y float64
}

func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

type EnvConfig struct {
	Start Point
	Pin   Point
	// Seed of the environment-private dispersion stream. Two environments
	// with the same seed and flight model produce identical episodes.
	Seed  uint64
	Debug bool
}

func DefaultEnvConfig() EnvConfig {
	return EnvConfig{
		Start: Point{StartX, StartY},
		Pin:   Point{PinX, PinY},
		Seed:  1,
	}
}

// EpisodeState is the full state of one episode. The engine hands out copies
// only; the authoritative instance is owned by the Env and replaced wholesale
// on Reset.
type EpisodeState struct {
	BallPos       Point
	DistanceToPin float64
	Code          TerrainCode
	Obs           *Observation
	StepN         int
}

// Env is the golf shot simulator. One episode is live at a time; Reset
// starts a new one, Step advances it. The terrain map is read-only and may
// be shared with other Env instances, the rest of the state is exclusively
// owned.
//
// Stepping after a terminal landing is caller error; the engine does not
// police it.
type Env struct {
	config  EnvConfig
	terrain *TerrainMap
	flight  FlightModel
	src     rand.Source

	state EpisodeState
	path  []Point
}

func NewEnv(terrain *TerrainMap, flight FlightModel, config EnvConfig) *Env {
	return &Env{
		config:  config,
		terrain: terrain,
		flight:  flight,
		src:     rand.NewSource(config.Seed),
		path:    make([]Point, 0),
	}
}

func (e *Env) Map() *TerrainMap { return e.terrain }

// State returns a copy of the current episode state.
func (e *Env) State() EpisodeState { return e.state }

// Path returns the positions visited so far, for external rendering.
func (e *Env) Path() []Point {
	p := make([]Point, len(e.path))
	copy(p, e.path)
	return p
}

// Reset starts a new episode at the configured start position and returns
// the initial observation.
func (e *Env) Reset() *Observation {
	start := e.config.Start
	e.path = append(e.path[:0], start)
	e.state = EpisodeState{
		BallPos:       start,
		DistanceToPin: start.Dist(e.config.Pin),
		Code:          e.terrain.Classify(start.X, start.Y),
	}
	e.state.Obs = &Observation{
		Image:         RenderObservation(e.terrain.Raster(), start.X, start.Y, e.config.Pin),
		DistanceToPin: e.state.DistanceToPin,
	}
	return e.state.Obs
}

// Step plays one shot. The angle is relative to the direction from the ball
// to the pin, in degrees; the magnitude is handed to the flight model as is.
// It returns the observation after the shot, the reward of the landing and
// whether the episode terminated.
func (e *Env) Step(angleDeg, magnitude float64) (*Observation, float64, bool, error) {
	e.state.StepN++

	cur, err := e.terrain.Lookup(e.state.Code)
	if err != nil {
		return nil, 0, false, err
	}

	distance, devX, devY := e.flight.Flight(magnitude)
	reduced := distance * cur.DistCoef

	// shot frame: x along the heading to the pin rotated by the action angle
	heading := math.Atan2(e.config.Pin.Y-e.state.BallPos.Y, e.config.Pin.X-e.state.BallPos.X)
	shotX := reduced + e.gauss(devX*cur.DevCoef)
	shotY := e.gauss(devY * cur.DevCoef)
	rot := util.Rotation2D(util.DegToRad(angleDeg) + heading)

	newPos := Point{
		X: e.state.BallPos.X + rot.At(0, 0)*shotX + rot.At(0, 1)*shotY,
		Y: e.state.BallPos.Y + rot.At(1, 0)*shotX + rot.At(1, 1)*shotY,
	}
	e.path = append(e.path, newPos)

	newCode := e.terrain.Classify(newPos.X, newPos.Y)
	landed, err := e.terrain.Lookup(newCode)
	if err != nil {
		return nil, 0, false, err
	}

	newDistance := newPos.Dist(e.config.Pin)
	reward := landed.Reward(newDistance)
	termination := landed.Terminates

	switch landed.OnLand {
	case OnLandNone:
		e.commit(newPos, newCode, newDistance)

	case OnLandRollback:
		// the ball returns to where the shot was taken; the duplicate path
		// entry marks the bounce-back for plots
		e.path = append(e.path, e.state.BallPos)

	case OnLandShore:
		newPos, err = e.resolveShore(newPos)
		if err != nil {
			return nil, 0, false, err
		}
		e.path = append(e.path, newPos)
		newCode = e.terrain.Classify(newPos.X, newPos.Y)
		if _, err := e.terrain.Lookup(newCode); err != nil {
			return nil, 0, false, err
		}
		e.commit(newPos, newCode, newPos.Dist(e.config.Pin))
	}

	if e.config.Debug {
		fmt.Printf("step %d: landed on %s dist_coef:%.2f dev_coef:%.2f on_land:%d termination:%v distance:%.1f reward:%.2f\n",
			e.state.StepN, landed.Name, cur.DistCoef, cur.DevCoef, landed.OnLand, termination, e.state.DistanceToPin, reward)
	}

	return e.state.Obs, reward, termination, nil
}

func (e *Env) commit(pos Point, code TerrainCode, distance float64) {
	e.state.BallPos = pos
	e.state.Code = code
	e.state.DistanceToPin = distance
	e.state.Obs = &Observation{
		Image:         RenderObservation(e.terrain.Raster(), pos.X, pos.Y, e.config.Pin),
		DistanceToPin: distance,
	}
}

// resolveShore walks the landing position one pixel at a time away from the
// pin until it leaves shore-action terrain. The walk is bounded by the
// raster diagonal: a longer walk means the table maps the whole outward ray
// to shore actions, which is a configuration defect.
func (e *Env) resolveShore(pos Point) (Point, error) {
	dx := pos.X - e.config.Pin.X
	dy := pos.Y - e.config.Pin.Y
	norm := math.Hypot(dx, dy)
	if norm == 0 {
		// landing exactly on the pin leaves the direction undefined
		dx, dy, norm = 1, 0, 1
	}
	dx /= norm
	dy /= norm

	bound := int(math.Ceil(e.terrain.Raster().Diagonal()))
	for i := 0; i < bound; i++ {
		pos.X += dx
		pos.Y += dy
		info, err := e.terrain.Lookup(e.terrain.Classify(pos.X, pos.Y))
		if err != nil {
			return Point{}, err
		}
		if info.OnLand != OnLandShore {
			return pos, nil
		}
	}
	return Point{}, &ShoreResolutionError{Bound: bound, X: pos.X, Y: pos.Y}
}

func (e *Env) gauss(sigma float64) float64 {
	if sigma == 0 {
		return 0
	}
	return distuv.Normal{Mu: 0, Sigma: sigma, Src: e.src}.Rand()
}
