package waverider

// Snapshot contains the observable game state for replay and tests.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick  int
	Time  float64
	State string
	Mode  int // 0=Campaign, 1=Endless

	Score     int
	Bonus     int
	Collected int
	Active    int

	// Boat pose
	BoatX, BoatY, BoatZ float64
	BoatYaw             float64
	BoatSpeed           float64
	BoatPitch, BoatRoll float64
	Distance            float64

	// Camera
	CameraYaw, CameraPitch, CameraZoom float64
	CameraY                            float64
	HorizonHeading                     float64

	// Debris (each item is 4 values: ID, X, Z, Yaw)
	DebrisData []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	items := g.debris.Items()
	debris := make([]float64, 0, len(items)*4)
	for _, d := range items {
		p := d.Pos()
		debris = append(debris, float64(d.ID), p.X, p.Z, d.Yaw)
	}

	pitch, _, roll := g.boat.Euler()
	return Snapshot{
		Tick:           g.tickCount,
		Time:           g.Time(),
		State:          g.state,
		Mode:           int(g.mode),
		Score:          g.score,
		Bonus:          g.bonus,
		Collected:      g.debris.Collected(),
		Active:         g.debris.Active(),
		BoatX:          g.boat.Position.X,
		BoatY:          g.boat.Position.Y,
		BoatZ:          g.boat.Position.Z,
		BoatYaw:        g.boat.Yaw,
		BoatSpeed:      g.boat.Speed,
		BoatPitch:      pitch,
		BoatRoll:       roll,
		Distance:       g.boat.Distance(),
		CameraYaw:      g.orbit.Yaw,
		CameraPitch:    g.orbit.Pitch,
		CameraZoom:     g.orbit.Zoom,
		CameraY:        g.orbit.Position().Y,
		HorizonHeading: g.backdrop.Heading,
		DebrisData:     debris,
	}
}
