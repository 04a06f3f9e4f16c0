package slimetrain

// Aimer turns a held aim button into a throw. Holding starts the throw speed
// at the configured minimum and grows it at ThrowChargeRate per second up to
// the maximum; releasing fires once.
type Aimer struct {
	speed Range
	rate  float64

	arrowDistance float64
	arrowBase     float64
	arrowStretch  float64

	charging bool
	charge   float64
}

// NewAimer creates an aimer from the throw and arrow settings in cfg.
func NewAimer(cfg Config) *Aimer {
	return &Aimer{
		speed:         cfg.ThrowSpeed(),
		rate:          cfg.ThrowChargeRate,
		arrowDistance: cfg.ArrowDistance,
		arrowBase:     cfg.ArrowBaseLength,
		arrowStretch:  cfg.ArrowStretch,
	}
}

// Update advances the charge. It returns the throw speed and true on the
// frame the button is released after being held.
func (a *Aimer) Update(held bool, dt float64) (speed float64, released bool) {
	if held {
		if !a.charging {
			a.charging = true
			a.charge = a.speed.Min
			return 0, false
		}
		a.charge = a.speed.Clamp(a.charge + a.rate*dt)
		return 0, false
	}
	if !a.charging {
		return 0, false
	}
	speed = a.charge
	a.charging = false
	a.charge = 0
	return speed, true
}

// Charging reports whether the aim button is currently held.
func (a *Aimer) Charging() bool {
	return a.charging
}

// Charge returns the speed a release would throw at, or 0 when idle.
func (a *Aimer) Charge() float64 {
	return a.charge
}

// ArrowPose places the aim arrow: Base is where the arrow starts, Angle its
// direction in radians, and Length grows with the charge.
type ArrowPose struct {
	Base   Vec2
	Angle  float64
	Length float64
}

// Tip returns the arrow's far end.
func (p ArrowPose) Tip() Vec2 {
	return p.Base.Add(FromAngle(p.Angle).Scale(p.Length))
}

// Arrow returns the arrow pose for a charge aimed from leader toward cursor.
// ok is false while not charging.
func (a *Aimer) Arrow(leader, cursor Vec2) (pose ArrowPose, ok bool) {
	if !a.charging {
		return ArrowPose{}, false
	}
	dir := AimDirection(leader, cursor)
	return ArrowPose{
		Base:   leader.Add(dir.Scale(a.arrowDistance)),
		Angle:  dir.Angle(),
		Length: a.arrowBase + a.charge*a.arrowStretch,
	}, true
}

// AimDirection returns the unit vector from "from" toward "to". When the two
// points coincide it falls back to +X so a throw always has a direction.
func AimDirection(from, to Vec2) Vec2 {
	d := to.Sub(from).Normalize()
	if d.IsZero() {
		return Vec2{1, 0}
	}
	return d
}
