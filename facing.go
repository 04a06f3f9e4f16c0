package slimetrain

// Facing selects which sprite sheet the leader and its followers show.
type Facing uint8

const (
	FacingDown Facing = iota // toward the camera (default)
	FacingUp                 // away from the camera
	FacingSide               // profile; mirrored with FlipX for left
)

// Orientation is the shared sprite signal: a sheet plus horizontal mirroring.
type Orientation struct {
	Facing Facing
	FlipX  bool
}

// FacingTracker derives the orientation from the leader's velocity. Horizontal
// movement wins over vertical, and the last orientation is kept at rest.
type FacingTracker struct {
	current Orientation
}

// Update folds in this frame's velocity and returns the orientation.
func (f *FacingTracker) Update(vel Vec2) Orientation {
	if vel.Y < 0 {
		f.current.Facing = FacingUp
	}
	if vel.Y > 0 {
		f.current.Facing = FacingDown
	}
	if vel.X > 0 {
		f.current.Facing = FacingSide
		f.current.FlipX = false
	}
	if vel.X < 0 {
		f.current.Facing = FacingSide
		f.current.FlipX = true
	}
	return f.current
}

// Current returns the last computed orientation.
func (f *FacingTracker) Current() Orientation {
	return f.current
}
