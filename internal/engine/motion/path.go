package motion

// Path is the looping linear track shared by the boat and the creatures.
type Path struct {
	Speed  float32 // units per second
	Length float32 // reset threshold
	Param  float32
}

// DefaultPath returns the scene's 60 unit track at 2 units per second.
func DefaultPath() Path {
	return Path{Speed: 2.0, Length: 60.0}
}

// Advance moves the parameter by Speed*dt. On the tick that takes it past
// Length it resets to exactly zero. Returns true when it wrapped.
func (p *Path) Advance(dt float32) bool {
	p.Param += p.Speed * dt
	if p.Param > p.Length {
		p.Param = 0
		return true
	}
	return false
}
