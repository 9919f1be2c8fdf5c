package field

// Timekeeper holds the current animation time sampled by time-value fields.
// Scrubbing the timekeeper is how a consumer selects the rendered stack frame.
type Timekeeper struct {
	time float64
}

// NewTimekeeper returns a timekeeper at time zero.
func NewTimekeeper() *Timekeeper {
	return &Timekeeper{}
}

// SetTime sets the current animation time.
func (tk *Timekeeper) SetTime(t float64) {
	tk.time = t
}

// Time returns the current animation time.
func (tk *Timekeeper) Time() float64 {
	return tk.time
}
