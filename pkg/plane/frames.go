package plane

import (
	"fmt"
	"math"
)

// FrameCount returns the number of frames in the loaded image stack.
func (m *Model) FrameCount() int {
	return m.frameCount
}

// TimeForFrame maps a frame index to its playback time. Frames occupy
// centered sub-intervals of the normalized [0,1] timeline scaled by the
// stack duration frameCount/framesPerSecond, so
//
//	time = (index/frameCount + 1/(2*frameCount)) * duration.
//
// Fails with ErrInvalidState when no frames are loaded or the rate is not
// positive.
func (m *Model) TimeForFrame(index int, framesPerSecond float64) (float64, error) {
	if err := m.checkFrameMapping(framesPerSecond); err != nil {
		return 0, err
	}
	frameSeparation := 1 / float64(m.frameCount)
	duration := float64(m.frameCount) / framesPerSecond
	initialOffset := frameSeparation / 2
	return (float64(index)*frameSeparation + initialOffset) * duration, nil
}

// FrameForTime inverts TimeForFrame, rounding to the nearest frame index.
// For every valid index i, FrameForTime(TimeForFrame(i)) == i.
func (m *Model) FrameForTime(t float64, framesPerSecond float64) (int, error) {
	if err := m.checkFrameMapping(framesPerSecond); err != nil {
		return 0, err
	}
	frameSeparation := 1 / float64(m.frameCount)
	duration := float64(m.frameCount) / framesPerSecond
	initialOffset := frameSeparation / 2
	return int(math.Round((t/duration - initialOffset) / frameSeparation)), nil
}

func (m *Model) checkFrameMapping(framesPerSecond float64) error {
	if m.frameCount <= 0 {
		return fmt.Errorf("%w: no frames loaded", ErrInvalidState)
	}
	if framesPerSecond <= 0 {
		return fmt.Errorf("%w: frames per second must be positive, got %v", ErrInvalidState, framesPerSecond)
	}
	return nil
}
