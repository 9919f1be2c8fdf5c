package plane

import (
	"errors"
	"math"
	"testing"
)

// TestFrameTimeRoundTrip verifies FrameForTime inverts TimeForFrame for
// every frame of a 12-frame stack at 24 fps.
func TestFrameTimeRoundTrip(t *testing.T) {
	m, _ := newTestModel(t)
	dir := writeStack(t, 12, 8, 8)
	if err := m.LoadImageSet(dir); err != nil {
		t.Fatalf("LoadImageSet: %v", err)
	}
	if m.FrameCount() != 12 {
		t.Fatalf("frame count = %d, want 12", m.FrameCount())
	}

	const fps = 24.0
	for i := 0; i < m.FrameCount(); i++ {
		tm, err := m.TimeForFrame(i, fps)
		if err != nil {
			t.Fatalf("TimeForFrame(%d): %v", i, err)
		}
		back, err := m.FrameForTime(tm, fps)
		if err != nil {
			t.Fatalf("FrameForTime(%v): %v", tm, err)
		}
		if back != i {
			t.Errorf("round trip of frame %d gave %d (time %v)", i, back, tm)
		}
	}
}

// TestTimeForFrameCenteredIntervals verifies each frame maps to the centre
// of its sub-interval of the stack duration.
func TestTimeForFrameCenteredIntervals(t *testing.T) {
	m, _ := newTestModel(t)
	dir := writeStack(t, 4, 8, 8)
	if err := m.LoadImageSet(dir); err != nil {
		t.Fatalf("LoadImageSet: %v", err)
	}

	// 4 frames at 2 fps: duration 2s, frame width 0.5s, centres at
	// 0.25, 0.75, 1.25, 1.75.
	want := []float64{0.25, 0.75, 1.25, 1.75}
	for i, w := range want {
		tm, err := m.TimeForFrame(i, 2)
		if err != nil {
			t.Fatalf("TimeForFrame(%d): %v", i, err)
		}
		if math.Abs(tm-w) > tolerance {
			t.Errorf("TimeForFrame(%d) = %v, want %v", i, tm, w)
		}
	}
}

// TestFrameMappingInvalidState verifies the zero-frame and non-positive
// rate guards.
func TestFrameMappingInvalidState(t *testing.T) {
	m, _ := newTestModel(t)

	if _, err := m.TimeForFrame(0, 24); !errors.Is(err, ErrInvalidState) {
		t.Errorf("TimeForFrame with no frames: expected ErrInvalidState, got %v", err)
	}
	if _, err := m.FrameForTime(0, 24); !errors.Is(err, ErrInvalidState) {
		t.Errorf("FrameForTime with no frames: expected ErrInvalidState, got %v", err)
	}

	dir := writeStack(t, 2, 8, 8)
	if err := m.LoadImageSet(dir); err != nil {
		t.Fatalf("LoadImageSet: %v", err)
	}
	if _, err := m.TimeForFrame(0, 0); !errors.Is(err, ErrInvalidState) {
		t.Errorf("TimeForFrame with fps=0: expected ErrInvalidState, got %v", err)
	}
}
