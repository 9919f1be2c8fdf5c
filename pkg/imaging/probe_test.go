package imaging

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writePNG writes a width x height PNG at path.
func writePNG(t *testing.T, path string, width, height int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

// TestIsImageFile verifies that detection is driven by content, not by
// extension.
func TestIsImageFile(t *testing.T) {
	dir := t.TempDir()

	real := filepath.Join(dir, "real.png")
	writePNG(t, real, 4, 4)
	if !IsImageFile(real) {
		t.Errorf("expected %s to be recognized as an image", real)
	}

	// A text file wearing a .png extension must be rejected.
	fake := filepath.Join(dir, "fake.png")
	if err := os.WriteFile(fake, []byte("not an image"), 0644); err != nil {
		t.Fatalf("write fake image: %v", err)
	}
	if IsImageFile(fake) {
		t.Errorf("expected %s to be rejected by content sniffing", fake)
	}

	if IsImageFile(filepath.Join(dir, "missing.png")) {
		t.Error("expected a missing file to be rejected")
	}
}

// TestDimensions verifies pixel dimension probing and its (-1,-1) failure
// convention.
func TestDimensions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "img.png")
	writePNG(t, path, 20, 10)

	w, h := Dimensions(path)
	if w != 20 || h != 10 {
		t.Errorf("Dimensions = (%d, %d), want (20, 10)", w, h)
	}

	w, h = Dimensions(filepath.Join(dir, "missing.png"))
	if w != -1 || h != -1 {
		t.Errorf("Dimensions of missing file = (%d, %d), want (-1, -1)", w, h)
	}
}

// TestNewStackFromLocation verifies directory enumeration: content-sniffed
// filtering, natural ordering and first-frame dimension probing.
func TestNewStackFromLocation(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"img10.png", "img2.png", "img1.png"} {
		writePNG(t, filepath.Join(dir, name), 6, 3)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644); err != nil {
		t.Fatalf("write notes: %v", err)
	}

	stack, err := NewStackFromLocation(dir)
	if err != nil {
		t.Fatalf("NewStackFromLocation: %v", err)
	}
	if stack.FrameCount() != 3 {
		t.Fatalf("expected 3 frames, got %d", stack.FrameCount())
	}
	want := []string{"img1.png", "img2.png", "img10.png"}
	for i, w := range want {
		if filepath.Base(stack.Paths[i]) != w {
			t.Errorf("frame %d = %q, want %q", i, filepath.Base(stack.Paths[i]), w)
		}
	}
	if stack.Width != 6 || stack.Height != 3 {
		t.Errorf("stack dimensions = (%d, %d), want (6, 3)", stack.Width, stack.Height)
	}
}

// TestNewStackFromSingleFile verifies that one recognized image becomes a
// 1-frame stack.
func TestNewStackFromSingleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "only.png")
	writePNG(t, path, 8, 8)

	stack, err := NewStackFromLocation(path)
	if err != nil {
		t.Fatalf("NewStackFromLocation: %v", err)
	}
	if stack.FrameCount() != 1 {
		t.Errorf("expected 1 frame, got %d", stack.FrameCount())
	}
}

// TestNewStackFromLocationFailures verifies error paths: missing location,
// non-image file, directory with no images.
func TestNewStackFromLocationFailures(t *testing.T) {
	dir := t.TempDir()

	if _, err := NewStackFromLocation(filepath.Join(dir, "nope")); err == nil {
		t.Error("expected error for a missing location")
	}

	text := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(text, []byte("text"), 0644); err != nil {
		t.Fatalf("write text file: %v", err)
	}
	if _, err := NewStackFromLocation(text); err == nil {
		t.Error("expected error for a non-image file")
	}

	empty := filepath.Join(dir, "empty")
	if err := os.Mkdir(empty, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if _, err := NewStackFromLocation(empty); err == nil {
		t.Error("expected error for a directory with no images")
	}
}
