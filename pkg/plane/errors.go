package plane

import "errors"

// Error taxonomy of the plane model. Callers distinguish failures with
// errors.Is; every failure surfaces synchronously and nothing is retried.
var (
	// ErrImageLoad reports an image-set location that is neither a directory
	// containing recognizable images nor a single recognizable image file.
	ErrImageLoad = errors.New("image set not loadable")

	// ErrGeometry reports degenerate plane geometry (collinear nodes).
	ErrGeometry = errors.New("degenerate plane geometry")

	// ErrInvalidState reports an operation that requires a loaded image set
	// or an initialized plane.
	ErrInvalidState = errors.New("image plane not in a valid state")

	// ErrArity reports a node position sequence whose length does not match
	// the plane's node count.
	ErrArity = errors.New("node count mismatch")

	// ErrMissingKey reports settings input lacking a required key.
	ErrMissingKey = errors.New("missing required settings key")
)
