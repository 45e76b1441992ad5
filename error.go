package reloadbench

import "errors"

var (
	// ErrLaunch means the browser process could not be started or
	// connected to.
	ErrLaunch = errors.New("browser launch failed")

	// ErrMockScript means the mock init script could not be read.
	ErrMockScript = errors.New("read mock script")

	// ErrIterations means the configured iteration count is not positive.
	ErrIterations = errors.New("iteration count must be at least 1")
)
