package gpu

import "errors"

var (
	// ErrNoAdapter is returned when no compatible graphics adapter or device exists.
	ErrNoAdapter = errors.New("gpu: no compatible adapter")

	// ErrSurfaceLost means the surface must be reconfigured before it can be used again.
	ErrSurfaceLost = errors.New("gpu: surface lost")

	// ErrSurfaceOutdated means the surface no longer matches its window.
	ErrSurfaceOutdated = errors.New("gpu: surface outdated")

	// ErrSurfaceTimeout means no image became available in time.
	ErrSurfaceTimeout = errors.New("gpu: surface timeout")

	// ErrOutOfMemory means the device ran out of memory. It is not recoverable.
	ErrOutOfMemory = errors.New("gpu: out of memory")
)
