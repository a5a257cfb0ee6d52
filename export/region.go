package export

import (
	"fmt"
	"image"
)

// Region is a renderable surface resolved from an opaque handle. Rasterize
// captures the region's current visual appearance at the given oversampling
// scale; the exporter never looks inside the content it captures.
type Region interface {
	Rasterize(scale float64) (image.Image, error)
}

// Registry maps opaque handles to renderable regions. Handles are resolved
// at export time, so a region registered under a handle can change state
// freely between exports.
type Registry struct {
	regions map[string]Region
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{regions: make(map[string]Region)}
}

// Register binds handle to region, replacing any previous binding.
func (r *Registry) Register(handle string, region Region) {
	if r.regions == nil {
		r.regions = make(map[string]Region)
	}
	r.regions[handle] = region
}

// Resolve looks up handle. Handles that were never registered fail with
// ErrTargetNotFound.
func (r *Registry) Resolve(handle string) (Region, error) {
	region, ok := r.regions[handle]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, handle)
	}
	return region, nil
}
