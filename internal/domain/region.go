package domain

import "slices"

// Regions is the immutable, ordered list of service areas.
type Regions struct {
	names []string
}

// NewRegions freezes names into a Regions value.
func NewRegions(names []string) Regions {
	return Regions{names: slices.Clone(names)}
}

// List returns the region names in their configured order. Callers own the
// returned slice.
func (r Regions) List() []string {
	if r.names == nil {
		return []string{}
	}
	return slices.Clone(r.names)
}
