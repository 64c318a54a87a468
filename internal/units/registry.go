package units

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownUnit is returned when a name is not in the catalog.
var ErrUnknownUnit = errors.New("unknown unit")

//
// Registry is the read-only catalog of valid units.
// It is built once and never mutated, so it is safe to share
// between any number of goroutines.
//
type Registry struct {
	byName   map[string]Unit
	byFamily map[Family][]Unit
	families []Family
}

var catalog = newRegistry(
	[]Unit{Celsius, Fahrenheit, Kelvin, Rankine},
	[]Unit{CubicFeet, CubicInches, Cups, Gallons, Liters, Tablespoons},
)

// Default returns the process-wide registry.
func Default() *Registry {
	return catalog
}

func newRegistry(groups ...[]Unit) *Registry {
	r := &Registry{
		byName:   make(map[string]Unit),
		byFamily: make(map[Family][]Unit),
	}
	for _, group := range groups {
		for _, u := range group {
			if _, ok := r.byFamily[u.Family()]; !ok {
				r.families = append(r.families, u.Family())
			}
			r.byName[u.Name()] = u
			r.byFamily[u.Family()] = append(r.byFamily[u.Family()], u)
		}
	}
	return r
}

//
// Resolve looks a unit up by name.
// The name is lower-cased before comparison, otherwise the match is exact.
//
func (r *Registry) Resolve(name string) (Unit, error) {
	u, ok := r.byName[strings.ToLower(name)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownUnit, "%q", name)
	}
	return u, nil
}

// FamiliesMatch reports whether both names resolve and share a family.
func (r *Registry) FamiliesMatch(a, b string) bool {
	ua, err := r.Resolve(a)
	if err != nil {
		return false
	}
	ub, err := r.Resolve(b)
	if err != nil {
		return false
	}
	return ua.Family() == ub.Family()
}

// Units returns the members of a family in catalog order.
// The returned slice is a copy.
func (r *Registry) Units(f Family) []Unit {
	members := r.byFamily[f]
	out := make([]Unit, len(members))
	copy(out, members)
	return out
}

// Families returns the registered families in catalog order.
func (r *Registry) Families() []Family {
	out := make([]Family, len(r.families))
	copy(out, r.families)
	return out
}

// ParseFamily resolves a family by its name, case-insensitively.
func (r *Registry) ParseFamily(name string) (Family, bool) {
	for _, f := range r.families {
		if strings.EqualFold(f.String(), name) {
			return f, true
		}
	}
	return 0, false
}
