// Package variant holds the certificate themes. Each Variant pairs a record
// and a prize Recipe built from the shape primitives and the shared panel
// layouts, with hand-tuned literal placements.
package variant

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknown is returned for a variant name outside the defined set.
var ErrUnknown = errors.New("unknown variant")

// Variant is a named theme with one recipe per certificate kind.
type Variant struct {
	Name   string
	Record Recipe
	Prize  Recipe
}

// Recipe returns the recipe for kind k.
func (v Variant) Recipe(k Kind) Recipe {
	if k == Prize {
		return v.Prize
	}
	return v.Record
}

var registry = []Variant{
	adventure(),
	medalFes(),
	swimHero(),
}

// Names lists the defined variants in canonical order.
func Names() []string {
	names := make([]string, len(registry))
	for i, v := range registry {
		names[i] = v.Name
	}
	return names
}

// Lookup returns the variant called name.
func Lookup(name string) (Variant, error) {
	i := slices.IndexFunc(registry, func(v Variant) bool { return v.Name == name })
	if i < 0 {
		return Variant{}, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return registry[i], nil
}

// Check verifies that every name is defined, reporting the first that is not.
func Check(names ...string) error {
	for _, n := range names {
		if _, err := Lookup(n); err != nil {
			return err
		}
	}
	return nil
}
