package guest

import (
	"strings"

	"parceltracker/internal/core/domain/model/kernel"
)

// Logical field names understood by storage adapters.
const (
	FieldName   = "name"
	FieldStatus = "status"
)

// Filter is a guest search request. Nil fields are ignored.
type Filter struct {
	Name   *string
	Status *Status
}

// Specification translates the filter. A non-empty Name matches
// case-insensitively anywhere in the guest name; Status matches exactly.
func (f Filter) Specification() kernel.Specification[*Guest] {
	spec := kernel.MatchAll[*Guest]()

	if f.Name != nil && *f.Name != "" {
		spec = spec.And(NameContains(*f.Name))
	}
	if f.Status != nil {
		spec = spec.And(StatusIs(*f.Status))
	}

	return spec
}

func NameContains(fragment string) kernel.Specification[*Guest] {
	needle := strings.ToLower(fragment)
	return kernel.NewSpecification(
		kernel.Criterion{Field: FieldName, Operator: kernel.ContainsFold, Value: fragment},
		func(g *Guest) bool { return strings.Contains(strings.ToLower(g.Name()), needle) },
	)
}

func StatusIs(status Status) kernel.Specification[*Guest] {
	return kernel.NewSpecification(
		kernel.Criterion{Field: FieldStatus, Operator: kernel.Equal, Value: status.String()},
		func(g *Guest) bool { return g.Status() == status },
	)
}
