package kernel

// Operator names a comparison a storage adapter must support.
type Operator int

const (
	// Equal is exact equality.
	Equal Operator = iota + 1
	// ContainsFold is a case-insensitive substring match on text.
	ContainsFold
	// NotEqual is exact inequality.
	NotEqual
)

func (o Operator) String() string {
	switch o {
	case Equal:
		return "eq"
	case ContainsFold:
		return "contains_fold"
	case NotEqual:
		return "ne"
	default:
		return "unknown"
	}
}

// Criterion is one declarative condition. Field is a logical field name owned
// by the aggregate package, never raw user input. Value is a string, a UUID or
// the textual form of an enum.
type Criterion struct {
	Field    string
	Operator Operator
	Value    any
}

// Specification is a conjunction of conditions over T.
type Specification[T any] struct {
	criteria   []Criterion
	predicates []func(T) bool
}

// MatchAll returns a specification satisfied by every candidate.
func MatchAll[T any]() Specification[T] {
	return Specification[T]{}
}

// NewSpecification pairs a criterion with the predicate that evaluates it in memory.
func NewSpecification[T any](c Criterion, predicate func(T) bool) Specification[T] {
	return Specification[T]{
		criteria:   []Criterion{c},
		predicates: []func(T) bool{predicate},
	}
}

// And returns the conjunction of s and other. Neither operand is modified.
func (s Specification[T]) And(other Specification[T]) Specification[T] {
	criteria := make([]Criterion, 0, len(s.criteria)+len(other.criteria))
	criteria = append(criteria, s.criteria...)
	criteria = append(criteria, other.criteria...)

	predicates := make([]func(T) bool, 0, len(s.predicates)+len(other.predicates))
	predicates = append(predicates, s.predicates...)
	predicates = append(predicates, other.predicates...)

	return Specification[T]{criteria: criteria, predicates: predicates}
}

func (s Specification[T]) IsSatisfiedBy(candidate T) bool {
	for _, p := range s.predicates {
		if !p(candidate) {
			return false
		}
	}
	return true
}

// Criteria returns a copy of the declarative conditions.
func (s Specification[T]) Criteria() []Criterion {
	out := make([]Criterion, len(s.criteria))
	copy(out, s.criteria)
	return out
}

func (s Specification[T]) IsEmpty() bool {
	return len(s.criteria) == 0
}
