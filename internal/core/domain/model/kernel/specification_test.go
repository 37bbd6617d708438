package kernel_test

import (
	"strings"
	"testing"

	"parceltracker/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

type room struct {
	number string
	floor  int
}

func floorIs(n int) kernel.Specification[room] {
	return kernel.NewSpecification(
		kernel.Criterion{Field: "floor", Operator: kernel.Equal, Value: n},
		func(r room) bool { return r.floor == n },
	)
}

func numberContains(s string) kernel.Specification[room] {
	return kernel.NewSpecification(
		kernel.Criterion{Field: "number", Operator: kernel.ContainsFold, Value: s},
		func(r room) bool { return strings.Contains(strings.ToLower(r.number), strings.ToLower(s)) },
	)
}

func TestMatchAll(t *testing.T) {
	spec := kernel.MatchAll[room]()

	assert.True(t, spec.IsEmpty())
	assert.Empty(t, spec.Criteria())
	assert.True(t, spec.IsSatisfiedBy(room{}))
	assert.True(t, spec.IsSatisfiedBy(room{number: "12A", floor: 1}))
}

func TestSpecification_And(t *testing.T) {
	t.Run("should require every condition", func(t *testing.T) {
		spec := floorIs(1).And(numberContains("a"))

		assert.True(t, spec.IsSatisfiedBy(room{number: "12A", floor: 1}))
		assert.False(t, spec.IsSatisfiedBy(room{number: "12B", floor: 1}))
		assert.False(t, spec.IsSatisfiedBy(room{number: "22A", floor: 2}))
	})

	t.Run("should keep criteria in order", func(t *testing.T) {
		spec := kernel.MatchAll[room]().And(floorIs(1)).And(numberContains("a"))

		criteria := spec.Criteria()
		assert.Len(t, criteria, 2)
		assert.Equal(t, "floor", criteria[0].Field)
		assert.Equal(t, kernel.Equal, criteria[0].Operator)
		assert.Equal(t, "number", criteria[1].Field)
		assert.Equal(t, kernel.ContainsFold, criteria[1].Operator)
	})

	t.Run("should not modify operands", func(t *testing.T) {
		base := floorIs(1)
		_ = base.And(numberContains("a"))
		_ = base.And(numberContains("b"))

		assert.Len(t, base.Criteria(), 1)
		assert.True(t, base.IsSatisfiedBy(room{number: "12B", floor: 1}))
	})

	t.Run("Criteria returns a copy", func(t *testing.T) {
		spec := floorIs(1)
		criteria := spec.Criteria()
		criteria[0].Field = "hacked"

		assert.Equal(t, "floor", spec.Criteria()[0].Field)
	})
}

func TestOperator_String(t *testing.T) {
	assert.Equal(t, "eq", kernel.Equal.String())
	assert.Equal(t, "contains_fold", kernel.ContainsFold.String())
	assert.Equal(t, "ne", kernel.NotEqual.String())
	assert.Equal(t, "unknown", kernel.Operator(0).String())
}
