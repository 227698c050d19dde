package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_KeySet_UnionIntersectionDifference(t *testing.T) {
	testCases := []struct {
		name     string
		a        []string
		b        []string
		union    []string
		inter    []string
		diffAB   []string
	}{
		{
			name:   "disjoint",
			a:      []string{"q0", "q1"},
			b:      []string{"q2"},
			union:  []string{"q0", "q1", "q2"},
			inter:  []string{},
			diffAB: []string{"q0", "q1"},
		},
		{
			name:   "overlapping",
			a:      []string{"q0", "q1"},
			b:      []string{"q1", "q2"},
			union:  []string{"q0", "q1", "q2"},
			inter:  []string{"q1"},
			diffAB: []string{"q0"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// setup
			assert := assert.New(t)
			a := StringSetOf(tc.a)
			b := StringSetOf(tc.b)

			// execute + assert
			assert.ElementsMatch(tc.union, a.Union(b).Elements())
			assert.ElementsMatch(tc.inter, a.Intersection(b).Elements())
			assert.ElementsMatch(tc.diffAB, a.Difference(b).Elements())
		})
	}
}

func Test_StringOrdered_IsCanonical(t *testing.T) {
	assert := assert.New(t)

	s1 := StringSetOf([]string{"q1", "q0", "q2"})
	s2 := StringSetOf([]string{"q2", "q1", "q0"})

	assert.Equal(StringOrdered[string](s1), StringOrdered[string](s2))
	assert.Equal("{q0, q1, q2}", StringOrdered[string](s1))
}
