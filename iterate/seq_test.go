package iterate

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEachSeq(t *testing.T) {
	s := []int{2, 4, 15, 22}
	var visited []int
	r := EachSeq(slices.Values(s), func(v int) {
		visited = append(visited, v)
	})
	assert.Equal(t, s, visited)

	// the returned sequence is the one passed in and can be ranged again
	assert.Equal(t, s, slices.Collect(r))
}

func TestEachSeqWithIndex(t *testing.T) {
	next := 0
	EachSeqWithIndex(slices.Values([]string{`a`, `b`, `c`}), func(v string, i int) {
		require.Equal(t, next, i)
		next++
	})
	assert.Equal(t, 3, next)
}

func TestEachSeq2(t *testing.T) {
	m := map[string]int{`a`: 1, `b`: 2}
	visited := map[string]int{}
	EachSeq2(maps.All(m), func(k string, v int) {
		visited[k] = v
	})
	assert.Equal(t, m, visited)
}

func TestEachSeqEmpty(t *testing.T) {
	invocations := 0
	EachSeq(slices.Values([]int{}), func(int) { invocations++ })
	assert.Equal(t, 0, invocations)
}

func TestEachSeqMissingArguments(t *testing.T) {
	expectIssue(t, MissingSequence, func() {
		EachSeq[int](nil, func(int) {})
	})
	expectIssue(t, MissingConsumer, func() {
		EachSeq(slices.Values([]int{1}), nil)
	})
	expectIssue(t, MissingSequence, func() {
		EachSeq2[string, int](nil, func(string, int) {})
	})
}

func TestEachSeqConsumerPanicPropagates(t *testing.T) {
	visited := 0
	func() {
		defer func() {
			assert.Equal(t, `stop`, recover())
		}()
		EachSeq(slices.Values([]int{1, 2, 3}), func(v int) {
			if v == 3 {
				panic(`stop`)
			}
			visited++
		})
	}()
	assert.Equal(t, 2, visited)
}
