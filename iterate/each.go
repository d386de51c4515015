package iterate

import "github.com/lyraproj/issue/issue"

// Each calls consumer once for every element of s, in order, and
// returns s.
func Each[S ~[]E, E any](s S, consumer Consumer[E]) S {
	checkArgs(`Each`, []E(s) == nil, consumer == nil)
	for _, e := range s {
		consumer(e)
	}
	return s
}

// EachWithIndex calls consumer once for every element of s together
// with the element's position, counted from zero, and returns s.
func EachWithIndex[S ~[]E, E any](s S, consumer IndexedConsumer[E]) S {
	checkArgs(`EachWithIndex`, []E(s) == nil, consumer == nil)
	for i, e := range s {
		consumer(e, i)
	}
	return s
}

// EachWithSource calls consumer once for every element of s together
// with the element's position and s itself, and returns s. The source
// lets a consumer relate an element to its neighbors.
func EachWithSource[S ~[]E, E any](s S, consumer SourceConsumer[S, E]) S {
	checkArgs(`EachWithSource`, []E(s) == nil, consumer == nil)
	for i, e := range s {
		consumer(e, i, s)
	}
	return s
}

// EachSlice calls consumer with consecutive chunks of s, each of
// length n except for the last one which may be shorter, and returns
// s. The chunks are views into s, not copies.
func EachSlice[S ~[]E, E any](s S, n int, consumer SliceConsumer[S, E]) S {
	checkArgs(`EachSlice`, []E(s) == nil, consumer == nil)
	if n < 1 {
		panic(Error(IllegalSliceSize, issue.H{`function`: `EachSlice`, `size`: n}))
	}
	top := len(s)
	for i := 0; i < top; i += n {
		e := i + n
		if e > top {
			e = top
		}
		consumer(s[i:e])
	}
	return s
}
