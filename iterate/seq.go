package iterate

import "iter"

// EachSeq drains seq, calling consumer once per element, and returns
// seq. Whether the returned sequence can be ranged over again is a
// property of the underlying sequence.
func EachSeq[E any](seq iter.Seq[E], consumer Consumer[E]) iter.Seq[E] {
	checkArgs(`EachSeq`, seq == nil, consumer == nil)
	for e := range seq {
		consumer(e)
	}
	return seq
}

// EachSeqWithIndex drains seq, calling consumer once per element
// together with the element's position, counted from zero, and
// returns seq.
func EachSeqWithIndex[E any](seq iter.Seq[E], consumer IndexedConsumer[E]) iter.Seq[E] {
	checkArgs(`EachSeqWithIndex`, seq == nil, consumer == nil)
	i := 0
	for e := range seq {
		consumer(e, i)
		i++
	}
	return seq
}

// EachSeq2 drains seq, calling consumer once per pair, and returns seq.
func EachSeq2[K, V any](seq iter.Seq2[K, V], consumer BiConsumer[K, V]) iter.Seq2[K, V] {
	checkArgs(`EachSeq2`, seq == nil, consumer == nil)
	for k, v := range seq {
		consumer(k, v)
	}
	return seq
}
