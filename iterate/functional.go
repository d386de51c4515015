package iterate

type (
	// Consumer is passed each element of the iterated sequence.
	Consumer[E any] func(value E)

	// IndexedConsumer is passed each element of the iterated sequence
	// together with its 0-based position.
	IndexedConsumer[E any] func(value E, index int)

	// SourceConsumer is passed each element, its 0-based position, and
	// the slice that is being iterated. The source argument is the
	// identical slice on every invocation, never a copy.
	SourceConsumer[S ~[]E, E any] func(value E, index int, source S)

	// BiConsumer is passed a pair of values, such as the key and value
	// of a map entry.
	BiConsumer[K, V any] func(v1 K, v2 V)

	// SliceConsumer is passed consecutive chunks of the iterated slice.
	SliceConsumer[S ~[]E, E any] func(slice S)
)
