package iterate

// EachPair calls consumer once for every entry of m and returns m.
// Entries are visited in Go's map range order, which is unspecified.
func EachPair[M ~map[K]V, K comparable, V any](m M, consumer BiConsumer[K, V]) M {
	checkArgs(`EachPair`, map[K]V(m) == nil, consumer == nil)
	for k, v := range m {
		consumer(k, v)
	}
	return m
}

// EachKey calls consumer once for every key of m and returns m.
func EachKey[M ~map[K]V, K comparable, V any](m M, consumer Consumer[K]) M {
	checkArgs(`EachKey`, map[K]V(m) == nil, consumer == nil)
	for k := range m {
		consumer(k)
	}
	return m
}

// EachValue calls consumer once for every value of m and returns m.
func EachValue[M ~map[K]V, K comparable, V any](m M, consumer Consumer[V]) M {
	checkArgs(`EachValue`, map[K]V(m) == nil, consumer == nil)
	for _, v := range m {
		consumer(v)
	}
	return m
}
