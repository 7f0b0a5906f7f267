package set

// Slice adapts a plain slice to Collection. Contains compares with Equal,
// and the slice may hold duplicates. A nil Slice counts as a missing
// collection in bulk operations; use SliceOf for an empty one.
type Slice[T Equaler[T]] []T

func SliceOf[T Equaler[T]](items ...T) Slice[T] {
	if items == nil {
		return Slice[T]{}
	}
	return Slice[T](items)
}

func (s Slice[T]) Items() []T {
	return s
}

func (s Slice[T]) Len() int {
	return len(s)
}

func (s Slice[T]) Contains(item T) bool {
	if absent(item) {
		return false
	}

	for i := range s {
		if !absent(s[i]) && s[i].Equal(item) {
			return true
		}
	}
	return false
}
