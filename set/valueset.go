package set

import (
	"iter"
	"reflect"

	"github.com/pkg/errors"

	"github.com/denismitr/florist/utils"
)

const (
	initialCapacity = 15
	growthFactor    = 1.3
)

// ValueSet is an insertion ordered set backed by a growable array.
// Membership is decided by the elements' Equal method with a linear scan.
//
// Live elements occupy elements[:size]; the rest of the buffer holds zero values.
type ValueSet[T Element[T]] struct {
	elements []T
	size     int
}

func NewValueSet[T Element[T]]() *ValueSet[T] {
	return &ValueSet[T]{
		elements: make([]T, initialCapacity),
	}
}

// NewValueSetOf creates a set holding items with duplicates dropped.
func NewValueSetOf[T Element[T]](items ...T) (*ValueSet[T], error) {
	s := NewValueSet[T]()
	if _, err := s.AddAll(SliceOf(items...)); err != nil {
		return nil, err
	}
	return s, nil
}

// NewValueSetFrom creates a set holding the items of src with duplicates dropped.
func NewValueSetFrom[T Element[T]](src Collection[T]) (*ValueSet[T], error) {
	s := NewValueSet[T]()
	if _, err := s.AddAll(src); err != nil {
		return nil, err
	}
	return s, nil
}

// Cap returns the size of the backing buffer.
func (s *ValueSet[T]) Cap() int {
	return len(s.elements)
}

func (s *ValueSet[T]) Len() int {
	return s.size
}

func (s *ValueSet[T]) IsEmpty() bool {
	return s.size == 0
}

func (s *ValueSet[T]) ensureCapacity() {
	if s.size < len(s.elements) {
		return
	}

	newCap := int(float64(len(s.elements)) * growthFactor)
	if newCap <= len(s.elements) {
		newCap = len(s.elements) + 1
	}

	grown := make([]T, newCap)
	copy(grown, s.elements[:s.size])
	s.elements = grown
}

func (s *ValueSet[T]) indexOf(item T) int {
	for i := 0; i < s.size; i++ {
		if s.elements[i].Equal(item) {
			return i
		}
	}
	return -1
}

// Add inserts item unless an equal element is already present.
// Nil elements and zero values of Zeroer elements are rejected.
func (s *ValueSet[T]) Add(item T) (modified bool, err error) {
	if absent(item) {
		return false, errors.Wrap(ErrInvalidArgument, "cannot add a nil or zero element")
	}

	if s.indexOf(item) >= 0 {
		return false, nil
	}

	s.ensureCapacity()
	s.elements[s.size] = item
	s.size++

	return true, nil
}

// AddAll adds every item of src in its iteration order.
// Nothing is added if src is nil or holds a nil or zero element.
func (s *ValueSet[T]) AddAll(src Collection[T]) (modified bool, err error) {
	if utils.IsNil(src) {
		return false, errors.Wrap(ErrInvalidArgument, "source collection is nil")
	}

	items := src.Items()
	for i := range items {
		if absent(items[i]) {
			return false, errors.Wrapf(ErrInvalidArgument, "source element %d is nil or zero", i)
		}
	}

	for _, item := range items {
		added, _ := s.Add(item)
		if added {
			modified = true
		}
	}

	return modified, nil
}

func (s *ValueSet[T]) Contains(item T) bool {
	if absent(item) {
		return false
	}
	return s.indexOf(item) >= 0
}

// ContainsAll reports whether every item of src is in the set.
// A nil src is an error, the same as for the other bulk operations.
func (s *ValueSet[T]) ContainsAll(src Collection[T]) (bool, error) {
	if utils.IsNil(src) {
		return false, errors.Wrap(ErrInvalidArgument, "source collection is nil")
	}

	for _, item := range src.Items() {
		if !s.Contains(item) {
			return false, nil
		}
	}

	return true, nil
}

// Remove deletes the element equal to item, shifting later elements left.
func (s *ValueSet[T]) Remove(item T) bool {
	if absent(item) {
		return false
	}

	idx := s.indexOf(item)
	if idx < 0 {
		return false
	}

	s.removeAt(idx)
	return true
}

func (s *ValueSet[T]) removeAt(idx int) {
	copy(s.elements[idx:s.size-1], s.elements[idx+1:s.size])
	s.size--
	s.elements[s.size] = utils.GetZero[T]()
}

// RemoveAll deletes every element equal to some item of src.
func (s *ValueSet[T]) RemoveAll(src Collection[T]) (modified bool, err error) {
	if utils.IsNil(src) {
		return false, errors.Wrap(ErrInvalidArgument, "source collection is nil")
	}

	for _, item := range src.Items() {
		for s.Remove(item) {
			modified = true
		}
	}

	return modified, nil
}

// RetainAll keeps only the elements that src contains, judged by src.Contains.
func (s *ValueSet[T]) RetainAll(src Collection[T]) (modified bool, err error) {
	if utils.IsNil(src) {
		return false, errors.Wrap(ErrInvalidArgument, "source collection is nil")
	}

	for i := 0; i < s.size; {
		if src.Contains(s.elements[i]) {
			i++
			continue
		}

		// the next element slides into i, so i stays put
		s.removeAt(i)
		modified = true
	}

	return modified, nil
}

func (s *ValueSet[T]) Clear() {
	clear(s.elements[:s.size])
	s.size = 0
}

// Items returns a copy of the live elements in insertion order.
func (s *ValueSet[T]) Items() []T {
	items := make([]T, s.size)
	copy(items, s.elements[:s.size])
	return items
}

// Iterator returns a fresh cursor positioned before the first element.
//
// The cursor is bounded by the live size of the set, not by a snapshot taken
// when iteration starts: adding or removing elements while iterating is not
// detected and may skip or repeat elements.
func (s *ValueSet[T]) Iterator() Iterator[T] {
	return &cursor[T]{
		size: s.Len,
		at:   func(i int) T { return s.elements[i] },
	}
}

// All yields the live elements in order. Same mutation caveat as Iterator.
func (s *ValueSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < s.size; i++ {
			if !yield(s.elements[i]) {
				return
			}
		}
	}
}

// Equal reports whether other holds the same elements, in any order.
func (s *ValueSet[T]) Equal(other Set[T]) bool {
	if o, ok := other.(*ValueSet[T]); ok && o == s {
		return true
	}
	return equal[T](s, other)
}

// Hash is the sum of the element hashes, so it does not depend on order.
func (s *ValueSet[T]) Hash() int {
	var hash int
	for i := 0; i < s.size; i++ {
		hash += s.elements[i].Hash()
	}
	return hash
}

// CopyInto copies the elements of s into dst when it is long enough,
// otherwise into a new slice of exactly s.Len() elements.
//
// When dst is longer than needed, dst[s.Len()] is reset to the zero value to
// mark the end of the data. This mirrors the array conventions of older
// collection APIs and only matters to callers reusing one buffer.
func CopyInto[T Element[T], E any](s *ValueSet[T], dst []E) ([]E, error) {
	if dst == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "destination slice is nil")
	}

	from := reflect.TypeFor[T]()
	to := reflect.TypeFor[E]()
	if !from.AssignableTo(to) {
		return nil, errors.Wrapf(ErrTypeMismatch, "%s is not assignable to %s", from, to)
	}

	if len(dst) < s.size {
		dst = make([]E, s.size)
	}

	for i := 0; i < s.size; i++ {
		dst[i] = convert[T, E](s.elements[i])
	}

	if len(dst) > s.size {
		dst[s.size] = utils.GetZero[E]()
	}

	return dst, nil
}

func convert[T, E any](v T) E {
	if e, ok := any(v).(E); ok {
		return e
	}

	var e E
	reflect.ValueOf(&e).Elem().Set(reflect.ValueOf(&v).Elem())
	return e
}
