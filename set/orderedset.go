package set

import (
	"iter"

	"github.com/denismitr/dll"
	"github.com/pkg/errors"

	"github.com/denismitr/florist/utils"
)

// OrderedSet keeps insertion order and decides membership with ==.
type OrderedSet[T comparable] struct {
	m    map[T]*dll.Element[T]
	list *dll.DoublyLinkedList[T]
}

var _ Set[int] = (*OrderedSet[int])(nil)

func NewOrderedSet[T comparable]() *OrderedSet[T] {
	return &OrderedSet[T]{
		m:    make(map[T]*dll.Element[T]),
		list: dll.New[T](),
	}
}

func (s *OrderedSet[T]) Add(item T) (modified bool, err error) {
	if absent(item) {
		return false, errors.Wrap(ErrInvalidArgument, "cannot add a nil or zero element")
	}

	if _, found := s.m[item]; !found {
		newEl := dll.NewElement(item)
		s.m[item] = newEl
		s.list.PushTail(newEl)
		modified = true
	}

	return modified, nil
}

func (s *OrderedSet[T]) AddAll(src Collection[T]) (modified bool, err error) {
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
		if added, _ := s.Add(item); added {
			modified = true
		}
	}

	return modified, nil
}

func (s *OrderedSet[T]) Clear() {
	clear(s.m)
	s.list = dll.New[T]()
}

func (s *OrderedSet[T]) Remove(item T) bool {
	if el, found := s.m[item]; found {
		delete(s.m, el.Value())
		s.list.Remove(el)
		return true
	}

	return false
}

func (s *OrderedSet[T]) RemoveAll(src Collection[T]) (modified bool, err error) {
	if utils.IsNil(src) {
		return false, errors.Wrap(ErrInvalidArgument, "source collection is nil")
	}

	for _, item := range src.Items() {
		if s.Remove(item) {
			modified = true
		}
	}

	return modified, nil
}

func (s *OrderedSet[T]) RetainAll(src Collection[T]) (modified bool, err error) {
	if utils.IsNil(src) {
		return false, errors.Wrap(ErrInvalidArgument, "source collection is nil")
	}

	curr := s.list.Head()
	for curr != nil {
		next := curr.Next()
		if item := curr.Value(); !src.Contains(item) {
			delete(s.m, item)
			s.list.Remove(curr)
			modified = true
		}
		curr = next
	}

	return modified, nil
}

func (s *OrderedSet[T]) Items() []T {
	items := make([]T, 0, len(s.m))
	curr := s.list.Head()
	for curr != nil {
		item := curr.Value()
		items = append(items, item)
		curr = curr.Next()
	}
	return items
}

func (s *OrderedSet[T]) Contains(item T) bool {
	_, ok := s.m[item]
	return ok
}

func (s *OrderedSet[T]) ContainsAll(src Collection[T]) (bool, error) {
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

func (s *OrderedSet[T]) Len() int {
	return len(s.m)
}

func (s *OrderedSet[T]) IsEmpty() bool {
	return len(s.m) == 0
}

// Iterator walks the list from the head. Removing the element the iterator
// is about to visit while iterating is not detected.
func (s *OrderedSet[T]) Iterator() Iterator[T] {
	return &listCursor[T]{curr: s.list.Head()}
}

func (s *OrderedSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for curr := s.list.Head(); curr != nil; curr = curr.Next() {
			if !yield(curr.Value()) {
				return
			}
		}
	}
}

func (s *OrderedSet[T]) Equal(other Set[T]) bool {
	if o, ok := other.(*OrderedSet[T]); ok && o == s {
		return true
	}
	return equal[T](s, other)
}

// Hash sums the hashes of elements implementing Hasher; others count as 0.
func (s *OrderedSet[T]) Hash() int {
	var hash int
	for item := range s.m {
		if h, ok := any(item).(Hasher); ok {
			hash += h.Hash()
		}
	}
	return hash
}

type listCursor[T any] struct {
	curr     *dll.Element[T]
	consumed int
}

func (c *listCursor[T]) HasNext() bool {
	return c.curr != nil
}

func (c *listCursor[T]) Next() (T, error) {
	if c.curr == nil {
		return utils.GetZero[T](), errors.Wrapf(ErrExhausted, "iterator consumed %d elements", c.consumed)
	}

	item := c.curr.Value()
	c.curr = c.curr.Next()
	c.consumed++
	return item, nil
}
