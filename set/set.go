// Package set provides explicit set interfaces and two implementations:
// ValueSet, a growable array set keyed by value equality, and OrderedSet,
// a map and linked list set for comparable values.
//
// None of the containers are safe for concurrent use. Callers sharing a set
// between goroutines must guard the whole set with their own lock.
package set

import "github.com/denismitr/florist/utils"

type (
	// Equaler reports structural equality with another value of the same type.
	Equaler[T any] interface {
		Equal(other T) bool
	}

	// Hasher produces a hash consistent with Equal: equal values hash equally.
	Hasher interface {
		Hash() int
	}

	// Zeroer is implemented by elements whose zero value is not a real element.
	// Sets treat such zero values like nil.
	Zeroer interface {
		IsZero() bool
	}

	// Element is what a ValueSet can hold.
	Element[T any] interface {
		Equaler[T]
		Hasher
	}

	// Collection is a read only source for bulk operations.
	Collection[T any] interface {
		Items() []T
		Contains(item T) bool
		Len() int
	}

	// Iterator is a one shot forward cursor.
	Iterator[T any] interface {
		HasNext() bool
		Next() (T, error)
	}

	Set[T any] interface {
		Collection[T]

		Add(item T) (modified bool, err error)
		AddAll(src Collection[T]) (modified bool, err error)
		ContainsAll(src Collection[T]) (bool, error)
		Remove(item T) bool
		RemoveAll(src Collection[T]) (modified bool, err error)
		RetainAll(src Collection[T]) (modified bool, err error)
		Clear()
		IsEmpty() bool
		Iterator() Iterator[T]
		Equal(other Set[T]) bool
		Hash() int
	}
)

// absent reports whether v is nil or a zero value standing for no element.
func absent[T any](v T) bool {
	if utils.IsNil(v) {
		return true
	}
	z, ok := any(v).(Zeroer)
	return ok && z.IsZero()
}

// equal implements set equality for any pair of Set implementations:
// same length and mutual containment, order ignored.
func equal[T any](s, other Set[T]) bool {
	if utils.IsNil(other) || s.Len() != other.Len() {
		return false
	}

	if ok, err := s.ContainsAll(other); err != nil || !ok {
		return false
	}

	ok, err := other.ContainsAll(s)
	return err == nil && ok
}
