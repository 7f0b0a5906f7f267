package set

import (
	"github.com/pkg/errors"

	"github.com/denismitr/florist/utils"
)

// cursor walks an indexed container from 0 up to its live length,
// re-read on every step.
type cursor[T any] struct {
	size func() int
	at   func(i int) T
	idx  int
}

func (c *cursor[T]) HasNext() bool {
	return c.idx < c.size()
}

func (c *cursor[T]) Next() (T, error) {
	if !c.HasNext() {
		return utils.GetZero[T](), errors.Wrapf(ErrExhausted, "iterator consumed %d elements", c.idx)
	}

	item := c.at(c.idx)
	c.idx++
	return item, nil
}
