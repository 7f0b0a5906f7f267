// Package flower holds the flower record stored in the catalog.
package flower

import (
	"fmt"
	"math"
	"strconv"

	"github.com/pkg/errors"
)

const (
	MinFreshness = 1
	MaxFreshness = 10
)

var ErrInvalidFlower = errors.New("invalid flower parameters")

// Item is an immutable flower record. Items are equal when all fields are equal,
// so == and Equal agree.
type Item struct {
	name      string
	price     float64
	freshness int
	length    int
}

// New validates the numeric fields and builds an Item.
func New(name string, price float64, freshness, length int) (Item, error) {
	// !(price > 0) also rejects NaN
	if !(price > 0) {
		return Item{}, errors.Wrapf(ErrInvalidFlower, "price must be positive, got %v", price)
	}

	if freshness < MinFreshness || freshness > MaxFreshness {
		return Item{}, errors.Wrapf(
			ErrInvalidFlower,
			"freshness must be within [%d, %d], got %d",
			MinFreshness, MaxFreshness, freshness,
		)
	}

	if length <= 0 {
		return Item{}, errors.Wrapf(ErrInvalidFlower, "length must be positive, got %d", length)
	}

	return Item{
		name:      name,
		price:     price,
		freshness: freshness,
		length:    length,
	}, nil
}

func NewOfKind(kind Kind, price float64, freshness, length int) (Item, error) {
	return New(kind.String(), price, freshness, length)
}

func NewRose(price float64, freshness, length int) (Item, error) {
	return NewOfKind(Rose, price, freshness, length)
}

func NewTulip(price float64, freshness, length int) (Item, error) {
	return NewOfKind(Tulip, price, freshness, length)
}

func NewLily(price float64, freshness, length int) (Item, error) {
	return NewOfKind(Lily, price, freshness, length)
}

func (i Item) Name() string { return i.name }
func (i Item) Price() float64 { return i.price }
func (i Item) Freshness() int { return i.freshness }
func (i Item) Length() int { return i.length }
func (i Item) Kind() Kind { return kindOf(i.name) }

// IsZero reports whether i is the zero Item, which New never returns.
func (i Item) IsZero() bool {
	return i == Item{}
}

func (i Item) Equal(other Item) bool {
	return i.price == other.price &&
		i.freshness == other.freshness &&
		i.length == other.length &&
		i.name == other.name
}

// Hash mixes all fields with 31 as multiplier, wrapping at 32 bits.
// The name contributes one term per rune.
func (i Item) Hash() int {
	var h int32
	for _, r := range i.name {
		h = 31*h + int32(r)
	}

	bits := math.Float64bits(i.price)
	h = 31*h + int32(bits^(bits>>32))
	h = 31*h + int32(i.freshness)
	h = 31*h + int32(i.length)

	return int(h)
}

func (i Item) String() string {
	return fmt.Sprintf(
		"%s | price: %s | freshness: %d | length: %d",
		i.name,
		strconv.FormatFloat(i.price, 'f', -1, 64),
		i.freshness,
		i.length,
	)
}
