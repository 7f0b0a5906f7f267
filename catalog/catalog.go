// Package catalog keeps the flowers a shop has in stock.
package catalog

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/denismitr/florist/flower"
	"github.com/denismitr/florist/set"
	"github.com/denismitr/florist/utils"
)

type (
	Catalog struct {
		items  *set.ValueSet[flower.Item]
		logger *slog.Logger
	}

	catalogConfig struct {
		logger *slog.Logger
	}

	Option func(cc *catalogConfig)
)

func WithLogger(logger *slog.Logger) Option {
	return func(cc *catalogConfig) {
		cc.logger = logger
	}
}

func New(options ...Option) *Catalog {
	cfg := catalogConfig{logger: slog.Default()}
	for _, opt := range options {
		opt(&cfg)
	}

	return &Catalog{
		items:  set.NewValueSet[flower.Item](),
		logger: cfg.logger,
	}
}

// Add puts the items into the catalog and returns how many were new.
func (c *Catalog) Add(items ...flower.Item) (added int, err error) {
	for _, item := range items {
		if item.IsZero() {
			return added, errors.Wrap(flower.ErrInvalidFlower, "could not add an empty flower")
		}

		ok, err := c.items.Add(item)
		if err != nil {
			return added, errors.Wrapf(err, "could not add %s", item)
		}

		if !ok {
			c.logger.Debug("flower already in catalog", "flower", item.String())
			continue
		}

		added++
		c.logger.Debug("flower added", "flower", item.String(), "size", c.items.Len())
	}

	return added, nil
}

func (c *Catalog) AddAll(src set.Collection[flower.Item]) (bool, error) {
	if !utils.IsNil(src) {
		for _, item := range src.Items() {
			if item.IsZero() {
				return false, errors.Wrap(flower.ErrInvalidFlower, "could not add an empty flower")
			}
		}
	}

	modified, err := c.items.AddAll(src)
	if err != nil {
		return false, errors.Wrap(err, "could not add flowers to catalog")
	}

	c.logger.Debug("flowers added", "modified", modified, "size", c.items.Len())
	return modified, nil
}

func (c *Catalog) Remove(item flower.Item) bool {
	removed := c.items.Remove(item)
	if removed {
		c.logger.Debug("flower removed", "flower", item.String(), "size", c.items.Len())
	}
	return removed
}

func (c *Catalog) Contains(item flower.Item) bool {
	return c.items.Contains(item)
}

func (c *Catalog) Len() int {
	return c.items.Len()
}

func (c *Catalog) Items() []flower.Item {
	return c.items.Items()
}

func (c *Catalog) ByKind(kind flower.Kind) []flower.Item {
	var result []flower.Item
	for item := range c.items.All() {
		if item.Kind() == kind {
			result = append(result, item)
		}
	}
	return result
}

// Kinds lists the kinds in stock in the order they first appear.
func (c *Catalog) Kinds() *set.OrderedSet[flower.Kind] {
	kinds := set.NewOrderedSet[flower.Kind]()
	for item := range c.items.All() {
		_, _ = kinds.Add(item.Kind())
	}
	return kinds
}

func (c *Catalog) TotalPrice() float64 {
	return utils.Sum(c.items.Items(), flower.Item.Price)
}

func (c *Catalog) TotalLength() int {
	return utils.Sum(c.items.Items(), flower.Item.Length)
}

// Render writes one line per flower.
func (c *Catalog) Render(w io.Writer) error {
	it := c.items.Iterator()
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintln(w, item.String()); err != nil {
			return errors.Wrap(err, "could not render catalog")
		}
	}

	return nil
}
