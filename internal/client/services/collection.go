package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/sitekeeper/internal/common"
	"github.com/dmitrijs2005/sitekeeper/internal/logging"
)

// Keyed is a collection record with a unique id.
type Keyed interface {
	Key() string
}

// Collection is an insertion-ordered list persisted as a whole under one key
// after every mutation. A failed write is logged and the in-memory list is
// kept.
type Collection[T Keyed] struct {
	key   string
	items []T
	store RecordStore
	log   logging.Logger
}

// loadCollection reads key from s, falling back to defaults. Defaults are
// written back so the snapshot exists on disk after the first start.
func loadCollection[T Keyed](ctx context.Context, s RecordStore, log logging.Logger, key string, defaults func() []T) (*Collection[T], error) {
	c := &Collection[T]{key: key, store: s, log: log}

	found, err := s.Read(ctx, key, &c.items)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	if !found {
		c.items = defaults()
		c.persist(ctx)
	}
	return c, nil
}

// All returns a copy of the items.
func (c *Collection[T]) All() []T {
	return slices.Clone(c.items)
}

func (c *Collection[T]) Len() int { return len(c.items) }

// Get returns the item with id.
func (c *Collection[T]) Get(id string) (T, error) {
	if i := c.index(id); i >= 0 {
		return c.items[i], nil
	}
	var zero T
	return zero, fmt.Errorf("%s %q: %w", c.key, id, common.ErrorNotFound)
}

// Filter returns the items for which keep is true, in order.
func (c *Collection[T]) Filter(keep func(T) bool) []T {
	var out []T
	for _, it := range c.items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func (c *Collection[T]) Prepend(ctx context.Context, item T) {
	c.items = slices.Insert(c.items, 0, item)
	c.persist(ctx)
}

func (c *Collection[T]) Append(ctx context.Context, item T) {
	c.items = append(c.items, item)
	c.persist(ctx)
}

// Update replaces the item with id by fn's result and returns it.
func (c *Collection[T]) Update(ctx context.Context, id string, fn func(T) T) (T, error) {
	i := c.index(id)
	if i < 0 {
		var zero T
		return zero, fmt.Errorf("%s %q: %w", c.key, id, common.ErrorNotFound)
	}
	c.items[i] = fn(c.items[i])
	c.persist(ctx)
	return c.items[i], nil
}

// replace swaps the whole list without persisting; the caller writes it.
func (c *Collection[T]) replace(items []T) {
	c.items = items
}

func (c *Collection[T]) index(id string) int {
	return slices.IndexFunc(c.items, func(it T) bool { return it.Key() == id })
}

func (c *Collection[T]) persist(ctx context.Context) {
	if err := c.store.Write(ctx, c.key, c.items); err != nil {
		c.log.Warn(ctx, "collection not persisted", "key", c.key, "error", err)
	}
}
