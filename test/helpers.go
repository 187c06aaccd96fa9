package test

import (
	"context"
	"testing"

	"github.com/outofforest/logger"

	"github.com/outofforest/container/list"
)

// CollectValues collects values available in list, in the order they are stored.
func CollectValues[T comparable](l *list.List[T]) []T {
	values := []T{}
	for v := range l.Values() {
		values = append(values, v)
	}
	return values
}

// CollectCursor collects values visited by cursor until it moves past the end.
func CollectCursor[T comparable](c *list.Cursor[T]) []T {
	values := []T{}
	for ; c.Current() != nil; c.Next() {
		values = append(values, c.Current().Value())
	}
	return values
}

// Context returns context carrying logger, canceled when test finishes.
func Context(t *testing.T) context.Context {
	ctx, cancel := context.WithCancel(logger.WithLogger(context.Background(), logger.New(logger.DefaultConfig)))
	t.Cleanup(cancel)
	return ctx
}
