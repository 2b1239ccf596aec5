package core

import "context"

// Enhancer produces a rewritten version of a block of text via an
// external text-generation provider. The rewrite is one-way: callers
// that keep no copy of the input cannot recover it.
type Enhancer interface {
	Enhance(ctx context.Context, text string) (string, error)
}
