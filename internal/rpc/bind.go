package rpc

import (
	"context"

	"github.com/time-tracker/api/internal/modules/schema"
)

// Bind adapts a typed procedure. The input is decoded and validated before fn runs.
func Bind[In any, Out any](fn func(ctx context.Context, in In) (Out, error)) HandlerFunc {
	return func(ctx context.Context, raw RawInput) (any, error) {
		var in In
		if err := raw.Decode(&in); err != nil {
			return nil, err
		}
		if err := schema.Validate(in); err != nil {
			return nil, err
		}
		return fn(ctx, in)
	}
}

// NoInput adapts a procedure that takes no arguments; any supplied input is ignored.
func NoInput[Out any](fn func(ctx context.Context) (Out, error)) HandlerFunc {
	return func(ctx context.Context, _ RawInput) (any, error) {
		return fn(ctx)
	}
}
