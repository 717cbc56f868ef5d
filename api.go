package goenum

import "context"

// Codec performs bidirectional transformation between the wire
// representation A and the domain representation B.
type Codec[A, B any] interface {
	Decode(ctx context.Context, a A) (B, error) // A (wire) -> B (members).
	Encode(ctx context.Context, b B) (A, error) // B (members) -> A (wire).
}

// Decode is a convenience wrapper over Codec.Decode.
func Decode[A, B any](ctx context.Context, c Codec[A, B], a A) (B, error) {
	return c.Decode(ctx, a)
}

// Encode is a convenience wrapper over Codec.Encode.
func Encode[A, B any](ctx context.Context, c Codec[A, B], b B) (A, error) {
	return c.Encode(ctx, b)
}

type failFastKey struct{}

// WithFailFast returns a child context that stops batch decoding at the first
// issue.
func WithFailFast(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, failFastKey{}, enabled)
}

// IsFailFast reports whether the current decode should stop on the first issue.
func IsFailFast(ctx context.Context) bool {
	v := ctx.Value(failFastKey{})
	b, _ := v.(bool)
	return b
}
