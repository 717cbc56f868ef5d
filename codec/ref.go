package codec

import (
	"context"

	"github.com/goccy/go-json"

	goenum "github.com/reoring/goenum"
)

// Ref returns a Codec that converts between goenum.Ref pairs and members of f.
func Ref[F any](f *goenum.Family[F]) goenum.Codec[goenum.Ref, goenum.Member[F]] {
	return &refCodec[F]{family: f}
}

type refCodec[F any] struct {
	family *goenum.Family[F]
}

func (c *refCodec[F]) Decode(_ context.Context, a goenum.Ref) (goenum.Member[F], error) {
	m, err := c.family.Resolve(a)
	if err != nil {
		return goenum.Member[F]{}, goenum.Issues{goenum.IssueAt("/", err)}
	}
	return m, nil
}

func (c *refCodec[F]) Encode(_ context.Context, b goenum.Member[F]) (goenum.Ref, error) {
	if err := checkOwner(c.family, b); err != nil {
		return goenum.Ref{}, goenum.Issues{goenum.IssueAt("/", err)}
	}
	return b.Ref(), nil
}

// RefJSON returns a Codec between the JSON object form
// {"family":"<tag>","label":"<label>"} and members of f.
func RefJSON[F any](f *goenum.Family[F]) goenum.Codec[[]byte, goenum.Member[F]] {
	return &refJSONCodec[F]{ref: &refCodec[F]{family: f}}
}

type refJSONCodec[F any] struct {
	ref *refCodec[F]
}

func (c *refJSONCodec[F]) Decode(ctx context.Context, a []byte) (goenum.Member[F], error) {
	var r goenum.Ref
	if err := json.Unmarshal(a, &r); err != nil {
		return goenum.Member[F]{}, goenum.Issues{goenum.IssueAt("/", err)}
	}
	return c.ref.Decode(ctx, r)
}

func (c *refJSONCodec[F]) Encode(ctx context.Context, b goenum.Member[F]) ([]byte, error) {
	r, err := c.ref.Encode(ctx, b)
	if err != nil {
		return nil, err
	}
	return json.Marshal(r)
}
