package codec

import (
	"context"

	goenum "github.com/reoring/goenum"
)

// Label returns a Codec that converts between a label string and a member of f.
func Label[F any](f *goenum.Family[F]) goenum.Codec[string, goenum.Member[F]] {
	return &labelCodec[F]{family: f}
}

type labelCodec[F any] struct {
	family *goenum.Family[F]
}

func (c *labelCodec[F]) Decode(_ context.Context, a string) (goenum.Member[F], error) {
	m, err := c.family.Lookup(a)
	if err != nil {
		return goenum.Member[F]{}, goenum.Issues{goenum.IssueAt("/", err)}
	}
	return m, nil
}

func (c *labelCodec[F]) Encode(_ context.Context, b goenum.Member[F]) (string, error) {
	if err := checkOwner(c.family, b); err != nil {
		return "", goenum.Issues{goenum.IssueAt("/", err)}
	}
	return b.Label(), nil
}

// Labels returns a Codec that converts between label lists and member lists.
// Failures are reported per element; WithFailFast stops at the first one.
func Labels[F any](f *goenum.Family[F]) goenum.Codec[[]string, []goenum.Member[F]] {
	return &labelsCodec[F]{family: f}
}

type labelsCodec[F any] struct {
	family *goenum.Family[F]
}

func (c *labelsCodec[F]) Decode(ctx context.Context, a []string) ([]goenum.Member[F], error) {
	out := make([]goenum.Member[F], 0, len(a))
	var iss goenum.Issues
	for i, l := range a {
		m, err := c.family.Lookup(l)
		if err != nil {
			iss = goenum.AppendIssues(iss, goenum.IssueAt(goenum.IndexPointer(i), err))
			if goenum.IsFailFast(ctx) {
				return nil, iss
			}
			continue
		}
		out = append(out, m)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (c *labelsCodec[F]) Encode(ctx context.Context, b []goenum.Member[F]) ([]string, error) {
	out := make([]string, 0, len(b))
	var iss goenum.Issues
	for i, m := range b {
		if err := checkOwner(c.family, m); err != nil {
			iss = goenum.AppendIssues(iss, goenum.IssueAt(goenum.IndexPointer(i), err))
			if goenum.IsFailFast(ctx) {
				return nil, iss
			}
			continue
		}
		out = append(out, m.Label())
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

// checkOwner rejects zero members and members of another family sharing the
// same tag type (possible with detached families).
func checkOwner[F any](f *goenum.Family[F], m goenum.Member[F]) error {
	if m.IsZero() {
		return &goenum.Error{Code: goenum.CodeEmptyLabel, Family: f.Name()}
	}
	if m.Family() != f {
		return &goenum.Error{Code: goenum.CodeFamilyMismatch, Family: f.Name(), Label: m.Label()}
	}
	return nil
}
