package domain

import (
	"fmt"
	"strings"
)

// PlanReference identifies a plan or exercise across the app.
// The canonical serialized form is "kind:authorId:slug".
type PlanReference struct {
	Kind     string
	AuthorID string
	Slug     string
}

func (r PlanReference) String() string {
	return r.Kind + ":" + r.AuthorID + ":" + r.Slug
}

// ParseRef parses a serialized reference. The input is normalized first,
// so double-wrapped references parse to their canonical form.
func ParseRef(s string) (PlanReference, error) {
	s = NormalizeRef(s)
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return PlanReference{}, fmt.Errorf("reference %q: want kind:authorId:slug", s)
	}
	return PlanReference{Kind: parts[0], AuthorID: parts[1], Slug: parts[2]}, nil
}

// NormalizeRef collapses references that were accidentally re-wrapped by
// repeated serialization, e.g. "33402:pk:33402:pk:leg-day" becomes
// "33402:pk:leg-day". It is total and idempotent: unparseable input is
// returned unchanged, and normalizing twice equals normalizing once.
func NormalizeRef(s string) string {
	for {
		parts := strings.Split(s, ":")
		if len(parts) < 5 {
			return s
		}
		// A duplicated wrap repeats the kind:authorId prefix verbatim.
		if parts[0] != "" && parts[0] == parts[2] && parts[1] == parts[3] {
			s = strings.Join(parts[2:], ":")
			continue
		}
		return s
	}
}

// RefEqual reports whether two serialized references identify the same
// plan or exercise. All reference comparisons must go through here so
// wrapping artifacts never split one identity into two.
func RefEqual(a, b string) bool {
	return NormalizeRef(a) == NormalizeRef(b)
}
