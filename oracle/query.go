package oracle

import (
	"fmt"
)

// Query returns the oracle's distance between the vertices named s and
// t: zero when s = t, the precomputed exact distance when the pair is
// covered, and otherwise the route through each endpoint's nearest
// landmark — an upper bound on the true distance. The inter-landmark
// leg is read from the landmark table; no BFS runs at query time.
//
// Query is read-only and reentrant; results depend only on the built
// oracle and the arguments.
func (o *Oracle) Query(s, t string) (int, error) {
	si, ok := o.g.IndexOf(s)
	if !ok {
		return 0, unknownVertex(s)
	}
	ti, ok := o.g.IndexOf(t)
	if !ok {
		return 0, unknownVertex(t)
	}
	if si == ti {
		return 0, nil
	}
	if d, ok := o.exact[pairKey(si, ti)]; ok {
		return int(d), nil
	}

	// Approximate branch: nearest landmark of each endpoint, ties
	// broken toward the smallest landmark index.
	ls, ds := o.lt.NearestTo(si)
	lt, dt := o.lt.NearestTo(ti)
	mid := o.lt.Dist(ls, o.lt.Landmark(lt))
	return int(ds) + int(mid) + int(dt), nil
}

// Covered reports whether the pair (s,t) would be answered by the exact
// branch. Intended for diagnostics and tests.
func (o *Oracle) Covered(s, t string) (bool, error) {
	si, ok := o.g.IndexOf(s)
	if !ok {
		return false, unknownVertex(s)
	}
	ti, ok := o.g.IndexOf(t)
	if !ok {
		return false, unknownVertex(t)
	}
	if si == ti {
		return false, nil
	}
	_, covered := o.exact[pairKey(si, ti)]
	return covered, nil
}

func unknownVertex(token string) error {
	return fmt.Errorf("%w: %q", ErrUnknownVertex, token)
}

func notACenter(token string) error {
	return fmt.Errorf("%w: %q", ErrNotACenter, token)
}
