// Package reconcile joins a keyed collection of rendered elements against a
// keyed collection of data items.
package reconcile

// Diff reports which keys a join created, kept and removed.
type Diff[K comparable] struct {
	Entered []K
	Updated []K
	Exited  []K
}

// Changed reports whether the join added or removed any element.
func (d Diff[K]) Changed() bool {
	return len(d.Entered) > 0 || len(d.Exited) > 0
}

// Keyed describes how to key both sides of a join and how to build and
// refresh elements.
type Keyed[K comparable, D, E any] struct {
	DataKey    func(D) K
	ElementKey func(E) K
	Enter      func(D) E
	Update     func(E, D) E
}

// Join returns the elements for data in data order: elements whose key
// disappeared are dropped, new keys are entered and shared keys are updated
// in place. Duplicate data keys enter once; later duplicates update the same
// element.
func (k Keyed[K, D, E]) Join(current []E, data []D) ([]E, Diff[K]) {
	existing := make(map[K]E, len(current))
	for _, e := range current {
		existing[k.ElementKey(e)] = e
	}

	var diff Diff[K]

	out := make([]E, 0, len(data))
	placed := make(map[K]int, len(data))

	for _, d := range data {
		key := k.DataKey(d)

		if i, dup := placed[key]; dup {
			out[i] = k.Update(out[i], d)

			continue
		}

		e, ok := existing[key]
		if ok {
			e = k.Update(e, d)
			diff.Updated = append(diff.Updated, key)
		} else {
			e = k.Enter(d)
			diff.Entered = append(diff.Entered, key)
		}

		placed[key] = len(out)
		out = append(out, e)
	}

	for _, e := range current {
		key := k.ElementKey(e)
		if _, kept := placed[key]; !kept {
			diff.Exited = append(diff.Exited, key)
		}
	}

	return out, diff
}
