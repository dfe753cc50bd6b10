package satisfy

// subsume removes subsumed clauses: C subsumes D iff C ⊆ D (as literal
// sets); D is removed whenever some C != D subsumes it. Ties (C == D as
// sets) keep the first occurrence. Complexity is O(n²·l) with set hashing,
// acceptable both for one-time pre-processing and for the small
// learnt-clause sets seen at restart (restart.go reuses this same
// function).
func subsume(clauses []Clause) []Clause {
	sets := make([]map[Literal]struct{}, len(clauses))
	for i, c := range clauses {
		s := make(map[Literal]struct{}, len(c.Lits))
		for _, l := range c.Lits {
			s[l] = struct{}{}
		}
		sets[i] = s
	}

	removed := make([]bool, len(clauses))
	for i := range clauses {
		if removed[i] {
			continue
		}
		for j := range clauses {
			if i == j || removed[j] {
				continue
			}
			if !isSubsetOrEqual(sets[i], sets[j]) {
				continue
			}
			// clauses[i] subsumes clauses[j]. If they're equal sets, keep
			// whichever occurs first; otherwise the proper subset always
			// wins regardless of index order.
			switch {
			case len(sets[i]) < len(sets[j]):
				removed[j] = true
			case len(sets[i]) == len(sets[j]) && i < j:
				removed[j] = true
			}
		}
	}

	out := make([]Clause, 0, len(clauses))
	for i, c := range clauses {
		if !removed[i] {
			out = append(out, c)
		}
	}
	return out
}

func isSubsetOrEqual(a, b map[Literal]struct{}) bool {
	if len(a) > len(b) {
		return false
	}
	for l := range a {
		if _, ok := b[l]; !ok {
			return false
		}
	}
	return true
}
