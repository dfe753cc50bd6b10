package satisfy

import "fmt"

// ProofStep records one learnt clause produced during search: the clause
// itself, the antecedent clauses it was resolved from (copied as clause
// values, in resolution order), and the conflicting clause that triggered
// the derivation.
type ProofStep struct {
	Learnt   Clause
	Sources  []Clause // antecedent clauses consumed during resolution, for replay
	Conflict Clause
}

// Proof is the ordered sequence of resolution steps that derives the empty
// clause from the original clause set, the certificate returned alongside
// an Unsat outcome.
type Proof struct {
	Steps []ProofStep
}

// Verify replays the proof from scratch: every step's Learnt clause must be
// derivable by resolution from its Sources and Conflict, and the final
// step's Learnt clause must be empty. It does not re-run the solver; it
// only checks that each recorded resolution is locally valid.
func (p Proof) Verify() error {
	if len(p.Steps) == 0 {
		return fmt.Errorf("satisfy: empty proof")
	}
	for i, step := range p.Steps {
		all := append([]Clause{step.Conflict}, step.Sources...)
		resolved := resolveAll(all)
		if !sameClause(resolved, step.Learnt) {
			return fmt.Errorf("satisfy: proof step %d does not resolve to its recorded learnt clause", i)
		}
	}
	last := p.Steps[len(p.Steps)-1]
	if !last.Learnt.isEmpty() {
		return fmt.Errorf("satisfy: proof's final step is not the empty clause")
	}
	return nil
}

// resolveAll full-resolves a sequence of clauses pairwise: any literal
// appearing with both polarities across the accumulated set and the next
// clause cancels. This mirrors, for verification purposes only, the
// cancellation that conflict analysis performs incrementally during
// search.
func resolveAll(clauses []Clause) Clause {
	if len(clauses) == 0 {
		return Clause{}
	}
	acc := map[Literal]bool{}
	for _, l := range clauses[0].Lits {
		acc[l] = true
	}
	for _, c := range clauses[1:] {
		for _, l := range c.Lits {
			if acc[l.Negate()] {
				delete(acc, l.Negate())
				continue
			}
			acc[l] = true
		}
	}
	out := make([]Literal, 0, len(acc))
	for l := range acc {
		out = append(out, l)
	}
	return Clause{Lits: out}
}

func sameClause(a, b Clause) bool {
	if len(a.Lits) != len(b.Lits) {
		return false
	}
	as := map[Literal]bool{}
	for _, l := range a.Lits {
		as[l] = true
	}
	for _, l := range b.Lits {
		if !as[l] {
			return false
		}
	}
	return true
}
