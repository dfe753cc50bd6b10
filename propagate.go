package satisfy

// litStatus is a literal's truth value under the current assignment.
type litStatus int8

const (
	litUnknown litStatus = iota
	litTrue
	litFalse
)

func (s *solver) litStatus(l Literal) litStatus {
	st := s.states[l.Var()]
	if !st.assigned {
		return litUnknown
	}
	if st.value == l.Positive() {
		return litTrue
	}
	return litFalse
}

func (s *solver) clauseByRef(ref clauseRef) Clause {
	if ref.learnt {
		return s.learnt[ref.idx]
	}
	return s.model.Clauses[ref.idx]
}

// propagate performs unit propagation to a fixpoint: it rescans the full
// clause set (original and learnt) after every new implication, looking for
// a clause that is unit (all literals but one falsified, the last unknown)
// or fully falsified. There is no watched-literal indexing; each rescan is
// O(clauses * clause-width), restarted from the top whenever an assignment
// changes. Simple and correct, not the fastest possible strategy.
//
// It returns the conflicting clause ref if one is found, or ok=false once
// propagation reaches a fixpoint with no conflict.
func (s *solver) propagate() (conflict clauseRef, ok bool) {
restart:
	for idx := range s.model.Clauses {
		ref := clauseRef{idx: idx}
		isConflict, unit, lit := s.scanClause(s.model.Clauses[idx])
		if isConflict {
			return ref, true
		}
		if unit {
			s.assign(lit, ref)
			goto restart
		}
	}
	for idx := range s.learnt {
		ref := clauseRef{learnt: true, idx: idx}
		isConflict, unit, lit := s.scanClause(s.learnt[idx])
		if isConflict {
			return ref, true
		}
		if unit {
			s.assign(lit, ref)
			goto restart
		}
	}
	return clauseRef{}, false
}

// scanClause classifies a clause against the current assignment: conflict
// if every literal is falsified, unit if exactly one literal is unknown and
// the rest falsified (returning that literal), otherwise neither (either
// satisfied, or it has 2+ unknown literals).
func (s *solver) scanClause(c Clause) (conflict, unit bool, forced Literal) {
	unknownCount := 0
	var unknownLit Literal
	for _, l := range c.Lits {
		switch s.litStatus(l) {
		case litTrue:
			return false, false, 0
		case litUnknown:
			unknownCount++
			unknownLit = l
		}
	}
	if unknownCount == 0 {
		return true, false, 0
	}
	if unknownCount == 1 {
		return false, true, unknownLit
	}
	return false, false, 0
}

// assign records an Implied assignment forced by ref and bumps the trail.
func (s *solver) assign(lit Literal, ref clauseRef) {
	v := lit.Var()
	s.states[v] = varState{
		assigned:      true,
		value:         lit.Positive(),
		kind:          kindImplied,
		level:         s.trail.level(),
		antecedent:    ref,
		hasAntecedent: true,
	}
	s.vsids.remove(v)
	s.trail.pushImplied(lit)
	s.propagations++
	s.cfg.logger().Debugf("propagate %v at level %d from %v", lit, s.trail.level(), s.clauseByRef(ref))
}
