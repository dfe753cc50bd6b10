package satisfy

// explain returns the literals that justify c, excluding l: for the
// conflicting clause itself (no l to exclude) that is every literal in c,
// all of them currently falsified; for the antecedent of an implied
// literal l, it is every other literal of c, each already falsified,
// which is exactly what forced l.
func (s *solver) explain(c Clause, l Literal, hasL bool) []Literal {
	if !hasL {
		return c.Lits
	}
	out := make([]Literal, 0, len(c.Lits)-1)
	for _, lit := range c.Lits {
		if lit != l {
			out = append(out, lit)
		}
	}
	return out
}

// analyze derives a learnt clause and a backjump level from the clause that
// conflicted at the current decision level.
//
// A conflict found at decision level 0 cannot have a first-UIP in the
// usual sense: every variable on the trail is an Implied assignment with
// no decision literal to stop resolution at, so there is nothing to
// "protect" from being resolved away. analyzeLevelZero keeps resolving
// until the working clause is empty, which a genuine level-0 conflict
// always reaches. Every other conflict uses the standard first-UIP walk.
func (s *solver) analyze(conflict clauseRef) (learnt Clause, backjumpLevel int, step ProofStep) {
	if s.trail.level() == 0 {
		learnt, step = s.analyzeLevelZero(conflict)
		return learnt, 0, step
	}
	return s.analyzeUIP(conflict)
}

// analyzeUIP implements first-UIP conflict analysis: walk the trail
// backward from the conflict, resolving away every literal assigned at the
// conflict level until exactly one remains. That one literal is the first
// unique implication point; its negation is the learnt clause's asserting
// literal, and the backjump level is the highest level among the clause's
// other literals.
func (s *solver) analyzeUIP(conflict clauseRef) (Clause, int, ProofStep) {
	d := s.trail.level()
	implicationPoints := 0
	seen := make(map[int]bool)
	var rest []Literal

	var step ProofStep
	step.Conflict = s.clauseByRef(conflict)

	nextIdx := len(s.trail.entries) - 1
	var pivot Literal
	havePivot := false
	confl := conflict

	for {
		if confl != conflict {
			step.Sources = append(step.Sources, s.clauseByRef(confl))
		}
		for _, q := range s.explain(s.clauseByRef(confl), pivot, havePivot) {
			v := q.Var()
			if seen[v] {
				continue
			}
			seen[v] = true
			s.vsids.bumpVar(v)
			if s.states[v].level == d {
				implicationPoints++
			} else {
				rest = append(rest, q)
			}
		}

		var v int
		for {
			entry := s.trail.entries[nextIdx]
			nextIdx--
			v = entry.v
			if seen[v] {
				pivot = entry.lit
				havePivot = true
				break
			}
		}
		implicationPoints--
		if implicationPoints <= 0 {
			break
		}
		confl = s.states[v].antecedent
	}

	asserting := pivot.Negate()
	s.cfg.logger().Debugf("first UIP at level %d: pivot %v, %d literals resolved in", d, pivot, len(step.Sources))
	lits := append([]Literal{asserting}, rest...)

	bj := 0
	for _, l := range rest {
		if lvl := s.states[l.Var()].level; lvl > bj {
			bj = lvl
		}
	}

	step.Learnt = Clause{Lits: lits}
	return step.Learnt, bj, step
}

// analyzeLevelZero performs full resolution, starting from the conflicting
// clause, repeatedly picking the working literal whose variable was assigned
// most recently on the trail and folding in its antecedent (every variable
// here is Implied, so every one has an antecedent). An antecedent mentions
// only variables assigned before the one it forced, so a resolved variable
// never comes back and the recorded Sources replay in order as plain
// resolution. Every working literal is, by construction, falsified under
// the current assignment the whole way through, so the process terminates
// only when nothing is left: the empty clause.
func (s *solver) analyzeLevelZero(conflict clauseRef) (Clause, ProofStep) {
	var step ProofStep
	step.Conflict = s.clauseByRef(conflict)

	working := make(map[Literal]bool)
	for _, l := range step.Conflict.Lits {
		working[l] = true
	}
	resolved := make(map[int]bool)

	for {
		var chosen Literal
		found := false
		for i := len(s.trail.entries) - 1; i >= 0 && !found; i-- {
			if l := s.trail.entries[i].lit.Negate(); working[l] && !resolved[l.Var()] {
				chosen = l
				found = true
			}
		}
		if !found {
			break
		}
		v := chosen.Var()
		resolved[v] = true
		delete(working, chosen)
		s.vsids.bumpVar(v)

		ante := s.clauseByRef(s.states[v].antecedent)
		step.Sources = append(step.Sources, ante)
		forced := chosen.Negate() // the literal this antecedent actually asserts
		for _, l := range ante.Lits {
			if l == forced {
				continue
			}
			if !resolved[l.Var()] {
				working[l] = true
			}
		}
	}

	learnt := Clause{}
	for l := range working {
		learnt.Lits = append(learnt.Lits, l)
	}
	step.Learnt = learnt
	return learnt, step
}
