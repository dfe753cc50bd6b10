package satisfy

// restartPolicy tracks how many conflicts have occurred since the last
// restart and decides when the next one is due. Luby-style and geometric
// schedules are common refinements; this tracks the simple fixed-threshold
// policy configured by Config.RestartThreshold.
type restartPolicy struct {
	threshold      int
	sinceLastReset int
}

func newRestartPolicy(cfg Config) *restartPolicy {
	return &restartPolicy{threshold: cfg.RestartThreshold}
}

func (r *restartPolicy) onConflict() bool {
	r.sinceLastReset++
	if r.sinceLastReset >= r.threshold {
		r.sinceLastReset = 0
		return true
	}
	return false
}

// restart backjumps all the way to level 0, returning every variable above
// level 0 to the decision pool, then sweeps the learnt-clause set for
// subsumed clauses using the same pairwise check the preprocessor uses.
// Level-0 assignments whose antecedent is a learnt clause are re-pointed at
// that clause's index in the reduced set; an antecedent that the sweep
// removed is appended back so it stays available to conflict analysis.
func (s *solver) restart() {
	before := len(s.learnt)
	s.backjumpTo(0)
	old := s.learnt
	s.learnt = subsume(s.learnt)
	for _, e := range s.trail.entries { // level 0 only: re-point learnt antecedents
		if st := &s.states[e.v]; st.antecedent.learnt {
			c := old[st.antecedent.idx]
			st.antecedent.idx = -1
			for j := range s.learnt {
				if st.antecedent.idx < 0 && sameClause(c, s.learnt[j]) {
					st.antecedent.idx = j
				}
			}
			if st.antecedent.idx < 0 {
				st.antecedent.idx, s.learnt = len(s.learnt), append(s.learnt, c)
			}
		}
	}
	s.restarts++
	s.cfg.logger().Debugf("restart #%d: %d learnt clauses reduced to %d by subsumption", s.restarts, before, len(s.learnt))
}

// backjumpTo truncates the trail to level b, clearing every variable state
// above it and returning those variables to the VSIDS decision pool with
// their saved phase intact.
func (s *solver) backjumpTo(b int) {
	for _, e := range s.trail.entriesAbove(b) {
		st := s.states[e.v]
		s.vsids.savePhase(e.v, st.value)
		s.states[e.v] = varState{}
		s.vsids.restore(e.v)
	}
	s.trail.truncateToLevel(b)
}
