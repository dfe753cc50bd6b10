package satisfy

// Status is the three-way outcome of a solve attempt.
type Status int

const (
	Unsat Status = iota
	Sat
	Unknown // the configured Deadline expired before a verdict was reached
)

func (st Status) String() string {
	switch st {
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	default:
		return "UNKNOWN"
	}
}

// Stats summarizes solver activity, independent of the outcome.
type Stats struct {
	Decisions     int64
	Propagations  int64
	Conflicts     int64
	Restarts      int64
	LearntClauses int
}

// Result is the full output of a solve attempt.
type Result struct {
	Status     Status
	Assignment map[string]bool // every original atom, only when Status == Sat
	Proof      *Proof          // a resolution refutation, only when Status == Unsat
	Stats      Stats
}

// solver holds all mutable CDCL state for one solve attempt. It is built
// fresh from a Model and discarded after Solve returns; the Model itself is
// immutable and may be reused.
type solver struct {
	model *Model
	cfg   Config

	learnt []Clause
	states []varState // index 1..model.NumVars

	trail      *trail
	vsids      *vsids
	restartPol *restartPolicy

	proof []ProofStep

	decisions    int64
	propagations int64
	conflicts    int64
	restarts     int64
}

func newSolver(m *Model, cfg Config) *solver {
	return &solver{
		model:      m,
		cfg:        cfg,
		states:     make([]varState, m.NumVars+1),
		trail:      newTrail(),
		vsids:      newVSIDS(m.NumVars, cfg),
		restartPol: newRestartPolicy(cfg),
	}
}

// SolveAST runs the full pipeline (normalize, build model, solve) over an
// already-parsed formula.
func SolveAST(ast *Node, cfg Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cnf, err := Normalize(ast, cfg)
	if err != nil {
		return nil, err
	}
	m, err := BuildModel(cnf, cfg)
	if err != nil {
		return nil, err
	}
	return solve(m, cfg), nil
}

// Solve parses src as an infix propositional formula and solves it.
func Solve(src string, cfg Config) (*Result, error) {
	ast, err := ParseInfix(src)
	if err != nil {
		return nil, err
	}
	return SolveAST(ast, cfg)
}

// solve drives the CDCL loop to completion: propagate, and on conflict
// analyze/backjump/learn (or declare UNSAT); with no conflict, decide a new
// variable, or declare SAT once every variable is assigned.
func solve(m *Model, cfg Config) *Result {
	s := newSolver(m, cfg)

	if step, unsat := s.emptyClauseAtIntake(); unsat {
		s.proof = append(s.proof, step)
		return s.unsatResult()
	}

	for {
		ref, hasConflict := s.propagate()
		if hasConflict {
			s.conflicts++
			s.cfg.logger().Debugf("conflict #%d at level %d: clause %v", s.conflicts, s.trail.level(), s.clauseByRef(ref))
			learnt, bj, step := s.analyze(ref)
			s.vsids.decayAll()
			s.proof = append(s.proof, step)
			s.cfg.logger().Debugf("learnt %v, backjumping to level %d", learnt, bj)
			if s.cfg.expired() {
				return s.unknownResult()
			}
			if learnt.isEmpty() {
				return s.unsatResult()
			}
			s.backjumpTo(bj)
			s.learnt = append(s.learnt, learnt)
			if s.cfg.UseRestart && s.restartPol.onConflict() {
				s.restart()
				if s.cfg.expired() {
					return s.unknownResult()
				}
			}
			continue
		}

		v := s.vsids.pick()
		if v == 0 {
			return s.satResult()
		}
		val := s.vsids.savedPhase(v)
		s.trail.pushDecision(mkLit(v, !val))
		s.states[v] = varState{assigned: true, value: val, kind: kindDecision, level: s.trail.level()}
		s.decisions++
		s.cfg.logger().Debugf("decide var %d = %v (decision %d, level %d, activity %v)",
			v, val, s.decisions, s.trail.level(), s.vsids.activity[v])
	}
}

// emptyClauseAtIntake checks for a clause that is already empty before any
// propagation runs, the one corner case the general analyze loop can't
// reach on its own (there is no conflicting assignment yet to analyze). It
// is equivalent in effect to running analyze at level 0 on that clause, but
// is simpler to state directly: the empty clause resolves to itself.
func (s *solver) emptyClauseAtIntake() (ProofStep, bool) {
	for _, c := range s.model.Clauses {
		if c.isEmpty() {
			return ProofStep{Learnt: Clause{}, Conflict: c}, true
		}
	}
	return ProofStep{}, false
}

func (s *solver) stats() Stats {
	return Stats{
		Decisions:     s.decisions,
		Propagations:  s.propagations,
		Conflicts:     s.conflicts,
		Restarts:      s.restarts,
		LearntClauses: len(s.learnt),
	}
}

func (s *solver) satResult() *Result {
	assignment := make(map[string]bool, len(s.model.OriginalAtoms))
	for _, v := range s.model.OriginalAtoms {
		st := s.states[v]
		assignment[s.model.NameOf[v]] = st.assigned && st.value
	}
	return &Result{Status: Sat, Assignment: assignment, Stats: s.stats()}
}

func (s *solver) unsatResult() *Result {
	return &Result{Status: Unsat, Proof: &Proof{Steps: s.proof}, Stats: s.stats()}
}

func (s *solver) unknownResult() *Result {
	return &Result{Status: Unknown, Stats: s.stats()}
}
