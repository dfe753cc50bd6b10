package satisfy

import (
	"fmt"
	"sort"
	"strings"
)

// Literal is a signed, non-zero integer: var(l) = |l|, and l's sign is its
// polarity (positive means the variable must be true to satisfy it).
type Literal int

// Var returns the variable a literal refers to.
func (l Literal) Var() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// Positive reports whether the literal is satisfied by its variable being
// true.
func (l Literal) Positive() bool { return l > 0 }

// Negate returns the complementary literal.
func (l Literal) Negate() Literal { return -l }

func mkLit(v int, neg bool) Literal {
	if neg {
		return Literal(-v)
	}
	return Literal(v)
}

// Clause is a disjunction of literals, with no duplicates and no variable
// appearing with both polarities. The empty clause denotes ⊥.
type Clause struct {
	Lits []Literal
}

func (c Clause) isEmpty() bool { return len(c.Lits) == 0 }

// String renders a clause symbolically using the given id->name mapping,
// the inverse of the atom-numbering performed at intake.
func (c Clause) String(names map[int]string) string {
	if len(c.Lits) == 0 {
		return "[]"
	}
	parts := make([]string, len(c.Lits))
	for i, l := range c.Lits {
		name := names[l.Var()]
		if l.Positive() {
			parts[i] = name
		} else {
			parts[i] = "!" + name
		}
	}
	return "(" + strings.Join(parts, " | ") + ")"
}

// Model is the frozen numeric clause/variable model built at intake: a
// positive-integer id for every distinct atom (original atoms first, sorted
// by name, followed by any Tseitin auxiliary variables in creation order),
// and the original clause set translated into that numbering. It is built
// once and never mutated afterward; the CDCL core owns a separate, mutable
// learnt-clause store.
type Model struct {
	NumVars       int
	IDOf          map[string]int
	NameOf        map[int]string
	OriginalAtoms []int // ids of atoms present before any Tseitin encoding, in id order
	Clauses       []Clause
}

// BuildModel performs intake: it assigns variable ids to every atom named in
// cnf, interns each symbolic clause into the numeric model (dropping
// tautologies and duplicate literals), and, if requested,
// runs the subsumption pre-processor (§4.3) over the resulting clause set.
func BuildModel(cnf *CNF, cfg Config) (*Model, error) {
	origNames := make(map[string]bool)
	for _, cl := range cnf.Clauses {
		for _, l := range cl {
			if !isAuxName(l.Name) {
				origNames[l.Name] = true
			}
		}
	}
	sortedOrig := make([]string, 0, len(origNames))
	for name := range origNames {
		sortedOrig = append(sortedOrig, name)
	}
	sort.Strings(sortedOrig)

	idOf := make(map[string]int)
	nameOf := make(map[int]string)
	next := 1
	originalAtoms := make([]int, 0, len(sortedOrig))
	for _, name := range sortedOrig {
		idOf[name] = next
		nameOf[next] = name
		originalAtoms = append(originalAtoms, next)
		next++
	}
	for _, cl := range cnf.Clauses {
		for _, l := range cl {
			if isAuxName(l.Name) {
				if _, ok := idOf[l.Name]; !ok {
					idOf[l.Name] = next
					nameOf[next] = l.Name
					next++
				}
			}
		}
	}

	m := &Model{
		NumVars:       next - 1,
		IDOf:          idOf,
		NameOf:        nameOf,
		OriginalAtoms: originalAtoms,
	}
	for _, cl := range cnf.Clauses {
		lits, tautology := internClause(cl, idOf)
		if tautology {
			continue
		}
		m.Clauses = append(m.Clauses, Clause{Lits: lits})
	}

	if cfg.UseSubsumption {
		m.Clauses = subsume(m.Clauses)
	}

	return m, nil
}

func isAuxName(name string) bool {
	return strings.HasPrefix(name, "_t")
}

// internClause converts a symbolic clause into its numeric form, deduping
// repeated literals and reporting whether the clause is tautological (a
// variable appears with both polarities), in which case the caller drops it
// entirely rather than keeping a trivially-true constraint.
func internClause(cl symClause, idOf map[string]int) ([]Literal, bool) {
	seen := make(map[int]bool) // var -> polarity (true=positive)
	hasSeen := make(map[int]bool)
	out := make([]Literal, 0, len(cl))
	for _, l := range cl {
		id, ok := idOf[l.Name]
		if !ok {
			// Every literal's name was collected into idOf above; reaching
			// here means a caller handed BuildModel a CNF it didn't build.
			panic(&InvariantViolation{Where: fmt.Sprintf("internClause: unknown atom %q", l.Name)})
		}
		positive := !l.Neg
		if hasSeen[id] {
			if seen[id] != positive {
				return nil, true
			}
			continue
		}
		hasSeen[id] = true
		seen[id] = positive
		out = append(out, mkLit(id, l.Neg))
	}
	return out, false
}
