package satisfy

// symLit is a symbolic (pre-numbering) literal: an atom name plus polarity.
// Clauses built by the normalizer and the Tseitin encoder are expressed in
// terms of symLit until the numeric model (model.go) assigns integer ids.
type symLit struct {
	Name string
	Neg  bool
}

func (l symLit) negate() symLit { return symLit{Name: l.Name, Neg: !l.Neg} }

// symClause is a disjunction of symLits, in the order they were produced.
// Duplicate and tautologous literals are not removed here; that cleanup
// happens at intake into the numeric model.
type symClause []symLit

// CNF is a formula in conjunctive normal form over symbolic literals: the
// conjunction of its Clauses. An empty Clauses slice denotes the trivially
// true formula (⊤); a single empty clause denotes ⊥.
type CNF struct {
	Clauses     []symClause
	UsedTseitin bool
}

// symCNF is the intermediate representation used while normalizing: either
// a concrete list of clauses, or one of the two constants.
type symCNF struct {
	clauses  []symClause
	trivial  bool // true if the whole formula collapsed to a constant
	constant bool // the constant's value, meaningful only if trivial
}

func cnfClauses(clauses []symClause) symCNF { return symCNF{clauses: clauses} }
func cnfConst(value bool) symCNF            { return symCNF{trivial: true, constant: value} }

// cnfAnd combines two CNFs under conjunction: clauses concatenate, and the
// constants ⊤ (identity) / ⊥ (absorbing) are honored.
func cnfAnd(a, b symCNF) symCNF {
	if a.trivial {
		if !a.constant {
			return cnfConst(false)
		}
		return b
	}
	if b.trivial {
		if !b.constant {
			return cnfConst(false)
		}
		return a
	}
	out := make([]symClause, 0, len(a.clauses)+len(b.clauses))
	out = append(out, a.clauses...)
	out = append(out, b.clauses...)
	return cnfClauses(out)
}

// cnfOr distributes disjunction over the (possibly constant) CNFs a and b:
// A ∨ (B ∧ C) = (A ∨ B) ∧ (A ∨ C), generalized to full clause sets.
func cnfOr(a, b symCNF) symCNF {
	if a.trivial {
		if a.constant {
			return cnfConst(true)
		}
		return b
	}
	if b.trivial {
		if b.constant {
			return cnfConst(true)
		}
		return a
	}
	out := make([]symClause, 0, len(a.clauses)*len(b.clauses))
	for _, ca := range a.clauses {
		for _, cb := range b.clauses {
			merged := make(symClause, 0, len(ca)+len(cb))
			merged = append(merged, ca...)
			merged = append(merged, cb...)
			out = append(out, merged)
		}
	}
	return cnfClauses(out)
}
