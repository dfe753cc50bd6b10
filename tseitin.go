package satisfy

import "fmt"

// tseitinEncoder allocates fresh auxiliary variable names in a namespace
// ("_t1", "_t2", ...) that can never collide with a user atom, since the
// infix grammar requires atoms to start with a letter.
type tseitinEncoder struct {
	counter int
}

func (e *tseitinEncoder) fresh() string {
	e.counter++
	return fmt.Sprintf("_t%d", e.counter)
}

// tseitinEncode encodes core into equisatisfiable CNF: for every non-literal
// subexpression, allocate a fresh variable and emit the CNF of its
// biconditional definition, then force the root true with a unit clause.
func tseitinEncode(core *Node) (*CNF, error) {
	enc := &tseitinEncoder{}
	rootLit, clauses, err := enc.encode(core)
	if err != nil {
		return nil, err
	}
	clauses = append(clauses, symClause{rootLit})
	return &CNF{Clauses: clauses, UsedTseitin: true}, nil
}

// encode returns the literal that stands for n (reusing the atom's own
// literal when n already is one; every other subexpression gets a fresh
// auxiliary variable) along with every definitional clause accumulated
// while encoding n's descendants.
func (e *tseitinEncoder) encode(n *Node) (symLit, []symClause, error) {
	switch n.Kind {
	case KindAtom:
		return symLit{Name: n.Name}, nil, nil
	case KindNot:
		child := n.Children[0]
		if child.Kind == KindAtom {
			return symLit{Name: child.Name, Neg: true}, nil, nil
		}
		uLit, clauses, err := e.encode(child)
		if err != nil {
			return symLit{}, nil, err
		}
		tv := e.fresh()
		tLit := symLit{Name: tv}
		// t ↔ ¬u : (¬t ∨ ¬u) ∧ (u ∨ t)
		clauses = append(clauses,
			symClause{tLit.negate(), uLit.negate()},
			symClause{uLit, tLit},
		)
		return tLit, clauses, nil
	case KindAnd:
		uLits, clauses, err := e.encodeChildren(n.Children)
		if err != nil {
			return symLit{}, nil, err
		}
		tv := e.fresh()
		tLit := symLit{Name: tv}
		for _, u := range uLits {
			clauses = append(clauses, symClause{tLit.negate(), u}) // (¬t ∨ u_i)
		}
		big := make(symClause, 0, len(uLits)+1)
		for _, u := range uLits {
			big = append(big, u.negate())
		}
		big = append(big, tLit) // (¬u1 ∨ ... ∨ ¬uk ∨ t)
		clauses = append(clauses, big)
		return tLit, clauses, nil
	case KindOr:
		uLits, clauses, err := e.encodeChildren(n.Children)
		if err != nil {
			return symLit{}, nil, err
		}
		tv := e.fresh()
		tLit := symLit{Name: tv}
		big := make(symClause, 0, len(uLits)+1)
		big = append(big, uLits...)
		big = append(big, tLit.negate()) // (¬t ∨ u1 ∨ ... ∨ uk)
		clauses = append(clauses, big)
		for _, u := range uLits {
			clauses = append(clauses, symClause{u.negate(), tLit}) // (¬u_i ∨ t)
		}
		return tLit, clauses, nil
	case KindTrue, KindFalse:
		return symLit{}, nil, &EncodingError{Msg: "tseitin encoder received a bare constant; constants must be absorbed before encoding"}
	default:
		return symLit{}, nil, &EncodingError{Msg: fmt.Sprintf("tseitin encoder cannot handle node kind %s; Iff/Implies must be eliminated first", n.Kind)}
	}
}

func (e *tseitinEncoder) encodeChildren(children []*Node) ([]symLit, []symClause, error) {
	lits := make([]symLit, 0, len(children))
	var clauses []symClause
	for _, c := range children {
		lit, cs, err := e.encode(c)
		if err != nil {
			return nil, nil, err
		}
		lits = append(lits, lit)
		clauses = append(clauses, cs...)
	}
	return lits, clauses, nil
}
