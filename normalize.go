package satisfy

// tseitinThreshold is the fixed structural-complexity threshold that gates
// Tseitin encoding. It is not a Config field: it is an internal tuning
// constant, not a caller-facing knob.
const tseitinThreshold = 8

// Normalize runs the CNF normalization pipeline:
//
//  1. eliminate Iff/Implies, leaving only Atom/Not/And/Or/True/False;
//  2. absorb constants and flatten associative operators;
//  3. compute the structural-complexity score of that form;
//  4. if Tseitin is enabled and the score exceeds the threshold, Tseitin-
//     encode it (linear size, handles Not of arbitrary subexpressions);
//     otherwise push negation inward to NNF and distribute Or over And.
//
// The complexity gate runs on step 2's output, not on the final distributed
// CNF: that is the only reading under which the Tseitin encoding rule
// "t ↔ ¬u" — negation of a non-literal subexpression — can ever apply,
// since NNF never produces such a node.
func Normalize(ast *Node, cfg Config) (*CNF, error) {
	core := simplifyConstants(elimIffImplies(ast))

	if core.Kind == KindTrue {
		return &CNF{}, nil
	}
	if core.Kind == KindFalse {
		return &CNF{Clauses: []symClause{{}}}, nil
	}

	if cfg.UseTseitin && complexityScore(core) > tseitinThreshold {
		return tseitinEncode(core)
	}

	nnf := simplifyConstants(pushNegation(core))
	if nnf.Kind == KindTrue {
		return &CNF{}, nil
	}
	if nnf.Kind == KindFalse {
		return &CNF{Clauses: []symClause{{}}}, nil
	}
	return fromSymCNF(distribute(nnf)), nil
}

// elimIffImplies rewrites A<->B to (A->B)&(B->A) and A->B to !A|B,
// bottom-up, to fixpoint. The result contains only
// Atom/Not/And/Or/True/False.
func elimIffImplies(n *Node) *Node {
	switch n.Kind {
	case KindAtom, KindTrue, KindFalse:
		return n
	case KindNot:
		return Not(elimIffImplies(n.Children[0]))
	case KindAnd:
		children := make([]*Node, len(n.Children))
		for i, c := range n.Children {
			children[i] = elimIffImplies(c)
		}
		return And(children...)
	case KindOr:
		children := make([]*Node, len(n.Children))
		for i, c := range n.Children {
			children[i] = elimIffImplies(c)
		}
		return Or(children...)
	case KindImplies:
		a := elimIffImplies(n.Children[0])
		b := elimIffImplies(n.Children[1])
		return Or(Not(a), b)
	case KindIff:
		a := elimIffImplies(n.Children[0])
		b := elimIffImplies(n.Children[1])
		return And(Or(Not(a), b), Or(Not(b), a))
	default:
		return n
	}
}

// simplifyConstants absorbs ⊤/⊥ (A|⊤=⊤, A&⊥=⊥, etc.) and flattens
// associative operators on every reconstruction. n must already
// be free of Implies/Iff.
func simplifyConstants(n *Node) *Node {
	switch n.Kind {
	case KindAtom, KindTrue, KindFalse:
		return n
	case KindNot:
		c := simplifyConstants(n.Children[0])
		switch c.Kind {
		case KindTrue:
			return FalseNode()
		case KindFalse:
			return TrueNode()
		case KindNot:
			return c.Children[0]
		default:
			return Not(c)
		}
	case KindAnd:
		var kept []*Node
		for _, child := range n.Children {
			c := simplifyConstants(child)
			switch c.Kind {
			case KindTrue:
				continue
			case KindFalse:
				return FalseNode()
			default:
				kept = append(kept, c)
			}
		}
		if len(kept) == 0 {
			return TrueNode()
		}
		if len(kept) == 1 {
			return kept[0]
		}
		return And(kept...)
	case KindOr:
		var kept []*Node
		for _, child := range n.Children {
			c := simplifyConstants(child)
			switch c.Kind {
			case KindFalse:
				continue
			case KindTrue:
				return TrueNode()
			default:
				kept = append(kept, c)
			}
		}
		if len(kept) == 0 {
			return FalseNode()
		}
		if len(kept) == 1 {
			return kept[0]
		}
		return Or(kept...)
	default:
		return n
	}
}

// complexityScore is the structural-complexity metric used to gate Tseitin
// encoding: 1 for
// atoms/constants, 1+score(child) for negation, and 1+sum(scores)+penalty
// for n-ary And/Or where penalty is n when n>2, else 0.
func complexityScore(n *Node) int {
	switch n.Kind {
	case KindAtom, KindTrue, KindFalse:
		return 1
	case KindNot:
		return 1 + complexityScore(n.Children[0])
	case KindAnd, KindOr:
		sum := 0
		for _, c := range n.Children {
			sum += complexityScore(c)
		}
		penalty := 0
		if len(n.Children) > 2 {
			penalty = len(n.Children)
		}
		return 1 + sum + penalty
	default:
		sum := 0
		for _, c := range n.Children {
			sum += complexityScore(c)
		}
		return 1 + sum
	}
}

// pushNegation rewrites n (Iff/Implies-free) into negation normal form:
// De Morgan's laws, double-negation elimination, and constant negation.
func pushNegation(n *Node) *Node { return nnf(n, false) }

func nnf(n *Node, neg bool) *Node {
	switch n.Kind {
	case KindAtom:
		if neg {
			return Not(n)
		}
		return n
	case KindTrue:
		if neg {
			return FalseNode()
		}
		return TrueNode()
	case KindFalse:
		if neg {
			return TrueNode()
		}
		return FalseNode()
	case KindNot:
		return nnf(n.Children[0], !neg)
	case KindAnd:
		children := make([]*Node, len(n.Children))
		for i, c := range n.Children {
			children[i] = nnf(c, neg)
		}
		if neg {
			return Or(children...)
		}
		return And(children...)
	case KindOr:
		children := make([]*Node, len(n.Children))
		for i, c := range n.Children {
			children[i] = nnf(c, neg)
		}
		if neg {
			return And(children...)
		}
		return Or(children...)
	default:
		return n
	}
}

// distribute converts an NNF tree (Not appears only over atoms) into CNF by
// distributing Or over And.
func distribute(n *Node) symCNF {
	switch n.Kind {
	case KindAtom:
		return cnfClauses([]symClause{{{Name: n.Name, Neg: false}}})
	case KindTrue:
		return cnfConst(true)
	case KindFalse:
		return cnfConst(false)
	case KindNot:
		// n.Children[0] is guaranteed to be an atom in NNF.
		return cnfClauses([]symClause{{{Name: n.Children[0].Name, Neg: true}}})
	case KindAnd:
		acc := cnfConst(true)
		for _, c := range n.Children {
			acc = cnfAnd(acc, distribute(c))
		}
		return acc
	case KindOr:
		acc := cnfConst(false)
		for _, c := range n.Children {
			acc = cnfOr(acc, distribute(c))
		}
		return acc
	default:
		return cnfConst(false)
	}
}

func fromSymCNF(c symCNF) *CNF {
	if c.trivial {
		if c.constant {
			return &CNF{}
		}
		return &CNF{Clauses: []symClause{{}}}
	}
	return &CNF{Clauses: c.clauses}
}
