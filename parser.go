package satisfy

import "fmt"

// parser implements a precedence-climbing descent over the token stream
// produced by lexer, following the tightest-to-loosest precedence table:
// not > and > or > implies (right-assoc) > iff.
type parser struct {
	lex  *lexer
	cur  token
	peek *token // one token of lookahead, filled lazily
}

// ParseInfix parses a single infix propositional formula terminated by
// end-of-input. It returns a ParseError for any malformed input.
func ParseInfix(src string) (*Node, error) {
	p := &parser{lex: newLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	n, err := p.parseIff()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokEOF {
		return nil, &ParseError{Pos: p.cur.pos, Msg: fmt.Sprintf("unexpected trailing input near %q", p.cur.text)}
	}
	return n, nil
}

func (p *parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.cur = t
	return nil
}

func (p *parser) parseIff() (*Node, error) {
	left, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokIff {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		left = IffNode(left, right)
	}
	return left, nil
}

// parseImplies is right-associative: a -> b -> c parses as a -> (b -> c).
func (p *parser) parseImplies() (*Node, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.cur.kind == tokImplies {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		return ImpliesNode(left, right), nil
	}
	return left, nil
}

func (p *parser) parseOr() (*Node, error) {
	children := []*Node{}
	first, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	children = append(children, first)
	for p.cur.kind == tokOr {
		if err := p.advance(); err != nil {
			return nil, err
		}
		next, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		children = append(children, next)
	}
	if len(children) == 1 {
		return children[0], nil
	}
	return Or(children...), nil
}

func (p *parser) parseAnd() (*Node, error) {
	children := []*Node{}
	first, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	children = append(children, first)
	for p.cur.kind == tokAnd {
		if err := p.advance(); err != nil {
			return nil, err
		}
		next, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		children = append(children, next)
	}
	if len(children) == 1 {
		return children[0], nil
	}
	return And(children...), nil
}

func (p *parser) parseNot() (*Node, error) {
	if p.cur.kind == tokNot {
		if err := p.advance(); err != nil {
			return nil, err
		}
		child, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return Not(child), nil
	}
	return p.parseAtom()
}

func (p *parser) parseAtom() (*Node, error) {
	switch p.cur.kind {
	case tokTrue:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return TrueNode(), nil
	case tokFalse:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return FalseNode(), nil
	case tokIdent:
		name := p.cur.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		return Atom(name), nil
	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		n, err := p.parseIff()
		if err != nil {
			return nil, err
		}
		if p.cur.kind != tokRParen {
			return nil, &ParseError{Pos: p.cur.pos, Msg: "expected ')'"}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return n, nil
	default:
		return nil, &ParseError{Pos: p.cur.pos, Msg: "expected atom, constant, '!' or '('"}
	}
}
