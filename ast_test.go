package satisfy

import "testing"

func equalNode(a, b *Node) bool {
	if a.Kind != b.Kind || a.Name != b.Name || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !equalNode(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

func TestNodeStringLeaf(t *testing.T) {
	for _, tt := range []struct {
		n    *Node
		want string
	}{
		{Atom("a"), "a"},
		{Not(Atom("a")), "!a"},
		{And(Atom("a"), Atom("b")), "a & b"},
		{Or(Atom("a"), Atom("b"), Atom("c")), "a | b | c"},
		{ImpliesNode(Atom("a"), Atom("b")), "a -> b"},
		{IffNode(Atom("a"), Atom("b")), "a <-> b"},
		{TrueNode(), "top"},
		{FalseNode(), "bottom"},
	} {
		if got := tt.n.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestNodeStringRoundTrip(t *testing.T) {
	// String() always parenthesizes non-atomic subexpressions, so rather
	// than hand-predicting its exact output, check that re-parsing it
	// reproduces a structurally identical tree.
	for _, n := range []*Node{
		Not(And(Atom("a"), Atom("b"))),
		And(Not(Atom("a")), Atom("b")),
		Or(And(Atom("a"), Atom("b")), Atom("c")),
		ImpliesNode(Or(Atom("a"), Atom("b")), And(Atom("c"), Atom("d"))),
		IffNode(IffNode(Atom("a"), Atom("b")), Atom("c")),
		Not(Not(Atom("a"))),
	} {
		s := n.String()
		reparsed, err := ParseInfix(s)
		if err != nil {
			t.Fatalf("ParseInfix(%q) error: %v", s, err)
		}
		if !equalNode(n, reparsed) {
			t.Errorf("round trip through %q: got %#v, want %#v", s, reparsed, n)
		}
	}
}

func TestAndOrFlatten(t *testing.T) {
	n := And(And(Atom("a"), Atom("b")), Atom("c"))
	if len(n.Children) != 3 {
		t.Fatalf("And did not flatten: got %d children, want 3 (%s)", len(n.Children), n)
	}

	n2 := Or(Atom("a"), Or(Atom("b"), Atom("c")))
	if len(n2.Children) != 3 {
		t.Fatalf("Or did not flatten: got %d children, want 3 (%s)", len(n2.Children), n2)
	}
}

func TestIsLiteral(t *testing.T) {
	for _, tt := range []struct {
		n    *Node
		want bool
	}{
		{Atom("a"), true},
		{Not(Atom("a")), true},
		{Not(Not(Atom("a"))), false},
		{And(Atom("a"), Atom("b")), false},
		{TrueNode(), false},
	} {
		if got := tt.n.IsLiteral(); got != tt.want {
			t.Errorf("%s.IsLiteral() = %v, want %v", tt.n, got, tt.want)
		}
	}
}
