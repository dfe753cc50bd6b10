package satisfy

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseDIMACS(t *testing.T) {
	for _, tt := range []struct {
		text      string
		want      [][]int
		roundtrip string // if different from text with the comments removed
	}{
		{
			text: `
c No vars or clauses
p cnf 0 0
`,
			want: [][]int{},
		},
		{
			text: `
c No clauses
p cnf 5 0
`,
			want: [][]int{},
			roundtrip: `
p cnf 0 0
`,
		},
		{
			text: `
c 1 var, 1 clause
p cnf 1 1
1 0
`,
			want: [][]int{{1}},
		},
		{
			text: `
c Empty clauses
p cnf 3 5
1 3 0 0 -3 0
0 -2 -1
`,
			want: [][]int{{1, 3}, {}, {-3}, {}, {-2, -1}},
			roundtrip: `
p cnf 3 5
1 3 0
0
-3 0
0
-2 -1 0
`,
		},
		{
			text: `
c DIMACS example file
c
p cnf 4 3
1 3 -4 0
4 0 2
-3
`,
			want: [][]int{{1, 3, -4}, {4}, {2, -3}},
			roundtrip: `
p cnf 4 3
1 3 -4 0
4 0
2 -3 0
`,
		},
		{
			text: `
c percent sign
p cnf 2 2
1 2 0
-1 2 0
%
1 2 3
x y z
`,
			want: [][]int{{1, 2}, {-1, 2}},
			roundtrip: `
p cnf 2 2
1 2 0
-1 2 0
`,
		},
	} {
		text := strings.TrimSpace(tt.text)
		roundtrip := tt.roundtrip
		if roundtrip == "" {
			var b strings.Builder
			for _, line := range strings.Split(text, "\n") {
				if !strings.HasPrefix(line, "c") {
					fmt.Fprintln(&b, line)
				}
			}
			roundtrip = b.String()
		}
		roundtrip = strings.TrimSpace(roundtrip)
		name := strings.TrimPrefix(text[:strings.IndexByte(text, '\n')], "c ")
		t.Run(name, func(t *testing.T) {
			got, err := ParseDIMACS(strings.NewReader(text))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(got, tt.want, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("ParseDIMACS (-got, +want):\n%s", diff)
			}

			var b strings.Builder
			if err := WriteDIMACS(&b, tt.want); err != nil {
				t.Fatal(err)
			}
			gotText := strings.TrimSpace(b.String())
			if gotText != roundtrip {
				t.Fatalf("WriteDIMACS(%v): got\n\n%s\n\nwant:\n\n%s\n\n", tt.want, gotText, roundtrip)
			}

			// The parsed clauses must also build a well-formed numeric
			// model: each nonzero input variable id gets a stable "pN" name,
			// and NumVars tracks the largest variable actually referenced
			// (ParseDIMACS's own problem-line vars count is deliberately
			// discarded once validated, per WriteDIMACS's doc comment).
			m, err := buildNumericModel(got, DefaultConfig())
			if err != nil {
				t.Fatalf("buildNumericModel: %v", err)
			}
			wantMaxVar := 0
			for _, cl := range tt.want {
				for _, v := range cl {
					if v < 0 {
						v = -v
					}
					if v > wantMaxVar {
						wantMaxVar = v
					}
				}
			}
			if m.NumVars != wantMaxVar {
				t.Errorf("buildNumericModel NumVars = %d, want %d", m.NumVars, wantMaxVar)
			}
			for v := 1; v <= wantMaxVar; v++ {
				want := fmt.Sprintf("p%d", v)
				if got := m.NameOf[v]; got != want {
					t.Errorf("NameOf[%d] = %q, want %q", v, got, want)
				}
				if m.IDOf[want] != v {
					t.Errorf("IDOf[%q] = %d, want %d", want, m.IDOf[want], v)
				}
			}
		})
	}
}

func TestParseDIMACSPercent(t *testing.T) {
	in := `p cnf 2 2
1 2 0
-1 2 0
%
1 2 3
x y z
`
	got, err := ParseDIMACS(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := [][]int{{1, 2}, {-1, 2}}
	if diff := cmp.Diff(got, want, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("ParseDIMACS (-got, +want):\n%s", diff)
	}
}

// TestParseDIMACSReportsPositionedErrors exercises the *ParseError
// integration: malformed DIMACS text must fail with a *ParseError carrying
// the 1-based line number of the offending line, the same error type
// ParseInfix reports for malformed infix syntax.
func TestParseDIMACSReportsPositionedErrors(t *testing.T) {
	for _, tt := range []struct {
		name     string
		text     string
		wantLine int
	}{
		{
			name:     "bad problem line field count",
			text:     "c comment\np cnf 1\n1 0\n",
			wantLine: 2,
		},
		{
			name:     "non-cnf format",
			text:     "p sat 1 1\n1 0\n",
			wantLine: 1,
		},
		{
			name:     "non-numeric literal",
			text:     "p cnf 1 1\n1 x 0\n",
			wantLine: 2,
		},
		{
			name:     "duplicate problem line",
			text:     "p cnf 1 1\np cnf 1 1\n1 0\n",
			wantLine: 2,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDIMACS(strings.NewReader(tt.text))
			if err == nil {
				t.Fatal("expected an error, got nil")
			}
			perr, ok := err.(*ParseError)
			if !ok {
				t.Fatalf("got error of type %T, want *ParseError: %v", err, err)
			}
			if perr.Pos.Line != tt.wantLine {
				t.Errorf("Pos.Line = %d, want %d", perr.Pos.Line, tt.wantLine)
			}
		})
	}
}

func TestSolveDIMACSEndToEnd(t *testing.T) {
	sat := "p cnf 2 2\n1 2 0\n-1 2 0\n"
	result, err := SolveDIMACS(strings.NewReader(sat), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if result.Status != Sat {
		t.Fatalf("got %s, want SAT", result.Status)
	}
	if !solutionIsValidNumeric([][]int{{1, 2}, {-1, 2}}, result.Assignment) {
		t.Errorf("assignment %v does not satisfy the formula", result.Assignment)
	}

	unsat := "p cnf 1 2\n1 0\n-1 0\n"
	result, err = SolveDIMACS(strings.NewReader(unsat), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if result.Status != Unsat {
		t.Fatalf("got %s, want UNSAT", result.Status)
	}
	if result.Proof == nil || result.Proof.Verify() != nil {
		t.Errorf("expected a verifiable proof for an unsatisfiable DIMACS input")
	}
}
