package satisfy

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseDIMACS parses text in the DIMACS CNF format, reporting any malformed
// input as a *ParseError positioned at the offending line (Col is always 1;
// DIMACS's field-based grammar has no finer-grained column to report).
//
// For convenience, a few non-standard variations are accepted:
//
//   * Comments (lines beginning with 'c') may appear anywhere, not just in the
//     preamble.
//   * The problem line may be missing.
//
func ParseDIMACS(r io.Reader) ([][]int, error) {
	var problem struct {
		vars    int
		clauses int
	}
	var clauses [][]int
	var clause []int
	s := bufio.NewScanner(r)
	lineNo := 0
	perr := func(msg string) error {
		return &ParseError{Pos: Position{Line: lineNo, Col: 1}, Msg: msg}
	}
	for s.Scan() {
		lineNo++
		line := s.Text()
		if len(line) == 0 || line[0] == 'c' {
			continue
		}
		// Some CNF formats attach extra data in a trailer after a line
		// containing a single %.
		if line == "%" {
			break
		}
		if line[0] == 'p' {
			if len(clauses) > 0 {
				return nil, perr("problem line appears after clauses")
			}
			if problem.vars > 0 {
				return nil, perr("multiple problem lines")
			}
			fields := strings.Fields(line)
			if len(fields) != 4 {
				return nil, perr(fmt.Sprintf("malformed problem line %q", line))
			}
			if fields[0] != "p" {
				return nil, perr(fmt.Sprintf("problem line starts with unexpected signifier %q", fields[0]))
			}
			if fields[1] != "cnf" {
				return nil, perr(fmt.Sprintf("only cnf supported; got %q", fields[1]))
			}
			var err error
			problem.vars, err = strconv.Atoi(fields[2])
			if err != nil {
				return nil, perr(fmt.Sprintf("malformed #vars in problem line: %s", err))
			}
			problem.clauses, err = strconv.Atoi(fields[3])
			if err != nil {
				return nil, perr(fmt.Sprintf("malformed #clauses in problem line: %s", err))
			}
			if problem.vars < 0 {
				return nil, perr(fmt.Sprintf("invalid #vars %d", problem.vars))
			}
			if problem.clauses < 0 {
				return nil, perr(fmt.Sprintf("invalid #clauses %d", problem.clauses))
			}
			continue
		}
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, perr(fmt.Sprintf("invalid variable: %s", err))
			}
			if n == 0 {
				clauses = append(clauses, clause)
				clause = nil
			} else {
				clause = append(clause, n)
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if len(clause) > 0 {
		clauses = append(clauses, clause)
	}

	if problem.vars > 0 {
		vars := make(map[int]struct{})
		for _, clause := range clauses {
			for _, v := range clause {
				if v < 0 {
					v = -v
				}
				if v > problem.vars {
					return nil, perr(fmt.Sprintf("formula contains var %d, but problem line asserts %d vars (only vars in [1, %d] expected)",
						v, problem.vars, problem.vars))
				}
				vars[v] = struct{}{}
			}
		}
		// Allow some vars to be missing.
		if len(vars) > problem.vars {
			return nil, perr(fmt.Sprintf("problem line specifies %d vars, but there are %d", problem.vars, len(vars)))
		}
		if len(clauses) != problem.clauses {
			return nil, perr(fmt.Sprintf("problem line specifies %d clauses, but there are %d", problem.clauses, len(clauses)))
		}
	}
	return clauses, nil
}

// WriteDIMACS renders clauses (in the same [][]int form ParseDIMACS
// returns) as a DIMACS CNF file. The problem line's counts are always
// recomputed from clauses itself — the number of clauses given, and the
// largest variable actually referenced — rather than threaded through from
// a parse, since ParseDIMACS does not retain the original problem line
// once it has validated against it.
func WriteDIMACS(w io.Writer, clauses [][]int) error {
	maxVar := 0
	for _, cl := range clauses {
		for _, v := range cl {
			if v < 0 {
				v = -v
			}
			if v > maxVar {
				maxVar = v
			}
		}
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", maxVar, len(clauses)); err != nil {
		return err
	}
	for _, cl := range clauses {
		parts := make([]string, 0, len(cl)+1)
		for _, v := range cl {
			parts = append(parts, strconv.Itoa(v))
		}
		parts = append(parts, "0")
		if _, err := fmt.Fprintln(bw, strings.Join(parts, " ")); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// buildNumericModel builds a Model directly from DIMACS-style numeric
// clauses, preserving each input variable's own id (unlike BuildModel,
// which assigns fresh ids to symbolic atom names): id N is named "pN".
func buildNumericModel(clauses [][]int, cfg Config) (*Model, error) {
	maxVar := 0
	for _, cl := range clauses {
		for _, v := range cl {
			if v == 0 {
				return nil, &EncodingError{Msg: "clause contains a zero literal"}
			}
			if av := v; av < 0 {
				av = -av
				if av > maxVar {
					maxVar = av
				}
			} else if av > maxVar {
				maxVar = av
			}
		}
	}

	idOf := make(map[string]int, maxVar)
	nameOf := make(map[int]string, maxVar)
	originalAtoms := make([]int, 0, maxVar)
	for v := 1; v <= maxVar; v++ {
		name := "p" + strconv.Itoa(v)
		idOf[name] = v
		nameOf[v] = name
		originalAtoms = append(originalAtoms, v)
	}

	m := &Model{NumVars: maxVar, IDOf: idOf, NameOf: nameOf, OriginalAtoms: originalAtoms}
	for _, cl := range clauses {
		lits, tautology := internNumericClause(cl)
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

func internNumericClause(cl []int) ([]Literal, bool) {
	seen := make(map[int]bool)
	hasSeen := make(map[int]bool)
	out := make([]Literal, 0, len(cl))
	for _, v := range cl {
		id := v
		positive := v > 0
		if !positive {
			id = -v
		}
		if hasSeen[id] {
			if seen[id] != positive {
				return nil, true
			}
			continue
		}
		hasSeen[id] = true
		seen[id] = positive
		out = append(out, Literal(v))
	}
	return out, false
}

// SolveCNF solves a formula given directly as DIMACS-style numeric clauses
// (nonzero signed integers, no trailing 0 terminators), bypassing infix
// parsing and symbolic normalization.
func SolveCNF(clauses [][]int, cfg Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	m, err := buildNumericModel(clauses, cfg)
	if err != nil {
		return nil, err
	}
	return solve(m, cfg), nil
}

// SolveDIMACS parses r as a DIMACS CNF file and solves it.
func SolveDIMACS(r io.Reader, cfg Config) (*Result, error) {
	clauses, err := ParseDIMACS(r)
	if err != nil {
		return nil, err
	}
	return SolveCNF(clauses, cfg)
}
