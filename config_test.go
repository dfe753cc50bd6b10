package satisfy

import (
	"bytes"
	"strings"
	"testing"
)

func TestDefaultConfigLoggerIsNop(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.logger() != NopLogger {
		t.Errorf("DefaultConfig should use NopLogger")
	}
	// NopLogger.Debugf must be safe to call and must produce no output.
	cfg.logger().Debugf("%d", 1)
}

func TestConfigLoggerDefaultsWhenNil(t *testing.T) {
	var cfg Config
	if cfg.logger() != NopLogger {
		t.Errorf("a Config with a nil Logger should fall back to NopLogger")
	}
}

func TestPrettyLoggerDebugf(t *testing.T) {
	var buf bytes.Buffer
	l := NewPrettyLogger(&buf)
	l.Debugf("var %d = %v", 3, true)
	got := buf.String()
	if !strings.Contains(got, "3") || !strings.Contains(got, "true") {
		t.Errorf("PrettyLogger.Debugf output %q missing formatted arguments", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Errorf("PrettyLogger.Debugf should terminate each line, got %q", got)
	}
}

// TestSolveWithPrettyLoggerTracesSearch exercises the Logger plumbing
// end-to-end: a Config with a PrettyLogger set must drive Debugf calls from
// the propagate and conflict/learn paths as the solver actually runs, not
// just as a standalone unit.
func TestSolveWithPrettyLoggerTracesSearch(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Logger = NewPrettyLogger(&buf)
	cfg.RestartThreshold = 1

	// (a -> b) & (b -> c) & (c -> !a) & a is unsatisfiable: propagation alone
	// reaches a conflict at level 0, which is analyzed to the empty learnt
	// clause, so no decision or restart happens before the refutation.
	result, err := Solve("(a -> b) & (b -> c) & (c -> !a) & a", cfg)
	if err != nil {
		t.Fatal(err)
	}
	if result.Status != Unsat {
		t.Fatalf("got %s, want UNSAT", result.Status)
	}

	got := buf.String()
	for _, want := range []string{"conflict", "learnt", "propagate"} {
		if !strings.Contains(got, want) {
			t.Errorf("debug trace missing expected %q; got:\n%s", want, got)
		}
	}
}
