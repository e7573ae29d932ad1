package testutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Sample descriptions shared by adapter and CLI tests.
const (
	// SingleStep accepts exactly "a".
	SingleStep = "states=[s1,s2]\nalpha=[a]\ninit.st=[s1]\nfin.st=[s2]\ntrans=[s1>a>s2]\n"

	// Nondeterministic has two "a" edges out of s1.
	Nondeterministic = "states=[s1,s2]\nalpha=[a]\ninit.st=[s1]\nfin.st=[s2]\ntrans=[s1>a>s1,s1>a>s2]\n"

	// Disjoint has two separate clusters.
	Disjoint = "states=[s1,s2,s3,s4]\nalpha=[a]\ninit.st=[s1]\nfin.st=[s2]\ntrans=[s1>a>s2,s3>a>s4]\n"

	// Malformed misses the transitions line.
	Malformed = "states=[s1]\nalpha=[a]\ninit.st=[s1]\nfin.st=[s1]\n"
)

// Complete describes a complete DFA over {a, b} with n states, all final.
// Its expression grows exponentially with n: 16 states give gigabytes.
func Complete(n int) string {
	states := make([]string, n)
	for i := range states {
		states[i] = fmt.Sprintf("q%d", i)
	}
	trans := make([]string, 0, 2*n)
	for i, st := range states {
		trans = append(trans,
			fmt.Sprintf("%s>a>%s", st, states[(i+1)%n]),
			fmt.Sprintf("%s>b>%s", st, states[(i*2+1)%n]),
		)
	}
	list := strings.Join(states, ",")
	return fmt.Sprintf("states=[%s]\nalpha=[a,b]\ninit.st=[q0]\nfin.st=[%s]\ntrans=[%s]\n",
		list, list, strings.Join(trans, ","))
}

// WriteFile creates name inside a fresh temporary directory (or dir, when
// non-empty) and returns its absolute path. It fails the test immediately on error.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	if dir == "" {
		dir = t.TempDir()
	}
	absDir, err := filepath.Abs(dir)
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	path := filepath.Join(absDir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "Failed to write %s", name)
	return path
}
