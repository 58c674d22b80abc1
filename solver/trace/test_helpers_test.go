package trace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cobalt-sim/cobalt/solver"
)

// stubSolution renders as a single self-closing tag so expected documents
// stay short.
type stubSolution struct {
	id   solver.SolutionID
	name string
}

func (s *stubSolution) ID() solver.SolutionID { return s.id }

func (s *stubSolution) ToStringXML(indentLevel int) string {
	return solver.Indent(indentLevel) + "<Solution name=\"" + s.name + "\" />\n"
}

// newOpenLogger returns a Logger initialized as session name inside a fresh temp dir.
func newOpenLogger(t *testing.T, name string) *Logger {
	t.Helper()
	l := NewLogger(Config{ProblemsDir: t.TempDir()})
	require.NoError(t, l.Init(name))
	return l
}

func readLog(t *testing.T, l *Logger) string {
	t.Helper()
	data, err := os.ReadFile(l.Path())
	require.NoError(t, err)
	return string(data)
}

func logPath(dir, name string) string {
	return filepath.Join(dir, name+"_log.xml")
}

func solverID(i int) solver.SolutionID {
	return solver.SolutionID(i)
}
