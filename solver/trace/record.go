// Package trace records the getSolution/enqueueSolution calls of one engine
// session and writes them, with per-solution summaries, as an XML log at
// teardown.
// This package depends on solver/ only for the Solution and Status vocabulary.
package trace

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/cobalt-sim/cobalt/solver"
)

// Entry captures a single engine call. Solution may be nil when the call
// produced no solution; such entries are traced but never summarized.
type Entry struct {
	Kind     Kind
	Solution solver.Solution
	Status   solver.Status
}

// NewEntry creates an Entry. A nil pointer wrapped in the Solution interface
// is stored as nil.
func NewEntry(kind Kind, solution solver.Solution, status solver.Status) Entry {
	if isNilSolution(solution) {
		solution = nil
	}
	return Entry{Kind: kind, Solution: solution, Status: status}
}

// isNilSolution reports whether s is nil or a typed nil pointer, such as the
// *KernelSolution returned by a Registry.Lookup miss.
func isNilSolution(s solver.Solution) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Render returns the entry as a <TraceEntry> block at the given indent level,
// with the solution nested one level deeper.
func (e Entry) Render(indentLevel int) string {
	var sb strings.Builder
	sb.WriteString(solver.Indent(indentLevel))
	sb.WriteString("<TraceEntry")
	sb.WriteString(" enum=\"" + strconv.Itoa(int(e.Kind)) + "\"")
	sb.WriteString(" string=\"" + e.Kind.String() + "\"")
	sb.WriteString(" status=\"" + e.Status.String() + "\" >\n")
	if e.Solution != nil {
		sb.WriteString(e.Solution.ToStringXML(indentLevel + 1))
	}
	sb.WriteString(solver.Indent(indentLevel) + "</TraceEntry>\n")
	return sb.String()
}
