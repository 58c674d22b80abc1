package trace

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cobalt-sim/cobalt/solver"
)

// SummaryEntry is one row of a SummaryTable.
type SummaryEntry struct {
	Solution solver.Solution
	Count    uint64
}

// SummaryTable counts occurrences per logical solution for one entry kind.
// Counts only grow; the table lives as long as the session.
type SummaryTable struct {
	counts    map[solver.SolutionID]uint64
	solutions map[solver.SolutionID]solver.Solution // first reference seen, used for rendering
}

// NewSummaryTable creates an empty SummaryTable.
func NewSummaryTable() *SummaryTable {
	return &SummaryTable{
		counts:    make(map[solver.SolutionID]uint64),
		solutions: make(map[solver.SolutionID]solver.Solution),
	}
}

// RecordOccurrence counts one occurrence of the solution. Nil, including a
// typed nil pointer, is ignored.
func (st *SummaryTable) RecordOccurrence(solution solver.Solution) {
	if isNilSolution(solution) {
		return
	}
	id := solution.ID()
	if _, ok := st.solutions[id]; !ok {
		st.solutions[id] = solution
	}
	st.counts[id]++
}

// Count returns the occurrences recorded for the solution ID (0 if none).
func (st *SummaryTable) Count(id solver.SolutionID) uint64 {
	return st.counts[id]
}

// Len returns the number of distinct solutions recorded.
func (st *SummaryTable) Len() int {
	return len(st.counts)
}

// Entries returns the rows sorted by ascending SolutionID.
func (st *SummaryTable) Entries() []SummaryEntry {
	ids := make([]solver.SolutionID, 0, len(st.counts))
	for id := range st.counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	entries := make([]SummaryEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, SummaryEntry{Solution: st.solutions[id], Count: st.counts[id]})
	}
	return entries
}

// Render returns the table as a <Summary{tag}> block holding one <{tag}>
// child per solution.
func (st *SummaryTable) Render(tag string, indentLevel int) string {
	var sb strings.Builder
	sb.WriteString(solver.Indent(indentLevel))
	sb.WriteString("<Summary" + tag + " numEntries=\"" + strconv.Itoa(st.Len()) + "\" >\n")
	for _, e := range st.Entries() {
		sb.WriteString(renderSummaryEntry(tag, e, indentLevel+1))
	}
	sb.WriteString(solver.Indent(indentLevel) + "</Summary" + tag + ">\n")
	return sb.String()
}

func renderSummaryEntry(tag string, e SummaryEntry, indentLevel int) string {
	var sb strings.Builder
	sb.WriteString(solver.Indent(indentLevel))
	sb.WriteString("<" + tag + " count=\"" + strconv.FormatUint(e.Count, 10) + "\" >\n")
	sb.WriteString(e.Solution.ToStringXML(indentLevel + 1))
	sb.WriteString(solver.Indent(indentLevel) + "</" + tag + ">\n")
	return sb.String()
}
