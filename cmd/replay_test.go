package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplayScript_Testdata_SummariesByLogicalIdentity(t *testing.T) {
	// GIVEN the sgemm session, where tile16 and tile16_again share a configuration
	s, err := LoadScript("../testdata/sgemm_session.yaml")
	require.NoError(t, err)
	dir := t.TempDir()

	// WHEN replayed
	res, err := replayScript(s, dir)
	require.NoError(t, err)

	// THEN both references count as one solution and null gets are not summarized
	assert.Equal(t, filepath.Join(dir, "sgemm_nt_log.xml"), res.Path)
	assert.Equal(t, 6, res.Events)
	assert.Equal(t, []ReportRow{
		{ID: 0, Name: "sgemm_nt_16x16", Count: 2},
		{ID: 1, Name: "sgemm_nt_8x8", Count: 1},
	}, res.Get)
	assert.Equal(t, []ReportRow{
		{ID: 0, Name: "sgemm_nt_16x16", Count: 1},
		{ID: 1, Name: "sgemm_nt_8x8", Count: 1},
	}, res.Enqueue)

	// AND the log is complete, with the unknown status rendered as a diagnostic
	data, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	doc := string(data)
	assert.Equal(t, 6, strings.Count(doc, "<TraceEntry "))
	assert.Contains(t, doc, `status="Error in String(CobaltStatus): no switch case for: 99"`)
	assert.Contains(t, doc, `<SummaryGetSolution numEntries="2" >`)
	assert.True(t, strings.HasSuffix(doc, "</CobaltLog>\n"))
}

func TestReplayScript_UnwritableDir_ReturnsError(t *testing.T) {
	s := &Script{Name: "x"}

	_, err := replayScript(s, filepath.Join(t.TempDir(), "missing"))

	assert.Error(t, err)
}

func TestReplayAll_ConcurrentSessions_OrderPreserved(t *testing.T) {
	// GIVEN three scripts with distinct session names
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"alpha", "beta", "gamma"} {
		body := "name: " + name + minimalSolution +
			"events:\n  - {kind: GetSolution, solution: a, status: 0}\n  - {kind: EnqueueSolution, solution: a, status: 0}\n"
		paths = append(paths, writeFile(t, dir, name+".yaml", body))
	}
	out := t.TempDir()

	// WHEN replayed with parallel jobs
	results, err := replayAll(context.Background(), paths, Config{ProblemsDir: out, LogLevel: "warn", Jobs: 3})

	// THEN each session produced its own log and results follow input order
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, name := range []string{"alpha", "beta", "gamma"} {
		assert.Equal(t, name, results[i].Name)
		assert.FileExists(t, filepath.Join(out, name+"_log.xml"))
		assert.Equal(t, []ReportRow{{ID: 0, Name: "k", Count: 1}}, results[i].Get)
	}
}

func TestReplayAll_DuplicateSessionNames_Rejected(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.yaml", "name: same\n")
	b := writeFile(t, dir, "b.yaml", "name: same\n")

	_, err := replayAll(context.Background(), []string{a, b}, Config{ProblemsDir: t.TempDir(), Jobs: 2})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `session "same"`)
}

func TestPrintReport_ListsRowsPerTable(t *testing.T) {
	// GIVEN colors disabled so output is plain text
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	r := &ReplayResult{
		Name:      "sgemm_nt",
		Path:      "/tmp/sgemm_nt_log.xml",
		SessionID: "sid",
		Events:    3,
		Get:       []ReportRow{{ID: 0, Name: "sgemm_nt_16x16", Count: 2}},
	}

	// WHEN printed
	var buf bytes.Buffer
	printReport(&buf, r)
	out := buf.String()

	// THEN both tables appear, the empty one marked as such
	assert.Contains(t, out, "=== sgemm_nt ===")
	assert.Contains(t, out, "GetSolution (1 solutions)")
	assert.Contains(t, out, "x2")
	assert.Contains(t, out, "EnqueueSolution (0 solutions)")
	assert.Contains(t, out, "(none)")
}
