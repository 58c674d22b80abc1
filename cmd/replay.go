package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/cobalt-sim/cobalt/solver"
	"github.com/cobalt-sim/cobalt/solver/trace"
)

// ReportRow is one summarized solution of a replayed session.
type ReportRow struct {
	ID    solver.SolutionID
	Name  string
	Count uint64
}

// ReplayResult captures what one replayed session wrote.
type ReplayResult struct {
	Name      string
	Path      string
	SessionID string
	Events    int
	Get       []ReportRow
	Enqueue   []ReportRow
}

// replayAll loads every script, then replays them with up to jobs sessions
// running at once. Each session has its own Logger, so no logger is shared
// between goroutines. Results keep the order of paths.
func replayAll(ctx context.Context, paths []string, cfg Config) ([]*ReplayResult, error) {
	scripts := make([]*Script, 0, len(paths))
	seen := make(map[string]string, len(paths))
	for _, path := range paths {
		s, err := LoadScript(path)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[s.Name]; dup {
			return nil, fmt.Errorf("session %q is named by both %s and %s", s.Name, prev, path)
		}
		seen[s.Name] = path
		scripts = append(scripts, s)
	}

	results := make([]*ReplayResult, len(scripts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Jobs)
	for i, s := range scripts {
		i, s := i, s
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := replayScript(s, cfg.ProblemsDir)
			if err != nil {
				return fmt.Errorf("replaying %s: %w", paths[i], err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// replayScript drives one Logger session through the script's events, the
// way the engine would, and closes it.
func replayScript(s *Script, problemsDir string) (result *ReplayResult, err error) {
	reg := solver.NewRegistry()
	refs := make([]string, 0, len(s.Solutions))
	for ref := range s.Solutions {
		refs = append(refs, ref)
	}
	sort.Strings(refs) // stable SolutionIDs across runs

	sols := make(map[string]*solver.KernelSolution, len(refs))
	for _, ref := range refs {
		desc, err := s.Solutions[ref].descriptor()
		if err != nil {
			return nil, fmt.Errorf("solutions[%s]: %w", ref, err)
		}
		sol, err := reg.Intern(desc)
		if err != nil {
			return nil, err
		}
		sols[ref] = sol
	}

	logger := trace.NewLogger(trace.Config{ProblemsDir: problemsDir})
	if err := logger.Init(s.Name); err != nil {
		return nil, err
	}
	defer func() {
		if cerr := logger.Close(); cerr != nil && err == nil {
			result, err = nil, cerr
		}
	}()

	for i, ev := range s.Events {
		if err := recordEvent(logger, ev, sols); err != nil {
			return nil, fmt.Errorf("events[%d]: %w", i, err)
		}
	}
	logrus.Debugf("session %s: %d events, %d distinct solutions", s.Name, len(s.Events), reg.Len())

	return &ReplayResult{
		Name:      s.Name,
		Path:      logger.Path(),
		SessionID: logger.SessionID(),
		Events:    len(s.Events),
		Get:       reportRows(logger.GetSummary()),
		Enqueue:   reportRows(logger.EnqueueSummary()),
	}, nil
}

func recordEvent(logger *trace.Logger, ev EventSpec, sols map[string]*solver.KernelSolution) error {
	kind, err := trace.ParseKind(ev.Kind)
	if err != nil {
		return err
	}
	status, err := ev.status()
	if err != nil {
		return err
	}
	var sol solver.Solution // stays nil for calls that produced no solution
	if ev.Solution != "" {
		sol = sols[ev.Solution]
	}
	switch kind {
	case trace.KindGetSolution:
		return logger.RecordGetSolution(sol, status)
	case trace.KindEnqueueSolution:
		return logger.RecordEnqueueSolution(sol, status, ev.control())
	default:
		return fmt.Errorf("unhandled trace entry kind %s", kind)
	}
}

func reportRows(st *trace.SummaryTable) []ReportRow {
	rows := make([]ReportRow, 0, st.Len())
	for _, e := range st.Entries() {
		row := ReportRow{ID: e.Solution.ID(), Count: e.Count}
		if ks, ok := e.Solution.(*solver.KernelSolution); ok {
			row.Name = ks.Descriptor().Name
		}
		rows = append(rows, row)
	}
	return rows
}
