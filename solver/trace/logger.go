package trace

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cobalt-sim/cobalt/solver"
)

var (
	ErrNotInitialized     = errors.New("trace logger not initialized")
	ErrAlreadyInitialized = errors.New("trace logger already initialized")
	ErrClosed             = errors.New("trace logger closed")
)

const xmlPrologue = `<?xml version="1.0" encoding="UTF-8"?>`

// loggerState is the session lifecycle: uninitialized -> open -> closed.
type loggerState int

const (
	stateUninitialized loggerState = iota
	stateOpen
	stateClosed
)

// Config controls where session logs are written.
type Config struct {
	ProblemsDir string // directory receiving <name>_log.xml
}

// Logger records the engine calls of one session and writes them as
// <ProblemsDir>/<name>_log.xml. Create it with NewLogger, open it with Init,
// and always Close it; the summaries are only written on Close.
//
// Logger performs no locking: callers record from a single goroutine or hold
// their own lock.
type Logger struct {
	config    Config
	state     loggerState
	path      string
	sessionID string

	file *os.File
	w    *bufio.Writer
	err  error // first write error; later writes are skipped

	trace          *Buffer
	getSummary     *SummaryTable
	enqueueSummary *SummaryTable

	log *logrus.Entry
}

// NewLogger creates an uninitialized Logger.
func NewLogger(config Config) *Logger {
	return &Logger{
		config:         config,
		trace:          NewBuffer(),
		getSummary:     NewSummaryTable(),
		enqueueSummary: NewSummaryTable(),
		log:            logrus.NewEntry(logrus.StandardLogger()),
	}
}

// Init opens <ProblemsDir>/<name>_log.xml, truncating any previous log, and
// writes the document header. It may be called once.
func (l *Logger) Init(name string) error {
	switch l.state {
	case stateOpen:
		return ErrAlreadyInitialized
	case stateClosed:
		return ErrClosed
	}

	path := filepath.Join(l.config.ProblemsDir, name+"_log.xml")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("opening trace log %s: %w", path, err)
	}
	l.file = f
	l.w = bufio.NewWriter(f)
	l.path = path
	l.sessionID = uuid.NewString()
	l.log = logrus.WithFields(logrus.Fields{"session": l.sessionID, "path": path})
	l.state = stateOpen
	l.log.Infof("trace logger opened for %q", name)

	l.write(xmlPrologue + "\n\n")
	l.write("<CobaltLog>\n\n")
	l.write(comment("Trace"))
	l.write("<Trace>\n")
	return l.err
}

// RecordGetSolution traces a getSolution call and counts the returned solution.
func (l *Logger) RecordGetSolution(solution solver.Solution, status solver.Status) error {
	return l.record(KindGetSolution, solution, status, l.getSummary)
}

// RecordEnqueueSolution traces an enqueueSolution call and counts the solution.
// ctrl is accepted for callers that have one; it is not rendered.
func (l *Logger) RecordEnqueueSolution(solution solver.Solution, status solver.Status, ctrl *solver.Control) error {
	return l.record(KindEnqueueSolution, solution, status, l.enqueueSummary)
}

func (l *Logger) record(kind Kind, solution solver.Solution, status solver.Status, table *SummaryTable) error {
	if err := l.checkOpen(); err != nil {
		return err
	}
	entry := NewEntry(kind, solution, status)
	l.trace.Append(entry)
	table.RecordOccurrence(entry.Solution)
	if entry.Solution != nil {
		l.log.Debugf("%s solution=%d status=%s", kind, entry.Solution.ID(), status)
	} else {
		l.log.Debugf("%s solution=<nil> status=%s", kind, status)
	}
	return nil
}

// Flush writes every buffered entry to the log, in recording order, and
// empties the buffer. Flushing an empty buffer writes nothing.
func (l *Logger) Flush() error {
	if err := l.checkOpen(); err != nil {
		return err
	}
	return l.flush()
}

// Close flushes the trace, writes both summaries, ends the document and
// closes the file. The file is closed on every path. Closing again is a no-op.
func (l *Logger) Close() (err error) {
	switch l.state {
	case stateUninitialized:
		l.state = stateClosed
		return nil
	case stateClosed:
		return nil
	}
	l.state = stateClosed

	defer func() {
		if cerr := l.file.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("closing trace log %s: %w", l.path, cerr))
		}
		l.file = nil
		l.w = nil
		if err != nil {
			l.log.Warnf("trace logger closed with error: %v", err)
			return
		}
		l.log.Infof("trace logger closed: %d get, %d enqueue solutions summarized",
			l.getSummary.Len(), l.enqueueSummary.Len())
	}()

	_ = l.flush()
	l.writeSummary()
	return l.sync()
}

// writeSummary closes the trace section and writes both summary tables.
func (l *Logger) writeSummary() {
	l.write("</Trace>\n\n")

	l.write(comment("Summary of GetSolution"))
	l.write(l.getSummary.Render(KindGetSolution.String(), 0))
	l.write("\n")

	l.write(comment("Summary of EnqueueSolution"))
	l.write(l.enqueueSummary.Render(KindEnqueueSolution.String(), 0))
	l.write("\n")

	l.write("</CobaltLog>\n")
}

func (l *Logger) flush() error {
	for _, e := range l.trace.DrainAll() {
		l.write(e.Render(1))
	}
	return l.sync()
}

func (l *Logger) write(s string) {
	if l.err != nil {
		return
	}
	if _, err := l.w.WriteString(s); err != nil {
		l.err = fmt.Errorf("writing trace log %s: %w", l.path, err)
	}
}

func (l *Logger) sync() error {
	if l.err != nil {
		return l.err
	}
	if err := l.w.Flush(); err != nil {
		l.err = fmt.Errorf("writing trace log %s: %w", l.path, err)
	}
	return l.err
}

func (l *Logger) checkOpen() error {
	switch l.state {
	case stateUninitialized:
		return ErrNotInitialized
	case stateClosed:
		return ErrClosed
	}
	return nil
}

// Path returns the log file path, empty before Init.
func (l *Logger) Path() string { return l.path }

// SessionID returns the identifier attached to this session's log fields.
func (l *Logger) SessionID() string { return l.sessionID }

// Pending returns the number of entries recorded but not yet flushed.
func (l *Logger) Pending() int { return l.trace.Len() }

// GetSummary returns the per-solution counts of GetSolution entries.
func (l *Logger) GetSummary() *SummaryTable { return l.getSummary }

// EnqueueSummary returns the per-solution counts of EnqueueSolution entries.
func (l *Logger) EnqueueSummary() *SummaryTable { return l.enqueueSummary }

// comment returns an XML comment banner line.
func comment(text string) string {
	return "<!-- ~~~~~~~~~~~~~~~~ " + text + " ~~~~~~~~~~~~~~~~ -->\n"
}
