package trace

import (
	"fmt"
	"strconv"
)

// Kind identifies which engine call produced a trace entry.
type Kind int

const (
	// KindGetSolution records a Problem.GetSolution lookup.
	KindGetSolution Kind = iota
	// KindEnqueueSolution records a Solution.Enqueue launch.
	KindEnqueueSolution
)

// String returns the canonical kind name, or a diagnostic embedding the raw
// value for kinds this build does not know.
func (k Kind) String() string {
	switch k {
	case KindGetSolution:
		return "GetSolution"
	case KindEnqueueSolution:
		return "EnqueueSolution"
	default:
		return "Error in String(TraceEntryKind): no switch case for: " + strconv.Itoa(int(k))
	}
}

// validKinds maps canonical names back to kinds.
var validKinds = map[string]Kind{
	"GetSolution":     KindGetSolution,
	"EnqueueSolution": KindEnqueueSolution,
}

// ParseKind returns the kind with the given canonical name (case-sensitive).
func ParseKind(name string) (Kind, error) {
	k, ok := validKinds[name]
	if !ok {
		return 0, fmt.Errorf("unknown trace entry kind %q; valid: GetSolution, EnqueueSolution", name)
	}
	return k, nil
}
