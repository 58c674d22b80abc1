package solver

import "strconv"

// Status is the engine's result code for a getSolution or enqueueSolution call.
type Status int32

const (
	StatusSuccess Status = iota
	StatusProblemNotSupported
	StatusSolutionNotFound
	StatusInvalidControl
	StatusEnqueueFailed
	StatusDeviceError
)

// String returns the status name. Codes outside the vocabulary render as a
// diagnostic that embeds the raw value so newer engines stay readable.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "Success"
	case StatusProblemNotSupported:
		return "ProblemNotSupported"
	case StatusSolutionNotFound:
		return "SolutionNotFound"
	case StatusInvalidControl:
		return "InvalidControl"
	case StatusEnqueueFailed:
		return "EnqueueFailed"
	case StatusDeviceError:
		return "DeviceError"
	default:
		return "Error in String(CobaltStatus): no switch case for: " + strconv.FormatInt(int64(s), 10)
	}
}
