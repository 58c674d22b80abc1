package solver

import (
	"strconv"
	"strings"
)

// indentUnit is the per-level indentation of every XML rendering.
const indentUnit = "  "

// Indent returns the prefix for a line at the given nesting level.
func Indent(level int) string {
	if level <= 0 {
		return ""
	}
	return strings.Repeat(indentUnit, level)
}

// SolutionID is the logical identity of a solution, assigned by a Registry.
// Two solutions with equal IDs describe the same kernel configuration.
type SolutionID uint32

// Solution is a candidate kernel chosen by the engine. Consumers may only read
// its identity and render it; the engine owns its lifetime.
type Solution interface {
	ID() SolutionID
	ToStringXML(indentLevel int) string
}

// KernelDescriptor lists the attributes that define a kernel configuration.
// It is the input to Registry.Intern and the key of logical identity.
type KernelDescriptor struct {
	Name       string
	Operation  OperationType
	DataType   DataType
	Dimensions []Dimension
	WorkGroup  [2]int
}

// KernelSolution is the engine's Solution implementation.
type KernelSolution struct {
	id         SolutionID
	descriptor KernelDescriptor
}

// ID returns the solution's logical identity.
func (s *KernelSolution) ID() SolutionID {
	return s.id
}

// Descriptor returns a copy of the attributes the solution was interned from.
func (s *KernelSolution) Descriptor() KernelDescriptor {
	d := s.descriptor
	d.Dimensions = append([]Dimension(nil), s.descriptor.Dimensions...)
	return d
}

// ToStringXML renders the solution as a nested <Solution> block.
// Attribute values are written verbatim.
func (s *KernelSolution) ToStringXML(indentLevel int) string {
	d := s.descriptor
	var sb strings.Builder
	sb.WriteString(Indent(indentLevel))
	sb.WriteString("<Solution")
	sb.WriteString(" id=\"" + strconv.FormatUint(uint64(s.id), 10) + "\"")
	sb.WriteString(" name=\"" + d.Name + "\"")
	sb.WriteString(" operation=\"" + d.Operation.String() + "\"")
	sb.WriteString(" dataType=\"" + d.DataType.String() + "\"")
	sb.WriteString(" workGroup=\"" + strconv.Itoa(d.WorkGroup[0]) + "x" + strconv.Itoa(d.WorkGroup[1]) + "\" >\n")
	for _, dim := range d.Dimensions {
		sb.WriteString(Indent(indentLevel + 1))
		sb.WriteString("<Dimension stride=\"" + strconv.FormatInt(dim.Stride, 10) + "\"")
		sb.WriteString(" size=\"" + strconv.FormatInt(dim.Size, 10) + "\" />\n")
	}
	sb.WriteString(Indent(indentLevel) + "</Solution>\n")
	return sb.String()
}
