package cmd

import (
	"bytes"
	"fmt"
	"os"

	"fortio.org/safecast"
	"gopkg.in/yaml.v3"

	"github.com/cobalt-sim/cobalt/solver"
	"github.com/cobalt-sim/cobalt/solver/trace"
)

// Script is a recorded engine session: the kernels it chose between and the
// getSolution/enqueueSolution calls it made, in order.
// Loaded from YAML via LoadScript(path).
type Script struct {
	Name      string                  `yaml:"name"` // session name; the log is <problems_dir>/<name>_log.xml
	Solutions map[string]SolutionSpec `yaml:"solutions"`
	Events    []EventSpec             `yaml:"events"`
}

// SolutionSpec describes one kernel configuration.
type SolutionSpec struct {
	Name       string          `yaml:"name"`
	Operation  string          `yaml:"operation"`
	DataType   string          `yaml:"data_type"`
	Dimensions []DimensionSpec `yaml:"dimensions,omitempty"`
	WorkGroup  [2]int          `yaml:"work_group"`
}

// DimensionSpec is one tensor dimension.
type DimensionSpec struct {
	Stride int64 `yaml:"stride"`
	Size   int64 `yaml:"size"`
}

// EventSpec is one engine call. An empty Solution records a call that
// produced no solution.
type EventSpec struct {
	Kind     string       `yaml:"kind"`
	Solution string       `yaml:"solution,omitempty"`
	Status   int64        `yaml:"status"` // raw engine status code; unknown codes are allowed
	Control  *ControlSpec `yaml:"control,omitempty"`
}

// ControlSpec mirrors solver.Control.
type ControlSpec struct {
	NumQueues int  `yaml:"num_queues"`
	Benchmark bool `yaml:"benchmark"`
}

// Valid value registries.
var (
	validOperations = map[string]solver.OperationType{
		"TensorContraction": solver.OperationTensorContraction,
		"Convolution":       solver.OperationConvolution,
		"Correlation":       solver.OperationCorrelation,
	}
	validDataTypes = map[string]solver.DataType{
		"Half":          solver.DataTypeHalf,
		"Single":        solver.DataTypeSingle,
		"Double":        solver.DataTypeDouble,
		"ComplexSingle": solver.DataTypeComplexSingle,
		"ComplexDouble": solver.DataTypeComplexDouble,
	}
)

// LoadScript reads and parses a YAML event script.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading event script: %w", err)
	}
	var s Script
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing event script %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("event script %s: %w", path, err)
	}
	return &s, nil
}

// Validate checks that every field in the script is usable.
func (s *Script) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("name must not be empty")
	}
	for ref, spec := range s.Solutions {
		if _, err := spec.descriptor(); err != nil {
			return fmt.Errorf("solutions[%s]: %w", ref, err)
		}
	}
	for i, ev := range s.Events {
		if _, err := trace.ParseKind(ev.Kind); err != nil {
			return fmt.Errorf("events[%d]: %w", i, err)
		}
		if ev.Solution != "" {
			if _, ok := s.Solutions[ev.Solution]; !ok {
				return fmt.Errorf("events[%d]: unknown solution %q", i, ev.Solution)
			}
		}
		if _, err := ev.status(); err != nil {
			return fmt.Errorf("events[%d]: %w", i, err)
		}
		if ev.Control != nil && ev.Control.NumQueues < 0 {
			return fmt.Errorf("events[%d]: control.num_queues must be non-negative, got %d", i, ev.Control.NumQueues)
		}
	}
	return nil
}

func (spec SolutionSpec) descriptor() (solver.KernelDescriptor, error) {
	op, ok := validOperations[spec.Operation]
	if !ok {
		return solver.KernelDescriptor{}, fmt.Errorf("unknown operation %q; valid: TensorContraction, Convolution, Correlation", spec.Operation)
	}
	dt, ok := validDataTypes[spec.DataType]
	if !ok {
		return solver.KernelDescriptor{}, fmt.Errorf("unknown data_type %q; valid: Half, Single, Double, ComplexSingle, ComplexDouble", spec.DataType)
	}
	dims := make([]solver.Dimension, 0, len(spec.Dimensions))
	for i, d := range spec.Dimensions {
		if d.Size <= 0 {
			return solver.KernelDescriptor{}, fmt.Errorf("dimensions[%d].size must be positive, got %d", i, d.Size)
		}
		dims = append(dims, solver.Dimension{Stride: d.Stride, Size: d.Size})
	}
	return solver.KernelDescriptor{
		Name:       spec.Name,
		Operation:  op,
		DataType:   dt,
		Dimensions: dims,
		WorkGroup:  spec.WorkGroup,
	}, nil
}

func (ev EventSpec) status() (solver.Status, error) {
	code, err := safecast.Conv[int32](ev.Status)
	if err != nil {
		return 0, fmt.Errorf("status %d out of range: %w", ev.Status, err)
	}
	return solver.Status(code), nil
}

func (ev EventSpec) control() *solver.Control {
	if ev.Control == nil {
		return nil
	}
	return &solver.Control{NumQueues: ev.Control.NumQueues, Benchmark: ev.Control.Benchmark}
}
