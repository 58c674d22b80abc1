package solver

import "strconv"

// DataType is the element type of a tensor operand.
type DataType int

const (
	DataTypeSingle DataType = iota
	DataTypeDouble
	DataTypeComplexSingle
	DataTypeComplexDouble
	DataTypeHalf
)

func (d DataType) String() string {
	switch d {
	case DataTypeSingle:
		return "Single"
	case DataTypeDouble:
		return "Double"
	case DataTypeComplexSingle:
		return "ComplexSingle"
	case DataTypeComplexDouble:
		return "ComplexDouble"
	case DataTypeHalf:
		return "Half"
	default:
		return "Error in String(CobaltDataType): no switch case for: " + strconv.Itoa(int(d))
	}
}

// Size returns the number of bytes per element, or 0 for an unknown type.
func (d DataType) Size() int {
	switch d {
	case DataTypeHalf:
		return 2
	case DataTypeSingle:
		return 4
	case DataTypeDouble, DataTypeComplexSingle:
		return 8
	case DataTypeComplexDouble:
		return 16
	default:
		return 0
	}
}

// OperationType is the kind of computation a solution implements.
type OperationType int

const (
	OperationTensorContraction OperationType = iota
	OperationConvolution
	OperationCorrelation
)

func (o OperationType) String() string {
	switch o {
	case OperationTensorContraction:
		return "TensorContraction"
	case OperationConvolution:
		return "Convolution"
	case OperationCorrelation:
		return "Correlation"
	default:
		return "Error in String(CobaltOperationType): no switch case for: " + strconv.Itoa(int(o))
	}
}

// Dimension is one tensor dimension of a kernel.
type Dimension struct {
	Stride int64
	Size   int64
}

// Less orders dimensions by stride, then size.
func (d Dimension) Less(o Dimension) bool {
	if d.Stride != o.Stride {
		return d.Stride < o.Stride
	}
	return d.Size < o.Size
}

// Control carries the per-enqueue execution parameters (queues, benchmarking).
// The trace logger accepts it on enqueue but does not render it.
type Control struct {
	NumQueues int  // command queues available to the kernel
	Benchmark bool // run repeatedly and time the kernel
}

// Less orders controls by queue count; benchmarking controls sort after
// plain ones with the same count.
func (c Control) Less(o Control) bool {
	if c.NumQueues != o.NumQueues {
		return c.NumQueues < o.NumQueues
	}
	return !c.Benchmark && o.Benchmark
}
