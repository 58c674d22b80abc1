package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_String_KnownCodes(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusSuccess, "Success"},
		{StatusProblemNotSupported, "ProblemNotSupported"},
		{StatusSolutionNotFound, "SolutionNotFound"},
		{StatusInvalidControl, "InvalidControl"},
		{StatusEnqueueFailed, "EnqueueFailed"},
		{StatusDeviceError, "DeviceError"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
		})
	}
}

func TestStatus_String_UnknownCode_EmbedsRawValue(t *testing.T) {
	// GIVEN codes outside the vocabulary
	for _, s := range []Status{42, -3} {
		// WHEN formatted
		got := s.String()

		// THEN the fallback names the type and carries the raw value
		assert.True(t, strings.HasPrefix(got, "Error in String(CobaltStatus)"), got)
		assert.Contains(t, got, "no switch case for: ")
	}
	assert.Equal(t, "Error in String(CobaltStatus): no switch case for: 42", Status(42).String())
	assert.Equal(t, "Error in String(CobaltStatus): no switch case for: -3", Status(-3).String())
}

func TestDataType_SizeAndName(t *testing.T) {
	tests := []struct {
		dt   DataType
		name string
		size int
	}{
		{DataTypeHalf, "Half", 2},
		{DataTypeSingle, "Single", 4},
		{DataTypeDouble, "Double", 8},
		{DataTypeComplexSingle, "ComplexSingle", 8},
		{DataTypeComplexDouble, "ComplexDouble", 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.dt.String())
			assert.Equal(t, tt.size, tt.dt.Size())
		})
	}
}

func TestDataType_Unknown_FallbackAndZeroSize(t *testing.T) {
	dt := DataType(99)
	assert.Equal(t, "Error in String(CobaltDataType): no switch case for: 99", dt.String())
	assert.Equal(t, 0, dt.Size())
}

func TestOperationType_String(t *testing.T) {
	assert.Equal(t, "TensorContraction", OperationTensorContraction.String())
	assert.Equal(t, "Convolution", OperationConvolution.String())
	assert.Equal(t, "Correlation", OperationCorrelation.String())
	assert.Equal(t, "Error in String(CobaltOperationType): no switch case for: 7", OperationType(7).String())
}
