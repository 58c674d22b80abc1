// Package solver holds the vocabulary the Cobalt solution-search engine shares
// with its diagnostic tooling.
//
// # Reading Guide
//
//   - status.go: Status codes the engine returns for each call, and their names
//   - types.go: DataType, OperationType, Dimension and Control
//   - solution.go: the Solution interface and the KernelSolution implementation
//   - registry.go: interning of kernel descriptors into stable SolutionIDs
//
// # Architecture
//
// The engine owns every Solution. Consumers such as solver/trace never mutate a
// Solution; they only ask for its identity and its XML rendering:
//   - solver/trace/: trace & summary logger written at session teardown
//
// Identity is logical, not by reference: two descriptors with identical
// attributes intern to the same SolutionID, so summaries count them together.
package solver
