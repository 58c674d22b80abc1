package solver

import (
	"fmt"

	"fortio.org/safecast"
	"github.com/mitchellh/hashstructure/v2"
)

// Registry interns kernel descriptors into KernelSolutions with dense,
// stable SolutionIDs. Equal descriptors always yield the same solution, which
// is what downstream summaries count by.
//
// A Registry is not safe for concurrent use.
type Registry struct {
	byHash    map[uint64]SolutionID
	solutions []*KernelSolution
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byHash:    make(map[uint64]SolutionID),
		solutions: make([]*KernelSolution, 0),
	}
}

// Intern returns the solution for the descriptor, creating it on first use.
func (r *Registry) Intern(desc KernelDescriptor) (*KernelSolution, error) {
	key, err := hashstructure.Hash(desc, hashstructure.FormatV2, nil)
	if err != nil {
		return nil, fmt.Errorf("hashing kernel descriptor %q: %w", desc.Name, err)
	}
	if id, ok := r.byHash[key]; ok {
		return r.solutions[id], nil
	}
	slot, err := safecast.Conv[uint32](len(r.solutions))
	if err != nil {
		return nil, fmt.Errorf("registry full: %w", err)
	}
	sol := &KernelSolution{id: SolutionID(slot), descriptor: desc}
	sol.descriptor.Dimensions = append([]Dimension(nil), desc.Dimensions...)
	r.solutions = append(r.solutions, sol)
	r.byHash[key] = sol.id
	return sol, nil
}

// Lookup returns the solution with the given ID, or nil if none was interned.
func (r *Registry) Lookup(id SolutionID) *KernelSolution {
	if int(id) >= len(r.solutions) {
		return nil
	}
	return r.solutions[id]
}

// Len returns the number of distinct solutions interned.
func (r *Registry) Len() int {
	return len(r.solutions)
}
