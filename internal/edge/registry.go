package edge

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Algorithm turns a loaded BGR image into a single channel edge map.
// The returned Mat belongs to the caller.
type Algorithm interface {
	Name() string
	Apply(src gocv.Mat) (gocv.Mat, error)
}

// Registry maps algorithm names to pipelines in a fixed order.
type Registry struct {
	algorithms map[string]Algorithm
	order      []string
}

func NewRegistry(algorithms ...Algorithm) *Registry {
	r := &Registry{
		algorithms: make(map[string]Algorithm, len(algorithms)),
	}

	for _, alg := range algorithms {
		if _, exists := r.algorithms[alg.Name()]; exists {
			continue
		}
		r.algorithms[alg.Name()] = alg
		r.order = append(r.order, alg.Name())
	}

	return r
}

// DefaultRegistry holds the two shipped pipelines: sobel, then canny.
func DefaultRegistry() *Registry {
	return NewRegistry(NewSobel(), NewCanny())
}

func (r *Registry) Get(name string) (Algorithm, error) {
	if alg, exists := r.algorithms[name]; exists {
		return alg, nil
	}

	return nil, fmt.Errorf("unknown algorithm: %s", name)
}

// Names lists registered algorithms in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
