// Package solutions holds the table of all puzzle solvers.
package solutions

import (
	"sync"

	"github.com/go-ricrob/aoc/internal/solver"
)

//go:generate go run ../../cmd/solvergen -root ../.. -out solutions_gen.go

var registry = sync.OnceValue(func() *solver.Registry {
	r := solver.NewRegistry()
	register(r)
	return r
})

// Registry returns the registry of all solvers.
func Registry() *solver.Registry { return registry() }
