package motionplan

import "github.com/pkg/errors"

// NewTooManyNodesError is returned when a rollout would produce more nodes than a single trajectory may hold.
func NewTooManyNodesError(nodes float64) error {
	return errors.Errorf("rollout would produce %v nodes, more than the limit of %d", nodes, maxSimulationNodes)
}

// NewSimulationCanceledError wraps the context error that interrupted a rollout.
func NewSimulationCanceledError(err error, elapsed float64) error {
	return errors.Wrapf(err, "simulation canceled after %vs", elapsed)
}
