// Package motionplan rolls kinematic states forward in time and answers questions about how and
// where a moving body comes to rest.
package motionplan

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/kinematics2d/utils"
)

const (
	defaultDeltaTimeSec    = 0.1
	defaultDurationSec     = 5.0
	defaultMaxLinearDecel  = 1.0
	defaultMaxAngularDecel = 1.0

	// maxSimulationNodes bounds the size of a single rollout.
	maxSimulationNodes = 1_000_000
)

// Config describes a rollout and the braking limits of the body being simulated.
type Config struct {
	DeltaTimeSec    float64 `json:"delta_time_sec"`
	DurationSec     float64 `json:"duration_sec"`
	MaxLinearDecel  float64 `json:"max_linear_decel"`
	MaxAngularDecel float64 `json:"max_angular_decel"`
}

// NewDefaultConfig returns a config stepping at 10Hz for five seconds with unit decelerations.
func NewDefaultConfig() Config {
	return Config{
		DeltaTimeSec:    defaultDeltaTimeSec,
		DurationSec:     defaultDurationSec,
		MaxLinearDecel:  defaultMaxLinearDecel,
		MaxAngularDecel: defaultMaxAngularDecel,
	}
}

// Validate ensures all parts of the config are valid. Every invalid field is reported, and NaN
// never passes. Time fields must also be finite.
func (cfg *Config) Validate(path string) error {
	var err error
	if !(cfg.DeltaTimeSec > 0) {
		multierr.AppendInto(&err, utils.NewConfigValidationFieldPositiveError(path, "delta_time_sec", cfg.DeltaTimeSec))
	} else if math.IsInf(cfg.DeltaTimeSec, 1) {
		multierr.AppendInto(&err, newInfiniteFieldError(path, "delta_time_sec"))
	}
	if !(cfg.DurationSec >= 0) {
		multierr.AppendInto(&err, utils.NewConfigValidationError(path,
			errors.Errorf("%q cannot be negative, got %v", "duration_sec", cfg.DurationSec)))
	} else if math.IsInf(cfg.DurationSec, 1) {
		multierr.AppendInto(&err, newInfiniteFieldError(path, "duration_sec"))
	}
	if !(cfg.MaxLinearDecel > 0) {
		multierr.AppendInto(&err, utils.NewConfigValidationFieldPositiveError(path, "max_linear_decel", cfg.MaxLinearDecel))
	}
	if !(cfg.MaxAngularDecel > 0) {
		multierr.AppendInto(&err, utils.NewConfigValidationFieldPositiveError(path, "max_angular_decel", cfg.MaxAngularDecel))
	}
	if err == nil && cfg.DurationSec/cfg.DeltaTimeSec > maxSimulationNodes {
		multierr.AppendInto(&err, utils.NewConfigValidationError(path, NewTooManyNodesError(cfg.DurationSec/cfg.DeltaTimeSec)))
	}
	return err
}

func newInfiniteFieldError(path, field string) error {
	return utils.NewConfigValidationError(path, errors.Errorf("%q must be finite", field))
}
