package utils

import (
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"
)

func TestConfigValidationErrors(t *testing.T) {
	base := errors.New("boom")
	err := NewConfigValidationError("motion", base)
	test.That(t, err.Error(), test.ShouldEqual, `error validating "motion": boom`)
	test.That(t, errors.Cause(err), test.ShouldEqual, base)

	err = NewConfigValidationFieldRequiredError("frames.0", "name")
	test.That(t, err.Error(), test.ShouldEqual, `error validating "frames.0": "name" is required`)

	err = NewConfigValidationFieldPositiveError("motion", "delta_time_sec", -1)
	test.That(t, err.Error(), test.ShouldEqual, `error validating "motion": "delta_time_sec" must be greater than zero, got -1`)
}
