package config

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.viam.com/test"

	"go.viam.com/kinematics2d/logging"
	"go.viam.com/kinematics2d/motionplan"
	"go.viam.com/kinematics2d/referenceframe"
	"go.viam.com/kinematics2d/spatialmath"
)

const sceneConfig = `{
	"debug": true,
	"frames": [
		{"name": "lidar", "parent": "base", "translation": {"x": 0.5, "y": 0}},
		{"name": "base", "parent": "world", "translation": {"x": 10, "y": 0}, "orientation_degs": 90}
	],
	"start": {
		"frame": "base",
		"velocity": {"x": ${KIN_SPEED}, "y": 0},
		"rotation_degs_per_sec": 45
	},
	"observer_frame": "lidar",
	"motion": {"duration_sec": 2}
}`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kinematics.json")
	test.That(t, os.WriteFile(path, []byte(contents), 0o600), test.ShouldBeNil)
	return path
}

func TestRead(t *testing.T) {
	logger, logs := logging.NewObservedTestLogger(t)
	t.Setenv("KIN_SPEED", "1.5")
	path := writeConfig(t, sceneConfig)

	cfg, err := Read(context.Background(), path, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.ConfigFilePath, test.ShouldEqual, path)
	test.That(t, cfg.Debug, test.ShouldBeTrue)
	test.That(t, referenceframe.Names(cfg.Frames), test.ShouldResemble, []string{"lidar", "base"})
	test.That(t, cfg.Start.FrameName(), test.ShouldEqual, "base")
	test.That(t, cfg.ObserverFrameName(), test.ShouldEqual, "lidar")

	// fields missing from the motion section keep their defaults
	expectedMotion := motionplan.NewDefaultConfig()
	expectedMotion.DurationSec = 2
	if diff := cmp.Diff(expectedMotion, cfg.Motion); diff != "" {
		t.Errorf("motion config mismatch (-want +got):\n%s", diff)
	}

	start := cfg.Start.Kinematics()
	test.That(t, start.Velocity, test.ShouldResemble, spatialmath.NewVector(1.5, 0))
	test.That(t, start.Rotation, test.ShouldAlmostEqual, math.Pi/4)
	test.That(t, start.Position, test.ShouldResemble, spatialmath.NewZeroVector())

	fs, err := cfg.FrameSystem()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, fs.FrameNames(), test.ShouldResemble, []string{"base", "lidar"})

	test.That(t, logs.FilterMessage("config read").Len(), test.ShouldEqual, 1)
	test.That(t, logs.FilterMessage("config read").All()[0].ContextMap()["frames"], test.ShouldEqual, int64(2))
}

func TestReadDefaults(t *testing.T) {
	cfg, err := FromReader(context.Background(), "", strings.NewReader(`{}`), logging.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.Debug, test.ShouldBeFalse)
	test.That(t, cfg.Frames, test.ShouldBeEmpty)
	test.That(t, cfg.Start.FrameName(), test.ShouldEqual, referenceframe.World)
	test.That(t, cfg.ObserverFrameName(), test.ShouldEqual, referenceframe.World)
	test.That(t, cfg.Start.Kinematics(), test.ShouldResemble, spatialmath.NewZeroKinematics())
	test.That(t, cfg.Motion, test.ShouldResemble, motionplan.NewDefaultConfig())
}

func TestReadErrors(t *testing.T) {
	logger := logging.NewTestLogger(t)

	t.Run("missing file", func(t *testing.T) {
		_, err := Read(context.Background(), filepath.Join(t.TempDir(), "nope.json"), logger)
		test.That(t, err, test.ShouldNotBeNil)
	})

	t.Run("bad json", func(t *testing.T) {
		_, err := Read(context.Background(), writeConfig(t, `{"frames": [}`), logger)
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "failed to decode Config from json")
	})

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := FromReader(ctx, "", strings.NewReader(`{}`), logger)
		test.That(t, err, test.ShouldEqual, context.Canceled)
	})

	for _, tc := range []struct {
		name     string
		contents string
		expected []string
	}{
		{
			"unnamed frame",
			`{"frames": [{"parent": "world"}]}`,
			[]string{"failed to process Config", `"frames.0"`, `"name" is required`},
		},
		{
			"missing parent frame",
			`{"frames": [{"name": "base", "parent": "chassis"}]}`,
			[]string{"chassis"},
		},
		{
			"unknown start frame",
			`{"start": {"frame": "base"}}`,
			[]string{`"start"`, "unknown frame", "base"},
		},
		{
			"unknown observer frame",
			`{"observer_frame": "camera"}`,
			[]string{`"observer_frame"`, "camera"},
		},
		{
			"bad motion",
			`{"motion": {"delta_time_sec": 0, "max_linear_decel": -1}}`,
			[]string{`"motion"`, "delta_time_sec", "max_linear_decel"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromReader(context.Background(), "", strings.NewReader(tc.contents), logger)
			test.That(t, err, test.ShouldNotBeNil)
			for _, substr := range tc.expected {
				test.That(t, err.Error(), test.ShouldContainSubstring, substr)
			}
		})
	}
}
