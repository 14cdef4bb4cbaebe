package referenceframe

import (
	"math"
	"testing"

	"go.viam.com/test"

	"go.viam.com/kinematics2d/spatialmath"
	"go.viam.com/kinematics2d/utils"
)

func TestFrameSystemPartValidate(t *testing.T) {
	part := &FrameSystemPart{Name: "base", Parent: World}
	test.That(t, part.Validate("frames.0"), test.ShouldBeNil)

	part = &FrameSystemPart{Parent: World}
	test.That(t, part.Validate("frames.0"), test.ShouldBeError, utils.NewConfigValidationFieldRequiredError("frames.0", "name"))

	part = &FrameSystemPart{Name: "base"}
	test.That(t, part.Validate("frames.1"), test.ShouldBeError, utils.NewConfigValidationFieldRequiredError("frames.1", "parent"))

	part = &FrameSystemPart{Name: World, Parent: "base"}
	err := part.Validate("frames.2")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, `"frames.2"`)
	test.That(t, err.Error(), test.ShouldContainSubstring, "cannot be named")

	part = &FrameSystemPart{Name: "base", Parent: "base"}
	err = part.Validate("frames.3")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "own parent")
}

func TestFrameSystemPartState(t *testing.T) {
	part := &FrameSystemPart{
		Name:               "base",
		Parent:             World,
		Translation:        Translation{X: 1, Y: 2},
		OrientationDegs:    90,
		Velocity:           Translation{X: 3, Y: -4},
		RotationDegsPerSec: -180,
	}
	state := part.State()
	test.That(t, state.Position, test.ShouldResemble, spatialmath.NewVector(1, 2))
	test.That(t, state.Orientation, test.ShouldAlmostEqual, math.Pi/2)
	test.That(t, state.Velocity, test.ShouldResemble, spatialmath.NewVector(3, -4))
	test.That(t, state.Rotation, test.ShouldAlmostEqual, -math.Pi)
}

func TestTopologicallySort(t *testing.T) {
	parts := Parts{
		{Name: "camera", Parent: "mount"},
		{Name: "mount", Parent: "base"},
		{Name: "lidar", Parent: "base"},
		{Name: "base", Parent: World},
		{Name: "beacon", Parent: World},
	}
	sorted, err := TopologicallySort(parts)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, Names(sorted), test.ShouldResemble, []string{"base", "beacon", "lidar", "mount", "camera"})

	sorted, err = TopologicallySort(Parts{})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, sorted, test.ShouldBeEmpty)

	t.Run("missing parent", func(t *testing.T) {
		_, err := TopologicallySort(Parts{{Name: "base", Parent: World}, {Name: "camera", Parent: "mount"}})
		test.That(t, err, test.ShouldBeError, NewParentFrameMissingError("camera", "mount"))
	})

	t.Run("duplicate name", func(t *testing.T) {
		_, err := TopologicallySort(Parts{{Name: "base", Parent: World}, {Name: "base", Parent: World}})
		test.That(t, err, test.ShouldBeError, NewFrameAlreadyExistsError("base"))
	})

	t.Run("no world child", func(t *testing.T) {
		_, err := TopologicallySort(Parts{{Name: "a", Parent: "b"}, {Name: "b", Parent: "a"}})
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "world")
	})

	t.Run("cycle beside the tree is left out", func(t *testing.T) {
		sorted, err := TopologicallySort(Parts{
			{Name: "base", Parent: World},
			{Name: "a", Parent: "b"},
			{Name: "b", Parent: "a"},
		})
		test.That(t, err, test.ShouldBeNil)
		test.That(t, Names(sorted), test.ShouldResemble, []string{"base"})
	})
}

func TestNewFrameSystemFromConfig(t *testing.T) {
	parts := Parts{
		{
			Name:        "sensor",
			Parent:      "base",
			Translation: Translation{X: 1},
		},
		{
			Name:            "base",
			Parent:          World,
			Translation:     Translation{X: 10},
			OrientationDegs: 90,
			Velocity:        Translation{X: 1},
		},
	}
	fs, err := NewFrameSystemFromConfig("robot", parts)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, fs.Name(), test.ShouldEqual, "robot")
	test.That(t, fs.FrameNames(), test.ShouldResemble, []string{"base", "sensor"})

	state, err := fs.StateToWorld("sensor")
	test.That(t, err, test.ShouldBeNil)
	expected := spatialmath.NewKinematics(spatialmath.NewVector(10, 1), math.Pi/2, spatialmath.NewVector(1, 0), 0)
	test.That(t, spatialmath.KinematicsAlmostEqual(state, expected, 1e-9), test.ShouldBeTrue)

	t.Run("invalid part", func(t *testing.T) {
		_, err := NewFrameSystemFromConfig("robot", Parts{{Name: "base", Parent: World}, {Name: "", Parent: "base"}})
		test.That(t, err, test.ShouldBeError, utils.NewConfigValidationFieldRequiredError("frames.1", "name"))
	})

	t.Run("disconnected frames", func(t *testing.T) {
		_, err := NewFrameSystemFromConfig("robot", Parts{
			{Name: "base", Parent: World},
			{Name: "a", Parent: "b"},
			{Name: "b", Parent: "a"},
		})
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "disconnected")
	})

	t.Run("empty", func(t *testing.T) {
		fs, err := NewFrameSystemFromConfig("empty", nil)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, fs.FrameNames(), test.ShouldBeEmpty)
	})
}

func TestPartsString(t *testing.T) {
	parts := Parts{
		{Name: "base", Parent: World, Translation: Translation{X: 1.5, Y: -2}, OrientationDegs: 45},
		{Name: "lidar", Parent: "base", RotationDegsPerSec: 30},
	}
	out := parts.String()
	for _, substr := range []string{"NAME", "PARENT", World, "base", "lidar", "X:1.50, Y:-2.00", "45.00°", "30.00°/s"} {
		test.That(t, out, test.ShouldContainSubstring, substr)
	}
}
