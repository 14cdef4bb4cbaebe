package referenceframe

import (
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"go.viam.com/kinematics2d/spatialmath"
	"go.viam.com/kinematics2d/utils"
)

// Translation is a planar offset or velocity in a config file.
type Translation struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vector converts the translation into a spatialmath.Vector.
func (t Translation) Vector() spatialmath.Vector {
	return spatialmath.NewVector(t.X, t.Y)
}

// FrameSystemPart is the config of a single frame: its name, its parent and its state relative to
// that parent. Angles are given in degrees.
type FrameSystemPart struct {
	Name               string      `json:"name"`
	Parent             string      `json:"parent"`
	Translation        Translation `json:"translation"`
	OrientationDegs    float64     `json:"orientation_degs"`
	Velocity           Translation `json:"velocity"`
	RotationDegsPerSec float64     `json:"rotation_degs_per_sec"`
}

// Validate ensures all parts of the config are valid.
func (part *FrameSystemPart) Validate(path string) error {
	if part.Name == "" {
		return utils.NewConfigValidationFieldRequiredError(path, "name")
	}
	if part.Parent == "" {
		return utils.NewConfigValidationFieldRequiredError(path, "parent")
	}
	if part.Name == World {
		return utils.NewConfigValidationError(path, errors.Errorf("frame cannot be named %q", World))
	}
	if part.Name == part.Parent {
		return utils.NewConfigValidationError(path, errors.Errorf("frame %q cannot be its own parent", part.Name))
	}
	return nil
}

// State returns the kinematic state of the frame relative to its parent, in radians.
func (part *FrameSystemPart) State() spatialmath.Kinematics {
	return spatialmath.NewKinematics(
		part.Translation.Vector(),
		utils.DegToRad(part.OrientationDegs),
		part.Velocity.Vector(),
		utils.DegToRad(part.RotationDegsPerSec),
	)
}

// Parts is a list of frame configs.
type Parts []*FrameSystemPart

// Names returns the names of input parts.
func Names(parts Parts) []string {
	return lo.Map(parts, func(part *FrameSystemPart, _ int) string { return part.Name })
}

// String prints out a table of each frame, with columns of name, parent, translation, orientation and velocities.
func (parts Parts) String() string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Name", "Parent", "Translation", "Orientation", "Velocity", "Rotation"})
	t.AppendRow(table.Row{"0", World, "", "", "", "", ""})
	for i, part := range parts {
		t.AppendRow(table.Row{
			fmt.Sprintf("%d", i+1),
			part.Name,
			part.Parent,
			fmt.Sprintf("X:%.2f, Y:%.2f", part.Translation.X, part.Translation.Y),
			fmt.Sprintf("%.2f°", part.OrientationDegs),
			fmt.Sprintf("X:%.2f, Y:%.2f", part.Velocity.X, part.Velocity.Y),
			fmt.Sprintf("%.2f°/s", part.RotationDegsPerSec),
		})
	}
	return t.Render()
}

// TopologicallySort takes a potentially un-ordered slice of frame system parts and
// sorts them, beginning at the world node. Siblings are ordered by name.
func TopologicallySort(parts Parts) (Parts, error) {
	// set up directory to check existence of parents
	existingParts := make(map[string]bool, len(parts))
	existingParts[World] = true
	for _, part := range parts {
		if existingParts[part.Name] {
			return nil, NewFrameAlreadyExistsError(part.Name)
		}
		existingParts[part.Name] = true
	}
	// make map of children
	children := make(map[string]Parts)
	for _, part := range parts {
		if !existingParts[part.Parent] {
			return nil, NewParentFrameMissingError(part.Name, part.Parent)
		}
		children[part.Parent] = append(children[part.Parent], part)
	}
	topoSortedParts := Parts{}
	// If there are no frames, return the empty list
	if len(children) == 0 {
		return topoSortedParts, nil
	}
	if _, ok := children[World]; !ok {
		return nil, errors.New("there are no frames that connect to a 'world' node. Root node must be named 'world'")
	}
	queue := []string{World}
	visited := make(map[string]bool)
	for len(queue) != 0 {
		parent := queue[0]
		queue = queue[1:]
		if visited[parent] {
			return nil, errors.Errorf("the system contains a cycle, have already visited frame %s", parent)
		}
		visited[parent] = true
		sort.Slice(children[parent], func(i, j int) bool {
			return children[parent][i].Name < children[parent][j].Name
		})
		for _, part := range children[parent] {
			queue = append(queue, part.Name)
			topoSortedParts = append(topoSortedParts, part)
		}
	}
	return topoSortedParts, nil
}

// NewFrameSystemFromConfig assembles a frame system from the given parts.
func NewFrameSystemFromConfig(name string, parts Parts) (FrameSystem, error) {
	for idx, part := range parts {
		if err := part.Validate(fmt.Sprintf("%s.%d", "frames", idx)); err != nil {
			return nil, err
		}
	}
	sortedParts, err := TopologicallySort(parts)
	if err != nil {
		return nil, err
	}
	if len(sortedParts) != len(parts) {
		return nil, errors.Errorf(
			"frame system has disconnected frames. connected frames: %v, all frames: %v",
			Names(sortedParts),
			Names(parts),
		)
	}
	fs := NewEmptyFrameSystem(name)
	for _, part := range sortedParts {
		if err := fs.AddFrame(part.Name, part.Parent, part.State()); err != nil {
			return nil, err
		}
	}
	return fs, nil
}
