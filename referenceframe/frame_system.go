package referenceframe

import (
	"sort"

	"github.com/samber/lo"
	"go.uber.org/multierr"

	"go.viam.com/kinematics2d/spatialmath"
)

// World is the string "world", but made into an exported constant.
const World = "world"

// FrameSystem represents a tree of frames connected to each other, allowing for transformations between any two frames.
type FrameSystem interface {
	// Name returns the name of this FrameSystem
	Name() string

	// FrameNames returns the sorted names of all of the frames that exist in the FrameSystem, excluding the world
	FrameNames() []string

	// Frame returns the Frame in the FrameSystem with the given name
	Frame(name string) (*Frame, error)

	// AddFrame inserts a frame named name as a child of parent, with the given state relative to parent
	AddFrame(name, parent string, state spatialmath.Kinematics) error

	// UpdateFrame replaces the state of an existing frame relative to its parent
	UpdateFrame(name string, state spatialmath.Kinematics) error

	// RemoveFrame removes the given Frame and all of its descendents from the FrameSystem
	RemoveFrame(name string)

	// Parent returns the name of the parent of the given frame
	Parent(name string) (string, error)

	// TracebackFrame traces the parentage of the given frame up to the world, and returns the full list of frame names in
	// between. The list will include both the query frame and the world frame
	TracebackFrame(name string) ([]string, error)

	// StateToWorld returns the state of the named frame's origin expressed in the world frame
	StateToWorld(name string) (spatialmath.Kinematics, error)

	// Transform takes a state expressed in the src frame and returns the same state expressed in the dst frame
	Transform(state spatialmath.Kinematics, src, dst string) (spatialmath.Kinematics, error)
}

// simpleFrameSystem implements FrameSystem. It is a simple tree graph keyed by frame name.
type simpleFrameSystem struct {
	name    string
	world   *Frame
	frames  map[string]*Frame
	parents map[string]string
}

// NewEmptyFrameSystem creates a frame system containing only the world frame.
func NewEmptyFrameSystem(name string) FrameSystem {
	return &simpleFrameSystem{name, NewZeroFrame(World), map[string]*Frame{}, map[string]string{}}
}

func (sfs *simpleFrameSystem) Name() string {
	return sfs.name
}

// frameExists is a helper function to see if a frame with a given name already exists in the system.
func (sfs *simpleFrameSystem) frameExists(name string) bool {
	if name == World {
		return true
	}
	_, ok := sfs.frames[name]
	return ok
}

func (sfs *simpleFrameSystem) FrameNames() []string {
	frameNames := lo.Keys(sfs.frames)
	sort.Strings(frameNames)
	return frameNames
}

func (sfs *simpleFrameSystem) Frame(name string) (*Frame, error) {
	if name == World {
		return sfs.world, nil
	}
	frame, ok := sfs.frames[name]
	if !ok {
		return nil, NewFrameMissingError(name)
	}
	return frame, nil
}

func (sfs *simpleFrameSystem) AddFrame(name, parent string, state spatialmath.Kinematics) error {
	if !sfs.frameExists(parent) {
		return NewParentFrameMissingError(name, parent)
	}
	if sfs.frameExists(name) {
		return NewFrameAlreadyExistsError(name)
	}
	sfs.frames[name] = NewFrame(name, state)
	sfs.parents[name] = parent
	return nil
}

func (sfs *simpleFrameSystem) UpdateFrame(name string, state spatialmath.Kinematics) error {
	if _, ok := sfs.frames[name]; !ok {
		return NewFrameMissingError(name)
	}
	sfs.frames[name] = NewFrame(name, state)
	return nil
}

func (sfs *simpleFrameSystem) RemoveFrame(name string) {
	if _, ok := sfs.frames[name]; !ok {
		return
	}
	delete(sfs.frames, name)
	delete(sfs.parents, name)

	// Remove all descendents
	for child, parent := range sfs.parents {
		if parent == name {
			sfs.RemoveFrame(child)
		}
	}
}

func (sfs *simpleFrameSystem) Parent(name string) (string, error) {
	if !sfs.frameExists(name) {
		return "", NewFrameMissingError(name)
	}
	if name == World {
		return "", ErrNoParent
	}
	return sfs.parents[name], nil
}

func (sfs *simpleFrameSystem) TracebackFrame(name string) ([]string, error) {
	if !sfs.frameExists(name) {
		return nil, NewFrameMissingError(name)
	}
	if name == World {
		return []string{World}, nil
	}
	parents, err := sfs.TracebackFrame(sfs.parents[name])
	if err != nil {
		return nil, err
	}
	return append([]string{name}, parents...), nil
}

// StateToWorld composes the states of every frame from name up to the world. Each frame's state is
// applied on the left, so the result is expressed in the world frame.
func (sfs *simpleFrameSystem) StateToWorld(name string) (spatialmath.Kinematics, error) {
	if !sfs.frameExists(name) {
		return spatialmath.Kinematics{}, NewFrameMissingError(name)
	}
	q := spatialmath.NewZeroKinematics()
	for name != World {
		q = sfs.frames[name].State().Add(q)
		name = sfs.parents[name]
	}
	return q, nil
}

func (sfs *simpleFrameSystem) Transform(state spatialmath.Kinematics, src, dst string) (spatialmath.Kinematics, error) {
	if src == dst {
		if !sfs.frameExists(src) {
			return spatialmath.Kinematics{}, NewFrameMissingError(src)
		}
		return state, nil
	}

	// catch all errors together so both a missing source and destination are reported
	var errAll error
	srcToWorld, err := sfs.StateToWorld(src)
	multierr.AppendInto(&errAll, err)
	dstToWorld, err := sfs.StateToWorld(dst)
	multierr.AppendInto(&errAll, err)
	if errAll != nil {
		return spatialmath.Kinematics{}, errAll
	}

	// transform from source to world, world to destination
	return srcToWorld.Add(state).Sub(dstToWorld), nil
}
