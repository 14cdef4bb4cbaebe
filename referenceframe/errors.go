package referenceframe

import "github.com/pkg/errors"

// ErrNoParent is returned when asking for the parent of the world frame.
var ErrNoParent = errors.New("no parent")

// NewFrameMissingError returns an error indicating that the named frame is not in the frame system.
func NewFrameMissingError(name string) error {
	return errors.Errorf("frame with name %q not in frame system", name)
}

// NewParentFrameMissingError returns an error indicating that a frame's parent is not in the frame system.
func NewParentFrameMissingError(name, parent string) error {
	return errors.Errorf("parent frame with name %q for frame %q not in frame system", parent, name)
}

// NewFrameAlreadyExistsError returns an error indicating that a frame name is already taken.
func NewFrameAlreadyExistsError(name string) error {
	return errors.Errorf("frame with name %q already in frame system", name)
}
