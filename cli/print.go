package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"go.viam.com/kinematics2d/spatialmath"
	"go.viam.com/kinematics2d/utils"
)

// printf prints a message with no prefix.
func printf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck // no need to check for errors when printing to the console
	fmt.Fprintf(w, format+"\n", a...)
}

// infof prints a message prefixed with a bold "Info: ".
func infof(w io.Writer, format string, a ...interface{}) {
	if _, err := color.New(color.Bold, color.FgCyan).Fprint(w, "Info: "); err != nil {
		return
	}
	printf(w, format, a...)
}

func formatVector(v spatialmath.Vector) string {
	return fmt.Sprintf("X:%.3f, Y:%.3f", v.X, v.Y)
}

func formatHeading(radians float64) string {
	return fmt.Sprintf("%.2f°", utils.RadToDeg(radians))
}

func formatPose(p spatialmath.Pose) string {
	return fmt.Sprintf("%s, heading:%s", formatVector(p.Position), formatHeading(p.Orientation))
}

func formatState(k spatialmath.Kinematics) string {
	return fmt.Sprintf("%s, velocity:(%s), rotation:%.2f°/s",
		formatPose(k.Pose()), formatVector(k.Velocity), utils.RadToDeg(k.Rotation))
}
