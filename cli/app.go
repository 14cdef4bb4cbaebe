// Package cli contains the kinematics2d command line tool: it loads a scene from a config file,
// rolls the configured body forward and reports where it goes and where it can stop.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"

	"go.viam.com/kinematics2d/config"
	"go.viam.com/kinematics2d/logging"
)

const (
	// Flags.
	generalFlagConfig = "config"
	generalFlagDebug  = "debug"

	simulateFlagDuration  = "duration"
	simulateFlagDeltaTime = "delta-time"
	simulateFlagEvery     = "every"

	framesFlagFrom = "from"
	framesFlagTo   = "to"
)

// kinematicsApp holds the state shared by every command of a single run.
type kinematicsApp struct {
	logger logging.Logger
}

// NewApp returns a new app with the CLI API, Writer set to out, and ErrWriter
// set to errOut. Logs are written to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	ka := &kinematicsApp{}
	return &cli.App{
		Name:            "kinematics2d",
		Usage:           "simulate and inspect planar rigid body motion",
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       errOut,
		Flags: []cli.Flag{
			&cli.PathFlag{
				Name:    generalFlagConfig,
				Aliases: []string{"c"},
				Usage:   "load configuration from `FILE`",
			},
			&cli.BoolFlag{
				Name:    generalFlagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
		},
		Before: ka.before,
		After:  ka.after,
		Commands: []*cli.Command{
			{
				Name:  "simulate",
				Usage: "roll the start state forward and print the trajectory",
				Flags: []cli.Flag{
					&cli.Float64Flag{
						Name:  simulateFlagDuration,
						Usage: "override the configured rollout duration in seconds",
					},
					&cli.Float64Flag{
						Name:  simulateFlagDeltaTime,
						Usage: "override the configured step in seconds",
					},
					&cli.IntFlag{
						Name:  simulateFlagEvery,
						Value: 1,
						Usage: "print only every `N`th node; the first and last are always printed",
					},
				},
				Action: ka.simulateAction,
			},
			{
				Name:   "stop",
				Usage:  "print where the start state comes to rest and how long it takes",
				Action: ka.stopAction,
			},
			{
				Name:  "frames",
				Usage: "print the configured frames, optionally expressing the start state in another frame",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  framesFlagFrom,
						Usage: "frame the start state is expressed in; defaults to the configured start frame",
					},
					&cli.StringFlag{
						Name:  framesFlagTo,
						Usage: "frame to express the start state in",
					},
				},
				Action: ka.framesAction,
			},
			{
				Name:   "schema",
				Usage:  "print the JSON schema of the config file",
				Action: ka.schemaAction,
			},
		},
	}
}

func (ka *kinematicsApp) before(c *cli.Context) error {
	logger := logging.NewBlankLogger("kinematics2d")
	logger.AddAppender(logging.NewWriterAppender(c.App.ErrWriter))
	logger.SetLevel(logging.INFO)
	config.InitLoggingSettings(logger, c.Bool(generalFlagDebug))
	ka.logger = logger
	return nil
}

func (ka *kinematicsApp) after(c *cli.Context) error {
	if ka.logger == nil {
		return nil
	}
	return ka.logger.Sync()
}
