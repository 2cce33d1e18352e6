package main

import (
	"fmt"
	"os"
	"path"
	"strings"

	buildbox "github.com/infra-whizz/build-box"
	buildbox_lib "github.com/infra-whizz/build-box/lib"
	wzlib_logger "github.com/infra-whizz/wzlib/logger"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var bbox *buildbox.BuildBox

func init() {
	// setup logger
	if buildbox_lib.Any(os.Args, "--verbose", "-v") {
		wzlib_logger.GetCurrentLogger().SetLevel(logrus.TraceLevel)
	} else {
		wzlib_logger.GetCurrentLogger().SetLevel(logrus.InfoLevel)
	}

	bbox = buildbox.NewBuildBox(path.Base(os.Args[0]))
}

func targetsFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "targets",
		Aliases: []string{"t"},
		Usage:   "Directory with targets",
		Value:   bbox.Defaults().TargetPrefix,
	}
}

func verboseFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "Show debugging log",
	}
}

func main() {
	defaults := bbox.Defaults()
	app := &cli.App{
		Version: "1.0.0",
		Name:    bbox.AppName(),
		Usage:   "Bootstrap and manage cross-build targets",
	}

	app.Commands = []*cli.Command{
		{
			Name:      "create",
			Usage:     "Create and bootstrap a new target",
			ArgsUsage: "<new-target-name> <spec>",
			Action:    bbox.RunCreate,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "release",
					Aliases: []string{"r"},
					Usage:   fmt.Sprintf("The name of the release to bootstrap. Choices: %s.", strings.Join(bbox.Releases(), ", ")),
					Value:   defaults.Release,
				},
				&cli.StringFlag{
					Name:    "arch",
					Aliases: []string{"a"},
					Usage:   fmt.Sprintf("The architecture to bootstrap. Choices: %s.", strings.Join(bbox.Architectures(), ", ")),
					Value:   defaults.Arch,
				},
				&cli.StringFlag{
					Name:  "libc",
					Usage: "The C runtime library of the target",
					Value: defaults.Libc,
				},
				targetsFlag(),
				&cli.BoolFlag{
					Name:  "force",
					Usage: "Overwrite any existing target with the same name",
				},
				&cli.StringFlag{
					Name:  "repo-base",
					Usage: "Repository base URL up to and including the \"dists\" folder",
					Value: defaults.RepoBase,
				},
				&cli.BoolFlag{
					Name:  "no-verify",
					Usage: "Do not verify package list signatures",
				},
				verboseFlag(),
			},
		},
		{
			Name:   "list",
			Usage:  "List targets",
			Action: bbox.RunList,
			Flags:  []cli.Flag{targetsFlag(), verboseFlag()},
		},
		{
			Name:      "delete",
			Usage:     "Unmount and delete targets",
			ArgsUsage: "<target-name> ...",
			Action:    bbox.RunDelete,
			Flags:     []cli.Flag{targetsFlag(), verboseFlag()},
		},
	}

	if err := app.Run(os.Args); err != nil {
		wzlib_logger.GetCurrentLogger().Errorf("Error: %s", err.Error())
		os.Exit(1)
	}
}
