package buildbox

import (
	"fmt"
	"strings"

	buildbox_arch "github.com/infra-whizz/build-box/arch"
	buildbox_lib "github.com/infra-whizz/build-box/lib"
	buildbox_target "github.com/infra-whizz/build-box/target"
	wzlib_logger "github.com/infra-whizz/wzlib/logger"
	"github.com/isbm/go-nanoconf"
	"github.com/urfave/cli/v2"
)

// BuildBox application object
type BuildBox struct {
	appname  string
	defaults buildbox_target.Options
	distro   *buildbox_arch.Distribution

	wzlib_logger.WzLogger
}

// NewBuildBox constructor. Reads "build-box" configuration, if any is found.
func NewBuildBox(appname string) *BuildBox {
	confpath := nanoconf.NewNanoconfFinder("build-box").DefaultSetup(nil)
	return NewBuildBoxWithConfig(appname, nanoconf.NewConfig(confpath.SetDefaultConfig(confpath.FindFirst()).FindDefault()))
}

// NewBuildBoxWithConfig constructor. Configuration overrides built-in defaults, CLI flags override configuration.
func NewBuildBoxWithConfig(appname string, conf *nanoconf.Config) *BuildBox {
	bb := new(BuildBox)
	bb.appname = appname
	bb.distro = buildbox_arch.NewDistribution()
	bb.defaults = buildbox_target.DefaultOptions()

	if conf != nil {
		root := conf.Root()
		bb.defaults.TargetPrefix = root.String("targets", bb.defaults.TargetPrefix)
		bb.defaults.CacheDir = root.String("cache", bb.defaults.CacheDir)
		bb.defaults.RepoBase = root.String("repo-base", bb.defaults.RepoBase)
		bb.defaults.Libc = root.String("libc", bb.defaults.Libc)
		bb.defaults.Helper = root.String("helper", bb.defaults.Helper)
		bb.defaults.Opkg = root.String("opkg", bb.defaults.Opkg)
		if release := root.String("release", ""); release != "" {
			bb.distro.SetRelease(release)
		}
	}
	bb.defaults.Release = bb.distro.LatestRelease()

	return bb
}

// AppName returns a name of the binary
func (bb BuildBox) AppName() string {
	return bb.appname
}

// Defaults of the target options, after configuration was applied
func (bb BuildBox) Defaults() buildbox_target.Options {
	return bb.defaults
}

// Releases known to the build box
func (bb BuildBox) Releases() []string {
	return bb.distro.Releases()
}

// Architectures the default release supports
func (bb BuildBox) Architectures() []string {
	return bb.distro.Architectures(bb.defaults.Release)
}

// options merges CLI flags over defaults
func (bb BuildBox) options(ctx *cli.Context) buildbox_target.Options {
	opts := bb.defaults
	if ctx.IsSet("targets") {
		opts.TargetPrefix = buildbox_lib.NormPath(strings.TrimSpace(ctx.String("targets")))
	}
	if ctx.IsSet("release") {
		opts.Release = strings.TrimSpace(ctx.String("release"))
	}
	if ctx.IsSet("arch") {
		opts.Arch = strings.ReplaceAll(strings.TrimSpace(ctx.String("arch")), "-", "_")
	}
	if ctx.IsSet("libc") {
		opts.Libc = strings.TrimSpace(ctx.String("libc"))
	}
	if ctx.IsSet("repo-base") {
		opts.RepoBase = strings.TrimSpace(ctx.String("repo-base"))
	}
	if ctx.IsSet("force") {
		opts.Force = ctx.Bool("force")
	}
	if ctx.IsSet("no-verify") {
		opts.Verify = !ctx.Bool("no-verify")
	}
	return opts
}

// Manager of targets for the given CLI context
func (bb BuildBox) Manager(ctx *cli.Context) *buildbox_target.TargetManager {
	return buildbox_target.NewTargetManager(bb.options(ctx)).SetDistribution(bb.distro)
}

// RunCreate creates a new target: create [OPTIONS] <new-target-name> <spec>
func (bb *BuildBox) RunCreate(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		cli.ShowSubcommandHelpAndExit(ctx, 1)
	}
	name, spec := ctx.Args().Get(0), ctx.Args().Get(1)
	opts := bb.options(ctx)
	wzlib_logger.GetCurrentLogger().Infof("Creating target: %s (%s, %s/%s)", name, opts.Release, opts.Arch, opts.Libc)

	return bb.Manager(ctx).Create(name, spec)
}

// RunList prints all targets
func (bb *BuildBox) RunList(ctx *cli.Context) error {
	if ctx.NArg() != 0 {
		cli.ShowSubcommandHelpAndExit(ctx, 1)
	}

	targets, err := bb.Manager(ctx).List()
	if err != nil {
		return err
	}
	fmt.Print(buildbox_target.Describe(targets))

	return nil
}

// RunDelete deletes one or more targets: delete [OPTIONS] <target-name> ...
func (bb *BuildBox) RunDelete(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		cli.ShowSubcommandHelpAndExit(ctx, 1)
	}
	wzlib_logger.GetCurrentLogger().Infof("Deleting target(s): %s", strings.Join(ctx.Args().Slice(), ", "))
	return bb.Manager(ctx).Delete(ctx.Args().Slice()...)
}
