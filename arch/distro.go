package buildbox_arch

import (
	"sort"
	"strings"

	buildbox_lib "github.com/infra-whizz/build-box/lib"
	wzlib_logger "github.com/infra-whizz/wzlib/logger"
	"github.com/thoas/go-funk"
)

// DefaultRelease is bootstrapped if nothing else is asked for
var DefaultRelease string = "stable"

// DefaultArchitectures every release supports unless configured differently
var DefaultArchitectures = []string{
	"aarch64", "armv6", "armv7a", "i686", "mips64el", "mipsel",
	"powerpc", "powerpc64le", "riscv64", "s390x", "x86_64",
}

// Distribution knows which releases exist and what architectures they support
type Distribution struct {
	latest   string
	releases map[string][]string

	wzlib_logger.WzLogger
}

func NewDistribution() *Distribution {
	d := new(Distribution)
	d.releases = map[string][]string{}
	d.SetRelease(DefaultRelease, DefaultArchitectures...)
	return d
}

// SetRelease registers a release. Last registered one becomes the latest.
func (d *Distribution) SetRelease(release string, architectures ...string) *Distribution {
	release = strings.TrimSpace(release)
	if release == "" {
		return d
	}
	if len(architectures) == 0 {
		architectures = DefaultArchitectures
	}
	d.releases[release] = architectures
	d.latest = release
	d.GetLogger().Debugf("Release %s supports %s", release, strings.Join(architectures, ", "))
	return d
}

// LatestRelease name
func (d *Distribution) LatestRelease() string {
	return d.latest
}

// Releases sorted by name
func (d *Distribution) Releases() []string {
	out := []string{}
	for r := range d.releases {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

// Architectures supported by the release
func (d *Distribution) Architectures(release string) []string {
	return d.releases[release]
}

// Check release and architecture
func (d *Distribution) Check(release, arch string) error {
	arches, ok := d.releases[release]
	if !ok {
		return buildbox_lib.NewError(buildbox_lib.ErrUnknownRelease, "unknown release name \"%s\".", release)
	}
	if !funk.ContainsString(arches, arch) {
		return buildbox_lib.NewError(buildbox_lib.ErrUnsupportedArch,
			"release \"%s\" does not support architecture \"%s\".", release, arch)
	}
	return nil
}
