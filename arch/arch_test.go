package buildbox_arch

import (
	"testing"

	buildbox_lib "github.com/infra-whizz/build-box/lib"
	"github.com/stretchr/testify/require"
)

func TestQemuFor(t *testing.T) {
	for machine, binary := range map[string]string{
		"aarch64":     "qemu-aarch64-static",
		"armv7a":      "qemu-arm-static",
		"mips64el":    "qemu-mips64el-static",
		"mipsel":      "qemu-mipsel-static",
		"powerpc64le": "qemu-ppc64le-static",
		"ppc64le":     "qemu-ppc64le-static",
		"powerpc":     "qemu-ppc-static",
		"riscv64":     "qemu-riscv64-static",
		"s390x":       "qemu-s390x-static",
		"x86_64":      "",
		"i686":        "",
	} {
		require.Equal(t, binary, QemuFor(machine), machine)
	}
}

func TestFindEmulatorFirstMatchWins(t *testing.T) {
	table := []Emulator{
		{Prefix: "powerpc", Binary: "qemu-ppc-static"},
		{Prefix: "powerpc64le", Binary: "qemu-ppc64le-static"},
	}
	require.Equal(t, "qemu-ppc-static", FindEmulator(table, "powerpc64le"))

	table[0], table[1] = table[1], table[0]
	require.Equal(t, "qemu-ppc64le-static", FindEmulator(table, "powerpc64le"))
	require.Equal(t, "qemu-ppc-static", FindEmulator(table, "powerpc"))
	require.Equal(t, "", FindEmulator(table, "x86_64"))
}

func TestTargetForMachine(t *testing.T) {
	require.Equal(t, "aarch64-linux-musl", TargetForMachine("aarch64"))
	require.Equal(t, "armv7a-linux-musleabihf", TargetForMachine("armv7a"))
	require.Equal(t, "x86_64-pc-linux-musl", TargetForMachine("x86_64"))
	require.Equal(t, "x86_64-tools-linux-musl", ToolsType("x86_64"))
}

func TestDistributionCheck(t *testing.T) {
	d := NewDistribution()
	require.Equal(t, DefaultRelease, d.LatestRelease())
	require.NoError(t, d.Check("stable", "aarch64"))

	err := d.Check("nope", "aarch64")
	require.True(t, buildbox_lib.IsKind(err, buildbox_lib.ErrUnknownRelease))

	d.SetRelease("ollie", "x86_64")
	require.Equal(t, "ollie", d.LatestRelease())
	require.Equal(t, []string{"ollie", "stable"}, d.Releases())
	err = d.Check("ollie", "aarch64")
	require.True(t, buildbox_lib.IsKind(err, buildbox_lib.ErrUnsupportedArch))
}
