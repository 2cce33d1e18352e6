package buildbox_arch

import (
	"strings"
)

// Emulator pairs a machine name prefix with the QEMU user-mode static binary serving it
type Emulator struct {
	Prefix string
	Binary string
}

// Matches if the machine name starts with the prefix
func (e Emulator) Matches(machine string) bool {
	return strings.HasPrefix(machine, e.Prefix)
}

// Emulators is evaluated in order, first match wins. Some prefixes are prefixes
// of others ("powerpc" of "powerpc64le"), hence longer ones go first.
var Emulators = []Emulator{
	{Prefix: "aarch64", Binary: "qemu-aarch64-static"},
	{Prefix: "arm", Binary: "qemu-arm-static"},
	{Prefix: "mips64el", Binary: "qemu-mips64el-static"},
	{Prefix: "mipsel", Binary: "qemu-mipsel-static"},
	{Prefix: "powerpc64el", Binary: "qemu-ppc64le-static"},
	{Prefix: "powerpc64le", Binary: "qemu-ppc64le-static"},
	{Prefix: "ppc64le", Binary: "qemu-ppc64le-static"},
	{Prefix: "powerpc", Binary: "qemu-ppc-static"},
	{Prefix: "riscv64", Binary: "qemu-riscv64-static"},
	{Prefix: "s390x", Binary: "qemu-s390x-static"},
}

// FindEmulator in the table. Returns empty string if the machine runs natively.
func FindEmulator(table []Emulator, machine string) string {
	for _, e := range table {
		if e.Matches(machine) {
			return e.Binary
		}
	}
	return ""
}

// QemuFor returns QEMU static binary name for the machine using the default table
func QemuFor(machine string) string {
	return FindEmulator(Emulators, machine)
}
