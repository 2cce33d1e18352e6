package buildbox_arch

import (
	"fmt"
	"strings"
)

// TargetForMachine returns GNU target triplet for the machine, e.g. "aarch64-linux-musl".
func TargetForMachine(machine string) string {
	switch {
	case strings.HasPrefix(machine, "arm"):
		return fmt.Sprintf("%s-linux-musleabihf", machine)
	case machine == "x86_64" || machine == "i686":
		return fmt.Sprintf("%s-pc-linux-musl", machine)
	default:
		return fmt.Sprintf("%s-linux-musl", machine)
	}
}

// ToolsType of the tools (native helpers) installed into every target
func ToolsType(hostMachine string) string {
	return fmt.Sprintf("%s-tools-linux-musl", hostMachine)
}
