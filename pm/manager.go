package buildbox_pm

import (
	"fmt"
)

// PackageManager class interface
type PackageManager interface {
	// Return a name of the package manager, e.g. "opkg".
	Name() string

	// SetRoot of the offline root filesystem and the configuration to operate with
	SetRoot(conf string, root string) PackageManager

	// Update package index
	Update() error

	// Install packages
	Install(pkgs ...string) error

	// Remove packages
	Remove(pkgs ...string) error

	// Call underlying package manager with any subcommand.
	Call(args ...string) error
}

// ErrNoRoot is returned if the package manager was called before SetRoot
var ErrNoRoot = fmt.Errorf("No offline root has been set for the package manager")
