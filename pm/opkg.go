package buildbox_pm

import (
	"strings"

	wzlib_logger "github.com/infra-whizz/wzlib/logger"
)

// OpkgPackageManager operates opkg on an offline root
type OpkgPackageManager struct {
	binary string
	conf   string
	root   string

	BasePackageManager
	wzlib_logger.WzLogger
}

// NewOpkgPackageManager creates an opkg caller object. Binary is looked up in PATH if empty.
func NewOpkgPackageManager(binary string) *OpkgPackageManager {
	pm := new(OpkgPackageManager)
	pm.binary = binary
	if pm.binary == "" {
		pm.binary = "opkg"
	}
	return pm
}

// Name of the package manager
func (pm *OpkgPackageManager) Name() string {
	return "opkg"
}

// SetRoot to work with
func (pm *OpkgPackageManager) SetRoot(conf string, root string) PackageManager {
	pm.conf = conf
	pm.root = root
	return pm
}

// Call opkg against the offline root
func (pm *OpkgPackageManager) Call(args ...string) error {
	if pm.root == "" || pm.conf == "" {
		return ErrNoRoot
	}
	pm.GetLogger().Debugf("opkg %s on %s", strings.Join(args, " "), pm.root)

	return pm.callPackageManager(pm.binary, append([]string{"--conf", pm.conf, "--offline-root", pm.root}, args...)...)
}

// Update package index
func (pm *OpkgPackageManager) Update() error {
	return pm.Call("update")
}

// Install packages
func (pm *OpkgPackageManager) Install(pkgs ...string) error {
	return pm.Call(append([]string{"install"}, pkgs...)...)
}

// Remove packages
func (pm *OpkgPackageManager) Remove(pkgs ...string) error {
	return pm.Call(append([]string{"remove"}, pkgs...)...)
}
