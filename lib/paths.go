package buildbox_lib

import (
	"os"
	"path/filepath"
)

// TargetPrefix is where targets live unless configured otherwise: ~/.bolt/targets
func TargetPrefix() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = "/root"
	}
	return filepath.Join(home, ".bolt", "targets")
}

// CacheDir is the per-user cache root, honoring XDG_CACHE_HOME
func CacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil || dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".cache")
	}
	return dir
}

// NormPath returns an absolute, symlink-free version of a user given path
func NormPath(pth string) string {
	if abs, err := filepath.Abs(pth); err == nil {
		pth = abs
	}
	return RealPath(pth)
}
