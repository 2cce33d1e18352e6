package buildbox_lib

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/karrick/godirwalk"
)

// DefaultMountTable is the kernel's list of mounts of the current process
var DefaultMountTable string = "/proc/mounts"

// IsDir follows symlinks, like "test -d" does
func IsDir(pth string) bool {
	info, err := os.Stat(pth)
	return err == nil && info.IsDir()
}

// DirIsEmpty returns true if a directory has no entries.
// Non-existing directory is considered empty.
func DirIsEmpty(pth string) (bool, error) {
	if _, err := os.Lstat(pth); os.IsNotExist(err) {
		return true, nil
	}
	names, err := godirwalk.ReadDirnames(pth, nil)
	if err != nil {
		return false, WrapError(ErrIO, err, "Unable to read directory %s", pth)
	}
	return len(names) == 0, nil
}

// RealPath resolves all symlinks of the existing part of the path and cleans the rest.
// Unlike filepath.EvalSymlinks it never fails on paths that are gone.
func RealPath(pth string) string {
	pth = filepath.Clean(pth)
	if resolved, err := filepath.EvalSymlinks(pth); err == nil {
		return resolved
	}
	parent := filepath.Dir(pth)
	if parent == pth {
		return pth
	}
	return filepath.Join(RealPath(parent), filepath.Base(pth))
}

// unescapeMount decodes octal escapes, which kernel uses for spaces, tabs and newlines in /proc/mounts.
func unescapeMount(field string) string {
	if !strings.Contains(field, "\\") {
		return field
	}

	var out strings.Builder
	for i := 0; i < len(field); i++ {
		if field[i] == '\\' && i+3 < len(field) {
			if v, err := strconv.ParseUint(field[i+1:i+4], 8, 8); err == nil {
				out.WriteByte(byte(v))
				i += 3
				continue
			}
		}
		out.WriteByte(field[i])
	}
	return out.String()
}

// ReadMountPoints returns mountpoints listed in a mount table file (device, mountpoint, type, options, dump, pass).
func ReadMountPoints(table string) ([]string, error) {
	fh, err := os.Open(table)
	if err != nil {
		return nil, WrapError(ErrIO, err, "Unable to read mount table %s", table)
	}
	defer fh.Close()

	mounts := []string{}
	scanner := bufio.NewScanner(fh)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		mounts = append(mounts, unescapeMount(fields[1]))
	}
	if err := scanner.Err(); err != nil {
		return nil, WrapError(ErrIO, err, "Unable to read mount table %s", table)
	}

	return mounts, nil
}

// MountsUnder returns the first mountpoint, whose real path is strictly inside the given directory.
func MountsUnder(table string, dir string) (string, bool, error) {
	mounts, err := ReadMountPoints(table)
	if err != nil {
		return "", false, err
	}

	dir = RealPath(dir)
	for _, mp := range mounts {
		mp = RealPath(mp)
		if strings.HasPrefix(mp, dir+string(os.PathSeparator)) {
			return mp, true, nil
		}
	}

	return "", false, nil
}
