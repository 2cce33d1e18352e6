package buildbox_lib

import (
	"github.com/elastic/go-sysinfo"
	"github.com/elastic/go-sysinfo/types"
	"github.com/thoas/go-funk"
)

// Any of the occurrences
func Any(in interface{}, args ...interface{}) bool {
	for _, arg := range args {
		if funk.Contains(in, arg) {
			return true
		}
	}
	return false
}

var _currentHostInfo types.Host

func hostInfo() (types.HostInfo, error) {
	var err error
	if _currentHostInfo == nil {
		_currentHostInfo, err = sysinfo.Host()
		if err != nil {
			return types.HostInfo{}, err
		}
	}
	return _currentHostInfo.Info(), nil
}

// GetHostMachine returns native machine architecture of the host, as "uname -m" would do.
func GetHostMachine() (string, error) {
	info, err := hostInfo()
	if err != nil {
		return "", WrapError(ErrIO, err, "Unable to obtain host information")
	}
	if info.Architecture == "" {
		return "", NewError(ErrIO, "Unable to determine host machine architecture")
	}
	return info.Architecture, nil
}
