package buildbox_pm

import (
	"fmt"
	"strings"

	buildbox_lib "github.com/infra-whizz/build-box/lib"
)

// BasePackageManager mixin
type BasePackageManager struct {
	runner buildbox_lib.Runner
}

// SetRunner replaces the way the package manager gets executed
func (bpm *BasePackageManager) SetRunner(runner buildbox_lib.Runner) {
	bpm.runner = runner
}

func (bpm *BasePackageManager) callPackageManager(name string, args ...string) error {
	runner := bpm.runner
	if runner == nil {
		runner = buildbox_lib.LoggedRunner{}
	}

	if err := runner.Run(name, args...); err != nil {
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}
