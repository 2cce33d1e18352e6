package buildbox_lib

import (
	"os"
	"strings"

	wzlib_logger "github.com/infra-whizz/wzlib/logger"
	wzlib_subprocess "github.com/infra-whizz/wzlib/subprocess"
)

type StdoutLogger struct {
	wzlib_logger.WzLogger
}

func (sl *StdoutLogger) Write(p []byte) (n int, err error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		sl.GetLogger().Info(strings.TrimRight(line, "\r"))
	}
	return len(p), nil
}

// Runner runs an external command and waits for it. Success is the zero exit code.
type Runner interface {
	Run(cmd string, args ...string) error
}

// LoggedRunner pipes stdout of the command into the logger
type LoggedRunner struct{}

func (LoggedRunner) Run(cmd string, args ...string) error {
	return LoggedExec(cmd, args...)
}

// StdoutRunner leaves the terminal to the command
type StdoutRunner struct{}

func (StdoutRunner) Run(cmd string, args ...string) error {
	return StdoutExec(cmd, args...)
}

func LoggedExec(cmd string, args ...string) error {
	wzlib_logger.GetCurrentLogger().Debugf("Calling: %s %v", cmd, args)
	out := wzlib_subprocess.ExecCommand(cmd, args...)
	out.Stdin = os.Stdin
	out.Stdout = &StdoutLogger{}
	out.Stderr = os.Stderr
	return out.Run()
}

func StdoutExec(cmd string, args ...string) error {
	wzlib_logger.GetCurrentLogger().Debugf("Calling: %s %v", cmd, args)
	out := wzlib_subprocess.ExecCommand(cmd, args...)
	out.Stdin = os.Stdin
	out.Stdout = os.Stdout
	out.Stderr = os.Stderr
	return out.Run()
}
