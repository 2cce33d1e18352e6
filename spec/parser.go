package buildbox_spec

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"

	buildbox_lib "github.com/infra-whizz/build-box/lib"
)

// Mode of a directive
type Mode byte

const (
	ModeInstall Mode = '+'
	ModeRemove  Mode = '-'
	ModeReset   Mode = '='
)

func (m Mode) String() string {
	return string(m)
}

// Batch is a maximal run of same-mode directives, executed by one package manager call
type Batch struct {
	Mode     Mode
	Packages []string
}

var directiveRe = regexp.MustCompile(`^(\+|-|=)\s*(\S*)\s*$`)

// Parse a package spec file into ordered batches
func Parse(specfile string) ([]Batch, error) {
	info, err := os.Stat(specfile)
	if os.IsNotExist(err) {
		return nil, buildbox_lib.NewError(buildbox_lib.ErrSpecNotFound, "package spec file '%s' not found.", specfile)
	} else if err != nil {
		return nil, buildbox_lib.WrapError(buildbox_lib.ErrIO, err, "unable to access '%s'", specfile)
	}

	if !info.Mode().IsRegular() {
		return nil, buildbox_lib.NewError(buildbox_lib.ErrSpecNotRegularFile, "'%s' is not a regular file.", specfile)
	}

	fh, err := os.Open(specfile)
	if err != nil {
		return nil, buildbox_lib.WrapError(buildbox_lib.ErrIO, err, "unable to open '%s'", specfile)
	}
	defer fh.Close()

	return ParseReader(specfile, fh)
}

// ParseReader does the same as Parse on any reader. Name is used in error messages.
func ParseReader(name string, r io.Reader) ([]Batch, error) {
	batches := []Batch{}
	activeBatch := []string{}
	var activeMode Mode

	lineno := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineno++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		m := directiveRe.FindStringSubmatch(line)
		if m == nil {
			return nil, syntaxError(name, lineno, line)
		}

		mode := Mode(m[1][0])
		if mode != activeMode {
			if len(activeBatch) > 0 {
				batches = append(batches, Batch{Mode: activeMode, Packages: activeBatch})
				activeBatch = []string{}
			}
			activeMode = mode
		}

		if mode == ModeInstall || mode == ModeRemove {
			if m[2] == "" {
				return nil, syntaxError(name, lineno, line)
			}
			activeBatch = append(activeBatch, m[2])
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, buildbox_lib.WrapError(buildbox_lib.ErrIO, err, "unable to read '%s'", name)
	}

	if len(activeBatch) > 0 {
		batches = append(batches, Batch{Mode: activeMode, Packages: activeBatch})
	}

	return batches, nil
}

func syntaxError(name string, lineno int, line string) error {
	return buildbox_lib.NewError(buildbox_lib.ErrSpecSyntax,
		"malformatted entry in '%s' on line '%d': %s", name, lineno, line)
}
