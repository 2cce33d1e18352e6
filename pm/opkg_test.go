package buildbox_pm

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type recorder struct {
	calls [][]string
	fail  string
}

func (r *recorder) Run(cmd string, args ...string) error {
	r.calls = append(r.calls, append([]string{cmd}, args...))
	if r.fail != "" && strings.Contains(strings.Join(args, " "), r.fail) {
		return errors.New("exit status 255")
	}
	return nil
}

func TestOpkgCalls(t *testing.T) {
	rec := &recorder{}
	pm := NewOpkgPackageManager("")
	pm.SetRunner(rec)
	pm.SetRoot("/tmp/opkg.conf", "/targets/t1")

	require.Equal(t, "opkg", pm.Name())
	require.NoError(t, pm.Update())
	require.NoError(t, pm.Install("busybox", "musl"))
	require.NoError(t, pm.Remove("sed"))

	common := []string{"opkg", "--conf", "/tmp/opkg.conf", "--offline-root", "/targets/t1"}
	require.Equal(t, [][]string{
		append(append([]string{}, common...), "update"),
		append(append([]string{}, common...), "install", "busybox", "musl"),
		append(append([]string{}, common...), "remove", "sed"),
	}, rec.calls)
}

func TestOpkgFailure(t *testing.T) {
	rec := &recorder{fail: "install"}
	pm := NewOpkgPackageManager("/usr/bin/opkg")
	pm.SetRunner(rec)
	pm.SetRoot("/c", "/r")

	err := pm.Install("x")
	require.Error(t, err)
	require.Contains(t, err.Error(), "exit status 255")
	require.Equal(t, "/usr/bin/opkg", rec.calls[0][0])
}

func TestOpkgNoRoot(t *testing.T) {
	pm := NewOpkgPackageManager("")
	pm.SetRunner(&recorder{})
	require.ErrorIs(t, pm.Update(), ErrNoRoot)
}

func TestOpkgConfig(t *testing.T) {
	conf := OpkgConfig{
		Release:    "ollie",
		Libc:       "musl",
		Arch:       "aarch64",
		HostArch:   "x86_64",
		TargetID:   "t1",
		Machine:    "aarch64",
		TargetType: "aarch64-linux-musl",
		CheckSig:   true,
		RepoBase:   "http://archive.boltlinux.org/dists/",
	}

	data, err := conf.Render()
	require.NoError(t, err)
	require.Contains(t, data, "option cache_dir /.pkg-cache\n")
	require.Contains(t, data, "option signature_type usign\n")
	require.Contains(t, data, "\noption check_signature\n")
	require.Contains(t, data, "src/gz main http://archive.boltlinux.org/dists/ollie/core/aarch64/musl/main\n")
	require.Contains(t, data, "src/gz main-debug http://archive.boltlinux.org/dists/ollie/core/aarch64/musl/main-debug\n")
	require.Contains(t, data, "src/gz tools http://archive.boltlinux.org/dists/ollie/core/aarch64/musl/tools/x86_64\n")
	require.Contains(t, data, "src/gz tools-debug http://archive.boltlinux.org/dists/ollie/core/aarch64/musl/tools-debug/x86_64\n")
	require.Contains(t, data, "arch aarch64 1\narch all 1\narch tools 1\n")
	require.Contains(t, data, "dest root /\n")

	conf.CheckSig = false
	pth := filepath.Join(t.TempDir(), "opkg.conf")
	require.NoError(t, conf.Write(pth))
	written, err := os.ReadFile(pth)
	require.NoError(t, err)
	require.NotContains(t, string(written), "check_signature")
}
