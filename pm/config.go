package buildbox_pm

import (
	"os"
	"strings"
	"text/template"
)

// OpkgConfig parameters of the opkg.conf
type OpkgConfig struct {
	Release    string
	Libc       string
	Arch       string
	HostArch   string
	TargetID   string
	Machine    string
	TargetType string
	CheckSig   bool
	RepoBase   string
}

var opkgConfTemplate = template.Must(template.New("opkg.conf").Parse(`##############################################################################
# OPTIONS
##############################################################################

option cache_dir /.pkg-cache
option signature_type usign
option no_install_recommends
option force_removal_of_dependent_packages
option force_postinstall

{{if .CheckSig}}option check_signature{{end}}

##############################################################################
# FEEDS
##############################################################################

{{with $base := printf "%s/%s/core/%s/%s" .RepoBase .Release .Arch .Libc -}}
src/gz main {{$base}}/main
src/gz main-debug {{$base}}/main-debug
src/gz tools {{$base}}/tools/{{$.HostArch}}
src/gz tools-debug {{$base}}/tools-debug/{{$.HostArch}}
{{- end}}

##############################################################################
# ARCHES
##############################################################################

arch {{.Arch}} 1
arch all 1
arch tools 1

##############################################################################
# INSTALL ROOT
##############################################################################

dest root /
`))

// Render opkg.conf
func (c OpkgConfig) Render() (string, error) {
	c.RepoBase = strings.TrimRight(c.RepoBase, "/")

	var buff strings.Builder
	if err := opkgConfTemplate.Execute(&buff, c); err != nil {
		return "", err
	}
	return buff.String(), nil
}

// Write rendered opkg.conf to a file
func (c OpkgConfig) Write(pth string) error {
	data, err := c.Render()
	if err != nil {
		return err
	}
	return os.WriteFile(pth, []byte(data), 0644)
}
