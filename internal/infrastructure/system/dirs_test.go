package system

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamespace_Dir(t *testing.T) {
	tests := []struct {
		name string
		goos string
		base string
		kind dirKind
		want string
	}{
		{name: "linux config", goos: "linux", base: "/home/u/.config", kind: kindConfig, want: filepath.Join("/home/u/.config", "yarw")},
		{name: "linux cache", goos: "linux", base: "/home/u/.cache", kind: kindCache, want: filepath.Join("/home/u/.cache", "yarw")},
		{name: "freebsd", goos: "freebsd", base: "/home/u/.config", kind: kindConfig, want: filepath.Join("/home/u/.config", "yarw")},
		{name: "darwin", goos: "darwin", base: "/Users/u/Library/Application Support", kind: kindConfig, want: filepath.Join("/Users/u/Library/Application Support", "net.yarwhq.yarw")},
		{name: "windows config", goos: "windows", base: "C:/Users/u/AppData/Roaming", kind: kindConfig, want: filepath.Join("C:/Users/u/AppData/Roaming", "yarwhq", "yarw", "config")},
		{name: "windows cache", goos: "windows", base: "C:/Users/u/AppData/Local", kind: kindCache, want: filepath.Join("C:/Users/u/AppData/Local", "yarwhq", "yarw", "cache")},
		{name: "no base", goos: "linux", base: "", kind: kindConfig, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AppNamespace.dir(tt.goos, tt.base, tt.kind))
		})
	}
}

func TestConfigDir_IsCached(t *testing.T) {
	first := ConfigDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	assert.Equal(t, first, ConfigDir())
	assert.Equal(t, CacheDir(), CacheDir())
}
