package system

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

// Namespace identifies the application on disk.
type Namespace struct {
	Qualifier    string
	Organization string
	Application  string
}

// AppNamespace is the namespace every launcher directory is derived from.
var AppNamespace = Namespace{
	Qualifier:    "net",
	Organization: "yarwhq",
	Application:  "yarw",
}

type dirKind int

const (
	kindConfig dirKind = iota
	kindCache
)

var (
	configDir = sync.OnceValue(func() string {
		base, err := os.UserConfigDir()
		if err != nil {
			return ""
		}
		return AppNamespace.dir(runtime.GOOS, base, kindConfig)
	})
	cacheDir = sync.OnceValue(func() string {
		base, err := os.UserCacheDir()
		if err != nil {
			return ""
		}
		return AppNamespace.dir(runtime.GOOS, base, kindCache)
	})
)

// ConfigDir returns the private configuration root of the launcher.
// It is computed on first use and cached for the life of the process.
// When the host has no user configuration directory the result is "".
// The directory is not created; see filesystem.EnsureDirs.
func ConfigDir() string {
	return configDir()
}

// CacheDir is the cache counterpart of ConfigDir.
func CacheDir() string {
	return cacheDir()
}

// dir lays the namespace out under base following each platform's convention:
//
//   - linux and the BSDs: <base>/yarw
//   - darwin: <base>/net.yarwhq.yarw
//   - windows: <base>\yarwhq\yarw\config (or \cache)
func (n Namespace) dir(goos, base string, kind dirKind) string {
	if base == "" {
		return ""
	}
	switch goos {
	case "darwin", "ios":
		return filepath.Join(base, n.Qualifier+"."+n.Organization+"."+n.Application)
	case "windows":
		leaf := "config"
		if kind == kindCache {
			leaf = "cache"
		}
		return filepath.Join(base, n.Organization, n.Application, leaf)
	default:
		return filepath.Join(base, n.Application)
	}
}
