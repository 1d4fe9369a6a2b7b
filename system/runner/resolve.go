package runner

import (
	"fmt"
	"io/fs"
	"os"
	"runtime"
)

// Resolver finds the Praat executable.
type Resolver interface {
	Resolve() (string, error)
}

// StaticPath resolves to itself.
type StaticPath string

func (p StaticPath) Resolve() (string, error) {
	if p == "" {
		return "", fmt.Errorf("%w: empty path", ErrNotFound)
	}
	return string(p), nil
}

const PathEnv = "PRAAT_PATH"

// EnvResolver resolves to the value of an environment variable, PRAAT_PATH
// by default, or else through Fallback.
type EnvResolver struct {
	Var      string
	Fallback Resolver
}

func (r EnvResolver) Resolve() (string, error) {
	v := r.Var
	if v == "" {
		v = PathEnv
	}
	if p := os.Getenv(v); p != "" {
		return p, nil
	}
	if r.Fallback != nil {
		return r.Fallback.Resolve()
	}
	return "", fmt.Errorf("%w: $%s is not set", ErrNotFound, v)
}

// PlatformResolver resolves to the first existing default install
// location of Praat for the operating system.
type PlatformResolver struct {
	// GOOS defaults to runtime.GOOS.
	GOOS string
	// Stat defaults to os.Stat.
	Stat func(string) (fs.FileInfo, error)
}

var platformPaths = map[string][]string{
	"windows": {`C:\Program Files\Praat\Praat.exe`, `C:\Program Files (x86)\Praat.exe`},
	"darwin":  {"/Applications/Praat.app/Contents/MacOS/Praat"},
	"linux":   {"/usr/bin/praat", "/usr/local/bin/praat"},
}

func (r PlatformResolver) Resolve() (string, error) {
	goos, stat := r.GOOS, r.Stat
	if goos == "" {
		goos = runtime.GOOS
	}
	if stat == nil {
		stat = os.Stat
	}
	paths, ok := platformPaths[goos]
	if !ok {
		paths = platformPaths["linux"]
	}
	for _, p := range paths {
		if _, err := stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %q", ErrNotFound, paths)
}

// DefaultResolver looks at PRAAT_PATH and then at the platform's install
// locations.
func DefaultResolver() Resolver {
	return EnvResolver{Fallback: PlatformResolver{}}
}
