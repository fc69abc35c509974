package session

import (
	"os"
	"runtime"
)

const cacheFileName = "pm-session.json"

// CachePath returns the full path of the session cache file for the
// current OS and user.
func CachePath() (string, error) {
	dir, err := runtimeDir()
	if err != nil {
		return "", err
	}
	return dir + string(os.PathSeparator) + cacheFileName, nil
}

// runtimeDir dispatches to the OS-family resolver for runtime.GOOS.
func runtimeDir() (string, error) {
	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly", "solaris":
		return unixRuntimeDir()
	case "darwin":
		return darwinRuntimeDir()
	case "windows":
		return windowsRuntimeDir()
	default:
		return fallbackRuntimeDir()
	}
}

// unixRuntimeDir prefers XDG_RUNTIME_DIR, the directory systemd-logind
// (or an equivalent) tears down at logout, falling back to the user
// cache directory when it isn't set.
func unixRuntimeDir() (string, error) {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return dir, nil
	}
	return fallbackRuntimeDir()
}

// darwinRuntimeDir has no ephemeral-per-login equivalent of XDG_RUNTIME_DIR,
// so it uses the user cache directory, matching Apple's guidance that
// ~/Library/Caches may be purged at any time.
func darwinRuntimeDir() (string, error) {
	return fallbackRuntimeDir()
}

// windowsRuntimeDir uses LOCALAPPDATA, the per-user volatile profile
// location Windows clears on profile reset; a real per-session temp
// directory isn't exposed consistently across Windows versions.
func windowsRuntimeDir() (string, error) {
	if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
		return dir, nil
	}
	return fallbackRuntimeDir()
}

// fallbackRuntimeDir resolves the OS user cache directory, used whenever
// no runtime-dir environment variable is set.
func fallbackRuntimeDir() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", ErrNoRuntimeDir
	}
	return dir, nil
}
