// File: iniconf/discovery.go
package iniconf

import (
	"os"
	"path/filepath"
	"strings"
)

// DiscoveryOptions configures automatic config file discovery.
type DiscoveryOptions struct {
	// Base name of the config file (without extension)
	Name string

	// Extensions to try (in order)
	Extensions []string

	// Environment variable to check for an explicit path
	EnvVar string

	// CLI flag to check (e.g., "--config")
	CLIFlag string

	// Args scanned for CLIFlag, usually os.Args[1:]
	Args []string

	// Custom search directories, tried before the standard ones
	Paths []string

	// Whether to search in XDG config directories
	UseXDG bool

	// Whether to search in the current directory
	UseCurrentDir bool
}

// DefaultDiscoveryOptions returns sensible defaults for appName.
func DefaultDiscoveryOptions(appName string) DiscoveryOptions {
	return DiscoveryOptions{
		Name:          appName,
		Extensions:    []string{".ini", ".conf"},
		EnvVar:        strings.ToUpper(appName) + "_CONFIG",
		CLIFlag:       "--config",
		Args:          os.Args[1:],
		UseXDG:        true,
		UseCurrentDir: true,
	}
}

// Discover locates a configuration file. An explicit CLI flag wins, then
// the environment variable, then each search directory in order. The
// second result reports whether the returned path exists; an explicit
// flag or env path is returned even when missing so the caller can fail
// loudly instead of silently falling back.
func Discover(opts DiscoveryOptions) (string, bool) {
	// CLI flag first (highest priority)
	if opts.CLIFlag != "" {
		for i, arg := range opts.Args {
			if arg == opts.CLIFlag && i+1 < len(opts.Args) {
				path := opts.Args[i+1]
				return path, fileExists(path)
			}
			if strings.HasPrefix(arg, opts.CLIFlag+"=") {
				path := strings.TrimPrefix(arg, opts.CLIFlag+"=")
				return path, fileExists(path)
			}
		}
	}

	// Environment variable
	if opts.EnvVar != "" {
		if path := os.Getenv(opts.EnvVar); path != "" {
			return path, fileExists(path)
		}
	}

	// Build search paths
	var searchPaths []string
	searchPaths = append(searchPaths, opts.Paths...)

	if opts.UseCurrentDir {
		if cwd, err := os.Getwd(); err == nil {
			searchPaths = append(searchPaths, cwd)
		}
	}

	if opts.UseXDG {
		searchPaths = append(searchPaths, xdgConfigPaths(opts.Name)...)
	}

	for _, dir := range searchPaths {
		for _, ext := range opts.Extensions {
			path := filepath.Join(dir, opts.Name+ext)
			if fileExists(path) {
				return path, true
			}
		}
	}

	// No file found is not an error; the app can run on defaults.
	return "", false
}

// xdgConfigPaths returns XDG-compliant config search paths.
func xdgConfigPaths(appName string) []string {
	var paths []string

	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		paths = append(paths, filepath.Join(xdgHome, appName))
	} else if home := os.Getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".config", appName))
	}

	if xdgDirs := os.Getenv("XDG_CONFIG_DIRS"); xdgDirs != "" {
		for _, dir := range filepath.SplitList(xdgDirs) {
			paths = append(paths, filepath.Join(dir, appName))
		}
	} else {
		paths = append(paths,
			filepath.Join("/etc/xdg", appName),
			filepath.Join("/etc", appName),
		)
	}

	return paths
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
