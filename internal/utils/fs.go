package utils

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// FileExists reports whether path can be stat'ed.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates dir and its parents if missing.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// SaveTOMLFile encodes data into a new or truncated TOML file.
func SaveTOMLFile(data any, path string) error {
	file, err := os.Create(path)
	if err != nil {
		log.Errorf("Failed to create file: %v", err)
		return err
	}
	defer file.Close()
	return toml.NewEncoder(file).Encode(data)
}

// AbsPath returns the absolute form of path, or path itself if it cannot be resolved.
func AbsPath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// ExecutableDir returns the directory of the running binary.
func ExecutableDir() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = resolved
	}
	return filepath.Dir(execPath), nil
}

// DirWritable creates dir when needed and probes it with a temp file.
func DirWritable(dir string) bool {
	if err := EnsureDir(dir); err != nil {
		log.Debugf("Cannot create directory %s: %v", dir, err)
		return false
	}
	probe, err := os.CreateTemp(dir, ".write_test")
	if err != nil {
		log.Debugf("Directory %s is not writable: %v", dir, err)
		return false
	}
	probe.Close()
	os.Remove(probe.Name())
	return true
}
