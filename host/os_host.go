package host

import (
	"bufio"
	"os"
	"runtime"

	"github.com/pkg/errors"
)

// OSHost is the production Host: every method is a thin wrapper over
// package os, grounded on the teacher's std/file_io.go and std/os.go
// (read_file, write_file, remove_file, mkdir, list_dir, platform) — moved
// behind the Host interface instead of being called straight from builtin
// implementations.
type OSHost struct {
	stdin *bufio.Reader
}

// NewOSHost builds an OSHost reading stdin lines from stdin (typically a
// bufio.Reader over os.Stdin; tests can wrap any io.Reader).
func NewOSHost(stdin *bufio.Reader) *OSHost {
	return &OSHost{stdin: stdin}
}

func (h *OSHost) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read file %q", path)
	}
	return data, nil
}

func (h *OSHost) ReadLine() (string, error) {
	line, err := h.stdin.ReadString('\n')
	if err != nil && line == "" {
		return "", errors.Wrap(err, "read line from stdin")
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line, nil
}

func (h *OSHost) WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "write file %q", path)
	}
	return nil
}

func (h *OSHost) DeleteFile(path string) error {
	if err := os.Remove(path); err != nil {
		return errors.Wrapf(err, "delete file %q", path)
	}
	return nil
}

func (h *OSHost) Mkdir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return errors.Wrapf(err, "create directory %q", path)
	}
	return nil
}

func (h *OSHost) ReadDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read directory %q", path)
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names, nil
}

func (h *OSHost) DeleteDir(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return errors.Wrapf(err, "delete directory %q", path)
	}
	return nil
}

func (h *OSHost) Stat(path string) (Kind, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", errors.Wrapf(err, "stat %q", path)
	}
	if info.IsDir() {
		return Directory, nil
	}
	return File, nil
}

// platformNames maps Go's runtime.GOOS to the platform-name vocabulary
// spec.md §4.5 specifies for _প্ল্যাটফর্ম.
var platformNames = map[string]string{
	"linux":     "linux",
	"darwin":    "macos",
	"ios":       "ios",
	"freebsd":   "freebsd",
	"dragonfly": "dragonfly",
	"netbsd":    "netbsd",
	"openbsd":   "openbsd",
	"solaris":   "solaris",
	"android":   "android",
	"windows":   "windows",
}

func (h *OSHost) Platform() string {
	if name, ok := platformNames[runtime.GOOS]; ok {
		return name
	}
	return runtime.GOOS
}
