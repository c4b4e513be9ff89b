/*
File    : pakhi-bhasha/host/host.go
Author  : Shafin098
Contact : shafin098@users.noreply.github.com
*/

// Package host defines the capability boundary between Pakhi's language
// core and the operating system, per spec.md §1: "the core's only
// dependency on the host is (a) a file-bytes reader keyed by path, (b) a
// stdin line reader, (c) a filesystem mutator, and (d) a platform-name
// probe." The evaluator and builtin registry depend only on the Host
// interface below, never on package os directly, so tests can swap in an
// in-memory host and the module resolver stays host-agnostic.
package host

// Host is the full capability surface the Pakhi core needs from its
// environment. Every method returns a plain Go error; callers (mostly
// builtin/io.go) are responsible for wrapping it into a *perr.Error of kind
// IOError.
type Host interface {
	// ReadFile returns the complete contents of the file at path.
	ReadFile(path string) ([]byte, error)
	// ReadLine reads a single line from the host's standard input,
	// without the trailing newline.
	ReadLine() (string, error)

	// WriteFile writes data to path, creating or truncating it.
	WriteFile(path string, data []byte) error
	// DeleteFile removes a single file.
	DeleteFile(path string) error
	// Mkdir creates a directory (and any missing parents).
	Mkdir(path string) error
	// ReadDir returns the names of a directory's immediate children.
	ReadDir(path string) ([]string, error)
	// DeleteDir removes a directory and everything under it.
	DeleteDir(path string) error
	// Stat reports whether path is a file or a directory.
	Stat(path string) (Kind, error)

	// Platform returns one of the platform-name constants in spec.md §4.5.
	Platform() string
}

// Kind distinguishes a file from a directory for _ফাইল-নাকি-ডাইরেক্টরি.
type Kind string

const (
	File      Kind = "ফাইল"
	Directory Kind = "ডাইরেক্টরি"
)
