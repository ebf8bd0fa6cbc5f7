package platform

import "runtime"

// OS represents an operating system family.
type OS string

const (
	MacOS   OS = "darwin"
	Linux   OS = "linux"
	Windows OS = "windows"
	Unknown OS = "unknown"
)

// Detect returns the current operating system.
func Detect() OS {
	switch runtime.GOOS {
	case "darwin":
		return MacOS
	case "linux":
		return Linux
	case "windows":
		return Windows
	default:
		return Unknown
	}
}

// String returns os/arch, e.g. "linux/amd64".
func String() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}

// PythonCandidates returns the interpreter names to look up on PATH, in
// order of preference.
func PythonCandidates() []string {
	if Detect() == Windows {
		return []string{"python", "py"}
	}
	return []string{"python3", "python"}
}
