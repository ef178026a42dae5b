// Package platform identifies the host operating system and maps missing
// external tools to install guidance a developer can act on.
package platform

import "runtime"

// Platform is the host operating system family.
type Platform string

const (
	PlatformDarwin  Platform = "darwin"
	PlatformLinux   Platform = "linux"
	PlatformWindows Platform = "windows"
	PlatformUnknown Platform = "unknown"
)

// Current returns the platform the process is running on.
func Current() Platform {
	switch runtime.GOOS {
	case "darwin":
		return PlatformDarwin
	case "linux":
		return PlatformLinux
	case "windows":
		return PlatformWindows
	}
	return PlatformUnknown
}

// guidance maps (tool, platform) to an install suggestion.
var guidance = map[string]map[Platform]string{
	"node": {
		PlatformDarwin:  "Run: brew install node",
		PlatformLinux:   "Run: sudo apt install nodejs npm",
		PlatformWindows: "Download: https://nodejs.org/",
	},
	"java": {
		PlatformDarwin:  "Run: brew install openjdk",
		PlatformLinux:   "Run: sudo apt install default-jre",
		PlatformWindows: "Download: https://www.java.com/download/",
	},
}

// Guidance returns the install suggestion for tool on p, or an empty string
// when none is known.
func Guidance(tool string, p Platform) string {
	return guidance[tool][p]
}
