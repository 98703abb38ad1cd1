package nuklear

import "runtime"

// Platform represents the current operating system/platform
type Platform string

const (
	PlatformMacOS   Platform = "darwin"
	PlatformLinux   Platform = "linux"
	PlatformWindows Platform = "windows"
	PlatformWeb     Platform = "js"
	PlatformUnknown Platform = "unknown"
)

// CurrentPlatform returns the platform the app is running on
func CurrentPlatform() Platform {
	return platformOf(runtime.GOOS)
}

func platformOf(goos string) Platform {
	switch goos {
	case "darwin":
		return PlatformMacOS
	case "linux":
		return PlatformLinux
	case "windows":
		return PlatformWindows
	case "js":
		return PlatformWeb
	default:
		return PlatformUnknown
	}
}

// IsMacOS returns true if running on macOS
func IsMacOS() bool {
	return CurrentPlatform() == PlatformMacOS
}

// ShortcutKeys returns the host key names that act as the editing shortcut
// modifier: the command keys on macOS, left control elsewhere.
func (p Platform) ShortcutKeys() []string {
	if p == PlatformMacOS {
		return []string{"lgui", "rgui"}
	}
	return []string{"lctrl"}
}
