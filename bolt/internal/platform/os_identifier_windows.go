package platform

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/windows"
)

// OSIdentifier returns a "windows/major.minor.build" string; see the unix
// variant for why this exists.
func OSIdentifier() string {
	v := windows.RtlGetVersion()
	return fmt.Sprintf("%s/%d.%d.%d", runtime.GOOS, v.MajorVersion, v.MinorVersion, v.BuildNumber)
}
