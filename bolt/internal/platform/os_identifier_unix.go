//go:build linux || darwin
// +build linux darwin

package platform

import (
	"bytes"
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// OSIdentifier returns a "GOOS/kernel-release" string, used as part of the
// default INIT client name so a server operator can tell what platform a
// connection came from. Falls back to bare GOOS if uname(2) fails.
func OSIdentifier() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return runtime.GOOS
	}
	release := bytes.Trim(uts.Release[:], "\x00")
	return fmt.Sprintf("%s/%s", runtime.GOOS, release)
}
