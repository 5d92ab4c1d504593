// Package clipboard copies generated codes to the system clipboard.
package clipboard

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// For testing - allows us to mock these functions
var (
	execCommand  = exec.Command
	execLookPath = exec.LookPath
	runtimeGOOS  = runtime.GOOS
	getenv       = os.Getenv
)

// Copy copies text to the clipboard and returns an error if unsuccessful
func Copy(text string) error {
	switch runtimeGOOS {
	case "darwin":
		return pipeTo(text, "pbcopy")
	case "linux":
		return copyLinux(text)
	default:
		return fmt.Errorf("unsupported platform: %s", runtimeGOOS)
	}
}

// copyLinux picks whichever clipboard helper the session provides. Wayland
// sessions get wl-copy, X11 sessions get xclip or xsel.
func copyLinux(text string) error {
	if getenv("WAYLAND_DISPLAY") != "" {
		if _, err := execLookPath("wl-copy"); err == nil {
			return pipeTo(text, "wl-copy")
		}
	}

	if _, err := execLookPath("xclip"); err == nil {
		return pipeTo(text, "xclip", "-selection", "clipboard")
	}
	if _, err := execLookPath("xsel"); err == nil {
		return pipeTo(text, "xsel", "--clipboard", "--input")
	}

	return fmt.Errorf("no clipboard helper found (install wl-copy, xclip or xsel)")
}

// pipeTo writes text to the stdin of a clipboard command
func pipeTo(text string, name string, args ...string) error {
	cmd := execCommand(name, args...)
	pipe, err := cmd.StdinPipe()
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return err
	}

	if _, err := pipe.Write([]byte(text)); err != nil {
		return err
	}

	if err := pipe.Close(); err != nil {
		return err
	}

	return cmd.Wait()
}
