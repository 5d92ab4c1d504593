package clipboard

import (
	"os/exec"
	"strings"
	"testing"
)

func TestCopy(t *testing.T) {
	originalExecCommand := execCommand
	originalExecLookPath := execLookPath
	originalRuntimeGOOS := runtimeGOOS
	originalGetenv := getenv
	defer func() {
		execCommand = originalExecCommand
		execLookPath = originalExecLookPath
		runtimeGOOS = originalRuntimeGOOS
		getenv = originalGetenv
	}()

	tests := map[string]struct {
		text     string
		goos     string
		env      map[string]string
		lookPath map[string]bool
		wantCmd  string
		wantErr  bool
		errMsg   string
	}{
		"darwin uses pbcopy": {
			text:    "123456",
			goos:    "darwin",
			wantCmd: "pbcopy",
		},
		"darwin empty text": {
			text:    "",
			goos:    "darwin",
			wantCmd: "pbcopy",
		},
		"linux wayland prefers wl-copy": {
			text:     "123456",
			goos:     "linux",
			env:      map[string]string{"WAYLAND_DISPLAY": "wayland-0"},
			lookPath: map[string]bool{"wl-copy": true, "xclip": true},
			wantCmd:  "wl-copy",
		},
		"linux x11 uses xclip": {
			text:     "123456",
			goos:     "linux",
			lookPath: map[string]bool{"xclip": true},
			wantCmd:  "xclip",
		},
		"linux falls back to xsel": {
			text:     "123456",
			goos:     "linux",
			lookPath: map[string]bool{"xsel": true},
			wantCmd:  "xsel",
		},
		"linux without helper": {
			text:    "123456",
			goos:    "linux",
			wantErr: true,
			errMsg:  "no clipboard helper found",
		},
		"unsupported platform": {
			text:    "123456",
			goos:    "windows",
			wantErr: true,
			errMsg:  "unsupported platform: windows",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			runtimeGOOS = tt.goos
			getenv = func(key string) string { return tt.env[key] }
			execLookPath = func(file string) (string, error) {
				if tt.lookPath[file] {
					return "/usr/bin/" + file, nil
				}
				return "", exec.ErrNotFound
			}

			var gotCmd string
			execCommand = func(cmd string, args ...string) *exec.Cmd {
				gotCmd = cmd
				// cat drains stdin and exits cleanly, standing in for the
				// real clipboard helper.
				return exec.Command("cat")
			}

			err := Copy(tt.text)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("Copy() error = nil, want error containing %q", tt.errMsg)
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("Copy() error = %q, want error containing %q", err.Error(), tt.errMsg)
				}
				return
			}

			if err != nil {
				t.Fatalf("Copy() unexpected error: %v", err)
			}
			if gotCmd != tt.wantCmd {
				t.Errorf("Copy() invoked %q, want %q", gotCmd, tt.wantCmd)
			}
		})
	}
}

func TestCopyCommandFailure(t *testing.T) {
	originalExecCommand := execCommand
	originalRuntimeGOOS := runtimeGOOS
	defer func() {
		execCommand = originalExecCommand
		runtimeGOOS = originalRuntimeGOOS
	}()

	runtimeGOOS = "darwin"
	execCommand = func(cmd string, args ...string) *exec.Cmd {
		return exec.Command("/nonexistent/pbcopy")
	}

	if err := Copy("123456"); err == nil {
		t.Error("Copy() error = nil, want start failure")
	}
}
