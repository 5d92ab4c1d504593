package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/bashhack/tidal/internal/clipboard"
	"github.com/bashhack/tidal/internal/clock"
	"github.com/bashhack/tidal/internal/config"
	"github.com/bashhack/tidal/internal/otp"
	"github.com/bashhack/tidal/internal/qrcode"
	"github.com/bashhack/tidal/internal/secure"
	"github.com/bashhack/tidal/internal/watch"
)

// ExitFunc is a function type for exiting the program
type ExitFunc func(code int)

// App represents the main application
type App struct {
	Generator  otp.Generator
	Config     *config.Config
	Clock      clock.Clock
	ReadSecret func() ([]byte, error)
	ScanQR     func(path string) (qrcode.KeyInfo, error)
	CopyToClip func(text string) error
	Exit       ExitFunc
	Stdout     io.Writer
	Stderr     io.Writer

	VersionInfo VersionInfo
}

// VersionInfo contains version information
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewDefaultApp creates a new App with default dependencies
func NewDefaultApp() *App {
	return &App{
		Generator:  otp.DefaultGenerator{},
		Config:     config.Default(),
		Clock:      clock.NewSystem(),
		ReadSecret: promptSecret,
		ScanQR:     qrcode.ScanFile,
		CopyToClip: clipboard.Copy,
		Exit:       os.Exit,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		VersionInfo: VersionInfo{
			Version: version,
			Commit:  commit,
			Date:    date,
		},
	}
}

// promptSecret reads the secret from the terminal without echoing it.
func promptSecret() ([]byte, error) {
	fmt.Fprint(os.Stderr, "Enter secret (input is hidden): ")
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("reading secret: %w", err)
	}
	return b, nil
}

// secretInput is the raw secret the user supplied plus how it is to be
// interpreted. Standard mode carries a base32 secret for the RFC 6238 path;
// legacy mode carries a parsed hex secret.
type secretInput struct {
	standard     bool
	base32Secret string
	legacySecret otp.Secret
}

// ResolveSecret collects the secret from, in order of preference: a QR image,
// the -secret flag, the TIDAL_SECRET environment variable, or a hidden
// terminal prompt. Prompt buffers are zeroed once parsed.
func (a *App) ResolveSecret(secretFlag, qrPath string, standard bool) (secretInput, error) {
	if qrPath != "" {
		info, err := a.ScanQR(qrPath)
		if err != nil {
			return secretInput{}, err
		}
		// otpauth provisioning is always base32, so a QR secret forces
		// standard mode regardless of the flag.
		return secretInput{standard: true, base32Secret: info.Secret}, nil
	}

	raw := secretFlag
	if raw == "" {
		raw = os.Getenv("TIDAL_SECRET")
	}
	if raw == "" {
		buf, err := a.ReadSecret()
		if err != nil {
			return secretInput{}, err
		}
		defer secure.ZeroBytes(buf)
		raw = string(buf)
	}

	if standard {
		return secretInput{standard: true, base32Secret: strings.TrimSpace(raw)}, nil
	}

	secret, err := otp.SecretFromHex(raw)
	if err != nil {
		return secretInput{}, err
	}
	return secretInput{legacySecret: secret}, nil
}

// generateAt derives the candidate set for the resolved secret at an instant.
func (a *App) generateAt(in secretInput, at time.Time) (otp.CandidateSet, error) {
	if in.standard {
		return a.Generator.StandardGenerateAll(in.base32Secret, at)
	}
	return a.Generator.GenerateAll(in.legacySecret, at)
}

// ShowVersion displays version information
func (a *App) ShowVersion() {
	fmt.Fprintf(a.Stdout, "tidal version %s (%s) built on %s\n",
		a.VersionInfo.Version, a.VersionInfo.Commit, a.VersionInfo.Date)
}

// Generate prints one pass of codes for every visible granularity.
func (a *App) Generate(in secretInput, clip bool) error {
	now := a.Clock.Now()

	set, err := a.generateAt(in, now)
	if err != nil {
		return fmt.Errorf("failed to generate codes: %w", err)
	}

	a.renderSet(set, now)

	if clip {
		return a.copyFromSet(set)
	}
	return nil
}

// Watch keeps regenerating codes on the configured cadence until the context
// is cancelled.
func (a *App) Watch(ctx context.Context, in secretInput) error {
	w := watch.New(a.Clock, a.Config.Watch.Interval, func(at time.Time) (otp.CandidateSet, error) {
		return a.generateAt(in, at)
	})

	fmt.Fprintf(a.Stderr, "🌊 refreshing every %s, press Ctrl-C to stop\n", a.Config.Watch.Interval)

	return w.Run(ctx, func(set otp.CandidateSet, at time.Time) error {
		a.renderSet(set, at)
		return nil
	})
}

// Verify checks a user-entered code against the current windows. It reports
// which granularity matched; a miss is a normal outcome and simply returns
// false.
func (a *App) Verify(in secretInput, userCode string) (bool, error) {
	set, err := a.generateAt(in, a.Clock.Now())
	if err != nil {
		return false, fmt.Errorf("failed to generate codes: %w", err)
	}

	g, ok := set.Match(userCode)
	if !ok {
		fmt.Fprintf(a.Stdout, "❌ no window matches %q right now\n", strings.TrimSpace(userCode))
		return false, nil
	}

	fmt.Fprintf(a.Stdout, "✅ matches the %s window\n", g)
	return true, nil
}

// renderSet prints the visible candidates with aligned labels.
func (a *App) renderSet(set otp.CandidateSet, at time.Time) {
	fmt.Fprintf(a.Stdout, "codes at %s\n", at.Format("15:04:05"))
	for _, c := range set.Filter(a.Config.HiddenGranularities()) {
		fmt.Fprintf(a.Stdout, "  %-12s %s\n", c.Granularity, c.Code.Format())
	}
}

// copyFromSet copies the configured granularity's code to the clipboard.
func (a *App) copyFromSet(set otp.CandidateSet) error {
	want := a.Config.ClipGranularity()
	for _, c := range set {
		if c.Granularity == want {
			if err := a.CopyToClip(string(c.Code)); err != nil {
				return fmt.Errorf("failed to copy to clipboard: %w", err)
			}
			fmt.Fprintf(a.Stderr, "✅ %s code copied to clipboard\n", want)
			return nil
		}
	}
	return fmt.Errorf("no %s code in the generated set", want)
}
