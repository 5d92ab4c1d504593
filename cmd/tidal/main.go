package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bashhack/tidal/internal/config"
)

// Version information (set by ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	app := NewDefaultApp()
	run(app, os.Args)
}

// run is the testable entrypoint for the application
func run(app *App, args []string) {
	fs := flag.NewFlagSet(args[0], flag.ExitOnError)
	fs.Usage = printUsage

	secretFlag := fs.String("secret", "", "Secret: hex for the default mode, base32 with -standard (falls back to TIDAL_SECRET, then a hidden prompt)")
	standard := fs.Bool("standard", false, "Derive RFC 6238 codes instead of the legacy text-encoded scheme")
	qrPath := fs.String("qr", "", "Read the secret from an otpauth QR image (implies -standard)")
	verifyCode := fs.String("verify", "", "Check a 6-digit code against the current windows")
	watchMode := fs.Bool("watch", false, "Keep refreshing codes until interrupted")
	clip := fs.Bool("clip", false, "Also copy one code to the clipboard")
	configPath := fs.String("config", "", "Path to a YAML config file")
	showVersion := fs.Bool("version", false, "Show version information")
	showHelp := fs.Bool("help", false, "Show usage")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintf(app.Stderr, "❌ error parsing arguments: %v\n", err)
		app.Exit(1)
		return
	}

	if *showVersion {
		app.ShowVersion()
		return
	}

	if *showHelp {
		printUsage()
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(app.Stderr, "❌ %v\n", err)
		app.Exit(1)
		return
	}
	app.Config = cfg

	in, err := app.ResolveSecret(*secretFlag, *qrPath, *standard)
	if err != nil {
		fmt.Fprintf(app.Stderr, "❌ %v\n", err)
		app.Exit(1)
		return
	}

	if *verifyCode != "" {
		matched, err := app.Verify(in, *verifyCode)
		if err != nil {
			fmt.Fprintf(app.Stderr, "❌ %v\n", err)
			app.Exit(1)
			return
		}
		if !matched {
			// Distinguishable from success for scripting, like grep.
			app.Exit(1)
		}
		return
	}

	if *watchMode {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := app.Watch(ctx, in); err != nil {
			fmt.Fprintf(app.Stderr, "❌ %v\n", err)
			app.Exit(1)
		}
		return
	}

	if err := app.Generate(in, *clip); err != nil {
		fmt.Fprintf(app.Stderr, "❌ %v\n", err)
		app.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: tidal [options]")
	fmt.Println("\nOptions:")
	fmt.Println("  --secret, -secret string     Secret (hex; base32 with -standard). Falls back to TIDAL_SECRET, then a hidden prompt")
	fmt.Println("  --standard, -standard        Derive RFC 6238 codes instead of the legacy scheme")
	fmt.Println("  --qr, -qr string             Read the secret from an otpauth QR image (implies -standard)")
	fmt.Println("  --verify, -verify string     Check a 6-digit code against the current windows")
	fmt.Println("  --watch, -watch              Keep refreshing codes until interrupted")
	fmt.Println("  --clip, -clip                Also copy one code to the clipboard")
	fmt.Println("  --config, -config string     Path to a YAML config file")
	fmt.Println("  --version, -version          Show version information")
	fmt.Println("  --help, -help                Show usage")
	fmt.Println("\nExamples:")
	fmt.Println("  tidal -secret deadbeef                 Print codes for all seven windows")
	fmt.Println("  tidal -secret deadbeef -watch          Refresh the codes every second")
	fmt.Println("  tidal -secret deadbeef -verify 123456  Check which window a code belongs to")
	fmt.Println("  tidal -qr enroll.png -watch            Standard codes from a provisioning QR")
}
