// Copyright 2026 The EmojiSuggest Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the emoji suggestion server and CLI [DBG] application.

Note: This is a BETA release. APIs and functionality may rapidly change.

EmojiSuggest provides live emoji suggestions for composing text. It watches
text updates for a ":" trigger, debounces bursts of keystrokes and publishes
a bounded candidate list matched against a capability-filtered emoji catalog.
It can operate as a MessagePack IPC server for integration with text editors,
or as a CLI application for testing and debugging.

The catalog is built once per session from a JSON emoji asset (embedded by
default), resolving every definition to the preferred skin tone and keeping
only sequences the platform can render, decided by a version-gated metadata
table or a direct typeface glyph probe.

# Usage

Start the server with default settings:

	emojisuggest

Use a custom emoji asset and enable debug mode:

	emojisuggest -data /path/to/emoji.json -d

Run in CLI mode for interactive testing:

	emojisuggest -c -tone medium

# Configuration

Runtime configuration is managed through a TOML file that supports server
parameters, data settings, and CLI defaults:

	[server]
	max_limit = 24
	max_prefix = 60
	enable_filter = true

	[data]
	asset_path = ""
	typeface = "/usr/share/fonts/truetype/noto/NotoColorEmoji.ttf"
	metadata_version = 11.0

The config file is automatically created with defaults if it doesn't exist.
The four suggestion-protocol constants (trigger ':', 200ms debounce, minimum
trigger length 3, at most 5 suggestions) are fixed by design and not part of
the config surface.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Composing-text
updates are acknowledged immediately and answered asynchronously with a
suggestions event once the debounce window settles:

	{"id": "req1", "op": "compose", "x": "hello :smi"}
	{"ev": "suggestions", "s": [{"v": "😊", "n": "smiling face with smiling eyes"}], "c": 1}

Shortcode prefix completion over catalog names is synchronous:

	{"id": "req2", "op": "complete", "p": "gri", "l": 8}

# CLI Mode

CLI mode reads composing text from stdin line by line, runs it through the
same debounced pipeline and prints the published candidates. This mode is
primarily intended for development and testing new features before deploying
to server mode.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/snaik20/florisboard/internal/cli"
	"github.com/snaik20/florisboard/internal/utils"
	"github.com/snaik20/florisboard/pkg/config"
	"github.com/snaik20/florisboard/pkg/emoji"
	"github.com/snaik20/florisboard/pkg/pipeline"
	"github.com/snaik20/florisboard/pkg/server"
)

const (
	Version = "0.3.0-beta"
	AppName = "emojisuggest"
	gh      = "https://github.com/snaik20/florisboard"
)

// prefs implements pipeline.Settings for the standalone binary. The
// enabled flag is re-read at every processing step, so toggling it at
// runtime takes effect without a restart.
type prefs struct {
	enabled atomic.Bool
	tone    emoji.SkinTone
}

func (p *prefs) SuggestionsEnabled() bool          { return p.enabled.Load() }
func (p *prefs) PreferredSkinTone() emoji.SkinTone { return p.tone }

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler(cancel context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		cancel()
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigHandler(cancel)

	defaultConfig := config.DefaultConfig()

	// custom Flags
	showVersion := flag.Bool("version", false, "Show current version")
	assetPath := flag.String("data", "", "Path to an emoji JSON asset (default: embedded data)")
	typeface := flag.String("font", defaultConfig.Data.Typeface, "TTF typeface probed for glyph coverage")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	tone := flag.String("tone", defaultConfig.CLI.DefaultTone, "Preferred skin tone (default, light, medium-light, medium, medium-dark, dark)")
	disabled := flag.Bool("no-suggest", false, "Start with suggestions administratively disabled")

	flag.Parse()

	if *showVersion {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    false,
			ReportTimestamp: false,
			Prefix:          "",
		})

		styles := log.DefaultStyles()

		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		styles.Values["version"] = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})

		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

		logger.SetStyles(styles)

		logger.Print("")
		logger.Print("[ EmojiSuggest ] Serves live emoji suggestions!")
		logger.Print("", "version", Version)
		logger.Print("")
		logger.Print("use -h or --help to see available options")
		logger.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	// Initialize path resolver for robust path handling
	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	configPath, err := pathResolver.GetConfigPath("emojisuggest-config.toml")
	if err != nil {
		log.Fatalf("Failed to determine config path: (%v)", err)
	}
	log.Debugf("Using config file: (%s)", configPath)

	appConfig, err := config.InitConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Flags override config for the data sources.
	if *assetPath != "" {
		appConfig.Data.AssetPath = *assetPath
	}
	if *typeface != "" {
		appConfig.Data.Typeface = *typeface
	}

	load := buildLoader(pathResolver, appConfig.Data.AssetPath)

	meta := emoji.NewCompatTable(load)
	var glyph emoji.GlyphOracle
	if appConfig.Data.Typeface != "" {
		probe, err := emoji.NewTypefaceProbe(appConfig.Data.Typeface)
		if err != nil {
			log.Warnf("Typeface probe unavailable: %v", err)
		} else {
			glyph = probe
		}
	}
	metadataVersion := appConfig.Data.MetadataVersion
	isSupported := func(value string) bool {
		return emoji.Supported(value, metadataVersion, meta, glyph)
	}

	settings := &prefs{tone: emoji.ParseSkinTone(*tone)}
	settings.enabled.Store(!*disabled)

	catalog := emoji.NewCatalog(load, settings.PreferredSkinTone, isSupported)

	// CLI would be mainly used for testing and dbg purposes.
	// Any new features or changes should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"tone", *tone,
			"maxPrefix", appConfig.Server.MaxPrefix,
			"enabled", settings.SuggestionsEnabled())

		snapshots := make(chan pipeline.Snapshot, 16)
		pipe := pipeline.New(catalog, settings, snapshots)
		go pipe.Run(ctx)

		inputHandler := cli.NewInputHandler(pipe, snapshots, appConfig.Server.MaxPrefix)
		if err := inputHandler.Start(ctx); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(catalog, settings, appConfig)

	showStartupInfo(appConfig.Data.AssetPath)

	if err := srv.Start(ctx); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// buildLoader resolves the asset path and picks the file or embedded loader.
func buildLoader(pathResolver *utils.PathResolver, assetPath string) emoji.Loader {
	if assetPath == "" {
		log.Debug("Using embedded emoji asset")
		return emoji.DefaultLoader()
	}
	resolved, err := pathResolver.ResolveAssetPath(assetPath)
	if err != nil {
		log.Warnf("Emoji asset not found at %s, falling back to embedded data", assetPath)
		return emoji.DefaultLoader()
	}
	log.Debugf("Using emoji asset at: %s", resolved)
	return emoji.FileLoader(resolved)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(assetPath string) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	if assetPath == "" {
		assetPath = "embedded"
	}

	println("==============")
	println(" EmojiSuggest ")
	println("==============")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("emoji asset: ( %s )", assetPath)
	log.Info("status: ready")
	println("==============")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
