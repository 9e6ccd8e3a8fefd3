// cmd/enumchain/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"enumchain/internal/pipeline"
	"enumchain/internal/platform/config"
	"enumchain/internal/platform/logx"
	"enumchain/internal/platform/ui"
	"enumchain/internal/runner"
	"enumchain/internal/targets"
	"enumchain/internal/toolchain"
)

var (
	// Rellenables con -ldflags en build
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if err == pflag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if cfg.PrintVersion {
		fmt.Printf("enumchain %s (commit %s, built %s)\n", version, commit, date)
		os.Exit(0)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Try: enumchain -h for help")
		os.Exit(2)
	}

	logger := logx.New()
	if cfg.Verbose {
		logger.SetLevel(logx.LevelDebug)
	}

	presenter := ui.NewPresenter(false)
	presenter.Banner(version)

	logger.Debug("enumchain starting",
		"version", version,
		"commit", commit,
		"output_dir", cfg.OutputDir,
		"proxy", cfg.Proxy,
		"dry_run", cfg.DryRun,
	)

	ctx, cancel := rootContextWithSignals()
	defer cancel()

	manifest, err := loadManifest(cfg)
	if err != nil {
		logger.Err(err, "phase", "manifest")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if !checkToolchain(ctx, logger, presenter, manifest) {
		os.Exit(1)
	}

	targetList, err := targets.Load(cfg, logger)
	if err != nil {
		logger.Err(err, "phase", "targets")
		presenter.Error("%v", err)
		os.Exit(2)
	}

	exec := runner.New(logger, presenter, cfg.DryRun, cfg.ProxyURL())
	driver := pipeline.NewDriver(cfg, exec, logger, presenter)

	reports, err := driver.Run(ctx, targetList)
	if err != nil {
		logger.Err(err, "phase", "run")
		presenter.Error("Fatal: %v", err)
		os.Exit(1)
	}

	completed := 0
	for _, rep := range reports {
		if rep.Final == pipeline.StateDone {
			completed++
		}
	}
	logger.Info("enumchain finished",
		"targets", len(reports),
		"completed", completed,
		"skipped", len(reports)-completed,
	)
}

func loadManifest(cfg config.Config) (toolchain.Manifest, error) {
	if cfg.ToolsManifest != "" {
		return toolchain.LoadManifest(cfg.ToolsManifest)
	}
	return toolchain.DefaultManifest(), nil
}

// checkToolchain verifies every required binary is on PATH before any stage
// runs. All tools are checked so the user sees the full list of gaps at once.
func checkToolchain(ctx context.Context, logger logx.Logger, presenter *ui.Presenter, manifest toolchain.Manifest) bool {
	presenter.ToolCheckHeader()

	statuses := toolchain.NewChecker(logger).Check(ctx, manifest)
	for _, st := range statuses {
		if st.Installed {
			presenter.ToolInstalled(st.Tool.Name, st.Version)
		} else {
			presenter.ToolMissing(st.Tool.Name)
		}
	}

	missing := toolchain.Missing(statuses)
	if len(missing) > 0 {
		presenter.FatalMissingTools(missing)
		return false
	}

	presenter.ToolCheckPassed()
	return true
}

// rootContextWithSignals creates the root context with signal cancellation.
// The returned cancel function cleans up the signal handler as well.
func rootContextWithSignals() (context.Context, context.CancelFunc) {
	base, baseCancel := context.WithCancel(context.Background())

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-ch:
			baseCancel()
		case <-base.Done():
		}
	}()

	cleanup := func() {
		signal.Stop(ch)
		close(ch)
		baseCancel()
	}

	return base, cleanup
}
