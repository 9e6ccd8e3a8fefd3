// Package pipeline drives the five-stage reconnaissance chain per target:
// enumerate, resolve, scan, probe, crawl — each stage's stdout feeding the
// next stage's stdin, every intermediate persisted to the output directory.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"enumchain/internal/platform/config"
	"enumchain/internal/platform/errors"
	"enumchain/internal/platform/logx"
	"enumchain/internal/platform/ui"
	"enumchain/internal/runner"
	"enumchain/internal/stages"
)

// Per-target output file suffixes. The full name is {target}_{suffix}.
const (
	suffixSubfinder = "subfinder.txt"
	suffixDnsx      = "dnsx.txt"
	suffixNaabu     = "naabu.txt"
	suffixHttpx     = "httpx_details.txt"
	suffixURLs      = "urls_for_burp.txt"
	suffixKatana    = "katana_crawled_paths.txt"
)

// Executor abstracts the process runner so the driver can be tested with a
// recording fake.
type Executor interface {
	Run(ctx context.Context, spec runner.Spec) (runner.Result, error)
	DryRun() bool
}

// Report summarizes one target's run.
type Report struct {
	Target string
	Final  State

	// Invocations counts stage subprocesses started for this target,
	// excluding the proxy seeder.
	Invocations int
}

// Driver executes the chain for each target, strictly sequentially.
type Driver struct {
	cfg       config.Config
	exec      Executor
	logger    logx.Logger
	presenter *ui.Presenter
}

func NewDriver(cfg config.Config, exec Executor, logger logx.Logger, presenter *ui.Presenter) *Driver {
	return &Driver{
		cfg:       cfg,
		exec:      exec,
		logger:    logger.With("component", "pipeline"),
		presenter: presenter,
	}
}

// Run processes every target in order. The output directory is created once,
// idempotently, before the loop — never in dry-run mode. The returned error
// is fatal (launch failure); per-target emptiness only warns and continues.
func (d *Driver) Run(ctx context.Context, targets []string) ([]Report, error) {
	if !d.exec.DryRun() {
		if err := os.MkdirAll(d.cfg.OutputDir, 0o755); err != nil {
			return nil, errors.Wrapf(err, "creating output directory %s", d.cfg.OutputDir)
		}
	}
	d.presenter.Info("Output directory: %s", d.cfg.OutputDir)

	if d.cfg.ProxyEnabled() {
		d.presenter.Info("Proxy enabled: %s", d.cfg.ProxyURL())
	} else {
		d.presenter.Info("No proxy specified. Direct connection mode.")
	}

	reports := make([]Report, 0, len(targets))
	for _, target := range targets {
		rep, err := d.runTarget(ctx, target)
		if err != nil {
			return reports, err
		}
		reports = append(reports, rep)
	}
	return reports, nil
}

// runTarget walks one target through the chain. The current-input buffer is
// fresh per call; nothing carries over between targets.
func (d *Driver) runTarget(ctx context.Context, target string) (Report, error) {
	rep := Report{Target: target, Final: StateEnumerate}
	log := d.logger.With("target", target)
	dry := d.exec.DryRun()

	d.presenter.TargetHeader(target)

	// Stage 1: enumerate. Output file written by hand after the success
	// check; the other stdin stages write through the runner.
	d.presenter.Step(stages.Enumerate, stages.TotalSteps, "SUBFINDER", stages.SubfinderDescription)
	res, err := d.exec.Run(ctx, runner.Spec{
		Path: stages.SubfinderTool,
		Args: stages.SubfinderArgs(target),
	})
	if err != nil {
		return rep, err
	}
	rep.Invocations++
	input := d.stageOutput(stages.SubfinderTool, res)

	if input != "" && !dry {
		path := d.outPath(target, suffixSubfinder)
		if werr := os.WriteFile(path, []byte(input), 0o644); werr != nil {
			return rep, errors.Wrapf(werr, "writing %s", path)
		}
		d.presenter.Saved(path)
	}
	if input == "" && !dry {
		d.skip(log, &rep, "Subfinder returned no results")
		return rep, nil
	}

	// Stage 2: resolve.
	rep.Final = StateResolve
	d.presenter.Step(stages.Resolve, stages.TotalSteps, "DNSX", stages.DnsxDescription)
	res, err = d.exec.Run(ctx, runner.Spec{
		Path:       stages.DnsxTool,
		Args:       stages.DnsxArgs(),
		Stdin:      input,
		OutputFile: d.outPath(target, suffixDnsx),
	})
	if err != nil {
		return rep, err
	}
	rep.Invocations++
	input = d.stageOutput(stages.DnsxTool, res)
	if input == "" && !dry {
		d.skip(log, &rep, "DNSx resolved no hosts")
		return rep, nil
	}

	// Stage 3: scan.
	rep.Final = StateScan
	d.presenter.Step(stages.Scan, stages.TotalSteps, "NAABU", stages.NaabuDescription)
	res, err = d.exec.Run(ctx, runner.Spec{
		Path:       stages.NaabuTool,
		Args:       stages.NaabuArgs(),
		Stdin:      input,
		OutputFile: d.outPath(target, suffixNaabu),
	})
	if err != nil {
		return rep, err
	}
	rep.Invocations++
	input = d.stageOutput(stages.NaabuTool, res)
	if input == "" && !dry {
		d.skip(log, &rep, "Naabu found no open web ports")
		return rep, nil
	}

	// Stage 4: probe. httpx writes the rich detail file itself via -o; the
	// driver re-reads it to derive the clean URL list fed to the crawler.
	rep.Final = StateProbe
	detailsFile := d.outPath(target, suffixHttpx)
	urlsFile := d.outPath(target, suffixURLs)

	d.presenter.Step(stages.Probe, stages.TotalSteps, "HTTPX", stages.HttpxDescription)
	res, err = d.exec.Run(ctx, runner.Spec{
		Path:  stages.HttpxTool,
		Args:  stages.HttpxArgs(detailsFile, d.cfg.ProxyURL()),
		Stdin: input,
		Env:   d.proxyEnv(),
	})
	if err != nil {
		return rep, err
	}
	rep.Invocations++
	if res.ExitCode != 0 {
		d.presenter.ToolFailed(stages.HttpxTool, res.ExitCode, strings.TrimSpace(res.Stderr))
	}

	if !dry {
		input = ""
		details, rerr := os.ReadFile(detailsFile)
		if rerr != nil {
			d.presenter.Warn("httpx did not produce an output file. Likely no live services found.")
		} else {
			urls := stages.ExtractURLs(string(details))
			joined := strings.Join(urls, "\n")
			if werr := os.WriteFile(urlsFile, []byte(joined), 0o644); werr != nil {
				return rep, errors.Wrapf(werr, "writing %s", urlsFile)
			}
			input = joined
			d.presenter.Success("Rich details: %s", detailsFile)
			d.presenter.Success("Clean URLs: %s", urlsFile)
		}
		if input == "" {
			d.skip(log, &rep, "httpx found no live HTTP(S) services")
			return rep, nil
		}
	}

	// Stage 5: crawl. Terminal stage; its output chains to nothing, so empty
	// crawl results never skip anything.
	rep.Final = StateCrawl
	d.presenter.Step(stages.Crawl, stages.TotalSteps, "KATANA", stages.KatanaDescription)
	res, err = d.exec.Run(ctx, runner.Spec{
		Path:       stages.KatanaTool,
		Args:       stages.KatanaArgs(d.cfg.ProxyURL()),
		Stdin:      input,
		OutputFile: d.outPath(target, suffixKatana),
		Env:        d.proxyEnv(),
	})
	if err != nil {
		return rep, err
	}
	rep.Invocations++
	if res.ExitCode != 0 {
		d.presenter.ToolFailed(stages.KatanaTool, res.ExitCode, strings.TrimSpace(res.Stderr))
	} else if !dry {
		d.presenter.Success("Crawled paths saved.")
	}

	rep.Final = StateDone

	d.seedProxy(ctx, urlsFile)
	d.summarize(target, urlsFile)

	log.Info("target completed", "invocations", rep.Invocations)
	return rep, nil
}

// stageOutput applies the conflation rule: a non-zero tool exit is reported
// with its stderr and then treated exactly like a successful run that found
// nothing.
func (d *Driver) stageOutput(tool string, res runner.Result) string {
	if res.ExitCode != 0 {
		d.presenter.ToolFailed(tool, res.ExitCode, strings.TrimSpace(res.Stderr))
		return ""
	}
	return res.Stdout
}

// seedProxy re-submits the clean URL list through httpx so the proxy records
// every discovered URL. Best-effort: a failing seed is reported and ignored.
func (d *Driver) seedProxy(ctx context.Context, urlsFile string) {
	if !d.cfg.ProxyEnabled() || d.exec.DryRun() {
		return
	}

	d.presenter.Step(stages.TotalSteps, stages.TotalSteps, "PROXY SEED", stages.SeedDescription)
	d.presenter.Info("Sending discovered URLs to %s...", d.cfg.Proxy)

	res, err := d.exec.Run(ctx, runner.Spec{
		Path: stages.HttpxTool,
		Args: stages.HttpxSeedArgs(urlsFile, d.cfg.ProxyURL()),
		Env:  d.proxyEnv(),
	})
	switch {
	case err != nil:
		d.presenter.Error("Proxy seeding failed: %v", err)
		d.logger.Err(err, "phase", "proxy-seed")
	case res.ExitCode != 0:
		d.presenter.ToolFailed(stages.HttpxTool, res.ExitCode, strings.TrimSpace(res.Stderr))
	default:
		d.presenter.Success("Proxy site map populated successfully.")
	}
}

func (d *Driver) summarize(target, urlsFile string) {
	outDir, err := filepath.Abs(d.cfg.OutputDir)
	if err != nil {
		outDir = d.cfg.OutputDir
	}
	d.presenter.Summary(target, outDir, d.cfg.Proxy, filepath.Base(urlsFile))
}

func (d *Driver) skip(log logx.Logger, rep *Report, reason string) {
	d.presenter.Warn("%s. Stopping chain for this target.", reason)
	log.Warn("chain stopped", "stage", rep.Final.String(), "reason", reason)
	rep.Final = StateSkipped
}

// proxyEnv returns the HTTP-stage environment: inherited plus proxy
// variables when a proxy is configured, nil (inherit as-is) otherwise.
func (d *Driver) proxyEnv() []string {
	if !d.cfg.ProxyEnabled() {
		return nil
	}
	return stages.ProxyEnv(d.cfg.ProxyURL())
}

func (d *Driver) outPath(target, suffix string) string {
	return filepath.Join(d.cfg.OutputDir, fmt.Sprintf("%s_%s", target, suffix))
}
