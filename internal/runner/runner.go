// Package runner implements the generic subprocess primitive every pipeline
// stage runs through: argv execution, stdin feed, environment replacement,
// stdout capture to file, and dry-run simulation.
package runner

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	"enumchain/internal/platform/errors"
	"enumchain/internal/platform/logx"
	"enumchain/internal/platform/ui"
)

// Spec describes one subprocess invocation. Arguments are passed as an argv
// vector, never through a shell.
type Spec struct {
	Path string
	Args []string

	// Stdin, when non-empty, is fed to the subprocess's standard input.
	Stdin string

	// OutputFile, when set, receives the captured stdout (overwriting).
	OutputFile string

	// Env, when non-nil, fully replaces the subprocess environment.
	Env []string
}

// Result is the outcome of one invocation. A non-zero ExitCode is a normal,
// reportable outcome, not an error.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes Specs sequentially, blocking until each subprocess exits.
type Runner struct {
	logger    logx.Logger
	presenter *ui.Presenter

	dryRun   bool
	proxyURL string // echoed in dry-run notes only
}

// New creates a Runner. With dryRun set, Run prints planned invocations and
// returns synthetic successes without starting any subprocess.
func New(logger logx.Logger, presenter *ui.Presenter, dryRun bool, proxyURL string) *Runner {
	return &Runner{
		logger:    logger.With("component", "runner"),
		presenter: presenter,
		dryRun:    dryRun,
		proxyURL:  proxyURL,
	}
}

// DryRun reports whether the runner is in simulation mode.
func (r *Runner) DryRun() bool {
	return r.dryRun
}

// Run executes one subprocess to completion, capturing stdout and stderr in
// full before returning. A failure to even launch the subprocess is returned
// as an error wrapping ErrLaunchFailed; the caller treats it as fatal, since
// the binary was verified present at startup.
func (r *Runner) Run(ctx context.Context, spec Spec) (Result, error) {
	cmdline := Cmdline(spec)
	r.presenter.Exec(cmdline)

	if r.dryRun {
		r.presenter.DryRun(spec.OutputFile, r.proxyURL)
		r.logger.Debug("dry run, command skipped", "cmd", cmdline)
		return Result{ExitCode: 0}, nil
	}

	cmd := exec.CommandContext(ctx, spec.Path, spec.Args...)
	if spec.Stdin != "" {
		cmd.Stdin = strings.NewReader(spec.Stdin)
	}
	if spec.Env != nil {
		cmd.Env = spec.Env
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Debug("executing command", "cmd", cmdline)

	err := cmd.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// The binary vanished or became unexecutable after the startup
			// check. The environment no longer matches what was verified.
			return res, errors.Wrapf(errors.ErrLaunchFailed, "%s: %v", spec.Path, err)
		}
		res.ExitCode = exitErr.ExitCode()
		r.logger.Warn("subprocess exited with error",
			"cmd", spec.Path,
			"exit_code", res.ExitCode,
		)
		return res, nil
	}

	if spec.OutputFile != "" {
		if werr := os.WriteFile(spec.OutputFile, []byte(res.Stdout), 0o644); werr != nil {
			return res, errors.Wrapf(werr, "writing %s", spec.OutputFile)
		}
		r.presenter.Saved(spec.OutputFile)
	}

	return res, nil
}

// Cmdline renders a Spec as the command line shown to the user.
func Cmdline(spec Spec) string {
	return strings.Join(append([]string{spec.Path}, spec.Args...), " ")
}
