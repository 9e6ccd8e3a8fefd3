// Package ui renders the enumchain console surface with pterm.
// It carries all user-facing output; diagnostic lines go through logx.
package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Presenter writes color-coded progress, warnings and summaries to the terminal.
type Presenter struct {
	quiet bool
}

// NewPresenter creates a presenter. With quiet set, everything except
// warnings and errors is suppressed.
func NewPresenter(quiet bool) *Presenter {
	return &Presenter{quiet: quiet}
}

// Banner prints the application header.
func (p *Presenter) Banner(version string) {
	if p.quiet {
		return
	}
	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgCyan)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println("enumchain - Reconnaissance Tool Chain " + version)
	pterm.Println()
}

// ToolCheckHeader opens the system-check section.
func (p *Presenter) ToolCheckHeader() {
	if p.quiet {
		return
	}
	pterm.DefaultSection.Println("System Check: Verifying Installed Tools")
}

// ToolInstalled prints one installed-tool line with its detected version.
func (p *Presenter) ToolInstalled(name, version string) {
	if p.quiet {
		return
	}
	line := StyleSuccess.Sprintf("  %s %-10s installed", StatusSuccess.Symbol(), name)
	if version != "" {
		line += StyleSecondary.Sprintf(" (%s)", version)
	}
	pterm.Println(line)
}

// ToolMissing prints one missing-tool line.
func (p *Presenter) ToolMissing(name string) {
	pterm.Println(StyleError.Sprintf("  %s %-10s MISSING", StatusError.Symbol(), name))
}

// ToolCheckPassed closes the system-check section on success.
func (p *Presenter) ToolCheckPassed() {
	if p.quiet {
		return
	}
	pterm.Println(StyleSuccess.Sprint("  All tools available. Starting reconnaissance."))
	pterm.Println()
}

// FatalMissingTools reports the complete missing list before the process exits.
func (p *Presenter) FatalMissingTools(missing []string) {
	pterm.Println()
	pterm.Println(StyleError.Sprintf("[FATAL] The following tools are missing: %s", joinComma(missing)))
	pterm.Println(StyleWarning.Sprint("Install them before running enumchain."))
}

// TargetHeader frames the start of one target's pipeline run.
func (p *Presenter) TargetHeader(target string) {
	if p.quiet {
		return
	}
	pterm.Println()
	pterm.Println(StyleInfo.Sprint(SeparatorHeavy))
	pterm.Println(StyleInfo.Sprintf(" STARTING RECON FOR TARGET: %s", pterm.White(target)))
	pterm.Println(StyleInfo.Sprint(SeparatorHeavy))
}

// Step prints a numbered stage header with the tool name and description.
func (p *Presenter) Step(num, total int, tool, description string) {
	if p.quiet {
		return
	}
	pterm.Println()
	pterm.DefaultSection.WithLevel(2).Printfln("Step %d/%d: %s", num, total, tool)
	pterm.Println(StyleSecondary.Sprintf("    %s", description))
}

// Exec echoes the fully assembled command line about to run.
func (p *Presenter) Exec(cmdline string) {
	if p.quiet {
		return
	}
	pterm.Println(StyleTrace.Sprintf("    %s Executing: %s", StatusRunning.Symbol(), cmdline))
}

// DryRun reports a skipped invocation with its planned side effects.
func (p *Presenter) DryRun(outputFile, proxyURL string) {
	msg := "    [DRY-RUN] Command skipped."
	if proxyURL != "" {
		msg += fmt.Sprintf(" (Proxy: %s)", proxyURL)
	}
	pterm.Println(StyleWarning.Sprint(msg))
	if outputFile != "" {
		pterm.Println(StyleWarning.Sprintf("    [DRY-RUN] Output path: %s", outputFile))
	}
}

// Saved reports one written output file.
func (p *Presenter) Saved(path string) {
	if p.quiet {
		return
	}
	pterm.Println(StyleSuccess.Sprintf("    %s Output saved to: %s", StatusSuccess.Symbol(), path))
}

// Info prints an informational line.
func (p *Presenter) Info(format string, args ...any) {
	if p.quiet {
		return
	}
	pterm.Println(StyleInfo.Sprintf("[*] "+format, args...))
}

// Success prints a success line.
func (p *Presenter) Success(format string, args ...any) {
	if p.quiet {
		return
	}
	pterm.Println(StyleSuccess.Sprintf("["+StatusSuccess.Symbol()+"] "+format, args...))
}

// Warn prints a warning line. Shown even in quiet mode.
func (p *Presenter) Warn(format string, args ...any) {
	pterm.Println(StyleWarning.Sprintf("[!] "+format, args...))
}

// Error prints an error line. Shown even in quiet mode.
func (p *Presenter) Error(format string, args ...any) {
	pterm.Println(StyleError.Sprintf("["+StatusError.Symbol()+"] "+format, args...))
}

// ToolFailed reports a non-zero tool exit together with its stderr.
func (p *Presenter) ToolFailed(tool string, exitCode int, stderr string) {
	pterm.Println(StyleError.Sprintf("    [ERROR] Tool '%s' failed with exit code %d.", tool, exitCode))
	if stderr != "" {
		pterm.Println(StyleError.Sprintf("    Stderr: %s", stderr))
	}
}

// Summary prints the per-target closing block.
func (p *Presenter) Summary(target, outputDir, proxy, urlsFile string) {
	if p.quiet {
		return
	}
	pterm.Println()
	pterm.Println(StyleSuccess.Sprint(SeparatorHeavy))
	pterm.Println(StyleSuccess.Sprintf(" RECONNAISSANCE COMPLETE: %s", pterm.White(target)))
	pterm.Println(StyleSuccess.Sprint(SeparatorHeavy))
	pterm.Println(StyleTrace.Sprintf("    Results Directory: %s", outputDir))
	if proxy != "" {
		pterm.Println(StyleTrace.Sprintf("    Proxy Status:      Traffic sent to %s", proxy))
		pterm.Println(StyleTrace.Sprint("    Next Step:         Check the proxy's site map / traffic log."))
	} else {
		pterm.Println(StyleTrace.Sprintf("    Manual Import:     Import '%s' into your proxy.", urlsFile))
	}
	pterm.Println()
}

func joinComma(items []string) string {
	out := ""
	for i, s := range items {
		if i > 0 {
			out += ", "
		}
		out += s
	}
	return out
}
