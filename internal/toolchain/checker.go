package toolchain

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"enumchain/internal/platform/logx"
)

const versionProbeTimeout = 5 * time.Second

// Status is the check outcome for one tool.
type Status struct {
	Tool      Tool
	Installed bool
	Path      string // resolved absolute path when installed
	Version   string // best-effort, may be empty
}

// Checker resolves required tools on the execution search path.
type Checker struct {
	logger logx.Logger

	// lookPath is swappable in tests
	lookPath func(name string) (string, error)
}

// NewChecker creates a Checker using exec.LookPath.
func NewChecker(logger logx.Logger) *Checker {
	return &Checker{
		logger:   logger.With("component", "toolchain"),
		lookPath: exec.LookPath,
	}
}

// Check resolves every tool of the manifest, in order. It never short-circuits:
// the caller gets the full installed/missing picture in one pass.
func (c *Checker) Check(ctx context.Context, m Manifest) []Status {
	statuses := make([]Status, 0, len(m.Tools))

	for _, tool := range m.Tools {
		st := Status{Tool: tool}

		path, err := c.lookPath(tool.Name)
		if err != nil {
			c.logger.Warn("tool not found in PATH", "tool", tool.Name)
			statuses = append(statuses, st)
			continue
		}

		st.Installed = true
		st.Path = path
		st.Version = c.probeVersion(ctx, path, tool.VersionArgs)

		c.logger.Debug("tool resolved", "tool", tool.Name, "path", path, "version", st.Version)
		statuses = append(statuses, st)
	}

	return statuses
}

// probeVersion runs the tool's version command. Failures are not errors: the
// binary existing is what we verify, the version is informational.
func (c *Checker) probeVersion(ctx context.Context, path string, args []string) string {
	if len(args) == 0 {
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, versionProbeTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, path, args...).CombinedOutput()
	if err != nil {
		c.logger.Debug("version probe failed", "path", path, "error", err.Error())
		return ""
	}
	return firstLine(string(out))
}

// Missing filters the check results down to the names of absent tools.
func Missing(statuses []Status) []string {
	var missing []string
	for _, st := range statuses {
		if !st.Installed {
			missing = append(missing, st.Tool.Name)
		}
	}
	return missing
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)
	if len(s) > 60 {
		s = s[:57] + "..."
	}
	return s
}
