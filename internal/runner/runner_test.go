package runner

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"enumchain/internal/platform/errors"
	"enumchain/internal/platform/logx"
	"enumchain/internal/platform/ui"
)

func newTestRunner(dryRun bool) *Runner {
	return New(logx.NewWithLevel(logx.LevelError), ui.NewPresenter(true), dryRun, "")
}

func requireUnix(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("tests shell out to sh")
	}
}

func TestRun_CapturesStdout(t *testing.T) {
	requireUnix(t)
	r := newTestRunner(false)

	res, err := r.Run(context.Background(), Spec{
		Path: "sh",
		Args: []string{"-c", "printf 'a.example.com\\nb.example.com\\n'"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ExitCode != 0 {
		t.Errorf("expected exit 0, got %d", res.ExitCode)
	}
	if res.Stdout != "a.example.com\nb.example.com\n" {
		t.Errorf("unexpected stdout: %q", res.Stdout)
	}
}

func TestRun_FeedsStdin(t *testing.T) {
	requireUnix(t)
	r := newTestRunner(false)

	res, err := r.Run(context.Background(), Spec{
		Path:  "sh",
		Args:  []string{"-c", "cat"},
		Stdin: "host1\nhost2\n",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Stdout != "host1\nhost2\n" {
		t.Errorf("stdin was not piped through, got: %q", res.Stdout)
	}
}

func TestRun_WritesOutputFile(t *testing.T) {
	requireUnix(t)
	r := newTestRunner(false)
	out := filepath.Join(t.TempDir(), "stage.txt")

	_, err := r.Run(context.Background(), Spec{
		Path:       "sh",
		Args:       []string{"-c", "printf 'resolved.example.com\\n'"},
		OutputFile: out,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	if string(data) != "resolved.example.com\n" {
		t.Errorf("unexpected file content: %q", data)
	}
}

func TestRun_NonZeroExitIsNotAnError(t *testing.T) {
	requireUnix(t)
	r := newTestRunner(false)
	out := filepath.Join(t.TempDir(), "stage.txt")

	res, err := r.Run(context.Background(), Spec{
		Path:       "sh",
		Args:       []string{"-c", "echo partial; echo oops >&2; exit 3"},
		OutputFile: out,
	})
	if err != nil {
		t.Fatalf("non-zero exit must not be an error, got: %v", err)
	}
	if res.ExitCode != 3 {
		t.Errorf("expected exit code 3, got %d", res.ExitCode)
	}
	if !strings.Contains(res.Stderr, "oops") {
		t.Errorf("stderr not captured: %q", res.Stderr)
	}

	// no output file on failure
	if _, statErr := os.Stat(out); statErr == nil {
		t.Error("output file must not be written for a failed subprocess")
	}
}

func TestRun_ReplacesEnvironment(t *testing.T) {
	requireUnix(t)
	r := newTestRunner(false)

	res, err := r.Run(context.Background(), Spec{
		Path: "sh",
		Args: []string{"-c", "printf '%s|%s' \"$HTTP_PROXY\" \"$HTTPS_PROXY\""},
		Env:  []string{"HTTP_PROXY=http://127.0.0.1:8080", "HTTPS_PROXY=http://127.0.0.1:8080"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Stdout != "http://127.0.0.1:8080|http://127.0.0.1:8080" {
		t.Errorf("proxy environment not injected, got: %q", res.Stdout)
	}
}

func TestRun_LaunchFailureIsFatal(t *testing.T) {
	r := newTestRunner(false)

	_, err := r.Run(context.Background(), Spec{
		Path: "/nonexistent/definitely-not-a-binary",
	})
	if err == nil {
		t.Fatal("expected launch failure error")
	}
	if !errors.IsLaunchFailed(err) {
		t.Errorf("expected ErrLaunchFailed, got: %v", err)
	}
}

func TestRun_DryRun(t *testing.T) {
	r := newTestRunner(true)
	out := filepath.Join(t.TempDir(), "stage.txt")

	res, err := r.Run(context.Background(), Spec{
		Path:       "/nonexistent/definitely-not-a-binary",
		Args:       []string{"-d", "example.com"},
		OutputFile: out,
	})
	if err != nil {
		t.Fatalf("dry run must never fail: %v", err)
	}
	if res.ExitCode != 0 || res.Stdout != "" {
		t.Errorf("expected synthetic empty success, got: %+v", res)
	}

	if _, statErr := os.Stat(out); statErr == nil {
		t.Error("dry run must not create files")
	}
}

func TestCmdline(t *testing.T) {
	spec := Spec{Path: "naabu", Args: []string{"-p", "80,443,8080,8443", "-silent"}}
	expected := "naabu -p 80,443,8080,8443 -silent"
	if got := Cmdline(spec); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}
