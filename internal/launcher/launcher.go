// Package launcher locates the external configuration script and runs it.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/example/mindfulaccess/internal/config"
	"github.com/example/mindfulaccess/internal/logging"
)

// ErrScriptNotFound is returned when no candidate path holds the script.
var ErrScriptNotFound = errors.New("configuration script not found")

const macOSDir = "/Contents/MacOS"

// Launcher finds and synchronously invokes the configuration script.
type Launcher struct {
	candidates []string
	shell      string
	flag       string

	exists func(string) bool
	stdout io.Writer
	stderr io.Writer
}

// New builds a Launcher whose candidates derive from cfg and the running
// bundle location.
func New(cfg *config.Config, bundlePath string) *Launcher {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Launcher{
		candidates: Candidates(cfg, bundlePath),
		shell:      cfg.Shell,
		flag:       cfg.ConfigFlag,
		exists:     fileExists,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}
}

// Candidates lists the script locations in priority order: the fixed install
// location, the running bundle, then the running bundle with its
// Contents/MacOS suffix removed.
func Candidates(cfg *config.Config, bundlePath string) []string {
	stripped := strings.ReplaceAll(bundlePath, macOSDir, "")
	return []string{
		filepath.Join(cfg.InstallPath, cfg.ScriptPath),
		filepath.Join(bundlePath, cfg.ScriptPath),
		filepath.Join(stripped, cfg.ScriptPath),
	}
}

// Candidates returns a copy of the probed paths.
func (l *Launcher) Candidates() []string {
	out := make([]string, len(l.candidates))
	copy(out, l.candidates)
	return out
}

// Locate returns the first candidate that exists.
func (l *Launcher) Locate() (string, error) {
	for _, path := range l.candidates {
		logging.Debugf("checking path: %s", path)
		if l.exists(path) {
			return path, nil
		}
	}
	return "", ErrScriptNotFound
}

// Run invokes the script through the shell with the configuration flag and
// waits for it to exit. The exit status is ignored; only a failure to start
// the process is reported.
func (l *Launcher) Run(ctx context.Context, scriptPath string) error {
	if scriptPath == "" {
		return errors.New("empty script path")
	}

	runID := logging.ShortID(uuid.NewString())
	commandLine := shellQuote(scriptPath) + " " + l.flag

	cmd := exec.CommandContext(ctx, l.shell, "-c", commandLine)
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr

	logging.Debugf("configuration run %s: %s -c %s", runID, l.shell, commandLine)
	err := cmd.Run()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		logging.Debugf("configuration run %s exited with status %d", runID, exitErr.ExitCode())
		return nil
	}
	if err != nil {
		return fmt.Errorf("run configuration script: %w", err)
	}

	logging.Debugf("configuration run %s finished", runID)
	return nil
}

// BundlePath reports the bundle directory containing executable: the nearest
// enclosing *.app directory, or the executable's own directory otherwise.
func BundlePath(executable string) string {
	dir := filepath.Dir(executable)
	for p := dir; ; p = filepath.Dir(p) {
		if strings.HasSuffix(p, ".app") {
			return p
		}
		if parent := filepath.Dir(p); parent == p {
			break
		}
	}
	return dir
}

// ResolveBundlePath returns the bundle directory of the running process.
func ResolveBundlePath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolve executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return BundlePath(exe), nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}
