package git

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"gh-pr-mirror/internal/domain/models"
	ports "gh-pr-mirror/internal/domain/ports/output"
	git_port "gh-pr-mirror/internal/domain/ports/output/git"
	"gh-pr-mirror/internal/utils"
)

var _ git_port.RemoteManager = (*CLIRemoteManager)(nil)

// CLIRemoteManager manages remotes of a working copy by shelling out to git.
type CLIRemoteManager struct {
	binary string
	log    ports.Logger
}

func NewCLIRemoteManager(binary string, log ports.Logger) *CLIRemoteManager {
	if binary == "" {
		binary = "git"
	}
	return &CLIRemoteManager{binary: binary, log: log}
}

func (m *CLIRemoteManager) ListRemotes(ctx context.Context, repoPath string) ([]models.Remote, error) {
	out, err := m.run(ctx, repoPath, "remote", "-v")
	if err != nil {
		return nil, err
	}
	return ParseRemotes(out), nil
}

func (m *CLIRemoteManager) AddRemote(ctx context.Context, repoPath string, name string, url string) (*models.Remote, error) {
	if _, err := m.run(ctx, repoPath, "remote", "add", name, url); err != nil {
		if isRemoteExists(err) {
			return nil, fmt.Errorf("%w: remote %s", utils.ErrAlreadyExists, name)
		}
		return nil, err
	}
	m.log.Info("remote added", "path", repoPath, "remote", name, "url", url)
	return &models.Remote{Name: name, URL: url}, nil
}

func (m *CLIRemoteManager) RemoveRemote(ctx context.Context, repoPath string, name string) error {
	_, err := m.run(ctx, repoPath, "remote", "remove", name)
	if err == nil {
		m.log.Info("remote removed", "path", repoPath, "remote", name)
		return nil
	}
	if isNoSuchRemote(err) {
		m.log.Debug("remote already absent", "path", repoPath, "remote", name)
		return nil
	}
	return fmt.Errorf("%w: %s: %s", utils.ErrRemoteRemoval, name, err)
}

func (m *CLIRemoteManager) SetRemoteURL(ctx context.Context, repoPath string, name string, url string) error {
	_, err := m.run(ctx, repoPath, "remote", "set-url", name, url)
	return err
}

func (m *CLIRemoteManager) run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, m.binary, append([]string{"-C", repoPath}, args...)...)
	cmd.Env = append(os.Environ(), "LC_ALL=C", "LANGUAGE=")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, &CommandError{Args: args, Stderr: strings.TrimSpace(stderr.String()), Err: err}
	}
	return stdout.Bytes(), nil
}

type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("git %s: %s", strings.Join(e.Args, " "), e.Stderr)
	}
	return fmt.Sprintf("git %s: %s", strings.Join(e.Args, " "), e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

// ExitCode returns the git exit status, or -1 when git did not run to exit.
func (e *CommandError) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// Exit codes of `git remote`: newer git exits 2 for a missing remote and 3
// for a duplicate; older releases die with 128 for both.
const (
	exitNoSuchRemote = 2
	exitRemoteExists = 3
	exitFatal        = 128
)

// isNoSuchRemote reports whether git refused because the remote does not exist.
func isNoSuchRemote(err error) bool {
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		return false
	}
	if strings.Contains(strings.ToLower(cmdErr.Stderr), "no such remote") {
		return true
	}
	code := cmdErr.ExitCode()
	return code == exitNoSuchRemote || code == exitFatal
}

func isRemoteExists(err error) bool {
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		return false
	}
	return strings.Contains(cmdErr.Stderr, "already exists") || cmdErr.ExitCode() == exitRemoteExists
}

// ParseRemotes parses `git remote -v` output, keeping one entry per remote
// (the fetch URL).
func ParseRemotes(out []byte) []models.Remote {
	var remotes []models.Remote
	seen := make(map[string]bool)
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}
		if len(fields) >= 3 && fields[2] != "(fetch)" {
			continue
		}
		if seen[fields[0]] {
			continue
		}
		seen[fields[0]] = true
		remotes = append(remotes, models.Remote{Name: fields[0], URL: fields[1]})
	}
	return remotes
}
