// Package gh wraps the GitHub CLI as the app's only data source.
//
// Everything here runs `gh` as a subprocess and collapses failures into
// closed negative values: a missing binary, a dead session, a non-zero exit
// or malformed JSON all surface as "absent" or a negative AuthStatus, never
// as a transport error. The dashboard treats "no data" uniformly and leaves
// retries to the user.
package gh

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/mwolczyk/copilot-meter/internal/core"
)

// minVersion is the oldest gh release known to expose the premium request
// usage endpoint under `gh api`.
const minVersion = "v2.40.0"

// runner executes the gh binary and returns combined output on failure,
// stdout on success. Swapped out in tests.
type runner func(ctx context.Context, args ...string) (string, error)

// Client shells out to the gh CLI.
type Client struct {
	binary   string
	run      runner
	lookPath func(file string) (string, error)
}

func NewClient() *Client {
	c := &Client{binary: "gh", lookPath: exec.LookPath}
	c.run = c.runGh
	return c
}

func (c *Client) runGh(ctx context.Context, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return stdout.String() + stderr.String(), err
	}
	return stdout.String(), nil
}

// Installed reports whether the gh binary is on PATH.
func (c *Client) Installed() bool {
	_, err := c.lookPath(c.binary)
	return err == nil
}

var (
	// "Logged in to github.com account octocat (keyring)"
	usernameRe = regexp.MustCompile(`Logged in to github\.com account (\S+)`)
	// "- Token scopes: 'gist', 'read:org', 'repo', 'user'"
	scopesRe = regexp.MustCompile(`Token scopes:\s*(.+)`)
	scopeRe  = regexp.MustCompile(`'([^']+)'`)
)

// CheckAuth probes the gh session and classifies it. Any invocation failure
// fails closed to a fully negative status.
func (c *Client) CheckAuth(ctx context.Context) AuthStatus {
	if !c.Installed() {
		return AuthStatus{Error: "GitHub CLI (gh) is not installed"}
	}

	// gh auth status writes to stderr; runGh folds both streams together
	// on failure so the parse below sees whatever gh printed.
	out, err := c.run(ctx, "auth", "status")
	if err != nil {
		return AuthStatus{
			GhInstalled: true,
			Error:       "Not authenticated with GitHub CLI",
		}
	}

	status := AuthStatus{GhInstalled: true, Authenticated: true}
	if m := usernameRe.FindStringSubmatch(out); m != nil {
		status.Username = m[1]
	}
	status.HasUserScope = hasScope(out, "user")
	if !status.HasUserScope {
		status.Error = "Missing 'user' scope - run: gh auth refresh -s user"
	}
	return status
}

func hasScope(authOutput, want string) bool {
	m := scopesRe.FindStringSubmatch(authOutput)
	if m == nil {
		return false
	}
	for _, quoted := range scopeRe.FindAllStringSubmatch(m[1], -1) {
		if quoted[1] == want {
			return true
		}
	}
	return false
}

// Username resolves the acting login. Absent is a valid outcome, not an
// error.
func (c *Client) Username(ctx context.Context) (string, bool) {
	out, err := c.run(ctx, "api", "user", "--jq", ".login")
	if err != nil {
		return "", false
	}
	name := strings.TrimSpace(out)
	if name == "" {
		return "", false
	}
	return name, true
}

// FetchUsage pulls the premium request usage payload for a user. Any failure
// (process error, non-zero exit, malformed JSON) collapses to absent.
func (c *Client) FetchUsage(ctx context.Context, username string) (*core.UsageReport, bool) {
	endpoint := fmt.Sprintf("users/%s/settings/billing/premium_request/usage", username)
	out, err := c.run(ctx, "api", endpoint)
	if err != nil {
		return nil, false
	}

	var report core.UsageReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		return nil, false
	}
	return &report, true
}

var versionRe = regexp.MustCompile(`gh version (\d+\.\d+\.\d+)`)

// Version parses `gh --version` output into a semver string ("v2.45.0").
func (c *Client) Version(ctx context.Context) (string, bool) {
	out, err := c.run(ctx, "--version")
	if err != nil {
		return "", false
	}
	m := versionRe.FindStringSubmatch(out)
	if m == nil {
		return "", false
	}
	return "v" + m[1], true
}

// VersionSupported reports whether a gh version is new enough for the
// billing usage endpoint.
func VersionSupported(version string) bool {
	return semver.IsValid(version) && semver.Compare(version, minVersion) >= 0
}

// LoginCommand builds the interactive `gh auth login` invocation. The caller
// must hand the terminal over to it (tea.ExecProcess) and reacquire
// afterwards.
func (c *Client) LoginCommand() *exec.Cmd {
	cmd := exec.Command(c.binary, "auth", "login")
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}

// RefreshScopeCommand builds the interactive scope elevation invocation for
// an already authenticated session.
func (c *Client) RefreshScopeCommand() *exec.Cmd {
	cmd := exec.Command(c.binary, "auth", "refresh", "-h", "github.com", "-s", "user")
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}
