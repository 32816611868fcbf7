package gh

// AuthStatus is the closed-form result of probing the gh CLI session.
// It is recomputed whole on every check, never patched field by field.
type AuthStatus struct {
	GhInstalled   bool
	Authenticated bool
	HasUserScope  bool
	Username      string
	Error         string
}

// AuthState is the classification of an AuthStatus.
type AuthState int

const (
	// StateUnknown means no check has run yet.
	StateUnknown AuthState = iota
	StateToolMissing
	StateUnauthenticated
	StateMissingScope
	StateReady
)

// State classifies the status. The checks short-circuit in order: a missing
// binary wins over everything else, then a missing session, then a missing
// scope. Only a status passing all three is Ready.
func (s AuthStatus) State() AuthState {
	switch {
	case !s.GhInstalled:
		return StateToolMissing
	case !s.Authenticated:
		return StateUnauthenticated
	case !s.HasUserScope:
		return StateMissingScope
	default:
		return StateReady
	}
}

func (st AuthState) String() string {
	switch st {
	case StateToolMissing:
		return "gh not installed"
	case StateUnauthenticated:
		return "not authenticated"
	case StateMissingScope:
		return "missing 'user' scope"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Instructions returns the remediation text for a state, one line per
// element. The mapping is total: every state, including the pre-check
// unknown state, has a defined instruction set. Ready gets a single
// success line. Running the remediation command is left to the caller;
// this only decides which command to show.
func Instructions(state AuthState) []string {
	switch state {
	case StateToolMissing:
		return []string{
			"GitHub CLI is not installed.",
			"",
			"Install it from: https://cli.github.com/",
			"",
			"Or use Homebrew:",
			"  brew install gh",
		}
	case StateUnauthenticated:
		return []string{
			"GitHub CLI is not authenticated.",
			"",
			"Run this command in your terminal:",
			"  gh auth login",
			"",
			"Then press [r] to retry.",
		}
	case StateMissingScope:
		return []string{
			"GitHub CLI is missing the required 'user' scope.",
			"",
			"Run this command in your terminal:",
			"  gh auth refresh -h github.com -s user",
			"",
			"Then press [r] to retry.",
		}
	case StateReady:
		return []string{"Authentication successful!"}
	default:
		return []string{
			"Authentication state is not known yet.",
			"",
			"Press [r] to run the check.",
		}
	}
}
