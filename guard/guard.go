// Package guard gates access to role-scoped surfaces. The decision is made
// entirely from the in-memory session snapshot: no network calls, no
// intermediate loading state.
package guard

import (
	"github.com/learnly/learnly-go/enums"
	"github.com/learnly/learnly-go/models"
)

type Action int

const (
	// Allow renders the guarded surface unchanged.
	Allow Action = iota
	// RedirectLogin sends the visitor to the login entry point, replacing
	// history so there is no back-navigation into the guarded surface.
	RedirectLogin
	// RedirectRole sends the user to their own role root, e.g. /student.
	RedirectRole
)

type Decision struct {
	Action Action
	// Role is the user's actual role when Action is RedirectRole.
	Role enums.Role
}

// Target returns the path the decision redirects to, or "" for Allow.
func (d Decision) Target() string {
	switch d.Action {
	case RedirectLogin:
		return "/login"
	case RedirectRole:
		return d.Role.Root()
	}
	return ""
}

// Check decides whether a session may access a surface restricted to
// allowedRoles. An empty allow-list only requires a valid session.
func Check(sess models.Session, allowedRoles ...enums.Role) Decision {
	if !sess.LoggedIn() {
		return Decision{Action: RedirectLogin}
	}

	if len(allowedRoles) == 0 {
		return Decision{Action: Allow}
	}

	for _, role := range allowedRoles {
		if sess.User.Role == role {
			return Decision{Action: Allow}
		}
	}
	return Decision{Action: RedirectRole, Role: sess.User.Role}
}
