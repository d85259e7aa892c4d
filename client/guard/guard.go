// Package guard gates role-specific screen groups from session state. It is
// a UX convenience only; the server's authorization checks remain the sole
// enforcement point.
package guard

import (
	"printdesk/client/session"
	"printdesk/internal/domain/entity"
)

// State is the outcome of evaluating a guarded navigation attempt.
type State int

const (
	// Unauthenticated means no session is active; redirect to sign-in.
	Unauthenticated State = iota
	// WrongRole means a session exists but lacks the required role;
	// redirect to the unauthorized page.
	WrongRole
	// Authorized means the guarded subtree may render.
	Authorized
)

func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "UNAUTHENTICATED"
	case WrongRole:
		return "WRONG_ROLE"
	case Authorized:
		return "AUTHORIZED"
	default:
		return "UNKNOWN"
	}
}

// Evaluate resolves the guard state synchronously from the current session.
// No server re-validation happens here.
func Evaluate(sess *session.Session, required entity.Role) State {
	if sess == nil {
		return Unauthenticated
	}
	if sess.Role != required {
		return WrongRole
	}

	return Authorized
}
