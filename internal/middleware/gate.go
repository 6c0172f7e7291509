package middleware

import (
	"time"

	"pattern_edu_backend/internal/model"
)

// PathClass buckets a requested path for the session gate. API handlers are
// always PathPrivate unless the router says otherwise; auth pages (login,
// signup, password reset) are PathAuthPage.
type PathClass int

const (
	PathPublic PathClass = iota
	PathAuthPage
	PathPrivate
)

type Action int

const (
	ActionAllow Action = iota
	ActionLoginRedirect
	ActionRoleHomeRedirect
)

// Decision is the gate's verdict. InvalidateSession means the session must be
// destroyed before responding.
type Decision struct {
	Action            Action
	InvalidateSession bool
}

// Decide is the whole interception policy:
//
//	no session + private path        -> login
//	session idle past the timeout    -> invalidate, then login
//	session + auth page              -> role home
//	otherwise                        -> allow
func Decide(sess *model.Session, now time.Time, idleTimeout time.Duration, class PathClass) Decision {
	if sess == nil {
		if class == PathPrivate {
			return Decision{Action: ActionLoginRedirect}
		}
		return Decision{Action: ActionAllow}
	}

	if now.Sub(sess.LastActivity) > idleTimeout {
		return Decision{Action: ActionLoginRedirect, InvalidateSession: true}
	}

	if class == PathAuthPage {
		return Decision{Action: ActionRoleHomeRedirect}
	}

	return Decision{Action: ActionAllow}
}
