// Package access decides whether a role-guarded view renders. It is a pure
// predicate over a session snapshot and a required-role set: no network, no
// store writes, re-evaluated on every session change.
package access

import "github.com/bookvite/storefront/internal/client/store"

// Decision is the outcome for a full-page guard.
type Decision int

const (
	// Render: show the guarded content.
	Render Decision = iota
	// Deny: show an explicit "not authorized" notice, never a blank page.
	Deny
	// Pending: the identity probe has not resolved yet; show a loading
	// placeholder to avoid flashing a denied/allowed state.
	Pending
)

func (d Decision) String() string {
	switch d {
	case Render:
		return "render"
	case Deny:
		return "deny"
	case Pending:
		return "pending"
	}
	return "unknown"
}

// Page is the full-page guard. With no requiredRoles any authenticated
// user may render; with roles, the session's role must be a member.
func Page(sess store.Snapshot, requiredRoles ...string) Decision {
	if sess.FetchInProgress {
		return Pending
	}
	if len(requiredRoles) == 0 {
		if sess.LoggedIn() {
			return Render
		}
		return Deny
	}
	for _, role := range requiredRoles {
		if sess.User.Role == role {
			return Render
		}
	}
	return Deny
}

// Visible is the inline variant used for conditional menu entries and
// widgets: on denial the element simply is not rendered, no notice. It
// does not wait out the identity probe; an unresolved session hides the
// element the same way an anonymous one does.
func Visible(sess store.Snapshot, requiredRoles ...string) bool {
	if len(requiredRoles) == 0 {
		return sess.LoggedIn()
	}
	for _, role := range requiredRoles {
		if sess.User.Role == role {
			return true
		}
	}
	return false
}
