// Package gate decides whether a request identity may reach an operation.
// Guards are plain functions so they compose before any handler runs and can
// be tested without HTTP.
package gate

import (
	"slices"

	"customer-crm/internal/data/entity"

	"github.com/google/uuid"
)

// Identity is the principal resolved from the request session.
// A nil *Identity is the anonymous identity.
type Identity struct {
	UserID   uuid.UUID
	Username string
	Groups   []string
}

func (i *Identity) IsAuthenticated() bool {
	return i != nil && i.UserID != uuid.Nil
}

// Role resolves the identity's role from its groups. Anonymous identities
// have no role.
func (i *Identity) Role() (entity.UserRole, bool) {
	if !i.IsAuthenticated() {
		return "", false
	}
	return ResolveRole(i.Groups)
}

// ResolveRole derives a role from group membership. Exactly one known role
// group must be present; none or more than one yields no role.
func ResolveRole(groups []string) (entity.UserRole, bool) {
	var found []entity.UserRole
	for _, g := range groups {
		role := entity.UserRole(g)
		if role.IsValid() && !slices.Contains(found, role) {
			found = append(found, role)
		}
	}

	if len(found) != 1 {
		return "", false
	}
	return found[0], true
}

type Outcome int

const (
	Allow Outcome = iota
	Redirect
	Forbidden
)

func (o Outcome) String() string {
	switch o {
	case Allow:
		return "allow"
	case Redirect:
		return "redirect"
	case Forbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

type Decision struct {
	Outcome    Outcome
	RedirectTo string
}

func (d Decision) Allowed() bool {
	return d.Outcome == Allow
}

func allow() Decision {
	return Decision{Outcome: Allow}
}

func redirect(to string) Decision {
	return Decision{Outcome: Redirect, RedirectTo: to}
}

func forbid() Decision {
	return Decision{Outcome: Forbidden}
}

// Guard maps an identity to a decision.
type Guard func(id *Identity) Decision

// RequireAuthenticated redirects anonymous identities to loginURL.
func RequireAuthenticated(loginURL string) Guard {
	return func(id *Identity) Decision {
		if !id.IsAuthenticated() {
			return redirect(loginURL)
		}
		return allow()
	}
}

// RequireUnauthenticated keeps signed-in identities off the login and
// registration pages by sending them to homeURL.
func RequireUnauthenticated(homeURL string) Guard {
	return func(id *Identity) Decision {
		if id.IsAuthenticated() {
			return redirect(homeURL)
		}
		return allow()
	}
}

// RequireRole allows identities whose resolved role is in allowed. Anonymous
// identities are redirected to loginURL; everyone else is forbidden.
func RequireRole(loginURL string, allowed ...entity.UserRole) Guard {
	return func(id *Identity) Decision {
		if !id.IsAuthenticated() {
			return redirect(loginURL)
		}

		role, ok := id.Role()
		if !ok || !slices.Contains(allowed, role) {
			return forbid()
		}
		return allow()
	}
}

// Chain runs guards in order and returns the first non-allow decision.
func Chain(guards ...Guard) Guard {
	return func(id *Identity) Decision {
		for _, g := range guards {
			if d := g(id); !d.Allowed() {
				return d
			}
		}
		return allow()
	}
}

// AdminOnly is the chain used by every staff page.
func AdminOnly(loginURL string) Guard {
	return Chain(
		RequireAuthenticated(loginURL),
		RequireRole(loginURL, entity.RoleAdmin),
	)
}
