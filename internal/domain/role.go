package domain

import "strings"

// Role represents the capability level inferred from a viewer's identity.
type Role string

const (
	RoleRequester Role = "requester"
	RoleManager   Role = "manager"
)

func (r Role) String() string { return string(r) }

func (r Role) IsManager() bool { return r == RoleManager }

// RoleFromEmail classifies a viewer as a store manager when their identity
// string contains "store" or "manager" (case-insensitive).
//
// This substring heuristic is a feature-gating shim inherited from the
// identity provider setup, not an authorization control: nothing stops a
// client from calling the update endpoint directly regardless of role.
// Real enforcement requires a role claim from the identity provider.
func RoleFromEmail(email string) Role {
	lower := strings.ToLower(email)
	if strings.Contains(lower, "store") || strings.Contains(lower, "manager") {
		return RoleManager
	}
	return RoleRequester
}
