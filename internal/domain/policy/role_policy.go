package policy

import (
	"os"
	"strings"

	"repairdesk/internal/domain/entity"
)

// RolePolicy encapsulates the role-elevation rules. Elevated roles are
// exempt from company scoping; everyone else only sees rows reachable from
// their own company.
//
// The elevated role names come from the USR_ADMIN env var as a
// comma-separated, case-insensitive list.
type RolePolicy struct {
	elevated map[string]struct{}
}

func NewRolePolicy() *RolePolicy {
	p := &RolePolicy{elevated: map[string]struct{}{}}
	for _, name := range strings.Split(os.Getenv("USR_ADMIN"), ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			p.elevated[name] = struct{}{}
		}
	}
	return p
}

// IsElevated reports whether the user's role name is in the admin list.
// Users without a loaded role are never elevated.
func (p *RolePolicy) IsElevated(user *entity.User) bool {
	if user == nil || user.Role == nil {
		return false
	}
	_, ok := p.elevated[strings.ToLower(user.Role.Name)]
	return ok
}

// Resolve builds the per-request authorization context.
func (p *RolePolicy) Resolve(user *entity.User) *entity.Actor {
	return &entity.Actor{
		User:     user,
		Elevated: p.IsElevated(user),
	}
}
