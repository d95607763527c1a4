package models

import "strings"

// Role is the dashboard role of a user. The waste dashboard uses ADMIN,
// OPERATOR, DRIVER and CITIZEN; the property portal uses ADMIN, LANDLORD
// and TENANT.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleOperator Role = "OPERATOR"
	RoleDriver   Role = "DRIVER"
	RoleCitizen  Role = "CITIZEN"
	RoleLandlord Role = "LANDLORD"
	RoleTenant   Role = "TENANT"
)

// Kind returns the lowercased role used as the JWT "kind" claim.
func (r Role) Kind() string {
	return strings.ToLower(string(r))
}

// RoleFromKind maps a JWT kind back to a Role.
func RoleFromKind(kind string) Role {
	return Role(strings.ToUpper(strings.TrimSpace(kind)))
}

// User represents a dashboard user.
// It maps to the `users` table in SQLite.
type User struct {
	ID        string `db:"id" json:"id" yaml:"id"`
	Name      string `db:"name" json:"name" yaml:"name"`
	Email     string `db:"email" json:"email" yaml:"email"`
	Role      Role   `db:"role" json:"role" yaml:"role"`
	AvatarURL string `db:"avatar_url" json:"avatarUrl,omitempty" yaml:"avatarUrl"`
}
