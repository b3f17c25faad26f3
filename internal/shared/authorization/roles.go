// Package authorization implements the cross-cutting access rule for
// ticket operations: admins see everything, users see what they own.
package authorization

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleUser
}

// CanAccessTicket evaluates the ownership rule for a ticket with the given
// owner. ownerID is nil for anonymous submissions, which only admins may
// read: an anonymous ticket can never be claimed by a regular user.
func CanAccessTicket(userID uint, role UserRole, ownerID *uint) bool {
	if role.IsAdmin() {
		return true
	}
	return ownerID != nil && *ownerID == userID
}
