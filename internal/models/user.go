package models

import "time"

type Permission string

const (
	PermissionUser             Permission = "USER"
	PermissionAdmin            Permission = "ADMIN"
	PermissionItemCreate       Permission = "ITEMCREATE"
	PermissionItemUpdate       Permission = "ITEMUPDATE"
	PermissionItemDelete       Permission = "ITEMDELETE"
	PermissionPermissionUpdate Permission = "PERMISSIONUPDATE"
)

// AllPermissions lists every assignable permission, in display order.
var AllPermissions = []Permission{
	PermissionUser,
	PermissionAdmin,
	PermissionItemCreate,
	PermissionItemUpdate,
	PermissionItemDelete,
	PermissionPermissionUpdate,
}

func ValidPermission(p Permission) bool {
	for _, known := range AllPermissions {
		if p == known {
			return true
		}
	}
	return false
}

type User struct {
	ID               string
	Email            string
	Name             string
	PasswordHash     []byte
	Permissions      []Permission
	ResetToken       *string
	ResetTokenExpiry *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HasAnyPermission reports whether the user holds at least one of the given
// permissions.
func (u User) HasAnyPermission(perms ...Permission) bool {
	for _, need := range perms {
		for _, have := range u.Permissions {
			if have == need {
				return true
			}
		}
	}
	return false
}
