// Package authz decides who may act on what. The predicates are pure: they
// see only the caller's identity and the owning customer of the target.
package authz

import "github.com/Kariqs/storefront-api/models"

// Principal is the authenticated caller.
type Principal struct {
	UserID     uint
	CustomerID *uint
	Role       string
}

func (p Principal) IsAdmin() bool {
	return p.Role == models.RoleAdmin
}

// HasAnyRole reports whether the principal holds one of roles.
func HasAnyRole(p Principal, roles ...string) bool {
	for _, role := range roles {
		if p.Role == role {
			return true
		}
	}
	return false
}

// CanActOnCustomer allows admins, and the customer who owns the resource.
func CanActOnCustomer(p Principal, ownerCustomerID uint) bool {
	if p.IsAdmin() {
		return true
	}
	return p.CustomerID != nil && *p.CustomerID == ownerCustomerID
}

// CanActOnCustomerOrStaff additionally lets the given staff roles through.
func CanActOnCustomerOrStaff(p Principal, ownerCustomerID uint, staffRoles ...string) bool {
	return HasAnyRole(p, staffRoles...) || CanActOnCustomer(p, ownerCustomerID)
}
