package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/entity"
)

// Context keys the auth middleware sets after verifying the token.
const (
	CtxUserIDKey = "userId"
	CtxRoleKey   = "role"
)

func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get(CtxUserIDKey)
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get(CtxRoleKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// IsCustomer picks the storefront view: customers get their own orders with
// the staff-only fields stripped.
func IsCustomer(c *gin.Context) bool {
	return CurrentRole(c) == entity.RoleCustomer
}
