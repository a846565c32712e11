package services

import (
	jwt "github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// Claims is the authenticated identity threading through every
// service call. No service reads identity from ambient state.
type Claims struct {
	ID       string
	Name     string
	UserType string
}

func NewClaimsFromContext(ctx *gin.Context) (*Claims, bool) {
	user, exists := ctx.Get("user")
	if !exists {
		return &Claims{}, false
	}
	mapClaims, ok := user.(jwt.MapClaims)
	if !ok {
		return &Claims{}, false
	}
	claims := &Claims{}
	if id, ok := mapClaims["_id"].(string); ok {
		claims.ID = id
	}
	if name, ok := mapClaims["name"].(string); ok {
		claims.Name = name
	}
	if userType, ok := mapClaims["user_type"].(string); ok {
		claims.UserType = userType
	}
	return claims, claims.ID != ""
}
