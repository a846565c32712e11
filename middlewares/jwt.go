package middlewares

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/CPU-commits/Intranet_BRegistration/res"
	"github.com/CPU-commits/Intranet_BRegistration/settings"
	jwt "github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

var settingsData = settings.GetSettings()

func unauthorized(ctx *gin.Context) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, &res.Response{
		Success: false,
		Message: "Unauthorized",
	})
}

// JWTMiddleware validates the Bearer token and stores the raw claims
// in the gin context under "user". Routes behind it never see a
// request without a valid student identity.
func JWTMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authorization := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(authorization, "Bearer ") {
			unauthorized(ctx)
			return
		}
		tokenString := strings.TrimPrefix(authorization, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(settingsData.JWT_SECRET_KEY), nil
		})
		if err != nil || !token.Valid {
			unauthorized(ctx)
			return
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			unauthorized(ctx)
			return
		}
		ctx.Set("user", claims)
		ctx.Next()
	}
}
