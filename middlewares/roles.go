package middlewares

import (
	"net/http"

	"github.com/CPU-commits/Intranet_BRegistration/res"
	"github.com/CPU-commits/Intranet_BRegistration/services"
	"github.com/gin-gonic/gin"
)

func RolesMiddleware(roles []string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, _ := services.NewClaimsFromContext(ctx)
		for _, role := range roles {
			if claims.UserType == role {
				ctx.Next()
				return
			}
		}
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, &res.Response{
			Success: false,
			Message: "Unauthorized",
		})
	}
}
