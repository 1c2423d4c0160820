package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const userIdCtxKey string = "userId"

// GetUserId returns the verified user id attached by the auth token
// middleware. Routes calling this must be registered behind that
// middleware; a missing id aborts the request.
func GetUserId(ctx *gin.Context) string {
	return getCtxValue(userIdCtxKey, ctx).(string)
}

func SetUserIdCtx(userId string, ctx *gin.Context) {
	ctx.Set(userIdCtxKey, userId)
}

func getCtxValue(key string, ctx *gin.Context) any {
	value, exists := ctx.Get(key)
	if !exists {
		ctx.AbortWithStatus(http.StatusInternalServerError)
	}
	return value
}
