package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shieldpay-labs/shieldpay-backend/internal/pkg/reject"
	"github.com/shieldpay-labs/shieldpay-backend/internal/pkg/token"
	"github.com/shieldpay-labs/shieldpay-backend/internal/pkg/utils"
	"github.com/spf13/viper"
)

const (
	accessTokenRequired string = "error.token.required"
	accessTokenInvalid  string = "error.token.invalid"
)

func VerifyAuthToken(context *gin.Context) {
	authHeader := context.Request.Header.Get("Authorization")
	tokenValue := strings.TrimSpace(strings.ReplaceAll(authHeader, "Bearer", ""))
	if tokenValue == "" {
		log.Warn().Msg("Token missing: 401")
		context.AbortWithStatusJSON(
			http.StatusUnauthorized,
			reject.NewProblem().
				WithTitle("Missing access token").
				WithStatus(http.StatusUnauthorized).
				WithCode(accessTokenRequired).
				Build())
		return
	}

	userId, err := token.Verify(tokenValue, []byte(viper.GetString("JWT_SECRET")))
	if err != nil {
		log.Warn().Msg("Cannot verify access token: 401")
		context.AbortWithStatusJSON(
			http.StatusUnauthorized,
			reject.NewProblem().
				WithTitle("Cannot verify access token").
				WithStatus(http.StatusUnauthorized).
				WithCode(accessTokenInvalid).
				Build())
		return
	}

	utils.SetUserIdCtx(userId, context)
}
