package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shieldpay-labs/shieldpay-backend/internal/pkg/reject"
	"github.com/shieldpay-labs/shieldpay-backend/internal/pkg/utils"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type authHandler struct {
	auth *authService
}

func RegisterRoutes(rg *gin.RouterGroup, db *gorm.DB) {
	handler := &authHandler{
		auth: &authService{
			db:        db,
			jwtSecret: []byte(viper.GetString("JWT_SECRET")),
		},
	}

	rg.POST("/signin", handler.signIn)
	rg.POST("/signout", handler.signOut)
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInResponse struct {
	Token string `json:"token"`
}

type SignOutResponse struct {
	Message string `json:"message"`
}

func (h authHandler) signIn(c *gin.Context) {
	body := SignInRequest{}

	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, reject.BodyParseProblem())
		return
	}

	if violations := utils.ValidateCredentials(body.Email, body.Password); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, reject.ValidationProblem(violations))
		return
	}

	token, err := h.auth.signIn(body.Email, body.Password)
	if err != nil {
		c.JSON(err.Problem.Status, err.Problem)
		return
	}

	c.JSON(http.StatusOK, SignInResponse{Token: token})
}

// signOut is a stateless no-op: the token stays valid until its expiry,
// the client is expected to discard it locally.
func (h authHandler) signOut(c *gin.Context) {
	c.JSON(http.StatusOK, SignOutResponse{Message: "Signed out (client should delete token)"})
}
