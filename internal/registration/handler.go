package registration

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shieldpay-labs/shieldpay-backend/internal/pkg/reject"
	"github.com/shieldpay-labs/shieldpay-backend/internal/pkg/utils"
	"gorm.io/gorm"
)

type registrationHandler struct {
	registration *registrationService
}

func RegisterRoutes(rg *gin.RouterGroup, db *gorm.DB) {
	handler := registrationHandler{
		registration: &registrationService{db: db},
	}

	routes := rg.Group("/users")
	routes.POST("", handler.register)
}

type RegistrationRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegistrationResponse struct {
	Id    string `json:"id"`
	Email string `json:"email"`
}

func (h registrationHandler) register(c *gin.Context) {
	body := RegistrationRequest{}

	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, reject.BodyParseProblem())
		return
	}

	if violations := utils.ValidateCredentials(body.Email, body.Password); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, reject.ValidationProblem(violations))
		return
	}

	user, err := h.registration.register(body.Email, body.Password)
	if err != nil {
		c.JSON(err.Problem.Status, err.Problem)
		return
	}

	c.JSON(http.StatusCreated, RegistrationResponse{Id: user.Id, Email: user.Email})
}
