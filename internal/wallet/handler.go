package wallet

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shieldpay-labs/shieldpay-backend/internal/pkg/middleware"
	"github.com/shieldpay-labs/shieldpay-backend/internal/pkg/reject"
	"github.com/shieldpay-labs/shieldpay-backend/internal/pkg/utils"
	"gorm.io/gorm"
)

type walletHandler struct {
	wallet *walletService
}

func RegisterRoutes(rg *gin.RouterGroup, db *gorm.DB) {
	handler := walletHandler{
		wallet: &walletService{db: db},
	}

	routes := rg.Group("/wallets")
	routes.GET("", middleware.VerifyAuthToken, handler.list)
	routes.POST("", middleware.VerifyAuthToken, handler.create)
	routes.GET("/:id", middleware.VerifyAuthToken, handler.getById)
	routes.PUT("/:id", middleware.VerifyAuthToken, handler.update)
	routes.DELETE("/:id", middleware.VerifyAuthToken, handler.delete)
}

type DeleteResponse struct {
	Message string `json:"message"`
}

func (h walletHandler) list(c *gin.Context) {
	wallets, err := h.wallet.findAll(utils.GetUserId(c))
	if err != nil {
		c.JSON(err.Problem.Status, err.Problem)
		return
	}

	c.JSON(http.StatusOK, wallets)
}

func (h walletHandler) create(c *gin.Context) {
	body := WalletRequest{}
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, reject.BodyParseProblem())
		return
	}

	if violations := body.validate(); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, reject.ValidationProblem(violations))
		return
	}

	wallet, err := h.wallet.create(utils.GetUserId(c), body)
	if err != nil {
		c.JSON(err.Problem.Status, err.Problem)
		return
	}

	c.JSON(http.StatusCreated, wallet)
}

func (h walletHandler) getById(c *gin.Context) {
	id, ok := walletIdParam(c)
	if !ok {
		return
	}

	wallet, err := h.wallet.findById(utils.GetUserId(c), id)
	if err != nil {
		c.JSON(err.Problem.Status, err.Problem)
		return
	}

	c.JSON(http.StatusOK, wallet)
}

func (h walletHandler) update(c *gin.Context) {
	id, ok := walletIdParam(c)
	if !ok {
		return
	}

	body := WalletRequest{}
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, reject.BodyParseProblem())
		return
	}

	if violations := body.validate(); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, reject.ValidationProblem(violations))
		return
	}

	wallet, err := h.wallet.update(utils.GetUserId(c), id, body)
	if err != nil {
		c.JSON(err.Problem.Status, err.Problem)
		return
	}

	c.JSON(http.StatusOK, wallet)
}

func (h walletHandler) delete(c *gin.Context) {
	id, ok := walletIdParam(c)
	if !ok {
		return
	}

	if err := h.wallet.delete(utils.GetUserId(c), id); err != nil {
		c.JSON(err.Problem.Status, err.Problem)
		return
	}

	c.JSON(http.StatusOK, DeleteResponse{Message: "Wallet deleted"})
}

// walletIdParam parses the path identifier. A string that is not a UUID
// cannot match any record, so it is reported as not found rather than
// handed to the store.
func walletIdParam(c *gin.Context) (string, bool) {
	id, parseErr := uuid.Parse(c.Param("id"))
	if parseErr != nil {
		c.JSON(http.StatusNotFound, reject.NotFoundProblem())
		return "", false
	}
	return id.String(), true
}
