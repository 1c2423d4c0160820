package wallet

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shieldpay-labs/shieldpay-backend/internal/auth"
	"github.com/shieldpay-labs/shieldpay-backend/internal/pkg/model"
	"github.com/shieldpay-labs/shieldpay-backend/internal/pkg/utils"
	"github.com/shieldpay-labs/shieldpay-backend/internal/registration"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestApi(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	viper.Set("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDb, err := db.DB()
	require.NoError(t, err)
	sqlDb.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Wallet{}))

	router := gin.New()
	rg := router.Group("")
	registration.RegisterRoutes(rg, db)
	auth.RegisterRoutes(rg, db)
	RegisterRoutes(rg, db)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method string, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		reader = bytes.NewBuffer(utils.JsonEncode(body))
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func registerAndSignIn(t *testing.T, router *gin.Engine, email string) (string, string) {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/users", gin.H{"email": email, "password": "secret1"}, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	created := utils.JsonDecode[registration.RegistrationResponse](rec.Body)
	require.NotEmpty(t, created.Id)
	require.Equal(t, email, created.Email)

	rec = doJSON(t, router, http.MethodPost, "/signin", gin.H{"email": email, "password": "secret1"}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	signedIn := utils.JsonDecode[auth.SignInResponse](rec.Body)
	require.NotEmpty(t, signedIn.Token)

	return created.Id, signedIn.Token
}

func TestWalletLifecycleAcrossUsers(t *testing.T) {
	router := newTestApi(t)

	userId, tokenA := registerAndSignIn(t, router, "a@x.com")

	rec := doJSON(t, router, http.MethodPost, "/wallets", gin.H{"chain": "BTC", "address": "1ABC"}, tokenA)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := utils.JsonDecode[model.Wallet](rec.Body)
	assert.NotEmpty(t, created.Id)
	assert.Equal(t, userId, created.UserId)

	rec = doJSON(t, router, http.MethodGet, "/wallets/"+created.Id, nil, tokenA)
	assert.Equal(t, http.StatusOK, rec.Code)

	// A different, freshly registered user cannot see the wallet.
	_, tokenB := registerAndSignIn(t, router, "b@x.com")
	rec = doJSON(t, router, http.MethodGet, "/wallets/"+created.Id, nil, tokenB)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/wallets", nil, tokenB)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())
}

func TestWalletRoutesRequireToken(t *testing.T) {
	router := newTestApi(t)

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/wallets"},
		{http.MethodPost, "/wallets"},
		{http.MethodGet, "/wallets/some-id"},
		{http.MethodPut, "/wallets/some-id"},
		{http.MethodDelete, "/wallets/some-id"},
	} {
		rec := doJSON(t, router, route.method, route.path, nil, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", route.method, route.path)
	}
}

func TestCreateWallet_Validation(t *testing.T) {
	router := newTestApi(t)
	_, token := registerAndSignIn(t, router, "a@x.com")

	rec := doJSON(t, router, http.MethodPost, "/wallets", gin.H{"chain": "", "address": ""}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "chain")
	assert.Contains(t, rec.Body.String(), "address")
}

func TestSignIn_FailureShapeIsUniform(t *testing.T) {
	router := newTestApi(t)
	registerAndSignIn(t, router, "a@x.com")

	wrongPassword := doJSON(t, router, http.MethodPost, "/signin", gin.H{"email": "a@x.com", "password": "wrong-1"}, "")
	unknownEmail := doJSON(t, router, http.MethodPost, "/signin", gin.H{"email": "nobody@x.com", "password": "secret1"}, "")

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestRegister_NeverReturnsPasswordMaterial(t *testing.T) {
	router := newTestApi(t)

	rec := doJSON(t, router, http.MethodPost, "/users", gin.H{"email": "a@x.com", "password": "secret1"}, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret1")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestSignOut_AlwaysSucceeds(t *testing.T) {
	router := newTestApi(t)

	rec := doJSON(t, router, http.MethodPost, "/signout", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "message")
}
