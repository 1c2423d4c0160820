package registration

import (
	"net/http"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shieldpay-labs/shieldpay-backend/internal/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func openTestDb(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// One connection: every pooled connection would otherwise get its
	// own empty in-memory database.
	sqlDb, err := db.DB()
	require.NoError(t, err)
	sqlDb.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Wallet{}))
	return db
}

func TestRegister_StoresHashNotPlaintext(t *testing.T) {
	svc := &registrationService{db: openTestDb(t)}

	user, problem := svc.register("a@x.com", "secret1")
	require.Nil(t, problem)
	require.NotEmpty(t, user.Id)
	assert.Equal(t, "a@x.com", user.Email)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")))
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	svc := &registrationService{db: openTestDb(t)}

	_, problem := svc.register("a@x.com", "secret1")
	require.Nil(t, problem)

	_, problem = svc.register("a@x.com", "another1")
	require.NotNil(t, problem)
	assert.Equal(t, http.StatusBadRequest, problem.Problem.Status)
	assert.Equal(t, emailConflict, problem.Problem.Code)
	assert.ErrorIs(t, problem.Cause, gorm.ErrDuplicatedKey)
}

func TestRegister_DistinctUsersGetDistinctIds(t *testing.T) {
	svc := &registrationService{db: openTestDb(t)}

	first, problem := svc.register("a@x.com", "secret1")
	require.Nil(t, problem)
	second, problem := svc.register("b@x.com", "secret2")
	require.Nil(t, problem)

	assert.NotEqual(t, first.Id, second.Id)
}
