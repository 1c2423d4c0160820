package auth

import (
	"errors"
	"net/http"

	"github.com/shieldpay-labs/shieldpay-backend/internal/pkg/model"
	"github.com/shieldpay-labs/shieldpay-backend/internal/pkg/reject"
	"github.com/shieldpay-labs/shieldpay-backend/internal/pkg/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const invalidCredentials string = "error.credentials.invalid"

type authService struct {
	db        *gorm.DB
	jwtSecret []byte
}

// signIn verifies the credentials and mints a bearer token. An unknown
// email and a wrong password produce the same problem so callers cannot
// enumerate registered accounts.
func (s *authService) signIn(email string, password string) (string, *reject.ProblemWithTrace) {
	var user model.User
	result := s.db.Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", invalidCredentialsProblem(result.Error)
		}
		return "", &reject.ProblemWithTrace{
			Problem: reject.UnexpectedProblem(result.Error),
			Cause:   result.Error,
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", invalidCredentialsProblem(err)
	}

	signed, err := token.Issue(user.Id, s.jwtSecret)
	if err != nil {
		return "", &reject.ProblemWithTrace{
			Problem: reject.UnexpectedProblem(err),
			Cause:   err,
		}
	}

	return signed, nil
}

func invalidCredentialsProblem(cause error) *reject.ProblemWithTrace {
	return &reject.ProblemWithTrace{
		Problem: reject.NewProblem().
			WithTitle("Invalid credentials").
			WithStatus(http.StatusUnauthorized).
			WithCode(invalidCredentials).
			Build(),
		Cause: cause,
	}
}
