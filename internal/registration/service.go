package registration

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shieldpay-labs/shieldpay-backend/internal/pkg/model"
	"github.com/shieldpay-labs/shieldpay-backend/internal/pkg/reject"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const emailConflict string = "error.user.conflict"

type registrationService struct {
	db *gorm.DB
}

// register hashes the password and inserts the user in one shot. Email
// uniqueness is left to the store's unique constraint so two concurrent
// registrations of the same address cannot both succeed.
func (s *registrationService) register(email string, password string) (*model.User, *reject.ProblemWithTrace) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, &reject.ProblemWithTrace{
			Problem: reject.UnexpectedProblem(err),
			Cause:   err,
		}
	}

	user := model.User{
		Id:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}

	result := s.db.Create(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, &reject.ProblemWithTrace{
				Problem: reject.ConflictProblem(
					"Could not create user",
					emailConflict,
					"email already exists"),
				Cause: result.Error,
			}
		}
		return nil, &reject.ProblemWithTrace{
			Problem: reject.UnexpectedProblem(result.Error),
			Cause:   result.Error,
		}
	}

	return &user, nil
}
