package wallet

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shieldpay-labs/shieldpay-backend/internal/pkg/model"
	"github.com/shieldpay-labs/shieldpay-backend/internal/pkg/reject"
	"gorm.io/gorm"
)

const addressConflict string = "error.wallet.conflict"

// walletService is the ownership-scoped wallet store. Every query is
// bound to the owner id resolved by the auth middleware; a wallet that
// belongs to someone else is indistinguishable from one that does not
// exist.
type walletService struct {
	db *gorm.DB
}

func (s *walletService) findAll(ownerId string) ([]model.Wallet, *reject.ProblemWithTrace) {
	wallets := []model.Wallet{}
	result := s.db.
		Where("user_id = ?", ownerId).
		Find(&wallets)

	if result.Error != nil {
		return nil, &reject.ProblemWithTrace{
			Problem: reject.UnexpectedProblem(result.Error),
			Cause:   result.Error,
		}
	}

	return wallets, nil
}

// create inserts the wallet and leaves global address uniqueness to the
// store's constraint, so concurrent creates of the same address resolve
// to exactly one winner.
func (s *walletService) create(ownerId string, body WalletRequest) (*model.Wallet, *reject.ProblemWithTrace) {
	wallet := model.Wallet{
		Id:      uuid.NewString(),
		UserId:  ownerId,
		Tag:     body.Tag,
		Chain:   body.Chain,
		Address: body.Address,
	}

	result := s.db.Create(&wallet)
	if result.Error != nil {
		return nil, walletWriteProblem("Could not create wallet", result.Error)
	}

	return &wallet, nil
}

func (s *walletService) findById(ownerId string, id string) (*model.Wallet, *reject.ProblemWithTrace) {
	var wallet model.Wallet
	result := s.db.
		Where("id = ? AND user_id = ?", id, ownerId).
		First(&wallet)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, notFound(result.Error)
		}
		return nil, &reject.ProblemWithTrace{
			Problem: reject.UnexpectedProblem(result.Error),
			Cause:   result.Error,
		}
	}

	return &wallet, nil
}

func (s *walletService) update(ownerId string, id string, body WalletRequest) (*model.Wallet, *reject.ProblemWithTrace) {
	wallet, problem := s.findById(ownerId, id)
	if problem != nil {
		return nil, problem
	}

	wallet.Tag = body.Tag
	wallet.Chain = body.Chain
	wallet.Address = body.Address

	result := s.db.Save(wallet)
	if result.Error != nil {
		return nil, walletWriteProblem("Could not update wallet", result.Error)
	}

	return wallet, nil
}

func (s *walletService) delete(ownerId string, id string) *reject.ProblemWithTrace {
	result := s.db.
		Where("id = ? AND user_id = ?", id, ownerId).
		Delete(&model.Wallet{})

	if result.Error != nil {
		return &reject.ProblemWithTrace{
			Problem: reject.UnexpectedProblem(result.Error),
			Cause:   result.Error,
		}
	}
	if result.RowsAffected == 0 {
		return notFound(gorm.ErrRecordNotFound)
	}

	return nil
}

func walletWriteProblem(title string, err error) *reject.ProblemWithTrace {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &reject.ProblemWithTrace{
			Problem: reject.ConflictProblem(title, addressConflict, "address already exists"),
			Cause:   err,
		}
	}
	return &reject.ProblemWithTrace{
		Problem: reject.UnexpectedProblem(err),
		Cause:   err,
	}
}

func notFound(cause error) *reject.ProblemWithTrace {
	return &reject.ProblemWithTrace{
		Problem: reject.NotFoundProblem(),
		Cause:   cause,
	}
}
