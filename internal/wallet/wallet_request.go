package wallet

import (
	"strings"

	"github.com/shieldpay-labs/shieldpay-backend/internal/pkg/reject"
)

type WalletRequest struct {
	Tag     string `json:"tag"`
	Chain   string `json:"chain"`
	Address string `json:"address"`
}

func (r WalletRequest) validate() []reject.ProblemDetail {
	var violations []reject.ProblemDetail

	if strings.TrimSpace(r.Chain) == "" {
		violations = append(violations, reject.ProblemDetail{
			Property: "chain",
			Info:     "must not be empty",
			Code:     "error.validation.required",
		})
	}

	if strings.TrimSpace(r.Address) == "" {
		violations = append(violations, reject.ProblemDetail{
			Property: "address",
			Info:     "must not be empty",
			Code:     "error.validation.required",
		})
	}

	return violations
}
