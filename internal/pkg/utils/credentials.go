package utils

import (
	"net/mail"

	"github.com/shieldpay-labs/shieldpay-backend/internal/pkg/reject"
)

const minPasswordLength = 6

// ValidateCredentials checks the email/password pair shared by the
// registration and sign-in payloads. It returns one violation per bad
// field so a single response can list everything that is wrong.
func ValidateCredentials(email string, password string) []reject.ProblemDetail {
	var violations []reject.ProblemDetail

	if _, err := mail.ParseAddress(email); err != nil {
		violations = append(violations, reject.ProblemDetail{
			Property: "email",
			Info:     "must be a valid email address",
			Code:     "error.validation.email",
		})
	}

	if len(password) < minPasswordLength {
		violations = append(violations, reject.ProblemDetail{
			Property: "password",
			Info:     "must be at least 6 characters long",
			Code:     "error.validation.password-length",
		})
	}

	return violations
}
