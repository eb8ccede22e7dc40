package verification

import "time"

// Purpose tags what a verification code authorizes.
type Purpose string

const (
	PurposeRegister      Purpose = "register"
	PurposePasswordReset Purpose = "passwordReset"
)

// Code is a single-use, expiring opaque token tied to a user and a purpose.
type Code struct {
	ID        string
	UserID    string
	Purpose   Purpose
	Code      string
	IsUsed    bool
	UsedAt    *time.Time
	CreatedAt time.Time
	ExpiresAt time.Time
}
