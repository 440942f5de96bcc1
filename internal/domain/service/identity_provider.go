package service

import (
	"context"
	"time"

	"canteen/internal/domain/entity"
)

// Session is the result of a password sign-in.
type Session struct {
	IDToken   string           `json:"id_token"`
	ExpiresAt time.Time        `json:"expires_at"`
	Principal entity.Principal `json:"principal"`
}

// IdentityProvider supplies the signed-in principal and account operations.
type IdentityProvider interface {
	// VerifyIDToken validates a bearer ID token and returns the principal it names.
	VerifyIDToken(ctx context.Context, idToken string) (*entity.Principal, error)

	// SignUp creates an account.
	SignUp(ctx context.Context, email, password string) (*entity.Principal, error)

	// SignIn exchanges credentials for an ID token. Providers whose clients sign in
	// directly return domainerrors.ErrUnsupported.
	SignIn(ctx context.Context, email, password string) (*Session, error)

	// SignOut revokes every token issued to uid so far.
	SignOut(ctx context.Context, uid string) error
}
