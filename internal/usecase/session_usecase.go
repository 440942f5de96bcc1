package usecase

import (
	"context"

	"canteen/internal/domain/entity"
	"canteen/internal/domain/service"
)

// CredentialsInput represents email and password credentials
type CredentialsInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// SessionUsecase defines the identity use cases
type SessionUsecase interface {
	// SignUp creates an account and links it to a provisioned profile with the same
	// email, or to a new employee profile when none exists
	SignUp(ctx context.Context, input *CredentialsInput) (*entity.Actor, error)

	// SignIn exchanges credentials for an ID token
	SignIn(ctx context.Context, input *CredentialsInput) (*service.Session, error)

	// SignOut revokes the caller's tokens
	SignOut(ctx context.Context, actor entity.Actor) error

	// Resolve verifies an ID token and resolves the caller's profile, role and user key
	Resolve(ctx context.Context, idToken string) (*entity.Actor, error)
}
