package usecase

import (
	"context"

	"canteen/internal/domain/entity"
)

// ProvisionProfileInput represents an admin-created profile awaiting self-registration
type ProvisionProfileInput struct {
	Email      string `json:"email" validate:"required,email"`
	Role       string `json:"role" validate:"required,oneof=employee vendor admin"`
	EmployeeID string `json:"employee_id,omitempty" validate:"omitempty,max=64"`
	VendorID   string `json:"vendor_id,omitempty" validate:"omitempty,max=64"`
}

// ProfileUsecase defines the admin profile management use cases
type ProfileUsecase interface {
	// Provision creates an unbound profile
	Provision(ctx context.Context, actor entity.Actor, input *ProvisionProfileInput) (*entity.UserProfile, error)

	// List returns every profile
	List(ctx context.Context, actor entity.Actor) ([]*entity.UserProfile, error)
}
