package model

import (
	"time"

	"canteen/internal/domain/entity"
)

// ProfileDocument is a document of the users collection.
type ProfileDocument struct {
	ID         string    `docstore:"id" firestore:"-"`
	Role       string    `docstore:"role" firestore:"role"`
	EmployeeID string    `docstore:"employeeId" firestore:"employeeId,omitempty"`
	VendorID   string    `docstore:"vendorId" firestore:"vendorId,omitempty"`
	Email      string    `docstore:"email" firestore:"email"`
	UID        string    `docstore:"uid" firestore:"uid"`
	CreatedAt  time.Time `docstore:"createdAt" firestore:"createdAt"`
	UpdatedAt  time.Time `docstore:"updatedAt" firestore:"updatedAt"`
}

// FromProfile converts the domain entity to a document.
func FromProfile(p *entity.UserProfile) *ProfileDocument {
	return &ProfileDocument{
		ID:         p.ID,
		Role:       string(p.Role),
		EmployeeID: p.EmployeeID,
		VendorID:   p.VendorID,
		Email:      p.Email,
		UID:        p.UID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// ToProfile converts the document to the domain entity. A missing role reads as employee.
func (d *ProfileDocument) ToProfile() *entity.UserProfile {
	return &entity.UserProfile{
		ID:         d.ID,
		Role:       entity.ParseRole(d.Role),
		EmployeeID: d.EmployeeID,
		VendorID:   d.VendorID,
		Email:      d.Email,
		UID:        d.UID,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}
