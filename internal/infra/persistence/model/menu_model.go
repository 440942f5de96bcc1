package model

import (
	"time"

	"canteen/internal/domain/entity"
)

// MenuItemDocument is a document of the menu collection.
type MenuItemDocument struct {
	ID       string  `docstore:"id" firestore:"-"`
	Name     string  `docstore:"name" firestore:"name"`
	Price    float64 `docstore:"price" firestore:"price"`
	Category string  `docstore:"category" firestore:"category"`
	// Available is a bool or free text depending on who wrote the document.
	Available any       `docstore:"available" firestore:"available"`
	Image     string    `docstore:"image" firestore:"image,omitempty"`
	CreatedAt time.Time `docstore:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `docstore:"updatedAt" firestore:"updatedAt"`
}

// FromMenuItem converts the domain entity to a document.
func FromMenuItem(m *entity.MenuItem) *MenuItemDocument {
	return &MenuItemDocument{
		ID:        m.ID,
		Name:      m.Name,
		Price:     m.Price,
		Category:  m.Category,
		Available: m.Available,
		Image:     m.Image,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToMenuItem converts the document to the domain entity. A missing or unknown
// category reads as "Other".
func (d *MenuItemDocument) ToMenuItem() *entity.MenuItem {
	return &entity.MenuItem{
		ID:        d.ID,
		Name:      d.Name,
		Price:     d.Price,
		Category:  entity.NormalizeCategory(d.Category),
		Available: d.Available,
		Image:     d.Image,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
