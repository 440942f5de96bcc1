// Package model contains the document shapes stored in the orders, menu and users collections.
// The same struct serves the in-memory docstore and Firestore, so every field carries both tags.
package model

import (
	"time"

	"canteen/internal/domain/entity"
)

// OrderDocument is a document of the orders collection.
type OrderDocument struct {
	ID            string    `docstore:"id" firestore:"-"`
	ItemID        string    `docstore:"itemId" firestore:"itemId"`
	Name          string    `docstore:"name" firestore:"name"`
	Price         float64   `docstore:"price" firestore:"price"`
	UserID        string    `docstore:"userId" firestore:"userId"`
	Status        string    `docstore:"status" firestore:"status"`
	PaymentStatus string    `docstore:"paymentStatus" firestore:"paymentStatus"`
	Date          string    `docstore:"date" firestore:"date"`
	CreatedAt     time.Time `docstore:"createdAt" firestore:"createdAt"`
	UpdatedAt     time.Time `docstore:"updatedAt" firestore:"updatedAt"`
}

// FromOrder converts the domain entity to a document.
func FromOrder(o *entity.Order) *OrderDocument {
	return &OrderDocument{
		ID:            o.ID,
		ItemID:        o.ItemID,
		Name:          o.Name,
		Price:         o.Price,
		UserID:        o.UserID,
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		Date:          o.Date,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

// ToOrder converts the document to the domain entity. A missing payment status reads as Pending.
func (d *OrderDocument) ToOrder() *entity.Order {
	payment := entity.PaymentStatus(d.PaymentStatus)
	if payment == "" {
		payment = entity.PaymentPending
	}

	return &entity.Order{
		ID:            d.ID,
		ItemID:        d.ItemID,
		Name:          d.Name,
		Price:         d.Price,
		UserID:        d.UserID,
		Status:        entity.OrderStatus(d.Status),
		PaymentStatus: payment,
		Date:          d.Date,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// OrderPatchFields lists the document fields written by a patch, keyed by field name.
func OrderPatchFields(patch entity.OrderPatch) map[string]any {
	fields := map[string]any{
		"updatedAt": patch.UpdatedAt,
	}
	if patch.Status != nil {
		fields["status"] = string(*patch.Status)
	}
	if patch.PaymentStatus != nil {
		fields["paymentStatus"] = string(*patch.PaymentStatus)
	}

	return fields
}
