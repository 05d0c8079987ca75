package models

import "github.com/google/uuid"

// Order statuses. Only pending orders may be edited or deleted by their owner;
// the remaining states are advanced by pharmacy staff.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Order is a prescription order submitted by a customer.
type Order struct {
	BaseModel
	ReceiverName string    `json:"receiverName"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	FilePath     string    `json:"filePath"`
	Status       string    `gorm:"default:pending" json:"status"`
	CustomerID   uuid.UUID `gorm:"type:uuid;index" json:"userId"`
	Customer     *Customer `json:"customer,omitempty"`
}

// Pending reports whether the order is still editable by its owner.
func (o *Order) Pending() bool {
	return o.Status == OrderStatusPending
}
