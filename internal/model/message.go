package model

import (
	"time"

	"github.com/google/uuid"
)

// MessageStatus is the delivery state of a composed notification. Transport
// is out of scope; "sent" means the share link was produced and handed to
// the caller.
type MessageStatus string

const (
	MessagePending MessageStatus = "pending"
	MessageSent    MessageStatus = "sent"
	MessageFailed  MessageStatus = "failed"
)

// WhatsAppMessage records a composed status notification for an order.
type WhatsAppMessage struct {
	ID         uuid.UUID     `json:"id" db:"id"`
	OrderID    uuid.UUID     `json:"orderId" db:"order_id"`
	CustomerID uuid.UUID     `json:"customerId" db:"customer_id"`
	Body       string        `json:"body" db:"body"`
	ShareLink  string        `json:"shareLink" db:"share_link"`
	Status     MessageStatus `json:"status" db:"status"`
	CreatedAt  time.Time     `json:"createdAt" db:"created_at"`
}
