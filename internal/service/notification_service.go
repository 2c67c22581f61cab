package service

import (
	"context"
	"fmt"
	"time"

	"printshop/internal/model"
	"printshop/internal/repository"
	"printshop/internal/whatsapp"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// notificationService implements NotificationService.
type notificationService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	messageRepo  repository.MessageRepository
	logger       zerolog.Logger
}

// NewNotificationService creates a new notification service.
func NewNotificationService(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	messageRepo repository.MessageRepository,
	logger zerolog.Logger,
) NotificationService {
	return &notificationService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		messageRepo:  messageRepo,
		logger:       logger.With().Str("service", "notification").Logger(),
	}
}

// Send composes the current status message for an order, records it, and
// returns the record carrying the wa.me share link. Delivery is the
// caller's business; producing the link counts as sent.
func (s *notificationService) Send(ctx context.Context, orderID uuid.UUID) (*model.WhatsAppMessage, error) {
	order, prints, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to compose notification: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	customer, err := s.customerRepo.GetByID(ctx, order.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to compose notification: %w", err)
	}
	if customer == nil {
		return nil, model.ErrCustomerNotFound
	}

	body := whatsapp.ComposeStatusMessage(*order, *customer, prints)
	link := whatsapp.BuildShareLink(body, customer.Phone)

	msg := &model.WhatsAppMessage{
		ID:         uuid.New(),
		OrderID:    order.ID,
		CustomerID: customer.ID,
		Body:       body,
		ShareLink:  link,
		Status:     model.MessagePending,
		CreatedAt:  time.Now(),
	}

	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to record notification: %w", err)
	}

	if err := s.messageRepo.UpdateStatus(ctx, msg.ID, model.MessageSent); err != nil {
		// The link is already composed; a failed status flip is logged and
		// the record stays pending.
		s.logger.Error().Err(err).Str("message_id", msg.ID.String()).Msg("failed to mark message sent")
	} else {
		msg.Status = model.MessageSent
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("message_id", msg.ID.String()).
		Msg("notification composed")

	return msg, nil
}

func (s *notificationService) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]model.WhatsAppMessage, error) {
	messages, err := s.messageRepo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return messages, nil
}
