package repository

import (
	"context"
	"fmt"

	"printshop/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// messageRepository implements the MessageRepository interface using
// PostgreSQL.
type messageRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewMessageRepository creates a new PostgreSQL-backed message repository.
func NewMessageRepository(pool *pgxpool.Pool, logger zerolog.Logger) MessageRepository {
	return &messageRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "message").Logger(),
	}
}

func (r *messageRepository) Create(ctx context.Context, msg *model.WhatsAppMessage) error {
	query := `
		INSERT INTO whatsapp_messages (id, order_id, customer_id, body, share_link, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		msg.ID, msg.OrderID, msg.CustomerID, msg.Body, msg.ShareLink, msg.Status, msg.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", msg.OrderID.String()).Msg("failed to create message")
		return fmt.Errorf("failed to create message: %w", err)
	}

	r.logger.Debug().Str("message_id", msg.ID.String()).Msg("message recorded")
	return nil
}

func (r *messageRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]model.WhatsAppMessage, error) {
	query := `
		SELECT id, order_id, customer_id, body, share_link, status, created_at
		FROM whatsapp_messages
		WHERE order_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to query messages")
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	var messages []model.WhatsAppMessage
	for rows.Next() {
		var m model.WhatsAppMessage
		if err := rows.Scan(&m.ID, &m.OrderID, &m.CustomerID, &m.Body, &m.ShareLink, &m.Status, &m.CreatedAt); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan message row")
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating message rows")
		return nil, fmt.Errorf("error iterating messages: %w", err)
	}

	return messages, nil
}

func (r *messageRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.MessageStatus) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE whatsapp_messages SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		r.logger.Error().Err(err).Str("message_id", id.String()).Msg("failed to update message status")
		return fmt.Errorf("failed to update message status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("message %s not found", id)
	}
	return nil
}
