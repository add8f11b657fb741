package repository

import (
	"context"

	"github.com/diillson/aws-cost-alert-go/internal/domain/entity"
)

// NotifierRepository delivers alert messages to a topic.
type NotifierRepository interface {
	// Publish sends the message and returns the provider message id.
	Publish(ctx context.Context, topic string, message entity.AlertMessage) (string, error)
}
