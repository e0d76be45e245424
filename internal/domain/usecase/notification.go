package usecase

import (
	"github.com/catatancerdas/collab-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateNotificationRepository defines the interface for creating notifications
type CreateNotificationRepository interface {
	Create(notification *models.Notification) (*models.Notification, error)
}

// FindNotificationsByUserRepository defines the interface for listing a user's notifications
type FindNotificationsByUserRepository interface {
	FindByUser(userId primitive.ObjectID, unreadOnly bool) ([]models.Notification, error)
}

// MarkNotificationReadRepository defines the interface for marking a notification read
type MarkNotificationReadRepository interface {
	MarkRead(notificationId primitive.ObjectID, userId primitive.ObjectID) error
}

// MarkAllNotificationsReadRepository defines the interface for marking all of a user's notifications read
type MarkAllNotificationsReadRepository interface {
	MarkAllRead(userId primitive.ObjectID) error
}
