package usecase

import (
	"github.com/catatancerdas/collab-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FindUserByIdRepository defines the interface for retrieving a user profile by id
type FindUserByIdRepository interface {
	Find(userId primitive.ObjectID) (*models.User, error)
}

// FindUserByEmailRepository defines the interface for retrieving a user profile by email
type FindUserByEmailRepository interface {
	FindByEmail(email string) (*models.User, error)
}
