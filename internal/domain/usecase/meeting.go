package usecase

import (
	"time"

	"github.com/catatancerdas/collab-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateMeetingRepository defines the interface for creating meetings
type CreateMeetingRepository interface {
	Create(meeting *models.Meeting) (*models.Meeting, error)
}

// FindMeetingByIdRepository defines the interface for retrieving a single meeting
type FindMeetingByIdRepository interface {
	Find(meetingId primitive.ObjectID, workspaceId primitive.ObjectID) (*models.Meeting, error)
}

// FindMeetingsRepository defines the interface for listing meetings in a time range
type FindMeetingsRepository interface {
	Find(workspaceId primitive.ObjectID, from time.Time, to time.Time) ([]models.Meeting, error)
}

// UpdateMeetingRepository defines the interface for updating meetings
type UpdateMeetingRepository interface {
	Update(meetingId primitive.ObjectID, meeting *models.Meeting) (*models.Meeting, error)
}

// DeleteMeetingRepository defines the interface for deleting meetings
type DeleteMeetingRepository interface {
	Delete(meetingId primitive.ObjectID, workspaceId primitive.ObjectID) error
}
