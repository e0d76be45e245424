package factory

import (
	"github.com/catatancerdas/collab-backend/internal/domain/usecase"
	"go.mongodb.org/mongo-driver/mongo"
)

// Services holds the shared infrastructure handed to the factories.
type Services struct {
	Db        *mongo.Database
	Publisher usecase.EventPublisher
	Calendar  usecase.CalendarGateway
	Mailer    usecase.InvitationMailer
	Templates usecase.TemplateGenerator
	RedisURL  string
}
