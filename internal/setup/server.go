package setup

import (
	"net/http"
	"os"

	"github.com/catatancerdas/collab-backend/internal/infra/ai"
	"github.com/catatancerdas/collab-backend/internal/infra/calendar"
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/helpers"
	"github.com/catatancerdas/collab-backend/internal/infra/mail"
	"github.com/catatancerdas/collab-backend/internal/infra/realtime"
	"github.com/catatancerdas/collab-backend/internal/setup/config"
	"github.com/catatancerdas/collab-backend/internal/setup/factory"
)

func Server() *http.ServeMux {
	mux := http.NewServeMux()

	db := helpers.MongoHelper(os.Getenv("MONGO_URI"), os.Getenv("MONGO_DB"))

	redisURL := os.Getenv("REDIS_URL")
	publisher := realtime.NewPublisher(helpers.RedisHelper(redisURL))

	services := &factory.Services{
		Db:        db,
		Publisher: publisher,
		Calendar:  calendar.NewClient(os.Getenv("CALENDAR_API_URL"), os.Getenv("CALENDAR_API_KEY")),
		Mailer:    mail.NewMailer(os.Getenv("MAIL_API_URL"), os.Getenv("MAIL_API_KEY")),
		Templates: ai.NewTemplateGenerator(os.Getenv("OPENAI_API_KEY")),
		RedisURL:  redisURL,
	}

	config.SetupRoutes(mux, services)

	return mux
}
