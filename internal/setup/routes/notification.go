package routes

import (
	"net/http"

	"github.com/catatancerdas/collab-backend/internal/setup/adapters"
	"github.com/catatancerdas/collab-backend/internal/setup/factory"
	"github.com/catatancerdas/collab-backend/internal/setup/middlewares"
)

func NotificationRoutes(server *http.ServeMux, s *factory.Services) {
	server.Handle("GET /notification", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetNotificationsController(s)),
	))

	server.Handle("PUT /notification/read-all", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeMarkAllNotificationsReadController(s)),
	))

	server.Handle("PUT /notification/{notificationId}/read", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeMarkNotificationReadController(s)),
	))
}
