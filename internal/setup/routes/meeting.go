package routes

import (
	"net/http"

	"github.com/catatancerdas/collab-backend/internal/setup/adapters"
	"github.com/catatancerdas/collab-backend/internal/setup/factory"
	"github.com/catatancerdas/collab-backend/internal/setup/middlewares"
)

func MeetingRoutes(server *http.ServeMux, s *factory.Services) {
	server.Handle("POST /workspace/{workspaceId}/meeting", middlewares.VerifyAccessToken(
		middlewares.IsMember(
			adapters.AdaptRoute(factory.MakeCreateMeetingController(s)),
			s.Db,
		),
	))

	server.Handle("GET /workspace/{workspaceId}/meeting", middlewares.VerifyAccessToken(
		middlewares.IsMember(
			adapters.AdaptRoute(factory.MakeGetMeetingsController(s)),
			s.Db,
		),
	))

	server.Handle("PUT /workspace/{workspaceId}/meeting/{meetingId}", middlewares.VerifyAccessToken(
		middlewares.IsMember(
			adapters.AdaptRoute(factory.MakeUpdateMeetingController(s)),
			s.Db,
		),
	))

	server.Handle("DELETE /workspace/{workspaceId}/meeting/{meetingId}", middlewares.VerifyAccessToken(
		middlewares.IsMember(
			adapters.AdaptRoute(factory.MakeDeleteMeetingController(s)),
			s.Db,
		),
	))
}
