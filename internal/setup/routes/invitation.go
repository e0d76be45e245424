package routes

import (
	"net/http"

	"github.com/catatancerdas/collab-backend/internal/setup/adapters"
	"github.com/catatancerdas/collab-backend/internal/setup/factory"
	"github.com/catatancerdas/collab-backend/internal/setup/middlewares"
)

func InvitationRoutes(server *http.ServeMux, s *factory.Services) {
	server.Handle("POST /workspace/{workspaceId}/invitation", middlewares.VerifyAccessToken(
		middlewares.IsMember(
			adapters.AdaptRoute(factory.MakeCreateInvitationController(s)),
			s.Db,
		),
	))

	server.Handle("GET /workspace/{workspaceId}/invitation", middlewares.VerifyAccessToken(
		middlewares.IsMember(
			adapters.AdaptRoute(factory.MakeListInvitationsController(s)),
			s.Db,
		),
	))

	server.Handle("DELETE /workspace/{workspaceId}/invitation/{invitationId}", middlewares.VerifyAccessToken(
		middlewares.IsMember(
			adapters.AdaptRoute(factory.MakeRevokeInvitationController(s)),
			s.Db,
		),
	))

	// Accepting happens before membership exists, so only authentication gates it.
	server.Handle("POST /invitation/{invitationId}/accept", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeAcceptInvitationController(s)),
	))
}
