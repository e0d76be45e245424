package routes

import (
	"net/http"

	"github.com/catatancerdas/collab-backend/internal/setup/adapters"
	"github.com/catatancerdas/collab-backend/internal/setup/factory"
	"github.com/catatancerdas/collab-backend/internal/setup/middlewares"
)

func WorkspaceRoutes(server *http.ServeMux, s *factory.Services) {
	server.Handle("POST /workspace", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateWorkspaceController(s)),
	))

	server.Handle("GET /workspace", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetWorkspacesController(s)),
	))

	server.Handle("GET /workspace/{workspaceId}", middlewares.VerifyAccessToken(
		middlewares.IsMember(
			adapters.AdaptRoute(factory.MakeGetWorkspaceByIdController(s)),
			s.Db,
		),
	))

	server.Handle("PUT /workspace/{workspaceId}", middlewares.VerifyAccessToken(
		middlewares.IsMember(
			adapters.AdaptRoute(factory.MakeUpdateWorkspaceController(s)),
			s.Db,
		),
	))

	server.Handle("DELETE /workspace/{workspaceId}", middlewares.VerifyAccessToken(
		middlewares.IsMember(
			adapters.AdaptRoute(factory.MakeDeleteWorkspaceController(s)),
			s.Db,
		),
	))
}
