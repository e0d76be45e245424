package config

import (
	"net/http"

	"github.com/catatancerdas/collab-backend/internal/setup/factory"
	"github.com/catatancerdas/collab-backend/internal/setup/routes"
)

func SetupRoutes(server *http.ServeMux, services *factory.Services) {
	apiServer := http.NewServeMux()
	routes.WorkspaceRoutes(apiServer, services)
	routes.MemberRoutes(apiServer, services)
	routes.InvitationRoutes(apiServer, services)
	routes.DocumentRoutes(apiServer, services)
	routes.MeetingRoutes(apiServer, services)
	routes.NotificationRoutes(apiServer, services)
	routes.ExportRoutes(apiServer, services)

	server.Handle("/api/", http.StripPrefix("/api", apiServer))
}
