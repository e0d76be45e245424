package factory

import (
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/workspace_repository"
	controllers "github.com/catatancerdas/collab-backend/internal/presentation/controllers/workspace"
)

func MakeCreateWorkspaceController(s *Services) *controllers.CreateWorkspaceController {
	createWorkspaceRepository := workspace_repository.NewCreateWorkspaceRepository(s.Db)

	return controllers.NewCreateWorkspaceController(createWorkspaceRepository)
}

func MakeGetWorkspacesController(s *Services) *controllers.GetWorkspacesController {
	findWorkspacesByMemberRepository := workspace_repository.NewFindWorkspacesByMemberRepository(s.Db)

	return controllers.NewGetWorkspacesController(findWorkspacesByMemberRepository)
}

func MakeGetWorkspaceByIdController(s *Services) *controllers.GetWorkspaceByIdController {
	findWorkspaceByIdRepository := workspace_repository.NewFindWorkspaceByIdRepository(s.Db)

	return controllers.NewGetWorkspaceByIdController(findWorkspaceByIdRepository)
}

func MakeUpdateWorkspaceController(s *Services) *controllers.UpdateWorkspaceController {
	findWorkspaceByIdRepository := workspace_repository.NewFindWorkspaceByIdRepository(s.Db)
	updateWorkspaceRepository := workspace_repository.NewUpdateWorkspaceRepository(s.Db)

	return controllers.NewUpdateWorkspaceController(findWorkspaceByIdRepository, updateWorkspaceRepository, s.Publisher)
}

func MakeDeleteWorkspaceController(s *Services) *controllers.DeleteWorkspaceController {
	findWorkspaceByIdRepository := workspace_repository.NewFindWorkspaceByIdRepository(s.Db)
	deleteWorkspaceRepository := workspace_repository.NewDeleteWorkspaceRepository(s.Db)

	return controllers.NewDeleteWorkspaceController(findWorkspaceByIdRepository, deleteWorkspaceRepository, s.Publisher)
}
