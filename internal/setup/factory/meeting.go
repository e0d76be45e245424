package factory

import (
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/meeting_repository"
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/notification_repository"
	controllers "github.com/catatancerdas/collab-backend/internal/presentation/controllers/meeting"
)

func MakeCreateMeetingController(s *Services) *controllers.CreateMeetingController {
	createMeetingRepository := meeting_repository.NewCreateMeetingRepository(s.Db)
	createNotificationRepository := notification_repository.NewCreateNotificationRepository(s.Db)

	return controllers.NewCreateMeetingController(
		createMeetingRepository,
		createNotificationRepository,
		s.Calendar,
		s.Publisher,
	)
}

func MakeGetMeetingsController(s *Services) *controllers.GetMeetingsController {
	findMeetingsRepository := meeting_repository.NewFindMeetingsRepository(s.Db)

	return controllers.NewGetMeetingsController(findMeetingsRepository)
}

func MakeUpdateMeetingController(s *Services) *controllers.UpdateMeetingController {
	findMeetingByIdRepository := meeting_repository.NewFindMeetingByIdRepository(s.Db)
	updateMeetingRepository := meeting_repository.NewUpdateMeetingRepository(s.Db)

	return controllers.NewUpdateMeetingController(
		findMeetingByIdRepository,
		updateMeetingRepository,
		s.Calendar,
		s.Publisher,
	)
}

func MakeDeleteMeetingController(s *Services) *controllers.DeleteMeetingController {
	findMeetingByIdRepository := meeting_repository.NewFindMeetingByIdRepository(s.Db)
	deleteMeetingRepository := meeting_repository.NewDeleteMeetingRepository(s.Db)

	return controllers.NewDeleteMeetingController(
		findMeetingByIdRepository,
		deleteMeetingRepository,
		s.Calendar,
		s.Publisher,
	)
}
