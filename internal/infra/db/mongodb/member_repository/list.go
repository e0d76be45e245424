package member_repository

import (
	"context"

	"github.com/catatancerdas/collab-backend/internal/domain/models"
	"github.com/catatancerdas/collab-backend/internal/domain/usecase"
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ListMembersRepository joins the workspace member array with the users
// collection to return displayable member entries.
type ListMembersRepository struct {
	Db *mongo.Database
}

func NewListMembersRepository(db *mongo.Database) *ListMembersRepository {
	return &ListMembersRepository{Db: db}
}

func (r *ListMembersRepository) List(workspaceId primitive.ObjectID) ([]usecase.MemberWithUser, error) {
	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var workspace models.Workspace
	err := r.Db.Collection("workspaces").FindOne(ctx, bson.M{"_id": workspaceId}).Decode(&workspace)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(workspace.Members))
	for _, member := range workspace.Members {
		ids = append(ids, member.MemberId)
	}

	cursor, err := r.Db.Collection("users").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	usersById := map[primitive.ObjectID]models.User{}
	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	for _, user := range users {
		usersById[user.Id] = user
	}

	members := make([]usecase.MemberWithUser, 0, len(workspace.Members))
	for _, member := range workspace.Members {
		entry := usecase.MemberWithUser{Member: member}
		if user, ok := usersById[member.MemberId]; ok {
			entry.Name = user.Name
			entry.Email = user.Email
			entry.Image = user.Image
		}
		members = append(members, entry)
	}

	return members, nil
}
