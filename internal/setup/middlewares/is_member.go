package middlewares

import (
	"net/http"

	"github.com/catatancerdas/collab-backend/internal/domain/models"
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// IsMember gates workspace-scoped routes: the authenticated user must appear
// in the workspace's members array. Finer role checks stay in the controllers.
func IsMember(next http.Handler, db *mongo.Database) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		workspaceObjectID, err := primitive.ObjectIDFromHex(r.PathValue("workspaceId"))
		if err != nil {
			http.Error(w, "Invalid workspace ID", http.StatusBadRequest)
			return
		}

		userObjectID, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
		if err != nil {
			http.Error(w, "Invalid user ID", http.StatusBadRequest)
			return
		}

		collection := db.Collection("workspaces")
		result := collection.FindOne(helpers.Ctx, bson.M{"_id": workspaceObjectID})
		if result.Err() != nil {
			http.Error(w, "Workspace not found", http.StatusNotFound)
			return
		}

		var workspace models.Workspace
		if err := result.Decode(&workspace); err != nil {
			http.Error(w, "Error decoding workspace", http.StatusInternalServerError)
			return
		}

		if workspace.FindMember(userObjectID) == nil {
			http.Error(w, "You are not a member of this workspace", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
