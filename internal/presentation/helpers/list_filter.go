package helpers

import (
	"net/http"
	"net/url"

	"github.com/catatancerdas/collab-backend/internal/domain/usecase"
	presentationProtocols "github.com/catatancerdas/collab-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetDocumentFilterByQueries builds the document list filter from the query
// string, answering a ready error response on bad input.
func GetDocumentFilterByQueries(urlQueries *url.Values, workspaceId primitive.ObjectID) (*usecase.DocumentFilter, *presentationProtocols.HttpResponse) {
	filter := &usecase.DocumentFilter{
		WorkspaceId: workspaceId,
		Archived:    urlQueries.Get("archived") == "true",
		Search:      urlQueries.Get("search"),
	}

	if parent := urlQueries.Get("parentDocumentId"); parent != "" {
		parentId, err := primitive.ObjectIDFromHex(parent)
		if err != nil {
			return nil, CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
				"invalid parent document ID format", http.StatusBadRequest)
		}
		filter.ParentDocumentId = &parentId
	}

	return filter, nil
}
