package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	presentationProtocols "github.com/catatancerdas/collab-backend/internal/presentation/protocols"
)

// CreateResponse marshals body into an HttpResponse.
func CreateResponse(body any, statusCode int) *presentationProtocols.HttpResponse {
	encoded, err := json.Marshal(body)
	if err != nil {
		return &presentationProtocols.HttpResponse{
			Body:       io.NopCloser(bytes.NewReader([]byte(`{"status":"error","code":500,"error_type":"InternalServerError","message":"failed to encode response"}`))),
			StatusCode: http.StatusInternalServerError,
		}
	}

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(encoded)),
		StatusCode: statusCode,
	}
}

// CreateSuccessResponse wraps data in the success envelope.
func CreateSuccessResponse(data any, statusCode int) *presentationProtocols.HttpResponse {
	return CreateResponse(presentationProtocols.Envelope{
		Status: "success",
		Code:   statusCode,
		Data:   data,
	}, statusCode)
}

// CreateErrorResponse wraps an error in the error envelope.
func CreateErrorResponse(errorType string, message string, statusCode int) *presentationProtocols.HttpResponse {
	return CreateResponse(presentationProtocols.Envelope{
		Status:    "error",
		Code:      statusCode,
		ErrorType: errorType,
		Message:   message,
	}, statusCode)
}

// CreateFileResponse streams raw bytes with a download content type.
func CreateFileResponse(data []byte, filename string, contentType string) *presentationProtocols.HttpResponse {
	headers := http.Header{}
	headers.Set("Content-Type", contentType)
	headers.Set("Content-Disposition", "attachment; filename=\""+filename+"\"")

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(data)),
		Headers:    headers,
		StatusCode: http.StatusOK,
	}
}
