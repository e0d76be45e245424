package protocols

import (
	"io"
	"net/http"
	"net/url"
)

type HttpRequest struct {
	Body      io.ReadCloser
	Header    http.Header
	UrlParams url.Values
	Req       *http.Request
}

type HttpResponse struct {
	Body       io.ReadCloser
	Headers    http.Header
	StatusCode int
}

// Controller handles one HTTP operation.
type Controller interface {
	Handle(r HttpRequest) *HttpResponse
}

// Envelope is the status envelope every JSON endpoint answers with.
type Envelope struct {
	Status    string `json:"status"`
	Code      int    `json:"code"`
	ErrorType string `json:"error_type,omitempty"`
	Message   string `json:"message,omitempty"`
	Data      any    `json:"data,omitempty"`
}

// Error taxonomy used in Envelope.ErrorType.
const (
	ErrorTypeUnauthorized        = "Unauthorized"
	ErrorTypeForbidden           = "Forbidden"
	ErrorTypeBadRequest          = "BadRequest"
	ErrorTypeNotFound            = "NotFound"
	ErrorTypeConflict            = "Conflict"
	ErrorTypeInternalServerError = "InternalServerError"
)
