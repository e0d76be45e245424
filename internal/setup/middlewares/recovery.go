package middlewares

import (
	"encoding/json"
	"log"
	"net/http"
	"runtime/debug"

	presentationProtocols "github.com/catatancerdas/collab-backend/internal/presentation/protocols"
)

func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic: %v\n", err)
				log.Printf("stack trace: %s\n", debug.Stack())

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)

				json.NewEncoder(w).Encode(presentationProtocols.Envelope{
					Status:    "error",
					Code:      http.StatusInternalServerError,
					ErrorType: presentationProtocols.ErrorTypeInternalServerError,
					Message:   "an unexpected error occurred, please try again later",
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
