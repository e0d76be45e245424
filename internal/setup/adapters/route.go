package adapters

import (
	"io"
	"net/http"

	presentationProtocols "github.com/catatancerdas/collab-backend/internal/presentation/protocols"
)

// AdaptRoute bridges a controller into a net/http handler.
func AdaptRoute(controller presentationProtocols.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpRequest := presentationProtocols.HttpRequest{
			Body:      r.Body,
			Header:    r.Header,
			UrlParams: r.URL.Query(),
			Req:       r,
		}

		httpResponse := controller.Handle(httpRequest)

		for key, values := range httpResponse.Headers {
			for _, value := range values {
				w.Header().Add(key, value)
			}
		}
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(httpResponse.StatusCode)

		if httpResponse.Body != nil {
			defer httpResponse.Body.Close()
			io.Copy(w, httpResponse.Body)
		}
	}
}
