package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/watchface-sync/internal/utils"
)

// verifyHashing checks the HMAC of the raw request body against the
// [utils.HashHeader] header and restores the body for the next handler.
func (h *Handler) verifyHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.logger.Debug().Str("func", "*Handler.verifyHashing").Msg("checking hash begins")

		hashFromRequest := r.Header.Get(utils.HashHeader)
		if hashFromRequest == "" {
			h.logger.Error().Str("func", "*Handler.verifyHashing").Msg("no hash header")
			http.Error(w, ErrIntegrityCheck.Error(), http.StatusBadRequest)
			return
		}

		// read bytes from body
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, utils.MaxMessageBodyBytes))
		if err != nil {
			h.logger.Err(err).Str("func", "*Handler.verifyHashing").Msg("failed to read request body")
			http.Error(w, "Request body too large or unreadable", http.StatusBadRequest)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !h.hasher.Verify(body, hashFromRequest) {
			h.logger.Error().Str("func", "*Handler.verifyHashing").
				Str("hash from request", hashFromRequest).
				Msg("hashes are not equal")
			http.Error(w, ErrIntegrityCheck.Error(), http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
