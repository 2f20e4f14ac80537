package http

import (
	"errors"
	"net"
	"net/http"

	"github.com/MKhiriev/watchface-sync/internal/logger"
	"github.com/MKhiriev/watchface-sync/internal/utils"
	"github.com/MKhiriev/watchface-sync/models"
	"github.com/golang-jwt/jwt/v5"
)

// auth is an HTTP middleware that enforces node token authentication.
//
// The wearable mints its own JWT with the key derived from the pairing
// secret; the companion only verifies it. On success the node named by the
// token is stored in the request context via [utils.WithNode].
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header is not a bearer token ([ErrInvalidAuthorizationHeader]).
//   - The token has expired ([ErrNodeTokenExpired]).
//   - The token is otherwise invalid ([ErrInvalidNodeToken]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		token, err := utils.ValidateNodeToken(tokenString, h.tokenKey)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				log.Err(err).Msg("token expired")
				http.Error(w, ErrNodeTokenExpired.Error(), http.StatusUnauthorized)
			default:
				log.Err(err).Msg("error occurred during parsing token")
				http.Error(w, ErrInvalidNodeToken.Error(), http.StatusUnauthorized)
			}
			return
		}

		nodeID, _ := token.NodeID()
		node := models.Node{ID: nodeID, DisplayName: token.Name}

		next.ServeHTTP(w, r.WithContext(utils.WithNode(r.Context(), node)))
	})
}

// localOnly admits requests from the loopback interface only. It guards the
// operator endpoints of the phone, which carry no node token.
func (h *Handler) localOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}

		if ip := net.ParseIP(host); ip == nil || !ip.IsLoopback() {
			logger.FromRequest(r).Warn().
				Str("func", "*Handler.localOnly").
				Str("remote_addr", r.RemoteAddr).
				Msg("operator endpoint called from non-loopback address")
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
