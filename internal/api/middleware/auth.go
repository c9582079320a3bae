package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ndelucca/lavadero-booking/internal/api/handlers"
)

// UserIDHeader carries the authenticated user id. Authentication itself
// happens upstream; this middleware only requires the header and makes
// the id available to handlers.
const UserIDHeader = "X-User-ID"

type ctxKey string

const userIDKey ctxKey = "user_id"

// Auth rejects requests without a valid X-User-ID header and stores the
// id in the request context.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(UserIDHeader)
		if raw == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "missing "+UserIDHeader+" header")
			return
		}
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "invalid "+UserIDHeader+" header")
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext returns the authenticated user id set by Auth.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
