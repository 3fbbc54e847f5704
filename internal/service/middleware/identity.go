package middleware

import (
	"context"
	"encoding/json"
	"hivesite/domain"
	"hivesite/internal/service/logger"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// RequireIdentity binds the caller's identity before the handler runs. A
// missing or malformed token rejects the request here, before any resource
// access. The bound identity is a typed value in the request context; gated
// handlers pass it explicitly into the usecase.
func RequireIdentity(jwtToken JwtTokenService, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := GetRequestID(r.Context())

		authHeader := r.Header.Get("JWT-Token")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			logger.AccessLogger.Warn("Missing JWT-Token header",
				zap.String("request_id", requestID),
				zap.String("url", r.URL.String()),
			)
			writeUnauthenticated(w)
			return
		}

		claims, err := jwtToken.Validate(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil || claims.Uid == "" {
			logger.AccessLogger.Warn("Invalid JWT token",
				zap.String("request_id", requestID),
				zap.Error(err),
			)
			writeUnauthenticated(w)
			return
		}

		caller := domain.CallerIdentity{Uid: claims.Uid}
		ctx := context.WithValue(r.Context(), CallerIdentityKey, caller)
		next(w, r.WithContext(ctx))
	}
}

// GetCallerIdentity returns the identity bound by RequireIdentity. Handlers
// reached without the middleware get ErrUnauthenticated, never a zero value.
func GetCallerIdentity(ctx context.Context) (domain.CallerIdentity, error) {
	if caller, ok := ctx.Value(CallerIdentityKey).(domain.CallerIdentity); ok {
		return caller, nil
	}
	return domain.CallerIdentity{}, domain.ErrUnauthenticated
}

func writeUnauthenticated(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": domain.ErrUnauthenticated.Error()})
}
