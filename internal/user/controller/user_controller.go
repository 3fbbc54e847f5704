package controller

import (
	"encoding/json"
	"errors"
	"hivesite/domain"
	"hivesite/internal/service/logger"
	"hivesite/internal/service/middleware"
	"hivesite/internal/user/usecase"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type UserHandler struct {
	usecase usecase.UserUsecase
}

func NewUserHandler(usecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{
		usecase: usecase,
	}
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received GetUser request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	uid := mux.Vars(r)["uid"]
	user, err := h.usecase.GetUser(ctx, uid)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	h.writeJSON(w, http.StatusOK, user, requestID)

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed GetUser request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK),
	)
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	sanitizer := bluemonday.UGCPolicy()
	defer cancel()

	logger.AccessLogger.Info("Received CreateUser request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	caller, err := middleware.GetCallerIdentity(r.Context())
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	var body domain.NewUserRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.AccessLogger.Error("Failed to decode request body",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		h.handleError(w, domain.ErrInvalidBody, requestID)
		return
	}
	body.Username = sanitizer.Sanitize(body.Username)

	user, err := h.usecase.CreateUser(ctx, caller, body.Username)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	h.writeJSON(w, http.StatusCreated, user, requestID)

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed CreateUser request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusCreated),
	)
}

func (h *UserHandler) CreateGuestUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received CreateGuestUser request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	caller, err := middleware.GetCallerIdentity(r.Context())
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	user, err := h.usecase.CreateGuestUser(ctx, caller)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	h.writeJSON(w, http.StatusCreated, user, requestID)

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed CreateGuestUser request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusCreated),
	)
}

func (h *UserHandler) GetUserChallenges(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received GetUserChallenges request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	caller, err := middleware.GetCallerIdentity(r.Context())
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	uid := mux.Vars(r)["uid"]
	response, err := h.usecase.GetUserChallenges(ctx, caller, uid)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	h.writeJSON(w, http.StatusOK, response, requestID)

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed GetUserChallenges request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK),
	)
}

func (h *UserHandler) GetUserGames(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received GetUserGames request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	uid := mux.Vars(r)["uid"]
	games, err := h.usecase.GetUserGames(ctx, uid)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	h.writeJSON(w, http.StatusOK, games, requestID)

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed GetUserGames request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK),
	)
}

func (h *UserHandler) writeJSON(w http.ResponseWriter, status int, body interface{}, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.AccessLogger.Error("Failed to encode response",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
	}
}

func (h *UserHandler) handleError(w http.ResponseWriter, err error, requestID string) {
	logger.AccessLogger.Error("Handling error",
		zap.String("request_id", requestID),
		zap.Error(err),
	)

	w.Header().Set("Content-Type", "application/json")
	errorResponse := map[string]string{"error": err.Error()}

	switch {
	case errors.Is(err, domain.ErrInvalidUsername), errors.Is(err, domain.ErrInvalidBody):
		w.WriteHeader(http.StatusBadRequest)
	case errors.Is(err, domain.ErrUnauthenticated):
		w.WriteHeader(http.StatusUnauthorized)
	case errors.Is(err, domain.ErrForbidden):
		w.WriteHeader(http.StatusForbidden)
	case errors.Is(err, domain.ErrUserNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, domain.ErrUserConflict):
		w.WriteHeader(http.StatusConflict)
	case errors.Is(err, domain.ErrChallengeAssembly):
		// relational-consistency defect; detail stays in the logs
		errorResponse["error"] = "internal server error"
		w.WriteHeader(http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}

	if jsonErr := json.NewEncoder(w).Encode(errorResponse); jsonErr != nil {
		logger.AccessLogger.Error("Failed to encode error response",
			zap.String("request_id", requestID),
			zap.Error(jsonErr),
		)
		http.Error(w, jsonErr.Error(), http.StatusInternalServerError)
	}
}
