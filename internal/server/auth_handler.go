package server

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/chalkbox/internal/types"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	userService *UserService
	jwtService  *JWTService
	validator   *validator.Validate
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(userService *UserService, jwtService *JWTService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		userService: userService,
		jwtService:  jwtService,
		validator:   validator.New(),
		logger:      logger,
	}
}

// Register handles user registration requests.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req types.CreateUserRequest
	if err := decodeJSON(w, r, h.validator, &req); err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.respondWithToken(w, r, http.StatusCreated, user)
}

// Login handles user login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := decodeJSON(w, r, h.validator, &req); err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.Login(r.Context(), &req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.respondWithToken(w, r, http.StatusOK, user)
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, r *http.Request, status int, user *types.User) {
	token, err := h.jwtService.GenerateToken(user.ID, user.Role)
	if err != nil {
		h.logger.Error("failed to generate token", "path", r.URL.Path, "user_id", user.ID, "error", err)
		errorResponse(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	jsonResponse(w, status, types.LoginResponse{
		User:  user,
		Token: token,
	})
}

func (h *AuthHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("auth request failed", "path", r.URL.Path, "error", err)
	}
	errorResponse(w, status, clientMessage(err))
}
