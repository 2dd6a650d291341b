package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/osse101/CardBinder_Go/internal/domain"
	"github.com/osse101/CardBinder_Go/internal/logger"
	"github.com/osse101/CardBinder_Go/internal/user"
)

// RegisterUserRequest represents the request to create a user.
type RegisterUserRequest struct {
	Username    string `json:"username" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Email       string `json:"email" validate:"omitempty,email,max=254"`
	DisplayName string `json:"display_name" validate:"omitempty,max=100"`
	IsAdmin     bool   `json:"is_admin"`
}

// HandleRegisterUser handles user creation
// @Summary Create user
// @Description Create a new user account
// @Tags admin
// @Accept json
// @Produce json
// @Param request body RegisterUserRequest true "User details"
// @Success 201 {object} domain.User
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/users [post]
func HandleRegisterUser(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RegisterUserRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register user"); err != nil {
			return
		}

		created, err := svc.RegisterUser(r.Context(), domain.User{
			Username:    req.Username,
			Email:       req.Email,
			DisplayName: req.DisplayName,
			IsAdmin:     req.IsAdmin,
		})
		if err != nil {
			respondServiceError(w, r, "Register user", err)
			return
		}

		log.Info("User registered", "user_id", created.ID, "username", created.Username)
		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleListUsers handles listing all users
// @Summary List users
// @Tags admin
// @Produce json
// @Success 200 {array} domain.User
// @Failure 500 {object} ErrorResponse
// @Router /admin/users [get]
func HandleListUsers(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			respondServiceError(w, r, "List users", err)
			return
		}
		respondJSON(w, http.StatusOK, users)
	}
}

// HandleGetUser handles fetching a single user by ID
// @Summary Get user
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/users/{id} [get]
func HandleGetUser(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := parseUserPathID(r, w)
		if !ok {
			return
		}

		fetched, err := svc.GetUserByID(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get user", err)
			return
		}
		respondJSON(w, http.StatusOK, fetched)
	}
}

// SetAdminRequest represents the admin-flag update body.
type SetAdminRequest struct {
	IsAdmin *bool `json:"is_admin" validate:"required"`
}

// HandleSetAdmin handles granting or revoking the admin flag
// @Summary Set admin flag
// @Description Grant or revoke a user's administrator flag. Demoting the only remaining administrator is rejected.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body SetAdminRequest true "Admin flag"
// @Success 200 {object} domain.User
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ProblemDetails
// @Router /admin/users/{id}/admin [put]
func HandleSetAdmin(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID, ok := parseUserPathID(r, w)
		if !ok {
			return
		}

		var req SetAdminRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set admin flag"); err != nil {
			return
		}

		updated, err := svc.SetAdminFlag(r.Context(), userID, *req.IsAdmin)
		if err != nil {
			if errors.Is(err, domain.ErrLastAdmin) {
				log.Warn("Rejected demotion of last administrator", "user_id", userID)
				respondLastAdminProblem(w, r)
				return
			}
			respondServiceError(w, r, "Set admin flag", err)
			return
		}

		log.Info("Admin flag updated", "user_id", userID, "is_admin", *req.IsAdmin)
		respondJSON(w, http.StatusOK, updated)
	}
}

// HandleDeleteUser handles user deletion
// @Summary Delete user
// @Description Delete a user account. Deleting the only remaining administrator is rejected.
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ProblemDetails
// @Router /admin/users/{id} [delete]
func HandleDeleteUser(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID, ok := parseUserPathID(r, w)
		if !ok {
			return
		}

		if err := svc.DeleteUser(r.Context(), userID); err != nil {
			if errors.Is(err, domain.ErrLastAdmin) {
				log.Warn("Rejected deletion of last administrator", "user_id", userID)
				respondLastAdminProblem(w, r)
				return
			}
			respondServiceError(w, r, "Delete user", err)
			return
		}

		log.Info("User deleted", "user_id", userID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "User deleted"})
	}
}

func parseUserPathID(r *http.Request, w http.ResponseWriter) (string, bool) {
	log := logger.FromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Warn("Invalid user ID path parameter", "error", err)
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return "", false
	}
	return id.String(), true
}
