package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/umckinney/social-network-simulator/internal/http/response"
)

// handleListUsers returns all user accounts.
func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.userService.List(r.Context())
	if err != nil {
		s.logger.Error("Failed to list users", "error", err)
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, users, s.logger)
}

// handleGetUser returns a single user by ID.
func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	user, err := s.userService.Get(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, user, s.logger)
}

// handleListUserStatuses returns all statuses posted by a user.
func (s *Server) handleListUserStatuses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := chi.URLParam(r, "userID")

	// 404 for an unknown user, empty list for a quiet one.
	if _, err := s.userService.Get(ctx, userID); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	statuses, err := s.statusService.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list statuses", "error", err, "user_id", userID)
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, statuses, s.logger)
}

// handleListUserPictures returns all pictures posted by a user.
func (s *Server) handleListUserPictures(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := chi.URLParam(r, "userID")

	if _, err := s.userService.Get(ctx, userID); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	pictures, err := s.pictureService.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list pictures", "error", err, "user_id", userID)
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, pictures, s.logger)
}

// handleListStatuses returns all status updates.
func (s *Server) handleListStatuses(w http.ResponseWriter, r *http.Request) {
	statuses, err := s.statusService.List(r.Context())
	if err != nil {
		s.logger.Error("Failed to list statuses", "error", err)
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, statuses, s.logger)
}

// handleGetStatus returns a single status by ID.
func (s *Server) handleGetStatus(w http.ResponseWriter, r *http.Request) {
	statusID := chi.URLParam(r, "statusID")

	status, err := s.statusService.Get(r.Context(), statusID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, status, s.logger)
}

// handleListPictures returns all picture records.
func (s *Server) handleListPictures(w http.ResponseWriter, r *http.Request) {
	pictures, err := s.pictureService.List(r.Context())
	if err != nil {
		s.logger.Error("Failed to list pictures", "error", err)
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, pictures, s.logger)
}

// handleGetPicture returns a single picture by ID.
func (s *Server) handleGetPicture(w http.ResponseWriter, r *http.Request) {
	pictureID := chi.URLParam(r, "pictureID")

	picture, err := s.pictureService.Get(r.Context(), pictureID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, picture, s.logger)
}

// handleGetDifferences reconciles database records against pointer files.
// With ?user_id= it covers one user; without, every user. An unknown
// user yields an empty object, matching the reconciler's behavior.
func (s *Server) handleGetDifferences(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")

	results, err := s.pictureService.Reconcile(r.Context(), userID)
	if err != nil {
		s.logger.Error("Failed to reconcile", "error", err, "user_id", userID)
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, results, s.logger)
}
