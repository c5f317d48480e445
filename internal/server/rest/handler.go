package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/tabsense/internal/common"
	"github.com/dmitrijs2005/tabsense/internal/server/models"
	"github.com/dmitrijs2005/tabsense/internal/server/services"
	"github.com/go-chi/chi/v5"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userPayload struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  userPayload `json:"user"`
}

type saveTabRequest struct {
	Title   string `json:"title"`
	Artist  string `json:"artist"`
	Tuning  string `json:"tuning"`
	BPM     string `json:"bpm"`
	Content string `json:"content"`
}

type msgResponse struct {
	Msg string `json:"msg"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, msgResponse{Msg: msg})
}

func toUserPayload(u *models.User) userPayload {
	return userPayload{ID: u.ID, Username: u.UserName, IsAdmin: u.IsAdmin}
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Failed to parse request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	s.logger.Info(r.Context(), "Registration request", "username", req.Username)

	result, err := s.users.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			writeError(w, http.StatusBadRequest, "User already exists")
			return
		}
		s.logger.Error(r.Context(), err.Error())
		writeError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	writeJSON(w, http.StatusOK, authResponse{Token: result.Token, User: toUserPayload(result.User)})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	result, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			// One message for unknown user and wrong password.
			writeError(w, http.StatusBadRequest, "Invalid Credentials")
			return
		}
		s.logger.Error(r.Context(), err.Error())
		writeError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	writeJSON(w, http.StatusOK, authResponse{Token: result.Token, User: toUserPayload(result.User)})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.GetByID(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Token is not valid")
		return
	}
	writeJSON(w, http.StatusOK, toUserPayload(user))
}

func (s *Server) handleListTabs(w http.ResponseWriter, r *http.Request) {
	tabs, err := s.tabs.ListByOwner(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		s.logger.Error(r.Context(), err.Error())
		writeError(w, http.StatusInternalServerError, "Server Error")
		return
	}
	if tabs == nil {
		tabs = []*models.Tab{}
	}
	writeJSON(w, http.StatusOK, tabs)
}

func (s *Server) handleSaveTab(w http.ResponseWriter, r *http.Request) {
	var req saveTabRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	meta := services.TabMetadata{Title: req.Title, Artist: req.Artist, Tuning: req.Tuning, BPM: req.BPM}
	tab, err := s.tabs.Save(r.Context(), userIDFromContext(r.Context()), meta, req.Content)
	if err != nil {
		s.logger.Error(r.Context(), err.Error())
		writeError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	writeJSON(w, http.StatusOK, tab)
}

func (s *Server) handleDeleteTab(w http.ResponseWriter, r *http.Request) {
	tabID := chi.URLParam(r, "id")

	err := s.tabs.Delete(r.Context(), userIDFromContext(r.Context()), tabID)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			writeError(w, http.StatusNotFound, "Tab not found")
		case errors.Is(err, common.ErrorForbidden):
			writeError(w, http.StatusUnauthorized, "Not authorized")
		default:
			s.logger.Error(r.Context(), err.Error())
			writeError(w, http.StatusInternalServerError, "Server Error")
		}
		return
	}

	writeJSON(w, http.StatusOK, msgResponse{Msg: "Tab removed"})
}
