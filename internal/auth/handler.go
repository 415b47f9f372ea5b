// Package auth implements the login gate. The credential pair is fixed for
// the demo deployment; the core catalog and sales logic never consults the
// logged-in state.
package auth

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/mux"

	"github.com/kelompok6/retail-pos/pkg/auth"
	"github.com/kelompok6/retail-pos/pkg/logger"
)

const (
	defaultUsername = "kelompok6"
	defaultPassword = "123456"
)

// Handler serves the login endpoint and the auth middleware.
type Handler struct {
	username     string
	passwordHash string
}

// NewHandler reads credential overrides from POS_USERNAME / POS_PASSWORD and
// stores only the bcrypt hash.
func NewHandler() (*Handler, error) {
	username := os.Getenv("POS_USERNAME")
	if username == "" {
		username = defaultUsername
	}
	password := os.Getenv("POS_PASSWORD")
	if password == "" {
		password = defaultPassword
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &Handler{username: username, passwordHash: hash}, nil
}

type response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Login handles POST /api/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, response{Success: false, Error: "Invalid request body"})
		return
	}

	if req.Username != h.username || !auth.CheckPassword(h.passwordHash, req.Password) {
		logger.Warn(r.Context()).Str("username", req.Username).Msg("Login rejected")
		respondJSON(w, http.StatusUnauthorized, response{Success: false, Error: "Invalid credentials"})
		return
	}

	token, err := auth.GenerateToken(req.Username, "admin")
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to generate token")
		respondJSON(w, http.StatusInternalServerError, response{Success: false, Error: "Failed to generate token"})
		return
	}

	respondJSON(w, http.StatusOK, response{
		Success: true,
		Message: "Login successful",
		Data:    map[string]string{"token": token, "username": req.Username},
	})
}

// RegisterRoutes registers the login route.
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/login", h.Login).Methods("POST")
}

// Middleware validates the bearer token on protected routes.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			respondJSON(w, http.StatusUnauthorized, response{Success: false, Error: "Authorization header required"})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			respondJSON(w, http.StatusUnauthorized, response{Success: false, Error: "Invalid authorization header format"})
			return
		}

		if _, err := auth.ValidateToken(parts[1]); err != nil {
			logger.Warn(r.Context()).Err(err).Msg("Invalid token")
			respondJSON(w, http.StatusUnauthorized, response{Success: false, Error: "Invalid token"})
			return
		}

		next.ServeHTTP(w, r)
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
