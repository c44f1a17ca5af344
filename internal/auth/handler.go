package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"expenseflow/internal/user"

	"github.com/sirupsen/logrus"
)

type Handler struct {
	authService   Service
	userService   user.Service
	secureCookies bool
}

func NewHandler(authService Service, userService user.Service, secureCookies bool) *Handler {
	return &Handler{
		authService:   authService,
		userService:   userService,
		secureCookies: secureCookies,
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.Errorf("JSON encoding error: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

func publicUser(u *user.User) map[string]interface{} {
	return map[string]interface{}{
		"id":    u.ID,
		"email": u.Email,
		"name":  u.Name,
	}
}

func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email            string `json:"email"`
		Name             string `json:"name"`
		Password         string `json:"password"`
		SecurityQuestion string `json:"securityQuestion"`
		SecurityAnswer   string `json:"securityAnswer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	newUser, token, err := h.authService.Signup(req.Email, req.Name, req.Password, req.SecurityQuestion, req.SecurityAnswer)
	if err != nil {
		if errors.Is(err, user.ErrEmailAlreadyExists) {
			respondError(w, http.StatusConflict, err.Error())
			return
		}
		if errors.Is(err, user.ErrMissingFields) || errors.Is(err, user.ErrInvalidEmail) || errors.Is(err, user.ErrWeakPassword) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		logrus.Errorf("signup failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	setAuthCookie(w, token, h.secureCookies)
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "User created successfully",
		"user":    publicUser(newUser),
	})
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	existingUser, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, user.ErrInvalidCredentials.Error())
			return
		}
		logrus.Errorf("login failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	setAuthCookie(w, token, h.secureCookies)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Login successful",
		"user":    publicUser(existingUser),
	})
}

// HandleMe echoes the identity proven by the session cookie. The claims are
// trusted as-is; no storage round-trip.
func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"user": map[string]interface{}{
			"id":    r.Context().Value("userID"),
			"email": r.Context().Value("userEmail"),
			"name":  r.Context().Value("userName"),
		},
	})
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	clearAuthCookie(w, h.secureCookies)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Logout successful",
	})
}

func (h *Handler) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		respondError(w, http.StatusBadRequest, "Email is required")
		return
	}

	question, err := h.userService.GetSecurityQuestion(req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		logrus.Errorf("forgot-password lookup failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":           "success",
		"securityQuestion": question,
	})
}

func (h *Handler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email          string `json:"email"`
		SecurityAnswer string `json:"securityAnswer"`
		NewPassword    string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.SecurityAnswer == "" || req.NewPassword == "" {
		respondError(w, http.StatusBadRequest, "Email, security answer, and new password are required")
		return
	}

	err := h.userService.ResetPassword(req.Email, req.SecurityAnswer, req.NewPassword)
	if err != nil {
		if errors.Is(err, user.ErrInvalidSecurityAnswer) || errors.Is(err, user.ErrWeakPassword) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		logrus.Errorf("reset-password failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Password updated successfully",
	})
}

func (h *Handler) HandleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(string)

	if err := h.userService.DeleteAccount(userID); err != nil {
		logrus.Errorf("delete-account failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	clearAuthCookie(w, h.secureCookies)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Account deleted successfully",
	})
}

func (h *Handler) HandleDeleteData(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(string)

	if err := h.userService.DeleteData(userID); err != nil {
		logrus.Errorf("delete-data failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Data deleted successfully",
	})
}
