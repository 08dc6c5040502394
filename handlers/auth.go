package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"internhours/config"
	"internhours/logger"
	"internhours/middleware"
	"internhours/models"
)

// UserStore is the persistence surface for principals.
type UserStore interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
}

type AuthHandler struct {
	config *config.Config
	users  UserStore
}

func NewAuthHandler(cfg *config.Config, users UserStore) *AuthHandler {
	return &AuthHandler{
		config: cfg,
		users:  users,
	}
}

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var p credentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	email := strings.ToLower(strings.TrimSpace(p.Email))

	fieldErrs := map[string][]string{}
	if email == "" || !strings.Contains(email, "@") {
		fieldErrs["email"] = append(fieldErrs["email"], "a valid email is required")
	}
	if len(p.Password) < 5 {
		fieldErrs["password"] = append(fieldErrs["password"], "password must be at least 5 characters")
	}
	if len(fieldErrs) > 0 {
		writeFieldErrors(w, fieldErrs)
		return
	}

	existing, err := h.users.GetByEmail(email)
	if err != nil {
		logger.Error("register lookup", "email", email, "err", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	if existing != nil {
		writeError(w, http.StatusBadRequest, "Email is already registered")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("register hash", "err", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := h.users.Create(user); err != nil {
		logger.Error("register create", "email", email, "err", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": user.ID, "email": user.Email})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var p credentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	email := strings.ToLower(strings.TrimSpace(p.Email))

	user, err := h.users.GetByEmail(email)
	if err != nil {
		logger.Error("login lookup", "email", email, "err", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(p.Password)); err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := middleware.GenerateToken(user, h.config.JWTExpiration)
	if err != nil {
		logger.Error("login token", "err", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.config.JWTExpiration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	w.WriteHeader(http.StatusNoContent)
}

// Me returns the current principal, the same identity entries are
// attributed to.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": user.ID, "email": user.Email})
}
