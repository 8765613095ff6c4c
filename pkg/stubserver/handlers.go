package stubserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/mail"
	"strconv"
	"unicode"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Image    string `json:"image,omitempty"`
}

type pageResponse struct {
	Content    []userResponse `json:"content"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	TotalPages int            `json:"totalPages"`
}

func toUserResponse(u userRecord) userResponse {
	return userResponse{ID: u.ID, Username: u.Username, Email: u.Email, Image: u.Image}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func writeValidationErrors(w http.ResponseWriter, fields map[string]string) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"message":          "Validation failure",
		"validationErrors": fields,
	})
}

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	fields := make(map[string]string)
	switch {
	case req.Username == "":
		fields["username"] = "Username cannot be null"
	case len(req.Username) < 4 || len(req.Username) > 32:
		fields["username"] = "Must have min 4 and max 32 characters"
	}
	switch {
	case req.Email == "":
		fields["email"] = "E-mail cannot be null"
	case !validEmail(req.Email):
		fields["email"] = "E-mail is not valid"
	default:
		if _, exists := s.store.byEmail(req.Email); exists {
			fields["email"] = "E-mail in use"
		}
	}
	switch {
	case req.Password == "":
		fields["password"] = "Password cannot be null"
	case len(req.Password) < 6:
		fields["password"] = "Password must have at least 6 characters"
	case !strongPassword(req.Password):
		fields["password"] = "Password must have at least 1 uppercase, 1 lowercase letter and 1 number"
	}
	if len(fields) > 0 {
		writeValidationErrors(w, fields)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.MinCost)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Unexpected error")
		return
	}

	u := s.store.create(userRecord{
		Username:        req.Username,
		Email:           req.Email,
		PasswordHash:    hash,
		ActivationToken: uuid.NewString(),
	})
	s.log.InfoContext(r.Context(), "user registered",
		slog.Int64("user_id", u.ID), slog.String("activation_token", u.ActivationToken))

	writeMessage(w, http.StatusOK, "User created")
}

func (s *Server) handleActivate(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	u, ok := s.store.byActivationToken(token)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "This account is either active or the token is invalid")
		return
	}
	s.store.activate(u.ID)
	writeMessage(w, http.StatusOK, "Account is activated")
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	u, ok := s.store.byEmail(req.Email)
	if !ok || bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(req.Password)) != nil {
		writeMessage(w, http.StatusUnauthorized, "Incorrect credentials")
		return
	}
	if !u.Active {
		writeMessage(w, http.StatusForbidden, "Account is not active")
		return
	}

	token, err := s.issueToken(u.ID)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Unexpected error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":       u.ID,
		"username": u.Username,
		"image":    u.Image,
		"token":    token,
	})
}

// handleLogout exists so the client's fire-and-forget logout call has a
// target. Tokens are stateless, so there is nothing to revoke.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, nil)
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 0)
	size := queryInt(r, "size", 10)
	if page < 0 {
		page = 0
	}
	if size <= 0 || size > 100 {
		size = 10
	}

	records, totalPages := s.store.page(page, size, s.callerID(r))
	content := make([]userResponse, 0, len(records))
	for _, u := range records {
		content = append(content, toUserResponse(u))
	}
	writeJSON(w, http.StatusOK, pageResponse{
		Content:    content,
		Page:       page,
		Size:       size,
		TotalPages: totalPages,
	})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "User not found")
		return
	}
	u, ok := s.store.byID(id)
	if !ok || !u.Active {
		writeMessage(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || s.callerID(r) != id {
		writeMessage(w, http.StatusForbidden, "You are not authorized to update user")
		return
	}

	var req struct {
		Username string `json:"username"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Username) < 4 || len(req.Username) > 32 {
		writeValidationErrors(w, map[string]string{
			"username": "Must have min 4 and max 32 characters",
		})
		return
	}

	u, ok := s.store.rename(id, req.Username)
	if !ok {
		writeMessage(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || s.callerID(r) != id {
		writeMessage(w, http.StatusForbidden, "You are not authorized to delete user")
		return
	}
	s.store.remove(id)
	writeJSON(w, http.StatusOK, nil)
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// strongPassword requires at least one uppercase letter, one lowercase
// letter, and one digit.
func strongPassword(s string) bool {
	var upper, lower, digit bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}
