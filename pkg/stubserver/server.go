package stubserver

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
)

// Server holds the in-memory backend state.
type Server struct {
	store     *userStore
	log       *slog.Logger
	jwtSecret []byte
	tokenTTL  time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithLogger supplies a logger for request and auth events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.log = l }
}

// WithJWTSecret overrides the HS256 signing secret. The default is random
// enough for a throwaway process but tokens do not survive restarts either
// way.
func WithJWTSecret(secret []byte) Option {
	if len(secret) == 0 {
		panic("stubserver: WithJWTSecret: secret cannot be empty")
	}
	return func(s *Server) { s.jwtSecret = secret }
}

// WithTokenTTL overrides the bearer token lifetime.
func WithTokenTTL(d time.Duration) Option {
	if d <= 0 {
		panic("stubserver: WithTokenTTL: duration must be > 0")
	}
	return func(s *Server) { s.tokenTTL = d }
}

// New returns an empty backend.
func New(opts ...Option) *Server {
	s := &Server{
		store:     newUserStore(),
		jwtSecret: []byte("stubserver-dev-secret"),
		tokenTTL:  24 * time.Hour,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// Router mounts the REST surface.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/api/1.0/users", s.handleSignUp)
	r.Post("/api/1.0/users/token/{token}", s.handleActivate)
	r.Post("/api/1.0/auth", s.handleLogin)
	r.Post("/api/1.0/logout", s.handleLogout)
	r.Get("/api/1.0/users", s.handleListUsers)
	r.Get("/api/1.0/users/{id}", s.handleGetUser)
	r.Put("/api/1.0/users/{id}", s.handleUpdateUser)
	r.Delete("/api/1.0/users/{id}", s.handleDeleteUser)

	return r
}

func (s *Server) issueToken(userID int64) (string, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	})
	return tok.SignedString(s.jwtSecret)
}

// callerID extracts the authenticated user id from the Authorization header.
// It returns 0 when the header is absent or the token does not verify.
func (s *Server) callerID(r *http.Request) int64 {
	const prefix = "Bearer "
	header := r.Header.Get("Authorization")
	if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
		return 0
	}

	var claims jwt.RegisteredClaims
	tok, err := jwt.ParseWithClaims(header[len(prefix):], &claims, func(t *jwt.Token) (any, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		return 0
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0
	}
	return id
}
