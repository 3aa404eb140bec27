// internals/features/users/auth/service/session_service.go
package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	authRepo "collegeschedule_backend/internals/features/users/auth/repository"
)

const (
	CookieName = "admin_session"
	localsKey  = "admin_session"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNoSession          = errors.New("not signed in")
	ErrSessionRevoked     = errors.New("session has been signed out")
	ErrMissingSecret      = errors.New("JWT_SECRET is not configured")
)

// Session is the only place the admin UI reads "who is signed in" from.
type Session struct {
	Username        string    `json:"username"`
	IsAuthenticated bool      `json:"is_authenticated"`
	ExpiresAt       time.Time `json:"expires_at"`
	Token           string    `json:"-"`
}

type sessionClaims struct {
	Username        string `json:"username"`
	IsAuthenticated bool   `json:"is_authenticated"`
	jwt.RegisteredClaims
}

type Config struct {
	Secret       string
	TTL          time.Duration
	Username     string
	Password     string // plain; hashed once at construction
	PasswordHash string // bcrypt; wins over Password
}

type SessionService struct {
	secret    []byte
	ttl       time.Duration
	username  string
	hash      []byte
	blacklist authRepo.Blacklist
	now       func() time.Time
}

func NewSessionService(cfg Config, bl authRepo.Blacklist) (*SessionService, error) {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, ErrMissingSecret
	}
	hash := []byte(strings.TrimSpace(cfg.PasswordHash))
	if len(hash) == 0 {
		h, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = h
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &SessionService{
		secret:    []byte(cfg.Secret),
		ttl:       ttl,
		username:  cfg.Username,
		hash:      hash,
		blacklist: bl,
		now:       time.Now,
	}, nil
}

// WithClock swaps the time source; tests only.
func (s *SessionService) WithClock(now func() time.Time) *SessionService {
	s.now = now
	return s
}

func (s *SessionService) TTL() time.Duration { return s.ttl }

// Login checks the fixed credential pair and issues a signed token.
func (s *SessionService) Login(username, password string) (Session, error) {
	userOK := subtle.ConstantTimeCompare([]byte(strings.TrimSpace(username)), []byte(s.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(s.hash, []byte(password))
	if !userOK || passErr != nil {
		return Session{}, ErrInvalidCredentials
	}

	now := s.now()
	exp := now.Add(s.ttl)
	claims := sessionClaims{
		Username:        s.username,
		IsAuthenticated: true,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return Session{}, err
	}
	return Session{Username: s.username, IsAuthenticated: true, ExpiresAt: exp, Token: tok}, nil
}

// Parse verifies signature, expiry and the blacklist.
func (s *SessionService) Parse(ctx context.Context, token string) (Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Session{}, ErrNoSession
	}

	var claims sessionClaims
	// expiry is checked below against the service clock
	parser := jwt.Parser{
		ValidMethods:         []string{jwt.SigningMethodHS256.Alg()},
		SkipClaimsValidation: true,
	}
	if _, err := parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}); err != nil {
		return Session{}, ErrNoSession
	}
	if !claims.IsAuthenticated || claims.Username == "" {
		return Session{}, ErrNoSession
	}
	if claims.ExpiresAt == nil || !s.now().Before(claims.ExpiresAt.Time) {
		return Session{}, ErrNoSession
	}

	if s.blacklist != nil {
		revoked, err := s.blacklist.Contains(ctx, token)
		if err != nil {
			return Session{}, err
		}
		if revoked {
			return Session{}, ErrSessionRevoked
		}
	}

	return Session{Username: claims.Username, IsAuthenticated: true, ExpiresAt: claims.ExpiresAt.Time, Token: token}, nil
}

// Logout revokes the token until its natural expiry.
func (s *SessionService) Logout(ctx context.Context, sess Session) error {
	if sess.Token == "" || s.blacklist == nil {
		return nil
	}
	exp := sess.ExpiresAt
	if exp.IsZero() {
		exp = s.now().Add(s.ttl)
	}
	return s.blacklist.Add(ctx, sess.Token, exp)
}

/* ====================== fiber glue ====================== */

func SetCookie(c *fiber.Ctx, sess Session) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    sess.Token,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
		Expires:  sess.ExpiresAt,
	})
}

func ClearCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
}

// TokenFrom reads the session cookie, falling back to a Bearer header.
func TokenFrom(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Cookies(CookieName)); v != "" {
		return v
	}
	h := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

func Attach(c *fiber.Ctx, sess Session) {
	c.Locals(localsKey, sess)
}

// FromCtx returns the session attached by the session middleware.
func FromCtx(c *fiber.Ctx) (Session, bool) {
	sess, ok := c.Locals(localsKey).(Session)
	if !ok || !sess.IsAuthenticated {
		return Session{}, false
	}
	return sess, true
}
