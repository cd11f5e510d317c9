package services

import (
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/alvozap/backoffice/internal/config"
	"github.com/alvozap/backoffice/internal/kv"
	"github.com/alvozap/backoffice/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken      = errors.New("email already registered")
	ErrEmailNotFound   = errors.New("email not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrMissingFields   = errors.New("establishment name, email and password are required")
)

const (
	usersKey   = "users"
	sessionKey = "current_session"
)

// credential pairs an account with its bcrypt password hash, keyed by
// lowercase email in the persisted credential table.
type credential struct {
	Account      models.Account `json:"account"`
	PasswordHash string         `json:"password_hash"`
}

// SessionService owns account registration, authentication and the
// current-session pointer. The dashboard has a single operator, so the
// session is process-wide; the mutex only protects against concurrent HTTP
// requests, there is no multi-session model.
type SessionService struct {
	mu      sync.Mutex
	store   kv.Store
	cfg     *config.Config
	users   map[string]credential
	current *models.Account
}

func NewSessionService(store kv.Store, cfg *config.Config) *SessionService {
	s := &SessionService{
		store: store,
		cfg:   cfg,
		users: make(map[string]credential),
	}
	s.loadUsers()
	s.Restore()
	return s
}

// loadUsers reads the persisted credential table. A corrupt record is
// deleted and the table starts empty; startup never fails on bad state.
func (s *SessionService) loadUsers() {
	raw, err := s.store.Get(usersKey)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			slog.Error("failed to read credential table", "action", "load_users", "error", err.Error())
		}
		return
	}
	users := make(map[string]credential)
	if err := json.Unmarshal(raw, &users); err != nil {
		slog.Error("discarding corrupt credential table", "action", "load_users", "error", err.Error())
		if err := s.store.Delete(usersKey); err != nil {
			slog.Error("failed to delete corrupt credential table", "error", err.Error())
		}
		return
	}
	s.users = users
}

// Restore reloads the persisted session pointer. Missing or corrupt state
// degrades to "logged out"; it never fails.
func (s *SessionService) Restore() {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.store.Get(sessionKey)
	if err != nil {
		s.current = nil
		return
	}
	var account models.Account
	if err := json.Unmarshal(raw, &account); err != nil {
		slog.Error("discarding corrupt session record", "action", "restore_session", "error", err.Error())
		if err := s.store.Delete(sessionKey); err != nil {
			slog.Error("failed to delete corrupt session record", "error", err.Error())
		}
		s.current = nil
		return
	}
	s.current = &account
}

// SignUp registers a new establishment and logs it in. Email uniqueness is
// case-insensitive.
func (s *SessionService) SignUp(req SignUpInput) (*models.Account, string, error) {
	time.Sleep(s.cfg.AuthDelay)

	if strings.TrimSpace(req.EstablishmentName) == "" ||
		strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, "", ErrMissingFields
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := emailKey(req.Email)
	if _, exists := s.users[key]; exists {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", errors.New("failed to hash password")
	}

	account := models.Account{
		ID:                uuid.New(),
		Email:             strings.TrimSpace(req.Email),
		EstablishmentName: strings.TrimSpace(req.EstablishmentName),
		ContactName:       strings.TrimSpace(req.ContactName),
		Phone:             strings.TrimSpace(req.Phone),
	}

	s.users[key] = credential{Account: account, PasswordHash: string(hash)}
	if err := s.persistUsers(); err != nil {
		delete(s.users, key)
		return nil, "", err
	}

	s.setCurrent(&account)

	token, err := s.mintToken(&account)
	if err != nil {
		return nil, "", err
	}
	return &account, token, nil
}

// SignUpInput carries the signup form fields.
type SignUpInput struct {
	EstablishmentName string
	ContactName       string
	Email             string
	Phone             string
	Password          string
}

// Login authenticates against the credential table and makes the matching
// account the current session.
func (s *SessionService) Login(email, password string) (*models.Account, string, error) {
	time.Sleep(s.cfg.AuthDelay)

	s.mu.Lock()
	defer s.mu.Unlock()

	cred, ok := s.users[emailKey(email)]
	if !ok {
		return nil, "", ErrEmailNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidPassword
	}

	account := cred.Account
	s.setCurrent(&account)

	token, err := s.mintToken(&account)
	if err != nil {
		return nil, "", err
	}
	return &account, token, nil
}

// Logout clears the session and its persisted record. Idempotent; always
// succeeds.
func (s *SessionService) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := s.store.Delete(sessionKey); err != nil {
		slog.Error("failed to delete session record", "action", "logout", "error", err.Error())
	}
}

// Current returns the logged-in account, or nil.
func (s *SessionService) Current() *models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	account := *s.current
	return &account
}

func (s *SessionService) setCurrent(account *models.Account) {
	s.current = account
	raw, err := json.Marshal(account)
	if err != nil {
		slog.Error("failed to serialize session record", "error", err.Error())
		return
	}
	if err := s.store.Set(sessionKey, raw); err != nil {
		slog.Error("failed to persist session record", "error", err.Error())
	}
}

func (s *SessionService) persistUsers() error {
	raw, err := json.Marshal(s.users)
	if err != nil {
		return err
	}
	return s.store.Set(usersKey, raw)
}

func (s *SessionService) mintToken(account *models.Account) (string, error) {
	claims := jwt.MapClaims{
		"sub":   account.ID.String(),
		"email": account.Email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.cfg.JWTAccessExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
