package services

import (
	"testing"
	"time"

	"github.com/alvozap/backoffice/internal/config"
	"github.com/alvozap/backoffice/internal/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret",
		JWTAccessExpiry: time.Hour,
		AuthDelay:       0,
	}
}

func signUpInput(email string) SignUpInput {
	return SignUpInput{
		EstablishmentName: "Pizzaria do Chef",
		ContactName:       "Ana Souza",
		Email:             email,
		Phone:             "+55 11 99999-9999",
		Password:          "senhaforte123",
	}
}

func TestSignUpAndLogin(t *testing.T) {
	store := kv.NewMemory()
	s := NewSessionService(store, testConfig())

	account, token, err := s.SignUp(signUpInput("chef@pizzaria.com"))
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.NotEmpty(t, token)
	assert.Equal(t, "chef@pizzaria.com", account.Email)
	assert.Equal(t, "Pizzaria do Chef", account.EstablishmentName)

	// signup logs the account in
	current := s.Current()
	require.NotNil(t, current)
	assert.Equal(t, account.ID, current.ID)

	logged, _, err := s.Login("chef@pizzaria.com", "senhaforte123")
	require.NoError(t, err)
	assert.Equal(t, account.ID, logged.ID)
}

func TestSignUpDuplicateEmailCaseInsensitive(t *testing.T) {
	store := kv.NewMemory()
	s := NewSessionService(store, testConfig())

	_, _, err := s.SignUp(signUpInput("chef@pizzaria.com"))
	require.NoError(t, err)

	_, _, err = s.SignUp(signUpInput("Chef@Pizzaria.COM"))
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignUpMissingFields(t *testing.T) {
	s := NewSessionService(kv.NewMemory(), testConfig())

	input := signUpInput("chef@pizzaria.com")
	input.Password = ""
	_, _, err := s.SignUp(input)
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestLoginFailures(t *testing.T) {
	store := kv.NewMemory()
	s := NewSessionService(store, testConfig())

	_, _, err := s.SignUp(signUpInput("chef@pizzaria.com"))
	require.NoError(t, err)

	_, _, err = s.Login("nobody@pizzaria.com", "senhaforte123")
	assert.ErrorIs(t, err, ErrEmailNotFound)

	_, _, err = s.Login("chef@pizzaria.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidPassword)

	// email lookup is case-insensitive
	_, _, err = s.Login("CHEF@pizzaria.com", "senhaforte123")
	assert.NoError(t, err)
}

func TestRestoreAfterLogin(t *testing.T) {
	store := kv.NewMemory()
	s := NewSessionService(store, testConfig())

	account, _, err := s.SignUp(signUpInput("chef@pizzaria.com"))
	require.NoError(t, err)

	// a fresh service over the same store simulates a process restart
	restarted := NewSessionService(store, testConfig())
	current := restarted.Current()
	require.NotNil(t, current)
	assert.Equal(t, account.ID, current.ID)
	assert.Equal(t, account.Email, current.Email)
}

func TestLogoutClearsPersistedSession(t *testing.T) {
	store := kv.NewMemory()
	s := NewSessionService(store, testConfig())

	_, _, err := s.SignUp(signUpInput("chef@pizzaria.com"))
	require.NoError(t, err)

	s.Logout()
	assert.Nil(t, s.Current())

	// logout is idempotent
	s.Logout()

	restarted := NewSessionService(store, testConfig())
	assert.Nil(t, restarted.Current())
}

func TestRestoreDiscardsCorruptSession(t *testing.T) {
	store := kv.NewMemory()
	require.NoError(t, store.Set("current_session", []byte("{not json")))

	s := NewSessionService(store, testConfig())
	assert.Nil(t, s.Current())

	// the corrupt record is gone
	_, err := store.Get("current_session")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestLoadDiscardsCorruptCredentialTable(t *testing.T) {
	store := kv.NewMemory()
	require.NoError(t, store.Set("users", []byte("[]")))

	s := NewSessionService(store, testConfig())

	// table degraded to empty; signup works again
	_, _, err := s.SignUp(signUpInput("chef@pizzaria.com"))
	assert.NoError(t, err)
}

func TestPasswordsAreNotStoredInPlaintext(t *testing.T) {
	store := kv.NewMemory()
	s := NewSessionService(store, testConfig())

	_, _, err := s.SignUp(signUpInput("chef@pizzaria.com"))
	require.NoError(t, err)

	raw, err := store.Get("users")
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "senhaforte123")
}
