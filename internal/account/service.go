// Package account implements the credential workflows: local register,
// login, logout, and session persistence. Credentials are compared in
// plain text against a locally stored user list; this mirrors the
// documented behavior of the system and offers no real security.
package account

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/antonvlasov/voicenotes/internal/blob"
	"github.com/antonvlasov/voicenotes/internal/common"
	"github.com/antonvlasov/voicenotes/internal/dbx"
	"github.com/antonvlasov/voicenotes/internal/logging"
	"github.com/antonvlasov/voicenotes/internal/models"
	"github.com/antonvlasov/voicenotes/internal/store"
)

// Service owns the user registry and session blobs. It holds the raw DB
// handle so registry read-modify-write cycles can run in one transaction.
type Service struct {
	db    *sql.DB
	store *store.Store
	log   logging.Logger
}

func NewService(db *sql.DB, st *store.Store, log logging.Logger) *Service {
	return &Service{db: db, store: st, log: log}
}

// Register validates the input, appends the new user to the persisted
// registry, makes it the current session user, and updates the store.
// Validation failures report one message per invalid field and write
// nothing. Identity is a freshly assigned UUID; the email is not checked
// for uniqueness, first match wins at login.
func (s *Service) Register(ctx context.Context, userName, email, password, confirm string) (models.User, error) {
	if errs := validateRegistration(userName, email, password, confirm); errs != nil {
		return models.User{}, errs
	}

	user := models.User{
		ID:       uuid.NewString(),
		UserName: userName,
		Email:    email,
		Password: password,
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := blob.NewSQLiteRepository(tx)

		users, err := loadUsers(ctx, repo)
		if err != nil {
			return err
		}
		users = append(users, user)

		data, err := json.Marshal(users)
		if err != nil {
			return fmt.Errorf("encode user list: %w", err)
		}
		if err := repo.Set(ctx, blob.KeyUsers, data); err != nil {
			return err
		}
		return saveSession(ctx, repo, user)
	})
	if err != nil {
		return models.User{}, err
	}

	s.store.Dispatch(store.SetUser{User: &user})
	// A brand new user has no recordings; whatever the previous session
	// left in the view must not carry over.
	s.store.Dispatch(store.SetRecordings{List: []models.Recording{}})
	s.log.Info(ctx, "user registered", "email", email)
	return user, nil
}

// Login finds the first registry entry with an exact, case-sensitive
// email and password match. No match yields a generic
// common.ErrCredentialMismatch and leaves the store untouched.
func (s *Service) Login(ctx context.Context, email, password string) (models.User, error) {
	if errs := validateLogin(email, password); errs != nil {
		return models.User{}, errs
	}

	repo := blob.NewSQLiteRepository(s.db)

	users, err := loadUsers(ctx, repo)
	if err != nil {
		return models.User{}, err
	}

	for _, u := range users {
		if u.Email == email && u.Password == password {
			if err := saveSession(ctx, repo, u); err != nil {
				return models.User{}, err
			}
			s.store.Dispatch(store.Login{User: u})
			s.log.Info(ctx, "login successful", "email", email)
			return u, nil
		}
	}

	return models.User{}, common.ErrCredentialMismatch
}

// Logout removes the persisted session and clears the auth slice.
func (s *Service) Logout(ctx context.Context) error {
	repo := blob.NewSQLiteRepository(s.db)
	if err := repo.Delete(ctx, blob.KeySession); err != nil {
		return err
	}
	s.store.Dispatch(store.Logout{})
	return nil
}

// CurrentUser returns the session user from the store snapshot, or nil.
func (s *Service) CurrentUser() *models.User {
	return s.store.State().Auth.User
}

func loadUsers(ctx context.Context, repo blob.Repository) ([]models.User, error) {
	data, err := repo.Get(ctx, blob.KeyUsers)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []models.User{}, nil
	}

	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("%w: user registry: %v", common.ErrParseFailure, err)
	}
	return users, nil
}

func saveSession(ctx context.Context, repo blob.Repository, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}
	return repo.Set(ctx, blob.KeySession, data)
}
