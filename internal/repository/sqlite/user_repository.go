package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/codecompass/codecompass/internal/logger"
	"github.com/codecompass/codecompass/internal/models"
	"github.com/codecompass/codecompass/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository implementation
func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Get(ctx context.Context, id string) (*models.User, error) {
	log := logger.FromContext(ctx).WithPrefix("user_repo")
	log.Debug("getting user: id=%s", id)

	var u models.User
	err := r.db.QueryRowContext(ctx, `
SELECT id, email, password_hash, github_id, github_login, created_at
FROM users
WHERE id = ?
`, id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.GitHubID, &u.GitHubLogin, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("user not found: id=%s", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get user: %v", err)
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	log := logger.FromContext(ctx).WithPrefix("user_repo")
	log.Debug("getting user by email")

	var u models.User
	err := r.db.QueryRowContext(ctx, `
SELECT id, email, password_hash, github_id, github_login, created_at
FROM users
WHERE email = ?
`, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.GitHubID, &u.GitHubLogin, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get user by email: %v", err)
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Create(ctx context.Context, user models.User) (*models.User, error) {
	log := logger.FromContext(ctx).WithPrefix("user_repo")
	log.Debug("creating user: id=%s", user.ID)

	var u models.User
	err := r.db.QueryRowContext(ctx, `
INSERT INTO users (id, email, password_hash, github_id, github_login)
VALUES (?, ?, ?, ?, ?)
RETURNING id, email, password_hash, github_id, github_login, created_at
`, user.ID, user.Email, user.PasswordHash, user.GitHubID, user.GitHubLogin).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.GitHubID, &u.GitHubLogin, &u.CreatedAt)
	if err != nil {
		log.Error("failed to create user: %v", err)
		return nil, err
	}
	log.Debug("user created: id=%s", u.ID)
	return &u, nil
}

func (r *userRepository) UpsertByGitHubID(ctx context.Context, user models.User) (*models.User, error) {
	log := logger.FromContext(ctx).WithPrefix("user_repo")
	log.Debug("upserting user by github id: github_id=%d", user.GitHubID)

	var u models.User
	err := r.db.QueryRowContext(ctx, `
INSERT INTO users (id, email, password_hash, github_id, github_login)
VALUES (?, ?, '', ?, ?)
ON CONFLICT(github_id) WHERE github_id != 0 DO UPDATE SET
    email = excluded.email,
    github_login = excluded.github_login
RETURNING id, email, password_hash, github_id, github_login, created_at
`, user.ID, user.Email, user.GitHubID, user.GitHubLogin).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.GitHubID, &u.GitHubLogin, &u.CreatedAt)
	if err != nil {
		log.Error("failed to upsert user by github id: %v", err)
		return nil, err
	}
	return &u, nil
}
