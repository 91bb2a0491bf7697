package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/codecompass/codecompass/internal/logger"
	"github.com/codecompass/codecompass/internal/models"
	"github.com/codecompass/codecompass/internal/repository"
)

type profileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new ProfileRepository implementation
func NewProfileRepository(db *sql.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) List(ctx context.Context) ([]models.Profile, error) {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("listing profiles")

	sqlStr, args, err := sqlBuilder.
		Select(profileColumns...).
		From("profiles").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list profiles: %v", err)
		return nil, err
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		var p models.Profile
		if err := rows.Scan(&p.ID, &p.Name, &p.Year, &p.Skills, &p.Interests, &p.Whatsapp, &p.Twitter, &p.WhatsappVisible, &p.TwitterVisible, &p.CreatedAt); err != nil {
			log.Error("failed to scan profile row: %v", err)
			return nil, err
		}
		profiles = append(profiles, p)
	}

	log.Debug("found %d profiles", len(profiles))
	return profiles, rows.Err()
}

func (r *profileRepository) Get(ctx context.Context, id string) (*models.Profile, error) {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("getting profile: id=%s", id)

	var p models.Profile
	err := r.db.QueryRowContext(ctx, `
SELECT id, name, year, skills, interests, whatsapp, twitter, whatsapp_visible, twitter_visible, created_at
FROM profiles
WHERE id = ?
`, id).Scan(&p.ID, &p.Name, &p.Year, &p.Skills, &p.Interests, &p.Whatsapp, &p.Twitter, &p.WhatsappVisible, &p.TwitterVisible, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("profile not found: id=%s", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get profile: %v", err)
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) Upsert(ctx context.Context, profile models.Profile) (*models.Profile, error) {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("upserting profile: id=%s", profile.ID)

	// Full-row replacement keyed by id; created_at survives overwrites.
	var p models.Profile
	err := r.db.QueryRowContext(ctx, `
INSERT INTO profiles (id, name, year, skills, interests, whatsapp, twitter, whatsapp_visible, twitter_visible)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    name = excluded.name,
    year = excluded.year,
    skills = excluded.skills,
    interests = excluded.interests,
    whatsapp = excluded.whatsapp,
    twitter = excluded.twitter,
    whatsapp_visible = excluded.whatsapp_visible,
    twitter_visible = excluded.twitter_visible
RETURNING id, name, year, skills, interests, whatsapp, twitter, whatsapp_visible, twitter_visible, created_at
`, profile.ID, profile.Name, profile.Year, profile.Skills, profile.Interests, profile.Whatsapp, profile.Twitter, profile.WhatsappVisible, profile.TwitterVisible).
		Scan(&p.ID, &p.Name, &p.Year, &p.Skills, &p.Interests, &p.Whatsapp, &p.Twitter, &p.WhatsappVisible, &p.TwitterVisible, &p.CreatedAt)
	if err != nil {
		log.Error("failed to upsert profile: %v", err)
		return nil, err
	}
	log.Debug("profile upserted: id=%s", p.ID)
	return &p, nil
}
