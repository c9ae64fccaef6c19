package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"salesdesk/internal/domain"
	"salesdesk/internal/port"
)

type profileRepo struct {
	db *sqlx.DB
}

// NewProfileRepo creates a PostgreSQL-backed ProfileRepository.
func NewProfileRepo(db *sqlx.DB) port.ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) Get(ctx context.Context, chatID int64) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.db.GetContext(ctx, &profile,
		"SELECT * FROM chat_profiles WHERE chat_id = $1", chatID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("profileRepo.Get: %w", err)
	}
	return &profile, nil
}

// Upsert inserts the profile or refreshes its identity fields. A registered
// phone is never overwritten by the upsert path.
func (r *profileRepo) Upsert(ctx context.Context, profile *domain.Profile) error {
	now := time.Now().UTC()

	query := `INSERT INTO chat_profiles (chat_id, first_name, last_name, username, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (chat_id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			username = EXCLUDED.username,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		profile.ChatID, profile.FirstName, profile.LastName, profile.Username,
		profile.Phone, now)
	if err != nil {
		return fmt.Errorf("profileRepo.Upsert: %w", err)
	}
	return nil
}

func (r *profileRepo) SetPhone(ctx context.Context, chatID int64, phone string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE chat_profiles SET phone = $1, updated_at = $2 WHERE chat_id = $3",
		phone, time.Now().UTC(), chatID)
	if err != nil {
		return fmt.Errorf("profileRepo.SetPhone: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("profileRepo.SetPhone rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *profileRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM chat_profiles")
	if err != nil {
		return 0, fmt.Errorf("profileRepo.Count: %w", err)
	}
	return count, nil
}
