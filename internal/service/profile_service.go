package service

import (
	"context"
	"fmt"
	"strings"

	"salesdesk/internal/domain"
	"salesdesk/internal/port"
)

// ProfileService manages chat user profiles and phone registration.
type ProfileService interface {
	Get(ctx context.Context, chatID int64) (*domain.Profile, error)
	Touch(ctx context.Context, profile *domain.Profile) error
	RegisterPhone(ctx context.Context, chatID int64, rawPhone string) (string, error)
	Count(ctx context.Context) (int, error)
}

type profileService struct {
	repo port.ProfileRepository
}

func NewProfileService(repo port.ProfileRepository) ProfileService {
	return &profileService{repo: repo}
}

func (s *profileService) Get(ctx context.Context, chatID int64) (*domain.Profile, error) {
	return s.repo.Get(ctx, chatID)
}

// Touch upserts the profile's identity fields on every /start so name changes
// in the chat client are picked up. The phone, once registered, is untouched.
func (s *profileService) Touch(ctx context.Context, profile *domain.Profile) error {
	return s.repo.Upsert(ctx, profile)
}

// RegisterPhone validates and normalizes the submitted number, stores it and
// returns the canonical form.
func (s *profileService) RegisterPhone(ctx context.Context, chatID int64, rawPhone string) (string, error) {
	phone, err := NormalizePhone(rawPhone)
	if err != nil {
		return "", err
	}
	if err := s.repo.SetPhone(ctx, chatID, phone); err != nil {
		return "", err
	}
	return phone, nil
}

func (s *profileService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// NormalizePhone reduces an Uzbek mobile number to the canonical
// 998XXXXXXXXX form. Accepted inputs: "+998XXXXXXXXX", "998XXXXXXXXX" and the
// bare nine-digit subscriber number; spaces, dashes and parentheses are
// ignored. Anything else is ErrInvalidPhone.
func NormalizePhone(raw string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))

	cleaned = strings.TrimPrefix(cleaned, "+")
	if len(cleaned) == 9 {
		cleaned = "998" + cleaned
	}

	if len(cleaned) != 12 || !strings.HasPrefix(cleaned, "998") {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidPhone, raw)
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: %q", domain.ErrInvalidPhone, raw)
		}
	}
	return cleaned, nil
}
