package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdesk/internal/domain"
	"salesdesk/internal/service"
	"salesdesk/mocks"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"+998901234567", "998901234567"},
		{"998901234567", "998901234567"},
		{"901234567", "998901234567"},
		{"+998 90 123-45-67", "998901234567"},
		{"(998) 90 123 45 67", "998901234567"},
		{"  998901234567  ", "998901234567"},
	}
	for _, tc := range cases {
		got, err := service.NormalizePhone(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestNormalizePhone_Rejects(t *testing.T) {
	for _, in := range []string{
		"",
		"12345",
		"79161234567",   // wrong country code at full length
		"99890123456",   // too short
		"9989012345678", // too long
		"99890123456a",
		"phone",
	} {
		_, err := service.NormalizePhone(in)
		assert.ErrorIs(t, err, domain.ErrInvalidPhone, in)
	}
}

func TestRegisterPhone_StoresCanonicalForm(t *testing.T) {
	repo := new(mocks.MockProfileRepo)
	svc := service.NewProfileService(repo)
	ctx := context.Background()

	repo.On("SetPhone", ctx, int64(77), "998901234567").Return(nil).Once()

	phone, err := svc.RegisterPhone(ctx, 77, "+998 90 123 45 67")
	require.NoError(t, err)
	assert.Equal(t, "998901234567", phone)
	repo.AssertExpectations(t)
}

func TestRegisterPhone_InvalidNeverHitsRepo(t *testing.T) {
	repo := new(mocks.MockProfileRepo)
	svc := service.NewProfileService(repo)

	_, err := svc.RegisterPhone(context.Background(), 77, "hello")
	assert.ErrorIs(t, err, domain.ErrInvalidPhone)
	repo.AssertNotCalled(t, "SetPhone")
}

func TestProfileService_Passthrough(t *testing.T) {
	repo := new(mocks.MockProfileRepo)
	svc := service.NewProfileService(repo)
	ctx := context.Background()

	profile := &domain.Profile{ChatID: 5, Phone: "998901234567"}
	repo.On("Get", ctx, int64(5)).Return(profile, nil).Once()
	repo.On("Upsert", ctx, profile).Return(nil).Once()
	repo.On("Count", ctx).Return(42, nil).Once()

	got, err := svc.Get(ctx, 5)
	require.NoError(t, err)
	assert.True(t, got.Registered())

	require.NoError(t, svc.Touch(ctx, profile))

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, count)
	repo.AssertExpectations(t)
}
