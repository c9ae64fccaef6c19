package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"salesdesk/internal/domain"
)

type MockChatEngine struct {
	mock.Mock
}

func (m *MockChatEngine) HandleMessage(ctx context.Context, from *domain.Profile, text string) (*domain.Reply, error) {
	args := m.Called(ctx, from, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reply), args.Error(1)
}

func (m *MockChatEngine) HandleCallback(ctx context.Context, from *domain.Profile, data string) (*domain.Reply, error) {
	args := m.Called(ctx, from, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reply), args.Error(1)
}
