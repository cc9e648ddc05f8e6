package mocks

import (
	"context"

	"github.com/caterquest/caterquest/internal/kafka"
)

type NotifierMock struct {
	NewOrderFunc          func(ctx context.Context, e kafka.NewOrderEvent) error
	OrderStatusUpdateFunc func(ctx context.Context, e kafka.StatusEvent) error
	ChatFunc              func(ctx context.Context, e kafka.ChatEvent) error
	UserJoinFunc          func(ctx context.Context, e kafka.UserJoinEvent) error

	NewOrderCalls          int
	OrderStatusUpdateCalls int
	ChatCalls              int
	UserJoinCalls          int

	NewOrderEvents []kafka.NewOrderEvent
	StatusEvents   []kafka.StatusEvent
}

func (m *NotifierMock) NewOrder(ctx context.Context, e kafka.NewOrderEvent) error {
	m.NewOrderCalls++
	m.NewOrderEvents = append(m.NewOrderEvents, e)
	if m.NewOrderFunc != nil {
		return m.NewOrderFunc(ctx, e)
	}
	return nil
}

func (m *NotifierMock) OrderStatusUpdate(ctx context.Context, e kafka.StatusEvent) error {
	m.OrderStatusUpdateCalls++
	m.StatusEvents = append(m.StatusEvents, e)
	if m.OrderStatusUpdateFunc != nil {
		return m.OrderStatusUpdateFunc(ctx, e)
	}
	return nil
}

func (m *NotifierMock) Chat(ctx context.Context, e kafka.ChatEvent) error {
	m.ChatCalls++
	if m.ChatFunc != nil {
		return m.ChatFunc(ctx, e)
	}
	return nil
}

func (m *NotifierMock) UserJoin(ctx context.Context, e kafka.UserJoinEvent) error {
	m.UserJoinCalls++
	if m.UserJoinFunc != nil {
		return m.UserJoinFunc(ctx, e)
	}
	return nil
}
