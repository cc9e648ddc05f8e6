package mocks

import (
	"context"
	"time"
)

type ListingCacheMock struct {
	LookupFunc        func(key string) ([]byte, bool)
	StoreFunc         func(key string, payload []byte)
	StartJanitorFunc  func(ctx context.Context, interval time.Duration)
	LookupCalls       int
	StoreCalls        int
	StartJanitorCalls int
	StoredKeys        []string
}

func (m *ListingCacheMock) Lookup(key string) ([]byte, bool) {
	m.LookupCalls++
	if m.LookupFunc == nil {
		return nil, false
	}
	return m.LookupFunc(key)
}

func (m *ListingCacheMock) Store(key string, payload []byte) {
	m.StoreCalls++
	m.StoredKeys = append(m.StoredKeys, key)
	if m.StoreFunc != nil {
		m.StoreFunc(key, payload)
	}
}

func (m *ListingCacheMock) StartJanitor(ctx context.Context, interval time.Duration) {
	m.StartJanitorCalls++
	if m.StartJanitorFunc != nil {
		m.StartJanitorFunc(ctx, interval)
	}
}
