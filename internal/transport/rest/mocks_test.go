package rest

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/studyquest-backend/internal/service/study"
)

type cardServiceMock struct {
	ImportCardsFunc func(ctx context.Context, input study.ImportCardsInput) (int, error)

	mu    sync.Mutex
	calls []study.ImportCardsInput
}

var _ cardService = &cardServiceMock{}

func (m *cardServiceMock) ImportCards(ctx context.Context, input study.ImportCardsInput) (int, error) {
	if m.ImportCardsFunc == nil {
		panic("cardServiceMock.ImportCardsFunc: method is nil but cardService.ImportCards was just called")
	}
	m.mu.Lock()
	m.calls = append(m.calls, input)
	m.mu.Unlock()
	return m.ImportCardsFunc(ctx, input)
}

func (m *cardServiceMock) lastImport(t *testing.T) study.ImportCardsInput {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	require.NotEmpty(t, m.calls, "ImportCards was not called")
	return m.calls[len(m.calls)-1]
}
