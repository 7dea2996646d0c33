package study

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyquest-backend/internal/domain"
)

// Hand-written mocks in the moq style: a Func field per method plus
// recorded calls.

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	GetByIDFunc             func(ctx context.Context, userID, cardID uuid.UUID) (*domain.Flashcard, error)
	ListAllFunc             func(ctx context.Context, userID uuid.UUID) ([]domain.Flashcard, error)
	ListFunc                func(ctx context.Context, userID uuid.UUID, filter domain.FlashcardFilter) ([]domain.Flashcard, int, error)
	CreateFunc              func(ctx context.Context, card *domain.Flashcard) (*domain.Flashcard, error)
	CreateBatchFunc         func(ctx context.Context, cards []domain.Flashcard) (int, error)
	UpdateLearningStateFunc func(ctx context.Context, card *domain.Flashcard) (*domain.Flashcard, error)
	SetStarredFunc          func(ctx context.Context, userID, cardID uuid.UUID, starred bool) (*domain.Flashcard, error)
	DeleteFunc              func(ctx context.Context, userID, cardID uuid.UUID) error

	mu    sync.Mutex
	calls map[string]int
}

func (m *cardRepoMock) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[name]++
}

func (m *cardRepoMock) Calls(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[name]
}

func (m *cardRepoMock) GetByID(ctx context.Context, userID, cardID uuid.UUID) (*domain.Flashcard, error) {
	if m.GetByIDFunc == nil {
		panic("cardRepoMock.GetByIDFunc: method is nil but cardRepo.GetByID was just called")
	}
	m.record("GetByID")
	return m.GetByIDFunc(ctx, userID, cardID)
}

func (m *cardRepoMock) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Flashcard, error) {
	if m.ListAllFunc == nil {
		panic("cardRepoMock.ListAllFunc: method is nil but cardRepo.ListAll was just called")
	}
	m.record("ListAll")
	return m.ListAllFunc(ctx, userID)
}

func (m *cardRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.FlashcardFilter) ([]domain.Flashcard, int, error) {
	if m.ListFunc == nil {
		panic("cardRepoMock.ListFunc: method is nil but cardRepo.List was just called")
	}
	m.record("List")
	return m.ListFunc(ctx, userID, filter)
}

func (m *cardRepoMock) Create(ctx context.Context, card *domain.Flashcard) (*domain.Flashcard, error) {
	if m.CreateFunc == nil {
		panic("cardRepoMock.CreateFunc: method is nil but cardRepo.Create was just called")
	}
	m.record("Create")
	return m.CreateFunc(ctx, card)
}

func (m *cardRepoMock) CreateBatch(ctx context.Context, cards []domain.Flashcard) (int, error) {
	if m.CreateBatchFunc == nil {
		panic("cardRepoMock.CreateBatchFunc: method is nil but cardRepo.CreateBatch was just called")
	}
	m.record("CreateBatch")
	return m.CreateBatchFunc(ctx, cards)
}

func (m *cardRepoMock) UpdateLearningState(ctx context.Context, card *domain.Flashcard) (*domain.Flashcard, error) {
	if m.UpdateLearningStateFunc == nil {
		panic("cardRepoMock.UpdateLearningStateFunc: method is nil but cardRepo.UpdateLearningState was just called")
	}
	m.record("UpdateLearningState")
	return m.UpdateLearningStateFunc(ctx, card)
}

func (m *cardRepoMock) SetStarred(ctx context.Context, userID, cardID uuid.UUID, starred bool) (*domain.Flashcard, error) {
	if m.SetStarredFunc == nil {
		panic("cardRepoMock.SetStarredFunc: method is nil but cardRepo.SetStarred was just called")
	}
	m.record("SetStarred")
	return m.SetStarredFunc(ctx, userID, cardID, starred)
}

func (m *cardRepoMock) Delete(ctx context.Context, userID, cardID uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("cardRepoMock.DeleteFunc: method is nil but cardRepo.Delete was just called")
	}
	m.record("Delete")
	return m.DeleteFunc(ctx, userID, cardID)
}

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	CreateFunc           func(ctx context.Context, session *domain.StudySession) (*domain.StudySession, error)
	GetByIDFunc          func(ctx context.Context, userID, sessionID uuid.UUID) (*domain.StudySession, error)
	GetByIDForUpdateFunc func(ctx context.Context, userID, sessionID uuid.UUID) (*domain.StudySession, error)
	GetActiveFunc        func(ctx context.Context, userID uuid.UUID) (*domain.StudySession, error)
	UpdateFunc           func(ctx context.Context, from, to *domain.StudySession) (*domain.StudySession, error)

	mu      sync.Mutex
	updates []domain.StudySession
}

func (m *sessionRepoMock) Create(ctx context.Context, session *domain.StudySession) (*domain.StudySession, error) {
	if m.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but sessionRepo.Create was just called")
	}
	return m.CreateFunc(ctx, session)
}

func (m *sessionRepoMock) GetByID(ctx context.Context, userID, sessionID uuid.UUID) (*domain.StudySession, error) {
	if m.GetByIDFunc == nil {
		panic("sessionRepoMock.GetByIDFunc: method is nil but sessionRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, userID, sessionID)
}

func (m *sessionRepoMock) GetByIDForUpdate(ctx context.Context, userID, sessionID uuid.UUID) (*domain.StudySession, error) {
	if m.GetByIDForUpdateFunc == nil {
		panic("sessionRepoMock.GetByIDForUpdateFunc: method is nil but sessionRepo.GetByIDForUpdate was just called")
	}
	return m.GetByIDForUpdateFunc(ctx, userID, sessionID)
}

func (m *sessionRepoMock) GetActive(ctx context.Context, userID uuid.UUID) (*domain.StudySession, error) {
	if m.GetActiveFunc == nil {
		panic("sessionRepoMock.GetActiveFunc: method is nil but sessionRepo.GetActive was just called")
	}
	return m.GetActiveFunc(ctx, userID)
}

func (m *sessionRepoMock) Update(ctx context.Context, from, to *domain.StudySession) (*domain.StudySession, error) {
	m.mu.Lock()
	m.updates = append(m.updates, *to)
	m.mu.Unlock()
	if m.UpdateFunc == nil {
		s := *to
		return &s, nil
	}
	return m.UpdateFunc(ctx, from, to)
}

// sessionStore holds one session and applies updates as a compare-and-set on
// position and phase, like the postgres repository.
type sessionStore struct {
	mu      sync.Mutex
	current domain.StudySession
}

func (st *sessionStore) get(context.Context, uuid.UUID, uuid.UUID) (*domain.StudySession, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s := st.current
	return &s, nil
}

func (st *sessionStore) update(_ context.Context, from, to *domain.StudySession) (*domain.StudySession, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.current.Position != from.Position || st.current.Phase != from.Phase || st.current.Phase.IsTerminal() {
		return nil, domain.ErrConflict
	}
	st.current = *to
	s := *to
	return &s, nil
}

func (st *sessionStore) snapshot() domain.StudySession {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.current
}

func (m *sessionRepoMock) Updates() []domain.StudySession {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.StudySession(nil), m.updates...)
}

var _ txManager = &txManagerMock{}

// txManagerMock runs fn inline; RunInTxFunc can override that.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
	calls       int
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	if m.RunInTxFunc != nil {
		return m.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}
