package usecases

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/instamakaan/instamakaan/internal/domain/agent"
	"github.com/instamakaan/instamakaan/internal/domain/inquiry"
	vo "github.com/instamakaan/instamakaan/internal/domain/inquiry/valueobjects"
	"github.com/instamakaan/instamakaan/internal/domain/shared/events"
	"github.com/instamakaan/instamakaan/internal/infrastructure/database/dbtest"
	"github.com/instamakaan/instamakaan/internal/infrastructure/permission"
	"github.com/instamakaan/instamakaan/internal/infrastructure/repository"
	"github.com/instamakaan/instamakaan/internal/shared/authorization"
	"github.com/instamakaan/instamakaan/internal/shared/db"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
	"github.com/instamakaan/instamakaan/internal/shared/services/markdown"
)

type mockEventDispatcher struct {
	mu        sync.Mutex
	published []events.DomainEvent
}

func (m *mockEventDispatcher) Publish(event events.DomainEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.published = append(m.published, event)
	return nil
}

func (m *mockEventDispatcher) PublishAll(evts []events.DomainEvent) error {
	for _, e := range evts {
		_ = m.Publish(e)
	}
	return nil
}

func (m *mockEventDispatcher) Subscribe(string, events.EventHandler) error   { return nil }
func (m *mockEventDispatcher) Unsubscribe(string, events.EventHandler) error { return nil }
func (m *mockEventDispatcher) Start() error                                  { return nil }
func (m *mockEventDispatcher) Stop() error                                   { return nil }

func (m *mockEventDispatcher) types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.published))
	for _, e := range m.published {
		out = append(out, e.GetEventType())
	}
	return out
}

type mockInquiryRepository struct {
	inquiry.Repository
	GetByIDFunc func(ctx context.Context, id string) (*inquiry.Inquiry, error)
	ListFunc    func(ctx context.Context, filter inquiry.Filter) ([]*inquiry.Inquiry, int64, error)
}

func (m *mockInquiryRepository) GetByID(ctx context.Context, id string) (*inquiry.Inquiry, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, inquiry.ErrInquiryNotFound
}

func (m *mockInquiryRepository) List(ctx context.Context, filter inquiry.Filter) ([]*inquiry.Inquiry, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

// fixture wires the use cases to real repositories on an in-memory database.
type fixture struct {
	db         *gorm.DB
	inquiries  *repository.InquiryRepository
	agents     *repository.AgentRepository
	directory  *repository.PropertyDirectory
	txMgr      *db.TransactionManager
	authz      authorization.Authorizer
	dispatcher *mockEventDispatcher
	markdown   markdown.Renderer
	log        logger.Interface

	admin authorization.Actor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	gdb := dbtest.NewSQLite(t)
	log := logger.NewLogger()
	authz, err := permission.NewMemoryEnforcer(log)
	require.NoError(t, err)

	return &fixture{
		db:         gdb,
		inquiries:  repository.NewInquiryRepository(gdb),
		agents:     repository.NewAgentRepository(gdb),
		directory:  repository.NewPropertyDirectory(gdb),
		txMgr:      db.NewTransactionManager(gdb),
		authz:      authz,
		dispatcher: &mockEventDispatcher{},
		markdown:   markdown.NewRenderer(),
		log:        log,
		admin:      authorization.NewActor("adm_1", authorization.RoleAdmin, "Neha"),
	}
}

func (f *fixture) seedAgent(t *testing.T, name, email string, status agent.Status) *agent.Agent {
	t.Helper()
	a, err := agent.NewAgent(agent.Profile{Name: name, Email: email}, status)
	require.NoError(t, err)
	require.NoError(t, f.agents.Create(context.Background(), a))
	return a
}

func (f *fixture) seedInquiry(t *testing.T, typ vo.InquiryType) *inquiry.Inquiry {
	t.Helper()
	i, err := inquiry.NewInquiry(inquiry.NewInquiryParams{
		Name:        "Asha",
		Phone:       "9876543210",
		InquiryType: typ,
	})
	require.NoError(t, err)
	require.NoError(t, f.inquiries.Create(context.Background(), i))
	return i
}

func agentActor(a *agent.Agent) authorization.Actor {
	return authorization.NewActor(a.ID(), authorization.RoleAgent, a.Name())
}

func (f *fixture) createUseCase() *CreateInquiryUseCase {
	return NewCreateInquiryUseCase(f.inquiries, f.directory, f.markdown, f.dispatcher, f.log)
}

func (f *fixture) getUseCase() *GetInquiryUseCase {
	return NewGetInquiryUseCase(f.inquiries, f.directory, f.authz, f.markdown, f.log)
}

func (f *fixture) listUseCase() *ListInquiriesUseCase {
	return NewListInquiriesUseCase(f.inquiries, f.directory, f.authz, f.log)
}

func (f *fixture) assignUseCase() *AssignInquiryUseCase {
	return NewAssignInquiryUseCase(f.inquiries, f.agents, f.txMgr, f.authz, f.dispatcher, f.log)
}

func (f *fixture) unassignUseCase() *UnassignInquiryUseCase {
	return NewUnassignInquiryUseCase(f.inquiries, f.txMgr, f.authz, f.dispatcher, f.log)
}

func (f *fixture) advanceUseCase() *AdvanceStatusUseCase {
	return NewAdvanceStatusUseCase(f.inquiries, f.txMgr, f.authz, f.dispatcher, f.log)
}

func (f *fixture) setStatusUseCase() *SetStatusUseCase {
	return NewSetStatusUseCase(f.inquiries, f.txMgr, f.authz, f.dispatcher, f.log)
}

func (f *fixture) addNoteUseCase() *AddNoteUseCase {
	return NewAddNoteUseCase(f.inquiries, f.txMgr, f.authz, f.dispatcher, f.markdown, f.log)
}

func (f *fixture) historyUseCase() *GetHistoryUseCase {
	return NewGetHistoryUseCase(f.inquiries, f.authz, f.markdown, f.log)
}
