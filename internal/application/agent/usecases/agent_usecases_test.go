package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/instamakaan/instamakaan/internal/domain/inquiry"
	"github.com/instamakaan/instamakaan/internal/infrastructure/database/dbtest"
	"github.com/instamakaan/instamakaan/internal/infrastructure/permission"
	"github.com/instamakaan/instamakaan/internal/infrastructure/repository"
	"github.com/instamakaan/instamakaan/internal/shared/authorization"
	"github.com/instamakaan/instamakaan/internal/shared/db"
	"github.com/instamakaan/instamakaan/internal/shared/errors"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
)

type agentFixture struct {
	agents    *repository.AgentRepository
	inquiries *repository.InquiryRepository
	txMgr     *db.TransactionManager
	authz     authorization.Authorizer
	log       logger.Interface
	admin     authorization.Actor
}

func newAgentFixture(t *testing.T) *agentFixture {
	t.Helper()
	gdb := dbtest.NewSQLite(t)
	log := logger.NewLogger()
	authz, err := permission.NewMemoryEnforcer(log)
	require.NoError(t, err)

	return &agentFixture{
		agents:    repository.NewAgentRepository(gdb),
		inquiries: repository.NewInquiryRepository(gdb),
		txMgr:     db.NewTransactionManager(gdb),
		authz:     authz,
		log:       log,
		admin:     authorization.NewActor("adm_1", authorization.RoleAdmin, ""),
	}
}

func (f *agentFixture) create(t *testing.T, name, email string) string {
	t.Helper()
	uc := NewCreateAgentUseCase(f.agents, f.authz, f.log)
	a, err := uc.Execute(context.Background(), CreateAgentCommand{Actor: f.admin, Name: name, Email: email, Designation: "Field Agent"})
	require.NoError(t, err)
	return a.ID
}

func TestCreateAgentUseCase(t *testing.T) {
	f := newAgentFixture(t)
	uc := NewCreateAgentUseCase(f.agents, f.authz, f.log)
	ctx := context.Background()

	a, err := uc.Execute(ctx, CreateAgentCommand{Actor: f.admin, Name: "Riya", Email: "Riya@Example.com", Phone: "9876543210"})
	require.NoError(t, err)
	assert.Equal(t, "riya@example.com", a.Email)
	assert.Equal(t, "active", a.Status)
	assert.Zero(t, a.TotalInquiriesHandled)

	_, err = uc.Execute(ctx, CreateAgentCommand{Actor: f.admin, Name: "Riya 2", Email: "riya@example.com"})
	assert.True(t, errors.IsConflictError(err))

	_, err = uc.Execute(ctx, CreateAgentCommand{Actor: f.admin, Name: "", Email: "x@example.com"})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(ctx, CreateAgentCommand{Actor: f.admin, Name: "Karan", Email: "karan@example.com", Status: "retired"})
	assert.True(t, errors.IsValidationError(err))

	agentActor := authorization.NewActor(a.ID, authorization.RoleAgent, "Riya")
	_, err = uc.Execute(ctx, CreateAgentCommand{Actor: agentActor, Name: "Karan", Email: "karan@example.com"})
	assert.True(t, errors.IsType(err, errors.ErrorTypeForbidden))
}

func TestUpdateAgentUseCase_Deactivate(t *testing.T) {
	f := newAgentFixture(t)
	id := f.create(t, "Riya", "riya@example.com")
	uc := NewUpdateAgentUseCase(f.agents, f.inquiries, f.txMgr, f.authz, f.log)

	inactive := "inactive"
	a, err := uc.Execute(context.Background(), UpdateAgentCommand{
		Actor:   f.admin,
		AgentID: id,
		Name:    "Riya Sharma",
		Email:   "riya@example.com",
		Status:  &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "Riya Sharma", a.Name)
	assert.Equal(t, "inactive", a.Status)

	_, err = uc.Execute(context.Background(), UpdateAgentCommand{Actor: f.admin, AgentID: "agt_missing", Name: "X", Email: "x@example.com"})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestGetAndListAgents_CountHandledInquiries(t *testing.T) {
	f := newAgentFixture(t)
	ctx := context.Background()
	riyaID := f.create(t, "Riya", "riya@example.com")
	f.create(t, "Anil", "anil@example.com")

	for i := 0; i < 2; i++ {
		inq, err := inquiry.NewInquiry(inquiry.NewInquiryParams{Name: "Asha", Phone: "9876543210"})
		require.NoError(t, err)
		require.NoError(t, f.inquiries.Create(ctx, inq))
		entry, err := inq.AssignTo(riyaID, "Riya")
		require.NoError(t, err)
		require.NoError(t, f.inquiries.Update(ctx, inq))
		require.NoError(t, f.inquiries.AppendLog(ctx, entry))
	}

	got, err := NewGetAgentUseCase(f.agents, f.inquiries, f.authz, f.log).Execute(ctx, GetAgentQuery{Actor: f.admin, AgentID: riyaID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.TotalInquiriesHandled)

	list, err := NewListAgentsUseCase(f.agents, f.inquiries, f.authz, f.log).Execute(ctx, ListAgentsQuery{Actor: f.admin})
	require.NoError(t, err)
	require.Len(t, list.Agents, 2)
	assert.Equal(t, "Anil", list.Agents[0].Name)
	assert.Equal(t, int64(2), list.Agents[1].TotalInquiriesHandled)

	_, err = NewListAgentsUseCase(f.agents, f.inquiries, f.authz, f.log).Execute(ctx, ListAgentsQuery{Actor: f.admin, Status: "sleeping"})
	assert.True(t, errors.IsValidationError(err))
}

func TestDeleteAgentUseCase_BlockedWhileHoldingOpenInquiries(t *testing.T) {
	f := newAgentFixture(t)
	ctx := context.Background()
	riyaID := f.create(t, "Riya", "riya@example.com")
	uc := NewDeleteAgentUseCase(f.agents, f.inquiries, f.txMgr, f.authz, f.log)

	inq, err := inquiry.NewInquiry(inquiry.NewInquiryParams{Name: "Asha", Phone: "9876543210"})
	require.NoError(t, err)
	require.NoError(t, f.inquiries.Create(ctx, inq))
	entry, err := inq.AssignTo(riyaID, "Riya")
	require.NoError(t, err)
	require.NoError(t, f.inquiries.Update(ctx, inq))
	require.NoError(t, f.inquiries.AppendLog(ctx, entry))

	err = uc.Execute(ctx, DeleteAgentCommand{Actor: f.admin, AgentID: riyaID})
	assert.True(t, errors.IsType(err, errors.ErrorTypeAgentHasOpenInquiries))

	loaded, err := f.inquiries.GetByID(ctx, inq.ID())
	require.NoError(t, err)
	closing, err := loaded.SetStatus("closed", inquiry.Author{ID: "adm_1", Name: "Admin"}, "")
	require.NoError(t, err)
	require.NoError(t, f.inquiries.Update(ctx, loaded))
	require.NoError(t, f.inquiries.AppendLog(ctx, closing))

	require.NoError(t, uc.Execute(ctx, DeleteAgentCommand{Actor: f.admin, AgentID: riyaID}))

	_, err = f.agents.GetByID(ctx, riyaID)
	assert.Error(t, err)

	logs, err := f.inquiries.ListLogs(ctx, inq.ID())
	require.NoError(t, err)
	assert.Equal(t, "Assigned to Riya", logs[0].Message())

	err = uc.Execute(ctx, DeleteAgentCommand{Actor: f.admin, AgentID: riyaID})
	assert.True(t, errors.IsNotFoundError(err))
}
