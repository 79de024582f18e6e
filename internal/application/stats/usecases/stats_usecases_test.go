package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/instamakaan/instamakaan/internal/application/stats/dto"
	"github.com/instamakaan/instamakaan/internal/domain/agent"
	"github.com/instamakaan/instamakaan/internal/domain/inquiry"
	vo "github.com/instamakaan/instamakaan/internal/domain/inquiry/valueobjects"
	"github.com/instamakaan/instamakaan/internal/infrastructure/database/dbtest"
	"github.com/instamakaan/instamakaan/internal/infrastructure/permission"
	"github.com/instamakaan/instamakaan/internal/infrastructure/persistence/models"
	"github.com/instamakaan/instamakaan/internal/infrastructure/repository"
	"github.com/instamakaan/instamakaan/internal/shared/authorization"
	"github.com/instamakaan/instamakaan/internal/shared/errors"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
	"github.com/instamakaan/instamakaan/internal/shared/services/markdown"
)

type statsFixture struct {
	db        *gorm.DB
	inquiries *repository.InquiryRepository
	agents    *repository.AgentRepository
	directory *repository.PropertyDirectory
	authz     authorization.Authorizer
	log       logger.Interface

	admin authorization.Actor
	riya  *agent.Agent
	karan *agent.Agent
}

// newStatsFixture seeds two listings of one owner and five inquiries:
// two held by Riya (one talked), one moved from Riya to Karan, and two new.
func newStatsFixture(t *testing.T) *statsFixture {
	t.Helper()
	gdb := dbtest.NewSQLite(t)
	log := logger.NewLogger()
	authz, err := permission.NewMemoryEnforcer(log)
	require.NoError(t, err)

	f := &statsFixture{
		db:        gdb,
		inquiries: repository.NewInquiryRepository(gdb),
		agents:    repository.NewAgentRepository(gdb),
		directory: repository.NewPropertyDirectory(gdb),
		authz:     authz,
		log:       log,
		admin:     authorization.NewActor("adm_1", authorization.RoleAdmin, ""),
	}

	dbtest.SeedListing(t, gdb, "prop_1", "own_1", "2BHK Baner")
	dbtest.SeedListing(t, gdb, "prop_2", "own_1", "Studio Wakad")
	dbtest.SeedListing(t, gdb, "prop_3", "own_2", "Villa Aundh")

	f.riya = f.seedAgent(t, "Riya", "riya@example.com", agent.StatusActive)
	f.karan = f.seedAgent(t, "Karan", "karan@example.com", agent.StatusInactive)

	a := f.seedInquiry(t, vo.TypeScheduleVisit, "prop_1")
	f.assign(t, a, f.riya)
	entry, err := a.Advance(inquiry.Author{ID: f.riya.ID(), Name: "Riya"}, "")
	require.NoError(t, err)
	f.persist(t, a, entry)

	b := f.seedInquiry(t, vo.TypeCallback, "prop_2")
	f.assign(t, b, f.riya)

	c := f.seedInquiry(t, vo.TypeGeneral, "prop_3")
	f.assign(t, c, f.riya)
	f.assign(t, c, f.karan)

	f.seedInquiry(t, vo.TypeGeneral, "")
	f.seedInquiry(t, vo.InquiryType("corporate_lease"), "prop_1")

	return f
}

func (f *statsFixture) seedAgent(t *testing.T, name, email string, status agent.Status) *agent.Agent {
	t.Helper()
	a, err := agent.NewAgent(agent.Profile{Name: name, Email: email}, status)
	require.NoError(t, err)
	require.NoError(t, f.agents.Create(context.Background(), a))
	return a
}

func (f *statsFixture) seedInquiry(t *testing.T, typ vo.InquiryType, listingID string) *inquiry.Inquiry {
	t.Helper()
	i, err := inquiry.NewInquiry(inquiry.NewInquiryParams{Name: "Asha", Phone: "9876543210", InquiryType: typ, ListingID: listingID})
	require.NoError(t, err)
	require.NoError(t, f.inquiries.Create(context.Background(), i))
	return i
}

func (f *statsFixture) assign(t *testing.T, i *inquiry.Inquiry, a *agent.Agent) {
	t.Helper()
	entry, err := i.AssignTo(a.ID(), a.Name())
	require.NoError(t, err)
	f.persist(t, i, entry)
}

func (f *statsFixture) persist(t *testing.T, i *inquiry.Inquiry, entry *inquiry.LogEntry) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.inquiries.Update(ctx, i))
	require.NoError(t, f.inquiries.AppendLog(ctx, entry))
	fresh, err := f.inquiries.GetByID(ctx, i.ID())
	require.NoError(t, err)
	*i = *fresh
}

func TestGetStatusCountsUseCase_Scopes(t *testing.T) {
	f := newStatsFixture(t)
	uc := NewGetStatusCountsUseCase(f.inquiries, f.directory, f.authz, f.log)
	ctx := context.Background()

	global, err := uc.Execute(ctx, CountsQuery{Actor: f.admin})
	require.NoError(t, err)
	assert.Len(t, global.Counts, 7)
	assert.Zero(t, global.Counts[dto.UnknownStatusKey])
	assert.Equal(t, int64(5), global.Total)
	assert.Equal(t, int64(2), global.Counts["new"])
	assert.Equal(t, int64(2), global.Counts["assigned"])
	assert.Equal(t, int64(1), global.Counts["talked"])
	assert.Zero(t, global.Counts["closed"])

	again, err := uc.Execute(ctx, CountsQuery{Actor: f.admin})
	require.NoError(t, err)
	assert.Equal(t, global, again)

	// Riya's own scope ignores the agent_id she passes.
	riya := authorization.NewActor(f.riya.ID(), authorization.RoleAgent, "Riya")
	mine, err := uc.Execute(ctx, CountsQuery{Actor: riya, AgentID: f.karan.ID()})
	require.NoError(t, err)
	assert.Equal(t, int64(2), mine.Total)

	owner := authorization.NewActor("own_1", authorization.RoleOwner, "")
	owned, err := uc.Execute(ctx, CountsQuery{Actor: owner, OwnerID: "own_2"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), owned.Total)

	byOwner, err := uc.Execute(ctx, CountsQuery{Actor: f.admin, OwnerID: "own_2"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), byOwner.Total)

	noListings, err := uc.Execute(ctx, CountsQuery{Actor: f.admin, OwnerID: "own_none"})
	require.NoError(t, err)
	assert.Zero(t, noListings.Total)

	tenant := authorization.NewActor("ten_1", authorization.RoleTenant, "")
	_, err = uc.Execute(ctx, CountsQuery{Actor: tenant})
	assert.True(t, errors.IsType(err, errors.ErrorTypeForbidden))

	_, err = uc.Execute(ctx, CountsQuery{Actor: f.admin, AgentID: "a", OwnerID: "b"})
	assert.True(t, errors.IsValidationError(err))
}

func TestGetStatusCountsUseCase_SumMatchesCount(t *testing.T) {
	f := newStatsFixture(t)
	uc := NewGetStatusCountsUseCase(f.inquiries, f.directory, f.authz, f.log)
	ctx := context.Background()

	for _, scope := range []inquiry.Scope{
		inquiry.GlobalScope(),
		inquiry.AgentScope(f.riya.ID()),
		inquiry.ListingScope([]string{"prop_1", "prop_2"}),
	} {
		q := CountsQuery{Actor: f.admin, AgentID: scope.AgentID}
		if scope.ByListings {
			q.OwnerID = "own_1"
		}
		counts, err := uc.Execute(ctx, q)
		require.NoError(t, err)

		var sum int64
		for _, n := range counts.Counts {
			sum += n
		}
		n, err := f.inquiries.Count(ctx, inquiry.Filter{Scope: scope})
		require.NoError(t, err)
		assert.Equal(t, n, sum)
		assert.Equal(t, n, counts.Total)
	}
}

func TestGetStatusCountsUseCase_UnknownStatusStaysInTotal(t *testing.T) {
	f := newStatsFixture(t)
	ctx := context.Background()

	stray := f.seedInquiry(t, vo.TypeGeneral, "")
	require.NoError(t, f.db.Model(&models.InquiryModel{}).
		Where("id = ?", stray.ID()).
		Update("status", "on_hold").Error)

	counts, err := NewGetStatusCountsUseCase(f.inquiries, f.directory, f.authz, f.log).
		Execute(ctx, CountsQuery{Actor: f.admin})
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.Counts[dto.UnknownStatusKey])
	assert.Equal(t, int64(6), counts.Total)

	overview, err := NewGetDashboardOverviewUseCase(f.inquiries, f.agents, f.authz, f.log).
		Execute(ctx, DashboardOverviewQuery{Actor: f.admin})
	require.NoError(t, err)
	assert.Equal(t, overview.TotalInquiries, overview.StatusCounts.Total)
}

func TestGetTypeCountsUseCase(t *testing.T) {
	f := newStatsFixture(t)
	uc := NewGetTypeCountsUseCase(f.inquiries, f.directory, f.authz, f.log)

	counts, err := uc.Execute(context.Background(), CountsQuery{Actor: f.admin})
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts["general"])
	assert.Equal(t, int64(1), counts["schedule_visit"])
	assert.Equal(t, int64(1), counts["corporate_lease"])
	assert.Zero(t, counts["owner"])
	assert.Len(t, counts, 6)
}

func TestGetAgentSummaryUseCase(t *testing.T) {
	f := newStatsFixture(t)
	uc := NewGetAgentSummaryUseCase(f.inquiries, f.agents, f.authz, markdown.NewRenderer(), f.log)
	ctx := context.Background()

	riya := authorization.NewActor(f.riya.ID(), authorization.RoleAgent, "Riya")
	summary, err := uc.Execute(ctx, AgentSummaryQuery{Actor: riya, AgentID: f.riya.ID()})
	require.NoError(t, err)

	// Two held now plus the one reassigned to Karan.
	assert.Equal(t, int64(3), summary.TotalInquiries)
	assert.Equal(t, int64(3), summary.Agent.TotalInquiriesHandled)
	assert.Equal(t, int64(3), summary.StatusCounts.Total)
	require.Len(t, summary.Inquiries, 3)
	for _, item := range summary.Inquiries {
		assert.NotEmpty(t, item.ConversationLogs)
	}

	_, err = uc.Execute(ctx, AgentSummaryQuery{Actor: riya, AgentID: f.karan.ID()})
	assert.True(t, errors.IsType(err, errors.ErrorTypeForbidden))

	karanSummary, err := uc.Execute(ctx, AgentSummaryQuery{Actor: f.admin, AgentID: f.karan.ID()})
	require.NoError(t, err)
	assert.Equal(t, int64(1), karanSummary.TotalInquiries)

	_, err = uc.Execute(ctx, AgentSummaryQuery{Actor: f.admin, AgentID: "agt_missing"})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestGetOwnerSummaryUseCase(t *testing.T) {
	f := newStatsFixture(t)
	uc := NewGetOwnerSummaryUseCase(f.inquiries, f.directory, f.authz, f.log)
	ctx := context.Background()

	owner := authorization.NewActor("own_1", authorization.RoleOwner, "")
	summary, err := uc.Execute(ctx, OwnerSummaryQuery{Actor: owner, OwnerID: "own_1"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"prop_1", "prop_2"}, summary.ListingIDs)
	assert.Equal(t, int64(3), summary.TotalInquiries)
	assert.Equal(t, int64(1), summary.TypeCounts["corporate_lease"])
	require.Len(t, summary.ByListing, 2)

	var total int64
	for _, l := range summary.ByListing {
		total += l.TotalInquiries
	}
	assert.Equal(t, summary.TotalInquiries, total)

	_, err = uc.Execute(ctx, OwnerSummaryQuery{Actor: owner, OwnerID: "own_2"})
	assert.True(t, errors.IsType(err, errors.ErrorTypeForbidden))

	riya := authorization.NewActor(f.riya.ID(), authorization.RoleAgent, "Riya")
	_, err = uc.Execute(ctx, OwnerSummaryQuery{Actor: riya, OwnerID: "own_1"})
	assert.True(t, errors.IsType(err, errors.ErrorTypeForbidden))
}

func TestGetDashboardOverviewUseCase(t *testing.T) {
	f := newStatsFixture(t)
	uc := NewGetDashboardOverviewUseCase(f.inquiries, f.agents, f.authz, f.log)
	ctx := context.Background()

	overview, err := uc.Execute(ctx, DashboardOverviewQuery{Actor: f.admin})
	require.NoError(t, err)
	assert.Equal(t, int64(5), overview.TotalInquiries)
	assert.Equal(t, int64(5), overview.InquiriesToday)
	assert.Zero(t, overview.NeedsAssignment)
	assert.Equal(t, int64(2), overview.TotalAgents)
	assert.Equal(t, int64(1), overview.ActiveAgents)
	assert.Len(t, overview.RecentInquiries, 5)

	riya := authorization.NewActor(f.riya.ID(), authorization.RoleAgent, "Riya")
	_, err = uc.Execute(ctx, DashboardOverviewQuery{Actor: riya})
	assert.True(t, errors.IsType(err, errors.ErrorTypeForbidden))
}
