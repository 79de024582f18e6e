package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/instamakaan/instamakaan/internal/domain/inquiry"
	vo "github.com/instamakaan/instamakaan/internal/domain/inquiry/valueobjects"
	"github.com/instamakaan/instamakaan/internal/infrastructure/database/dbtest"
	"github.com/instamakaan/instamakaan/internal/shared/biztime"
	"github.com/instamakaan/instamakaan/internal/shared/db"
)

func createInquiry(t *testing.T, repo *InquiryRepository, typ vo.InquiryType, listingID string) *inquiry.Inquiry {
	t.Helper()
	i, err := inquiry.NewInquiry(inquiry.NewInquiryParams{
		Name:        "Asha",
		Phone:       "9876543210",
		InquiryType: typ,
		ListingID:   listingID,
		Metadata:    map[string]interface{}{"budget": "30000"},
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), i))
	return i
}

func TestInquiryRepository_CreateAndGet(t *testing.T) {
	repo := NewInquiryRepository(dbtest.NewSQLite(t))
	ctx := context.Background()

	created := createInquiry(t, repo, vo.TypeScheduleVisit, "prop_1")

	got, err := repo.GetByID(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, created.ID(), got.ID())
	assert.Equal(t, vo.StatusNew, got.Status())
	assert.Equal(t, "prop_1", got.ListingID())
	assert.Equal(t, "30000", got.Metadata()["budget"])
	assert.Equal(t, created.CreatedAt().UnixMilli(), got.CreatedAt().UnixMilli())

	_, err = repo.GetByID(ctx, "inq_missing")
	assert.ErrorIs(t, err, inquiry.ErrInquiryNotFound)
}

func TestInquiryRepository_UpdateChecksVersion(t *testing.T) {
	repo := NewInquiryRepository(dbtest.NewSQLite(t))
	ctx := context.Background()
	created := createInquiry(t, repo, vo.TypeGeneral, "")

	first, err := repo.GetByID(ctx, created.ID())
	require.NoError(t, err)
	stale, err := repo.GetByID(ctx, created.ID())
	require.NoError(t, err)

	_, err = first.AssignTo("agt_1", "Riya")
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, first))

	_, err = stale.AssignTo("agt_2", "Karan")
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Update(ctx, stale), inquiry.ErrConcurrentModification)

	got, err := repo.GetByID(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, "agt_1", got.AssignedAgentID())
	assert.Equal(t, 2, got.Version())
}

func TestInquiryRepository_UpdateClearsAssignment(t *testing.T) {
	repo := NewInquiryRepository(dbtest.NewSQLite(t))
	ctx := context.Background()
	created := createInquiry(t, repo, vo.TypeGeneral, "")

	_, err := created.AssignTo("agt_1", "Riya")
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, created))

	loaded, err := repo.GetByIDForUpdate(ctx, created.ID())
	require.NoError(t, err)
	_, err = loaded.Unassign()
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, loaded))

	got, err := repo.GetByID(ctx, created.ID())
	require.NoError(t, err)
	assert.False(t, got.IsAssigned())
	assert.True(t, got.NeedsAssignment())

	needs := true
	list, total, err := repo.List(ctx, inquiry.Filter{NeedsAssignment: &needs})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, created.ID(), list[0].ID())
}

func TestInquiryRepository_AppendLogOrdersAndClamps(t *testing.T) {
	repo := NewInquiryRepository(dbtest.NewSQLite(t))
	ctx := context.Background()

	clock := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	restore := biztime.SetNowFunc(func() time.Time { return clock })
	defer restore()

	i := createInquiry(t, repo, vo.TypeGeneral, "")
	entry, err := i.AssignTo("agt_1", "Riya")
	require.NoError(t, err)
	require.NoError(t, repo.AppendLog(ctx, entry))

	// Clock steps backwards; the next entry must not sort before the first.
	clock = clock.Add(-time.Minute)
	note, err := i.AddNote(inquiry.Author{ID: "agt_1", Name: "Riya"}, "called")
	require.NoError(t, err)
	require.NoError(t, repo.AppendLog(ctx, note))

	logs, err := repo.ListLogs(ctx, i.ID())
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "Assigned to Riya", logs[0].Message())
	assert.Equal(t, "called", logs[1].Message())
	assert.Less(t, logs[0].ID(), logs[1].ID())
	assert.False(t, logs[1].CreatedAt().Before(logs[0].CreatedAt()))

	empty, err := repo.ListLogs(ctx, "inq_other")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestInquiryRepository_CountsAndScopes(t *testing.T) {
	repo := NewInquiryRepository(dbtest.NewSQLite(t))
	ctx := context.Background()

	a := createInquiry(t, repo, vo.TypeScheduleVisit, "prop_1")
	createInquiry(t, repo, vo.TypeCallback, "prop_2")
	createInquiry(t, repo, vo.InquiryType("corporate_lease"), "")

	entry, err := a.AssignTo("agt_1", "Riya")
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, a))
	require.NoError(t, repo.AppendLog(ctx, entry))

	byStatus, err := repo.CountByStatus(ctx, inquiry.GlobalScope())
	require.NoError(t, err)
	assert.Equal(t, int64(2), byStatus[vo.StatusNew])
	assert.Equal(t, int64(1), byStatus[vo.StatusAssigned])

	byType, err := repo.CountByType(ctx, inquiry.ListingScope([]string{"prop_1", "prop_2"}))
	require.NoError(t, err)
	assert.Equal(t, int64(1), byType[vo.TypeScheduleVisit])
	assert.Equal(t, int64(1), byType[vo.TypeCallback])
	assert.Zero(t, byType["corporate_lease"])

	none, err := repo.CountByStatus(ctx, inquiry.ListingScope(nil))
	require.NoError(t, err)
	assert.Empty(t, none)

	agentCounts, err := repo.CountByStatus(ctx, inquiry.AgentScope("agt_1"))
	require.NoError(t, err)
	assert.Equal(t, map[vo.Status]int64{vo.StatusAssigned: 1}, agentCounts)

	open, err := repo.CountOpenByAgent(ctx, "agt_1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), open)
}

func TestInquiryRepository_HandledByIncludesPastAssignments(t *testing.T) {
	repo := NewInquiryRepository(dbtest.NewSQLite(t))
	ctx := context.Background()

	i := createInquiry(t, repo, vo.TypeGeneral, "")
	first, err := i.AssignTo("agt_1", "Riya")
	require.NoError(t, err)
	require.NoError(t, repo.AppendLog(ctx, first))
	second, err := i.AssignTo("agt_2", "Karan")
	require.NoError(t, err)
	require.NoError(t, repo.AppendLog(ctx, second))
	require.NoError(t, repo.Update(ctx, i))

	handled, err := repo.CountHandledByAgent(ctx, "agt_1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), handled)

	list, _, err := repo.List(ctx, inquiry.Filter{HandledByAgentID: "agt_2"})
	require.NoError(t, err)
	require.Len(t, list, 1)

	current, _, err := repo.List(ctx, inquiry.Filter{Scope: inquiry.AgentScope("agt_1")})
	require.NoError(t, err)
	assert.Empty(t, current)
}

func TestInquiryRepository_RollbackDiscardsLog(t *testing.T) {
	gdb := dbtest.NewSQLite(t)
	repo := NewInquiryRepository(gdb)
	tm := db.NewTransactionManager(gdb)
	ctx := context.Background()

	i := createInquiry(t, repo, vo.TypeGeneral, "")
	err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		entry, err := i.AssignTo("agt_1", "Riya")
		require.NoError(t, err)
		require.NoError(t, repo.AppendLog(txCtx, entry))
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	logs, err := repo.ListLogs(ctx, i.ID())
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestInquiryRepository_FollowupDueFilter(t *testing.T) {
	repo := NewInquiryRepository(dbtest.NewSQLite(t))
	ctx := context.Background()
	at := time.Date(2026, 4, 20, 9, 30, 0, 0, time.UTC)

	due := createInquiry(t, repo, vo.TypeCallback, "")
	_, err := due.AssignTo("agt_1", "Riya")
	require.NoError(t, err)
	_, err = due.Advance(inquiry.Author{Name: "Riya"}, "", inquiry.WithFollowup(at))
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, due))

	later := createInquiry(t, repo, vo.TypeCallback, "")
	_, err = later.AssignTo("agt_1", "Riya")
	require.NoError(t, err)
	_, err = later.Advance(inquiry.Author{Name: "Riya"}, "", inquiry.WithFollowup(at.Add(48*time.Hour)))
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, later))

	createInquiry(t, repo, vo.TypeGeneral, "")

	got, err := repo.GetByID(ctx, due.ID())
	require.NoError(t, err)
	require.NotNil(t, got.NextFollowupAt())
	assert.True(t, got.NextFollowupAt().Equal(at))

	list, total, err := repo.List(ctx, inquiry.Filter{FollowupDueBefore: &at})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, due.ID(), list[0].ID())

	_, total, err = repo.List(ctx, inquiry.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}
