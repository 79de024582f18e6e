package stats

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/instamakaan/instamakaan/internal/application/stats/dto"
	"github.com/instamakaan/instamakaan/internal/application/stats/usecases"
	"github.com/instamakaan/instamakaan/internal/interfaces/http/handlers/testutil"
	"github.com/instamakaan/instamakaan/internal/shared/errors"
)

type mockStatusCountsUC struct {
	result *dto.StatusCounts
	err    error
	got    usecases.CountsQuery
}

func (m *mockStatusCountsUC) Execute(_ context.Context, q usecases.CountsQuery) (*dto.StatusCounts, error) {
	m.got = q
	return m.result, m.err
}

type mockTypeCountsUC struct {
	result map[string]int64
	err    error
	got    usecases.CountsQuery
}

func (m *mockTypeCountsUC) Execute(_ context.Context, q usecases.CountsQuery) (map[string]int64, error) {
	m.got = q
	return m.result, m.err
}

type mockOwnerSummaryUC struct {
	result *dto.OwnerSummaryDTO
	err    error
	got    usecases.OwnerSummaryQuery
}

func (m *mockOwnerSummaryUC) Execute(_ context.Context, q usecases.OwnerSummaryQuery) (*dto.OwnerSummaryDTO, error) {
	m.got = q
	return m.result, m.err
}

type mockDashboardUC struct {
	result *dto.DashboardOverviewDTO
	err    error
}

func (m *mockDashboardUC) Execute(_ context.Context, _ usecases.DashboardOverviewQuery) (*dto.DashboardOverviewDTO, error) {
	return m.result, m.err
}

type testDeps struct {
	statusCountsUC usecases.GetStatusCountsExecutor
	typeCountsUC   usecases.GetTypeCountsExecutor
	ownerSummaryUC usecases.GetOwnerSummaryExecutor
	dashboardUC    usecases.GetDashboardOverviewExecutor
}

func newTestStatsHandler(deps testDeps) *StatsHandler {
	return NewStatsHandler(
		deps.statusCountsUC,
		deps.typeCountsUC,
		deps.ownerSummaryUC,
		deps.dashboardUC,
		testutil.NewMockLogger(),
	)
}

func TestStatsHandler_GetStatusCounts_PassesScope(t *testing.T) {
	counts := dto.StatusCounts{Counts: map[string]int64{"new": 2, "assigned": 1}, Total: 3}
	mockUC := &mockStatusCountsUC{result: &counts}
	handler := newTestStatsHandler(testDeps{statusCountsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/stats/status", nil)
	testutil.SetActor(c, testutil.AdminActor())
	testutil.SetQueryParams(c, map[string]string{"owner_id": "own_1"})

	handler.GetStatusCounts(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "own_1", mockUC.got.OwnerID)
	assert.Empty(t, mockUC.got.AgentID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var got dto.StatusCounts
	require.NoError(t, json.Unmarshal(resp.Data, &got))
	assert.Equal(t, int64(3), got.Total)
}

func TestStatsHandler_GetStatusCounts_BothScopes(t *testing.T) {
	mockUC := &mockStatusCountsUC{err: errors.NewValidationError("agent_id and owner_id are mutually exclusive")}
	handler := newTestStatsHandler(testDeps{statusCountsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/stats/status", nil)
	testutil.SetActor(c, testutil.AdminActor())
	testutil.SetQueryParams(c, map[string]string{"owner_id": "own_1", "agent_id": "agent_1"})

	handler.GetStatusCounts(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatsHandler_GetTypeCounts_Forbidden(t *testing.T) {
	mockUC := &mockTypeCountsUC{err: errors.NewForbiddenError("owners may only read their own listings")}
	handler := newTestStatsHandler(testDeps{typeCountsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/stats/types", nil)
	testutil.SetActor(c, testutil.OwnerActor("x"))

	handler.GetTypeCounts(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestStatsHandler_GetTypeCounts_Success(t *testing.T) {
	mockUC := &mockTypeCountsUC{result: map[string]int64{"callback": 1, "general": 0}}
	handler := newTestStatsHandler(testDeps{typeCountsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/stats/types", nil)
	testutil.SetActor(c, testutil.AgentActor("agent_1"))

	handler.GetTypeCounts(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "agent_1", mockUC.got.Actor.ID)
}

func TestStatsHandler_GetOwnerSummary(t *testing.T) {
	mockUC := &mockOwnerSummaryUC{result: &dto.OwnerSummaryDTO{OwnerID: "own_1", TotalInquiries: 4}}
	handler := newTestStatsHandler(testDeps{ownerSummaryUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/owners/own_1/summary", nil)
	testutil.SetActor(c, testutil.OwnerActor("own_1"))
	testutil.SetURLParam(c, "id", "own_1")

	handler.GetOwnerSummary(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "own_1", mockUC.got.OwnerID)
	assert.True(t, mockUC.got.Actor.IsOwner())
}

func TestStatsHandler_GetDashboardOverview(t *testing.T) {
	t.Run("admin", func(t *testing.T) {
		mockUC := &mockDashboardUC{result: &dto.DashboardOverviewDTO{TotalInquiries: 5, ActiveAgents: 1}}
		handler := newTestStatsHandler(testDeps{dashboardUC: mockUC})

		c, w := testutil.NewTestContext(http.MethodGet, "/dashboard/overview", nil)
		testutil.SetActor(c, testutil.AdminActor())

		handler.GetDashboardOverview(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("storage unavailable", func(t *testing.T) {
		mockUC := &mockDashboardUC{err: errors.NewTransientError("failed to count inquiries")}
		handler := newTestStatsHandler(testDeps{dashboardUC: mockUC})

		c, w := testutil.NewTestContext(http.MethodGet, "/dashboard/overview", nil)
		testutil.SetActor(c, testutil.AdminActor())

		handler.GetDashboardOverview(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
