package seed

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/instamakaan/instamakaan/internal/application/agent/usecases"
	"github.com/instamakaan/instamakaan/internal/domain/agent"
	"github.com/instamakaan/instamakaan/internal/infrastructure/database/dbtest"
	"github.com/instamakaan/instamakaan/internal/infrastructure/permission"
	"github.com/instamakaan/instamakaan/internal/infrastructure/repository"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
)

const sampleSeed = `
agents:
  - name: Ravi Kumar
    email: ravi@instamakaan.test
    phone: "+91 98765 43210"
    designation: Field Agent
  - name: Meera Joshi
    email: meera@instamakaan.test
    status: inactive
listings:
  - id: prop_101
    owner_id: own_7
    title: 2BHK in Baner
`

func TestParse(t *testing.T) {
	f, err := Parse(strings.NewReader(sampleSeed))
	require.NoError(t, err)
	require.Len(t, f.Agents, 2)
	require.Len(t, f.Listings, 1)
	assert.Equal(t, "Field Agent", f.Agents[0].Designation)
	assert.Equal(t, "own_7", f.Listings[0].OwnerID)
}

func TestParse_Empty(t *testing.T) {
	f, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.Agents)
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := Parse(strings.NewReader("agents:\n  - name: A\n    mail: a@b.c\n"))
	assert.Error(t, err)
}

func TestParse_ListingNeedsOwner(t *testing.T) {
	_, err := Parse(strings.NewReader("listings:\n  - id: prop_1\n"))
	assert.ErrorContains(t, err, "owner_id")
}

func TestSeeder_Run(t *testing.T) {
	gdb := dbtest.NewSQLite(t)
	log := logger.NewLogger()
	enforcer, err := permission.NewMemoryEnforcer(log)
	require.NoError(t, err)

	agentRepo := repository.NewAgentRepository(gdb)
	directory := repository.NewPropertyDirectory(gdb)
	seeder := NewSeeder(usecases.NewCreateAgentUseCase(agentRepo, enforcer, log), directory, log)

	f, err := Parse(strings.NewReader(sampleSeed))
	require.NoError(t, err)
	ctx := context.Background()

	res, err := seeder.Run(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, Result{AgentsCreated: 2, ListingsStored: 1}, res)

	inactive := agent.StatusInactive
	count, err := agentRepo.Count(ctx, &inactive)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	listing, err := directory.GetListing(ctx, "prop_101")
	require.NoError(t, err)
	assert.Equal(t, "2BHK in Baner", listing.Title)

	// second run is idempotent for agents
	res, err = seeder.Run(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, Result{AgentsSkipped: 2, ListingsStored: 1}, res)
}
