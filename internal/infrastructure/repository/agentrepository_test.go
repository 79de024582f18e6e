package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/instamakaan/instamakaan/internal/domain/agent"
	"github.com/instamakaan/instamakaan/internal/infrastructure/database/dbtest"
	"github.com/instamakaan/instamakaan/internal/shared/db"
)

func newAgent(t *testing.T, name, email string, status agent.Status) *agent.Agent {
	t.Helper()
	a, err := agent.NewAgent(agent.Profile{Name: name, Email: email, Designation: "Field Agent"}, status)
	require.NoError(t, err)
	return a
}

func TestAgentRepository_CRUD(t *testing.T) {
	repo := NewAgentRepository(dbtest.NewSQLite(t))
	ctx := context.Background()

	riya := newAgent(t, "Riya", "riya@example.com", agent.StatusActive)
	require.NoError(t, repo.Create(ctx, riya))

	dup := newAgent(t, "Riya Two", "riya@example.com", agent.StatusActive)
	assert.ErrorIs(t, repo.Create(ctx, dup), agent.ErrDuplicateEmail)

	got, err := repo.GetByID(ctx, riya.ID())
	require.NoError(t, err)
	assert.Equal(t, "Riya", got.Name())

	require.NoError(t, got.ChangeStatus(agent.StatusInactive))
	require.NoError(t, repo.Update(ctx, got))

	got, err = repo.GetByID(ctx, riya.ID())
	require.NoError(t, err)
	assert.False(t, got.IsActive())

	require.NoError(t, repo.Delete(ctx, riya.ID()))
	_, err = repo.GetByID(ctx, riya.ID())
	assert.ErrorIs(t, err, agent.ErrAgentNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, riya.ID()), agent.ErrAgentNotFound)
}

func TestAgentRepository_ListAndCount(t *testing.T) {
	repo := NewAgentRepository(dbtest.NewSQLite(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newAgent(t, "Zoya", "zoya@example.com", agent.StatusActive)))
	require.NoError(t, repo.Create(ctx, newAgent(t, "Karan", "karan@example.com", agent.StatusInactive)))
	require.NoError(t, repo.Create(ctx, newAgent(t, "Anil", "anil@example.com", agent.StatusActive)))

	list, total, err := repo.List(ctx, agent.Filter{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, list, 2)
	assert.Equal(t, "Anil", list[0].Name())
	assert.Equal(t, "Karan", list[1].Name())

	list, _, err = repo.List(ctx, agent.Filter{Search: "ZOY"})
	require.NoError(t, err)
	require.Len(t, list, 1)

	active := agent.StatusActive
	n, err := repo.Count(ctx, &active)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestAgentRepository_GetByIDForUpdate(t *testing.T) {
	gdb := dbtest.NewSQLite(t)
	repo := NewAgentRepository(gdb)
	ctx := context.Background()

	riya := newAgent(t, "Riya", "riya@example.com", agent.StatusActive)
	require.NoError(t, repo.Create(ctx, riya))

	err := db.NewTransactionManager(gdb).RunInTransaction(ctx, func(txCtx context.Context) error {
		locked, err := repo.GetByIDForUpdate(txCtx, riya.ID())
		require.NoError(t, err)
		assert.Equal(t, "Riya", locked.Name())

		_, err = repo.GetByIDForUpdate(txCtx, "agt_missing")
		assert.ErrorIs(t, err, agent.ErrAgentNotFound)
		return nil
	})
	require.NoError(t, err)
}
