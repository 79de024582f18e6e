package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/instamakaan/instamakaan/internal/infrastructure/database/dbtest"
	"github.com/instamakaan/instamakaan/internal/shared/authorization"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
)

func TestMemoryEnforcer_DefaultPolicies(t *testing.T) {
	e, err := NewMemoryEnforcer(logger.NewLogger())
	require.NoError(t, err)

	tests := []struct {
		role     authorization.UserRole
		resource string
		action   string
		want     bool
	}{
		{authorization.RoleAdmin, authorization.ResourceInquiry, authorization.ActionSetStatus, true},
		{authorization.RoleAdmin, authorization.ResourceDashboard, authorization.ActionRead, true},
		{authorization.RoleAgent, authorization.ResourceInquiry, authorization.ActionAdvance, true},
		{authorization.RoleAgent, authorization.ResourceInquiry, authorization.ActionNote, true},
		{authorization.RoleAgent, authorization.ResourceInquiry, authorization.ActionAssign, false},
		{authorization.RoleAgent, authorization.ResourceInquiry, authorization.ActionSetStatus, false},
		{authorization.RoleAgent, authorization.ResourceAgent, authorization.ActionDelete, false},
		{authorization.RoleOwner, authorization.ResourceStats, authorization.ActionRead, true},
		{authorization.RoleOwner, authorization.ResourceInquiry, authorization.ActionRead, false},
		{authorization.RoleTenant, authorization.ResourceStats, authorization.ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.role.String()+":"+tt.resource+":"+tt.action, func(t *testing.T) {
			got, err := e.Authorize(tt.role, tt.resource, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnforcer_PersistsPolicies(t *testing.T) {
	db := dbtest.NewSQLite(t)

	e, err := NewEnforcer(db, logger.NewLogger())
	require.NoError(t, err)
	require.NoError(t, e.AddPolicy(authorization.RoleOwner.String(), authorization.ResourceDashboard, authorization.ActionRead))

	reopened, err := NewEnforcer(db, logger.NewLogger())
	require.NoError(t, err)

	allowed, err := reopened.Authorize(authorization.RoleOwner, authorization.ResourceDashboard, authorization.ActionRead)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = reopened.Authorize(authorization.RoleAgent, authorization.ResourceInquiry, authorization.ActionAdvance)
	require.NoError(t, err)
	assert.True(t, allowed)
}
