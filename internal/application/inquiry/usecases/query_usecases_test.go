package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/instamakaan/instamakaan/internal/domain/agent"
	"github.com/instamakaan/instamakaan/internal/domain/inquiry"
	vo "github.com/instamakaan/instamakaan/internal/domain/inquiry/valueobjects"
	"github.com/instamakaan/instamakaan/internal/infrastructure/database/dbtest"
	"github.com/instamakaan/instamakaan/internal/shared/authorization"
	"github.com/instamakaan/instamakaan/internal/shared/errors"
)

func TestGetInquiryUseCase_Access(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	riya := f.seedAgent(t, "Riya", "riya@example.com", agent.StatusActive)
	karan := f.seedAgent(t, "Karan", "karan@example.com", agent.StatusActive)
	inq := f.seedInquiry(t, vo.TypeGeneral)
	uc := f.getUseCase()

	_, err := uc.Execute(ctx, GetInquiryQuery{Actor: agentActor(riya), InquiryID: inq.ID()})
	assert.True(t, errors.IsType(err, errors.ErrorTypeForbidden))

	_, err = f.assignUseCase().Execute(ctx, AssignInquiryCommand{Actor: f.admin, InquiryID: inq.ID(), AgentID: riya.ID()})
	require.NoError(t, err)

	got, err := uc.Execute(ctx, GetInquiryQuery{Actor: agentActor(riya), InquiryID: inq.ID()})
	require.NoError(t, err)
	assert.Equal(t, "Riya", got.AssignedAgentName)
	require.Len(t, got.ConversationLogs, 1)

	_, err = uc.Execute(ctx, GetInquiryQuery{Actor: agentActor(karan), InquiryID: inq.ID()})
	assert.True(t, errors.IsType(err, errors.ErrorTypeForbidden))

	tenant := authorization.NewActor("ten_1", authorization.RoleTenant, "")
	_, err = uc.Execute(ctx, GetInquiryQuery{Actor: tenant, InquiryID: inq.ID()})
	assert.True(t, errors.IsType(err, errors.ErrorTypeForbidden))

	_, err = uc.Execute(ctx, GetInquiryQuery{Actor: authorization.Actor{}, InquiryID: inq.ID()})
	assert.True(t, errors.IsType(err, errors.ErrorTypeUnauthorized))

	_, err = uc.Execute(ctx, GetInquiryQuery{Actor: f.admin, InquiryID: "inq_missing"})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestGetInquiryUseCase_StorageFailure(t *testing.T) {
	f := newFixture(t)
	repo := &mockInquiryRepository{
		GetByIDFunc: func(context.Context, string) (*inquiry.Inquiry, error) {
			return nil, fmt.Errorf("dial tcp: i/o timeout")
		},
	}
	uc := NewGetInquiryUseCase(repo, f.directory, f.authz, f.markdown, f.log)

	_, err := uc.Execute(context.Background(), GetInquiryQuery{Actor: f.admin, InquiryID: "inq_1"})
	assert.True(t, errors.IsTransientError(err))
}

func TestListInquiriesUseCase(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	dbtest.SeedListing(t, f.db, "prop_1", "own_1", "Studio Wakad")
	riya := f.seedAgent(t, "Riya", "riya@example.com", agent.StatusActive)

	first := f.seedInquiry(t, vo.TypeGeneral)
	f.seedInquiry(t, vo.TypeCallback)
	withListing, err := f.createUseCase().Execute(ctx, CreateInquiryCommand{Name: "Dev", Phone: "9876500000", ListingID: "prop_1"})
	require.NoError(t, err)

	_, err = f.assignUseCase().Execute(ctx, AssignInquiryCommand{Actor: f.admin, InquiryID: first.ID(), AgentID: riya.ID()})
	require.NoError(t, err)

	uc := f.listUseCase()

	all, err := uc.Execute(ctx, ListInquiriesQuery{Actor: f.admin})
	require.NoError(t, err)
	assert.Equal(t, int64(3), all.Total)
	assert.Equal(t, 1, all.Page)

	fresh, err := uc.Execute(ctx, ListInquiriesQuery{Actor: f.admin, Status: "NEW"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), fresh.Total)

	byListing, err := uc.Execute(ctx, ListInquiriesQuery{Actor: f.admin, ListingID: "prop_1"})
	require.NoError(t, err)
	require.Len(t, byListing.Inquiries, 1)
	assert.Equal(t, withListing.ID, byListing.Inquiries[0].ID)
	assert.Equal(t, "Studio Wakad", byListing.Inquiries[0].ListingTitle)

	// Agents are pinned to their own inquiries whatever they ask for.
	mine, err := uc.Execute(ctx, ListInquiriesQuery{Actor: agentActor(riya), AgentID: "agt_other"})
	require.NoError(t, err)
	require.Len(t, mine.Inquiries, 1)
	assert.Equal(t, first.ID(), mine.Inquiries[0].ID)

	_, err = uc.Execute(ctx, ListInquiriesQuery{Actor: f.admin, Status: "archived"})
	assert.True(t, errors.IsValidationError(err))

	owner := authorization.NewActor("own_1", authorization.RoleOwner, "")
	_, err = uc.Execute(ctx, ListInquiriesQuery{Actor: owner})
	assert.True(t, errors.IsType(err, errors.ErrorTypeForbidden))
}
