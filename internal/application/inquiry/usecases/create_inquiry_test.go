package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/instamakaan/instamakaan/internal/domain/inquiry"
	"github.com/instamakaan/instamakaan/internal/infrastructure/database/dbtest"
	"github.com/instamakaan/instamakaan/internal/shared/errors"
)

func TestCreateInquiryUseCase_Success(t *testing.T) {
	f := newFixture(t)
	dbtest.SeedListing(t, f.db, "prop_1", "own_1", "2BHK in Baner")

	result, err := f.createUseCase().Execute(context.Background(), CreateInquiryCommand{
		Name:          "  <b>Asha</b> ",
		Phone:         "9876543210",
		Email:         "asha@example.com",
		Message:       "Is parking <i>available</i>?",
		InquiryType:   "Schedule_Visit",
		SourcePage:    "/listings/prop_1",
		ListingID:     "prop_1",
		WhatsappOptIn: true,
		Metadata:      map[string]interface{}{"move_in": "next month"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Asha", result.Name)
	assert.Equal(t, "Is parking available?", result.Message)
	assert.Equal(t, "schedule_visit", result.InquiryType)
	assert.Equal(t, "new", result.Status)
	assert.Equal(t, "New", result.StatusLabel)
	assert.Equal(t, "2BHK in Baner", result.ListingTitle)
	assert.False(t, result.NeedsAssignment)
	assert.True(t, result.WhatsappOptIn)

	stored, err := f.inquiries.GetByID(context.Background(), result.ID)
	require.NoError(t, err)
	assert.Equal(t, "next month", stored.Metadata()["move_in"])
	assert.Equal(t, []string{inquiry.EventTypeCreated}, f.dispatcher.types())
}

func TestCreateInquiryUseCase_CustomTypeAccepted(t *testing.T) {
	f := newFixture(t)

	result, err := f.createUseCase().Execute(context.Background(), CreateInquiryCommand{
		Name:        "Vikram",
		Phone:       "+91 99887 76655",
		InquiryType: "corporate_lease",
	})
	require.NoError(t, err)
	assert.Equal(t, "corporate_lease", result.InquiryType)
}

func TestCreateInquiryUseCase_Validation(t *testing.T) {
	f := newFixture(t)
	uc := f.createUseCase()

	tests := []struct {
		name string
		cmd  CreateInquiryCommand
	}{
		{"missing name", CreateInquiryCommand{Phone: "9876543210"}},
		{"markup only name", CreateInquiryCommand{Name: "<b></b>", Phone: "9876543210"}},
		{"missing phone", CreateInquiryCommand{Name: "Asha"}},
		{"bad phone", CreateInquiryCommand{Name: "Asha", Phone: "call me"}},
		{"bad email", CreateInquiryCommand{Name: "Asha", Phone: "9876543210", Email: "nope"}},
		{"bad type", CreateInquiryCommand{Name: "Asha", Phone: "9876543210", InquiryType: "drop; table"}},
		{"unknown listing", CreateInquiryCommand{Name: "Asha", Phone: "9876543210", ListingID: "prop_x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err), "got %v", err)
		})
	}

	n, err := f.inquiries.Count(context.Background(), inquiry.Filter{})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCreateInquiryUseCase_StorageFailureIsTransient(t *testing.T) {
	f := newFixture(t)
	repo := &failingCreateRepository{Repository: f.inquiries, err: fmt.Errorf("connection reset")}
	uc := NewCreateInquiryUseCase(repo, f.directory, f.markdown, f.dispatcher, f.log)

	_, err := uc.Execute(context.Background(), CreateInquiryCommand{Name: "Asha", Phone: "9876543210"})
	assert.True(t, errors.IsTransientError(err))
	assert.Empty(t, f.dispatcher.types())
}

type failingCreateRepository struct {
	inquiry.Repository
	err error
}

func (r *failingCreateRepository) Create(context.Context, *inquiry.Inquiry) error {
	return r.err
}
