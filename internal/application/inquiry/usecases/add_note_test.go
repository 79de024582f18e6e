package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/instamakaan/instamakaan/internal/domain/agent"
	"github.com/instamakaan/instamakaan/internal/domain/inquiry"
	vo "github.com/instamakaan/instamakaan/internal/domain/inquiry/valueobjects"
	"github.com/instamakaan/instamakaan/internal/shared/errors"
)

func TestAddNoteUseCase(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	riya := f.seedAgent(t, "Riya", "riya@example.com", agent.StatusActive)
	karan := f.seedAgent(t, "Karan", "karan@example.com", agent.StatusActive)
	inq := f.seedInquiry(t, vo.TypeGeneral)
	uc := f.addNoteUseCase()

	// Admins may annotate before anyone is assigned.
	note, err := uc.Execute(ctx, AddNoteCommand{Actor: f.admin, InquiryID: inq.ID(), Text: "  **VIP** lead  "})
	require.NoError(t, err)
	assert.Equal(t, "**VIP** lead", note.Message)
	assert.Equal(t, "Admin", note.Author)
	assert.Contains(t, note.MessageHTML, "<strong>VIP</strong>")
	assert.Equal(t, string(inquiry.KindNote), note.Kind)

	_, err = f.assignUseCase().Execute(ctx, AssignInquiryCommand{Actor: f.admin, InquiryID: inq.ID(), AgentID: riya.ID()})
	require.NoError(t, err)

	tests := []struct {
		name     string
		cmd      AddNoteCommand
		wantType errors.ErrorType
	}{
		{"blank", AddNoteCommand{Actor: agentActor(riya), InquiryID: inq.ID(), Text: "   "}, errors.ErrorTypeValidation},
		{"too long", AddNoteCommand{Actor: agentActor(riya), InquiryID: inq.ID(), Text: strings.Repeat("x", inquiry.MaxNoteLength+1)}, errors.ErrorTypeValidation},
		{"other agent", AddNoteCommand{Actor: agentActor(karan), InquiryID: inq.ID(), Text: "hi"}, errors.ErrorTypeForbidden},
		{"unknown inquiry", AddNoteCommand{Actor: f.admin, InquiryID: "inq_missing", Text: "hi"}, errors.ErrorTypeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.cmd)
			require.Error(t, err)
			assert.True(t, errors.IsType(err, tt.wantType), "got %v", err)
		})
	}

	note, err = uc.Execute(ctx, AddNoteCommand{Actor: agentActor(riya), InquiryID: inq.ID(), Text: "<script>x</script>visit at 5"})
	require.NoError(t, err)
	assert.Equal(t, "Riya", note.Author)
	assert.NotContains(t, note.MessageHTML, "<script>")

	got, err := f.inquiries.GetByID(ctx, inq.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusAssigned, got.Status())

	_, err = f.setStatusUseCase().Execute(ctx, SetStatusCommand{Actor: f.admin, InquiryID: inq.ID(), Status: "closed"})
	require.NoError(t, err)
	_, err = uc.Execute(ctx, AddNoteCommand{Actor: f.admin, InquiryID: inq.ID(), Text: "late note"})
	assert.True(t, errors.IsType(err, errors.ErrorTypeTerminalState))
}

func TestGetHistoryUseCase_AppendOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inq := f.seedInquiry(t, vo.TypeGeneral)
	history := f.historyUseCase()
	addNote := f.addNoteUseCase()

	var previous []string
	for i := 0; i < 3; i++ {
		_, err := addNote.Execute(ctx, AddNoteCommand{Actor: f.admin, InquiryID: inq.ID(), Text: strings.Repeat("n", i+1)})
		require.NoError(t, err)

		logs, err := history.Execute(ctx, GetHistoryQuery{Actor: f.admin, InquiryID: inq.ID()})
		require.NoError(t, err)
		require.Len(t, logs, len(previous)+1)
		for j, msg := range previous {
			assert.Equal(t, msg, logs[j].Message)
		}
		previous = append(previous, logs[len(logs)-1].Message)
	}
}
