package usecases

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/instamakaan/instamakaan/internal/domain/agent"
	vo "github.com/instamakaan/instamakaan/internal/domain/inquiry/valueobjects"
	"github.com/instamakaan/instamakaan/internal/shared/errors"
)

// TestInquiryLifecycle walks one visit request from the public form to
// closure, checking the log after each step.
func TestInquiryLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	riya := f.seedAgent(t, "Riya", "riya@example.com", agent.StatusActive)

	created, err := f.createUseCase().Execute(ctx, CreateInquiryCommand{
		Name:        "Asha",
		Phone:       "+91 98765 43210",
		InquiryType: "schedule_visit",
	})
	require.NoError(t, err)
	assert.Equal(t, vo.StatusNew.String(), created.Status)
	assert.Empty(t, created.AssignedAgentID)

	history := f.historyUseCase()
	logs, err := history.Execute(ctx, GetHistoryQuery{Actor: f.admin, InquiryID: created.ID})
	require.NoError(t, err)
	assert.Len(t, logs, 0)

	assigned, err := f.assignUseCase().Execute(ctx, AssignInquiryCommand{
		Actor:     f.admin,
		InquiryID: created.ID,
		AgentID:   riya.ID(),
	})
	require.NoError(t, err)
	assert.Equal(t, vo.StatusAssigned.String(), assigned.Status)
	assert.Equal(t, riya.ID(), assigned.AssignedAgentID)

	logs, err = history.Execute(ctx, GetHistoryQuery{Actor: f.admin, InquiryID: created.ID})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "System", logs[0].Author)
	assert.Equal(t, "Assigned to Riya", logs[0].Message)

	advance := f.advanceUseCase()
	actor := agentActor(riya)
	for _, want := range []vo.Status{vo.StatusTalked, vo.StatusVisitScheduled, vo.StatusVisitConfirmed} {
		got, err := advance.Execute(ctx, AdvanceStatusCommand{Actor: actor, InquiryID: created.ID})
		require.NoError(t, err)
		assert.Equal(t, want.String(), got.Status)
	}

	logs, err = history.Execute(ctx, GetHistoryQuery{Actor: actor, InquiryID: created.ID})
	require.NoError(t, err)
	require.Len(t, logs, 4)
	assert.Equal(t, "Riya", logs[1].Author)
	assert.Equal(t, "Status updated to talked", logs[1].Message)
	assert.Equal(t, vo.StatusVisitConfirmed.String(), logs[3].ResultingStatus)

	closed, err := advance.Execute(ctx, AdvanceStatusCommand{Actor: actor, InquiryID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, vo.StatusClosed.String(), closed.Status)
	assert.NotNil(t, closed.ClosedAt)

	_, err = advance.Execute(ctx, AdvanceStatusCommand{Actor: actor, InquiryID: created.ID})
	assert.True(t, errors.IsType(err, errors.ErrorTypeTerminalState))

	after, err := f.getUseCase().Execute(ctx, GetInquiryQuery{Actor: f.admin, InquiryID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, vo.StatusClosed.String(), after.Status)
	assert.Len(t, after.ConversationLogs, 5)
	assert.Equal(t, closed.Version, after.Version)
}

func TestAssign_InactiveAgentLeavesInquiryUnchanged(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	karan := f.seedAgent(t, "Karan", "karan@example.com", agent.StatusInactive)
	inq := f.seedInquiry(t, vo.TypeGeneral)

	_, err := f.assignUseCase().Execute(ctx, AssignInquiryCommand{
		Actor:     f.admin,
		InquiryID: inq.ID(),
		AgentID:   karan.ID(),
	})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeAgentInactive))

	got, err := f.inquiries.GetByID(ctx, inq.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusNew, got.Status())
	assert.False(t, got.IsAssigned())
	assert.Equal(t, inq.Version(), got.Version())

	logs, err := f.inquiries.ListLogs(ctx, inq.ID())
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestAddNote_ConcurrentNotesAreAllKept(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	riya := f.seedAgent(t, "Riya", "riya@example.com", agent.StatusActive)
	inq := f.seedInquiry(t, vo.TypeCallback)

	_, err := f.assignUseCase().Execute(ctx, AssignInquiryCommand{Actor: f.admin, InquiryID: inq.ID(), AgentID: riya.ID()})
	require.NoError(t, err)

	addNote := f.addNoteUseCase()
	cmds := []AddNoteCommand{
		{Actor: f.admin, InquiryID: inq.ID(), Text: "customer prefers evenings"},
		{Actor: agentActor(riya), InquiryID: inq.ID(), Text: "called, no answer"},
	}

	var wg sync.WaitGroup
	errs := make([]error, len(cmds))
	for i, cmd := range cmds {
		wg.Add(1)
		go func(i int, cmd AddNoteCommand) {
			defer wg.Done()
			_, errs[i] = addNote.Execute(ctx, cmd)
		}(i, cmd)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	logs, err := f.historyUseCase().Execute(ctx, GetHistoryQuery{Actor: f.admin, InquiryID: inq.ID()})
	require.NoError(t, err)
	require.Len(t, logs, 3)

	messages := []string{logs[1].Message, logs[2].Message}
	assert.ElementsMatch(t, []string{"customer prefers evenings", "called, no answer"}, messages)
	assert.Less(t, logs[1].ID, logs[2].ID)
	assert.False(t, logs[2].CreatedAt.Before(logs[1].CreatedAt))

	got, err := f.inquiries.GetByID(ctx, inq.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusAssigned, got.Status())
}
