package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/instamakaan/instamakaan/internal/application/notification/usecases"
	"github.com/instamakaan/instamakaan/internal/domain/inquiry"
	"github.com/instamakaan/instamakaan/internal/domain/shared/events"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
)

type recordingNotifier struct {
	commands []usecases.NotifyAssignmentCommand
}

func (r *recordingNotifier) Execute(_ context.Context, cmd usecases.NotifyAssignmentCommand) error {
	r.commands = append(r.commands, cmd)
	return nil
}

func TestAssignmentSubscriber_Handle(t *testing.T) {
	notifier := &recordingNotifier{}
	sub := NewAssignmentSubscriber(notifier, logger.NewLogger())

	assert.True(t, sub.CanHandle(inquiry.EventTypeAssigned))
	assert.False(t, sub.CanHandle(inquiry.EventTypeNoteAdded))

	event := inquiry.AssignedEvent{
		BaseEvent:       events.NewBaseEvent("inq_1", inquiry.EventTypeAssigned, time.Now(), 2),
		AgentID:         "agt_1",
		AgentName:       "Riya",
		PreviousAgentID: "agt_0",
		CustomerName:    "Asha",
		CustomerPhone:   "9876543210",
		InquiryType:     "callback",
	}
	require.NoError(t, sub.Handle(event))
	require.NoError(t, sub.Handle(&event))

	require.Len(t, notifier.commands, 2)
	cmd := notifier.commands[0]
	assert.Equal(t, "inq_1", cmd.InquiryID)
	assert.Equal(t, "agt_1", cmd.AgentID)
	assert.Equal(t, "agt_0", cmd.PreviousAgentID)
	assert.Equal(t, "callback", cmd.InquiryType)
}

func TestAssignmentSubscriber_IgnoresOtherEvents(t *testing.T) {
	notifier := &recordingNotifier{}
	sub := NewAssignmentSubscriber(notifier, logger.NewLogger())

	other := inquiry.NoteAddedEvent{BaseEvent: events.NewBaseEvent("inq_1", inquiry.EventTypeNoteAdded, time.Now(), 3)}
	require.NoError(t, sub.Handle(other))
	assert.Empty(t, notifier.commands)
}
