package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/instamakaan/instamakaan/internal/domain/inquiry"
	"github.com/instamakaan/instamakaan/internal/domain/shared/events"
)

func TestEventRecorder_CountsEventsAndTransitions(t *testing.T) {
	r := NewEventRecorder()
	events0 := testutil.ToFloat64(InquiryEventsTotal.WithLabelValues(inquiry.EventTypeStatusChanged))
	moves0 := testutil.ToFloat64(StatusTransitionsTotal.WithLabelValues("talked", "visit_scheduled"))

	event := inquiry.StatusChangedEvent{
		BaseEvent: events.NewBaseEvent("inq_1", inquiry.EventTypeStatusChanged, time.Now(), 3),
		From:      "talked",
		To:        "visit_scheduled",
	}
	require.NoError(t, r.Handle(event))
	require.NoError(t, r.Handle(&event))

	assert.Equal(t, events0+2, testutil.ToFloat64(InquiryEventsTotal.WithLabelValues(inquiry.EventTypeStatusChanged)))
	assert.Equal(t, moves0+2, testutil.ToFloat64(StatusTransitionsTotal.WithLabelValues("talked", "visit_scheduled")))
}

func TestRecordRequest(t *testing.T) {
	before := testutil.ToFloat64(RequestsTotal.WithLabelValues("POST", "/inquiries", "201"))
	RecordRequest("POST", "/inquiries", "201", 0.02)
	assert.Equal(t, before+1, testutil.ToFloat64(RequestsTotal.WithLabelValues("POST", "/inquiries", "201")))
}
