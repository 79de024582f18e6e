package http

import (
	agentUsecases "github.com/instamakaan/instamakaan/internal/application/agent/usecases"
	inquiryUsecases "github.com/instamakaan/instamakaan/internal/application/inquiry/usecases"
	notificationUsecases "github.com/instamakaan/instamakaan/internal/application/notification/usecases"
	statsUsecases "github.com/instamakaan/instamakaan/internal/application/stats/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Inquiry lifecycle
	createInquiryUC   *inquiryUsecases.CreateInquiryUseCase
	getInquiryUC      *inquiryUsecases.GetInquiryUseCase
	listInquiriesUC   *inquiryUsecases.ListInquiriesUseCase
	assignInquiryUC   *inquiryUsecases.AssignInquiryUseCase
	unassignInquiryUC *inquiryUsecases.UnassignInquiryUseCase
	advanceStatusUC   *inquiryUsecases.AdvanceStatusUseCase
	setStatusUC       *inquiryUsecases.SetStatusUseCase
	addNoteUC         *inquiryUsecases.AddNoteUseCase
	getHistoryUC      *inquiryUsecases.GetHistoryUseCase

	// Agent registry
	createAgentUC *agentUsecases.CreateAgentUseCase
	updateAgentUC *agentUsecases.UpdateAgentUseCase
	getAgentUC    *agentUsecases.GetAgentUseCase
	listAgentsUC  *agentUsecases.ListAgentsUseCase
	deleteAgentUC *agentUsecases.DeleteAgentUseCase

	// Stats
	statusCountsUC *statsUsecases.GetStatusCountsUseCase
	typeCountsUC   *statsUsecases.GetTypeCountsUseCase
	agentSummaryUC *statsUsecases.GetAgentSummaryUseCase
	ownerSummaryUC *statsUsecases.GetOwnerSummaryUseCase
	dashboardUC    *statsUsecases.GetDashboardOverviewUseCase

	// Notification
	notifyAssignmentUC *notificationUsecases.NotifyAssignmentUseCase
}
