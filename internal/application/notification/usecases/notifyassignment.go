package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/instamakaan/instamakaan/internal/application/notification/dto"
	"github.com/instamakaan/instamakaan/internal/domain/agent"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
)

type NotifyAssignmentCommand struct {
	InquiryID       string
	AgentID         string
	PreviousAgentID string
	CustomerName    string
	CustomerPhone   string
	InquiryType     string
	Message         string
}

// NotifyAssignmentUseCase emails the agent an inquiry was assigned to. It
// runs after the assignment committed, so a failure here is reported but
// never undoes the assignment.
type NotifyAssignmentUseCase struct {
	agentRepo    agent.Repository
	mailer       AssignmentMailer
	dashboardURL string
	logger       logger.Interface
}

func NewNotifyAssignmentUseCase(
	agentRepo agent.Repository,
	mailer AssignmentMailer,
	dashboardURL string,
	logger logger.Interface,
) *NotifyAssignmentUseCase {
	return &NotifyAssignmentUseCase{
		agentRepo:    agentRepo,
		mailer:       mailer,
		dashboardURL: strings.TrimRight(dashboardURL, "/"),
		logger:       logger,
	}
}

func (uc *NotifyAssignmentUseCase) Execute(ctx context.Context, cmd NotifyAssignmentCommand) error {
	if cmd.AgentID == "" {
		return fmt.Errorf("agent ID is required")
	}

	a, err := uc.agentRepo.GetByID(ctx, cmd.AgentID)
	if err != nil {
		if stderrors.Is(err, agent.ErrAgentNotFound) {
			uc.logger.Warnw("assigned agent no longer exists, skipping notification",
				"inquiry_id", cmd.InquiryID,
				"agent_id", cmd.AgentID,
			)
			return nil
		}
		return fmt.Errorf("failed to load agent: %w", err)
	}
	msg := dto.AssignmentEmail{
		To:            a.Email(),
		AgentName:     a.Name(),
		InquiryID:     cmd.InquiryID,
		CustomerName:  cmd.CustomerName,
		CustomerPhone: cmd.CustomerPhone,
		InquiryType:   cmd.InquiryType,
		Message:       cmd.Message,
		Reassigned:    cmd.PreviousAgentID != "",
	}
	if uc.dashboardURL != "" {
		msg.DashboardURL = uc.dashboardURL + "/" + cmd.InquiryID
	}

	if err := uc.mailer.SendAssignmentEmail(msg); err != nil {
		uc.logger.Errorw("failed to send assignment email",
			"inquiry_id", cmd.InquiryID,
			"agent_id", a.ID(),
			"error", err,
		)
		return fmt.Errorf("failed to send assignment email: %w", err)
	}

	uc.logger.Infow("assignment email sent",
		"inquiry_id", cmd.InquiryID,
		"agent_id", a.ID(),
	)
	return nil
}
