package usecases

import (
	"context"

	"github.com/instamakaan/instamakaan/internal/application/agent/dto"
)

type CreateAgentExecutor interface {
	Execute(ctx context.Context, cmd CreateAgentCommand) (*dto.AgentDTO, error)
}

type UpdateAgentExecutor interface {
	Execute(ctx context.Context, cmd UpdateAgentCommand) (*dto.AgentDTO, error)
}

type GetAgentExecutor interface {
	Execute(ctx context.Context, query GetAgentQuery) (*dto.AgentDTO, error)
}

type ListAgentsExecutor interface {
	Execute(ctx context.Context, query ListAgentsQuery) (*ListAgentsResult, error)
}

type DeleteAgentExecutor interface {
	Execute(ctx context.Context, cmd DeleteAgentCommand) error
}

// HandledCounter reports how many inquiries an agent holds or has held.
type HandledCounter interface {
	CountHandledByAgent(ctx context.Context, agentID string) (int64, error)
}

// OpenInquiryCounter reports how many non-closed inquiries an agent holds.
type OpenInquiryCounter interface {
	CountOpenByAgent(ctx context.Context, agentID string) (int64, error)
}
