package dto

import (
	agentdto "github.com/instamakaan/instamakaan/internal/application/agent/dto"
	inquirydto "github.com/instamakaan/instamakaan/internal/application/inquiry/dto"
	vo "github.com/instamakaan/instamakaan/internal/domain/inquiry/valueobjects"
)

// UnknownStatusKey buckets rows whose stored status is outside the pipeline,
// so Total still equals the number of inquiries in scope.
const UnknownStatusKey = "unknown"

// StatusCounts holds every canonical status, zero-filled, the unknown bucket
// and their sum.
type StatusCounts struct {
	Counts map[string]int64 `json:"counts"`
	Total  int64            `json:"total"`
}

func NewStatusCounts(raw map[vo.Status]int64) StatusCounts {
	sc := StatusCounts{Counts: make(map[string]int64, len(vo.AllStatuses())+1)}
	for _, s := range vo.AllStatuses() {
		sc.Counts[s.String()] = 0
	}
	sc.Counts[UnknownStatusKey] = 0

	for s, n := range raw {
		key := s.String()
		if !s.IsValid() {
			key = UnknownStatusKey
		}
		sc.Counts[key] += n
		sc.Total += n
	}
	return sc
}

// NewTypeCounts zero-fills the known types and keeps any other type present.
func NewTypeCounts(raw map[vo.InquiryType]int64) map[string]int64 {
	out := make(map[string]int64, len(vo.KnownInquiryTypes())+len(raw))
	for _, t := range vo.KnownInquiryTypes() {
		out[t.String()] = 0
	}
	for t, n := range raw {
		out[t.String()] += n
	}
	return out
}

type AgentSummaryDTO struct {
	Agent          *agentdto.AgentDTO       `json:"agent"`
	TotalInquiries int64                    `json:"total_inquiries"`
	StatusCounts   StatusCounts             `json:"status_counts"`
	Inquiries      []*inquirydto.InquiryDTO `json:"inquiries"`
}

type ListingSummaryDTO struct {
	ListingID      string `json:"listing_id"`
	Title          string `json:"title"`
	TotalInquiries int64  `json:"total_inquiries"`
}

type OwnerSummaryDTO struct {
	OwnerID        string              `json:"owner_id"`
	ListingIDs     []string            `json:"listing_ids"`
	TotalInquiries int64               `json:"total_inquiries"`
	StatusCounts   StatusCounts        `json:"status_counts"`
	TypeCounts     map[string]int64    `json:"type_counts"`
	ByListing      []ListingSummaryDTO `json:"by_listing"`
}

type DashboardOverviewDTO struct {
	TotalInquiries  int64                    `json:"total_inquiries"`
	InquiriesToday  int64                    `json:"inquiries_today"`
	NeedsAssignment int64                    `json:"needs_assignment"`
	TotalAgents     int64                    `json:"total_agents"`
	ActiveAgents    int64                    `json:"active_agents"`
	StatusCounts    StatusCounts             `json:"status_counts"`
	TypeCounts      map[string]int64         `json:"type_counts"`
	RecentInquiries []*inquirydto.InquiryDTO `json:"recent_inquiries"`
}
