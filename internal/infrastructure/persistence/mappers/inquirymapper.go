package mappers

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/instamakaan/instamakaan/internal/domain/inquiry"
	vo "github.com/instamakaan/instamakaan/internal/domain/inquiry/valueobjects"
	"github.com/instamakaan/instamakaan/internal/infrastructure/persistence/models"
	"github.com/instamakaan/instamakaan/internal/shared/biztime"
)

// InquiryMapper converts between inquiry aggregates and persistence models.
type InquiryMapper interface {
	ToModel(i *inquiry.Inquiry) *models.InquiryModel
	ToDomain(model *models.InquiryModel) (*inquiry.Inquiry, error)
	ToDomainList(list []models.InquiryModel) ([]*inquiry.Inquiry, error)
	LogToModel(e *inquiry.LogEntry) *models.InquiryLogModel
	LogToDomain(model *models.InquiryLogModel) (*inquiry.LogEntry, error)
}

type InquiryMapperImpl struct{}

func NewInquiryMapper() InquiryMapper {
	return &InquiryMapperImpl{}
}

func (m *InquiryMapperImpl) ToModel(i *inquiry.Inquiry) *models.InquiryModel {
	return &models.InquiryModel{
		ID:                i.ID(),
		Name:              i.Name(),
		Phone:             i.Phone(),
		Email:             i.Email(),
		Message:           i.Message(),
		InquiryType:       i.InquiryType().String(),
		SourcePage:        i.SourcePage(),
		ListingID:         stringPtr(i.ListingID()),
		WhatsappOptIn:     i.WhatsappOptIn(),
		PreferredVisitAt:  millisPtr(i.PreferredVisitAt()),
		Metadata:          datatypes.JSONMap(i.Metadata()),
		Status:            i.Status().String(),
		AssignedAgentID:   stringPtr(i.AssignedAgentID()),
		AssignedAgentName: i.AssignedAgentName(),
		Version:           i.Version(),
		CreatedAt:         i.CreatedAt().UnixMilli(),
		UpdatedAt:         i.UpdatedAt().UnixMilli(),
		ClosedAt:          millisPtr(i.ClosedAt()),
		NextFollowupAt:    millisPtr(i.NextFollowupAt()),
	}
}

// ToDomain keeps the stored status verbatim, unknown values included, so
// that workflow operations can report them instead of failing the read.
func (m *InquiryMapperImpl) ToDomain(model *models.InquiryModel) (*inquiry.Inquiry, error) {
	if model == nil {
		return nil, nil
	}

	status := vo.Status(model.Status)
	if parsed, err := vo.ParseStatus(model.Status); err == nil {
		status = parsed
	}

	i, err := inquiry.ReconstructInquiry(
		model.ID,
		model.Name,
		model.Phone,
		model.Email,
		model.Message,
		vo.InquiryType(model.InquiryType),
		model.SourcePage,
		derefString(model.ListingID),
		model.WhatsappOptIn,
		timePtr(model.PreferredVisitAt),
		map[string]interface{}(model.Metadata),
		status,
		derefString(model.AssignedAgentID),
		model.AssignedAgentName,
		model.Version,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
		timePtr(model.ClosedAt),
		timePtr(model.NextFollowupAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct inquiry %s: %w", model.ID, err)
	}
	return i, nil
}

func (m *InquiryMapperImpl) ToDomainList(list []models.InquiryModel) ([]*inquiry.Inquiry, error) {
	out := make([]*inquiry.Inquiry, 0, len(list))
	for idx := range list {
		i, err := m.ToDomain(&list[idx])
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, nil
}

func (m *InquiryMapperImpl) LogToModel(e *inquiry.LogEntry) *models.InquiryLogModel {
	return &models.InquiryLogModel{
		ID:              e.ID(),
		InquiryID:       e.InquiryID(),
		Kind:            string(e.Kind()),
		Message:         e.Message(),
		Author:          e.Author().Name,
		AuthorID:        e.Author().ID,
		AgentID:         stringPtr(e.AgentID()),
		ResultingStatus: stringPtr(e.ResultingStatus().String()),
		CreatedAt:       e.CreatedAt().UnixMilli(),
	}
}

func (m *InquiryMapperImpl) LogToDomain(model *models.InquiryLogModel) (*inquiry.LogEntry, error) {
	var resulting vo.Status
	if model.ResultingStatus != nil {
		resulting = vo.Status(*model.ResultingStatus)
		if parsed, err := vo.ParseStatus(*model.ResultingStatus); err == nil {
			resulting = parsed
		}
	}

	return inquiry.ReconstructLogEntry(
		model.ID,
		model.InquiryID,
		inquiry.LogEntryKind(model.Kind),
		model.Message,
		inquiry.Author{ID: model.AuthorID, Name: model.Author},
		derefString(model.AgentID),
		resulting,
		biztime.FromMillis(model.CreatedAt),
	)
}
