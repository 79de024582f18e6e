package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/instamakaan/instamakaan/internal/domain/inquiry"
	vo "github.com/instamakaan/instamakaan/internal/domain/inquiry/valueobjects"
	"github.com/instamakaan/instamakaan/internal/infrastructure/persistence/mappers"
	"github.com/instamakaan/instamakaan/internal/infrastructure/persistence/models"
	"github.com/instamakaan/instamakaan/internal/shared/biztime"
	"github.com/instamakaan/instamakaan/internal/shared/db"
)

type InquiryRepository struct {
	db     *gorm.DB
	mapper mappers.InquiryMapper
}

func NewInquiryRepository(db *gorm.DB) *InquiryRepository {
	return &InquiryRepository{
		db:     db,
		mapper: mappers.NewInquiryMapper(),
	}
}

var _ inquiry.Repository = (*InquiryRepository)(nil)

func (r *InquiryRepository) Create(ctx context.Context, i *inquiry.Inquiry) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(r.mapper.ToModel(i)).Error; err != nil {
		return fmt.Errorf("failed to create inquiry: %w", err)
	}
	return nil
}

func (r *InquiryRepository) GetByID(ctx context.Context, id string) (*inquiry.Inquiry, error) {
	return r.get(ctx, db.GetTxFromContext(ctx, r.db), id)
}

func (r *InquiryRepository) GetByIDForUpdate(ctx context.Context, id string) (*inquiry.Inquiry, error) {
	return r.get(ctx, db.GetTxFromContext(ctx, r.db).Scopes(db.ForUpdate()), id)
}

func (r *InquiryRepository) get(_ context.Context, tx *gorm.DB, id string) (*inquiry.Inquiry, error) {
	var model models.InquiryModel
	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, inquiry.ErrInquiryNotFound
		}
		return nil, fmt.Errorf("failed to get inquiry: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *InquiryRepository) Update(ctx context.Context, i *inquiry.Inquiry) error {
	model := r.mapper.ToModel(i)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select("*") writes zero values too, which clears assigned_agent_id on unassign.
	result := tx.Model(&models.InquiryModel{}).
		Where("id = ? AND version = ?", model.ID, i.LoadedVersion()).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update inquiry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.InquiryModel{}).Where("id = ?", model.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check inquiry: %w", err)
		}
		if count == 0 {
			return inquiry.ErrInquiryNotFound
		}
		return inquiry.ErrConcurrentModification
	}
	return nil
}

func (r *InquiryRepository) List(ctx context.Context, filter inquiry.Filter) ([]*inquiry.Inquiry, int64, error) {
	query := r.applyFilter(db.GetTxFromContext(ctx, r.db).Model(&models.InquiryModel{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count inquiries: %w", err)
	}

	query = query.Order("created_at DESC").Order("id DESC")
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Limit(filter.PageSize).Offset((page - 1) * filter.PageSize)
	}

	var list []models.InquiryModel
	if err := query.Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list inquiries: %w", err)
	}

	inquiries, err := r.mapper.ToDomainList(list)
	if err != nil {
		return nil, 0, err
	}
	return inquiries, total, nil
}

func (r *InquiryRepository) Count(ctx context.Context, filter inquiry.Filter) (int64, error) {
	var total int64
	query := r.applyFilter(db.GetTxFromContext(ctx, r.db).Model(&models.InquiryModel{}), filter)
	if err := query.Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count inquiries: %w", err)
	}
	return total, nil
}

type groupCount struct {
	Key   string
	Total int64
}

func (r *InquiryRepository) countGrouped(ctx context.Context, column string, scope inquiry.Scope) ([]groupCount, error) {
	var rows []groupCount
	query := applyScope(db.GetTxFromContext(ctx, r.db).Model(&models.InquiryModel{}), scope)
	if err := query.
		Select(column + " AS `key`, COUNT(*) AS total").
		Group(column).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count inquiries by %s: %w", column, err)
	}
	return rows, nil
}

// CountByStatus groups stored statuses; legacy spellings fold into their
// canonical stage.
func (r *InquiryRepository) CountByStatus(ctx context.Context, scope inquiry.Scope) (map[vo.Status]int64, error) {
	rows, err := r.countGrouped(ctx, "status", scope)
	if err != nil {
		return nil, err
	}

	counts := make(map[vo.Status]int64, len(rows))
	for _, row := range rows {
		status := vo.Status(row.Key)
		if parsed, err := vo.ParseStatus(row.Key); err == nil {
			status = parsed
		}
		counts[status] += row.Total
	}
	return counts, nil
}

func (r *InquiryRepository) CountByType(ctx context.Context, scope inquiry.Scope) (map[vo.InquiryType]int64, error) {
	rows, err := r.countGrouped(ctx, "inquiry_type", scope)
	if err != nil {
		return nil, err
	}

	counts := make(map[vo.InquiryType]int64, len(rows))
	for _, row := range rows {
		counts[vo.InquiryType(row.Key)] += row.Total
	}
	return counts, nil
}

func (r *InquiryRepository) CountOpenByAgent(ctx context.Context, agentID string) (int64, error) {
	var total int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.InquiryModel{}).
		Where("assigned_agent_id = ? AND status <> ?", agentID, vo.StatusClosed.String()).
		Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count open inquiries: %w", err)
	}
	return total, nil
}

func (r *InquiryRepository) CountHandledByAgent(ctx context.Context, agentID string) (int64, error) {
	return r.Count(ctx, inquiry.Filter{HandledByAgentID: agentID})
}

func (r *InquiryRepository) AppendLog(ctx context.Context, entry *inquiry.LogEntry) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var last int64
	if err := tx.Model(&models.InquiryLogModel{}).
		Where("inquiry_id = ?", entry.InquiryID()).
		Select("COALESCE(MAX(created_at), 0)").
		Scan(&last).Error; err != nil {
		return fmt.Errorf("failed to read latest log timestamp: %w", err)
	}
	if last > 0 {
		entry.ClampCreatedAt(biztime.FromMillis(last))
	}

	model := r.mapper.LogToModel(entry)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append inquiry log: %w", err)
	}
	return entry.SetID(model.ID)
}

func (r *InquiryRepository) ListLogs(ctx context.Context, inquiryID string) ([]*inquiry.LogEntry, error) {
	logs, err := r.ListLogsForInquiries(ctx, []string{inquiryID})
	if err != nil {
		return nil, err
	}
	if entries := logs[inquiryID]; entries != nil {
		return entries, nil
	}
	return []*inquiry.LogEntry{}, nil
}

func (r *InquiryRepository) ListLogsForInquiries(ctx context.Context, inquiryIDs []string) (map[string][]*inquiry.LogEntry, error) {
	result := make(map[string][]*inquiry.LogEntry, len(inquiryIDs))
	if len(inquiryIDs) == 0 {
		return result, nil
	}

	var rows []models.InquiryLogModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("inquiry_id IN ?", inquiryIDs).
		Order("created_at ASC").
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list inquiry logs: %w", err)
	}

	for idx := range rows {
		entry, err := r.mapper.LogToDomain(&rows[idx])
		if err != nil {
			return nil, err
		}
		result[entry.InquiryID()] = append(result[entry.InquiryID()], entry)
	}
	return result, nil
}

func (r *InquiryRepository) applyFilter(query *gorm.DB, filter inquiry.Filter) *gorm.DB {
	query = applyScope(query, filter.Scope)

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.InquiryType != nil {
		query = query.Where("inquiry_type = ?", filter.InquiryType.String())
	}
	if filter.HandledByAgentID != "" {
		historical := r.db.Model(&models.InquiryLogModel{}).
			Select("inquiry_id").
			Where("agent_id = ? AND kind = ?", filter.HandledByAgentID, string(inquiry.KindAssignment))
		query = query.Where("(assigned_agent_id = ? OR id IN (?))", filter.HandledByAgentID, historical)
	}
	if filter.NeedsAssignment != nil {
		needs := "assigned_agent_id IS NULL AND status NOT IN ?"
		if *filter.NeedsAssignment {
			query = query.Where(needs, []string{vo.StatusNew.String(), vo.StatusClosed.String()})
		} else {
			query = query.Not(needs, []string{vo.StatusNew.String(), vo.StatusClosed.String()})
		}
	}
	if filter.CreatedSince != nil {
		query = query.Where("created_at >= ?", filter.CreatedSince.UnixMilli())
	}
	if filter.FollowupDueBefore != nil {
		query = query.Where("next_followup_at IS NOT NULL AND next_followup_at <= ?", filter.FollowupDueBefore.UnixMilli())
	}
	return query
}

func applyScope(query *gorm.DB, scope inquiry.Scope) *gorm.DB {
	if scope.AgentID != "" {
		query = query.Where("assigned_agent_id = ?", scope.AgentID)
	}
	if scope.ByListings {
		if len(scope.ListingIDs) == 0 {
			return query.Where("1 = 0")
		}
		query = query.Where("listing_id IN ?", scope.ListingIDs)
	}
	return query
}
