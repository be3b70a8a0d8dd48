package repo

import (
	"context"

	"github.com/time-tracker/api/internal/modules/model"
	"gorm.io/gorm"
)

type ReferenceRepo interface {
	Create(ctx context.Context, ref *model.Reference) error
	List(ctx context.Context) ([]*model.Reference, error)
	Get(ctx context.Context, id int64) (*model.Reference, error)
	Update(ctx context.Context, id int64, changes map[string]any) (*model.Reference, error)
	Delete(ctx context.Context, id int64) error
	ListByTaskLogDetail(ctx context.Context, detailID int64) ([]*model.Reference, error)
	ListByTaskLogDetails(ctx context.Context, detailIDs []int64) ([]*model.Reference, error)
}

type referenceRepo struct{ db *gorm.DB }

func NewReferenceRepo(db *gorm.DB) ReferenceRepo {
	return &referenceRepo{db: db}
}

func (r *referenceRepo) Create(ctx context.Context, ref *model.Reference) error {
	return create(ctx, r.db, ref)
}

func (r *referenceRepo) List(ctx context.Context) ([]*model.Reference, error) {
	return list[model.Reference](ctx, r.db)
}

func (r *referenceRepo) Get(ctx context.Context, id int64) (*model.Reference, error) {
	return get[model.Reference](ctx, r.db, "Reference", id)
}

func (r *referenceRepo) Update(ctx context.Context, id int64, changes map[string]any) (*model.Reference, error) {
	return update[model.Reference](ctx, r.db, "Reference", id, changes)
}

func (r *referenceRepo) Delete(ctx context.Context, id int64) error {
	return remove[model.Reference](ctx, r.db, "Reference", id)
}

func (r *referenceRepo) ListByTaskLogDetail(ctx context.Context, detailID int64) ([]*model.Reference, error) {
	return r.ListByTaskLogDetails(ctx, []int64{detailID})
}

func (r *referenceRepo) ListByTaskLogDetails(ctx context.Context, detailIDs []int64) ([]*model.Reference, error) {
	refs := []*model.Reference{}
	if len(detailIDs) == 0 {
		return refs, nil
	}
	return refs, r.db.WithContext(ctx).
		Where("task_log_detail_id IN ?", detailIDs).
		Order("id ASC").
		Find(&refs).Error
}
