package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tansive/resourcesrv/internal/common/apperrors"
	"github.com/tansive/resourcesrv/internal/resourcesrv/config"
	"github.com/tansive/resourcesrv/internal/resourcesrv/db/dberror"
	"github.com/tansive/resourcesrv/internal/resourcesrv/db/models"
)

type ResourceManager interface {
	CreateResource(ctx context.Context, in *models.ResourceInput) (*models.Resource, apperrors.Error)
	ListResources(ctx context.Context, filter models.ResourceFilter) ([]models.Resource, apperrors.Error)
	GetResource(ctx context.Context, id int64) (*models.Resource, apperrors.Error)
	UpdateResource(ctx context.Context, id int64, patch models.ResourcePatch) (int64, apperrors.Error)
	DeleteResource(ctx context.Context, id int64) apperrors.Error
}

const resourceColumns = "id, name, description, category, status, created_at, updated_at"

// ResourceRepository implements ResourceManager on top of a Store.
type ResourceRepository struct {
	store *Store
	now   func() time.Time
}

var _ ResourceManager = (*ResourceRepository)(nil)

type RepositoryOption func(*ResourceRepository)

// WithClock replaces the clock used to stamp created_at and updated_at.
func WithClock(now func() time.Time) RepositoryOption {
	return func(r *ResourceRepository) {
		r.now = now
	}
}

func NewResourceRepository(store *Store, opts ...RepositoryOption) *ResourceRepository {
	r := &ResourceRepository{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *ResourceRepository) timestamp() time.Time {
	return r.now().UTC()
}

// CreateResource inserts a new resource and returns the stored record.
func (r *ResourceRepository) CreateResource(ctx context.Context, in *models.ResourceInput) (*models.Resource, apperrors.Error) {
	if in == nil || in.Name == "" {
		return nil, dberror.ErrMissingName
	}
	res := &models.Resource{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Status:      in.Status,
	}
	if res.Status == "" {
		res.Status = models.DefaultStatus
	}
	now := r.timestamp()
	res.CreatedAt, res.UpdatedAt = now, now

	query := r.store.conn.Rebind(`
		INSERT INTO resources (name, description, category, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id`)
	row := r.store.conn.QueryRowxContext(ctx, query, res.Name, res.Description, res.Category, res.Status, res.CreatedAt, res.UpdatedAt)
	if err := row.Scan(&res.ID); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to create resource")
		return nil, dberror.FromDriver(err)
	}
	log.Ctx(ctx).Debug().Int64("id", res.ID).Msg("resource created")
	return res, nil
}

// ListResources returns the resources matching every set field of filter,
// most recently created first.
func (r *ResourceRepository) ListResources(ctx context.Context, filter models.ResourceFilter) ([]models.Resource, apperrors.Error) {
	var (
		where []string
		args  []any
	)
	if filter.Name != "" {
		where = append(where, r.substringPredicate("name"))
		args = append(args, filter.Name)
	}
	if filter.Category != "" {
		where = append(where, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.Status != "" {
		where = append(where, "status = ?")
		args = append(args, filter.Status)
	}

	query := "SELECT " + resourceColumns + " FROM resources"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	// ids grow with insertion order and break ties between equal timestamps
	query += " ORDER BY created_at DESC, id DESC"

	resources := []models.Resource{}
	if err := r.store.conn.SelectContext(ctx, &resources, r.store.conn.Rebind(query), args...); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list resources")
		return nil, dberror.FromDriver(err)
	}
	return resources, nil
}

// substringPredicate matches a case-sensitive, unanchored substring. LIKE is
// not used: it is case-insensitive on sqlite and would treat % and _ in the
// filter as wildcards.
func (r *ResourceRepository) substringPredicate(column string) string {
	if r.store.dialect == config.DriverPostgreSQL {
		return "strpos(" + column + ", ?) > 0"
	}
	return "instr(" + column + ", ?) > 0"
}

func (r *ResourceRepository) GetResource(ctx context.Context, id int64) (*models.Resource, apperrors.Error) {
	var res models.Resource
	query := r.store.conn.Rebind("SELECT " + resourceColumns + " FROM resources WHERE id = ?")
	if err := r.store.conn.GetContext(ctx, &res, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dberror.ErrResourceNotFound
		}
		log.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to get resource")
		return nil, dberror.FromDriver(err)
	}
	return &res, nil
}

// UpdateResource applies the present fields of patch and refreshes
// updated_at in a single statement. It returns the number of rows changed.
func (r *ResourceRepository) UpdateResource(ctx context.Context, id int64, patch models.ResourcePatch) (int64, apperrors.Error) {
	if err := validatePatch(patch); err != nil {
		// a missing resource takes precedence over a bad request
		if _, getErr := r.GetResource(ctx, id); getErr != nil {
			return 0, getErr
		}
		return 0, err
	}

	var (
		sets []string
		args []any
	)
	for _, f := range []struct {
		column string
		value  models.Optional
	}{
		{"name", patch.Name},
		{"description", patch.Description},
		{"category", patch.Category},
		{"status", patch.Status},
	} {
		if !f.value.Present {
			continue
		}
		sets = append(sets, f.column+" = ?")
		args = append(args, f.value.Value)
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, r.timestamp(), id)

	query := r.store.conn.Rebind("UPDATE resources SET " + strings.Join(sets, ", ") + " WHERE id = ?")
	result, err := r.store.conn.ExecContext(ctx, query, args...)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to update resource")
		return 0, dberror.FromDriver(err)
	}
	changes, err := result.RowsAffected()
	if err != nil {
		return 0, dberror.FromDriver(err)
	}
	if changes == 0 {
		return 0, dberror.ErrResourceNotFound
	}
	return changes, nil
}

func validatePatch(patch models.ResourcePatch) apperrors.Error {
	if patch.IsEmpty() {
		return dberror.ErrNoFieldsToUpdate
	}
	if patch.Name.Present && (patch.Name.Value == nil || *patch.Name.Value == "") {
		return dberror.ErrEmptyName
	}
	if patch.Status.Present && patch.Status.Value == nil {
		return dberror.ErrNullStatus
	}
	return nil
}

// DeleteResource permanently removes a resource.
func (r *ResourceRepository) DeleteResource(ctx context.Context, id int64) apperrors.Error {
	query := r.store.conn.Rebind("DELETE FROM resources WHERE id = ?")
	result, err := r.store.conn.ExecContext(ctx, query, id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to delete resource")
		return dberror.FromDriver(err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return dberror.FromDriver(err)
	}
	if n == 0 {
		return dberror.ErrResourceNotFound
	}
	return nil
}
