// Package repositories provides data access for persisted entities.
package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/querylab/analytics-engine/pkg/models"
)

// AdminRequestRepository provides data access for admin review tickets.
type AdminRequestRepository interface {
	// Create inserts a new admin request and returns the persisted record.
	Create(ctx context.Context, title, description, requestType, status string) (*models.AdminRequest, error)
}

type adminRequestRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRequestRepository creates a PostgreSQL-backed admin request repository.
func NewAdminRequestRepository(pool *pgxpool.Pool) AdminRequestRepository {
	return &adminRequestRepository{pool: pool}
}

var _ AdminRequestRepository = (*adminRequestRepository)(nil)

func (r *adminRequestRepository) Create(ctx context.Context, title, description, requestType, status string) (*models.AdminRequest, error) {
	query := `
		INSERT INTO admin_report_requests (request_title, request_description, request_type, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, request_title, request_description, request_type, status, created_at, updated_at`

	var req models.AdminRequest
	err := r.pool.QueryRow(ctx, query, title, description, requestType, status).Scan(
		&req.ID,
		&req.Title,
		&req.Description,
		&req.RequestType,
		&req.Status,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert admin request: %w", err)
	}
	return &req, nil
}
