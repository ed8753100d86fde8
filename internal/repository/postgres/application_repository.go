package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"intakedesk/internal/common"
	"intakedesk/internal/domain/application"
)

const applicationColumns = `id, name, email, company_name, project_description, desired_features, status, created_at`

type ApplicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, input application.CreateInput) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `INSERT INTO applications (name, email, company_name, project_description, desired_features)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+applicationColumns,
		input.Name, input.Email, input.CompanyName, input.ProjectDescription, input.DesiredFeatures)
	app, err := scanApplication(row)
	if err != nil {
		return nil, wrapStoreError("failed to create application", err)
	}
	return app, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	app, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, wrapStoreError("failed to load application", err)
	}
	return app, nil
}

func (r *ApplicationRepository) List(ctx context.Context, filter application.ListFilter) ([]application.Application, error) {
	filter = filter.Normalize()
	query := `SELECT ` + applicationColumns + ` FROM applications`
	args := make([]any, 0, 3)
	if filter.Status != nil {
		query += ` WHERE status = $1`
		args = append(args, *filter.Status)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapStoreError("failed to list applications", err)
	}
	defer rows.Close()

	items := make([]application.Application, 0)
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, wrapStoreError("failed to scan application", err)
		}
		items = append(items, *app)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreError("failed to list applications", err)
	}
	return items, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status application.Status) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `UPDATE applications SET status = $1 WHERE id = $2 RETURNING `+applicationColumns, status, id)
	app, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, wrapStoreError("failed to update application status", err)
	}
	return app, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (*application.Application, error) {
	var app application.Application
	if err := row.Scan(&app.ID, &app.Name, &app.Email, &app.CompanyName, &app.ProjectDescription, &app.DesiredFeatures, &app.Status, &app.CreatedAt); err != nil {
		return nil, err
	}
	return &app, nil
}

// wrapStoreError keeps the pg error as the cause so connectivity failures
// propagate unmodified to the caller. Enum rejections from the storage-level
// application_status type surface as invalid-argument instead of internal.
func wrapStoreError(message string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 22P02: invalid enum literal, 23514: check constraint violation
		if pgErr.Code == "22P02" || pgErr.Code == "23514" {
			return common.NewError(common.CodeInvalidArgument, "invalid application status", err)
		}
	}
	return common.NewError(common.CodeInternal, message, err)
}
