package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intakedesk/internal/common"
	"intakedesk/internal/domain/application"
)

var applicationRowColumns = []string{"id", "name", "email", "company_name", "project_description", "desired_features", "status", "created_at"}

func applicationRow(id int64, status string, createdAt time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(applicationRowColumns).
		AddRow(id, "John Doe", "john@x.com", "Acme", "A ten-plus char description.", "A ten-plus char feature list.", status, createdAt)
}

func TestApplicationRepositoryCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO applications`).
		WithArgs("John Doe", "john@x.com", "Acme", "A ten-plus char description.", "A ten-plus char feature list.").
		WillReturnRows(applicationRow(1, "pending", createdAt))

	repo := NewApplicationRepository(db)
	created, err := repo.Create(context.Background(), application.CreateInput{
		Name:               "John Doe",
		Email:              "john@x.com",
		CompanyName:        "Acme",
		ProjectDescription: "A ten-plus char description.",
		DesiredFeatures:    "A ten-plus char feature list.",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, application.StatusPending, created.Status)
	assert.Equal(t, createdAt, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepositoryGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM applications WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(applicationRow(7, "reviewed", time.Now().UTC()))

	repo := NewApplicationRepository(db)
	record, err := repo.GetByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), record.ID)
	assert.Equal(t, application.StatusReviewed, record.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepositoryGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM applications WHERE id = \$1`).
		WithArgs(int64(99999)).
		WillReturnRows(sqlmock.NewRows(applicationRowColumns))

	repo := NewApplicationRepository(db)
	_, err = repo.GetByID(context.Background(), 99999)

	assert.True(t, common.Is(err, common.CodeNotFound), "expected not-found, got %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepositoryList_DefaultsAndOrdering(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows(applicationRowColumns).
		AddRow(3, "C", "c@x.com", "Acme", "A ten-plus char description.", "A ten-plus char feature list.", "pending", now).
		AddRow(2, "B", "b@x.com", "Acme", "A ten-plus char description.", "A ten-plus char feature list.", "pending", now.Add(-time.Second)).
		AddRow(1, "A", "a@x.com", "Acme", "A ten-plus char description.", "A ten-plus char feature list.", "pending", now.Add(-2*time.Second))
	mock.ExpectQuery(`SELECT (.+) FROM applications ORDER BY created_at DESC, id DESC LIMIT \$1 OFFSET \$2`).
		WithArgs(50, 0).
		WillReturnRows(rows)

	repo := NewApplicationRepository(db)
	items, err := repo.List(context.Background(), application.ListFilter{})

	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"C", "B", "A"}, []string{items[0].Name, items[1].Name, items[2].Name})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepositoryList_StatusFilterAndPagination(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM applications WHERE status = \$1 ORDER BY created_at DESC, id DESC LIMIT \$2 OFFSET \$3`).
		WithArgs("approved", 2, 1).
		WillReturnRows(applicationRow(4, "approved", time.Now().UTC()))

	status := application.StatusApproved
	repo := NewApplicationRepository(db)
	items, err := repo.List(context.Background(), application.ListFilter{Status: &status, Limit: 2, Offset: 1})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, application.StatusApproved, items[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepositoryList_LimitCapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM applications ORDER BY created_at DESC, id DESC LIMIT \$1 OFFSET \$2`).
		WithArgs(100, 0).
		WillReturnRows(sqlmock.NewRows(applicationRowColumns))

	repo := NewApplicationRepository(db)
	items, err := repo.List(context.Background(), application.ListFilter{Limit: 1000})

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepositoryUpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`UPDATE applications SET status = \$1 WHERE id = \$2 RETURNING`).
		WithArgs("approved", int64(5)).
		WillReturnRows(applicationRow(5, "approved", time.Now().UTC()))

	repo := NewApplicationRepository(db)
	updated, err := repo.UpdateStatus(context.Background(), 5, application.StatusApproved)

	require.NoError(t, err)
	assert.Equal(t, application.StatusApproved, updated.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepositoryUpdateStatus_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`UPDATE applications SET status = \$1 WHERE id = \$2 RETURNING`).
		WithArgs("approved", int64(99999)).
		WillReturnRows(sqlmock.NewRows(applicationRowColumns))

	repo := NewApplicationRepository(db)
	_, err = repo.UpdateStatus(context.Background(), 99999, application.StatusApproved)

	assert.True(t, common.Is(err, common.CodeNotFound), "expected not-found, got %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepositoryUpdateStatus_EnumRejected(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`UPDATE applications SET status = \$1 WHERE id = \$2 RETURNING`).
		WithArgs("bogus", int64(5)).
		WillReturnError(&pgconn.PgError{Code: "22P02", Message: "invalid input value for enum application_status"})

	repo := NewApplicationRepository(db)
	_, err = repo.UpdateStatus(context.Background(), 5, application.Status("bogus"))

	assert.True(t, common.Is(err, common.CodeInvalidArgument), "expected invalid-argument, got %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
