package application

import (
	"context"
	"strings"
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusReviewed Status = "reviewed"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// ParseStatus normalizes and validates a caller-supplied status value.
func ParseStatus(value string) (Status, bool) {
	status := Status(strings.ToLower(strings.TrimSpace(value)))
	switch status {
	case StatusPending, StatusReviewed, StatusApproved, StatusRejected:
		return status, true
	default:
		return "", false
	}
}

type Application struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	CompanyName        string    `json:"company_name"`
	ProjectDescription string    `json:"project_description"`
	DesiredFeatures    string    `json:"desired_features"`
	Status             Status    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}

type CreateInput struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	CompanyName        string `json:"company_name"`
	ProjectDescription string `json:"project_description"`
	DesiredFeatures    string `json:"desired_features"`
}

const (
	DefaultListLimit = 50
	MaxListLimit     = 100
)

type ListFilter struct {
	Status *Status
	Limit  int
	Offset int
}

func (f ListFilter) Normalize() ListFilter {
	if f.Limit <= 0 {
		f.Limit = DefaultListLimit
	}
	if f.Limit > MaxListLimit {
		f.Limit = MaxListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (*Application, error)
	GetByID(ctx context.Context, id int64) (*Application, error)
	List(ctx context.Context, filter ListFilter) ([]Application, error)
	UpdateStatus(ctx context.Context, id int64, status Status) (*Application, error)
}
