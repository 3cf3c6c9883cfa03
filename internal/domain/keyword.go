package domain

import (
	"context"
	"time"
)

// DistractionKeyword is a user-manageable title keyword with the alert shown
// when it matches. Default keywords (IsCustom false) cannot be deleted.
type DistractionKeyword struct {
	ID           int64
	Keyword      string
	Category     string
	AlertMessage string
	IsActive     bool
	IsCustom     bool
	CreatedAt    time.Time
}

// KeywordPatch carries a partial keyword update; nil fields are left alone.
type KeywordPatch struct {
	Keyword      *string
	Category     *string
	AlertMessage *string
	IsActive     *bool
}

// KeywordRepository defines persistence operations for distraction keywords.
type KeywordRepository interface {
	ListActive(ctx context.Context) ([]DistractionKeyword, error)
	ListAll(ctx context.Context) ([]DistractionKeyword, error)
	GetByID(ctx context.Context, id int64) (*DistractionKeyword, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, keyword *DistractionKeyword) error
	Update(ctx context.Context, keyword *DistractionKeyword) error
	Delete(ctx context.Context, id int64) error
}
