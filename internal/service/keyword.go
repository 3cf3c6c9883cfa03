package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/tubestudy/tracker/internal/domain"
)

const (
	defaultKeywordCategory = "custom"
	defaultAlertMessage    = "Stay focused! This doesn't look like study material."
	maxKeywordLength       = 100
)

var defaultKeywords = []domain.DistractionKeyword{
	{Keyword: "vlog", Category: "Entertainment", AlertMessage: "Vlogs can wait until after your study session."},
	{Keyword: "브이로그", Category: "Entertainment", AlertMessage: "Vlogs can wait until after your study session."},
	{Keyword: "게임", Category: "Game", AlertMessage: "Resist the game and head back to your lecture."},
	{Keyword: "gameplay", Category: "Game", AlertMessage: "Resist the game and head back to your lecture."},
	{Keyword: "asmr", Category: "Entertainment", AlertMessage: "Great for a break, but you were in the middle of a lecture."},
	{Keyword: "예능", Category: "Entertainment", AlertMessage: "Variety shows are for after you finish today's goal."},
}

// KeywordInput carries the fields of a new keyword.
type KeywordInput struct {
	Keyword      string
	Category     string
	AlertMessage string
}

// KeywordService handles the user-manageable distraction keyword list.
type KeywordService struct {
	keywords domain.KeywordRepository
	locks    *KeyLock
}

// NewKeywordService creates a new KeywordService.
func NewKeywordService(keywords domain.KeywordRepository) *KeywordService {
	return &KeywordService{keywords: keywords, locks: NewKeyLock()}
}

// SeedDefaults inserts the default keywords when the store is empty.
func (s *KeywordService) SeedDefaults(ctx context.Context) error {
	n, err := s.keywords.Count(ctx)
	if err != nil {
		return fmt.Errorf("count keywords: %w", err)
	}
	if n > 0 {
		return nil
	}

	for _, k := range defaultKeywords {
		k.IsActive = true
		k.IsCustom = false
		if err := s.keywords.Create(ctx, &k); err != nil {
			return fmt.Errorf("seed keyword %q: %w", k.Keyword, err)
		}
	}
	slog.Info("default distraction keywords seeded", "count", len(defaultKeywords))
	return nil
}

// ListActive returns the keywords currently switched on.
func (s *KeywordService) ListActive(ctx context.Context) ([]domain.DistractionKeyword, error) {
	return s.keywords.ListActive(ctx)
}

// ListAll returns every keyword.
func (s *KeywordService) ListAll(ctx context.Context) ([]domain.DistractionKeyword, error) {
	return s.keywords.ListAll(ctx)
}

// Add creates a custom keyword. Category and message fall back to defaults.
func (s *KeywordService) Add(ctx context.Context, in KeywordInput) (*domain.DistractionKeyword, error) {
	keyword := strings.TrimSpace(in.Keyword)
	if keyword == "" {
		return nil, fmt.Errorf("%w: keyword is required", domain.ErrInvalidInput)
	}
	if len(keyword) > maxKeywordLength {
		return nil, fmt.Errorf("%w: keyword must be %d characters or fewer", domain.ErrInvalidInput, maxKeywordLength)
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = defaultKeywordCategory
	}
	message := strings.TrimSpace(in.AlertMessage)
	if message == "" {
		message = defaultAlertMessage
	}

	k := &domain.DistractionKeyword{
		Keyword:      keyword,
		Category:     category,
		AlertMessage: message,
		IsActive:     true,
		IsCustom:     true,
	}
	if err := s.keywords.Create(ctx, k); err != nil {
		return nil, fmt.Errorf("create keyword: %w", err)
	}
	return k, nil
}

// Update applies the non-nil fields of patch to the keyword.
func (s *KeywordService) Update(ctx context.Context, id int64, patch domain.KeywordPatch) (*domain.DistractionKeyword, error) {
	unlock := s.lock(id)
	defer unlock()

	k, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Keyword != nil {
		kw := strings.TrimSpace(*patch.Keyword)
		if kw == "" {
			return nil, fmt.Errorf("%w: keyword must not be empty", domain.ErrInvalidInput)
		}
		if len(kw) > maxKeywordLength {
			return nil, fmt.Errorf("%w: keyword must be %d characters or fewer", domain.ErrInvalidInput, maxKeywordLength)
		}
		k.Keyword = kw
	}
	if patch.Category != nil {
		k.Category = *patch.Category
	}
	if patch.AlertMessage != nil {
		k.AlertMessage = *patch.AlertMessage
	}
	if patch.IsActive != nil {
		k.IsActive = *patch.IsActive
	}

	if err := s.keywords.Update(ctx, k); err != nil {
		return nil, fmt.Errorf("update keyword: %w", err)
	}
	return k, nil
}

// Toggle flips whether the keyword is active.
func (s *KeywordService) Toggle(ctx context.Context, id int64) (*domain.DistractionKeyword, error) {
	unlock := s.lock(id)
	defer unlock()

	k, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	k.IsActive = !k.IsActive
	if err := s.keywords.Update(ctx, k); err != nil {
		return nil, fmt.Errorf("toggle keyword: %w", err)
	}
	return k, nil
}

// Delete removes a custom keyword. Default keywords are rejected.
func (s *KeywordService) Delete(ctx context.Context, id int64) error {
	unlock := s.lock(id)
	defer unlock()

	k, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if !k.IsCustom {
		return fmt.Errorf("%w: default keywords cannot be deleted", domain.ErrInvalidInput)
	}

	if err := s.keywords.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete keyword: %w", err)
	}
	return nil
}

// lock serializes read-modify-write on one keyword.
func (s *KeywordService) lock(id int64) (unlock func()) {
	return s.locks.Lock(strconv.FormatInt(id, 10))
}

// get loads a keyword, reporting unknown ids as invalid input.
func (s *KeywordService) get(ctx context.Context, id int64) (*domain.DistractionKeyword, error) {
	k, err := s.keywords.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: keyword %d not found", domain.ErrInvalidInput, id)
		}
		return nil, fmt.Errorf("get keyword: %w", err)
	}
	return k, nil
}
