package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/raghhhava7/Devclimate-BE/internal/models"
	"github.com/raghhhava7/Devclimate-BE/internal/repository"
)

const (
	defaultPage     = 1
	defaultPageSize = 5
	maxPageSize     = 50
)

var (
	// ErrInvalidSearchID is returned when the id is not a well-formed UUID.
	ErrInvalidSearchID = errors.New("invalid search id")
	// ErrSearchNotFound covers both a missing record and a record owned by
	// another user; callers must not be able to tell the two apart.
	ErrSearchNotFound = errors.New("search not found")
)

// HistoryPage is one page of a user's search history, newest first.
type HistoryPage struct {
	Searches      []models.WeatherSearch `json:"searches"`
	CurrentPage   int                    `json:"currentPage"`
	TotalPages    int                    `json:"totalPages"`
	TotalSearches int64                  `json:"totalSearches"`
}

// HistoryService reads and deletes a user's own search records.
type HistoryService interface {
	List(ctx context.Context, userID uuid.UUID, page, limit int) (*HistoryPage, error)
	Delete(ctx context.Context, searchID string, userID uuid.UUID) error
}

type historyService struct {
	searchRepo repository.SearchRepository
}

// NewHistoryService creates a new HistoryService instance.
func NewHistoryService(searchRepo repository.SearchRepository) HistoryService {
	return &historyService{searchRepo: searchRepo}
}

// List returns one page of history sorted by search time descending.
// Non-positive page or limit values fall back to the defaults; limit is
// capped so a caller cannot request unbounded result sets.
func (s *historyService) List(ctx context.Context, userID uuid.UUID, page, limit int) (*HistoryPage, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	total, err := s.searchRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	offset := (page - 1) * limit
	searches, err := s.searchRepo.ListByUser(ctx, userID, offset, limit)
	if err != nil {
		return nil, err
	}
	if searches == nil {
		searches = []models.WeatherSearch{}
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &HistoryPage{
		Searches:      searches,
		CurrentPage:   page,
		TotalPages:    totalPages,
		TotalSearches: total,
	}, nil
}

func (s *historyService) Delete(ctx context.Context, searchID string, userID uuid.UUID) error {
	id, err := uuid.Parse(searchID)
	if err != nil {
		return ErrInvalidSearchID
	}

	deleted, err := s.searchRepo.DeleteByIDAndOwner(ctx, id, userID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrSearchNotFound
	}
	return nil
}
