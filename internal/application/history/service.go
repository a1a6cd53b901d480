package history

import (
	"context"
	"sort"
	"time"

	"github.com/muslimtime-api/internal/domain"
)

const defaultListLimit = 10

type Service interface {
	// Save upserts the user's progress for a surah.
	Save(ctx context.Context, userID string, input domain.SaveHistoryRequest) (*domain.ReadingHistory, error)
	// List returns the user's history, most recently read first.
	List(ctx context.Context, userID string, limit int) ([]domain.ReadingHistory, error)
	// LastRead returns the most recently read entry, or nil when the user
	// has no history.
	LastRead(ctx context.Context, userID string) (*domain.ReadingHistory, error)
}

type historyStore interface {
	Put(ctx context.Context, h *domain.ReadingHistory) error
	ListByUser(ctx context.Context, userID string) ([]domain.ReadingHistory, error)
}

type service struct {
	repo historyStore
	now  func() time.Time
}

func NewService(repo historyStore) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Save(ctx context.Context, userID string, input domain.SaveHistoryRequest) (*domain.ReadingHistory, error) {
	progress := float64(input.AyahNumber) / float64(input.TotalAyahs) * 100
	if progress > 100 {
		progress = 100
	}
	entry := &domain.ReadingHistory{
		UserID:           userID,
		SurahNumber:      input.SurahNumber,
		SurahName:        input.SurahName,
		SurahEnglishName: input.SurahEnglishName,
		SurahArabicName:  input.SurahArabicName,
		AyahNumber:       input.AyahNumber,
		JuzNumber:        input.JuzNumber,
		TotalAyahs:       input.TotalAyahs,
		Progress:         progress,
		LastReadAt:       s.now().UTC(),
	}
	if err := s.repo.Put(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *service) List(ctx context.Context, userID string, limit int) ([]domain.ReadingHistory, error) {
	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].LastReadAt.After(entries[j].LastReadAt)
	})
	if limit <= 0 {
		limit = defaultListLimit
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *service) LastRead(ctx context.Context, userID string) (*domain.ReadingHistory, error) {
	entries, err := s.List(ctx, userID, 1)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}
