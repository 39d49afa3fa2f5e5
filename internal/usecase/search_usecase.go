package usecase

import (
	"context"

	"go-mentorship-backend/internal/domain"
	"go-mentorship-backend/internal/search"
)

type searchUsecase struct {
	index *search.Index
}

// NewSearchUsecase answers directory queries from the mentor snapshot held
// by the index. Queries never fail: a store outage degrades to the last
// snapshot, surfaced separately through Refresh.
func NewSearchUsecase(index *search.Index) domain.SearchUsecase {
	return &searchUsecase{index: index}
}

func (uc *searchUsecase) SearchMentors(ctx context.Context, q domain.SearchQuery) ([]domain.Profile, error) {
	return search.Filter(uc.index.CurrentMentors(), q), nil
}

func (uc *searchUsecase) AvailableSkills(ctx context.Context) ([]string, error) {
	return uc.index.AvailableSkills(), nil
}

func (uc *searchUsecase) Refresh(ctx context.Context) error {
	return uc.index.Refresh(ctx)
}
