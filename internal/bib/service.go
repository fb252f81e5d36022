package bib

import (
	"context"
)

// Service fetches a fresh result set and orders it.
type Service struct {
	fetcher RecordFetcher
}

func NewService(fetcher RecordFetcher) *Service {
	return &Service{fetcher: fetcher}
}

// List returns the upstream records sorted by method.
func (s *Service) List(ctx context.Context, method SortMethod) ([]Record, error) {
	records, err := s.fetcher.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	return Sort(records, method)
}
