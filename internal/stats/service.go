package stats

import "context"

// Summary is the public statistics payload. Computed fresh on every
// request; the dataset is small enough that caching would not pay for
// its invalidation complexity.
type Summary struct {
	TotalRaised    int64 `json:"total_raised"`
	TotalDisbursed int64 `json:"total_disbursed"`
	DonorCount     int64 `json:"donor_count"`
}

type Service interface {
	Summary(ctx context.Context) (*Summary, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Summary(ctx context.Context) (*Summary, error) {
	raised, err := s.repo.TotalRaised(ctx)
	if err != nil {
		return nil, err
	}
	disbursed, err := s.repo.TotalDisbursed(ctx)
	if err != nil {
		return nil, err
	}
	donors, err := s.repo.DonorCount(ctx)
	if err != nil {
		return nil, err
	}
	return &Summary{
		TotalRaised:    raised,
		TotalDisbursed: disbursed,
		DonorCount:     donors,
	}, nil
}
