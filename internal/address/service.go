package address

import "time"

// Service orchestrates the one-address-per-user contract.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores the user's address. A second create for the same user
// fails with ErrAlreadyExists; clients update instead.
func (s *Service) Create(a Address) (Address, error) {
	if a.UserID <= 0 {
		return Address{}, ErrNotFound
	}
	if _, err := s.repo.GetByUser(a.UserID); err == nil {
		return Address{}, ErrAlreadyExists
	} else if err != ErrNotFound {
		return Address{}, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	a.CreatedAt = now
	a.UpdatedAt = now
	return s.repo.Create(a)
}

func (s *Service) GetByUser(userID int) (Address, error) {
	if userID <= 0 {
		return Address{}, ErrNotFound
	}
	return s.repo.GetByUser(userID)
}

func (s *Service) Update(userID int, a Address) (Address, error) {
	if userID <= 0 {
		return Address{}, ErrNotFound
	}
	a.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.repo.Update(userID, a)
}
