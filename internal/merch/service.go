package merch

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Merch, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Merch, error) {
	if id <= 0 {
		return Merch{}, ErrNotFound
	}
	return s.repo.GetByID(id)
}

func (s *Service) ListByIDs(ids []int) ([]Merch, error) {
	return s.repo.ListByIDs(ids)
}
