package booking

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(b Booking) (Booking, error) {
	if b.Event == "" || b.Name == "" || b.Age <= 0 || b.Email == "" {
		return Booking{}, ErrMissingFields
	}
	return s.repo.Create(b)
}
