package booking

// Service is a priced, described catalog offering such as spa access or
// laundry. Services carry no availability state: any number of guests
// may request the same service at once.
type Service struct {
	id          uint64
	name        string
	costCents   uint32 // flat cost per request
	description string
}

// NewService returns a catalog entry with no identifier; the id is
// assigned by the persistence gateway on insert.
func NewService(name string, costCents uint32, description string) *Service {
	return &Service{name: name, costCents: costCents, description: description}
}

// RestoreService rebuilds a service from a persisted row.
func RestoreService(id uint64, name string, costCents uint32, description string) *Service {
	s := NewService(name, costCents, description)
	s.id = id
	return s
}

func (s *Service) ID() uint64 { return s.id }
func (s *Service) SetID(id uint64) { s.id = id }
func (s *Service) Name() string { return s.name }
func (s *Service) CostCents() uint32 { return s.costCents }
func (s *Service) SetCostCents(cents uint32) { s.costCents = cents }
func (s *Service) Description() string { return s.description }
func (s *Service) SetDescription(desc string) { s.description = desc }
