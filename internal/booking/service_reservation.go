package booking

// ServiceReservation binds a guest, a catalog service and a requested
// timestamp. Services are not exclusive, so booking one never fails and
// no state on the service changes; the whole effect is the entry in the
// guest's service-reservation collection.
type ServiceReservation struct {
	id          uint64
	requestedAt string // free-form timestamp supplied by the guest
	guest       *Guest
	service     *Service
	payment     *Payment
}

// NewServiceReservation returns an unregistered request with no
// identifier; the id is assigned by the persistence gateway on insert.
func NewServiceReservation(requestedAt string, guest *Guest, service *Service) *ServiceReservation {
	return &ServiceReservation{requestedAt: requestedAt, guest: guest, service: service}
}

// RestoreServiceReservation rebuilds a request from a persisted row.
func RestoreServiceReservation(id uint64, requestedAt string, guest *Guest, service *Service) *ServiceReservation {
	sr := NewServiceReservation(requestedAt, guest, service)
	sr.id = id
	return sr
}

// Book registers the request in the guest's collection. It always
// succeeds; the boolean keeps the call shape symmetric with room
// bookings.
func (sr *ServiceReservation) Book() bool {
	sr.guest.addServiceReservation(sr)
	return true
}

// AttachPayment records the settlement on the request. A request is
// paid at most once: a second attach returns false and the first
// payment stays.
func (sr *ServiceReservation) AttachPayment(p *Payment) bool {
	if sr.payment != nil {
		return false
	}
	sr.payment = p
	return true
}

func (sr *ServiceReservation) ID() uint64 { return sr.id }
func (sr *ServiceReservation) SetID(id uint64) { sr.id = id }
func (sr *ServiceReservation) RequestedAt() string { return sr.requestedAt }
func (sr *ServiceReservation) Guest() *Guest { return sr.guest }
func (sr *ServiceReservation) Service() *Service { return sr.service }
func (sr *ServiceReservation) Payment() *Payment { return sr.payment }
