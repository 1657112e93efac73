package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/josemtz/hotel-reservation/internal/booking"
	"github.com/josemtz/hotel-reservation/internal/model"
	"github.com/josemtz/hotel-reservation/internal/repository"
)

// ServiceReservationHandler serves guest service requests. Services are
// not exclusive, so creating a request never conflicts and cancelling
// one is just removing the row.
type ServiceReservationHandler struct {
	Customers *repository.CustomerRepo
	Services  *repository.ServiceRepo
	Requests  *repository.ServiceReservationRepo
	Desk      *booking.Desk
}

func NewServiceReservationHandler(cu *repository.CustomerRepo, sv *repository.ServiceRepo, rq *repository.ServiceReservationRepo, desk *booking.Desk) *ServiceReservationHandler {
	return &ServiceReservationHandler{Customers: cu, Services: sv, Requests: rq, Desk: desk}
}

type createServiceReservationReq struct {
	ServiceID   uint64 `json:"service_id"`
	RequestedAt string `json:"requested_at"`
}

// Create records a service request for the authenticated guest.
func (h *ServiceReservationHandler) Create(c echo.Context) error {
	uid := currentUserID(c)
	if uid == 0 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createServiceReservationReq
	if err := c.Bind(&req); err != nil || req.ServiceID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "service_id required"})
	}
	req.RequestedAt = strings.TrimSpace(req.RequestedAt)
	if req.RequestedAt == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "requested_at required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	cm, err := h.Customers.GetByID(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load account failed"})
	}
	sm, err := h.Services.GetByID(ctx, req.ServiceID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load service failed"})
	}

	guest := booking.RestoreGuest(cm.ID, cm.FirstName, cm.SecondName, cm.LastName, cm.SecondLastName,
		cm.Phone, cm.Email, cm.State, cm.CURP)
	svc := booking.RestoreService(sm.ID, sm.Name, sm.Cost, sm.Description)
	sr := booking.NewServiceReservation(req.RequestedAt, guest, svc)
	sr.Book()

	row := &model.ServiceReservation{CustomerID: uid, ServiceID: sm.ID, RequestedAt: req.RequestedAt}
	if _, err := h.Requests.Create(ctx, row); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create request failed"})
	}
	sr.SetID(row.ID)

	return c.JSON(http.StatusCreated, echo.Map{
		"service_reservation_id": sr.ID(),
		"service_id":             sm.ID,
		"service_name":           sm.Name,
		"cost_cents":             sm.Cost,
		"requested_at":           req.RequestedAt,
	})
}

// ListMine returns the authenticated guest's service requests.
func (h *ServiceReservationHandler) ListMine(c echo.Context) error {
	uid := currentUserID(c)
	if uid == 0 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	list, err := h.Requests.ListByCustomer(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"service_reservations": list})
}

// Cancel removes a service request. Guests may only remove their own;
// staff may remove any.
func (h *ServiceReservationHandler) Cancel(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid service reservation id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	d, err := h.Requests.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !isStaff(c) && d.CustomerID != currentUserID(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	gone, err := h.Requests.Delete(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	if !gone {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "service reservation not found"})
	}
	return c.NoContent(http.StatusNoContent)
}

// Pay settles a service request at the service's flat cost and links
// the payment onto the row. A request is paid at most once: a request
// that already carries a payment yields 409, and the link step's
// conditional update closes the race between two concurrent payments.
func (h *ServiceReservationHandler) Pay(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid service reservation id"})
	}
	var req settleReq
	if err := c.Bind(&req); err != nil || req.Method == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "method required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	d, err := h.Requests.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !isStaff(c) && d.CustomerID != currentUserID(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	if d.PaymentID != nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": "service reservation already paid"})
	}

	cm, err := h.Customers.GetByID(ctx, d.CustomerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load account failed"})
	}
	guest := booking.RestoreGuest(cm.ID, cm.FirstName, cm.SecondName, cm.LastName, cm.SecondLastName,
		cm.Phone, cm.Email, cm.State, cm.CURP)
	svc := booking.RestoreService(d.ServiceID, d.ServiceName, d.CostCents, "")
	sr := booking.RestoreServiceReservation(d.ID, d.RequestedAt, guest, svc)

	pay, err := h.Desk.SettleServiceRequest(ctx, sr, req.Method)
	if err != nil {
		if errors.Is(err, booking.ErrPaymentUnlinked) {
			return c.JSON(http.StatusOK, echo.Map{
				"payment_id":             pay.ID(),
				"amount_cents":           pay.AmountCents(),
				"method":                 pay.Method(),
				"service_reservation_id": id,
				"linked":                 false,
				"warning":                "payment recorded but not linked to the service reservation",
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "settle failed"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"payment_id":             pay.ID(),
		"amount_cents":           pay.AmountCents(),
		"method":                 pay.Method(),
		"date":                   pay.Date(),
		"service_reservation_id": id,
		"linked":                 true,
	})
}
