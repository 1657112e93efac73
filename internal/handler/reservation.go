package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/josemtz/hotel-reservation/internal/booking"
	"github.com/josemtz/hotel-reservation/internal/config"
	"github.com/josemtz/hotel-reservation/internal/queue"
	"github.com/josemtz/hotel-reservation/internal/repository"
	queuepub "github.com/josemtz/hotel-reservation/internal/service"
)

const dateLayout = "2006-01-02"

// ReservationHandler drives the booking lifecycle over HTTP: placing a
// stay, settling its payment, cancelling, rescheduling and the various
// listings. Booking itself happens on rehydrated domain aggregates via
// the front desk; this handler owns loading rows, mapping errors to
// status codes and publishing the confirmation event.
type ReservationHandler struct {
	Cfg          config.Config
	Customers    *repository.CustomerRepo
	Rooms        *repository.RoomRepo
	Services     *repository.ServiceRepo
	Reservations *repository.ReservationRepo
	Desk         *booking.Desk
}

func NewReservationHandler(cfg config.Config, cu *repository.CustomerRepo, ro *repository.RoomRepo, sv *repository.ServiceRepo, re *repository.ReservationRepo, desk *booking.Desk) *ReservationHandler {
	return &ReservationHandler{Cfg: cfg, Customers: cu, Rooms: ro, Services: sv, Reservations: re, Desk: desk}
}

type createReservationReq struct {
	RoomID     uint64   `json:"room_id"`
	CheckIn    string   `json:"check_in"`
	CheckOut   string   `json:"check_out"`
	ServiceIDs []uint64 `json:"service_ids"`
}

// Create books a stay for the authenticated guest. The room claim and
// the reservation insert are atomic inside the gateway; a room that is
// occupied or under maintenance yields 409 and changes nothing.
func (h *ReservationHandler) Create(c echo.Context) error {
	uid := currentUserID(c)
	if uid == 0 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createReservationReq
	if err := c.Bind(&req); err != nil || req.RoomID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_id, check_in and check_out required"})
	}
	checkIn, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_in must be YYYY-MM-DD"})
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_out must be YYYY-MM-DD"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	cm, err := h.Customers.GetByID(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load account failed"})
	}
	rm, err := h.Rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load room failed"})
	}

	guest := booking.RestoreGuest(cm.ID, cm.FirstName, cm.SecondName, cm.LastName, cm.SecondLastName,
		cm.Phone, cm.Email, cm.State, cm.CURP)
	room := booking.RestoreRoom(rm.ID, rm.Number, rm.Type, booking.RoomStatus(rm.Status), rm.CostPerNight, rm.Description)

	res, err := booking.NewReservation(checkIn, checkOut, guest, room)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_out must be after check_in"})
	}

	// Attached services add their flat cost to the stay total.
	for _, sid := range req.ServiceIDs {
		sm, err := h.Services.GetByID(ctx, sid)
		if err != nil {
			if err == sql.ErrNoRows {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load service failed"})
		}
		res.AttachService(booking.RestoreService(sm.ID, sm.Name, sm.Cost, sm.Description))
	}

	if err := h.Desk.Place(ctx, res); err != nil {
		if errors.Is(err, booking.ErrRoomUnavailable) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "room is not available"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking failed"})
	}

	// Confirmation event is best effort; the booking stands either way.
	_ = queuepub.PublishReservationConfirmed(ctx, h.Cfg.AMQPURL, queue.ReservationConfirmedEvent{
		ReservationID:  res.ID(),
		CustomerID:     guest.ID(),
		CustomerName:   guest.FullName(),
		RoomID:         room.ID(),
		RoomNumber:     room.Number(),
		RoomType:       room.Type(),
		CheckIn:        req.CheckIn,
		CheckOut:       req.CheckOut,
		Nights:         res.Nights(),
		TotalCostCents: res.TotalCents(),
		ConfirmedAt:    time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, echo.Map{
		"reservation_id":   res.ID(),
		"room_id":          room.ID(),
		"check_in":         req.CheckIn,
		"check_out":        req.CheckOut,
		"nights":           res.Nights(),
		"total_cost_cents": res.TotalCents(),
		"status":           res.Status(),
	})
}

// ListMine returns the authenticated guest's reservations.
func (h *ReservationHandler) ListMine(c echo.Context) error {
	uid := currentUserID(c)
	if uid == 0 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	list, err := h.Reservations.ListByCustomer(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"reservations": list})
}

// ListAll returns every reservation. Staff only.
func (h *ReservationHandler) ListAll(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	list, err := h.Reservations.GetAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"reservations": list})
}

// ListUnpaid returns Active reservations whose payment link is missing.
// A crash between the payment insert and the link step leaves rows in
// exactly this state; the listing exists so the front desk can reconcile
// them.
func (h *ReservationHandler) ListUnpaid(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	list, err := h.Reservations.ListUnpaid(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"reservations": list})
}

// Get returns one reservation. Guests see only their own; staff see any.
func (h *ReservationHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	d, err := h.Reservations.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !isStaff(c) && d.Customer.ID != currentUserID(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	return c.JSON(http.StatusOK, d)
}

// Cancel voids an Active reservation and frees its room in a single
// transaction. Cancelling twice yields 409 from the conditional update;
// the room release is part of the same transaction so the row and the
// room can never disagree.
func (h *ReservationHandler) Cancel(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	tx, err := h.Reservations.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "begin tx failed"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	customerID, roomID, err := h.Reservations.CancelTx(ctx, tx, id)
	if err != nil {
		switch err {
		case sql.ErrNoRows:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		case repository.ErrConflict:
			return c.JSON(http.StatusConflict, echo.Map{"error": "reservation is not active"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cancel failed"})
		}
	}
	if !isStaff(c) && customerID != currentUserID(c) {
		// rollback via the deferred handler undoes the status update
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	if err := h.Rooms.ReleaseTx(ctx, tx, roomID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "release room failed"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "commit failed"})
	}
	committed = true
	return c.NoContent(http.StatusNoContent)
}

type rescheduleReq struct {
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`
}

// Reschedule moves either or both stay dates. The room stays claimed by
// this reservation; no availability re-check happens for the new range.
func (h *ReservationHandler) Reschedule(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	var req rescheduleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.CheckIn == nil && req.CheckOut == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_in or check_out required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	d, err := h.Reservations.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !isStaff(c) && d.Customer.ID != currentUserID(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	if d.Status != "Active" {
		return c.JSON(http.StatusConflict, echo.Map{"error": "reservation is not active"})
	}

	// Merge requested dates over the stored ones, then validate the pair.
	inStr, outStr := d.CheckIn, d.CheckOut
	if req.CheckIn != nil {
		inStr = *req.CheckIn
	}
	if req.CheckOut != nil {
		outStr = *req.CheckOut
	}
	in, err := time.Parse(dateLayout, inStr)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_in must be YYYY-MM-DD"})
	}
	out, err := time.Parse(dateLayout, outStr)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_out must be YYYY-MM-DD"})
	}
	if !out.After(in) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_out must be after check_in"})
	}

	if err := h.Reservations.UpdateDates(ctx, id, req.CheckIn, req.CheckOut); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reschedule failed"})
	}
	d.CheckIn, d.CheckOut = inStr, outStr
	return c.JSON(http.StatusOK, d)
}

type settleReq struct {
	Method string `json:"method"`
}

// Settle records a payment for the stay total and links it onto the
// reservation row. When the payment row is created but the link fails,
// the response still carries the payment with linked=false so the
// partial state is visible instead of silently swallowed; such rows show
// up in the unpaid listing until reconciled.
func (h *ReservationHandler) Settle(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	var req settleReq
	if err := c.Bind(&req); err != nil || req.Method == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "method required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	d, err := h.Reservations.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !isStaff(c) && d.Customer.ID != currentUserID(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	if d.Status != "Active" {
		return c.JSON(http.StatusConflict, echo.Map{"error": "reservation is not active"})
	}
	if d.PaymentID != nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": "reservation already paid"})
	}

	res, err := h.rehydrate(d)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load reservation failed"})
	}

	pay, err := h.Desk.Settle(ctx, res, req.Method)
	if err != nil {
		if errors.Is(err, booking.ErrPaymentUnlinked) {
			return c.JSON(http.StatusOK, echo.Map{
				"payment_id":     pay.ID(),
				"amount_cents":   pay.AmountCents(),
				"method":         pay.Method(),
				"reservation_id": id,
				"linked":         false,
				"warning":        "payment recorded but not linked to the reservation",
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "settle failed"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"payment_id":     pay.ID(),
		"amount_cents":   pay.AmountCents(),
		"method":         pay.Method(),
		"date":           pay.Date(),
		"reservation_id": id,
		"linked":         true,
	})
}

// rehydrate rebuilds the booking aggregate from a detail row. The
// stored total carries over so settlement charges exactly what was
// priced at booking, attached services included. The rebuilt graph is
// fresh; identity with other loads is not preserved.
func (h *ReservationHandler) rehydrate(d *repository.ReservationDetail) (*booking.Reservation, error) {
	in, err := time.Parse(dateLayout, d.CheckIn)
	if err != nil {
		return nil, err
	}
	out, err := time.Parse(dateLayout, d.CheckOut)
	if err != nil {
		return nil, err
	}
	guest := booking.RestoreGuest(d.Customer.ID, d.Customer.FirstName, d.Customer.SecondName,
		d.Customer.LastName, d.Customer.SecondLastName, d.Customer.Phone, d.Customer.Email,
		d.Customer.State, d.Customer.CURP)
	room := booking.RestoreRoom(d.Room.ID, d.Room.Number, d.Room.Type,
		booking.RoomStatus(d.Room.Status), d.Room.CostPerNight, d.Room.Description)
	return booking.RestoreReservation(d.ID, in, out, guest, room, d.TotalCost), nil
}
