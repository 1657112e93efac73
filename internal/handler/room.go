package handler

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/josemtz/hotel-reservation/internal/model"
	"github.com/josemtz/hotel-reservation/internal/repository"
)

// RoomHandler serves the room catalog: public listings plus the staff
// management endpoints. Role enforcement happens in the router; these
// handlers assume an authorized caller.
type RoomHandler struct {
	Rooms *repository.RoomRepo
}

func NewRoomHandler(r *repository.RoomRepo) *RoomHandler { return &RoomHandler{Rooms: r} }

type roomReq struct {
	Number       string `json:"room_number"`
	Type         string `json:"room_type"`
	CostPerNight uint32 `json:"cost_per_night_cents"`
	Description  string `json:"description"`
}

// List returns the room catalog. ?status=Available narrows to bookable
// rooms; the unfiltered listing is what the public browse page shows.
func (h *RoomHandler) List(c echo.Context) error {
	status := strings.TrimSpace(c.QueryParam("status"))
	switch status {
	case "", "Available", "Occupied", "Maintenance":
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status filter"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	rooms, err := h.Rooms.GetAll(ctx, status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"rooms": rooms})
}

// Get returns a single room by id.
func (h *RoomHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	room, err := h.Rooms.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, room)
}

// Create adds a room to the catalog. New rooms start Available.
func (h *RoomHandler) Create(c echo.Context) error {
	var req roomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Number == "" || req.Type == "" || req.CostPerNight == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_number, room_type and cost_per_night_cents required"})
	}
	m := &model.Room{
		Number:       req.Number,
		Type:         req.Type,
		CostPerNight: req.CostPerNight,
		Description:  req.Description,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if _, err := h.Rooms.Create(ctx, m); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create room failed"})
	}
	return c.JSON(http.StatusCreated, m)
}

// Update rewrites a room's administrative columns. Availability is not
// touched here; it belongs to the booking flow and SetStatus.
func (h *RoomHandler) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	var req roomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Number == "" || req.Type == "" || req.CostPerNight == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_number, room_type and cost_per_night_cents required"})
	}
	m := &model.Room{
		ID:           id,
		Number:       req.Number,
		Type:         req.Type,
		CostPerNight: req.CostPerNight,
		Description:  req.Description,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Rooms.Update(ctx, m); err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update room failed"})
	}
	return c.JSON(http.StatusOK, m)
}

type roomStatusReq struct {
	Status string `json:"status"`
}

// SetStatus moves a room between Available and Maintenance. Occupied is
// not settable here: rooms become Occupied only by being booked.
func (h *RoomHandler) SetStatus(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	var req roomStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Status != "Available" && req.Status != "Maintenance" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be Available or Maintenance"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Rooms.SetStatus(ctx, id, req.Status); err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update status failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"room_id": id, "status": req.Status})
}

// Delete removes a room. Rooms referenced by reservations, past or
// present, are refused with 409.
func (h *RoomHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Rooms.Delete(ctx, id); err != nil {
		switch err {
		case sql.ErrNoRows:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		case repository.ErrConflict:
			return c.JSON(http.StatusConflict, echo.Map{"error": "room has reservations"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete room failed"})
		}
	}
	return c.NoContent(http.StatusNoContent)
}
