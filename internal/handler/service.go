package handler

import (
	"database/sql"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/josemtz/hotel-reservation/internal/model"
	"github.com/josemtz/hotel-reservation/internal/repository"
)

// ServiceHandler serves the service catalog (spa, laundry, room
// service): a public listing plus staff management.
type ServiceHandler struct {
	Services *repository.ServiceRepo
}

func NewServiceHandler(s *repository.ServiceRepo) *ServiceHandler { return &ServiceHandler{Services: s} }

type serviceReq struct {
	Name        string `json:"name"`
	Cost        uint32 `json:"cost_cents"`
	Description string `json:"description"`
}

// List returns the whole catalog.
func (h *ServiceHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	services, err := h.Services.GetAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"services": services})
}

// Get returns a single catalog entry.
func (h *ServiceHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid service id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	svc, err := h.Services.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, svc)
}

// Create adds a catalog entry.
func (h *ServiceHandler) Create(c echo.Context) error {
	var req serviceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}
	m := &model.Service{Name: req.Name, Cost: req.Cost, Description: req.Description}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if _, err := h.Services.Create(ctx, m); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create service failed"})
	}
	return c.JSON(http.StatusCreated, m)
}

// Update rewrites a catalog entry.
func (h *ServiceHandler) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid service id"})
	}
	var req serviceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}
	m := &model.Service{ID: id, Name: req.Name, Cost: req.Cost, Description: req.Description}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Services.Update(ctx, m); err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update service failed"})
	}
	return c.JSON(http.StatusOK, m)
}

// Delete removes a catalog entry unless guests hold requests against it.
func (h *ServiceHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid service id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Services.Delete(ctx, id); err != nil {
		switch err {
		case sql.ErrNoRows:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
		case repository.ErrConflict:
			return c.JSON(http.StatusConflict, echo.Map{"error": "service has reservations"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete service failed"})
		}
	}
	return c.NoContent(http.StatusNoContent)
}
