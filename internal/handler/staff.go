package handler

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/josemtz/hotel-reservation/internal/booking"
	"github.com/josemtz/hotel-reservation/internal/config"
	"github.com/josemtz/hotel-reservation/internal/model"
	"github.com/josemtz/hotel-reservation/internal/repository"
)

// StaffHandler covers back-office administration: employee accounts,
// the guest directory and payment lookups for reconciliation.
type StaffHandler struct {
	Cfg       config.Config
	Employees *repository.EmployeeRepo
	Customers *repository.CustomerRepo
	Payments  *repository.PaymentRepo
}

func NewStaffHandler(cfg config.Config, em *repository.EmployeeRepo, cu *repository.CustomerRepo, pa *repository.PaymentRepo) *StaffHandler {
	return &StaffHandler{Cfg: cfg, Employees: em, Customers: cu, Payments: pa}
}

type createEmployeeReq struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Password  string `json:"password"`
}

// CreateEmployee registers a staff account with one of the known roles.
func (h *StaffHandler) CreateEmployee(c echo.Context) error {
	var req createEmployeeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" || req.FirstName == "" || req.LastName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "first_name, last_name, email and password required"})
	}
	role, ok := booking.ParseRole(req.Role)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "role must be FRONT_DESK, PORTER or STAFF"})
	}

	m := &model.Employee{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Role:      string(role),
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if _, err := h.Employees.Create(ctx, m, req.Password, h.Cfg.BcryptCost); err != nil {
		if err == repository.ErrEmailExists {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create employee failed"})
	}
	m.PasswordHash = ""
	return c.JSON(http.StatusCreated, echo.Map{
		"employee": m,
		"duties":   role.Duties(),
	})
}

// ListEmployees returns the staff roster with each member's duties.
func (h *StaffHandler) ListEmployees(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	list, err := h.Employees.GetAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	type entry struct {
		model.Employee
		Duties []string `json:"duties"`
	}
	out := make([]entry, 0, len(list))
	for _, m := range list {
		m.PasswordHash = ""
		e := entry{Employee: m}
		if role, ok := booking.ParseRole(m.Role); ok {
			e.Duties = role.Duties()
		}
		out = append(out, e)
	}
	return c.JSON(http.StatusOK, echo.Map{"employees": out})
}

// ListCustomers returns the guest directory.
func (h *StaffHandler) ListCustomers(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	list, err := h.Customers.GetAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	for i := range list {
		list[i].PasswordHash = ""
	}
	return c.JSON(http.StatusOK, echo.Map{"customers": list})
}

// GetPayment fetches a payment row by id. A settlement that reported
// linked=false still names its payment id; this lookup lets the front
// desk verify the row while reconciling.
func (h *StaffHandler) GetPayment(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payment id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	m, err := h.Payments.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "payment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, m)
}
