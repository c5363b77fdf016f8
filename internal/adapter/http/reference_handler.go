package http

import (
	"net/http"
	"strconv"

	"medevac-case-service/internal/domain/district"
	"medevac-case-service/internal/domain/hospital"
	"medevac-case-service/internal/domain/user"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ReferenceHandler serves the lookup tables enquiries point at.
type ReferenceHandler struct {
	hospitals hospital.Repository
	districts district.Repository
	users     user.Repository
	log       *zap.Logger
}

func NewReferenceHandler(h hospital.Repository, d district.Repository, u user.Repository, log *zap.Logger) *ReferenceHandler {
	return &ReferenceHandler{hospitals: h, districts: d, users: u, log: log}
}

func (h *ReferenceHandler) ListHospitals(c echo.Context) error {
	if raw := c.QueryParam("district_id"); raw != "" {
		districtID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid district_id"})
		}
		rows, err := h.hospitals.ListByDistrictID(c.Request().Context(), districtID)
		if err != nil {
			return respondError(c, h.log, err)
		}
		return c.JSON(http.StatusOK, rows)
	}
	rows, err := h.hospitals.List(c.Request().Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ReferenceHandler) GetHospital(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid hospital id"})
	}
	row, err := h.hospitals.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, row)
}

func (h *ReferenceHandler) ListDistricts(c echo.Context) error {
	rows, err := h.districts.List(c.Request().Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ReferenceHandler) ListUsers(c echo.Context) error {
	rows, err := h.users.List(c.Request().Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ReferenceHandler) GetUser(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
	}
	row, err := h.users.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, row)
}

func (h *ReferenceHandler) GetDistrict(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid district id"})
	}
	row, err := h.districts.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, row)
}
