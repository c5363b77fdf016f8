package http

import (
	"context"
	"net/http"

	"medevac-case-service/internal/usecase/enquiry"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type EnquiryHandler struct {
	uc  *enquiry.Usecase
	log *zap.Logger
}

func NewEnquiryHandler(uc *enquiry.Usecase, log *zap.Logger) *EnquiryHandler {
	return &EnquiryHandler{uc: uc, log: log}
}

func (h *EnquiryHandler) Create(c echo.Context) error {
	var req enquiry.CreateEnquiryInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *EnquiryHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid enquiry id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), actorFrom(c), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *EnquiryHandler) List(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context(), actorFrom(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *EnquiryHandler) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid enquiry id"})
	}
	var req enquiry.UpdateEnquiryInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Update(c.Request().Context(), id, req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *EnquiryHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid enquiry id"})
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "enquiry and dependents deleted"})
}

func (h *EnquiryHandler) Verify(c echo.Context) error {
	return h.simpleTransition(c, h.uc.Verify)
}

func (h *EnquiryHandler) Forward(c echo.Context) error {
	return h.simpleTransition(c, h.uc.Forward)
}

type approveRejectReq struct {
	Action string `json:"action" validate:"required,oneof=APPROVE REJECT"`
}

func (h *EnquiryHandler) ApproveOrReject(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid enquiry id"})
	}
	var req approveRejectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.ApproveOrReject(c.Request().Context(), id, req.Action)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *EnquiryHandler) Escalate(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid enquiry id"})
	}
	var req enquiry.EscalateInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Escalate(c.Request().Context(), id, req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *EnquiryHandler) simpleTransition(c echo.Context, fn func(ctx context.Context, id uint64) (*enquiry.EnquiryDTO, error)) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid enquiry id"})
	}
	dto, err := fn(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}
