package http

import (
	"net/http"
	"strconv"

	"medevac-case-service/internal/usecase/query"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type QueryHandler struct {
	uc  *query.Usecase
	log *zap.Logger
}

func NewQueryHandler(uc *query.Usecase, log *zap.Logger) *QueryHandler {
	return &QueryHandler{uc: uc, log: log}
}

func (h *QueryHandler) Create(c echo.Context) error {
	var req query.CreateInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Create(c.Request().Context(), actorFrom(c), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type respondReq struct {
	ResponseText string `json:"response_text"`
}

func (h *QueryHandler) Respond(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query id"})
	}
	var req respondReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Respond(c.Request().Context(), actorFrom(c), id, req.ResponseText)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *QueryHandler) List(c echo.Context) error {
	var enquiryID uint64
	if raw := c.QueryParam("enquiry_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid enquiry_id"})
		}
		enquiryID = id
	}
	dtos, err := h.uc.List(c.Request().Context(), actorFrom(c), enquiryID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *QueryHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), actorFrom(c), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}
