package handler

import (
	"net/http"

	"phone_input_backend/internal/sessions/service"
	"phone_input_backend/internal/sessions/transport"
	"phone_input_backend/platform/httpkit"
	"phone_input_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes mounts session creation on rg and the token-protected
// session routes on a subgroup guarded by auth.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc) {
	sessions := rg.Group("/sessions")
	sessions.POST("", h.Create)

	owned := sessions.Group("/:id", auth)
	owned.GET("", h.Get)
	owned.GET("/countries", h.ListCountries)
	owned.PUT("/value", h.SetValue)
	owned.PUT("/country", h.SetCountry)
	owned.DELETE("/country", h.ClearCountry)
	owned.DELETE("", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	resp, err := h.svc.Create(c.Request.Context(), req.Config())
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.JSON(c, http.StatusCreated, resp)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := httpkit.MustGetSessionID(c)
	if !ok {
		return
	}

	view, err := h.svc.Get(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, view)
}

func (h *Handler) ListCountries(c *gin.Context) {
	id, ok := httpkit.MustGetSessionID(c)
	if !ok {
		return
	}

	list, err := h.svc.Countries(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.ListCountriesResponse{Items: list, Total: len(list)})
}

func (h *Handler) SetValue(c *gin.Context) {
	id, ok := httpkit.MustGetSessionID(c)
	if !ok {
		return
	}

	var req transport.SetValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	view, err := h.svc.SetValue(c.Request.Context(), id, req.Value)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, view)
}

func (h *Handler) SetCountry(c *gin.Context) {
	id, ok := httpkit.MustGetSessionID(c)
	if !ok {
		return
	}

	var req transport.SetCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	view, err := h.svc.SetCountry(c.Request.Context(), id, req.Country)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, view)
}

func (h *Handler) ClearCountry(c *gin.Context) {
	id, ok := httpkit.MustGetSessionID(c)
	if !ok {
		return
	}

	view, err := h.svc.ClearCountry(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, view)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := httpkit.MustGetSessionID(c)
	if !ok {
		return
	}

	if httpkit.HandleError(c, h.svc.Delete(c.Request.Context(), id)) {
		return
	}

	httpkit.NoContent(c)
}
