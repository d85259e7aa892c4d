package handler

import (
	"log/slog"
	"net/http"

	"printdesk/internal/delivery/http/middleware"
	"printdesk/internal/delivery/http/response"
	"printdesk/internal/domain/entity"
	"printdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PricingHandler holds dependencies for pricing-rule handlers.
// All routes are shop-owner gated; ownership beyond the role is enforced here
// and in the usecase.
type PricingHandler struct {
	uc     usecase.PricingUsecase
	logger *slog.Logger
}

// NewPricingHandler is the constructor for PricingHandler, injected by Fx.
func NewPricingHandler(uc usecase.PricingUsecase, logger *slog.Logger) *PricingHandler {
	return &PricingHandler{
		uc:     uc,
		logger: logger,
	}
}

type createPricingRequest struct {
	PaperType   string  `json:"paperType" validate:"required"`
	PrintType   string  `json:"printType" validate:"required"`
	SingleSided float64 `json:"singleSided" validate:"gte=0"`
	DoubleSided float64 `json:"doubleSided" validate:"gte=0"`
}

type updatePricingRequest struct {
	SingleSided float64 `json:"singleSided" validate:"gte=0"`
	DoubleSided float64 `json:"doubleSided" validate:"gte=0"`
}

// List returns every pricing rule of the caller's shop.
func (h *PricingHandler) List(c echo.Context) error {
	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid shop ID")
	}

	if callerShopID(c) != shopID {
		return response.Forbidden(c, "PERMISSION_DENIED", "You may only view your own shop's pricing")
	}

	rules, err := h.uc.ListShopPricing(c.Request().Context(), shopID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rules, "Pricing retrieved successfully")
}

// Create adds a pricing rule to the caller's shop.
func (h *PricingHandler) Create(c echo.Context) error {
	var req createPricingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pricing input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	rule, err := h.uc.Create(c.Request().Context(), &usecase.CreatePricingInput{
		ShopOwnerID: callerShopID(c),
		PaperType:   req.PaperType,
		PrintType:   entity.PrintType(req.PrintType),
		SingleSided: req.SingleSided,
		DoubleSided: req.DoubleSided,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, rule, "Pricing rule created successfully")
}

// Update changes the prices of one of the caller's rules.
func (h *PricingHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid pricing rule ID")
	}

	var req updatePricingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pricing input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	rule, err := h.uc.Update(c.Request().Context(), &usecase.UpdatePricingInput{
		ID:          id,
		ShopOwnerID: callerShopID(c),
		SingleSided: req.SingleSided,
		DoubleSided: req.DoubleSided,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rule, "Pricing rule updated successfully")
}

// Delete removes one of the caller's rules.
func (h *PricingHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid pricing rule ID")
	}

	if err := h.uc.Delete(c.Request().Context(), callerShopID(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Pricing rule deleted successfully")
}

// callerShopID returns the shop ID from the caller's token claims.
func callerShopID(c echo.Context) uuid.UUID {
	shopID, _ := c.Get(middleware.KeyShopOwnerID).(uuid.UUID)

	return shopID
}
