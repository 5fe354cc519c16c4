package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/asadbek201001/Ilmhub-Coin-system/internal/api/metrics"
	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/ports"
)

// CatalogHandler handles the reward item catalog endpoints.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListItems returns catalog items. Unavailable items are hidden unless the
// caller asks for them with ?all=true.
//
// @Summary      List catalog items
// @Tags         catalog
// @Produce      json
// @Param        all  query     bool  false  "Include unavailable items"
// @Success      200  {object}  itemsResponse
// @Router       /items [get]
func (h *CatalogHandler) ListItems(c echo.Context) error {
	includeUnavailable := c.QueryParam("all") == "true"

	items, err := h.service.ListItems(c.Request().Context(), includeUnavailable)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, itemsResponse{Items: items})
}

// AddItem creates a new catalog item.
//
// @Summary      Add a catalog item
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addItemRequest  true  "Item details"
// @Success      201   {object}  itemResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /add-item [post]
func (h *CatalogHandler) AddItem(c echo.Context) error {
	var req addItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	item, err := h.service.AddItem(c.Request().Context(), actor.ID, ports.AddItemInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Available:   available,
	})
	if err != nil {
		return err
	}

	metrics.ItemsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, itemResponse{Item: item})
}

// SetAvailability toggles whether an item can be purchased.
//
// @Summary      Set item availability
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Item ID"
// @Param        body  body      setAvailabilityRequest  true  "Availability flag"
// @Success      200   {object}  itemResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /items/{id}/availability [put]
func (h *CatalogHandler) SetAvailability(c echo.Context) error {
	var req setAvailabilityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	item, err := h.service.SetAvailability(c.Request().Context(), actor.ID, c.Param("id"), *req.Available)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, itemResponse{Item: item})
}
