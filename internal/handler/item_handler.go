package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"marketplace-service/internal/model"
	"marketplace-service/internal/serializer"
	"marketplace-service/internal/store"
	"marketplace-service/pkg/logger"
	"marketplace-service/prometheus"
)

// ItemHandler serves the item endpoints
type ItemHandler struct {
	items *store.ItemStore
}

func NewItemHandler(items *store.ItemStore) *ItemHandler {
	return &ItemHandler{items: items}
}

// CreateItemRequest defines the structure for item creation requests
type CreateItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
	MerchantID  uint    `json:"merchant_id"`
}

// ItemParams is the partial attribute set accepted by updates. Absent fields
// stay untouched.
type ItemParams struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	UnitPrice   *float64 `json:"unit_price"`
	MerchantID  *uint    `json:"merchant_id"`
}

// UpdateItemRequest wraps the update payload under an "item" key
type UpdateItemRequest struct {
	Item ItemParams `json:"item"`
}

// List handles retrieving all items
func (h *ItemHandler) List(c echo.Context) error {
	log := logger.FromEcho(c)

	items, err := h.items.List()
	if err != nil {
		log.Error("Failed to list items", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve items"})
	}

	return c.JSON(http.StatusOK, serializer.NewItemList(items))
}

// Get handles retrieving a single item by ID
func (h *ItemHandler) Get(c echo.Context) error {
	log := logger.FromEcho(c)
	idParam := c.Param("id")

	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		log.Warn("Invalid item ID", zap.String("item_id", idParam))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Item not found"})
	}

	item, err := h.items.Get(uint(id))
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			log.Warn("Item not found", zap.String("item_id", idParam))
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Item not found"})
		}
		log.Error("Failed to get item", zap.String("item_id", idParam), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve item"})
	}

	return c.JSON(http.StatusOK, serializer.NewItem(item))
}

// Create handles creating a new item. Validation failures report every
// missing field with a 422.
func (h *ItemHandler) Create(c echo.Context) error {
	log := logger.FromEcho(c)

	var req CreateItemRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid item payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	item := model.Item{
		Name:        req.Name,
		Description: req.Description,
		UnitPrice:   req.UnitPrice,
		MerchantID:  req.MerchantID,
	}

	if err := h.items.Create(&item); err != nil {
		var validationErr *model.ValidationError
		if errors.As(err, &validationErr) {
			log.Warn("Item validation failed", zap.Strings("missing", validationErr.Missing))
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": validationErr.Missing})
		}
		if errors.Is(err, store.ErrMerchantNotFound) {
			log.Warn("Item references missing merchant", zap.Uint("merchant_id", req.MerchantID))
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": []string{"merchant must exist"}})
		}
		log.Error("Failed to create item", zap.String("name", req.Name), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create item"})
	}

	prometheus.RecordItemOperation("create")
	log.Info("Item created",
		zap.Uint("item_id", item.ID),
		zap.String("name", item.Name),
		zap.Uint("merchant_id", item.MerchantID))
	return c.JSON(http.StatusCreated, serializer.NewItem(&item))
}

// Update handles a partial item update with an optional merchant
// reassignment. The merchant existence check runs before anything is written,
// so a bad merchant ID leaves the item untouched.
func (h *ItemHandler) Update(c echo.Context) error {
	log := logger.FromEcho(c)
	idParam := c.Param("id")

	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		log.Warn("Invalid item ID", zap.String("item_id", idParam))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Item not found"})
	}

	var req UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid item payload", zap.String("item_id", idParam), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	item, err := h.items.UpdateWithMerchantCheck(uint(id), store.UpdateItemParams{
		Name:        req.Item.Name,
		Description: req.Item.Description,
		UnitPrice:   req.Item.UnitPrice,
		MerchantID:  req.Item.MerchantID,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrItemNotFound):
			log.Warn("Item not found for update", zap.String("item_id", idParam))
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Item not found"})
		case errors.Is(err, store.ErrMerchantNotFound):
			log.Warn("Merchant not found for item update", zap.String("item_id", idParam))
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Merchant not found"})
		default:
			log.Error("Failed to update item", zap.String("item_id", idParam), zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update item"})
		}
	}

	prometheus.RecordItemOperation("update")
	log.Info("Item updated", zap.Uint("item_id", item.ID), zap.String("name", item.Name))
	return c.JSON(http.StatusOK, serializer.NewItem(item))
}

// Delete handles item deletion with the orphaned-invoice cleanup
func (h *ItemHandler) Delete(c echo.Context) error {
	log := logger.FromEcho(c)
	idParam := c.Param("id")

	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		log.Warn("Invalid item ID", zap.String("item_id", idParam))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Item not found"})
	}

	if err := h.items.DeleteCascade(uint(id)); err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			log.Warn("Item not found for deletion", zap.String("item_id", idParam))
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Item not found"})
		}
		log.Error("Failed to delete item", zap.String("item_id", idParam), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete item"})
	}

	prometheus.RecordItemOperation("delete")
	log.Info("Item deleted", zap.String("item_id", idParam))
	return c.NoContent(http.StatusNoContent)
}

// Merchant handles retrieving the merchant that owns an item
func (h *ItemHandler) Merchant(c echo.Context) error {
	log := logger.FromEcho(c)
	idParam := c.Param("id")

	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		log.Warn("Invalid item ID", zap.String("item_id", idParam))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Item not Found"})
	}

	merchant, err := h.items.Merchant(uint(id))
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) || errors.Is(err, store.ErrMerchantNotFound) {
			log.Warn("Item not found for merchant lookup", zap.String("item_id", idParam))
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Item not Found"})
		}
		log.Error("Failed to get item merchant", zap.String("item_id", idParam), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve merchant"})
	}

	return c.JSON(http.StatusOK, serializer.NewMerchant(merchant))
}

// FindAll handles the combined item search. Exactly one search mode applies:
// name fragment or price range, never both.
func (h *ItemHandler) FindAll(c echo.Context) error {
	log := logger.FromEcho(c)

	query := store.ItemSearchQuery{Name: c.QueryParam("name")}
	if raw := c.QueryParam("min_price"); raw != "" {
		v, _ := strconv.ParseFloat(raw, 64)
		query.MinPrice = &v
	}
	if raw := c.QueryParam("max_price"); raw != "" {
		v, _ := strconv.ParseFloat(raw, 64)
		query.MaxPrice = &v
	}

	items, err := h.items.FindItems(query)
	if err != nil {
		var rejected *store.SearchRejectedError
		if errors.As(err, &rejected) {
			prometheus.RecordSearchOutcome("items", "rejected")
			log.Warn("Item search rejected", zap.String("reason", rejected.Reason.String()))
			switch rejected.Reason {
			case store.RejectNameAndPrice:
				return c.JSON(http.StatusBadRequest, echo.Map{"errors": "Cannot send name and price parameters together"})
			case store.RejectNegativePrice:
				return c.JSON(http.StatusBadRequest, echo.Map{"errors": "Price must be greater than or equal to 0"})
			default:
				return c.JSON(http.StatusNotFound, echo.Map{"errors": "Bad Request"})
			}
		}
		log.Error("Failed to search items", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to search items"})
	}

	if len(items) == 0 {
		prometheus.RecordSearchOutcome("items", "empty")
		return c.JSON(http.StatusOK, serializer.EmptyList())
	}

	prometheus.RecordSearchOutcome("items", "match")
	return c.JSON(http.StatusOK, serializer.NewItemList(items))
}
