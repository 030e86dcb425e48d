package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"marketplace-service/internal/serializer"
	"marketplace-service/internal/store"
	"marketplace-service/pkg/logger"
	"marketplace-service/prometheus"
)

// MerchantHandler serves the merchant endpoints
type MerchantHandler struct {
	merchants *store.MerchantStore
}

func NewMerchantHandler(merchants *store.MerchantStore) *MerchantHandler {
	return &MerchantHandler{merchants: merchants}
}

func merchantNotFoundBody(id string) echo.Map {
	return echo.Map{"error": fmt.Sprintf("Couldn't find merchant with 'id'=%s", id)}
}

// List handles retrieving all merchants
func (h *MerchantHandler) List(c echo.Context) error {
	log := logger.FromEcho(c)

	merchants, err := h.merchants.List()
	if err != nil {
		log.Error("Failed to list merchants", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve merchants"})
	}

	return c.JSON(http.StatusOK, serializer.NewMerchantList(merchants))
}

// Get handles retrieving a single merchant by ID
func (h *MerchantHandler) Get(c echo.Context) error {
	log := logger.FromEcho(c)
	idParam := c.Param("id")

	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		log.Warn("Invalid merchant ID", zap.String("merchant_id", idParam))
		return c.JSON(http.StatusNotFound, merchantNotFoundBody(idParam))
	}

	merchant, err := h.merchants.Get(uint(id))
	if err != nil {
		if errors.Is(err, store.ErrMerchantNotFound) {
			log.Warn("Merchant not found", zap.String("merchant_id", idParam))
			return c.JSON(http.StatusNotFound, merchantNotFoundBody(idParam))
		}
		log.Error("Failed to get merchant", zap.String("merchant_id", idParam), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve merchant"})
	}

	return c.JSON(http.StatusOK, serializer.NewMerchant(merchant))
}

// Items handles retrieving all items belonging to a merchant
func (h *MerchantHandler) Items(c echo.Context) error {
	log := logger.FromEcho(c)
	idParam := c.Param("id")

	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		log.Warn("Invalid merchant ID", zap.String("merchant_id", idParam))
		return c.JSON(http.StatusNotFound, merchantNotFoundBody(idParam))
	}

	items, err := h.merchants.Items(uint(id))
	if err != nil {
		if errors.Is(err, store.ErrMerchantNotFound) {
			log.Warn("Merchant not found", zap.String("merchant_id", idParam))
			return c.JSON(http.StatusNotFound, merchantNotFoundBody(idParam))
		}
		log.Error("Failed to list merchant items", zap.String("merchant_id", idParam), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve items"})
	}

	return c.JSON(http.StatusOK, serializer.NewItemList(items))
}

// Search handles the merchant name search. Only the first match is returned,
// even when several merchants match; no name or zero matches yields an empty
// data array with a 200.
func (h *MerchantHandler) Search(c echo.Context) error {
	log := logger.FromEcho(c)
	fragment := c.QueryParam("name")

	if fragment == "" {
		return c.JSON(http.StatusOK, serializer.EmptyList())
	}

	merchants, err := h.merchants.SearchByName(fragment)
	if err != nil {
		log.Error("Failed to search merchants", zap.String("fragment", fragment), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to search merchants"})
	}

	if len(merchants) == 0 {
		prometheus.RecordSearchOutcome("merchants", "empty")
		return c.JSON(http.StatusOK, serializer.EmptyList())
	}

	prometheus.RecordSearchOutcome("merchants", "match")
	log.Info("Merchant search matched",
		zap.String("fragment", fragment),
		zap.Int("matches", len(merchants)))
	return c.JSON(http.StatusOK, serializer.NewMerchant(&merchants[0]))
}
