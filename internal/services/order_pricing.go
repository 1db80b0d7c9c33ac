package services

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"storefront/internal/apperrors"
	"storefront/internal/models"
)

// buildOrder validates a raw cart against the store settings and produces a
// fully priced order header plus normalized line items. Pure computation: no
// I/O, deterministic for fixed inputs.
//
// Prices are trusted from the request (base_price, addons_total, final_price)
// and only aggregated here; they are not re-derived from the catalog. See
// DESIGN.md for the open question on that trust boundary.
func buildOrder(req *models.CreateOrderRequest, settings *models.StoreSettings) (*models.Order, []models.OrderItem, error) {
	if strings.TrimSpace(req.CustomerName) == "" ||
		strings.TrimSpace(req.CustomerPhone) == "" ||
		len(req.Items) == 0 {
		return nil, nil, apperrors.NewValidationError("missing required order fields: customer_name, customer_phone and items")
	}

	var subtotal float64
	items := make([]models.OrderItem, 0, len(req.Items))

	for i, item := range req.Items {
		if item.ProductID == 0 || item.Quantity <= 0 {
			return nil, nil, apperrors.NewItemValidationError(i,
				fmt.Sprintf("item %d is invalid: product_id and a positive quantity are required", i))
		}
		if len(item.Addons) > settings.MaxAddons {
			return nil, nil, apperrors.NewItemValidationError(i,
				fmt.Sprintf("item exceeds the limit of %d addons", settings.MaxAddons))
		}

		subtotal += item.FinalPrice * float64(item.Quantity)

		name := item.ProductName
		if name == "" {
			name = "Product"
		}

		addonsJSON, err := marshalAddons(item.Addons)
		if err != nil {
			return nil, nil, apperrors.NewInternalError(err)
		}

		items = append(items, models.OrderItem{
			ProductID:      item.ProductID,
			ProductName:    name,
			Quantity:       item.Quantity,
			BasePrice:      item.BasePrice,
			AddonsTotal:    item.AddonsTotal,
			FinalPrice:     item.FinalPrice,
			SelectedAddons: addonsJSON,
		})
	}

	// The fee only applies to delivery orders, whatever the client sent.
	var deliveryFee float64
	if req.DeliveryType == string(models.DeliveryTypeDelivery) {
		deliveryFee = settings.DeliveryFee
	}

	subtotal = roundToCents(subtotal)
	total := roundToCents(subtotal + deliveryFee)

	order := &models.Order{
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerPhone:   strings.TrimSpace(req.CustomerPhone),
		DeliveryType:    req.DeliveryType,
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
		ChangeFor:       req.ChangeFor,
		Subtotal:        subtotal,
		DeliveryFee:     deliveryFee,
		Total:           total,
		Status:          string(models.OrderPending),
	}

	return order, items, nil
}

func marshalAddons(addons []models.OrderAddonRequest) (string, error) {
	if len(addons) == 0 {
		return "[]", nil
	}

	selected := make([]models.SelectedAddon, 0, len(addons))
	for _, a := range addons {
		selected = append(selected, models.SelectedAddon{
			ID:    a.ID,
			Name:  a.Name,
			Price: a.Price,
		})
	}

	data, err := json.Marshal(selected)
	if err != nil {
		return "", fmt.Errorf("failed to marshal selected addons: %w", err)
	}
	return string(data), nil
}

func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}
