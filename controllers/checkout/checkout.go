package checkoutControllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maisonkart/storefront-api/models"
	"github.com/maisonkart/storefront-api/storage"
	"github.com/maisonkart/storefront-api/store"
)

// formatPrice renders an amount for display, rounded to two decimals.
func formatPrice(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

type DetailsInput struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	PaymentMethod string `json:"paymentMethod"`
}

// GET /store/checkout
func GetCheckout(kv storage.KV) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionIDVal, exists := c.Get("session_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sessionID := sessionIDVal.(string)

		co := store.LoadCheckout(kv, sessionID)
		summary := co.Summary()
		c.JSON(http.StatusOK, gin.H{
			"items":        co.Cart().Items(),
			"details":      co.Details(),
			"summary":      summary,
			"can_complete": co.CanComplete(),
			"display": gin.H{
				"subtotal": formatPrice(summary.Subtotal),
				"tax":      formatPrice(summary.Tax),
				"shipping": formatPrice(summary.Shipping),
				"total":    formatPrice(summary.Total),
			},
		})
	}
}

// PUT /store/checkout/details
func SaveDetails(kv storage.KV) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionIDVal, exists := c.Get("session_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sessionID := sessionIDVal.(string)

		var input DetailsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Saved as-is; non-empty checks are deferred to completion.
		co := store.LoadCheckout(kv, sessionID)
		details := models.OrderDetails{
			Name:          input.Name,
			Email:         input.Email,
			Address:       input.Address,
			PaymentMethod: models.PaymentMethod(input.PaymentMethod),
		}
		if err := co.SaveDetails(details); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save details"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"details":      co.Details(),
			"can_complete": co.CanComplete(),
		})
	}
}

// POST /store/checkout/complete
func CompletePurchase(kv storage.KV) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionIDVal, exists := c.Get("session_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sessionID := sessionIDVal.(string)

		co := store.LoadCheckout(kv, sessionID)
		order, err := co.CompletePurchase()
		if err != nil {
			if errors.Is(err, store.ErrDetailsIncomplete) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{
					"error": "Please provide shipping address and payment method.",
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete purchase"})
			return
		}

		broadcastPurchase(order)

		c.JSON(http.StatusOK, gin.H{
			"order_number": order.Number,
			"reference":    order.Reference,
			"total":        order.Total,
			"item_count":   order.ItemCount,
			"display": gin.H{
				"total": formatPrice(order.Total),
			},
		})
	}
}

// GET /store/checkout/confirmation
func GetConfirmation(kv storage.KV) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionIDVal, exists := c.Get("session_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sessionID := sessionIDVal.(string)

		number := store.LastOrderNumber(kv, sessionID)
		if number == "" {
			c.JSON(http.StatusNotFound, gin.H{"error": "No completed order for this session"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"order_number": number})
	}
}
