package services

import (
	"net/url"
	"strings"
	"testing"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() models.Order {
	return models.Order{
		TrackingNumber: "MNT-LXK2A9-7F3Q",
		CustomerName:   "Élise Laurent",
		Address:        "12 Rue de la Paix, Paris",
		Items: []models.OrderItem{
			{ProductID: "1", Name: "Noir Éclat", Quantity: 2, Price: 245},
			{ProductID: "3", Name: "Cèdre Sauvage", Quantity: 1, Price: 195},
		},
		Subtotal: 685,
		Total:    685,
	}
}

func TestBuildOrderMessage(t *testing.T) {
	msg := BuildOrderMessage(sampleOrder())

	assert.Contains(t, msg, "Order Reference: MNT-LXK2A9-7F3Q")
	assert.Contains(t, msg, "Name: Élise Laurent")
	assert.Contains(t, msg, "Delivery Address: 12 Rue de la Paix, Paris")
	assert.Contains(t, msg, "- Noir Éclat x2 — $490.00")
	assert.Contains(t, msg, "- Cèdre Sauvage x1 — $195.00")
	assert.Contains(t, msg, "Total: $685.00")
}

func TestHandoffURLFromBareNumber(t *testing.T) {
	link := HandoffURL("+33 1 42 00 00 00", "hello world")

	require.True(t, strings.HasPrefix(link, "https://wa.me/33142000000?text="), link)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "hello world", u.Query().Get("text"))
}

func TestHandoffURLFromFullLink(t *testing.T) {
	link := HandoffURL("https://wa.me/33142000000", "bonjour")
	assert.True(t, strings.HasPrefix(link, "https://wa.me/33142000000?text="), link)
}

func TestHandoffURLWithoutNumber(t *testing.T) {
	assert.Empty(t, HandoffURL("", "message"))
	assert.Empty(t, HandoffURL("no digits here", "message"))
}
