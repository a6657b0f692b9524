package order_controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/store"
	"github.com/gin-gonic/gin"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

// DownloadInvoicePDF godoc
// @Summary Download an order's invoice as PDF
// @Tags Admin - Orders
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {file} binary
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/orders/{id}/invoice [get]
func DownloadInvoicePDF(c *gin.Context) {
	orderID := c.Param("id")
	log.Printf("[order.invoice] request for order: %s", orderID)

	order, err := store.Get().Ledger.Get(orderID)
	if err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	buf, err := generateOrderInvoicePDF(order)
	if err != nil {
		log.Printf("[order.invoice] failed to generate PDF for order %s: %v", orderID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	filename := fmt.Sprintf("invoice-%s.pdf", order.TrackingNumber)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", buf)
}

func generateOrderInvoicePDF(order models.Order) ([]byte, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	charcoal := color.Color{Red: 28, Green: 28, Blue: 26}
	stone := color.Color{Red: 128, Green: 124, Blue: 116}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("INVOICE", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: charcoal,
			})
		})
	})

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("MONTCLAIRE PARFUMS", props.Text{
				Size:  16,
				Style: consts.Bold,
				Color: charcoal,
			})
		})
	})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("Maison de Haute Parfumerie — Paris", props.Text{
				Size:  9,
				Color: stone,
			})
		})
	})

	m.Row(8, func() {})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text("DELIVER TO", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: charcoal,
			})
		})
		m.Col(6, func() {
			m.Text("ORDER DETAILS", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: charcoal,
				Align: consts.Right,
			})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(order.CustomerName, props.Text{
				Size:  10,
				Style: consts.Bold,
				Color: charcoal,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Tracking %s", order.TrackingNumber), props.Text{
				Size:  10,
				Color: charcoal,
				Align: consts.Right,
			})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(order.Address, props.Text{
				Size:  9,
				Color: stone,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Date: %s", order.CreatedAt.Format("Jan 02, 2006")), props.Text{
				Size:  9,
				Color: stone,
				Align: consts.Right,
			})
		})
	})

	m.Row(8, func() {})

	m.Row(6, func() {
		m.Col(6, func() {
			m.Text("Fragrance", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: charcoal,
			})
		})
		m.Col(2, func() {
			m.Text("Qty", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: charcoal,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text("Price", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: charcoal,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text("Total", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: charcoal,
				Align: consts.Right,
			})
		})
	})

	for _, item := range order.Items {
		lineTotal := item.Price * float64(item.Quantity)
		m.Row(6, func() {
			m.Col(6, func() {
				m.Text(item.Name, props.Text{
					Size:  9,
					Color: charcoal,
				})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%d", item.Quantity), props.Text{
					Size:  9,
					Color: charcoal,
					Align: consts.Right,
				})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("$%.2f", item.Price), props.Text{
					Size:  9,
					Color: charcoal,
					Align: consts.Right,
				})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("$%.2f", lineTotal), props.Text{
					Size:  9,
					Color: charcoal,
					Align: consts.Right,
				})
			})
		})
	}

	m.Row(8, func() {})

	m.Row(5, func() {
		m.Col(8, func() {})
		m.Col(2, func() {
			m.Text("Subtotal", props.Text{
				Size:  9,
				Color: stone,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text(fmt.Sprintf("$%.2f", order.Subtotal), props.Text{
				Size:  9,
				Color: charcoal,
				Align: consts.Right,
			})
		})
	})

	m.Row(5, func() {
		m.Col(8, func() {})
		m.Col(2, func() {
			m.Text("Shipping", props.Text{
				Size:  9,
				Color: stone,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text("Arranged via WhatsApp", props.Text{
				Size:  8,
				Color: stone,
				Align: consts.Right,
			})
		})
	})

	m.Row(8, func() {
		m.Col(8, func() {})
		m.Col(2, func() {
			m.Text("Total", props.Text{
				Size:  12,
				Style: consts.Bold,
				Color: charcoal,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text(fmt.Sprintf("$%.2f", order.Total), props.Text{
				Size:  12,
				Style: consts.Bold,
				Color: charcoal,
				Align: consts.Right,
			})
		})
	})

	m.Row(12, func() {})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("Merci for your order.", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: charcoal,
			})
		})
	})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("© 2026 Montclaire Parfums. All rights reserved.", props.Text{
				Size:  8,
				Color: stone,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
