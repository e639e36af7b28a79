package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/example/wb-order-client/internal/domain"
	"github.com/example/wb-order-client/internal/format"
)

// sizePlaceholder выводится вместо отсутствующего размера позиции.
const sizePlaceholder = "N/A"

// Renderer детерминированно отображает заказ в Document.
// Никакой проверки диапазонов: значения выводятся как пришли.
type Renderer struct {
	currency *format.Currency
}

func New(currency *format.Currency) *Renderer {
	return &Renderer{currency: currency}
}

// Render чистая: одинаковый заказ всегда даёт одинаковый документ,
// побочных эффектов кроме диагностики форматтера валют нет.
func (r *Renderer) Render(o *domain.Order) *Document {
	cur := o.Payment.Currency
	service := strings.ToUpper(o.DeliverySrv)

	doc := &Document{
		Header: Header{
			Title:      "Order #" + o.OrderUID,
			Subtitle:   "Managed via " + service + " delivery service",
			Created:    "Created " + format.Date(o.DateCreated),
			TotalBadge: r.currency.Format(o.Payment.Amount, cur),
		},
		Meta: []MetaItem{
			{Label: "Track Number", Value: o.TrackNumber},
			{Label: "Customer ID", Value: o.CustomerID},
			{Label: "Delivery Service", Value: service},
			{Label: "Transaction", Value: o.Payment.Transaction},
		},
		Delivery: Panel{
			Title: "Delivery Information",
			Rows: []InfoRow{
				{Label: "Full Name", Value: o.Delivery.Name},
				{Label: "Phone", Value: o.Delivery.Phone},
				{Label: "Email", Value: o.Delivery.Email},
				{Label: "Address", Value: o.Delivery.Address},
				{Label: "City", Value: o.Delivery.City},
				{Label: "Region", Value: o.Delivery.Region},
				{Label: "ZIP", Value: o.Delivery.Zip},
			},
		},
		Payment: Panel{
			Title: "Payment Breakdown",
			Rows: []InfoRow{
				{Label: "Provider", Value: strings.ToUpper(o.Payment.Provider)},
				{Label: "Bank", Value: strings.ToUpper(o.Payment.Bank)},
				{Label: "Items Subtotal", Value: r.currency.Format(o.Payment.GoodsTotal, cur)},
				{Label: "Delivery Cost", Value: r.currency.Format(o.Payment.DeliveryCost, cur)},
				{Label: "Custom Fees", Value: r.currency.Format(o.Payment.CustomFee, cur)},
				{Label: "Total Amount", Value: r.currency.Format(o.Payment.Amount, cur), Total: true},
			},
		},
		Items: ItemsSection{
			Count: len(o.Items),
			Rows:  make([]ItemRow, 0, len(o.Items)),
		},
	}

	// порядок позиций сохраняется как в ответе
	for _, it := range o.Items {
		size := it.Size
		if size == "" {
			size = sizePlaceholder
		}
		doc.Items.Rows = append(doc.Items.Rows, ItemRow{
			Name:     it.Name,
			Brand:    it.Brand,
			ID:       strconv.Itoa(it.ChrtID),
			Size:     size,
			Original: r.currency.Format(it.Price, cur),
			Sale:     fmt.Sprintf("-%d%%", it.Sale),
			Total:    r.currency.Format(it.TotalPrice, cur),
			Status:   format.Status(it.Status),
			Track:    it.TrackNumber,
		})
	}
	return doc
}
