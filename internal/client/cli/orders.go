package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/bookvite/storefront/internal/client/models"
	"github.com/bookvite/storefront/internal/common"
)

// Orders is the customer's order history page, gated to customers:
//
//	orders            - list own orders
//	orders show <id>  - order detail
func (a *App) Orders(ctx context.Context, args []string) {
	if !a.guard(models.RoleCustomer) {
		return
	}

	if len(args) >= 2 && args[0] == "show" {
		a.renderOrderDetail(ctx, args[1])
		return
	}

	if err := a.orders.Fetch(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not load orders:", err.Error())
		return
	}

	items := a.orders.Items()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No orders yet.")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER\tDATE\tSTATUS\tTOTAL")
	for _, o := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t$%.2f\n", o.ID, formatOrderDate(o), o.Status, o.Total())
	}
	w.Flush()
}

func (a *App) renderOrderDetail(ctx context.Context, id string) {
	order, err := a.orders.Get(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load order:", err.Error())
		return
	}

	fmt.Fprintf(a.out, "Order #%s - %s\n", order.ID, order.Status)
	fmt.Fprintln(a.out, "Placed:", formatOrderDate(*order))
	for _, item := range order.Items {
		fmt.Fprintf(a.out, "  %s x %d\t$%.2f\n", item.Name, item.Quantity, item.Price*float64(item.Quantity))
	}
	fmt.Fprintf(a.out, "Total: $%.2f\n", order.Total())
	fmt.Fprintf(a.out, "Ship to: %s, %s - %s, %s, %s\n", order.Name, order.Phone, order.Address, order.City, order.Country)
	fmt.Fprintln(a.out, "Payment:", order.PaymentMethod)
}

// formatOrderDate renders "January 2, 2006" with the month spelled out.
func formatOrderDate(o models.Order) string {
	if o.Date.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%s %d, %d", common.MonthName(int(o.Date.Month())), o.Date.Day(), o.Date.Year())
}
