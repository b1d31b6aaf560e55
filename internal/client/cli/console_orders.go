package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/bookvite/storefront/internal/client/models"
)

// consoleOrders manages every order in the system:
//
//	console orders                      - list all
//	console orders show <id>            - detail
//	console orders status <id> <status> - set status
func (a *App) consoleOrders(ctx context.Context, args []string) {
	if len(args) > 0 {
		switch args[0] {
		case "show":
			if len(args) < 2 {
				fmt.Fprintln(a.out, "Usage: console orders show <id>")
				return
			}
			a.renderOrderDetail(ctx, args[1])
			return
		case "status":
			if len(args) < 3 {
				fmt.Fprintf(a.out, "Usage: console orders status <id> <status> (e.g. %s)\n",
					strings.Join(models.SuggestedStatuses, ", "))
				return
			}
			if err := a.orders.SetStatus(ctx, args[1], args[2]); err != nil {
				fmt.Fprintln(a.out, "Could not update status:", err.Error())
				return
			}
		default:
			fmt.Fprintln(a.out, "Unknown orders command:", args[0])
			return
		}
	}

	if err := a.orders.FetchAll(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not load orders:", err.Error())
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER\tDATE\tSTATUS\tPAYMENT\tTOTAL")
	for _, o := range a.orders.Items() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t$%.2f\n", o.ID, formatOrderDate(o), o.Status, o.PaymentMethod, o.Total())
	}
	w.Flush()
}
