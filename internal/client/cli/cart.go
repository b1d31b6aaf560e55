package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/bookvite/storefront/internal/client/models"
)

// Cart is the shopping cart page, gated to customers:
//
//	cart                  - list lines and the grand total
//	cart add <productID> [qty]
//	cart + <lineID>       - increase quantity
//	cart - <lineID>       - decrease quantity (quantity 1 removes the line)
//	cart rm <lineID>
func (a *App) Cart(ctx context.Context, args []string) {
	if !a.guard(models.RoleCustomer) {
		return
	}

	if len(args) == 0 {
		a.renderCart(ctx)
		return
	}

	var err error
	switch args[0] {
	case "add":
		if len(args) < 2 {
			fmt.Fprintln(a.out, "Usage: cart add <productID> [qty]")
			return
		}
		qty := 1
		if len(args) > 2 {
			if qty, err = strconv.Atoi(args[2]); err != nil {
				fmt.Fprintln(a.out, "Quantity must be a number")
				return
			}
		}
		err = a.cart.Add(ctx, args[1], qty)
	case "+":
		if len(args) < 2 {
			fmt.Fprintln(a.out, "Usage: cart + <lineID>")
			return
		}
		err = a.cart.Increment(ctx, args[1])
	case "-":
		if len(args) < 2 {
			fmt.Fprintln(a.out, "Usage: cart - <lineID>")
			return
		}
		err = a.cart.Decrement(ctx, args[1])
	case "rm":
		if len(args) < 2 {
			fmt.Fprintln(a.out, "Usage: cart rm <lineID>")
			return
		}
		err = a.cart.Remove(ctx, args[1])
	default:
		fmt.Fprintln(a.out, "Unknown cart command:", args[0])
		return
	}

	if err != nil {
		fmt.Fprintln(a.out, "Cart update failed:", err.Error())
		return
	}
	a.renderCart(ctx)
}

func (a *App) renderCart(ctx context.Context) {
	if err := a.cart.Fetch(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not load cart:", err.Error())
		return
	}

	items := a.cart.Items()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "Your cart is empty.")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LINE\tPRODUCT\tPRICE\tQTY\tTOTAL")
	for _, line := range items {
		fmt.Fprintf(w, "%s\t%s\t$%.2f\t%d\t$%.2f\n",
			line.ID, line.Name, line.Price, line.Quantity, line.Price*float64(line.Quantity))
	}
	w.Flush()
	fmt.Fprintf(a.out, "Total: $%.2f\n", a.cart.Total())
}
