package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/bookvite/storefront/internal/client/models"
)

// Checkout is the order placement page, gated to customers: pick a
// shipping address and payment method, confirm, place. A successful
// placement leaves the cart re-fetched (the server empties it).
func (a *App) Checkout(ctx context.Context) {
	if !a.guard(models.RoleCustomer) {
		return
	}

	if err := a.cart.Fetch(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not load cart:", err.Error())
		return
	}
	if len(a.cart.Items()) == 0 {
		fmt.Fprintln(a.out, "Your cart is empty, nothing to check out.")
		return
	}

	if err := a.addresses.Fetch(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not load addresses:", err.Error())
		return
	}
	addresses := a.addresses.Items()
	if len(addresses) == 0 {
		fmt.Fprintln(a.out, "No shipping addresses on file; add one with 'addresses add' first.")
		return
	}

	fmt.Fprintln(a.out, "Shipping addresses:")
	for _, addr := range addresses {
		marker := " "
		if addr.IsDefault {
			marker = "*"
		}
		fmt.Fprintf(a.out, " %s %s\t%s, %s, %s, %s\n", marker, addr.ID, addr.Name, addr.Address, addr.City, addr.Country)
	}

	addressID, err := getSimpleText(a.reader, "Address ID", a.out)
	if err != nil {
		return
	}
	payment, err := getSimpleText(a.reader, "Payment method (e.g. COD, CARD)", a.out)
	if err != nil {
		return
	}

	fmt.Fprintf(a.out, "Order total: $%.2f\n", a.cart.Total())
	ok, err := GetYesNo(a.reader, "Place order?", a.out)
	if err != nil || !ok {
		fmt.Fprintln(a.out, "Order cancelled.")
		return
	}

	placement := models.OrderPlacement{
		ShippingAddressID: addressID,
		PaymentMethod:     payment,
		Date:              time.Now(),
	}
	if err := a.orders.Place(ctx, placement); err != nil {
		fmt.Fprintln(a.out, "Order placement failed:", err.Error())
		return
	}

	fmt.Fprintln(a.out, "Order placed! See 'orders' for its status.")
}
