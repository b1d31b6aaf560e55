package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/bookvite/storefront/internal/client/models"
)

// Addresses is the address book page, gated to customers:
//
//	addresses               - list
//	addresses add           - interactive create form
//	addresses edit <id>     - interactive update form
//	addresses rm <id>
func (a *App) Addresses(ctx context.Context, args []string) {
	if !a.guard(models.RoleCustomer) {
		return
	}

	if len(args) > 0 {
		switch args[0] {
		case "add":
			a.addAddress(ctx)
			return
		case "edit":
			if len(args) < 2 {
				fmt.Fprintln(a.out, "Usage: addresses edit <id>")
				return
			}
			a.editAddress(ctx, args[1])
			return
		case "rm":
			if len(args) < 2 {
				fmt.Fprintln(a.out, "Usage: addresses rm <id>")
				return
			}
			if err := a.addresses.Remove(ctx, args[1]); err != nil {
				fmt.Fprintln(a.out, "Remove failed:", err.Error())
				return
			}
		default:
			fmt.Fprintln(a.out, "Unknown addresses command:", args[0])
			return
		}
	}

	if err := a.addresses.Fetch(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not load addresses:", err.Error())
		return
	}

	items := a.addresses.Items()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No addresses on file.")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPHONE\tADDRESS\tDEFAULT")
	for _, addr := range items {
		def := ""
		if addr.IsDefault {
			def = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s, %s, %s\t%s\n",
			addr.ID, addr.Name, addr.Phone, addr.Address, addr.City, addr.Country, def)
	}
	w.Flush()
}

// addressForm collects the address fields interactively. Existing values
// act as defaults on edit: an empty answer keeps them.
func (a *App) addressForm(existing models.Address) (models.AddressInput, error) {
	input := models.AddressInput{}

	fields := []struct {
		prompt  string
		current string
		dest    *string
	}{
		{"Full name", existing.Name, &input.Name},
		{"Phone", existing.Phone, &input.Phone},
		{"Street address", existing.Address, &input.Address},
		{"City", existing.City, &input.City},
		{"Country", existing.Country, &input.Country},
		{"State (optional)", existing.State, &input.State},
		{"ZIP (optional)", existing.Zip, &input.Zip},
	}

	for _, f := range fields {
		prompt := f.prompt
		if f.current != "" {
			prompt = fmt.Sprintf("%s [%s]", f.prompt, f.current)
		}
		value, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return input, err
		}
		if value == "" {
			value = f.current
		}
		*f.dest = value
	}

	isDefault, err := GetYesNo(a.reader, "Use as default address?", a.out)
	if err != nil {
		return input, err
	}
	input.IsDefault = isDefault
	return input, nil
}

func (a *App) addAddress(ctx context.Context) {
	input, err := a.addressForm(models.Address{})
	if err != nil {
		return
	}
	if err := a.addresses.Add(ctx, input); err != nil {
		fmt.Fprintln(a.out, "Could not add address:", err.Error())
		return
	}
	fmt.Fprintln(a.out, "Address added.")
}

func (a *App) editAddress(ctx context.Context, id string) {
	var existing models.Address
	for _, addr := range a.addresses.Items() {
		if addr.ID == id {
			existing = addr
			break
		}
	}

	input, err := a.addressForm(existing)
	if err != nil {
		return
	}
	if err := a.addresses.Update(ctx, id, input); err != nil {
		fmt.Fprintln(a.out, "Could not update address:", err.Error())
		return
	}
	fmt.Fprintln(a.out, "Address updated.")
}
