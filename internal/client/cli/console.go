package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/bookvite/storefront/internal/client/models"
	"github.com/bookvite/storefront/internal/common"
)

// Console is the back-office entry point, gated to staff and admins:
//
//	console dashboard
//	console categories [add|edit <id>]
//	console products   [add|edit <id>]
//	console orders     [show <id>|status <id> <status>]
//	console staff      [add|edit <id>]      (admin only)
func (a *App) Console(ctx context.Context, args []string) {
	if !a.guard(models.RoleAdmin, models.RoleStaff) {
		return
	}

	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: console dashboard|categories|products|orders|staff")
		return
	}

	section := args[0]
	rest := args[1:]

	switch section {
	case "dashboard":
		a.consoleDashboard(ctx)
	case "categories":
		a.consoleCategories(ctx, rest)
	case "products":
		a.consoleProducts(ctx, rest)
	case "orders":
		a.consoleOrders(ctx, rest)
	case "staff":
		a.consoleStaff(ctx, rest)
	default:
		fmt.Fprintln(a.out, "Unknown console section:", section)
	}
}

// consoleDashboard renders the statistic aggregate as text tables, with
// month numbers spelled out.
func (a *App) consoleDashboard(ctx context.Context) {
	if err := a.dashboard.Fetch(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not load dashboard:", err.Error())
		return
	}

	stat, _, _ := a.dashboard.Snapshot()

	fmt.Fprintln(a.out, "Revenue (last months):")
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MONTH\tORDERS\tREVENUE")
	for _, p := range stat.Revenue {
		fmt.Fprintf(w, "%s\t%d\t$%.2f\n", common.MonthName(p.Month), p.Quantity, p.Revenue)
	}
	w.Flush()

	fmt.Fprintln(a.out, "Orders by status:")
	for _, o := range stat.Orders {
		fmt.Fprintf(a.out, "  %s\t%d\n", o.Status, o.Quantity)
	}

	fmt.Fprintln(a.out, "New users:")
	for _, u := range stat.Users {
		fmt.Fprintf(a.out, "  %s\t%d\n", common.MonthName(u.Month), u.Quantity)
	}
}

// consoleCategories manages the category list.
func (a *App) consoleCategories(ctx context.Context, args []string) {
	if len(args) > 0 {
		switch args[0] {
		case "add":
			input, err := a.categoryForm(models.Category{})
			if err != nil {
				return
			}
			if err := a.categories.Add(ctx, input); err != nil {
				fmt.Fprintln(a.out, "Could not add category:", err.Error())
				return
			}
		case "edit":
			if len(args) < 2 {
				fmt.Fprintln(a.out, "Usage: console categories edit <id>")
				return
			}
			var existing models.Category
			for _, c := range a.categories.Items() {
				if c.ID == args[1] {
					existing = c
					break
				}
			}
			input, err := a.categoryForm(existing)
			if err != nil {
				return
			}
			if err := a.categories.Update(ctx, args[1], input); err != nil {
				fmt.Fprintln(a.out, "Could not update category:", err.Error())
				return
			}
		default:
			fmt.Fprintln(a.out, "Unknown categories command:", args[0])
			return
		}
	}

	if err := a.categories.Fetch(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not load categories:", err.Error())
		return
	}
	for _, c := range a.categories.Items() {
		fmt.Fprintf(a.out, "%s\t%s - %s\n", c.ID, c.Name, c.Description)
	}
}

func (a *App) categoryForm(existing models.Category) (models.CategoryInput, error) {
	input := models.CategoryInput{}

	prompt := "Name"
	if existing.Name != "" {
		prompt = fmt.Sprintf("Name [%s]", existing.Name)
	}
	name, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return input, err
	}
	if name == "" {
		name = existing.Name
	}

	prompt = "Description"
	if existing.Description != "" {
		prompt = fmt.Sprintf("Description [%s]", existing.Description)
	}
	description, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return input, err
	}
	if description == "" {
		description = existing.Description
	}

	input.Name = name
	input.Description = description
	return input, nil
}
