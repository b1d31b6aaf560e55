package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/bookvite/storefront/internal/client/models"
)

// Catalog lists products, optionally narrowed by category and search
// terms: `catalog`, `catalog fiction`, `catalog fiction moby dick`.
// Public page, no gate.
func (a *App) Catalog(ctx context.Context, args []string) {
	filter := models.ProductFilter{}
	if len(args) > 0 {
		filter.Category = args[0]
	}
	if len(args) > 1 {
		filter.Search = strings.Join(args[1:], " ")
	}

	if err := a.catalog.Fetch(ctx, filter); err != nil {
		fmt.Fprintln(a.out, "Could not load products:", err.Error())
		return
	}

	items := a.catalog.Items()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No products found.")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE")
	for _, p := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t$%.2f\n", p.ID, p.Name, p.Category, p.Price)
	}
	w.Flush()
}

// Categories lists the category tree. Public page.
func (a *App) Categories(ctx context.Context) {
	if err := a.categories.Fetch(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not load categories:", err.Error())
		return
	}
	for _, c := range a.categories.Items() {
		fmt.Fprintf(a.out, "%s\t%s - %s\n", c.ID, c.Name, c.Description)
	}
}

// Featured shows the best-selling and newly-added buckets. Public page.
func (a *App) Featured(ctx context.Context) {
	if err := a.catalog.FetchFeatured(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not load featured products:", err.Error())
		return
	}

	featured := a.catalog.Featured()
	fmt.Fprintln(a.out, "Best selling:")
	for _, p := range featured.BestSelling {
		fmt.Fprintf(a.out, "  %s\t%s\t$%.2f\n", p.ID, p.Name, p.Price)
	}
	fmt.Fprintln(a.out, "New arrivals:")
	for _, p := range featured.NewlyAdded {
		fmt.Fprintf(a.out, "  %s\t%s\t$%.2f\n", p.ID, p.Name, p.Price)
	}
}

// ShowProduct renders a product detail via fetch-one; the catalog list
// cache is left alone.
func (a *App) ShowProduct(ctx context.Context, id string) {
	product, err := a.catalog.Get(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load product:", err.Error())
		return
	}

	fmt.Fprintf(a.out, "%s ($%.2f)\n", product.Name, product.Price)
	fmt.Fprintln(a.out, "Category:", product.Category)
	if product.Description != "" {
		fmt.Fprintln(a.out, product.Description)
	}
	if product.ThumbnailURL != "" {
		fmt.Fprintln(a.out, "Thumbnail:", product.ThumbnailURL)
	}
}
