package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/bookvite/storefront/internal/client/models"
	"github.com/bookvite/storefront/internal/common"
)

// readThumbnail is a test seam for loading the thumbnail file from disk.
var readThumbnail = os.ReadFile

// consoleProducts manages the catalog: list, add, edit. Creating or
// editing may attach a thumbnail file, which is uploaded to object storage
// before the record is submitted; an upload failure aborts the submit.
func (a *App) consoleProducts(ctx context.Context, args []string) {
	if len(args) > 0 {
		switch args[0] {
		case "add":
			a.addProduct(ctx)
		case "edit":
			if len(args) < 2 {
				fmt.Fprintln(a.out, "Usage: console products edit <id>")
				return
			}
			a.editProduct(ctx, args[1])
		default:
			fmt.Fprintln(a.out, "Unknown products command:", args[0])
			return
		}
		return
	}

	if err := a.catalog.Fetch(ctx, models.ProductFilter{}); err != nil {
		fmt.Fprintln(a.out, "Could not load products:", err.Error())
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tTHUMBNAIL")
	for _, p := range a.catalog.Items() {
		thumb := ""
		if p.ThumbnailURL != "" {
			thumb = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t$%.2f\t%s\n", p.ID, p.Name, p.Category, p.Price, thumb)
	}
	w.Flush()
}

// productForm collects the product fields; existing values act as defaults
// on edit. The returned thumbnail is nil when no file was chosen.
func (a *App) productForm(existing models.Product) (models.ProductInput, *models.Thumbnail, error) {
	input := models.ProductInput{ThumbnailURL: existing.ThumbnailURL}

	name, err := getSimpleText(a.reader, promptWithDefault("Name", existing.Name), a.out)
	if err != nil {
		return input, nil, err
	}
	if name == "" {
		name = existing.Name
	}
	input.Name = name

	description, err := getSimpleText(a.reader, promptWithDefault("Description", existing.Description), a.out)
	if err != nil {
		return input, nil, err
	}
	if description == "" {
		description = existing.Description
	}
	input.Description = description

	category, err := getSimpleText(a.reader, promptWithDefault("Category", existing.Category), a.out)
	if err != nil {
		return input, nil, err
	}
	if category == "" {
		category = existing.Category
	}
	input.Category = category

	price, err := GetNumber(a.reader, promptWithDefault("Price", fmt.Sprintf("%.2f", existing.Price)), existing.Price, a.out)
	if err != nil {
		return input, nil, err
	}
	input.Price = price

	path, err := getSimpleText(a.reader, "Thumbnail file (empty to keep current)", a.out)
	if err != nil {
		return input, nil, err
	}
	if path == "" {
		return input, nil, nil
	}

	data, err := readThumbnail(path)
	if err != nil {
		return input, nil, fmt.Errorf("reading thumbnail: %w", err)
	}
	return input, &models.Thumbnail{Name: filepath.Base(path), Data: data}, nil
}

func (a *App) addProduct(ctx context.Context) {
	input, thumbnail, err := a.productForm(models.Product{})
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	if err := a.catalog.Add(ctx, input, thumbnail); err != nil {
		if errors.Is(err, common.ErrUploadFailed) {
			fmt.Fprintln(a.out, "Thumbnail upload failed, product was not created:", err.Error())
			return
		}
		fmt.Fprintln(a.out, "Could not add product:", err.Error())
		return
	}
	fmt.Fprintln(a.out, "Product added.")
}

func (a *App) editProduct(ctx context.Context, id string) {
	existing, err := a.catalog.Get(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load product:", err.Error())
		return
	}

	input, thumbnail, err := a.productForm(*existing)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	if err := a.catalog.Update(ctx, id, input, thumbnail); err != nil {
		if errors.Is(err, common.ErrUploadFailed) {
			fmt.Fprintln(a.out, "Thumbnail upload failed, product was not updated:", err.Error())
			return
		}
		fmt.Fprintln(a.out, "Could not update product:", err.Error())
		return
	}
	fmt.Fprintln(a.out, "Product updated.")
}

func promptWithDefault(prompt, current string) string {
	if current == "" || current == "0.00" {
		return prompt
	}
	return fmt.Sprintf("%s [%s]", prompt, current)
}
