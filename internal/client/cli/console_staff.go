package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/bookvite/storefront/internal/client/models"
	"github.com/bookvite/storefront/internal/common"
)

// consoleStaff manages back-office accounts. Unlike the rest of the
// console it is admin-only, so it re-guards with the tighter role set.
func (a *App) consoleStaff(ctx context.Context, args []string) {
	if !a.guard(models.RoleAdmin) {
		return
	}

	if len(args) > 0 {
		switch args[0] {
		case "add":
			a.addStaff(ctx)
		case "edit":
			if len(args) < 2 {
				fmt.Fprintln(a.out, "Usage: console staff edit <id>")
				return
			}
			a.editStaff(ctx, args[1])
		default:
			fmt.Fprintln(a.out, "Unknown staff command:", args[0])
			return
		}
		return
	}

	if err := a.staff.Fetch(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not load staff:", err.Error())
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE\tADDRESS")
	for _, m := range a.staff.Items() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", m.ID, m.Name, m.Email, m.Phone, m.Address)
	}
	w.Flush()
}

func (a *App) staffForm(existing models.StaffMember) (models.StaffInput, error) {
	input := models.StaffInput{}

	fields := []struct {
		prompt  string
		current string
		dest    *string
	}{
		{"Name", existing.Name, &input.Name},
		{"Phone", existing.Phone, &input.Phone},
		{"Address", existing.Address, &input.Address},
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
	return input, nil
}

func (a *App) addStaff(ctx context.Context) {
	input, err := a.staffForm(models.StaffMember{})
	if err != nil {
		return
	}

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return
	}
	input.Email = email

	password, err := getPassword(a.out, "Initial password")
	if err != nil {
		return
	}
	defer common.WipeByteArray(password)
	input.Password = string(password)

	if err := a.staff.Add(ctx, input); err != nil {
		fmt.Fprintln(a.out, "Could not add staff member:", err.Error())
		return
	}
	fmt.Fprintln(a.out, "Staff member added.")
}

func (a *App) editStaff(ctx context.Context, id string) {
	var existing models.StaffMember
	for _, m := range a.staff.Items() {
		if m.ID == id {
			existing = m
			break
		}
	}

	input, err := a.staffForm(existing)
	if err != nil {
		return
	}

	if err := a.staff.Update(ctx, id, input); err != nil {
		fmt.Fprintln(a.out, "Could not update staff member:", err.Error())
		return
	}
	fmt.Fprintln(a.out, "Staff member updated.")
}
