package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/bookvite/storefront/internal/client/access"
	"github.com/bookvite/storefront/internal/client/models"
)

// Root runs the shell loop: read a line, dispatch the first token as a
// command, repeat until EOF or exit.
func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to the Bookvite storefront (type 'help' for commands)")
	scanner := bufio.NewScanner(a.reader)

	for {
		fmt.Fprintf(a.out, "shop %s> ", a.status())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help()

		case "signin":
			_ = a.SignIn(ctx)
		case "signup":
			_ = a.SignUp(ctx)
		case "signout":
			_ = a.SignOut(ctx)
		case "password":
			_ = a.ChangePassword(ctx)

		case "catalog":
			a.Catalog(ctx, args)
		case "categories":
			a.Categories(ctx)
		case "featured":
			a.Featured(ctx)
		case "show":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: show <productID>")
				continue
			}
			a.ShowProduct(ctx, args[0])

		case "cart":
			a.Cart(ctx, args)
		case "checkout":
			a.Checkout(ctx)
		case "orders":
			a.Orders(ctx, args)
		case "addresses":
			a.Addresses(ctx, args)

		case "console":
			a.Console(ctx, args)

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) help() {
	fmt.Fprintln(a.out, "Browsing: catalog [category] [search...], categories, featured, show <id>")
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Shopping: cart, checkout, orders, addresses")
		fmt.Fprintln(a.out, "Account:  password, signout")
	} else {
		fmt.Fprintln(a.out, "Account:  signin, signup")
	}
	if access.Visible(a.session.Snapshot(), models.RoleAdmin, models.RoleStaff) {
		fmt.Fprintln(a.out, "Console:  console dashboard|categories|products|orders|staff")
	}
	fmt.Fprintln(a.out, "Other:    help, exit")
}
