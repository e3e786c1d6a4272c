package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Products(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Browse(ctx context.Context) error
	ShowCart(ctx context.Context) error
	Add(ctx context.Context, productID string, quantity int) error
	Update(ctx context.Context, productID string, quantity int) error
	Remove(ctx context.Context, productID string) error
}

// runREPL starts the QKart command loop. It reads a line from the scanner,
// parses the first token as the command, and dispatches to methods on 'a'.
// Unknown commands are reported back to the user. The loop exits on
// scanner EOF or when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("qkart (%s) > ", statusFn()))
		if !scanner.Scan() {
			return
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
			if a.isLoggedIn() {
				printlnFn("Available commands: products, search <text>, browse, cart, add <product-id> [qty], update <product-id> <qty>, remove <product-id>, logout, exit")
			} else {
				printlnFn("Available commands: products, search <text>, browse, register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "p", "products":
			_ = a.Products(ctx)

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "b", "browse":
			_ = a.Browse(ctx)

		case "cart":
			_ = a.ShowCart(ctx)

		case "add":
			if len(args) == 0 {
				printlnFn("Usage: add <product-id> [qty]")
				continue
			}
			qty := 1
			if len(args) > 1 {
				n, err := strconv.Atoi(args[1])
				if err != nil {
					printlnFn("Usage: add <product-id> [qty]")
					continue
				}
				qty = n
			}
			_ = a.Add(ctx, args[0], qty)

		case "update":
			if len(args) != 2 {
				printlnFn("Usage: update <product-id> <qty>")
				continue
			}
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				printlnFn("Usage: update <product-id> <qty>")
				continue
			}
			_ = a.Update(ctx, args[0], qty)

		case "remove":
			if len(args) != 1 {
				printlnFn("Usage: remove <product-id>")
				continue
			}
			_ = a.Remove(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
