package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	List(ctx context.Context) error
	Find(ctx context.Context, term string) error
	Restock(ctx context.Context) error
	Add(ctx context.Context) error
	Update(ctx context.Context) error
	Sell(ctx context.Context) error
	Sellouts(ctx context.Context, term string) error
	Categories(ctx context.Context) error
	SetTerm(term string)
	SetCategory(category string)
	SetPrice(minArg, maxArg string) error
	SetSort(key string) error
	ClearParams()
}

// runREPL starts a simple read–eval–print loop for the phonestock CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help                 — show available commands
//	  - (l)ist               — browse the catalog with current filters
//	  - find <term>          — search incl. use-case tags
//	  - term [text]          — set/clear the search term
//	  - category <name|all>  — set the category filter
//	  - categories           — list the category choices
//	  - price <min> [max]    — set the inclusive price range
//	  - sort <key>           — name | price-asc | price-desc | quantity-desc
//	  - clear                — reset all filters
//	  - add                  — create a new listing
//	  - update               — change a listing's stock level
//	  - sell                 — mark units of a listing as sold
//	  - sellouts [term]      — show the sold-items history
//	  - restock              — show items running low
//	  - whoami               — show the current user
//	  - logout               — log out
//	  - exit | quit          — leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ps> %s > ", statusFn()))
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
				printlnFn("Available commands: (l)ist, find, term, category, categories, price, sort, clear, add, update, sell, sellouts, restock, whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "find":
			if len(args) == 0 {
				printlnFn("Usage: find <term>")
				continue
			}
			_ = a.Find(ctx, strings.Join(args, " "))

		case "term":
			a.SetTerm(strings.Join(args, " "))

		case "category":
			if len(args) == 0 {
				printlnFn("Usage: category <name|all>")
				continue
			}
			a.SetCategory(strings.Join(args, " "))

		case "categories":
			_ = a.Categories(ctx)

		case "price":
			if len(args) == 0 {
				printlnFn("Usage: price <min> [max]")
				continue
			}
			maxArg := ""
			if len(args) > 1 {
				maxArg = args[1]
			}
			if err := a.SetPrice(args[0], maxArg); err != nil {
				printlnFn(err.Error())
			}

		case "sort":
			if len(args) == 0 {
				printlnFn("Usage: sort <name|price-asc|price-desc|quantity-desc>")
				continue
			}
			if err := a.SetSort(args[0]); err != nil {
				printlnFn(err.Error())
			}

		case "clear":
			a.ClearParams()

		case "add":
			_ = a.Add(ctx)

		case "update":
			_ = a.Update(ctx)

		case "sell":
			_ = a.Sell(ctx)

		case "sellouts":
			_ = a.Sellouts(ctx, strings.Join(args, " "))

		case "restock":
			_ = a.Restock(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
