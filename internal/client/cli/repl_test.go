package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool

	calls       []string
	findTerm    string
	selloutTerm string
	term        string
	category    string
	priceMin    string
	priceMax    string
	sortKey     string
}

func (s *stubExec) isLoggedIn() bool { return s.loggedIn }

func (s *stubExec) Login(context.Context) error    { s.calls = append(s.calls, "login"); return nil }
func (s *stubExec) Register(context.Context) error { s.calls = append(s.calls, "register"); return nil }
func (s *stubExec) Logout(context.Context) error   { s.calls = append(s.calls, "logout"); return nil }
func (s *stubExec) Whoami(context.Context) error   { s.calls = append(s.calls, "whoami"); return nil }
func (s *stubExec) List(context.Context) error     { s.calls = append(s.calls, "list"); return nil }
func (s *stubExec) Restock(context.Context) error  { s.calls = append(s.calls, "restock"); return nil }
func (s *stubExec) Add(context.Context) error      { s.calls = append(s.calls, "add"); return nil }
func (s *stubExec) Update(context.Context) error   { s.calls = append(s.calls, "update"); return nil }
func (s *stubExec) Sell(context.Context) error     { s.calls = append(s.calls, "sell"); return nil }

func (s *stubExec) Sellouts(_ context.Context, term string) error {
	s.calls = append(s.calls, "sellouts")
	s.selloutTerm = term
	return nil
}

func (s *stubExec) Categories(context.Context) error {
	s.calls = append(s.calls, "categories")
	return nil
}

func (s *stubExec) Find(_ context.Context, term string) error {
	s.calls = append(s.calls, "find")
	s.findTerm = term
	return nil
}

func (s *stubExec) SetTerm(term string)         { s.calls = append(s.calls, "term"); s.term = term }
func (s *stubExec) SetCategory(category string) { s.calls = append(s.calls, "category"); s.category = category }

func (s *stubExec) SetPrice(minArg, maxArg string) error {
	s.calls = append(s.calls, "price")
	s.priceMin, s.priceMax = minArg, maxArg
	return nil
}

func (s *stubExec) SetSort(key string) error {
	s.calls = append(s.calls, "sort")
	s.sortKey = key
	return nil
}

func (s *stubExec) ClearParams() { s.calls = append(s.calls, "clear") }

func runScript(t *testing.T, a execIface, script string) []string {
	t.Helper()

	var output []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		for _, arg := range args {
			if s, ok := arg.(string); ok {
				output = append(output, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })

	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), a, func() string { return "" }, scanner)
	return output
}

func TestREPL_DispatchesCommands(t *testing.T) {
	s := &stubExec{loggedIn: true}

	runScript(t, s, strings.Join([]string{
		"list",
		"l",
		"find pixel 8",
		"term budget phone",
		"category Gaming",
		"categories",
		"price 1000 50000",
		"sort price-asc",
		"clear",
		"add",
		"update",
		"sell",
		"sellouts pixel",
		"restock",
		"whoami",
		"logout",
		"exit",
	}, "\n"))

	assert.Equal(t, []string{
		"list", "list", "find", "term", "category", "categories", "price", "sort",
		"clear", "add", "update", "sell", "sellouts", "restock", "whoami", "logout",
	}, s.calls)
	assert.Equal(t, "pixel 8", s.findTerm)
	assert.Equal(t, "pixel", s.selloutTerm)
	assert.Equal(t, "budget phone", s.term)
	assert.Equal(t, "Gaming", s.category)
	assert.Equal(t, "1000", s.priceMin)
	assert.Equal(t, "50000", s.priceMax)
	assert.Equal(t, "price-asc", s.sortKey)
}

func TestREPL_PriceWithoutMaxPassesEmpty(t *testing.T) {
	s := &stubExec{loggedIn: true}
	runScript(t, s, "price 500\nexit")

	assert.Equal(t, "500", s.priceMin)
	assert.Empty(t, s.priceMax)
}

func TestREPL_UsageMessagesForMissingArgs(t *testing.T) {
	s := &stubExec{loggedIn: true}
	out := runScript(t, s, "find\ncategory\nprice\nsort\nexit")

	assert.Empty(t, s.calls, "commands with missing args must not dispatch")

	joined := strings.Join(out, "\n")
	assert.Contains(t, joined, "Usage: find")
	assert.Contains(t, joined, "Usage: category")
	assert.Contains(t, joined, "Usage: price")
	assert.Contains(t, joined, "Usage: sort")
}

func TestREPL_HelpDependsOnLoginState(t *testing.T) {
	out := runScript(t, &stubExec{loggedIn: false}, "help\nexit")
	assert.Contains(t, strings.Join(out, "\n"), "register, login")

	out = runScript(t, &stubExec{loggedIn: true}, "help\nexit")
	assert.Contains(t, strings.Join(out, "\n"), "restock")
}

func TestREPL_UnknownCommandReported(t *testing.T) {
	out := runScript(t, &stubExec{}, "frobnicate\nexit")
	assert.Contains(t, strings.Join(out, "\n"), "Unknown command:")
}

func TestREPL_EmptyLinesAreSkipped(t *testing.T) {
	s := &stubExec{}
	runScript(t, s, "\n\n   \nexit")
	assert.Empty(t, s.calls)
}

func TestREPL_ExitsOnEOF(t *testing.T) {
	s := &stubExec{}
	runScript(t, s, "list")
	assert.Equal(t, []string{"list"}, s.calls)
}
