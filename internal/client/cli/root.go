package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if u := a.session.User(); u != nil {
		return fmt.Sprintf("(%s)", u.Email)
	}
	return "(anonymous)"
}

// Root prints the welcome banner and runs the REPL until EOF or exit.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to phonestock CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
