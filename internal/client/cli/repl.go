package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/sitekeeper/internal/common"
)

// printFn and printlnFn are swapped in tests.
var (
	printFn   = fmt.Print
	printlnFn = fmt.Println
)

// errUnknownCommand is returned by exec for names not in the command table.
var errUnknownCommand = errors.New("unknown command")

type execIface interface {
	exec(ctx context.Context, name string, args []string) error
	help() string
}

// runREPL reads commands from scanner until exit, end of input or ctx is
// done. Errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		if ctx.Err() != nil {
			return
		}

		printFn(statusFn() + "> ")
		if !scanner.Scan() {
			printlnFn()
			return
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		name, args := strings.ToLower(fields[0]), fields[1:]

		switch name {
		case "help":
			printlnFn(a.help())
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		err := a.exec(ctx, name, args)
		switch {
		case err == nil:
		case errors.Is(err, errUnknownCommand):
			printlnFn("Unknown command:", name)
		default:
			printlnFn("Error:", describeError(err))
		}
	}
}

// describeError turns an error into the message shown at the prompt.
func describeError(err error) string {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Invalid admin credentials or account is not a Super Admin."
	case errors.Is(err, common.ErrIncompleteCode):
		return "Please enter complete 6-digit code."
	case errors.Is(err, common.ErrInvalidDigit):
		return "Each code slot takes a single digit 0-9."
	case errors.Is(err, common.ErrLocationUnavailable):
		return "GPS Verification Failed: Site access requires active location services."
	case errors.Is(err, common.ErrReconfigureCredentials):
		return "API entity not found. Your key may need reconfiguration."
	case errors.Is(err, common.ErrForbidden):
		return "Not permitted for your role."
	case errors.Is(err, common.ErrInvalidTransition):
		return "Not available right now: " + err.Error()
	case errors.Is(err, common.ErrExternalService):
		return "Request failed: " + err.Error()
	default:
		return err.Error()
	}
}
