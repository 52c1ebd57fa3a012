package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"coffeeshop/receipt"
	"coffeeshop/session"
)

const helpText = `Commands:
  menu                    show the menu
  order                   show the current order
  add <item|number> [qty] add an item, e.g. "add Latte 2" or "add 3"
  remove [line]           remove an order line by its number
  clear                   clear the whole order
  checkout                check out the current order
  points                  show loyalty points
  help                    show this help
  quit                    leave`

// REPL reads commands from the terminal and drives a session.
type REPL struct {
	session  *session.Session
	prompter *Prompter
	out      io.Writer
	logger   *zap.Logger
}

// NewREPL creates a REPL for s.
func NewREPL(s *session.Session, prompter *Prompter, out io.Writer, logger *zap.Logger) *REPL {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &REPL{session: s, prompter: prompter, out: out, logger: logger}
}

// Run processes commands until quit or end of input.
func (r *REPL) Run(ctx context.Context) error {
	fmt.Fprintf(r.out, "Welcome to %s\n\n", r.session.ShopName())
	r.printMenu()
	fmt.Fprintln(r.out)
	r.render()

	for {
		fmt.Fprint(r.out, "> ")
		line, err := r.prompter.ReadLine(ctx)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(r.out)
			return nil
		}
		if err != nil {
			return err
		}

		quit, err := r.Execute(ctx, line)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// Execute runs one command line. It reports whether the user asked to quit.
func (r *REPL) Execute(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	r.logger.Debug("command", zap.String("command", cmd), zap.Strings("args", args))

	switch cmd {
	case "help", "?":
		fmt.Fprintln(r.out, helpText)
	case "menu":
		r.printMenu()
	case "order":
		r.render()
	case "points":
		fmt.Fprintln(r.out, receipt.PointsBar(r.session.Points()))
	case "add":
		return false, r.add(ctx, args)
	case "remove", "rm":
		index := -1
		if len(args) > 0 {
			if n, err := strconv.Atoi(args[0]); err == nil {
				index = n - 1
			}
		}
		removed, err := r.session.RemoveItem(ctx, r.prompter, index)
		if err != nil {
			return false, err
		}
		if removed {
			r.render()
		}
	case "clear":
		cleared, err := r.session.ClearOrder(ctx, r.prompter)
		if err != nil {
			return false, err
		}
		if cleared {
			r.render()
		}
	case "checkout", "pay":
		result, err := r.session.Checkout(ctx, r.prompter)
		if err != nil {
			return false, err
		}
		if result.Completed() {
			fmt.Fprintln(r.out, result.Receipt)
			r.render()
		}
	case "quit", "exit", "q":
		fmt.Fprintln(r.out, "Goodbye!")
		return true, nil
	default:
		fmt.Fprintf(r.out, "Unknown command %q. Type \"help\" for commands.\n", cmd)
	}
	return false, nil
}

// add accepts a menu number or an item name, optionally followed by a
// quantity.
func (r *REPL) add(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return r.prompter.Notify(ctx, session.Notice{Level: session.LevelWarning, Title: "Add", Message: "Name a menu item or number."})
	}

	quantity := 1
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[len(args)-1]); err == nil {
			quantity = n
			args = args[:len(args)-1]
		}
	}

	name := strings.Join(args, " ")
	if n, err := strconv.Atoi(name); err == nil {
		if item, ok := r.session.Catalog().At(n - 1); ok {
			name = item.Name
		}
	}

	if err := r.session.AddItem(name, quantity); err != nil {
		return r.prompter.Notify(ctx, session.Notice{Level: session.LevelWarning, Title: "Add", Message: err.Error()})
	}
	r.render()
	return nil
}

func (r *REPL) printMenu() {
	fmt.Fprintln(r.out, "Menu:")
	for _, line := range receipt.FormatMenu(r.session.Catalog().Items()) {
		fmt.Fprintf(r.out, "  %s\n", line)
	}
}

// render shows the order panel, the points bar and the status line.
func (r *REPL) render() {
	fmt.Fprintln(r.out, "Your order:")
	for _, line := range receipt.FormatOrder(r.session.Lines(), r.session.Total()) {
		fmt.Fprintf(r.out, "  %s\n", line)
	}
	fmt.Fprintf(r.out, "Loyalty Points: %s\n", receipt.PointsBar(r.session.Points()))
	fmt.Fprintf(r.out, "%s\n", r.session.Status())
}
