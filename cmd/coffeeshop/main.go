// Command coffeeshop runs an interactive coffee shop point-of-sale session
// in the terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"coffeeshop/config"
	"coffeeshop/console"
	"coffeeshop/logic"
	"coffeeshop/receipt"
	"coffeeshop/session"
)

const Domain = "coffeeshop"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	err = newApp(cfg, logger, os.Stdin, os.Stdout).Run(context.Background(), os.Args)
	logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(cfg config.Config, logger *zap.Logger, in io.Reader, out io.Writer) *cli.Command {
	runSession := func(ctx context.Context, cmd *cli.Command) error {
		s := session.New(cmd.String("shop-name"), logic.DefaultMenu(), logger)
		logger.Info("session started",
			zap.String("domain", Domain),
			zap.String("session_id", s.ID().String()))

		repl := console.NewREPL(s, console.NewPrompter(in, out), out, logger)
		if err := repl.Run(ctx); err != nil {
			return fmt.Errorf("session %s: %w", s.ID(), err)
		}
		logger.Info("session ended",
			zap.String("session_id", s.ID().String()),
			zap.Int64("points", s.Points()))
		return nil
	}

	return &cli.Command{
		Name:   Domain,
		Usage:  "coffee shop point of sale",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "shop-name",
				Usage: "name shown in the banner and on receipts",
				Value: cfg.ShopName,
			},
		},
		Action: runSession,
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "start an interactive session",
				Action: runSession,
			},
			{
				Name:  "menu",
				Usage: "print the menu",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					for _, line := range receipt.FormatMenu(logic.DefaultMenu().Items()) {
						fmt.Fprintln(out, line)
					}
					return nil
				},
			},
			{
				Name:      "quote",
				Usage:     "price items without running a session",
				ArgsUsage: "<item|number>...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "code",
						Usage: "discount code to apply",
					},
					&cli.BoolFlag{
						Name:  "redeem",
						Usage: "include one loyalty redemption",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					order, err := buildOrder(logic.DefaultMenu(), cmd.Args().Slice())
					if err != nil {
						return err
					}
					quote := logic.PriceCheckout(order.Lines(), cmd.String("code"), cmd.Bool("redeem"))
					logger.Debug("quote priced",
						zap.String("subtotal", quote.Subtotal.StringFixed(2)),
						zap.String("final_total", quote.FinalTotal.StringFixed(2)))

					for _, line := range receipt.FormatOrder(order.Lines(), order.Total()) {
						fmt.Fprintln(out, line)
					}
					for _, line := range receipt.FormatQuote(quote) {
						fmt.Fprintln(out, line)
					}
					return nil
				},
			},
		},
	}
}

// buildOrder adds one of each named or numbered menu item to a new order.
func buildOrder(catalog *logic.Catalog, args []string) (*logic.Order, error) {
	if len(args) == 0 {
		return nil, logic.NewInvalidArgument("name at least one menu item")
	}
	order := logic.NewOrder()
	for _, arg := range args {
		item, ok := catalog.Lookup(arg)
		if !ok {
			if n, err := strconv.Atoi(arg); err == nil {
				item, ok = catalog.At(n - 1)
			}
		}
		if err := logic.RequireOnMenu(ok, arg); err != nil {
			return nil, err
		}
		order.Add(item, 1)
	}
	return order, nil
}
