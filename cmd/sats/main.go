package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/brewgator/sats-units/internal/config"
	"github.com/brewgator/sats-units/internal/logconfig"
	"github.com/brewgator/sats-units/pkg/units"
	"github.com/brewgator/sats-units/pkg/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logconfig.Configure(cfg.Debug)

	if len(os.Args) < 2 {
		showHelp(os.Stdout)
		return
	}

	if err := run(os.Stdout, cfg, os.Args[1], os.Args[2:]); err != nil {
		log.WithField("command", os.Args[1]).Error(err)
		os.Exit(1)
	}
}

func showHelp(w io.Writer) {
	fmt.Fprintln(w, "sats - Bitcoin denomination converter")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  sats from-sats <sats>              Convert satoshis to BTC")
	fmt.Fprintln(w, "  sats from-sats-numeric <sats>      Convert satoshis to a numeric BTC value")
	fmt.Fprintln(w, "  sats to-sats <btc>                 Convert BTC to satoshis")
	fmt.Fprintln(w, "  sats format <value>                Add grouping separators to a number")
	fmt.Fprintln(w, "  sats convert <value> <from> <to>   Validated conversion between sats and btc")
	fmt.Fprintln(w, "  sats display <sats>                Human-readable amount")
	fmt.Fprintln(w, "  sats help                          Show this help message")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Environment: SATS_LOCALE (default en), SATS_DEBUG")
}

func run(w io.Writer, cfg *config.Config, command string, args []string) error {
	log.WithFields(log.Fields{"command": command, "args": args}).Debug("running command")

	switch command {
	case "from-sats":
		if err := requireArgs(command, args, 1); err != nil {
			return err
		}
		fmt.Fprintln(w, units.FromSats(args[0]))

	case "from-sats-numeric":
		if err := requireArgs(command, args, 1); err != nil {
			return err
		}
		coins, err := units.FromSatsNumeric(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(w, strconv.FormatFloat(coins, 'f', -1, 64))

	case "to-sats":
		if err := requireArgs(command, args, 1); err != nil {
			return err
		}
		fmt.Fprintln(w, units.ToSats(args[0]))

	case "format":
		if err := requireArgs(command, args, 1); err != nil {
			return err
		}
		fmt.Fprintln(w, units.NewFormatter(cfg.Locale).Format(args[0]))

	case "convert":
		if err := requireArgs(command, args, 3); err != nil {
			return err
		}
		from, err := units.ParseDenomination(args[1])
		if err != nil {
			return err
		}
		to, err := units.ParseDenomination(args[2])
		if err != nil {
			return err
		}
		result, err := units.Convert(args[0], from, to)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, result)

	case "display":
		if err := requireArgs(command, args, 1); err != nil {
			return err
		}
		amount, err := units.ParseSats(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(w, utils.FormatSats(amount))

	case "help", "-h", "--help":
		showHelp(w)

	default:
		showHelp(w)
		return fmt.Errorf("unknown command: %s", command)
	}

	return nil
}

func requireArgs(command string, args []string, n int) error {
	if len(args) < n {
		return fmt.Errorf("%s expects %d argument(s), got %d", command, n, len(args))
	}
	return nil
}
