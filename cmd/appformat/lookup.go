package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/medsupp/appformat/internal/exitcode"
	"github.com/medsupp/appformat/internal/logging"
)

var naicCmd = &cobra.Command{
	Use:   "naic <company name>",
	Short: "Resolve an insurer name to its NAIC code",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNAIC,
}

var zipCmd = &cobra.Command{
	Use:   "zip <zip5>",
	Short: "Resolve a zip code to city and state",
	Args:  cobra.ExactArgs(1),
	RunE:  runZip,
}

var bankCmd = &cobra.Command{
	Use:   "bank <routing number>",
	Short: "Look up the bank name for a routing number",
	Args:  cobra.ExactArgs(1),
	RunE:  runBank,
}

func init() {
	rootCmd.AddCommand(naicCmd, zipCmd, bankCmd)
}

func runNAIC(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	name := strings.Join(args, " ")

	companies := openRefs(log).Tables().Companies
	if companies.Len() == 0 {
		log.Error().Str("path", cfg.NAICDirectory).Msg("NAIC directory is empty")
		os.Exit(exitcode.ReferenceError)
	}
	m, ok := companies.Match(name)
	if !ok {
		fmt.Printf("%s: no match\n", name)
		os.Exit(exitcode.NotFound)
	}
	kind := "fuzzy"
	if m.Exact {
		kind = "exact"
	}
	fmt.Printf("%s → %s (%s, score %.1f, %s)\n", name, m.Code, m.Name, m.Score, kind)
	return nil
}

func runZip(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	refs := openRefs(log)
	if len(refs.Tables().Zips) == 0 {
		log.Error().Str("path", cfg.ZipTable).Msg("zip table is empty")
		os.Exit(exitcode.ReferenceError)
	}
	place := refs.ResolveZip(args[0])
	if place.City == "" && place.State == "" {
		fmt.Printf("%s: not found\n", args[0])
		os.Exit(exitcode.NotFound)
	}
	fmt.Printf("%s → %s, %s\n", args[0], place.City, place.State)
	return nil
}

func runBank(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RoutingTimeout)
	defer cancel()

	bank, err := newRoutingClient().Lookup(ctx, args[0])
	if err != nil {
		log.Error().Err(err).Msg("bank lookup failed")
		os.Exit(exitcode.NotFound)
	}
	fmt.Printf("%s → %s\n", bank.RoutingNumber, bank.Name)
	return nil
}
