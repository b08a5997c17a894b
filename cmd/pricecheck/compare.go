package main

import (
	"encoding/json"
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/pricelens/backend/internal/app"
	"github.com/pricelens/backend/internal/domain"
)

var compareFailOnError bool

var compareCmd = &cobra.Command{
	Use:   "compare <product-url>",
	Short: "Print the price comparison for a product URL as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service := app.NewComparisonService(cfg)
		result := service.Compare(cmd.Context(), args[0])

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(result); err != nil {
			return eris.Wrap(err, "encode result")
		}

		if compareFailOnError && result.ErrorKind != domain.ErrorKindNone {
			return fmt.Errorf("%s error: %s", result.ErrorKind, result.Error)
		}
		return nil
	},
}

func init() {
	compareCmd.Flags().BoolVar(&compareFailOnError, "fail-on-error", false, "exit non-zero when the result carries an error")
	rootCmd.AddCommand(compareCmd)
}
