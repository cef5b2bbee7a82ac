package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"billing-automation/pkg/datemath"
)

type result struct {
	Date           string         `json:"date"`
	Delay          datemath.Delay `json:"delay"`
	AdjustedDate   string         `json:"adjustedDate"`
	CalculatedDate string         `json:"calculatedDate"`
	DayOfMonth     int            `json:"dayOfMonth"`
}

func newRootCmd() *cobra.Command {
	var (
		delay   string
		asJSON  bool
		fromNow bool
	)

	cmd := &cobra.Command{
		Use:   "billingdate [DATE...]",
		Short: "Compute the next billing date (15th or 27th)",
		Long: `Applies an optional delay such as "2 months 10 days" to each date and
prints the next billing anchor strictly after the result. Dates are
YYYY-MM-DD or RFC 3339.`,
		Example: `  billingdate 2024-01-31 --delay "1 month"
  billingdate --today --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fromNow {
				args = append(args, time.Now().UTC().Format(datemath.DateLayout))
			}
			if len(args) == 0 {
				return fmt.Errorf("at least one date is required (or --today)")
			}

			d := datemath.ParseDelay(delay)
			results := make([]result, 0, len(args))
			for _, arg := range args {
				start, err := datemath.ParseDate(arg)
				if err != nil {
					return err
				}
				next := datemath.NextBillingDate(start, d)
				results = append(results, result{
					Date:           start.Format(datemath.DateLayout),
					Delay:          d,
					AdjustedDate:   d.Apply(start).Format(datemath.DateLayout),
					CalculatedDate: next.Format(datemath.DateLayout),
					DayOfMonth:     next.Day(),
				})
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if len(results) == 1 {
					return enc.Encode(results[0])
				}
				return enc.Encode(results)
			}
			for _, r := range results {
				fmt.Fprintf(out, "%s + %s -> %s (day %d)\n", r.Date, r.Delay.Original, r.CalculatedDate, r.DayOfMonth)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&delay, "delay", "d", "", `Delay text, e.g. "1 month" or "10 days"`)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	cmd.Flags().BoolVar(&fromNow, "today", false, "Use today's UTC date")
	cmd.SilenceUsage = true

	cmd.AddCommand(newDelayCmd())
	return cmd
}

func newDelayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delay TEXT",
		Short: "Show how a delay text is interpreted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := datemath.ParseDelay(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "days=%d months=%d\n", d.Days, d.Months)
			return nil
		},
	}
}
