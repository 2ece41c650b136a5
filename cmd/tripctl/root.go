package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/NomadCrew/travel-timeline-backend/config"
	"github.com/NomadCrew/travel-timeline-backend/db"
	"github.com/NomadCrew/travel-timeline-backend/db/seed"
	"github.com/NomadCrew/travel-timeline-backend/models/trip"
	"github.com/NomadCrew/travel-timeline-backend/pkg/tripmetrics"
	"github.com/NomadCrew/travel-timeline-backend/types"
	"github.com/spf13/cobra"
)

const (
	outputText = "text"
	outputJSON = "json"
)

type rootOptions struct {
	seedFile string
	output   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "tripctl",
		Short:         "Travel timeline metrics and maintenance",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.output != outputText && opts.output != outputJSON {
				return fmt.Errorf("unknown output format %q (want %s or %s)", opts.output, outputText, outputJSON)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.seedFile, "seed", "", "seed YAML file (defaults to the built-in trips)")
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", outputText, "output format: text or json")

	rootCmd.AddCommand(
		newInsightsCmd(opts),
		newRouteCmd(opts),
		newStatsCmd(opts),
		newMigrateCmd(),
		newVerifyCmd(opts),
		newConfigCmd(opts),
	)
	return rootCmd
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newInsightsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Most expensive trip, warmest month and average daily spend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			trips, err := seed.Load(opts.seedFile)
			if err != nil {
				return err
			}

			insights := tripmetrics.Insights(trips)
			out := cmd.OutOrStdout()
			if opts.output == outputJSON {
				return writeJSON(out, insights)
			}

			mostExpensive := tripmetrics.NotAvailable
			if insights.MostExpensiveTrip != nil {
				mostExpensive = fmt.Sprintf("%s ($%.0f)", insights.MostExpensiveTrip.Destination, insights.MostExpensiveTrip.TotalCost)
			}
			fmt.Fprintf(out, "Most expensive trip: %s\n", mostExpensive)
			fmt.Fprintf(out, "Best weather month:  %s\n", insights.BestWeatherMonth)
			fmt.Fprintf(out, "Average daily spend: $%.2f\n", insights.AverageDailySpend)
			return nil
		},
	}
}

type routeLeg struct {
	From  string  `json:"from"`
	To    string  `json:"to"`
	Km    float64 `json:"km"`
	Label string  `json:"label"`
}

type routeReport struct {
	Legs    []routeLeg `json:"legs"`
	TotalKm float64    `json:"totalKm"`
	Label   string     `json:"label"`
}

func newRouteCmd(opts *rootOptions) *cobra.Command {
	var unit string

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Great-circle distance along the trips in timeline order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			distanceUnit := types.DistanceUnit(unit)
			if !distanceUnit.IsValid() {
				return fmt.Errorf("unknown unit %q (want %s or %s)", unit, types.UnitKm, types.UnitMi)
			}

			trips, err := seed.Load(opts.seedFile)
			if err != nil {
				return err
			}

			legs := tripmetrics.LegDistancesKm(trips)
			report := routeReport{Legs: make([]routeLeg, 0, len(trips))}
			for i := 1; i < len(trips); i++ {
				report.Legs = append(report.Legs, routeLeg{
					From:  trips[i-1].Destination,
					To:    trips[i].Destination,
					Km:    legs[i],
					Label: tripmetrics.DistanceLabel(legs[i], distanceUnit),
				})
			}
			report.TotalKm = tripmetrics.TotalRouteDistanceKm(trips)
			report.Label = tripmetrics.DistanceLabel(report.TotalKm, distanceUnit)

			out := cmd.OutOrStdout()
			if opts.output == outputJSON {
				return writeJSON(out, report)
			}

			for _, leg := range report.Legs {
				fmt.Fprintf(out, "%s -> %s: %s\n", leg.From, leg.To, leg.Label)
			}
			fmt.Fprintf(out, "Total: %s\n", report.Label)
			return nil
		},
	}

	cmd.Flags().StringVarP(&unit, "unit", "u", string(types.UnitKm), "distance unit: km or mi")
	return cmd
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Countries visited, km traveled, total trips and unique tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			trips, err := seed.Load(opts.seedFile)
			if err != nil {
				return err
			}

			stats := trip.ComputeStats(trips)
			out := cmd.OutOrStdout()
			if opts.output == outputJSON {
				return writeJSON(out, stats)
			}

			rows := [][2]string{
				{"Countries visited", fmt.Sprint(stats.CountriesVisited)},
				{"Km traveled", fmt.Sprint(stats.KmTraveled)},
				{"Total trips", fmt.Sprint(stats.TotalTrips)},
				{"Unique tags", fmt.Sprint(stats.UniqueTags)},
			}
			for _, row := range rows {
				fmt.Fprintf(out, "%-18s %s\n", row[0]+":", row[1])
			}
			return nil
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Long: strings.TrimSpace(`
Apply the embedded schema migrations to the database configured through the
DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME and DB_SSL_MODE variables.`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if err := db.RunMigrations(cfg.Database.URL()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
			return nil
		},
	}
}
