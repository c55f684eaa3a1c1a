package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algokit/intervals"
	"github.com/katalvlaran/algokit/report"
)

// Built-in demonstration data, used whenever no scenario overrides it.
var (
	demoRecords  = []int{1, 3, 4, 2, 5, 2}
	demoMeetings = []intervals.Interval{
		{Start: 9, End: 11},
		{Start: 10, End: 12},
		{Start: 14, End: 16},
	}
	demoActivity = "abcabcbb"
	demoSource   = `{"retries": [1, 2, 3], "timeout": f(30)}`
)

// newDemoCmd assembles the `demo` command tree.
func newDemoCmd() *cobra.Command {
	var scenarioPath string

	demo := &cobra.Command{
		Use:   "demo",
		Short: "Run an algorithm report on demonstration data",
	}
	demo.PersistentFlags().StringVar(&scenarioPath, "scenario", "", "YAML file overriding the built-in demo data")

	demo.AddCommand(
		newDedupeCmd(&scenarioPath),
		newScheduleCmd(&scenarioPath),
		newSessionsCmd(&scenarioPath),
		newBracketsCmd(&scenarioPath),
	)

	return demo
}

func newDedupeCmd(scenarioPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "dedupe",
		Short: "Find the duplicated record ID and estimate storage savings",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			sc, err := loadScenario(*scenarioPath)
			if err != nil {
				return err
			}
			records := sc.Records
			if len(records) == 0 {
				records = demoRecords
			}
			logger.Debug("running dedupe report", "records", len(records))

			rep, err := report.Dedup(records)
			if err != nil {
				return err
			}

			fmt.Println(title("Data Deduplication"))
			fmt.Println(row("records", records))
			fmt.Println(row("duplicate ID", rep.DuplicateID))
			fmt.Println(row("occurrences", rep.Occurrences))
			fmt.Println(row("storage saved", fmt.Sprintf("%.0f KB (%.2f%%)", rep.StorageSavedKB, rep.SavingsPercent)))
			fmt.Println(row("monthly savings", fmt.Sprintf("$%.6f", rep.MonthlySavingsUSD)))
			fmt.Println(row("quality score", fmt.Sprintf("%.2f%%", rep.QualityScore)))

			return nil
		},
	}
}

func newScheduleCmd(scenarioPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Merge overlapping meetings and report utilization gains",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			sc, err := loadScenario(*scenarioPath)
			if err != nil {
				return err
			}
			meetings := sc.Intervals()
			if len(meetings) == 0 {
				meetings = demoMeetings
			}
			logger.Debug("running schedule report", "meetings", len(meetings))

			rep, err := report.Schedule(meetings)
			if err != nil {
				return err
			}

			fmt.Println(title("Meeting Schedule"))
			fmt.Println(row("requested", fmt.Sprintf("%d slots, %d hours", rep.Requested, rep.RequestedHours)))
			fmt.Println(row("booked", fmt.Sprintf("%d slots, %d hours", rep.Booked, rep.BookedHours)))
			fmt.Println(row("conflicts resolved", rep.ConflictsResolved))
			fmt.Println(row("utilization gain", fmt.Sprintf("%.2f%%", rep.UtilizationGain)))
			fmt.Println(row("free slots", rep.FreeSlots))

			return nil
		},
	}
}

func newSessionsCmd(scenarioPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "Measure the longest repeat-free run of an activity stream",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			sc, err := loadScenario(*scenarioPath)
			if err != nil {
				return err
			}
			activity := sc.Activity
			if activity == "" {
				activity = demoActivity
			}
			logger.Debug("running sessions report", "activities", len(activity))

			rep := report.Sessions(activity)

			fmt.Println(title("Session Analysis"))
			fmt.Println(row("activity stream", activity))
			fmt.Println(row("optimal session", rep.OptimalLength))
			fmt.Println(row("efficiency", fmt.Sprintf("%.2f%%", rep.Efficiency)))
			fmt.Println(row("distinct activities", rep.UniqueKinds))
			fmt.Println(row("diversity", fmt.Sprintf("%.3f", rep.Diversity)))

			return nil
		},
	}
}

func newBracketsCmd(scenarioPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "brackets",
		Short: "Validate bracket structure of a source fragment",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			sc, err := loadScenario(*scenarioPath)
			if err != nil {
				return err
			}
			src := sc.Source
			if src == "" {
				src = demoSource
			}
			logger.Debug("running brackets report", "bytes", len(src))

			rep := report.Brackets(src)

			fmt.Println(title("Bracket Health"))
			fmt.Println(row("source", src))
			fmt.Println(verdict("structure", rep.Valid, "valid", "invalid"))
			fmt.Println(row("round/square/curly", fmt.Sprintf("%d/%d/%d", rep.Round, rep.Square, rep.Curly)))
			fmt.Println(row("complexity", rep.Complexity))
			if !rep.Valid {
				fmt.Println(row("diagnosis", rep.Diagnosis))
			}

			return nil
		},
	}
}
