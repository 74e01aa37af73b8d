package main

import (
	"fmt"
	"strconv"
	"time"

	"vacation-tracker-bot/internal/service"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func calendarCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "calendar YEAR MONTH",
		Short: "Календарь месяца с отметками дней",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q", args[0])
			}
			month, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid month %q", args[1])
			}

			calendar, err := a.tracker.Calendar(year, time.Month(month), a.today)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
			fmt.Fprintf(out, "%s\n\n", cyan(fmt.Sprintf("%s %d", service.MonthName(calendar.Month), calendar.Year)))
			fmt.Fprint(out, service.CalendarGrid(calendar))
			return nil
		},
	}
}
