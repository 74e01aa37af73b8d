package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"vacation-tracker-bot/internal/service"
	"vacation-tracker-bot/pkg/dateutil"

	"github.com/spf13/cobra"
)

func periodsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "periods",
		Short: "Список вахт и больничных",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, service.FormatWorkPeriods(a.tracker.WorkPeriods()))
			fmt.Fprintln(out)
			fmt.Fprintln(out, service.FormatSickPeriods(a.tracker.SickPeriods()))
			return nil
		},
	}
}

func workCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "work",
		Short: "Добавление и удаление вахт",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add START END [LOCATION]",
		Short: "Добавить вахту",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parseRange(args[0], args[1], a)
			if err != nil {
				return err
			}

			period, err := a.tracker.AddWorkPeriod(start, end, strings.Join(args[2:], " "))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ Work period %s - %s added (%d days)\n",
				dateutil.FormatDisplay(period.StartDate), dateutil.FormatDisplay(period.EndDate), period.Days())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rm N",
		Short: "Удалить вахту по номеру из списка",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parsePosition(args[0])
			if err != nil {
				return err
			}

			removed, err := a.tracker.DeleteWorkPeriod(index)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "🗑️ Work period %s - %s removed\n",
				dateutil.FormatDisplay(removed.StartDate), dateutil.FormatDisplay(removed.EndDate))
			return nil
		},
	})

	return cmd
}

func sickCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sick",
		Short: "Добавление и удаление больничных",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add START END",
		Short: "Добавить больничный",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parseRange(args[0], args[1], a)
			if err != nil {
				return err
			}

			period, err := a.tracker.AddSickPeriod(start, end)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ Sick period %s - %s added (%d days)\n",
				dateutil.FormatDisplay(period.StartDate), dateutil.FormatDisplay(period.EndDate), period.Days())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rm N",
		Short: "Удалить больничный по номеру из списка",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parsePosition(args[0])
			if err != nil {
				return err
			}

			removed, err := a.tracker.DeleteSickPeriod(index)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "🗑️ Sick period %s - %s removed\n",
				dateutil.FormatDisplay(removed.StartDate), dateutil.FormatDisplay(removed.EndDate))
			return nil
		},
	})

	return cmd
}

func clearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Удалить все вахты и больничные",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.tracker.ClearPeriods(); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "✅ All periods cleared")
			return nil
		},
	}
}

func parseRange(startArg, endArg string, a *app) (start, end time.Time, err error) {
	if start, err = dateutil.Parse(startArg, a.today); err != nil {
		return start, end, fmt.Errorf("start date: %w", err)
	}
	if end, err = dateutil.Parse(endArg, a.today); err != nil {
		return start, end, fmt.Errorf("end date: %w", err)
	}
	return start, end, nil
}

// parsePosition переводит номер из списка (с единицы) в позицию с нуля
func parsePosition(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid period number %q", arg)
	}
	return n - 1, nil
}
