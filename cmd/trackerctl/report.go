package main

import (
	"fmt"

	"vacation-tracker-bot/internal/service"
	"vacation-tracker-bot/pkg/dateutil"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func reportCmd(a *app) *cobra.Command {
	var showLocations bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Итоги с начала договора по сегодня",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := a.tracker.Report(a.today)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			s := report.Summary
			cyan := color.New(color.FgCyan, color.Bold).SprintFunc()

			fmt.Fprintf(out, "%s\n\n", cyan(fmt.Sprintf("=== %s - %s ===",
				dateutil.FormatDisplay(report.ContractStart), dateutil.FormatDisplay(report.Today))))
			fmt.Fprintf(out, "  Рабочих дней:     %d\n", s.WorkDays)
			fmt.Fprintf(out, "  Дней отдыха:      %d\n", s.VacationDays)
			fmt.Fprintf(out, "  Больничных дней:  %d\n", s.SickDays)
			fmt.Fprintf(out, "  Всего дней:       %d\n\n", s.Total())

			balanceColor := color.New(color.FgGreen, color.Bold)
			if !s.CompanyOwes() {
				balanceColor = color.New(color.FgRed, color.Bold)
			}
			fmt.Fprintf(out, "  Баланс:           %s (%s)\n",
				balanceColor.Sprint(s.Balance), service.FormatBalance(s.Balance))
			if report.InitialBalance != 0 {
				fmt.Fprintf(out, "  Начальный баланс: %d\n", report.InitialBalance)
			}

			if showLocations {
				fmt.Fprintf(out, "\n%s\n", service.FormatLocations(s))
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&showLocations, "locations", "l", false, "Show work days per location")

	return cmd
}
