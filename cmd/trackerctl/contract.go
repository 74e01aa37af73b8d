package main

import (
	"fmt"
	"strconv"

	"vacation-tracker-bot/internal/service"
	"vacation-tracker-bot/pkg/dateutil"

	"github.com/spf13/cobra"
)

func setupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "setup DATE [BALANCE]",
		Short: "Задать дату начала учета и начальный баланс",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := dateutil.Parse(args[0], a.today)
			if err != nil {
				return err
			}

			balance := 0
			if len(args) == 2 {
				if balance, err = strconv.Atoi(args[1]); err != nil {
					return fmt.Errorf("invalid balance %q", args[1])
				}
			}

			if err := a.tracker.SetupContract(start, balance); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), service.FormatContract(a.tracker.State()))
			return nil
		},
	}
}

func resetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Сбросить дату начала договора (периоды сохраняются)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.tracker.ResetContract(); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "✅ Contract reset")
			return nil
		},
	}
}
