package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func ProfitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profits",
		Short: "Profit calendar and income reports",
	}

	cmd.AddCommand(
		profitsRecalcCmd(),
		profitsReportCmd(),
		profitsTodayCmd(),
		profitsTotalCmd(),
		profitsMembersCmd(),
		profitsMemberCmd(),
	)

	return cmd
}

func profitsRecalcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recalc",
		Short: "Rebuild the profit calendar from the open rentals",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}

			calendar, err := app.ProfitsSvc.Recalculate()
			if err != nil {
				return err
			}
			fmt.Printf("Profit calendar rebuilt: %d day(s) with income.\n", len(calendar))
			return nil
		},
	}
}

func profitsReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show the daily profit calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}

			// Rebuild first so the report reflects the current rentals.
			if _, err := app.ProfitsSvc.Recalculate(); err != nil {
				return err
			}

			fmt.Printf("%-12s  %s\n", "Date", "Income")
			for _, p := range app.ProfitsSvc.Calendar() {
				fmt.Printf("%-12s  %.2f SEK\n", p.Date, p.Income)
			}
			return nil
		},
	}
}

func profitsTodayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's income",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}

			if _, err := app.ProfitsSvc.Recalculate(); err != nil {
				return err
			}
			fmt.Printf("Income today: %.2f SEK\n", app.ProfitsSvc.IncomeToday())
			return nil
		},
	}
}

func profitsTotalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "total",
		Short: "Show total income across all open rentals",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}

			fmt.Printf("Total income: %.2f SEK\n", app.ProfitsSvc.TotalIncome())
			return nil
		},
	}
}

func profitsMembersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "members",
		Short: "Show revenue per member",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}

			for _, line := range app.ProfitsSvc.MemberRevenueReport() {
				fmt.Println(line)
			}
			return nil
		},
	}
}

func profitsMemberCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "member <member-id>",
		Short: "Show revenue for one member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid member ID %q", args[0])
			}

			member, err := app.MemberSvc.Find(id)
			if err != nil {
				return err
			}
			fmt.Printf("%s: %.2f SEK\n", member.FullName(), app.ProfitsSvc.MemberRevenue(id))
			return nil
		},
	}
}
