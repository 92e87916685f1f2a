package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"camping-rental-admin/internal/jobs"
	"camping-rental-admin/internal/logger"
	"camping-rental-admin/internal/scheduler"
	"camping-rental-admin/internal/session"
)

// WatchCmd runs the tool in its long-lived mode: the cron scheduler keeps the
// profit calendar fresh while the session clock ticks, until interrupted.
func WatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the profit scheduler until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}

			operator, _ := cmd.Flags().GetString("operator")
			sess := session.New(operator)

			runner := jobs.NewJobRunner(app.ProfitsSvc, app.Config)
			sched := scheduler.NewScheduler(runner)

			// One immediate rebuild so we never sit on a stale calendar
			// waiting for the first cron fire.
			runner.RecalculateProfits()
			sched.Start()

			tick := time.Duration(app.Config.Session.TickSeconds) * time.Second
			sess.StartClock(tick, func(elapsed string) {
				logger.Debug("Session clock", "elapsed", elapsed, "operator", sess.Operator)
			})

			fmt.Printf("Watching rentals as %s (session %s). Press Ctrl+C to stop.\n", sess.Operator, sess.ID)

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
			<-quit

			sess.StopClock()
			sched.Stop()
			fmt.Printf("Session %s ended after %s.\n", sess.ID, sess.ElapsedString())
			return nil
		},
	}

	cmd.Flags().String("operator", "", "Operator name recorded on the session")

	return cmd
}
