package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/EV-ChargingService/internal/app"
	expireBookingsUC "github.com/m04kA/EV-ChargingService/internal/usecase/expire_bookings"
)

var (
	expireAt    string
	expireGrace int
)

var expireCmd = &cobra.Command{
	Use:   "expire",
	Short: "Mark scheduled bookings that were never started as no_show",
	RunE:  expire,
}

func init() {
	expireCmd.Flags().StringVar(&expireAt, "now", "", "reference time in RFC3339, defaults to current time")
	expireCmd.Flags().IntVar(&expireGrace, "grace", -1, "grace period in minutes, defaults to booking.grace_minutes")
	rootCmd.AddCommand(expireCmd)
}

func expire(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	req := &expireBookingsUC.Request{}
	if expireAt != "" {
		now, err := time.Parse(time.RFC3339, expireAt)
		if err != nil {
			return fmt.Errorf("invalid --now: %w", err)
		}
		req.Now = now
	}
	if expireGrace >= 0 {
		grace := expireGrace
		req.GraceMinutes = &grace
	}

	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer log.Close()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	runCtx, cancel := context.WithTimeout(ctx, cfg.Database.QueryTimeoutDuration())
	defer cancel()

	resp, err := a.ExpireBookings.Execute(runCtx, req)
	if err != nil {
		return fmt.Errorf("expire bookings: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "cutoff %s, expired %d bookings %v\n",
		resp.Cutoff.Format(time.RFC3339), len(resp.ExpiredIDs), resp.ExpiredIDs)
	return nil
}
