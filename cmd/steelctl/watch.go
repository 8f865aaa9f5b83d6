package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/metforge/steelctl/internal/domain"
	"github.com/metforge/steelctl/internal/notify"
	"github.com/metforge/steelctl/internal/session"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow notifications until interrupted",
	Long: `Runs the notification poller and the session monitor in the
foreground, printing incoming notifications. Stops on Ctrl-C or when the
session expires.`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}

	done := make(chan struct{})
	bus := application.Bus()

	err := bus.Subscribe(notify.TopicUnread, func(ns []domain.Notification) {
		for _, n := range ns {
			fmt.Printf("[%s] %s (sipariş %s)\n", n.CreatedAt, n.Message, n.OrderID)
		}
	})
	if err != nil {
		return err
	}
	err = bus.Subscribe(session.TopicExpired, func(s session.Session) {
		fmt.Println("Session expired, stopping.")
		close(done)
	})
	if err != nil {
		return err
	}

	application.StartBackgroundJobs()
	fmt.Println("Watching for notifications, Ctrl-C to stop.")

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	select {
	case <-interrupt:
	case <-done:
	}
	return nil
}
