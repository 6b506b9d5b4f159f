package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/buildmaintain/bm/internal/notify"
	"github.com/buildmaintain/bm/internal/store"
)

// storeSink persists notifications so past action outcomes can be reviewed
// across invocations.
type storeSink struct {
	db store.Store
}

func (s *storeSink) Notify(n notify.Notification) {
	_ = s.db.AddNotification(context.Background(), store.NotificationRecord{
		Level:    string(n.Level),
		Category: n.Category,
		Message:  n.Message,
		Time:     n.Time,
	})
}

var notificationsLimit int

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Show recent action outcomes",
	Run: func(cmd *cobra.Command, args []string) {
		records, err := db.RecentNotifications(cmd.Context(), notificationsLimit)
		if err != nil {
			exitErr("%v", err)
		}
		if len(records) == 0 {
			fmt.Println("No notifications yet")
			return
		}
		for _, rec := range records {
			fmt.Printf("%s  %-7s [%s] %s\n",
				rec.Time.Format("2006-01-02 15:04"), rec.Level, rec.Category, rec.Message)
		}
	},
}

func init() {
	notificationsCmd.Flags().IntVarP(&notificationsLimit, "limit", "n", 20, "number of entries")
	rootCmd.AddCommand(notificationsCmd)
}
