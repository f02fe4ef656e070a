package cmd

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"propmap-server/config"
	"propmap-server/di"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the map widget HTTP server",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		log.Infof("[CLI] propmap %s starting", Version)
		container := di.NewContainer(config.GetEnvName())

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Warm the index before the first page load. A failure here only
		// delays nearby lookups until the next scheduled refresh.
		if err := container.IndexRefresherService.RefreshIndex(ctx); err != nil {
			log.Warnf("[CLI] Initial index refresh failed: %v", err)
		}
		container.IndexRefresherService.StartPeriodicJob(ctx, config.LISTINGS_INDEX_REFRESHER_SCHEDULE_MINUTES*time.Minute)

		return container.PropMapHttpServer.Start()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
