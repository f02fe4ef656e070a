package cmd

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"propmap-server/config"
	"propmap-server/di"
	services "propmap-server/service"
	"propmap-server/util"
	"propmap-server/widget"
)

var previewOutFile string

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the current map model to a static HTML preview",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		container := di.NewContainer(config.GetEnvName())

		session := container.MapWidgetService.BuildSession(context.Background())
		switch session.State {
		case widget.SESSION_READY:
		case widget.SESSION_EMPTY:
			return services.ErrNoListings
		default:
			return session.Err()
		}

		if err := util.PlotMapModelToFile(session.Model, previewOutFile); err != nil {
			return fmt.Errorf("rendering preview: %w", err)
		}
		log.Infof("[CLI] Wrote preview of %d markers to %s", len(session.Markers()), previewOutFile)
		return nil
	},
}

func init() {
	previewCmd.Flags().StringVarP(&previewOutFile, "out", "o", "map_preview.html", "output HTML file")
	rootCmd.AddCommand(previewCmd)
}
