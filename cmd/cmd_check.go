package cmd

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"propmap-server/config"
	"propmap-server/di"
	services "propmap-server/service"
	"propmap-server/util"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Fetch the inventory and report what the widget would display",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		container := di.NewContainer(config.GetEnvName())

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(config.GetFetchTimeoutSeconds())*time.Second)
		defer cancel()

		response, err := container.PropertiesAPI.GetProperties(ctx)
		if err != nil {
			return fmt.Errorf("fetching properties: %w", err)
		}
		util.PrintPropertiesResponsePartially(response)

		eligible := services.FilterEligible(response.Properties)
		log.Infof("[CLI] %d of %d listings are displayable", len(eligible), len(response.Properties))
		for _, listing := range eligible {
			fmt.Printf("Displayable: %s\n", listing.ToString())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
