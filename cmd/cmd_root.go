package cmd

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}

var rootCmd = &cobra.Command{
	Use:   "propmap",
	Short: "property listings map widget server",
	Long: `
propmap serves an interactive map of bookable property listings: it fetches
the inventory from the listings API, keeps only what is displayable and
exposes the widget page, its map model API and a Redis-backed
nearby-listings lookup.
`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		loadEnv()
	},
}

var Version = "dev"

func Execute(version string) {
	Version = version

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// loadEnv pulls overrides from a local .env file when one exists. Missing
// files are normal outside development.
func loadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Debugf("[CLI] No .env file loaded: %v", err)
	}
}
