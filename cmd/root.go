package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bingetonic",
	Short: "bingetonic cli",
	Long:  `bingetonic cli`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file")
}

func initConfig() {
	viper.SetConfigFile(cfgFile)

	viper.SetEnvPrefix("BINGETONIC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("tmdb.scheme", "https")
	viper.SetDefault("tmdb.host", "api.themoviedb.org")
	viper.SetDefault("tmdb.apiKey", "")
	viper.SetDefault("tmdb.backoff", time.Second)
	viper.SetDefault("tmdb.maxRetries", 3)

	viper.SetDefault("server.port", 8080)

	viper.SetDefault("storage.filePath", "bingetonic.sqlite")
	viper.SetDefault("local.filePath", "watchlist.json")

	viper.SetDefault("auth.jwtSecret", "")
	viper.SetDefault("auth.tokenTTL", 24*time.Hour)

	viper.SetDefault("refresh.interval", time.Hour)
	viper.SetDefault("refresh.staleAge", 24*time.Hour)
	viper.SetDefault("refresh.batchSize", 20)
}
