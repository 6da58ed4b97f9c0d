package cmd

import (
	"context"

	"github.com/bingetonic/bingetonic/config"
	"github.com/bingetonic/bingetonic/pkg/logger"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// refreshCmd runs a single availability refresh pass
var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "refresh stale shows once and exit",
	Long:  `refresh stale shows once and exit`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		m, err := buildManager(cfg)
		if err != nil {
			log.Fatal("failed to build manager", zap.Error(err))
		}

		ctx := logger.WithCtx(context.Background(), log)
		m.RefreshPass(ctx)
	},
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}
