package cmd

import (
	"context"
	"fmt"

	"github.com/bingetonic/bingetonic/config"
	"github.com/bingetonic/bingetonic/pkg/kv"
	"github.com/bingetonic/bingetonic/pkg/logger"
	"github.com/bingetonic/bingetonic/pkg/watchlist"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var showsFilter string

// showsCmd prints the local watchlist
var showsCmd = &cobra.Command{
	Use:   "shows",
	Short: "list the shows on the local watchlist",
	Long:  `list the shows on the local watchlist`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		localKV, err := kv.NewFileStore(cfg.Local.FilePath)
		if err != nil {
			log.Fatal("failed to open local store", zap.Error(err))
		}

		filter, err := watchlist.ParseFilter(showsFilter)
		if err != nil {
			log.Fatal(err.Error())
		}

		local := watchlist.NewLocalStore(localKV)
		shows, err := local.List(context.Background())
		if err != nil {
			log.Fatal("failed to list shows", zap.Error(err))
		}

		counts := watchlist.CountShows(shows)
		shows = watchlist.Sort(watchlist.Filter(shows, filter), watchlist.LoadSortPreference(localKV))

		for _, show := range shows {
			line := fmt.Sprintf("%s (%s season): %d of %d episodes out", show.Title, humanize.Ordinal(int(show.SeasonNumber)), show.ReleasedEpisodes, show.TotalEpisodes)
			if show.Watched {
				line += " [watched]"
			}
			log.Info(line)
		}

		log.Info(fmt.Sprintf("%d tracked, %d complete, %d waiting", counts.All, counts.Complete, counts.Waiting))
	},
}

func init() {
	showsCmd.Flags().StringVarP(&showsFilter, "filter", "f", "", "filter shows (all, complete, waiting)")
	rootCmd.AddCommand(showsCmd)
}
