package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bingetonic/bingetonic/config"
	"github.com/bingetonic/bingetonic/pkg/logger"
	"github.com/bingetonic/bingetonic/pkg/search"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// searchCmd searches the catalog for tv shows. With a query argument it
// fires once; without one it reads queries from stdin through the
// debouncer, so rapid input only hits the catalog for the last query.
var searchCmd = &cobra.Command{
	Use:        "search [query]",
	Short:      "search the catalog for a tv show",
	Long:       `search the catalog for a tv show`,
	Args:       cobra.MaximumNArgs(1),
	ArgAliases: []string{"query"},
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

		if len(args) == 1 {
			res, err := m.SearchShows(ctx, args[0])
			if err != nil {
				log.Fatal("failed to search", zap.Error(err))
			}
			printResults(log, res)
			return
		}

		d := search.New(m.Catalog())
		defer d.Close()

		go func() {
			for res := range d.Results() {
				if res.Err != nil {
					log.Error("search failed", zap.Error(res.Err))
					continue
				}
				if res.Response == nil {
					continue
				}
				printResults(log, res.Response)
				fmt.Print("> ")
			}
		}()

		fmt.Print("> ")
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			d.Query(ctx, scanner.Text())
		}
	},
}

func printResults(log *zap.SugaredLogger, res any) {
	b, err := json.Marshal(res)
	if err != nil {
		log.Fatal("failed to marshal search results", zap.Error(err))
	}
	log.Info(string(b))
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
