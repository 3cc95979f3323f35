package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/tailora/outfit-agent/internal/httpapi"
	"github.com/tailora/outfit-agent/internal/logger"
	"github.com/tailora/outfit-agent/internal/recommend"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve outfit recommendations over HTTP",
	Run: func(cmd *cobra.Command, _ []string) {
		serve(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", ":8080", "address to listen on")
	serveCmd.Flags().StringP("exclude-file", "e", "", "special file with items to exclude. Default is unset.")

	viper.BindPFlag("listen", serveCmd.Flags().Lookup("listen"))
	viper.BindPFlag("exclude-file", serveCmd.Flags().Lookup("exclude-file"))
}

func serve(_ *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the outfit-agent api", zap.String("version", version))

	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	catalog := loadCatalog(config, logger)
	voice := selectVoice(config, logger)

	stylist, err := prepareStylist(ctx, config.AI, logger)
	if err != nil {
		logger.Warn("skipping AI stylist", zap.Error(err))
	}

	rec := &recommend.Recommender{
		Catalog:     catalog,
		Voice:       voice,
		ExcludeFile: viper.GetString("exclude-file"),
		MaxOutfits:  config.MaxOutfits,
		Logger:      logger,
	}

	if !viper.GetBool("debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httpapi.NewRouter(logger, httpapi.NewHandlers(logger, rec, stylist))

	addr := viper.GetString("listen")
	logger.Info("listening", zap.String("addr", addr))

	if err := router.Run(addr); err != nil {
		logger.Fatal("serving", zap.Error(err))
	}
}
