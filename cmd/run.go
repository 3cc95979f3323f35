package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/tailora/outfit-agent/internal/ai"
	"github.com/tailora/outfit-agent/internal/ai/gemini"
	"github.com/tailora/outfit-agent/internal/brandvoice"
	"github.com/tailora/outfit-agent/internal/demo"
	"github.com/tailora/outfit-agent/internal/logger"
	"github.com/tailora/outfit-agent/internal/recommend"
	"github.com/tailora/outfit-agent/internal/render"
	"github.com/tailora/outfit-agent/internal/secrets"
	"github.com/tailora/outfit-agent/internal/wardrobe"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptOwnRequest          = "Type your own request"
	PromptNewRequest          = "New request"
	PromptReportByCategory    = "Report items by category"
	PromptOutfitsToFile       = "Dump outfits to file"
	PromptAppendToExcludeFile = "Append shown items to exclude file"
	PromptExit                = "Exit"
)

var errExit = errors.New("exit requested")

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the outfit-agent interactive recommendation loop",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("text", "t", "", "run a single request non-interactively and exit")
	runCmd.Flags().StringP("exclude-file", "e", "", "special file with items to exclude. Default is unset.")

	viper.BindPFlag("exclude-file", runCmd.Flags().Lookup("exclude-file"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the outfit-agent", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	catalog := loadCatalog(config, logger)
	if catalog.Len() == 0 {
		logger.Info("catalog is empty", zap.String("hint", "every request will yield no recommendations"))
	}

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

	if text := cmd.Flag("text").Value.String(); text != "" {
		if _, err := recommendAndShow(ctx, rec, stylist, text, logger); err != nil {
			logger.Fatal("building recommendations", zap.Error(err))
		}
		return
	}

	for {
		text, err := promptForText()
		if err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}

		outfits, err := recommendAndShow(ctx, rec, stylist, text, logger)
		if err != nil {
			logger.Fatal("building recommendations", zap.Error(err))
		}

		if outfits.Len() == 0 {
			continue
		}

		if err := actionLoop(outfits, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

// promptForText offers the demo prompts and a free-text entry.
func promptForText() (string, error) {
	items := append(demo.Prompts(), PromptOwnRequest, PromptExit)

	prompt := promptui.Select{
		Label: "Describe your outfit needs",
		Items: items,
		Size:  len(items),
	}

	_, selected, err := prompt.Run()
	if err != nil {
		return "", err
	}

	switch selected {
	case PromptExit:
		return "", errExit
	case PromptOwnRequest:
		free := promptui.Prompt{Label: "Your request"}
		return free.Run()
	default:
		return selected, nil
	}
}

func recommendAndShow(ctx context.Context, rec *recommend.Recommender, stylist ai.Stylist, text string, zlog *zap.Logger) (*wardrobe.Outfits, error) {
	result, err := rec.Recommend(ctx, text)
	if err != nil {
		return nil, err
	}

	reqLogger := logger.WithPipelineFields(zlog, rec.Voice.Name, result.Request.Occasion)

	if result.Outfits.Len() == 0 {
		reqLogger.Info("no recommendations", zap.String("reason", "no items satisfy the request"))
		return result.Outfits, nil
	}

	reqLogger.Info("recommendations built", zap.Int("count", result.Outfits.Len()))

	for _, outfit := range result.Outfits.Items {
		view := render.Outfit(outfit, result.Request, rec.Voice)
		if stylist != nil {
			if note, err := stylist.Compose(ctx, rec.Voice, outfit, result.Request); err != nil {
				reqLogger.Warn("stylist note failed", zap.String("outfit_id", outfit.ID), zap.Error(err))
			} else {
				view.Note = note.Note
			}
		}
		fmt.Printf("\n%s\n", render.Text(view))
	}

	return result.Outfits, nil
}

// actionLoop asks what to do with the shown outfits until the user moves on.
func actionLoop(outfits *wardrobe.Outfits, logger *zap.Logger) error {
	for {
		items := []string{PromptNewRequest, PromptReportByCategory, PromptOutfitsToFile}
		if viper.GetString("exclude-file") != "" {
			items = append(items, PromptAppendToExcludeFile)
		}
		items = append(items, PromptExit)

		prompt := promptui.Select{
			Label: "Proceed?",
			Items: items,
		}

		_, action, err := prompt.Run()
		if err != nil {
			return err
		}

		switch action {
		case PromptNewRequest:
			return nil
		case PromptExit:
			logger.Info("exiting", zap.String("reason", "got exit from prompt"))
			return errExit
		case PromptReportByCategory:
			pretty, _ := json.MarshalIndent(outfits.AllItems().ReportByCategory(), "", "  ")
			logger.Info(string(pretty), zap.Int("outfits count", outfits.Len()))
		case PromptOutfitsToFile:
			filename, err := outfits.DumpToTmpFile()
			if err != nil {
				return fmt.Errorf("dump outfits to file: %w", err)
			}
			logger.Info("dumping outfits to file", zap.String("filename", filename))
		case PromptAppendToExcludeFile:
			if err := appendToExcludeFile(outfits, logger); err != nil {
				return err
			}
		default:
			return fmt.Errorf("invalid action: %s", action)
		}
	}
}

func appendToExcludeFile(outfits *wardrobe.Outfits, logger *zap.Logger) error {
	path := viper.GetString("exclude-file")

	excluded, err := wardrobe.GetExcludedItemsFromFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		excluded = &wardrobe.ExcludedItems{}
	}

	excluded.Append(outfits.AllItems().ToExcluded())

	if err := excluded.ToFile(path); err != nil {
		return err
	}

	logger.Info("appended to exclude file", zap.String("filename", path))
	return nil
}

// loadCatalog loads the catalog, degrading to an empty one when the file is
// missing: a valid demo state, not a crash.
func loadCatalog(config *Config, logger *zap.Logger) *wardrobe.Items {
	catalog, err := wardrobe.LoadCatalog(config.Catalog, logger)
	if err != nil {
		logger.Warn("loading catalog",
			zap.Error(err),
			zap.String("hint", "set the 'catalog' key in the configuration file"),
		)
		return &wardrobe.Items{}
	}

	logger.Info("catalog loaded",
		zap.Int("count", catalog.Len()),
		zap.Strings("categories", catalog.Categories()),
	)
	return catalog
}

// selectVoice picks the configured brand voice, falling back to the built-in one.
func selectVoice(config *Config, logger *zap.Logger) *brandvoice.Voice {
	voices := &brandvoice.Voices{Items: config.BrandVoices}
	if voices.Len() == 0 {
		return brandvoice.Default()
	}

	name := strings.TrimSpace(config.Voice)
	if name == "" {
		return voices.Items[0]
	}

	if voice := voices.FindByName(name); voice != nil {
		return voice
	}

	logger.Warn("brand voice with given name not found",
		zap.Strings("existed voices", voices.Names()),
		zap.String("voice", name),
	)
	return brandvoice.Default()
}

func prepareStylist(ctx context.Context, cfg *AIConfig, zlog *zap.Logger) (ai.Stylist, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when ai stylist is enabled")
	}

	apiKeyFile := strings.TrimSpace(cfg.Gemini.APIKeyFile)
	if apiKeyFile == "" {
		apiKeyFile = strings.TrimSpace(viper.GetString("ai.gemini.api-key-file"))
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: apiKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	genLogger := zlog.With(
		zap.String("provider", "gemini"),
		zap.String("model", cfg.Gemini.Model),
		zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries),
	)

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	stylistLogger := zlog.With(
		zap.String("provider", "gemini"),
		zap.String("model", generator.Model()),
	)

	return gemini.NewStylist(generator, stylistLogger, cfg.MaxNoteLength, cfg.Gemini.MaxLogLength), nil
}
