package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"prospekt/internal/brochure"
	"prospekt/internal/config"
	"prospekt/internal/generate"
	"prospekt/internal/llm"
	"prospekt/internal/logging"
	"prospekt/internal/preview"
	"prospekt/internal/server"
	"prospekt/internal/store"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "prospekt",
		Short: "Real estate brochure editor backend",
	}
	cfgPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "Path to the YAML configuration file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(printCmd)
}

func loadConfig() (*config.Config, error) {
	path := cfgPath
	if path == "" {
		if _, err := os.Stat("config.yaml"); err == nil {
			path = "config.yaml"
		}
	}
	return config.Load(path)
}

func initStore(cfg *config.Config) (store.Store, error) {
	durable, err := store.NewSQLiteStore(cfg.Store.Path)
	if err != nil {
		return nil, err
	}
	return store.NewLayeredStore(durable), nil
}

func initGenerator(ctx context.Context, cfg *config.Config, logger *logging.Logger) (*generate.Generator, error) {
	drafter, err := llm.NewDrafter(ctx, llm.DrafterOptions{
		Provider: cfg.AI.Provider,
		APIKey:   cfg.AI.APIKey,
		Model:    cfg.AI.Model,
		BaseURL:  cfg.AI.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create drafter: %w", err)
	}
	return generate.New(drafter, logger, generate.Options{Timeout: cfg.GenerateTimeout()}), nil
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the brochure API server",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		logger, err := logging.New(cfg.Log.Mode)
		if err != nil {
			log.Fatalf("Failed to create logger: %v", err)
		}
		defer logger.Sync()

		st, err := initStore(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer st.Close()

		gen, err := initGenerator(cmd.Context(), cfg, logger)
		if err != nil {
			log.Fatalf("Failed to initialize generator: %v", err)
		}

		handler := server.NewBrochureHandler(st, gen, logger)
		router := server.NewRouter(server.RouterConfig{
			BrochureHandler: handler,
			AllowedOrigins:  cfg.Server.AllowedOrigins,
		})

		logger.Info("server starting", "addr", cfg.Server.Addr, "provider", cfg.AI.Provider)
		if err := router.Run(cfg.Server.Addr); err != nil {
			log.Fatalf("Server stopped: %v", err)
		}
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Save the default sample brochure and print its share key",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		st, err := initStore(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer st.Close()

		key := store.NewKey()
		doc := brochure.Default()
		if err := st.Save(cmd.Context(), key, brochure.ToMap(doc)); err != nil {
			log.Fatalf("Failed to save document: %v", err)
		}

		fmt.Printf("✅ Seeded %q\n", doc.ProjectName)
		fmt.Printf("🔑 dataKey: %s\n", key)
		fmt.Printf("🔗 loadUrl: /?dataKey=%s\n", key)
	},
}

var (
	printKey string
	printOut string
)

func init() {
	printCmd.Flags().StringVarP(&printKey, "key", "k", "", "Share key of the document to print (defaults to the most recently saved)")
	printCmd.Flags().StringVarP(&printOut, "out", "o", "brochure-print.json", "Path for the print-ready snapshot")
}

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Run a stored brochure through the preview pipeline and write a print-ready snapshot",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		logger, err := logging.New(cfg.Log.Mode)
		if err != nil {
			log.Fatalf("Failed to create logger: %v", err)
		}
		defer logger.Sync()

		st, err := initStore(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		key := printKey
		if key == "" {
			key, err = st.Latest(ctx)
			if err != nil {
				log.Fatalf("No stored document to print: %v", err)
			}
		}

		raw, err := st.Load(ctx, key)
		if err != nil {
			log.Fatalf("Failed to load document %s: %v", key, err)
		}

		controller := preview.NewController(
			preview.NewLogRenderer(logger),
			preview.NewFileSurface(printOut),
			logger,
			preview.Timings{
				Debounce:   cfg.PreviewDebounce(),
				PaintWait:  cfg.PrintPaint(),
				SettleWait: cfg.PrintSettle(),
			},
		)
		defer controller.Stop()

		if err := controller.Show(raw); err != nil {
			log.Fatalf("Document failed validation: %v", err)
		}
		if err := controller.Print(); err != nil {
			log.Fatalf("Print failed: %v", err)
		}

		fmt.Printf("🖨️ Printed %s to %s\n", key, printOut)
	},
}

var (
	expandInput string
	expandHint  string
	expandSave  bool
)

func init() {
	expandCmd.Flags().StringVarP(&expandInput, "input", "i", "", "Path to a JSON file with partial brochure fields")
	expandCmd.Flags().StringVarP(&expandHint, "hint", "H", "", "Free-text hint steering the generated copy")
	expandCmd.Flags().BoolVarP(&expandSave, "save", "s", false, "Save the expanded document and print its share key")
}

var expandCmd = &cobra.Command{
	Use:   "expand",
	Short: "Draft a complete brochure from sparse input using the AI provider",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		logger, err := logging.New(cfg.Log.Mode)
		if err != nil {
			log.Fatalf("Failed to create logger: %v", err)
		}
		defer logger.Sync()

		partial := map[string]any{}
		if expandInput != "" {
			data, err := os.ReadFile(expandInput)
			if err != nil {
				log.Fatalf("Failed to read input: %v", err)
			}
			if err := json.Unmarshal(data, &partial); err != nil {
				log.Fatalf("Input is not a JSON object: %v", err)
			}
		}

		ctx := cmd.Context()
		gen, err := initGenerator(ctx, cfg, logger)
		if err != nil {
			log.Fatalf("Failed to initialize generator: %v", err)
		}

		fmt.Println("🚀 Drafting brochure...")
		doc, err := gen.ExpandDocument(ctx, partial, expandHint)
		if err != nil {
			log.Fatalf("Expand failed: %v", err)
		}

		out, err := json.MarshalIndent(brochure.ToMap(doc), "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode document: %v", err)
		}
		fmt.Println(string(out))

		if expandSave {
			st, err := initStore(cfg)
			if err != nil {
				log.Fatalf("Failed to initialize database: %v", err)
			}
			defer st.Close()

			key := store.NewKey()
			if err := st.Save(ctx, key, brochure.ToMap(doc)); err != nil {
				log.Fatalf("Failed to save document: %v", err)
			}
			fmt.Printf("🔑 dataKey: %s\n", key)
		}
	},
}
