package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/eventbrief/internal/common"
	"github.com/ternarybob/eventbrief/internal/interfaces"
	"github.com/ternarybob/eventbrief/internal/models"
	"github.com/ternarybob/eventbrief/internal/services/eventbrite"
	"github.com/ternarybob/eventbrief/internal/services/llm"
	"github.com/ternarybob/eventbrief/internal/services/summary"
)

// configPaths is a custom flag type that allows multiple -config flags
type configPaths []string

func (c *configPaths) String() string {
	return fmt.Sprintf("%v", *c)
}

func (c *configPaths) Set(value string) error {
	*c = append(*c, value)
	return nil
}

var (
	configFiles  configPaths
	promptFile   = flag.String("prompt", "", "Path to a prompt template file (uses built-in template when omitted)")
	model        = flag.String("model", "", "Generation model (overrides config; provider inferred from name)")
	temperature  = flag.Float64("temperature", -1, "Generation temperature (0 is honored; negative uses config)")
	noSummary    = flag.Bool("no-summary", false, "Assemble and print event records without calling the generation service")
	showVersion  = flag.Bool("version", false, "Print version information")
	showVersionV = flag.Bool("v", false, "Print version information (shorthand)")

	config *common.Config
	logger arbor.ILogger
)

func init() {
	flag.Var(&configFiles, "config", "Configuration file path (can be specified multiple times, later files override earlier ones)")
	flag.Var(&configFiles, "c", "Configuration file path (shorthand)")
}

func main() {
	os.Exit(run())
}

func run() int {
	flag.Parse()

	if *showVersion || *showVersionV {
		fmt.Printf("Eventbrief version %s\n", common.GetFullVersion())
		return 0
	}

	urls := flag.Args()
	if len(urls) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: eventbrief [flags] <event-url> [<event-url> ...]")
		flag.PrintDefaults()
		return 2
	}

	// Startup sequence: load config, initialize logger, print banner
	var err error

	if len(configFiles) == 0 {
		if _, statErr := os.Stat("eventbrief.toml"); statErr == nil {
			configFiles = append(configFiles, "eventbrief.toml")
		}
	}

	config, err = common.LoadFromFiles(configFiles...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}
	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 1
	}

	logger = common.InitLogger(config)
	common.PrintBanner(common.LoadVersionFromFile())

	promptTemplate := ""
	if *promptFile != "" {
		data, err := os.ReadFile(*promptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read prompt template: %v\n", err)
			return 1
		}
		promptTemplate = string(data)
	}

	eventService := eventbrite.NewService(&config.Eventbrite, logger)
	llmFactory := llm.NewProviderFactory(&config.Claude, &config.Gemini, &config.LLM, logger)
	defer llmFactory.Close()
	summaryService := summary.NewService(eventService, llmFactory, &config.Summary, logger)

	ctx := context.Background()

	// URLs are processed strictly sequentially in input order. A fatal
	// failure for one URL is reported and the loop moves on to the next.
	exitCode := 0
	for _, url := range urls {
		if err := processURL(ctx, summaryService, eventService, url, promptTemplate); err != nil {
			logger.Error().Str("url", url).Err(err).Msg("Failed to process event")
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", url, err)
			exitCode = 1
		}
	}

	return exitCode
}

func processURL(ctx context.Context, summaryService *summary.Service, eventService interfaces.EventInfoService, url string, promptTemplate string) error {
	var record *models.EventRecord
	var err error

	if *noSummary {
		record, err = eventService.GetFullEventInfo(ctx, url)
	} else {
		record, err = summaryService.GetEventbriteSummary(ctx, url, promptTemplate, *model, float32(*temperature))
	}
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render record: %w", err)
	}
	fmt.Println(string(out))

	return nil
}
