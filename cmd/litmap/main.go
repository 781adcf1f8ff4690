package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/litmap"
	"github.com/fwojciec/litmap/atlas"
	"github.com/fwojciec/litmap/config"
	"github.com/fwojciec/litmap/gemini"
	lithttp "github.com/fwojciec/litmap/http"
	litslog "github.com/fwojciec/litmap/slog"
	"github.com/fwojciec/litmap/speech"
	"github.com/fwojciec/litmap/sqlite"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Configuration. Loaded from the environment by Run when nil.
	Config *config.Config

	// Input for interactive commands.
	Stdin io.Reader

	// HTTPClient overrides the transport used to reach the backend.
	HTTPClient *http.Client

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	LandmarkService litmap.LandmarkService
	ChatService     litmap.ChatService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("litmap"),
		kong.Description("Explore the Living Literary Map from the terminal."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		err := fmt.Errorf("no command specified. Run 'litmap --help' to see available commands")
		fmt.Fprintf(stderr, "error: %s\n", err)
		return err
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return err
	}

	if m.Config == nil {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", litmap.ErrorMessage(err))
			return err
		}
		m.Config = cfg
	}
	cfg := m.Config

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	deps.Logger = logger

	m.DB = sqlite.NewDB(cfg.DBPath)
	if err := m.DB.Open(); err != nil {
		err = fmt.Errorf("failed to open database at %q: %w", cfg.DBPath, err)
		fmt.Fprintf(stderr, "error: %s\nHint: Set LITMAP_DB to use a different database path\n", err)
		return err
	}
	defer m.Close()

	m.LandmarkService = sqlite.NewLandmarkService(m.DB)
	m.ChatService = sqlite.NewChatService(m.DB)
	deps.Landmarks = m.LandmarkService
	deps.Chats = m.ChatService

	opts := []lithttp.Option{
		lithttp.WithTimeout(cfg.Timeout),
		lithttp.WithRateLimit(cfg.Rate),
	}
	if m.HTTPClient != nil {
		opts = append(opts, lithttp.WithHTTPClient(m.HTTPClient))
	}
	client := lithttp.NewClient(cfg.BaseURL, opts...)

	deps.Orchestrator = litslog.NewLoggingOrchestrator(client, logger)
	deps.Agents = litslog.NewLoggingAgentService(client, logger)
	deps.Librarian = litslog.NewLoggingLibrarian(client, logger)
	deps.Extractor = litslog.NewLoggingLocationExtractor(client, logger)
	deps.Vibes = litslog.NewLoggingVibeSearcher(client, logger)
	deps.Chatter = litslog.NewLoggingChatter(client, logger)

	switch cmd {
	case "extract", "upload":
		deps.Importer = &atlas.Importer{
			Extractor: deps.Extractor,
			Landmarks: deps.Landmarks,
		}
		if cfg.Rate > 0 {
			deps.Importer.Limiter = rate.NewLimiter(rate.Limit(cfg.Rate), 1)
		}

	case "chat":
		if cfg.Chat == config.ChatGemini {
			chatter, err := newGeminiChatter(ctx, cfg, stderr)
			if err != nil {
				return err
			}
			deps.Chatter = litslog.NewLoggingChatter(chatter, logger)
		}

	case "story":
		if cfg.TTS != "" {
			narrator, err := speech.NewCommandNarrator(cfg.TTS)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Set LITMAP_TTS to an installed text-to-speech command, or unset it")
				fmt.Fprintf(stderr, "error: %s\n", litmap.ErrorMessage(err))
				return err
			}
			deps.Narrator = narrator
		} else {
			deps.Narrator = speech.NewTextNarrator(stdout)
		}
	}

	return kongCtx.Run(deps)
}

func newGeminiChatter(ctx context.Context, cfg *config.Config, stderr io.Writer) (*gemini.Chatter, error) {
	if cfg.GeminiAPIKey == "" {
		fmt.Fprintln(stderr, "error: GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, litmap.Errorf(litmap.EINVALID, "GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintf(stderr, "error: failed to connect to Gemini API: %s\nHint: Check your GEMINI_API_KEY is valid\n", err)
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	return gemini.NewChatter(client, cfg.GeminiModel), nil
}
