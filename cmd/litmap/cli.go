package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/litmap"
	"github.com/fwojciec/litmap/atlas"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Landmarks    litmap.LandmarkService
	Chats        litmap.ChatService
	Orchestrator litmap.Orchestrator
	Agents       litmap.AgentService
	Librarian    litmap.Librarian
	Extractor    litmap.LocationExtractor
	Vibes        litmap.VibeSearcher
	Chatter      litmap.Chatter
	Narrator     litmap.Narrator
	Importer     *atlas.Importer
}

func (d *Dependencies) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Landmarks LandmarksCmd `cmd:"" help:"List curated and imported landmarks"`
	Stats     StatsCmd     `cmd:"" help:"Summarize books, locations, eras and regions"`
	Explore   ExploreCmd   `cmd:"" help:"Ask the conductor to explain a landmark"`
	Agents    AgentsCmd    `cmd:"" help:"Query archivist, linguist and stylist directly"`
	Era       EraCmd       `cmd:"" help:"Explore an era or a range of years"`
	Search    SearchCmd    `cmd:"" help:"Search books by title"`
	Vibe      VibeCmd      `cmd:"" help:"Find landmarks matching a mood"`
	Extract   ExtractCmd   `cmd:"" help:"Map the locations of books by title"`
	Upload    UploadCmd    `cmd:"" help:"Map the locations of a PDF book"`
	Books     BooksCmd     `cmd:"" help:"List imported books"`
	Forget    ForgetCmd    `cmd:"" help:"Remove the landmarks of an imported book"`
	Chat      ChatCmd      `cmd:"" help:"Ask a question about a place"`
	Story     StoryCmd     `cmd:"" help:"Tour every landmark in sequence"`
}

// LandmarksCmd is the "landmarks" subcommand.
type LandmarksCmd struct {
	Era     string `short:"e" help:"Only landmarks of this era"`
	Book    string `short:"b" help:"Only landmarks of this book"`
	From    int    `help:"Earliest year"`
	To      int    `help:"Latest year"`
	GeoJSON bool   `name:"geojson" help:"Print a GeoJSON FeatureCollection"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct{}

// ExploreCmd is the "explore" subcommand.
type ExploreCmd struct {
	ID       string `arg:"" help:"Landmark ID"`
	Thoughts bool   `short:"t" help:"Show the conductor's chain of thought"`
}

// AgentsCmd is the "agents" subcommand.
type AgentsCmd struct {
	ID string `arg:"" help:"Landmark ID"`
}

// EraCmd is the "era" subcommand.
type EraCmd struct {
	Era         string `arg:"" optional:"" help:"Era such as 1920s"`
	From        int    `help:"First year of the range"`
	To          int    `help:"Last year of the range"`
	Interactive bool   `short:"i" help:"Read 'from to' year ranges from stdin"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query       string `arg:"" optional:"" help:"Book title to search for"`
	Limit       int    `short:"n" default:"8" help:"Maximum number of books"`
	Interactive bool   `short:"i" help:"Search as you type, one query per stdin line"`
}

// VibeCmd is the "vibe" subcommand.
type VibeCmd struct {
	Query string `arg:"" help:"Mood to search for, e.g. 'rainy melancholy jazz'"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Titles      []string `arg:"" help:"Book titles"`
	Author      string   `short:"a" help:"Author (single title only)"`
	Year        string   `short:"y" help:"Publication year (single title only)"`
	Concurrency int      `short:"c" default:"3" help:"Concurrent extraction limit"`
}

// UploadCmd is the "upload" subcommand.
type UploadCmd struct {
	Path  string `arg:"" type:"existingfile" help:"PDF file"`
	Title string `short:"t" help:"Book title (defaults to file name)"`
}

// BooksCmd is the "books" subcommand.
type BooksCmd struct{}

// ForgetCmd is the "forget" subcommand.
type ForgetCmd struct {
	Book  string `arg:"" help:"Book title"`
	Force bool   `help:"Confirm deletion"`
}

// ChatCmd is the "chat" subcommand.
type ChatCmd struct {
	Question string `arg:"" optional:"" help:"Question about the place"`
	Landmark string `short:"l" help:"Landmark the question is about"`
	History  bool   `help:"Print the transcript"`
	Clear    bool   `help:"Clear the transcript"`
}

// StoryCmd is the "story" subcommand.
type StoryCmd struct {
	Era     string        `short:"e" help:"Only tour landmarks of this era"`
	Book    string        `short:"b" help:"Only tour landmarks of this book"`
	Narrate bool          `short:"n" default:"true" negatable:"" help:"Narrate each landmark"`
	Pause   time.Duration `default:"2s" help:"Pause between landmarks"`
}
