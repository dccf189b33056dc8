package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dvloznov/voice-ledger/internal/logger"
	"github.com/dvloznov/voice-ledger/internal/parser"
	"github.com/dvloznov/voice-ledger/internal/speech"
)

func main() {
	log := logger.New()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "parse":
		runParse(log)
	case "listen":
		runListen(log)
	case "categories":
		runCategories(log)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Voice Ledger CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  cli <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  parse       Parse a transcribed utterance into a transaction")
	fmt.Println("  listen      Transcribe an audio clip and parse the result")
	fmt.Println("  categories  Show the built-in category taxonomy")
	fmt.Println("  help        Show this help message")
	fmt.Println("\nRun 'cli <command> -h' for more information on a command.")
}

func runParse(log zerolog.Logger) {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	text := fs.String("text", "", "Transcribed utterance to parse")
	categories := fs.String("categories", "", "User categories as name:type pairs, comma separated (e.g. 'Lunch Money:EXPENSE,Wages:INCOME')")
	fs.Parse(os.Args[2:])

	if *text == "" {
		log.Fatal().Msg("Error: --text is required")
	}

	userCategories, err := parseCategoryList(*categories)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid --categories value")
	}

	p := parser.New()
	tx, err := p.ParseWithCategories(*text, userCategories)
	if err != nil {
		log.Fatal().Err(err).Msg("Parse failed")
	}

	printTransaction(tx)
}

func runListen(log zerolog.Logger) {
	fs := flag.NewFlagSet("listen", flag.ExitOnError)
	file := fs.String("file", "", "Path to a LINEAR16 PCM audio clip (16 kHz)")
	language := fs.String("language", speech.DefaultLanguage, "BCP-47 language tag")
	categories := fs.String("categories", "", "User categories as name:type pairs, comma separated")
	fs.Parse(os.Args[2:])

	if *file == "" {
		log.Fatal().Msg("Error: --file is required")
	}

	audio, err := os.ReadFile(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read audio file")
	}

	userCategories, err := parseCategoryList(*categories)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid --categories value")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	ctx = logger.WithContext(ctx, log)

	recognizer, err := speech.NewGoogleRecognizer(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize speech recognition")
	}

	log.Info().Str("file", *file).Str("language", *language).Msg("Transcribing clip")

	session := speech.StartListening(ctx, recognizer, audio, *language)
	event := <-session.Events()
	if event.Err != nil {
		log.Fatal().Err(event.Err).Msg("Recognition failed")
	}

	fmt.Printf("Transcript: %s\n\n", event.Text)

	p := parser.New()
	tx, err := p.ParseWithCategories(event.Text, userCategories)
	if err != nil {
		log.Fatal().Err(err).Msg("Parse failed")
	}

	printTransaction(tx)
}

func runCategories(log zerolog.Logger) {
	fmt.Println("\n=== Expense Categories ===")
	for name, keywords := range parser.Taxonomy(parser.Expense) {
		fmt.Printf("%-18s %s\n", name, strings.Join(keywords, ", "))
	}

	fmt.Println("\n=== Income Categories ===")
	for name, keywords := range parser.Taxonomy(parser.Income) {
		fmt.Printf("%-18s %s\n", name, strings.Join(keywords, ", "))
	}
	fmt.Println()
}

func parseCategoryList(raw string) ([]parser.Category, error) {
	if raw == "" {
		return nil, nil
	}

	var categories []parser.Category
	for _, pair := range strings.Split(raw, ",") {
		name, kind, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || name == "" {
			return nil, fmt.Errorf("expected name:type, got %q", pair)
		}

		direction := parser.Direction(strings.ToUpper(kind))
		switch direction {
		case parser.Income, parser.Expense, parser.Transfer:
		default:
			return nil, fmt.Errorf("unknown category type %q", kind)
		}

		categories = append(categories, parser.Category{Name: name, Kind: direction})
	}
	return categories, nil
}

func printTransaction(tx *parser.ParsedTransaction) {
	out, err := json.MarshalIndent(tx, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode transaction: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
