package main

import (
	"flag"
	"log"
	"os"

	"op-mental-be/pkg/knowledge"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// Validates the YAML knowledge corpus before the server picks it up.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	defaultDir := os.Getenv("KNOWLEDGE_CORPUS_DIR")
	if defaultDir == "" {
		defaultDir = "knowledge_corpus"
	}
	dir := flag.String("dir", defaultDir, "knowledge corpus directory")
	flag.Parse()

	color.Cyan("🚀 Validating knowledge corpus in %s\n", *dir)

	docs, err := knowledge.NewDirSource(*dir).Load()
	if err != nil {
		color.Red("Failed to load corpus: %v", err)
		os.Exit(1)
	}
	if len(docs) == 0 {
		color.Red("Corpus is empty: add documents under %s before serving", *dir)
		os.Exit(1)
	}

	domains := make(map[string]int)
	for _, doc := range docs {
		domains[doc.Domain]++
	}

	color.Green("Loaded %d documents", len(docs))
	for domain, count := range domains {
		color.Yellow("  %-10s %d", domain, count)
	}

	color.Green("\nCorpus is valid. POST /api/knowledge/v1/reload on a running server to pick up changes.")
}
