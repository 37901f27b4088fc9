package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"

	"interview-coach/internal/config"
	"interview-coach/internal/services"
)

func main() {
	log.Println("🚀 Starting rubric ingestion...")

	// Load configuration
	cfg := config.Load()

	// Initialize services
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	qdrantService, err := services.NewQdrantService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := qdrantService.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	documentParser := services.NewDocumentParserService()
	chunker := services.NewTextChunker()

	ctx := context.Background()

	documents := []struct {
		Path       string
		RubricType string
		Name       string
	}{
		{
			Path:       "./reference_docs/resume_scoring_rubric.pdf",
			RubricType: "resume_rubric",
			Name:       "Resume Scoring Rubric",
		},
		{
			Path:       "./reference_docs/written_answer_rubric.pdf",
			RubricType: "text_rubric",
			Name:       "Written Answer Scoring Rubric",
		},
		{
			Path:       "./reference_docs/spoken_answer_rubric.pdf",
			RubricType: "voice_rubric",
			Name:       "Spoken Answer Scoring Rubric",
		},
	}

	successCount := 0
	failCount := 0

	for _, doc := range documents {
		log.Printf("\n📄 Processing: %s", doc.Name)
		log.Printf("   Path: %s", doc.Path)
		log.Printf("   Type: %s", doc.RubricType)

		if _, err := os.Stat(doc.Path); os.IsNotExist(err) {
			log.Printf("   ⚠️  File not found, skipping...")
			failCount++
			continue
		}

		log.Printf("   📖 Extracting text...")
		text, err := documentParser.ExtractText(doc.Path)
		if err != nil {
			log.Printf("   ❌ Failed to extract text: %v", err)
			failCount++
			continue
		}

		log.Printf("   ✂️  Chunking text...")
		chunks := chunker.ChunkText(text, 1000, 200)
		log.Printf("   ✅ Created %d chunks", len(chunks))

		log.Printf("   🔄 Embedding and storing chunks...")
		for i, chunk := range chunks {
			embedding, err := geminiService.GenerateEmbedding(ctx, chunk)
			if err != nil {
				log.Printf("   ❌ Failed to generate embedding for chunk %d: %v", i+1, err)
				continue
			}

			err = qdrantService.UpsertChunk(ctx, uuid.New().String(), doc.RubricType, chunk, embedding)
			if err != nil {
				log.Printf("   ❌ Failed to store chunk %d: %v", i+1, err)
				continue
			}

			if (i+1)%5 == 0 || i == len(chunks)-1 {
				log.Printf("   📊 Progress: %d/%d chunks stored", i+1, len(chunks))
			}
		}

		log.Printf("   ✅ Successfully ingested %s", doc.Name)
		successCount++
	}

	// Summary
	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Ingestion Summary:")
	log.Printf("   ✅ Successful: %d documents", successCount)
	log.Printf("   ❌ Failed: %d documents", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		log.Println("⚠️  Some rubrics failed to ingest. Please check the logs above.")
		os.Exit(1)
	}

	log.Println("✅ All rubrics ingested successfully!")
}
