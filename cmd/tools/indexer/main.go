// Command indexer loads a UTF-8 text export of the handbook, splits it into
// overlapping chunks, embeds each chunk and upserts the vectors into the
// Pinecone index the chatbot queries.
package main

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/hporwanda/ishema-chatbot/internal/config"
	"github.com/hporwanda/ishema-chatbot/internal/policy"
	"github.com/hporwanda/ishema-chatbot/internal/service/embedding"
	"github.com/hporwanda/ishema-chatbot/internal/service/retrieval"
	"github.com/hporwanda/ishema-chatbot/pkg/logx"
)

const embedBatchSize = 64

func main() {
	var (
		inputPath    = flag.String("input", "", "path to the UTF-8 text file to index")
		namespace    = flag.String("namespace", "default", "Pinecone namespace to upsert into")
		chunkSize    = flag.Int("chunk-size", 500, "chunk size in characters")
		chunkOverlap = flag.Int("chunk-overlap", 50, "overlap between consecutive chunks")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logx.Warn().Err(err).Msg("no .env file loaded, continuing with system environment only")
	}

	cfg, err := config.Load()
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to load configuration")
	}
	logx.Init(cfg.Server.Environment)

	if *inputPath == "" {
		logx.Fatal().Msg("-input is required")
	}

	raw, err := os.ReadFile(*inputPath)
	if err != nil {
		logx.Fatal().Err(err).Str("path", *inputPath).Msg("failed to read input file")
	}

	chunks := chunkText(string(raw), *chunkSize, *chunkOverlap)
	if len(chunks) == 0 {
		logx.Fatal().Msg("input file produced no chunks")
	}
	logx.Info().Int("chunks", len(chunks)).Msg("split document")

	ctx := context.Background()
	embedder := embedding.NewClient(cfg.OpenAI)
	store := retrieval.NewClient(cfg.Pinecone, policy.Default().MetadataKeys)

	total := 0
	for start := 0; start < len(chunks); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]

		vectors := make([]retrieval.Vector, 0, len(batch))
		for _, chunk := range batch {
			vec, err := embedder.Embed(ctx, chunk)
			if err != nil {
				logx.Fatal().Err(err).Msg("embedding failed")
			}
			vectors = append(vectors, retrieval.Vector{
				ID:       uuid.NewString(),
				Values:   vec,
				Metadata: map[string]interface{}{"text": chunk},
			})
		}

		count, err := store.Upsert(ctx, vectors, *namespace)
		if err != nil {
			logx.Fatal().Err(err).Msg("upsert failed")
		}
		total += count
		logx.Info().Int("batch", len(vectors)).Int("acknowledged", count).Msg("upserted batch")
	}

	logx.Info().Int("total", total).Msg("indexing complete")
}

// chunkText splits content into chunks of roughly size characters with the
// given overlap, preferring to break at a word boundary.
func chunkText(content string, size, overlap int) []string {
	content = strings.TrimSpace(content)
	if content == "" || size <= 0 {
		return nil
	}
	if overlap < 0 || overlap >= size {
		overlap = 0
	}

	var chunks []string
	start := 0
	for start < len(content) {
		end := start + size
		if end > len(content) {
			end = len(content)
		}

		if end < len(content) {
			if lastSpace := strings.LastIndex(content[start:end], " "); lastSpace > 0 {
				end = start + lastSpace
			}
		}

		if chunk := strings.TrimSpace(content[start:end]); chunk != "" {
			chunks = append(chunks, chunk)
		}

		if end == len(content) {
			break
		}
		next := end - overlap
		if next <= start {
			next = end
		}
		start = next
	}

	return chunks
}
