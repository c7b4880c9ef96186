package retriever

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// interface for the embedding dependency, satisfied by llm.Embedder
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// Client performs semantic lookups against the Revit API
// documentation index. It never mutates the index; population is an
// offline ingestion pipeline outside this service.
type Client struct {
	pool     *pgxpool.Pool
	embedder Embedder
	topK     int
}

// a retrieved documentation snippet, ranked by similarity
type SearchResult struct {
	ID           string
	PageName     string
	PageURL      string
	SectionTitle string
	Content      string
	Similarity   float32
}
