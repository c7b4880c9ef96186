package retriever

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
)

const defaultTopK = 5

// creates a new retriever client over an existing connection pool
func New(pool *pgxpool.Pool, embedder Embedder) *Client {
	return &Client{
		pool:     pool,
		embedder: embedder,
		topK:     defaultTopK,
	}
}

// Search performs a vector similarity search on the documentation
// index and returns at most topK results ordered by descending
// similarity. topK values outside (0, 50] fall back to the default.
func (c *Client) Search(ctx context.Context, queryText string, topK int) ([]SearchResult, error) {
	if topK <= 0 || topK > 50 {
		topK = c.topK
	}

	embedding, err := c.embedder.GenerateEmbedding(ctx, queryText)
	if err != nil {
		return nil, fmt.Errorf("failed to generate query embedding: %w", err)
	}

	query := `
		SELECT
			id::text,
			page_name,
			page_url,
			section_title,
			content,
			similarity
		FROM search_docs($1, $2)
	`

	rows, err := c.pool.Query(ctx, query, pgvector.NewVector(embedding), topK)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search query: %w", err)
	}
	defer rows.Close()

	var results []SearchResult

	for rows.Next() {
		var result SearchResult
		err := rows.Scan(
			&result.ID,
			&result.PageName,
			&result.PageURL,
			&result.SectionTitle,
			&result.Content,
			&result.Similarity,
		)

		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return rankAndLimit(results, topK), nil
}
