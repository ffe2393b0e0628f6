package seed

import (
	"context"
	"fmt"
	"os"

	"product-api/internal/model"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for JSON-lines product files on local disk.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based seed loader.
// Files whose name ends in .gz are decompressed while reading.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "seed-file-loader").Logger(),
	}
}

// Load reads a product file with one JSON product per line.
func (l *fileLoader) Load(ctx context.Context, filePath string) ([]model.Product, error) {
	l.logger.Info().Str("file", filePath).Msg("loading seed file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open seed file")
		return nil, fmt.Errorf("failed to open seed file %s: %w", filePath, err)
	}
	defer file.Close()

	products, err := decodeProducts(ctx, file, isGzip(filePath))
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to read seed file")
		return nil, fmt.Errorf("failed to read seed file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("products_loaded", len(products)).
		Msg("seed file loaded successfully")

	return products, nil
}
