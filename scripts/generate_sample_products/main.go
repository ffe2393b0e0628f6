package main

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"product-api/internal/model"

	"github.com/google/uuid"
)

// generateSampleProducts writes sample seed files for SEED_FILE.
// products.jsonl is plain, products.jsonl.gz holds the same records gzipped.
func main() {
	dataDir := "data/seeds"

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	products := []model.Product{
		{Name: "Mouse", Description: "Wireless mouse", Price: 25, Category: "electronics", InStock: true},
		{Name: "Keyboard", Description: "Mechanical keyboard with backlight", Price: 75, Category: "electronics", InStock: true},
		{Name: "Monitor", Description: "27 inch 4K monitor", Price: 320, Category: "electronics", InStock: false},
		{Name: "Kettle", Description: "Electric kettle, 1.7L", Price: 30, Category: "kitchen", InStock: true},
		{Name: "Toaster", Description: "Two-slice toaster", Price: 0, Category: "kitchen", InStock: true},
		{Name: "Desk Lamp", Description: "LED lamp with dimmer", Price: 40, Category: "home", InStock: true},
	}
	for i := range products {
		products[i].ID = uuid.NewString()
	}

	for _, filename := range []string{"products.jsonl", "products.jsonl.gz"} {
		filePath := filepath.Join(dataDir, filename)

		if err := createSeedFile(filePath, products); err != nil {
			log.Fatalf("Failed to create %s: %v", filename, err)
		}

		fmt.Printf("Created %s with %d products\n", filePath, len(products))
	}

	fmt.Println("\nSample seed files created successfully!")
	fmt.Println("Start the server with SEED_FILE=" + filepath.Join(dataDir, "products.jsonl.gz"))
}

func createSeedFile(filePath string, products []model.Product) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	var w io.Writer = file
	if filepath.Ext(filePath) == ".gz" {
		gzipWriter := gzip.NewWriter(file)
		defer gzipWriter.Close()
		w = gzipWriter
	}

	encoder := json.NewEncoder(w)
	for _, p := range products {
		if err := encoder.Encode(p); err != nil {
			return fmt.Errorf("failed to write product: %w", err)
		}
	}

	return nil
}
