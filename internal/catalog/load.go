package catalog

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed products.json
var bundled []byte

// Default returns the catalog bundled into the binary.
func Default() (*Catalog, error) {
	c, err := Parse(bundled)
	if err != nil {
		return nil, fmt.Errorf("cannot parse bundled catalog: %w", err)
	}
	c.source = "(bundled)"
	return c, nil
}

// Load reads a catalog file. Files ending in .jsonl hold one record per line;
// anything else is parsed as a JSON array.
func Load(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read catalog %s: %w", path, err)
	}

	var c *Catalog
	if strings.EqualFold(filepath.Ext(path), ".jsonl") {
		c, err = parseLines(b)
	} else {
		c, err = Parse(b)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot parse catalog %s: %w", path, err)
	}
	c.source = path
	return c, nil
}

// Parse decodes a JSON array of catalog records and validates the result.
func Parse(data []byte) (*Catalog, error) {
	var raw []rawProduct
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid catalog JSON: %w", err)
	}
	return build(raw)
}

func parseLines(data []byte) (*Catalog, error) {
	var raw []rawProduct
	scanner := bufio.NewScanner(bytes.NewReader(data))
	n := 0
	for scanner.Scan() {
		n++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var r rawProduct
		if err := json.Unmarshal(line, &r); err != nil {
			return nil, fmt.Errorf("invalid catalog JSONL at line %d: %w", n, err)
		}
		raw = append(raw, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot scan catalog lines: %w", err)
	}
	return build(raw)
}

func build(raw []rawProduct) (*Catalog, error) {
	products := make([]Product, 0, len(raw))
	for _, r := range raw {
		products = append(products, normalize(r))
	}
	c := &Catalog{products: products}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func normalize(r rawProduct) Product {
	label := strings.TrimSpace(r.Category)
	return Product{
		ID:       r.ID,
		Name:     strings.TrimSpace(r.Name),
		Category: strings.ToLower(label),
		Label:    label,
		Price:    r.Price,
		Rating:   r.Rating,
	}
}
