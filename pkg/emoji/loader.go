package emoji

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

//go:embed data/emoji.json
var defaultAsset []byte

// Loader supplies the grouped raw definitions the catalog is built from.
// A loader that fails or returns no groups yields an empty catalog; it is
// never treated as a fatal condition.
type Loader func() (map[string][]Definition, error)

// DefaultLoader returns a Loader backed by the embedded emoji asset.
func DefaultLoader() Loader {
	return func() (map[string][]Definition, error) {
		return parseAsset(defaultAsset)
	}
}

// FileLoader returns a Loader that reads grouped definitions from a JSON
// file on disk for deployments shipping their own emoji data.
func FileLoader(path string) Loader {
	return func() (map[string][]Definition, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read emoji asset %s: %w", path, err)
		}
		return parseAsset(data)
	}
}

func parseAsset(data []byte) (map[string][]Definition, error) {
	groups := make(map[string][]Definition)
	if err := json.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("failed to parse emoji asset: %w", err)
	}
	log.Debugf("Parsed emoji asset: %d groups", len(groups))
	return groups, nil
}
