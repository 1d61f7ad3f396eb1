package services

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"scholar-portal/pkg/models"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed cards.yaml
var defaultLayout []byte

// DefaultLayout returns the built-in card layout.
func DefaultLayout() (*models.CardLayout, error) {
	return ParseLayout(defaultLayout, "yaml")
}

// LoadLayout reads a layout file, picking the decoder from the extension.
// An empty path yields the built-in layout.
func LoadLayout(path string) (*models.CardLayout, error) {
	if path == "" {
		return DefaultLayout()
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read card layout: %w", err)
	}
	format, err := layoutFormat(path, content)
	if err != nil {
		return nil, err
	}
	return ParseLayout(content, format)
}

func layoutFormat(path string, content []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml", nil
	case ".toml":
		return "toml", nil
	case ".json":
		return "json", nil
	}
	// No usable extension: sniff the content.
	trimmed := bytes.TrimSpace(content)
	switch {
	case bytes.HasPrefix(trimmed, []byte("{")):
		return "json", nil
	case bytes.HasPrefix(trimmed, []byte("[[")):
		return "toml", nil
	case len(trimmed) > 0:
		return "yaml", nil
	}
	return "", fmt.Errorf("card layout %s: unknown format", path)
}

// ParseLayout decodes a yaml, toml or json layout and fills in defaults.
func ParseLayout(content []byte, format string) (*models.CardLayout, error) {
	var layout models.CardLayout
	var err error
	switch format {
	case "yaml":
		err = yaml.Unmarshal(content, &layout)
	case "toml":
		err = toml.Unmarshal(content, &layout)
	case "json":
		err = json.Unmarshal(content, &layout)
	default:
		return nil, fmt.Errorf("unsupported layout format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s card layout: %w", format, err)
	}

	if err := normalizeFields(layout.Publication, "publication"); err != nil {
		return nil, err
	}
	if err := normalizeFields(layout.Patent, "patent"); err != nil {
		return nil, err
	}
	return &layout, nil
}

func normalizeFields(fields []models.Field, section string) error {
	for i := range fields {
		f := &fields[i]
		f.Name = strings.TrimSpace(f.Name)
		if f.Name == "" {
			return fmt.Errorf("card layout %s[%d]: field name is required", section, i)
		}
		if f.Label == "" {
			f.Label = f.Name
		}
		switch f.Widget {
		case "":
			f.Widget = models.WidgetText
		case models.WidgetText, models.WidgetLink, models.WidgetFile, models.WidgetCount, models.WidgetProof:
		default:
			return fmt.Errorf("card layout %s.%s: unknown widget %q", section, f.Name, f.Widget)
		}
	}
	return nil
}
