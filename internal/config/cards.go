package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Card is one featured card on the home page.
type Card struct {
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
}

type cardsFile struct {
	Cards []Card `yaml:"cards"`
}

// DefaultCards are shown when no cards file is configured.
func DefaultCards() []Card {
	return []Card{
		{Title: "Card 1", Content: "This is the first card content."},
		{Title: "Card 2", Content: "This is the second card content."},
		{Title: "Card 3", Content: "This is the third card content."},
	}
}

// LoadCards reads featured cards from a YAML file of the form
//
//	cards:
//	  - title: Welcome
//	    content: Hello there.
//
// An empty path or a missing file yields DefaultCards. Cards without a
// title are rejected.
func LoadCards(path string) ([]Card, error) {
	if path == "" {
		return DefaultCards(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if isNotExist(err) {
			return DefaultCards(), nil
		}
		return nil, fmt.Errorf("read cards: %w", err)
	}

	var f cardsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse cards %s: %w", path, err)
	}
	for i, c := range f.Cards {
		if strings.TrimSpace(c.Title) == "" {
			return nil, fmt.Errorf("parse cards %s: card %d has no title", path, i+1)
		}
	}
	if len(f.Cards) == 0 {
		return DefaultCards(), nil
	}
	return f.Cards, nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
