package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Wish is the text of one wish card
type Wish struct {
	Icon  string `yaml:"icon"`
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

// Content holds every text shown on the page
type Content struct {
	Title       string   `yaml:"title"`
	Subtitle    string   `yaml:"subtitle"`
	ScrollHint  string   `yaml:"scroll_hint"`
	WishesTitle string   `yaml:"wishes_title"`
	Wishes      []Wish   `yaml:"wishes"`
	CakeTitle   string   `yaml:"cake_title"`
	CakeText    []string `yaml:"cake_text"`
	CandleHint  string   `yaml:"candle_hint"`
	Reveal      string   `yaml:"reveal"`
	Closing     string   `yaml:"closing"`
	Signature   string   `yaml:"signature"`
}

// DefaultContentPath is the embedded greeting content
const DefaultContentPath = "content/greeting.yaml"

// ParseContent decodes and validates greeting content
func ParseContent(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadContent reads greeting content from fsys
func LoadContent(fsys fs.FS, path string) (*Content, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}
	c, err := ParseContent(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// LoadContentFile reads greeting content from a path on disk
func LoadContentFile(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}
	c, err := ParseContent(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// ErrNoWishes is returned for content without any wish cards
var ErrNoWishes = errors.New("content has no wishes")

// Validate checks required fields
func (c *Content) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return errors.New("content title is empty")
	}
	if len(c.Wishes) == 0 {
		return ErrNoWishes
	}
	for i, w := range c.Wishes {
		if strings.TrimSpace(w.Title) == "" {
			return fmt.Errorf("wish %d: title is empty", i)
		}
	}
	if strings.TrimSpace(c.Reveal) == "" {
		return errors.New("content reveal message is empty")
	}
	return nil
}
