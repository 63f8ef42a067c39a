package game

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed prompts.yaml
var defaultCatalog []byte

// Persona is one of the two competing assistants.
type Persona struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Option is a prompt offered to the player.
type Option struct {
	Category Category
	Text     string
}

// Catalog holds the personas and the prompt texts of every category.
type Catalog struct {
	Personas struct {
		A Persona `yaml:"a"`
		B Persona `yaml:"b"`
	} `yaml:"personas"`
	Prompts struct {
		FavorsA       []string `yaml:"favors_a"`
		FavorsB       []string `yaml:"favors_b"`
		Unpredictable []string `yaml:"unpredictable"`
	} `yaml:"prompts"`
}

// LoadCatalog parses the catalog shipped with the binary.
func LoadCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

func ParseCatalog(b []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("failed to parse prompt catalog: %w", err)
	}
	if c.Personas.A.Name == "" || c.Personas.B.Name == "" {
		return nil, fmt.Errorf("prompt catalog: both personas need a name")
	}
	for _, category := range Categories {
		if len(c.Texts(category)) == 0 {
			return nil, fmt.Errorf("prompt catalog: no prompts for %s", category)
		}
	}
	return &c, nil
}

// Texts returns the prompts of a category.
func (c *Catalog) Texts(category Category) []string {
	switch category {
	case FavorsA:
		return c.Prompts.FavorsA
	case FavorsB:
		return c.Prompts.FavorsB
	case Unpredictable:
		return c.Prompts.Unpredictable
	default:
		return nil
	}
}

// Options picks one prompt text for each category, keeping their order.
func (c *Catalog) Options(categories [3]Category, r Random) [3]Option {
	var options [3]Option
	for i, category := range categories {
		texts := c.Texts(category)
		options[i] = Option{Category: category, Text: texts[r.Intn(len(texts))]}
	}
	return options
}
