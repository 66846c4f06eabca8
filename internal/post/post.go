package post

import (
	"fmt"
	"os"

	"git.home.luguber.info/inful/patterns/internal/blogpost"
	foundation "git.home.luguber.info/inful/patterns/internal/foundation/errors"
	"gopkg.in/yaml.v3"
)

// Block is one add operation in a post definition.
type Block struct {
	Kind  blogpost.FragmentKind `yaml:"kind"`
	Text  string                `yaml:"text,omitempty"`
	Items []string              `yaml:"items,omitempty"`
}

// Post is a declarative blog post.
type Post struct {
	Title  string         `yaml:"title,omitempty"`
	Meta   map[string]any `yaml:"meta,omitempty"`
	Blocks []Block        `yaml:"blocks"`
}

// Load reads and validates a post definition from path.
func Load(path string) (*Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, foundation.NewError(foundation.CategoryNotFound, "post definition not found").
				WithContext("path", path).
				Build()
		}
		return nil, foundation.WrapError(err, foundation.CategoryFileSystem, "failed to read post definition").
			WithContext("path", path).
			Build()
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates a YAML post definition.
func Parse(data []byte) (*Post, error) {
	var p Post
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, foundation.WrapError(err, foundation.CategoryValidation, "invalid post definition").Fatal().Build()
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate rejects blocks whose kind the builder has no operation for.
// Empty text and empty lists are valid.
func (p *Post) Validate() error {
	for i, b := range p.Blocks {
		switch b.Kind {
		case blogpost.KindTitle, blogpost.KindHeader, blogpost.KindParagraph:
			if len(b.Items) > 0 {
				return blockError("items are only allowed on list blocks", i, b)
			}
		case blogpost.KindList:
			if b.Text != "" {
				return blockError("text is not allowed on list blocks", i, b)
			}
		default:
			return blockError("unknown block kind", i, b)
		}
	}
	return nil
}

// Marshal encodes the post definition as YAML.
func (p *Post) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}

func blockError(msg string, index int, b Block) error {
	return foundation.ValidationError(msg).
		WithContext("index", index).
		WithContext("kind", string(b.Kind)).
		Build()
}
