package content

import (
	"fmt"

	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/gallery"
	"gopkg.in/yaml.v3"
)

// Image is an image entry in the content file. It accepts either a bare
// locator string or a mapping with url and caption.
type Image struct {
	URL     string `yaml:"url"               json:"url"`
	Caption string `yaml:"caption,omitempty" json:"caption,omitempty"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (i *Image) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*i = Image{URL: s}
		return nil
	case yaml.MappingNode:
		type plain Image
		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}
		*i = Image(p)
		return nil
	default:
		return fmt.Errorf("line %d: image must be a string or a mapping with url and caption", node.Line)
	}
}

// MarshalYAML writes captionless images back as bare strings.
func (i Image) MarshalYAML() (any, error) {
	if i.Caption == "" {
		return i.URL, nil
	}
	type plain Image
	return plain(i), nil
}

// Ref converts the image to a gallery reference.
func (i Image) Ref() gallery.ImageRef {
	return gallery.ImageRef{Locator: i.URL, Caption: i.Caption}
}
