package resource

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

var categories = map[string]bool{
	CategoryClub:     true,
	CategoryService:  true,
	CategorySupport:  true,
	CategoryFacility: true,
	CategoryEvent:    true,
}

func ValidCategory(c string) bool {
	return categories[c]
}

type catalogEntry struct {
	Name        string   `yaml:"name"`
	Category    string   `yaml:"category"`
	Description string   `yaml:"description"`
	Location    string   `yaml:"location"`
	ContactInfo string   `yaml:"contact_info"`
	Website     string   `yaml:"website"`
	Hours       string   `yaml:"hours"`
	Tags        []string `yaml:"tags"`
}

// Catalog parses the embedded seed catalog.
func Catalog() ([]Resource, error) {
	return ParseCatalog(catalogYAML)
}

// ParseCatalog decodes a YAML list of resources. Names must be unique and
// categories known.
func ParseCatalog(data []byte) ([]Resource, error) {
	var doc struct {
		Resources []catalogEntry `yaml:"resources"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	seen := make(map[string]bool, len(doc.Resources))
	out := make([]Resource, 0, len(doc.Resources))
	for i, e := range doc.Resources {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: entry %d has no name", ErrInvalidCatalog, i)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidCatalog, name)
		}
		if !ValidCategory(e.Category) {
			return nil, fmt.Errorf("%w: %q has category %q", ErrInvalidCatalog, name, e.Category)
		}
		seen[name] = true

		tags := make([]string, 0, len(e.Tags))
		for _, t := range e.Tags {
			if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
				tags = append(tags, t)
			}
		}
		out = append(out, Resource{
			Name:        name,
			Category:    e.Category,
			Description: e.Description,
			Location:    e.Location,
			ContactInfo: e.ContactInfo,
			Website:     e.Website,
			Hours:       e.Hours,
			Tags:        tags,
		})
	}
	return out, nil
}
