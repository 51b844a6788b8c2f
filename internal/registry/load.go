package registry

import (
	"fmt"
	"os"

	"github.com/alexanderramin/helpshift/internal/shiftcode"
	"gopkg.in/yaml.v3"
)

type fileSchema struct {
	Employees []string `yaml:"employees"`
	Areas     []struct {
		Name   string `yaml:"name"`
		Stores []struct {
			Name  string `yaml:"name"`
			Color string `yaml:"color"`
		} `yaml:"stores"`
	} `yaml:"areas"`
	SpecialKeywords []struct {
		Name       string `yaml:"name"`
		Background string `yaml:"background"`
	} `yaml:"special_keywords"`
}

// LoadFile reads a registry from a YAML file. When special_keywords is
// omitted the built-in keywords are used.
func LoadFile(path string) (*Registry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("registry: read file %s: %w", path, err)
	}
	return Parse(b)
}

// Parse builds a registry from YAML.
func Parse(b []byte) (*Registry, error) {
	var doc fileSchema
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("registry: parse yaml: %w", err)
	}
	if len(doc.Employees) == 0 {
		return nil, fmt.Errorf("registry: employees must be set")
	}
	if len(doc.Areas) == 0 {
		return nil, fmt.Errorf("registry: areas must be set")
	}

	areas := make([]Area, 0, len(doc.Areas))
	for _, a := range doc.Areas {
		area := Area{Name: a.Name}
		for _, s := range a.Stores {
			area.Stores = append(area.Stores, Store{Name: s.Name, Color: shiftcode.Color(s.Color)})
		}
		areas = append(areas, area)
	}

	var keywords []Keyword
	if doc.SpecialKeywords == nil {
		keywords = Default().Keywords()
	}
	for _, k := range doc.SpecialKeywords {
		keywords = append(keywords, Keyword{Name: shiftcode.Kind(k.Name), Background: shiftcode.Color(k.Background)})
	}

	return New(doc.Employees, areas, keywords)
}
