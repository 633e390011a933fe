// Package taxonomy holds the skill taxonomy: a fixed, ordered mapping from
// category to canonical skill names. It is configuration data loaded at startup
// and injected into the components that need it.
package taxonomy

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category is a skill category name as it appears in the taxonomy file.
type Category string

// Other is returned for skills the taxonomy does not know.
const Other Category = "Other"

const maxRelated = 5

//go:embed data/skills.yaml
var defaultData []byte

type fileFormat struct {
	Categories []struct {
		Name   string   `yaml:"name"`
		Skills []string `yaml:"skills"`
	} `yaml:"categories"`
}

// Taxonomy is an immutable lookup structure over the category→skills mapping.
// Display case is preserved; matching is case-insensitive.
type Taxonomy struct {
	categories []Category
	byCategory map[Category][]string
	categoryOf map[string]Category // lower-cased skill name → category
	all        []string
}

// Default loads the embedded taxonomy.
func Default() *Taxonomy {
	tax, err := parse(defaultData)
	if err != nil {
		// The embedded file is validated by tests; a parse failure here is a
		// build defect, not a runtime condition.
		panic(fmt.Sprintf("taxonomy: embedded data invalid: %v", err))
	}
	return tax
}

// Load reads a taxonomy YAML file from disk.
func Load(path string) (*Taxonomy, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("taxonomy: read %s: %w", path, err)
	}
	tax, err := parse(raw)
	if err != nil {
		return nil, fmt.Errorf("taxonomy: parse %s: %w", path, err)
	}
	return tax, nil
}

func parse(raw []byte) (*Taxonomy, error) {
	var file fileFormat
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, err
	}
	if len(file.Categories) == 0 {
		return nil, fmt.Errorf("no categories defined")
	}

	tax := &Taxonomy{
		byCategory: make(map[Category][]string, len(file.Categories)),
		categoryOf: make(map[string]Category),
	}
	for _, cat := range file.Categories {
		name := Category(strings.TrimSpace(cat.Name))
		if name == "" || name == Other {
			return nil, fmt.Errorf("invalid category name %q", cat.Name)
		}
		tax.categories = append(tax.categories, name)
		for _, skill := range cat.Skills {
			skill = strings.TrimSpace(skill)
			if skill == "" {
				continue
			}
			tax.byCategory[name] = append(tax.byCategory[name], skill)
			key := strings.ToLower(skill)
			// First category wins for names listed more than once.
			if _, ok := tax.categoryOf[key]; !ok {
				tax.categoryOf[key] = name
			}
			tax.all = append(tax.all, skill)
		}
	}
	return tax, nil
}

// All returns every skill name in taxonomy order.
func (t *Taxonomy) All() []string {
	out := make([]string, len(t.all))
	copy(out, t.all)
	return out
}

// Categories returns the category names in file order.
func (t *Taxonomy) Categories() []Category {
	out := make([]Category, len(t.categories))
	copy(out, t.categories)
	return out
}

// CategoryOf resolves a skill name to its category, or Other when unknown.
// Matching is case-insensitive and exact.
func (t *Taxonomy) CategoryOf(skill string) Category {
	cat, ok := t.categoryOf[strings.ToLower(strings.TrimSpace(skill))]
	if !ok {
		return Other
	}
	return cat
}

// Related returns up to 5 other skills from the same category, in taxonomy
// order. Unknown skills have no related skills.
func (t *Taxonomy) Related(skill string) []string {
	cat := t.CategoryOf(skill)
	if cat == Other {
		return nil
	}
	key := strings.ToLower(strings.TrimSpace(skill))
	var out []string
	for _, member := range t.byCategory[cat] {
		if strings.ToLower(member) == key {
			continue
		}
		out = append(out, member)
		if len(out) == maxRelated {
			break
		}
	}
	return out
}

// Contains reports whether the taxonomy knows the skill name.
func (t *Taxonomy) Contains(skill string) bool {
	_, ok := t.categoryOf[strings.ToLower(strings.TrimSpace(skill))]
	return ok
}
