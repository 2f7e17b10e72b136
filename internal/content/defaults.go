package content

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed packs/default.yaml
var defaultPackYAML []byte

//go:embed packs/facts.yaml
var defaultFactsYAML []byte

// DefaultPack returns the embedded question pack.
func DefaultPack() *Pack {
	pack, err := ParseYAML(defaultPackYAML)
	if err != nil {
		return &Pack{Name: "default"}
	}
	return pack
}

// Chapters returns the ordered chapter names. Computed chapter indexes past
// the end of this list clamp to the last name.
func Chapters() []string {
	return []string{
		"APPRENTICE",
		"EXPLORER",
		"CHRONICLER",
		"NAVIGATOR",
		"SCHOLAR",
		"ARCHIVIST",
		"CONQUEROR",
		"DIPLOMAT",
		"SAGE",
		"LEGEND",
	}
}

type factFile struct {
	HistoricalFacts []Fact `yaml:"historical_facts"`
}

// DefaultFacts returns the embedded historical-fact feed.
func DefaultFacts() []Fact {
	var f factFile
	if err := yaml.Unmarshal(defaultFactsYAML, &f); err != nil {
		return nil
	}
	return f.HistoricalFacts
}
