package prompts

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// embeds all .yaml files in the templates folder at compile time
//
//go:embed templates/*.yaml
var templateFS embed.FS

// Flow names, one per template file.
const (
	FlowDynamicSuggestion  = "dynamic_suggestion"
	FlowPanicButton        = "panic_button"
	FlowRecommendations    = "recommendations"
	FlowGamerDNA           = "gamer_dna"
	FlowGamerDuel          = "gamer_duel"
	FlowPlaytimePrediction = "playtime_prediction"
	FlowDifficultyAnalysis = "difficulty_analysis"
	FlowDroppedAnalysis    = "dropped_analysis"
)

// promptTemplate is the YAML shape of one flow's template.
type promptTemplate struct {
	BasePrompt string `yaml:"base_prompt"`
	Template   string `yaml:"template"`
}

// Builder is implemented by the prompt manager; handlers depend on the
// interface so tests can stub it.
type Builder interface {
	BuildPrompt(flow string, data map[string]string) (string, error)
}

type Manager struct {
	prompts map[string]string // flow -> complete prompt template
}

// NewManager loads every embedded template.
func NewManager() (*Manager, error) {
	m := &Manager{prompts: make(map[string]string)}
	if err := m.loadPrompts(); err != nil {
		return nil, fmt.Errorf("failed to load prompt templates: %w", err)
	}
	return m, nil
}

// BuildPrompt fills the flow's template with the given values. Placeholders
// have the form {{.Key}}; simple string replacement, no template engine.
func (m *Manager) BuildPrompt(flow string, data map[string]string) (string, error) {
	template, exists := m.prompts[flow]
	if !exists {
		return "", fmt.Errorf("template not found for flow: %s", flow)
	}
	result := template
	for key, value := range data {
		result = strings.ReplaceAll(result, "{{."+key+"}}", value)
	}
	return result, nil
}

// Flows lists the loaded flow names, used by the readiness probe.
func (m *Manager) Flows() []string {
	flows := make([]string, 0, len(m.prompts))
	for flow := range m.prompts {
		flows = append(flows, flow)
	}
	return flows
}

func (m *Manager) loadPrompts() error {
	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return fmt.Errorf("failed to read templates directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		data, err := templateFS.ReadFile("templates/" + entry.Name())
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", entry.Name(), err)
		}

		var tmpl promptTemplate
		if err := yaml.Unmarshal(data, &tmpl); err != nil {
			return fmt.Errorf("failed to parse template file %s: %w", entry.Name(), err)
		}

		var full strings.Builder
		if tmpl.BasePrompt != "" {
			full.WriteString(strings.TrimSpace(tmpl.BasePrompt))
			full.WriteString("\n\n")
		}
		full.WriteString(strings.TrimSpace(tmpl.Template))

		name := strings.TrimSuffix(entry.Name(), ".yaml")
		m.prompts[name] = full.String()
	}
	return nil
}

// FormatList renders a game-name list for prompt interpolation.
func FormatList(names []string) string {
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, ", ")
}
