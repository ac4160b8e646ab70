// Package prompts loads and renders the prompt templates for the three
// prompt domains. Built-in defaults can be overridden per project by YAML
// files in <repo>/.promptgen/prompts/.
package prompts

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	textTemplate "text/template"

	"gopkg.in/yaml.v3"
)

// TruncationMarker terminates a prompt cut at the max-chars cap.
const TruncationMarker = "\n... (truncated)"

// Manager handles loading and rendering prompt templates
type Manager struct {
	prompts map[string]string
	sources map[string]string // Track which file provided each prompt (for debugging)
}

// PromptTemplate represents a prompt with system and user components
type PromptTemplate struct {
	SystemPrompt string `yaml:"system_prompt"`
	UserPrompt   string `yaml:"user_prompt"`
}

// NewManager creates a prompt manager holding only the built-in defaults.
func NewManager() *Manager {
	pm := &Manager{
		prompts: make(map[string]string),
		sources: make(map[string]string),
	}
	for key, value := range defaultPrompts {
		pm.prompts[key] = value
		pm.sources[key] = "builtin"
	}
	return pm
}

// NewManagerWithOverrides creates a manager with defaults plus project
// overrides from overrideDir. A missing directory is not an error.
func NewManagerWithOverrides(overrideDir string) (*Manager, error) {
	pm := NewManager()

	if overrideDir != "" {
		if _, err := os.Stat(overrideDir); err == nil {
			if err := pm.loadDirectory(overrideDir, "project"); err != nil {
				return nil, fmt.Errorf("failed to load project prompts: %w", err)
			}
		}
	}

	return pm, nil
}

// NewManagerFromMap creates a prompt manager from a map (useful for testing)
func NewManagerFromMap(prompts map[string]string) *Manager {
	sources := make(map[string]string)
	for key := range prompts {
		sources[key] = "test:map"
	}
	return &Manager{
		prompts: prompts,
		sources: sources,
	}
}

// loadDirectory loads all YAML files from a directory
func (pm *Manager) loadDirectory(dir, source string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		filePath := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(filePath)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", filePath, err)
		}

		var prompts map[string]string
		if err := yaml.Unmarshal(data, &prompts); err != nil {
			return fmt.Errorf("failed to parse %s: %w", filePath, err)
		}

		// Merge into main map (later loads override earlier)
		for key, value := range prompts {
			pm.prompts[key] = value
			pm.sources[key] = fmt.Sprintf("%s:%s", source, entry.Name())
		}
	}

	return nil
}

// Get returns a raw prompt by name
func (pm *Manager) Get(name string) (string, error) {
	prompt, ok := pm.prompts[name]
	if !ok {
		return "", fmt.Errorf("prompt '%s' not found (available: %v)", name, pm.getAvailableNames())
	}
	return prompt, nil
}

// Render renders a prompt template with the given variables
func (pm *Manager) Render(name string, vars map[string]interface{}) (string, error) {
	promptTemplate, err := pm.Get(name)
	if err != nil {
		return "", err
	}

	tmpl, err := textTemplate.New(name).Option("missingkey=error").Parse(promptTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse template '%s': %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return "", fmt.Errorf("failed to execute template '%s': %w", name, err)
	}

	return buf.String(), nil
}

// RenderDomain renders the system and user prompts for a domain
// (tests, docs, design), injecting the style text for the given style.
func (pm *Manager) RenderDomain(domain, style string, vars map[string]interface{}) (*PromptTemplate, error) {
	merged := make(map[string]interface{}, len(vars)+1)
	for k, v := range vars {
		merged[k] = v
	}
	merged["style_text"] = StyleText(style)

	systemPrompt, err := pm.Render(domain+"_system_prompt", merged)
	if err != nil {
		return nil, err
	}
	userPrompt, err := pm.Render(domain+"_user_prompt", merged)
	if err != nil {
		return nil, err
	}

	return &PromptTemplate{
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
	}, nil
}

// HasPrompt checks if a prompt exists
func (pm *Manager) HasPrompt(name string) bool {
	_, ok := pm.prompts[name]
	return ok
}

// GetSource returns which file provided a prompt (for debugging)
func (pm *Manager) GetSource(name string) string {
	if source, ok := pm.sources[name]; ok {
		return source
	}
	return "unknown"
}

// getAvailableNames returns a list of available prompt names
func (pm *Manager) getAvailableNames() []string {
	names := make([]string, 0, len(pm.prompts))
	for name := range pm.prompts {
		names = append(names, name)
	}
	return names
}

var styleTexts = map[string]string{
	"concise":      "Be concise (3-7 bullets), avoid fluff.",
	"thorough":     "Provide a detailed, structured answer with examples if needed.",
	"step-by-step": "Explain step-by-step, then present the final result.",
}

// StyleText returns the instruction line for a prompt style, defaulting to
// thorough for unknown styles.
func StyleText(style string) string {
	if text, ok := styleTexts[style]; ok {
		return text
	}
	return styleTexts["thorough"]
}

// Truncate caps text at maxChars characters, reserving room for the
// truncation marker. A non-positive maxChars disables the cap.
func Truncate(text string, maxChars int) string {
	if maxChars <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	cut := maxChars - 12
	if cut < 0 {
		cut = 0
	}
	return strings.TrimRight(string(runes[:cut]), " \t\n") + TruncationMarker
}
