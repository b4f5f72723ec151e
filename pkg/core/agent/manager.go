// Package agent selects which LLM provider serves each task type, driven by
// a YAML config so the model mix can change without a rebuild.
package agent

import (
	"context"
	"fmt"
	"sort"

	"findash/pkg/core/llm"
)

// Config is loaded from config/models.yaml.
type Config struct {
	ActiveProvider string                 `yaml:"active_provider"`
	Agents         map[string]AgentConfig `yaml:"agents"`
}

// AgentConfig optionally overrides the provider for one task type.
type AgentConfig struct {
	Provider    string `yaml:"provider"`
	Model       string `yaml:"model"`
	Description string `yaml:"description"`
}

// Manager routes prompts to the configured provider.
type Manager struct {
	config    Config
	providers map[string]llm.Provider
}

// NewManager wires the known providers.
func NewManager(config Config) *Manager {
	return &Manager{
		config: config,
		providers: map[string]llm.Provider{
			"gemini":   &llm.GeminiProvider{},
			"deepseek": &llm.DeepSeekProvider{},
		},
	}
}

// GetProvider resolves the provider for a task type: per-agent override
// first, then the global active provider.
func (m *Manager) GetProvider(agentType string) (llm.Provider, error) {
	if agentConfig, ok := m.config.Agents[agentType]; ok && agentConfig.Provider != "" {
		if p, ok := m.providers[agentConfig.Provider]; ok {
			return p, nil
		}
		return nil, fmt.Errorf("unknown provider %q for agent %q", agentConfig.Provider, agentType)
	}
	if p, ok := m.providers[m.config.ActiveProvider]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("no provider configured for agent %q (active: %q)", agentType, m.config.ActiveProvider)
}

// ActiveProviderName reports the configured global provider, for diagnostics.
func (m *Manager) ActiveProviderName() string {
	return m.config.ActiveProvider
}

// SetActiveProvider switches the global provider at runtime.
func (m *Manager) SetActiveProvider(name string) error {
	if _, ok := m.providers[name]; !ok {
		return fmt.Errorf("unknown provider %q", name)
	}
	m.config.ActiveProvider = name
	return nil
}

// ProviderNames lists the registered providers, sorted.
func (m *Manager) ProviderNames() []string {
	names := make([]string, 0, len(m.providers))
	for name := range m.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExecutePrompt resolves the provider for the task type and runs the prompt.
// A per-agent model override is passed through in the options.
func (m *Manager) ExecutePrompt(ctx context.Context, agentType string, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	provider, err := m.GetProvider(agentType)
	if err != nil {
		return "", err
	}
	if agentConfig, ok := m.config.Agents[agentType]; ok && agentConfig.Model != "" {
		if options == nil {
			options = map[string]interface{}{}
		}
		if _, set := options["model"]; !set {
			options["model"] = agentConfig.Model
		}
	}
	return provider.GenerateResponse(ctx, prompt, systemPrompt, options)
}

// Register adds or replaces a provider, used by tests to inject fakes.
func (m *Manager) Register(name string, p llm.Provider) {
	m.providers[name] = p
}
