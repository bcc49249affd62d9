package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name at the project root.
const FileName = "spendview.yaml"

// Config represents the top-level spendview.yaml configuration.
type Config struct {
	History   HistoryConfig   `yaml:"history"`
	Transfers TransfersConfig `yaml:"transfers"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Git       GitConfig       `yaml:"git"`
}

// HistoryConfig names the persisted summary tables.
type HistoryConfig struct {
	SpendingFile       string `yaml:"spending_file"`
	IncomeExpensesFile string `yaml:"income_expenses_file"`
}

// TransfersConfig lists description substrings marking internal transfers.
// Matching transactions are money moving between the user's own accounts and
// are excluded from every total.
type TransfersConfig struct {
	Markers []string `yaml:"markers"`
}

// DashboardConfig controls the local chart dashboard.
type DashboardConfig struct {
	Addr        string `yaml:"addr"`
	OpenBrowser bool   `yaml:"open_browser"`
}

// GitConfig controls git versioning of the history tables.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a spendview.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	cfg := &Config{
		Dashboard: DashboardConfig{
			OpenBrowser: true,
		},
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "spendview",
			AuthorEmail: "spendview@localhost",
		},
	}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.History.SpendingFile == "" {
		c.History.SpendingFile = "monthly_spending.csv"
	}
	if c.History.IncomeExpensesFile == "" {
		c.History.IncomeExpensesFile = "income_vs_expenses.csv"
	}
	if c.Dashboard.Addr == "" {
		c.Dashboard.Addr = "localhost:8050"
	}
}
