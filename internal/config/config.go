package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"sheetDelta/internal/delta"
	"sheetDelta/internal/excel"
)

// DefaultPath is where the CLI looks for its config file
const DefaultPath = "configs/config.toml"

type Config struct {
	Compare  CompareConfig   `toml:"compare"`
	Report   ReportConfig    `toml:"report"`
	Picker   PickerConfig    `toml:"picker"`
	Log      LogConfig       `toml:"log"`
	Variants []VariantConfig `toml:"variants"`

	// Created is set when LoadConfig wrote the default file
	Created bool `toml:"-"`
}

type CompareConfig struct {
	Variant string `toml:"variant"`
}

type ReportConfig struct {
	SubjectPrefix   string   `toml:"subject_prefix"`
	Recipient       string   `toml:"recipient"`
	OutputDirectory string   `toml:"output_directory"`
	Dispatch        []string `toml:"dispatch"`
}

type PickerConfig struct {
	Directory string `toml:"directory"`
}

type LogConfig struct {
	Directory string `toml:"directory"`
	Level     string `toml:"level"`
}

// VariantConfig is one column pair layout. Columns are spreadsheet letters.
type VariantConfig struct {
	Name       string        `toml:"name"`
	Key        string        `toml:"key"`
	FirstRow   int           `toml:"first_row"`
	MinColumns int           `toml:"min_columns,omitempty"`
	MinRows    int           `toml:"min_rows,omitempty"`
	ShowRow    bool          `toml:"show_row"`
	Fields     []FieldConfig `toml:"fields"`
}

type FieldConfig struct {
	Label     string   `toml:"label"`
	Primary   []string `toml:"primary"`
	Secondary []string `toml:"secondary"`
}

// Default returns the configuration written when no config file exists
func Default() *Config {
	return &Config{
		Compare: CompareConfig{
			Variant: "full",
		},
		Report: ReportConfig{
			SubjectPrefix:   "Deltas found in",
			Recipient:       "",
			OutputDirectory: "data/output",
			Dispatch:        []string{"eml", "terminal"},
		},
		Picker: PickerConfig{
			Directory: "data/input",
		},
		Log: LogConfig{
			Directory: "logs",
			Level:     "info",
		},
		Variants: DefaultVariants(),
	}
}

// DefaultVariants returns the three plan layouts: the full field set, the
// step/operation pair, and the operation value with its row number.
func DefaultVariants() []VariantConfig {
	return []VariantConfig{
		{
			Name:     "full",
			Key:      "Operation",
			FirstRow: delta.DefaultFirstRow,
			Fields: []FieldConfig{
				{Label: "Seq", Primary: []string{"A"}, Secondary: []string{"K"}},
				{Label: "Step", Primary: []string{"B", "C"}, Secondary: []string{"L", "M"}},
				{Label: "Operation", Primary: []string{"D"}, Secondary: []string{"T"}},
				{Label: "Module", Primary: []string{"E"}, Secondary: []string{"N"}},
				{Label: "Recipe", Primary: []string{"F"}, Secondary: []string{"O"}},
				{Label: "Equipment", Primary: []string{"G"}, Secondary: []string{"P"}},
				{Label: "Parameter", Primary: []string{"H"}, Secondary: []string{"Q"}},
				{Label: "Value", Primary: []string{"I", "J"}, Secondary: []string{"R", "S"}},
			},
		},
		{
			Name:     "pair",
			Key:      "Operation",
			FirstRow: delta.DefaultFirstRow,
			Fields: []FieldConfig{
				{Label: "Step", Primary: []string{"B"}, Secondary: []string{"L"}},
				{Label: "Operation", Primary: []string{"D"}, Secondary: []string{"T"}},
			},
		},
		{
			Name:     "value",
			Key:      "Operation",
			FirstRow: delta.DefaultFirstRow,
			ShowRow:  true,
			Fields: []FieldConfig{
				{Label: "Operation", Primary: []string{"D"}, Secondary: []string{"T"}},
			},
		},
	}
}

// LoadConfig loads configuration from the specified config file path,
// writing the defaults there first when the file does not exist.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		defaultConfig := Default()
		if err := SaveConfig(configPath, defaultConfig); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}

		defaultConfig.Created = true
		return defaultConfig, nil
	}

	var config Config
	if _, err := toml.DecodeFile(configPath, &config); err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}
	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	d := Default()
	if c.Compare.Variant == "" {
		c.Compare.Variant = d.Compare.Variant
	}
	if c.Report.SubjectPrefix == "" {
		c.Report.SubjectPrefix = d.Report.SubjectPrefix
	}
	if c.Report.OutputDirectory == "" {
		c.Report.OutputDirectory = d.Report.OutputDirectory
	}
	if len(c.Report.Dispatch) == 0 {
		c.Report.Dispatch = d.Report.Dispatch
	}
	if c.Picker.Directory == "" {
		c.Picker.Directory = d.Picker.Directory
	}
	if c.Log.Directory == "" {
		c.Log.Directory = d.Log.Directory
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if len(c.Variants) == 0 {
		c.Variants = d.Variants
	}
}

// SaveConfig saves configuration to the specified config file path
func SaveConfig(configPath string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// VariantNames lists the configured variants in file order
func (c *Config) VariantNames() []string {
	names := make([]string, len(c.Variants))
	for i, v := range c.Variants {
		names[i] = v.Name
	}
	return names
}

// Spec returns the normalized column pair spec of a variant. An empty name
// selects the configured default variant.
func (c *Config) Spec(name string) (delta.Spec, error) {
	if name == "" {
		name = c.Compare.Variant
	}
	for _, v := range c.Variants {
		if strings.EqualFold(v.Name, name) {
			return v.Spec()
		}
	}
	return delta.Spec{}, fmt.Errorf("unknown variant %q (available: %s)", name, strings.Join(c.VariantNames(), ", "))
}

// Spec converts the variant's column letters into a delta.Spec
func (v VariantConfig) Spec() (delta.Spec, error) {
	spec := delta.Spec{
		Name:       v.Name,
		Key:        v.Key,
		FirstRow:   v.FirstRow,
		MinColumns: v.MinColumns,
		MinRows:    v.MinRows,
		ShowRow:    v.ShowRow,
		Fields:     make([]delta.Field, 0, len(v.Fields)),
	}

	for _, f := range v.Fields {
		primary, err := columnNumbers(f.Primary)
		if err != nil {
			return delta.Spec{}, fmt.Errorf("variant %q field %q: %w", v.Name, f.Label, err)
		}
		secondary, err := columnNumbers(f.Secondary)
		if err != nil {
			return delta.Spec{}, fmt.Errorf("variant %q field %q: %w", v.Name, f.Label, err)
		}
		spec.Fields = append(spec.Fields, delta.Field{
			Label:     f.Label,
			Primary:   primary,
			Secondary: secondary,
		})
	}

	return spec.Normalize()
}

func columnNumbers(letters []string) ([]int, error) {
	cols := make([]int, 0, len(letters))
	for _, l := range letters {
		n, err := excel.ColumnNumber(l)
		if err != nil {
			return nil, fmt.Errorf("invalid column %q: %w", l, err)
		}
		cols = append(cols, n)
	}
	return cols, nil
}
