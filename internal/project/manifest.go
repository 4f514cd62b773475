// Package project loads the taihe.toml project manifest.
//
//	[build]
//	sources = ["idl"]
//	output = "generated"
//	jobs = 4
//
//	[generate]
//	author = true
//	sts = true
//	keep-name = false
//
// Relative paths are resolved against the directory holding the manifest.
package project

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest is a decoded taihe.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

type Config struct {
	Build    BuildConfig    `toml:"build"`
	Generate GenerateConfig `toml:"generate"`
}

type BuildConfig struct {
	Sources []string `toml:"sources"`
	Output  string   `toml:"output,omitempty"`
	Jobs    int      `toml:"jobs,omitempty"`
}

type GenerateConfig struct {
	Author   bool `toml:"author"`
	STS      bool `toml:"sts"`
	ANI      bool `toml:"ani"`
	C        bool `toml:"c"`
	CPP      bool `toml:"cpp"`
	Dump     bool `toml:"dump"`
	KeepName bool `toml:"keep-name"`
	Parallel bool `toml:"parallel"`
}

// Load decodes the manifest at path. Unknown keys are rejected so a typo
// does not silently disable a generator.
func Load(path string) (*Manifest, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if cfg.Build.Jobs < 0 {
		return nil, fmt.Errorf("%s: [build].jobs must not be negative", path)
	}
	for i, src := range cfg.Build.Sources {
		if strings.TrimSpace(src) == "" {
			return nil, fmt.Errorf("%s: [build].sources[%d] is empty", path, i)
		}
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, nil
}

// Discover finds and loads the manifest above startDir. ok is false when
// there is none.
func Discover(startDir string) (m *Manifest, ok bool, err error) {
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	m, err = Load(path)
	return m, true, err
}

// Sources returns the source directories resolved against Root.
func (m *Manifest) Sources() []string {
	out := make([]string, len(m.Config.Build.Sources))
	for i, s := range m.Config.Build.Sources {
		out[i] = m.resolve(s)
	}
	return out
}

// Output returns the output directory resolved against Root, or "".
func (m *Manifest) Output() string {
	if m.Config.Build.Output == "" {
		return ""
	}
	return m.resolve(m.Config.Build.Output)
}

func (m *Manifest) resolve(p string) string {
	p = filepath.FromSlash(p)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(m.Root, p)
}

// Init writes a starter manifest into dir. It refuses to overwrite one.
func Init(dir string) (string, error) {
	path := filepath.Join(dir, ManifestName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("project already initialized: %s exists", path)
	}
	cfg := Config{
		Build:    BuildConfig{Sources: []string{"idl"}, Output: "generated"},
		Generate: GenerateConfig{C: true, CPP: true, STS: true},
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return "", fmt.Errorf("%s: failed to encode TOML: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
