package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is read from the working directory when no path is given.
const DefaultFile = ".bulletin.yaml"

// DefaultInterestKeywords are the vendors/products shown highlighted and
// expanded when their key contains one of these.
var DefaultInterestKeywords = []string{
	"apple", "ios", "microsoft", "windows",
	"google", "chrome", "mozilla", "firefox",
	"adobe", "symantec",
	"dell", "epson", "acer", "asus",
	"ssh", "nmap", "wireshark", "filezilla", "7zip",
	"notepad++", "notepad2", "freecommander", "obs",
	"reaper", "zoom", "musescore", "shotcut",
}

type Config struct {
	InterestKeywords []string
}

// FileConfig is the on-disk YAML shape:
//
//	interest_keywords: [apple, zoom]   # replaces the default list
//	extra_keywords: [fortinet]         # appended to the list in effect
type FileConfig struct {
	InterestKeywords *[]string `yaml:"interest_keywords"`
	ExtraKeywords    []string  `yaml:"extra_keywords"`
}

func Default() Config {
	return Config{InterestKeywords: normalizeKeywords(DefaultInterestKeywords)}
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}

// Load returns the defaults merged with the config file at path. An empty
// path means DefaultFile, which may be absent.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	fc, err := LoadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	return cfg.Merge(fc), nil
}

// Merge applies fc on top of c.
func (c Config) Merge(fc FileConfig) Config {
	keywords := c.InterestKeywords
	if fc.InterestKeywords != nil {
		keywords = *fc.InterestKeywords
	}
	keywords = append(append([]string(nil), keywords...), fc.ExtraKeywords...)
	c.InterestKeywords = normalizeKeywords(keywords)
	return c
}

func normalizeKeywords(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, kw := range in {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}
	return out
}
