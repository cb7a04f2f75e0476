// Package msgcat holds the templates for the verifier's status lines.
//
// The key set is fixed: the embedded messages.en.yaml must define every key, and an
// override directory may only replace existing keys. New parses every template.
package msgcat

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	yaml "gopkg.in/yaml.v3"
)

// Status line keys.
const (
	KeyScanSearching = "scan.searching"
	KeyScanFound     = "scan.found"
	KeyScanFailed    = "scan.failed"
	KeyScanNotFound  = "scan.not_found"
	KeyScanDone      = "scan.done"
	KeyVerifyFile    = "verify.file"
	KeyVerifyIllegal = "verify.illegal"
	KeyVerifyFailed  = "verify.failed"
	KeyVerifyOK      = "verify.ok"
	KeyUnreadable    = "file.unreadable"
)

var knownKeys = []string{
	KeyScanSearching, KeyScanFound, KeyScanFailed, KeyScanNotFound, KeyScanDone,
	KeyVerifyFile, KeyVerifyIllegal, KeyVerifyFailed, KeyVerifyOK,
	KeyUnreadable,
}

const embeddedName = "messages.en.yaml"

//go:embed messages.en.yaml
var defaultFiles embed.FS

// Catalog is immutable after New and safe for concurrent Render calls.
type Catalog struct {
	templates map[string]*template.Template
}

// New loads the embedded messages, applies overrides from overrideDir when it is set,
// and parses every template.
func New(overrideDir string) (*Catalog, error) {
	raw, err := fs.ReadFile(defaultFiles, embeddedName)
	if err != nil {
		return nil, fmt.Errorf("read embedded messages: %w", err)
	}
	texts, err := decodeMessages(embeddedName, raw)
	if err != nil {
		return nil, err
	}

	if dir := strings.TrimSpace(overrideDir); dir != "" {
		overrides, err := readOverrides(dir)
		if err != nil {
			return nil, err
		}
		for k, m := range overrides {
			texts[k] = m
		}
	}

	return compile(texts)
}

// message is one template text and the file it came from, for error reporting.
type message struct {
	text   string
	source string
}

func compile(texts map[string]message) (*Catalog, error) {
	known := make(map[string]bool, len(knownKeys))
	for _, k := range knownKeys {
		known[k] = true
	}
	for k, m := range texts {
		if !known[k] {
			return nil, fmt.Errorf("%s: unknown message key %q", m.source, k)
		}
	}

	c := &Catalog{templates: make(map[string]*template.Template, len(knownKeys))}
	for _, k := range knownKeys {
		m, ok := texts[k]
		if !ok || strings.TrimSpace(m.text) == "" {
			return nil, fmt.Errorf("message %q is not defined", k)
		}
		t, err := template.New(k).Option("missingkey=error").Parse(m.text)
		if err != nil {
			return nil, fmt.Errorf("%s: parse %q: %w", m.source, k, err)
		}
		c.templates[k] = t
	}
	return c, nil
}

// readOverrides reads every *.yaml / *.yml file in dir in name order.
// The same key in two files is an error; there is no precedence between overrides.
func readOverrides(dir string) (map[string]message, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read messages dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	out := make(map[string]message)
	for _, name := range names {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		msgs, err := decodeMessages(name, b)
		if err != nil {
			return nil, err
		}
		for k, m := range msgs {
			if prev, ok := out[k]; ok {
				return nil, fmt.Errorf("duplicate override key %q in %s and %s", k, prev.source, name)
			}
			out[k] = m
		}
	}
	return out, nil
}

// decodeMessages flattens a nested YAML mapping of strings into dot-keys.
func decodeMessages(source string, b []byte) (map[string]message, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(b, &root); err != nil {
		return nil, fmt.Errorf("parse %s: %w", source, err)
	}
	out := make(map[string]message)
	if len(root.Content) == 0 {
		return out, nil
	}
	if err := walk(root.Content[0], "", source, out); err != nil {
		return nil, err
	}
	return out, nil
}

func walk(n *yaml.Node, prefix, source string, out map[string]message) error {
	switch n.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			if prefix != "" {
				key = prefix + "." + key
			}
			if err := walk(n.Content[i+1], key, source, out); err != nil {
				return err
			}
		}
		return nil
	case yaml.ScalarNode:
		if prefix == "" {
			return fmt.Errorf("%s: top level must be a mapping", source)
		}
		if tag := n.ShortTag(); tag != "!!str" {
			return fmt.Errorf("%s:%d: %s must be a string, got %s", source, n.Line, prefix, tag)
		}
		out[prefix] = message{text: n.Value, source: source}
		return nil
	default:
		return fmt.Errorf("%s:%d: unsupported value at %q", source, n.Line, prefix)
	}
}

// Render executes the template stored under key with data.
func (c *Catalog) Render(key string, data any) (string, error) {
	t, ok := c.templates[key]
	if !ok {
		return "", fmt.Errorf("template not found: %s", key)
	}
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
