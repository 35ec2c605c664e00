package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overlay errors.
var (
	ErrNilMergeTarget    = errors.New("nil target config")
	ErrOverlayNotMapping = errors.New("overlay is not a YAML mapping")
)

// sectionDecoder decodes one top-level YAML value into its Config section.
type sectionDecoder func(cfg *Config, node *yaml.Node) error

// sectionDecoders maps top-level config keys to their decoders. Each decoder
// fills a fresh zero value, so sub-keys missing from the overlay are reset
// rather than inherited. Keys not listed here are ignored.
//
//nolint:gochecknoglobals // Read-only dispatch table.
var sectionDecoders = map[string]sectionDecoder{
	"schema_version": func(cfg *Config, node *yaml.Node) error {
		return replaceSection(node, &cfg.SchemaVersion)
	},
	"pagination": func(cfg *Config, node *yaml.Node) error {
		return replaceSection(node, &cfg.Pagination)
	},
	"output": func(cfg *Config, node *yaml.Node) error {
		return replaceSection(node, &cfg.Output)
	},
	"logging": func(cfg *Config, node *yaml.Node) error {
		return replaceSection(node, &cfg.Logging)
	},
}

// replaceSection decodes node into a zero T and stores it in dst only when
// decoding succeeds.
func replaceSection[T any](node *yaml.Node, dst *T) error {
	var fresh T
	if err := node.Decode(&fresh); err != nil {
		return err
	}
	*dst = fresh
	return nil
}

// ShallowMergeYAML applies the top-level sections found in the YAML file at
// overlayPath onto target. A section present in the overlay replaces the
// whole section in target; absent sections are left as they are. Empty and
// comment-only files change nothing.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return ErrNilMergeTarget
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	var doc yaml.Node
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil
		}
		root = root.Content[0]
	}
	switch root.Kind {
	case 0:
		return nil
	case yaml.MappingNode:
	default:
		return fmt.Errorf("%w: %s", ErrOverlayNotMapping, overlayPath)
	}

	// Mapping content alternates key and value nodes.
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i].Value, root.Content[i+1]
		decode, ok := sectionDecoders[key]
		if !ok {
			continue
		}
		if err = decode(target, value); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, err)
		}
	}

	return nil
}
