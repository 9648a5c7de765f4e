package config

import (
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

// sourcesDoc is the YAML document shape used by `upwatch sources
// export/import`.
type sourcesDoc struct {
	Sources []Source `yaml:"sources"`
}

// ExportSources writes the source list to w as YAML.
func ExportSources(sources []Source, w io.Writer) error {
	data, err := yaml.Marshal(sourcesDoc{Sources: sources})
	if err != nil {
		return fmt.Errorf("serialising sources: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// ImportSources parses a YAML source list previously written by
// ExportSources. Entries missing owner or repo are rejected.
func ImportSources(r io.Reader) ([]Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading sources: %w", err)
	}
	var doc sourcesDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing sources: %w", err)
	}
	for i, s := range doc.Sources {
		if s.Owner == "" || s.Repo == "" {
			return nil, fmt.Errorf("source %d: owner and repo are required", i)
		}
	}
	return doc.Sources, nil
}
