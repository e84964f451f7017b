// Package knowledge holds the evidence corpus and its retriever. The
// corpus is loaded from disk, indexed in memory, and rebuilt atomically
// whenever a reload event arrives.
package knowledge

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"op-mental-be/pkg/vecindex"
)

// Document is one entry of the knowledge corpus.
type Document struct {
	Id     uuid.UUID `yaml:"-"`
	Title  string    `yaml:"title"`
	Text   string    `yaml:"text"`
	Domain string    `yaml:"domain"`
}

// Source loads the full corpus. Load must return the complete set every
// time; the retriever swaps snapshots wholesale rather than patching.
type Source interface {
	Load() ([]Document, error)
}

// DirSource reads every .yaml/.yml file in a directory. Each file holds
// a `documents:` list.
type DirSource struct {
	Dir string
}

type corpusFile struct {
	Documents []Document `yaml:"documents"`
}

func NewDirSource(dir string) *DirSource {
	if dir == "" {
		dir = "knowledge_corpus"
	}
	return &DirSource{Dir: dir}
}

func (s *DirSource) Load() ([]Document, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("read corpus dir: %w", err)
	}

	var docs []Document
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		raw, err := os.ReadFile(filepath.Join(s.Dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read corpus file %s: %w", e.Name(), err)
		}

		var file corpusFile
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("parse corpus file %s: %w", e.Name(), err)
		}

		for _, doc := range file.Documents {
			if strings.TrimSpace(doc.Text) == "" {
				continue
			}
			doc.Id = uuid.New()
			if doc.Domain == "" {
				doc.Domain = vecindex.DomainAll
			}
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

// StaticSource serves a fixed in-memory corpus. Used in tests and as a
// fallback when no corpus directory is present.
type StaticSource struct {
	Documents []Document
}

func (s *StaticSource) Load() ([]Document, error) {
	return s.Documents, nil
}
