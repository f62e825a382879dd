// Package knowledge reads the on-disk knowledge base used for prompt
// construction: a directory of general Q&A context and a directory of
// per-module summary fixtures.
package knowledge

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"bezbot/internal/config"
	"bezbot/internal/domain"
)

// FileContextProvider implements domain.ContextProvider over plain text files.
type FileContextProvider struct {
	baseDir    string
	summaryDir string
}

// NewFileContextProvider creates a new FileContextProvider.
func NewFileContextProvider(cfg config.KnowledgeConfig) *FileContextProvider {
	return &FileContextProvider{
		baseDir:    cfg.BaseDir,
		summaryDir: cfg.SummaryDir,
	}
}

// GetContext concatenates every .txt file of the knowledge base in file-name
// order, separated by blank lines.
func (p *FileContextProvider) GetContext(ctx context.Context) (string, error) {
	entries, err := os.ReadDir(p.baseDir)
	if err != nil {
		return "", domain.NewInternalError("failed to read knowledge base directory", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		content, err := os.ReadFile(filepath.Join(p.baseDir, name))
		if err != nil {
			return "", domain.NewInternalError(fmt.Sprintf("failed to read knowledge file %s", name), err)
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.Write(content)
	}
	return b.String(), nil
}

// GetContextByModule returns the summary fixture for a module id.
//
// Matching rule: a file matches iff its name is "<id>_<rest>", so module "3"
// matches 3_intro.txt but never 30_advanced.txt. With several matches the
// lexicographically smallest name wins, keeping lookups deterministic.
func (p *FileContextProvider) GetContextByModule(ctx context.Context, id string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", domain.NewInvalidInputError("module id is required")
	}

	entries, err := os.ReadDir(p.summaryDir)
	if err != nil {
		return "", domain.NewInternalError("failed to read module summary directory", err)
	}

	prefix := id + "_"
	var matches []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasPrefix(entry.Name(), prefix) {
			matches = append(matches, entry.Name())
		}
	}
	if len(matches) == 0 {
		return "", domain.NewNotFoundError(fmt.Sprintf("no context found for module %q", id))
	}
	sort.Strings(matches)

	content, err := os.ReadFile(filepath.Join(p.summaryDir, matches[0]))
	if err != nil {
		return "", domain.NewInternalError(fmt.Sprintf("failed to read module context %s", matches[0]), err)
	}
	return string(content), nil
}

var _ domain.ContextProvider = (*FileContextProvider)(nil)
