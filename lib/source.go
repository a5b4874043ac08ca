package lib

import (
	"os"
	"path"
	"sort"
	"strings"
)

const SourceExtension = ".fern"

// SourceFile is one loaded and tokenized source file.
type SourceFile struct {
	Name   string
	Text   string
	Tokens []TokenRecord
}

func ReadSourceFromFile(filePath string) (SourceFile, error) {
	bytes, err := os.ReadFile(filePath)
	if err != nil {
		return SourceFile{}, err
	}

	src := SourceFile{
		Name: sourceNameFromPath(filePath),
		Text: string(bytes),
	}

	tokens, err := Tokenize(src.Text)
	if err != nil {
		return SourceFile{}, err
	}
	src.Tokens = tokens
	return src, nil
}

// ReadSourcesFromDir tokenizes every source file directly under dir, in
// lexicographic name order. The first file that fails to tokenize aborts the
// whole read.
func ReadSourcesFromDir(dir string) ([]SourceFile, error) {
	names, err := ListSourceFiles(dir)
	if err != nil {
		return nil, err
	}

	sources := []SourceFile{}
	for _, name := range names {
		src, err := ReadSourceFromFile(path.Join(dir, name))
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, nil
}

// ListSourceFiles returns the names of the source files directly under dir,
// sorted lexicographically.
func ListSourceFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), SourceExtension) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

func sourceNameFromPath(filePath string) string {
	return strings.TrimSuffix(path.Base(filePath), SourceExtension)
}
