package config

import (
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// A Loader loads configuration documents from .yaml files on disk.
//
// The zero value is ready to load files.
type Loader struct{}

// Load loads a configuration document from the given path.
//
// If path is a directory, every .yaml/.yml file directly inside it or in a
// sub directory is loaded and the results are merged into one document.
// Files are visited in a stable lexical order. Empty files are skipped.
//
// Unknown fields in a document are an error; a mistyped attribute name must
// not silently resolve to a zero value.
func (l *Loader) Load(path string) (*Document, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(err, "stat config path")
	}

	if !stat.IsDir() {
		return l.loadFile(path)
	}

	var files []string
	err = filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if !isConfigFile(p) {
			return nil
		}
		files = append(files, p)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "walk config dir")
	}
	sort.Strings(files)

	doc := &Document{}
	for _, f := range files {
		d, err := l.loadFile(f)
		if err != nil {
			return nil, err
		}
		doc.Merge(d)
	}
	return doc, nil
}

func (l *Loader) loadFile(filename string) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open config file")
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	doc := &Document{}
	if err := dec.Decode(doc); err != nil {
		if err == io.EOF {
			// Empty file.
			return &Document{}, nil
		}
		return nil, errors.Wrapf(err, "decode %s", filename)
	}
	return doc, nil
}

func isConfigFile(filename string) bool {
	ext := filepath.Ext(filename)
	return ext == ".yaml" || ext == ".yml"
}
