package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"chatsearch/internal/dataset"
)

// CSV files holding the raw project data
const (
	FileProjects       = "project.csv"
	FileAddresses      = "ProjectAddress.csv"
	FileConfigurations = "ProjectConfiguration.csv"
	FileVariants       = "ProjectConfigurationVariant.csv"
)

// CSVRepository reads the raw project tables from a directory of CSV exports
type CSVRepository struct {
	dir string
}

// NewCSVRepository creates a repository rooted at dir
func NewCSVRepository(dir string) *CSVRepository {
	return &CSVRepository{dir: dir}
}

// LoadTables reads all four files. Only the projects file is required.
func (r *CSVRepository) LoadTables(_ context.Context) (dataset.Tables, error) {
	var tables dataset.Tables
	var err error

	if tables.Projects, err = r.loadFile(FileProjects); err != nil {
		return tables, err
	}
	if tables.Projects == nil {
		return tables, fmt.Errorf("%s: %w", filepath.Join(r.dir, FileProjects), dataset.ErrMissingTable)
	}
	if tables.Addresses, err = r.loadFile(FileAddresses); err != nil {
		return tables, err
	}
	if tables.Configurations, err = r.loadFile(FileConfigurations); err != nil {
		return tables, err
	}
	if tables.Variants, err = r.loadFile(FileVariants); err != nil {
		return tables, err
	}
	return tables, nil
}

// loadFile returns nil, nil when the file does not exist
func (r *CSVRepository) loadFile(name string) (*dataset.Table, error) {
	path := filepath.Join(r.dir, name)
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return ReadCSV(name, f)
}

// ReadCSV parses a CSV stream whose first record is the header
func ReadCSV(name string, r io.Reader) (*dataset.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return dataset.NewTable(name, nil, nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s header: %w", name, err)
	}
	if len(header) > 0 {
		header[0] = trimBOM(header[0])
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return dataset.NewTable(name, header, rows), nil
}

func trimBOM(s string) string {
	return strings.TrimPrefix(s, "\ufeff")
}
