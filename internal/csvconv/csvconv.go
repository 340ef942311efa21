// Package csvconv converts CSV tables into JSON or YAML documents.
//
// Each data row becomes an object whose keys are the column names, in column
// order.
package csvconv

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/errors"
)

// Format selects the output document format.
type Format int

const (
	// FormatJSON renders a pretty-printed JSON array.
	FormatJSON Format = iota
	// FormatYAML renders a YAML sequence.
	FormatYAML
)

// ParseFormat converts a format name into a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case constants.CSVFormatJSON:
		return FormatJSON, nil
	case constants.CSVFormatYAML:
		return FormatYAML, nil
	default:
		return 0, errors.Wrapf(errors.ErrInvalidCSVFormat, "%q (expected %s or %s)",
			name, constants.CSVFormatJSON, constants.CSVFormatYAML)
	}
}

// String returns the format name, which is also the default file extension.
func (f Format) String() string {
	if f == FormatYAML {
		return constants.CSVFormatYAML
	}
	return constants.CSVFormatJSON
}

// DefaultOutputPath returns output.json or output.yaml.
func (f Format) DefaultOutputPath() string {
	return constants.DefaultCSVOutputBase + "." + f.String()
}

// ParseDelimiter checks that s is exactly one character usable as a CSV
// field separator.
func ParseDelimiter(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, errors.Wrapf(errors.ErrInvalidDelimiter, "%q must be a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, errors.Wrapf(errors.ErrInvalidDelimiter, "%q cannot separate fields", s)
	}
	return r, nil
}

// Options controls how CSV input is read.
type Options struct {
	// Delimiter separates fields. Zero means a comma.
	Delimiter rune
	// Header treats the first row as column names.
	Header bool
	// Columns names the columns when Header is false. Columns beyond this
	// list are named column_N.
	Columns []string
}

// Record is one row as an ordered set of column/value pairs.
type Record struct {
	Keys   []string
	Values []string
}

// Get returns the value of column key.
func (r Record) Get(key string) (string, bool) {
	for i, k := range r.Keys {
		if k == key {
			return r.Values[i], true
		}
	}
	return "", false
}

// MarshalJSON renders the record as an object in column order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.Keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.Values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML renders the record as a mapping in column order.
func (r Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for i, k := range r.Keys {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: r.Values[i]},
		)
	}
	return node, nil
}

// Read parses CSV from r into records.
func Read(r io.Reader, opts Options) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}

	var header []string
	if opts.Header {
		row, err := reader.Read()
		if stderrors.Is(err, io.EOF) {
			return []Record{}, nil
		}
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCSVParse, "%v", err)
		}
		header = row
	}

	records := make([]Record, 0, 128)
	for {
		row, err := reader.Read()
		if stderrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCSVParse, "%v", err)
		}
		if !opts.Header {
			header = generatedColumns(opts.Columns, len(row))
		}
		records = append(records, zip(header, row))
	}
	return records, nil
}

// Render serializes records in format f.
func Render(records []Record, f Format) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}
	switch f {
	case FormatJSON:
		out, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "failed to render json")
		}
		return append(out, '\n'), nil
	case FormatYAML:
		out, err := yaml.Marshal(records)
		if err != nil {
			return nil, errors.Wrap(err, "failed to render yaml")
		}
		return out, nil
	default:
		return nil, errors.Wrapf(errors.ErrInvalidCSVFormat, "%d", int(f))
	}
}

// Convert reads CSV from r and renders it in format f.
func Convert(r io.Reader, opts Options, f Format) ([]byte, int, error) {
	records, err := Read(r, opts)
	if err != nil {
		return nil, 0, err
	}
	out, err := Render(records, f)
	if err != nil {
		return nil, 0, err
	}
	return out, len(records), nil
}

// zip pairs header names with row values, stopping at the shorter of the
// two. A repeated column name keeps its first position and its last value.
func zip(header, row []string) Record {
	n := min(len(header), len(row))
	rec := Record{Keys: make([]string, 0, n), Values: make([]string, 0, n)}
	seen := make(map[string]int, n)
	for i := range n {
		if at, ok := seen[header[i]]; ok {
			rec.Values[at] = row[i]
			continue
		}
		seen[header[i]] = len(rec.Keys)
		rec.Keys = append(rec.Keys, header[i])
		rec.Values = append(rec.Values, row[i])
	}
	return rec
}

func generatedColumns(named []string, n int) []string {
	cols := make([]string, n)
	for i := range cols {
		if i < len(named) && named[i] != "" {
			cols[i] = named[i]
			continue
		}
		cols[i] = fmt.Sprintf("%s%d", constants.GeneratedColumnPrefix, i+1)
	}
	return cols
}
