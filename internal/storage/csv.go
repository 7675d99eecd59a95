package storage

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"

	"xmind2zentao/internal/config"
	"xmind2zentao/internal/domain"
)

// Save writes the header and rows to path. The rows are encoded in full
// before any existing file is removed, so an encoding failure leaves the
// previous file in place. Remove-then-write itself is not atomic.
func (s *CSVStorage) Save(path string, rows []domain.Row) error {
	data, err := s.encode(rows)
	if err != nil {
		return err
	}

	if _, statErr := os.Stat(path); statErr == nil {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove existing output: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// encode renders the header and rows in the configured encoding. Each record
// ends with domain.RecordTerminator while line breaks inside quoted fields
// are kept as they are.
func (s *CSVStorage) encode(rows []domain.Row) ([]byte, error) {
	var buf bytes.Buffer
	out, err := s.encoder(&buf)
	if err != nil {
		return nil, err
	}

	var record bytes.Buffer
	w := csv.NewWriter(&record)
	for _, rec := range domain.Records(rows) {
		record.Reset()
		if err := w.Write(rec); err != nil {
			return nil, fmt.Errorf("write rows: %w", err)
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, fmt.Errorf("write rows: %w", err)
		}

		line := bytes.TrimSuffix(record.Bytes(), []byte("\n"))
		if _, err := out.Write(line); err != nil {
			return nil, fmt.Errorf("encode rows: %w", err)
		}
		if _, err := io.WriteString(out, domain.RecordTerminator); err != nil {
			return nil, fmt.Errorf("encode rows: %w", err)
		}
	}
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("encode rows: %w", err)
	}
	return buf.Bytes(), nil
}

// Load reads an import file written by Save.
func (s *CSVStorage) Load(path string) ([]domain.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open import file: %w", err)
	}
	defer f.Close()

	in, err := s.decoder(f)
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(in)
	r.FieldsPerRecord = domain.ColumnCount
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("import file has no header")
	}

	rows := make([]domain.Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, domain.Row{
			Module:          rec[0],
			Title:           rec[1],
			Preconditions:   rec[2],
			Steps:           rec[3],
			ExpectedResults: rec[4],
			Keywords:        rec[5],
			Priority:        rec[6],
			CaseType:        rec[7],
			ApplyPhase:      rec[8],
		})
	}
	return rows, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// encoder wraps w so bytes are written in the configured encoding.
// Close flushes the encoder but leaves w open.
func (s *CSVStorage) encoder(w io.Writer) (io.WriteCloser, error) {
	switch s.cfg.NormalizedEncoding() {
	case config.EncodingUTF8:
		return nopWriteCloser{w}, nil
	case config.EncodingGBK:
		return transform.NewWriter(w, simplifiedchinese.GBK.NewEncoder()), nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", s.cfg.Encoding)
	}
}

func (s *CSVStorage) decoder(r io.Reader) (io.Reader, error) {
	switch s.cfg.NormalizedEncoding() {
	case config.EncodingUTF8:
		return r, nil
	case config.EncodingGBK:
		return transform.NewReader(r, simplifiedchinese.GBK.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", s.cfg.Encoding)
	}
}
