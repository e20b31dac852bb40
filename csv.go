package xlsxrows

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

var EncName = "utf-8"

func init() {
	EncName = os.Getenv("LANG")
	if i := strings.IndexByte(EncName, '.'); i >= 0 {
		EncName = strings.ToLower(EncName[i+1:])
	}
	if EncName == "" || EncName == "c" || EncName == "posix" {
		EncName = "utf-8"
	}
}

func GetEncoding(encName string) (encoding.Encoding, error) {
	encName = strings.ToLower(encName)
	if encName == "" || encName == "utf-8" || encName == "utf8" {
		return nil, nil
	}
	enc, err := htmlindex.Get(encName)
	if err != nil {
		err = fmt.Errorf("%q: %w", encName, err)
	}
	return enc, err
}

type csvReadCloser struct {
	*csv.Reader
	io.Closer
}

// OpenCsv opens fn ("" or "-" is stdin), decodes it from encName
// and sniffs the field separator from the first line.
func OpenCsv(fn, encName string) (csvReadCloser, error) {
	var enc encoding.Encoding
	if encName != "" {
		var err error
		if enc, err = GetEncoding(encName); err != nil {
			return csvReadCloser{}, err
		}
	}
	fh := os.Stdin
	if !(fn == "" || fn == "-") {
		var err error
		if fh, err = os.Open(fn); err != nil {
			return csvReadCloser{}, err
		}
	}
	r := io.ReadCloser(fh)
	if enc != nil {
		r = struct {
			io.Reader
			io.Closer
		}{enc.NewDecoder().Reader(r), r}
	}
	br := bufio.NewReaderSize(r, 1<<20)
	b, err := br.Peek(1024)
	if err != nil && len(b) == 0 {
		r.Close()
		return csvReadCloser{}, err
	}
	sep := rune(',')
	for _, r := range string(b) {
		if r == '"' || r == '_' || r == ' ' || unicode.IsLetter(r) || unicode.IsNumber(r) {
			continue
		}
		sep = r
		break
	}

	cr := csv.NewReader(br)
	cr.ReuseRecord = true
	cr.FieldsPerRecord = -1
	cr.Comma = sep
	return csvReadCloser{cr, r}, nil
}

// CSVSource reads records from a csv.Reader whose first row is the header.
type CSVSource struct {
	cr     *csv.Reader
	header []string
}

// NewCSVSource returns a Source over cr.
func NewCSVSource(cr *csv.Reader) *CSVSource { return &CSVSource{cr: cr} }

// Header reads the header row if it has not been read yet.
func (cs *CSVSource) Header() ([]string, error) {
	if cs.header != nil {
		return cs.header, nil
	}
	row, err := cs.cr.Read()
	if err != nil {
		return nil, err
	}
	cs.header = append(make([]string, 0, len(row)), row...)
	return cs.header, nil
}

// ReadValues returns the next data row as positional values.
// The returned slice is only valid until the next call.
func (cs *CSVSource) ReadValues() ([]string, error) {
	if _, err := cs.Header(); err != nil {
		return nil, err
	}
	return cs.cr.Read()
}

// Read returns the next data row keyed by the header.
func (cs *CSVSource) Read() (Record, error) {
	row, err := cs.ReadValues()
	if err != nil {
		return nil, err
	}
	values := make([]any, len(row))
	for i, s := range row {
		values[i] = s
	}
	return NewRecord(cs.header, values...), nil
}
