package corpusindex

import (
	"bytes"
	"compress/gzip"
	"encoding/csv"
	"io"
	"strings"

	"github.com/jzombie/ticker-sniffer-go/internal/symbolnorm"
)

const (
	headerSymbol         = "Symbol"
	headerCompanyName    = "Company Name"
	headerAlternateNames = "Alternate Names"
)

// ParseCSV reads a UTF-8 reference corpus CSV with a header row containing
// at minimum Symbol, Company Name, and Alternate Names columns. Symbol is
// uppercased; Company Name may be empty; Alternate Names is a comma-separated
// list, trimmed per element.
func ParseCSV(r io.Reader) (CompanySymbolList, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, newParserError("empty corpus: missing header row")
		}
		return nil, newParserError("reading header row: %v", err)
	}

	symbolIdx, ok := columnIndex(header, headerSymbol)
	if !ok {
		return nil, newParserError("missing required column %q", headerSymbol)
	}
	nameIdx, hasName := columnIndex(header, headerCompanyName)
	altIdx, hasAlt := columnIndex(header, headerAlternateNames)

	var list CompanySymbolList
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, newParserError("reading record: %v", err)
		}
		if symbolIdx >= len(record) {
			return nil, newParserError("record missing Symbol field: %v", record)
		}

		entry := CompanyEntry{
			TickerSymbol: symbolnorm.Normalize(record[symbolIdx]),
		}
		if hasName && nameIdx < len(record) {
			entry.CompanyName = strings.TrimSpace(record[nameIdx])
		}
		if hasAlt && altIdx < len(record) {
			entry.AlternateNames = splitTrimmed(record[altIdx])
		}
		list = append(list, entry)
	}

	return list, nil
}

// ParseGzipCSV decompresses gzip-compressed CSV bytes fully into memory
// before delegating to ParseCSV.
func ParseGzipCSV(data []byte) (CompanySymbolList, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, newIoError("opening gzip corpus asset: %v", err)
	}
	defer gz.Close()

	raw, err := io.ReadAll(gz)
	if err != nil {
		return nil, newIoError("decompressing gzip corpus asset: %v", err)
	}

	list, err := ParseCSV(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	return list, nil
}

func columnIndex(header []string, name string) (int, bool) {
	for i, col := range header {
		if strings.EqualFold(strings.TrimSpace(col), name) {
			return i, true
		}
	}
	return 0, false
}

func splitTrimmed(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
