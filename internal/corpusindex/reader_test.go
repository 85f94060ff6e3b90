package corpusindex

import (
	"bytes"
	"compress/gzip"
	"strings"
	"testing"
)

func TestParseCSVBasic(t *testing.T) {
	csvText := "Symbol,Company Name,Alternate Names\n" +
		"aapl,Apple Inc.,\n" +
		"msft,Microsoft Corporation,\"MSFT Corp, Microsoft\"\n"

	list, err := ParseCSV(strings.NewReader(csvText))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertEqual(t, 2, len(list))
	assertEqual(t, "AAPL", list[0].TickerSymbol)
	assertEqual(t, "Apple Inc.", list[0].CompanyName)
	assertEqual(t, 2, len(list[1].AlternateNames))
	assertEqual(t, "MSFT Corp", list[1].AlternateNames[0])
	assertEqual(t, "Microsoft", list[1].AlternateNames[1])
}

func TestParseCSVNormalizesLeadingDollarSymbol(t *testing.T) {
	csvText := "Symbol,Company Name,Alternate Names\n$aapl,Apple Inc.,\n"

	list, err := ParseCSV(strings.NewReader(csvText))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertEqual(t, 1, len(list))
	assertEqual(t, "AAPL", list[0].TickerSymbol)
}

func TestParseCSVMissingSymbolColumnIsParserError(t *testing.T) {
	csvText := "Company Name\nApple Inc.\n"
	_, err := ParseCSV(strings.NewReader(csvText))
	if err == nil {
		t.Fatal("expected error")
	}
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	assertEqual(t, ParserError, perr.Kind)
}

func TestParseCSVEmptyInputIsParserError(t *testing.T) {
	_, err := ParseCSV(strings.NewReader(""))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestParseGzipCSVRoundTrip(t *testing.T) {
	csvText := "Symbol,Company Name,Alternate Names\nAAPL,Apple Inc.,\n"

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	gz.Write([]byte(csvText))
	gz.Close()

	list, err := ParseGzipCSV(buf.Bytes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertEqual(t, 1, len(list))
	assertEqual(t, "AAPL", list[0].TickerSymbol)
}

func TestParseGzipCSVBadBytesIsIoError(t *testing.T) {
	_, err := ParseGzipCSV([]byte("not gzip"))
	if err == nil {
		t.Fatal("expected error")
	}
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	assertEqual(t, IoError, perr.Kind)
}
