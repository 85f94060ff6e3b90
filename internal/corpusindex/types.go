package corpusindex

// TickerSymbol is a canonical, uppercase ticker identifier, e.g. "AAPL".
type TickerSymbol = string

// CompanyEntry is one row of the reference corpus: a ticker symbol, an
// optional canonical company name, and zero or more alternate names.
type CompanyEntry struct {
	TickerSymbol   TickerSymbol
	CompanyName    string
	AlternateNames []string
}

// CompanySymbolList is the full reference corpus, in the order it should be
// ingested (insertion order drives TokenId assignment determinism).
type CompanySymbolList []CompanyEntry
