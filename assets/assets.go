// Package assets embeds the default reference corpus shipped with the
// module, mirroring the original Rust project's build.rs-generated
// include_bytes! asset, minus the build-time compression step — this file
// is committed pre-compressed instead of generated at build time.
package assets

import _ "embed"

//go:embed company_symbol_list.csv.gz
var companySymbolListGz []byte

// DefaultCompanySymbolListGz returns the gzip-compressed CSV bytes of the
// default reference corpus (Symbol, Company Name, Alternate Names).
func DefaultCompanySymbolListGz() []byte {
	return companySymbolListGz
}
