package vault

import "net/url"

// Query-string keys for filter persistence. A key is omitted entirely when its
// dimension is unconstrained, keeping shared links minimal.
const (
	paramSearch  = "search"
	paramDocType = "docType"
	paramStatus  = "status"
	paramExpiry  = "expiry"
)

// Encode serializes the filter state to a flat string map. Encode and
// DecodeFilters form an idempotent round trip: decode(encode(f)) == f.
func (f FilterState) Encode() url.Values {
	values := url.Values{}
	setIfActive(values, paramSearch, f.Search)
	setIfActive(values, paramDocType, f.DocType)
	setIfActive(values, paramStatus, f.Status)
	setIfActive(values, paramExpiry, string(f.Expiry))
	return values
}

// DecodeFilters reconstructs filter state from a query string. The literal
// value "all" normalizes to the unconstrained zero value, so re-encoding a
// decoded state never re-emits it.
func DecodeFilters(values url.Values) FilterState {
	return FilterState{
		Search:  normalize(values.Get(paramSearch)),
		DocType: normalize(values.Get(paramDocType)),
		Status:  normalize(values.Get(paramStatus)),
		Expiry:  ExpiryFilter(normalize(values.Get(paramExpiry))),
	}
}

func setIfActive(values url.Values, key, value string) {
	if value != "" && value != "all" {
		values.Set(key, value)
	}
}

func normalize(value string) string {
	if value == "all" {
		return ""
	}
	return value
}
