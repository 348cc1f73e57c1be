package domain

// DocTypes is the fixed catalog of document types known to the vault. Both
// evidence records and buyer requests draw from it.
var DocTypes = []string{
	"ISO 27001 Certificate",
	"SOC 2 Type II Report",
	"GDPR Compliance Statement",
	"Business Continuity Plan",
	"Penetration Test Report",
	"Data Processing Agreement",
	"Insurance Certificate",
	"Financial Audit Report",
}

// KnownDocType reports whether t is part of the catalog.
func KnownDocType(t string) bool {
	for _, dt := range DocTypes {
		if dt == t {
			return true
		}
	}
	return false
}
