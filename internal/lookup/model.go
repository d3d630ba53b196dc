package lookup

// NotFound is the ORCID cell text for rows without a registry identifier.
const NotFound = "Not found"

// InputRow is one subject from the input table.
type InputRow struct {
	AuthorID string
}

// ResolvedIdentity is the outcome of a Scopus lookup. Empty strings stand for
// values the profile did not provide.
type ResolvedIdentity struct {
	AuthorID    string
	DisplayName string
	// RegistryID is the canonical ORCID URL, e.g. https://orcid.org/0000-0001-2345-6789.
	RegistryID string
	// Diagnostic holds "Exception: <error>" when the lookup failed outright.
	Diagnostic string
}

// AffiliationStatus reports whether an ORCID record lists the target
// organization among its employments.
type AffiliationStatus int

const (
	StatusNotChecked AffiliationStatus = iota
	StatusYes
	StatusNo
	StatusNoEmploymentData
	StatusError
)

// Statuses lists every status in display order.
var Statuses = []AffiliationStatus{
	StatusYes,
	StatusNo,
	StatusNoEmploymentData,
	StatusNotChecked,
	StatusError,
}

// String returns the machine form written to result files.
func (s AffiliationStatus) String() string {
	switch s {
	case StatusNotChecked:
		return "NotChecked"
	case StatusYes:
		return "Yes"
	case StatusNo:
		return "No"
	case StatusNoEmploymentData:
		return "NoEmploymentData"
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Label returns the human form used in terminal tables.
func (s AffiliationStatus) Label() string {
	switch s {
	case StatusNotChecked:
		return "Not checked"
	case StatusNoEmploymentData:
		return "No employment data"
	default:
		return s.String()
	}
}

// ResultRow is one line of the output table.
type ResultRow struct {
	AuthorID    string
	Name        string
	RegistryID  string
	Diagnostic  string
	Affiliation AffiliationStatus
}

// ORCIDCell returns the text shown in the orcid column: the iD URL, the
// failure diagnostic, or NotFound.
func (r ResultRow) ORCIDCell() string {
	switch {
	case r.RegistryID != "":
		return r.RegistryID
	case r.Diagnostic != "":
		return r.Diagnostic
	default:
		return NotFound
	}
}

// Tally counts rows per affiliation status.
func Tally(rows []ResultRow) map[AffiliationStatus]int {
	counts := make(map[AffiliationStatus]int, len(Statuses))
	for _, row := range rows {
		counts[row.Affiliation]++
	}
	return counts
}
