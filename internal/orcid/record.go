package orcid

import "strings"

// Record is the public ORCID record, reduced to employment affiliations.
type Record struct {
	ActivitiesSummary *ActivitiesSummary `json:"activities-summary"`
}

// ActivitiesSummary groups the activity sections of a record.
type ActivitiesSummary struct {
	Employments *Employments `json:"employments"`
}

// Employments holds the employment history, grouped by ORCID.
type Employments struct {
	AffiliationGroups []AffiliationGroup `json:"affiliation-group"`
}

// AffiliationGroup is a set of employment summaries ORCID considers the same
// affiliation reported by different sources.
type AffiliationGroup struct {
	Summaries []Summary `json:"summaries"`
}

// Summary wraps one employment entry.
type Summary struct {
	Employment *EmploymentSummary `json:"employment-summary"`
}

// EmploymentSummary describes a single position.
type EmploymentSummary struct {
	DepartmentName string        `json:"department-name"`
	RoleTitle      string        `json:"role-title"`
	Organization   *Organization `json:"organization"`
}

// Organization is the employer as recorded in ORCID.
type Organization struct {
	Name          string                     `json:"name"`
	Disambiguated *DisambiguatedOrganization `json:"disambiguated-organization"`
}

// DisambiguatedOrganization is a cross-reference into an organization authority
// such as ROR, GRID, or Ringgold.
type DisambiguatedOrganization struct {
	Source     string `json:"disambiguation-source"`
	Identifier string `json:"disambiguated-organization-identifier"`
}

// AffiliationGroups returns the employment groups, or nil when the record has
// no employment section.
func (r *Record) AffiliationGroups() []AffiliationGroup {
	if r == nil || r.ActivitiesSummary == nil || r.ActivitiesSummary.Employments == nil {
		return nil
	}
	return r.ActivitiesSummary.Employments.AffiliationGroups
}

// OrganizationReference returns the disambiguated organization of the
// employment, if it has one.
func (s Summary) OrganizationReference() (DisambiguatedOrganization, bool) {
	if s.Employment == nil || s.Employment.Organization == nil || s.Employment.Organization.Disambiguated == nil {
		return DisambiguatedOrganization{}, false
	}
	return *s.Employment.Organization.Disambiguated, true
}

// IDFromURL returns the bare iD: everything after the last '/'. A value
// without a '/' is returned unchanged.
func IDFromURL(value string) string {
	return value[strings.LastIndex(value, "/")+1:]
}

// CanonicalURL joins the iD onto base, e.g. https://orcid.org/ + 0000-0001-2345-6789.
func CanonicalURL(base, id string) string {
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + id
}
