// Package orcid provides the ORCID public API client and the subset of the
// record model used for affiliation checks.
//
// Record mirrors the v3.0 JSON layout from activities-summary down to each
// employment's disambiguated organization. Every level is optional because the
// registry omits or nulls sections freely; accessors walk the structure without
// panicking. IDFromURL and CanonicalURL convert between the bare iD
// (0000-0002-1825-0097) and its https://orcid.org/ form.
package orcid
