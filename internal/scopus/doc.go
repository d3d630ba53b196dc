// Package scopus provides the minimal Elsevier Scopus author retrieval client
// used to resolve author identifiers.
//
// It authenticates with an API key passed as a query parameter, requests JSON,
// and decodes only the fields orcidscout consumes: the preferred indexed name
// and the ORCID recorded in the author's core data. Non-2xx responses surface as
// *services.StatusError so callers can report the HTTP status; transport errors
// have the API key redacted from any URL they carry.
package scopus
