package lookup

import (
	"context"
	"log/slog"
	"strings"

	"orcidscout/internal/logging"
	"orcidscout/internal/orcid"
)

// DefaultDisambiguationSource selects ROR references in ORCID employments.
const DefaultDisambiguationSource = "ROR"

// RecordFetcher fetches a public ORCID record. *orcid.Client satisfies it.
type RecordFetcher interface {
	FetchRecord(ctx context.Context, id string) (*orcid.Record, error)
}

// Verifier checks ORCID employments against a target organization.
type Verifier struct {
	registry RecordFetcher
	source   string
	logger   *slog.Logger
}

// NewVerifier builds a Verifier comparing references whose
// disambiguation-source equals source exactly (default ROR).
func NewVerifier(registry RecordFetcher, source string, logger *slog.Logger) *Verifier {
	if source == "" {
		source = DefaultDisambiguationSource
	}
	return &Verifier{
		registry: registry,
		source:   source,
		logger:   logging.NewComponentLogger(logger, "orcid"),
	}
}

// Verify reports whether the record behind registryID lists an employment at
// targetOrgID. Identifiers are compared trimmed and case-insensitively.
func (v *Verifier) Verify(ctx context.Context, registryID, targetOrgID string) AffiliationStatus {
	id := orcid.IDFromURL(registryID)
	target := normalizeOrgID(targetOrgID)

	record, err := v.registry.FetchRecord(ctx, id)
	if err != nil {
		logging.WarnWithContext(ctx, v.logger, "orcid record unavailable", "orcid_fetch_failed",
			logging.String("orcid", id),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check the iD on orcid.org"),
			logging.String(logging.FieldImpact, "affiliation reported as Error"),
		)
		return StatusError
	}

	groups := record.AffiliationGroups()
	if len(groups) == 0 {
		return StatusNoEmploymentData
	}
	for _, group := range groups {
		for _, summary := range group.Summaries {
			ref, ok := summary.OrganizationReference()
			if !ok || ref.Source != v.source {
				continue
			}
			if normalizeOrgID(ref.Identifier) == target {
				logging.WithContext(ctx, v.logger).Debug("affiliation matched",
					logging.String("orcid", id),
					logging.String("organization", ref.Identifier),
				)
				return StatusYes
			}
		}
	}
	return StatusNo
}

func normalizeOrgID(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
