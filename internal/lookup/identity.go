package lookup

import (
	"context"
	"fmt"
	"log/slog"

	"orcidscout/internal/logging"
	"orcidscout/internal/orcid"
	"orcidscout/internal/scopus"
	"orcidscout/internal/services"
)

// AuthorRetriever fetches a Scopus author profile. *scopus.Client satisfies it.
type AuthorRetriever interface {
	RetrieveAuthor(ctx context.Context, authorID string) (*scopus.Author, error)
}

// Resolver maps Scopus author ids to ORCID iDs.
type Resolver struct {
	source    AuthorRetriever
	idBaseURL string
	logger    *slog.Logger
}

// NewResolver builds a Resolver. idBaseURL prefixes bare iDs and defaults to
// https://orcid.org/.
func NewResolver(source AuthorRetriever, idBaseURL string, logger *slog.Logger) *Resolver {
	if idBaseURL == "" {
		idBaseURL = orcid.DefaultIDBaseURL
	}
	return &Resolver{
		source:    source,
		idBaseURL: idBaseURL,
		logger:    logging.NewComponentLogger(logger, "scopus"),
	}
}

// Resolve looks up authorID. It never returns an error: failures are folded
// into the identity so the caller can keep going.
func (r *Resolver) Resolve(ctx context.Context, authorID string) ResolvedIdentity {
	identity := ResolvedIdentity{AuthorID: authorID}

	author, err := r.source.RetrieveAuthor(ctx, authorID)
	if err != nil {
		if code, ok := services.StatusCode(err); ok {
			identity.DisplayName = fmt.Sprintf("Error %d", code)
			logging.WarnWithContext(ctx, r.logger, "scopus lookup rejected", "scopus_status",
				logging.Int("status", code),
				logging.String(logging.FieldErrorHint, "check the API key and Scopus quota"),
			)
			return identity
		}
		identity.DisplayName = "Error"
		identity.Diagnostic = "Exception: " + err.Error()
		logging.WarnWithContext(ctx, r.logger, "scopus lookup failed", "scopus_exception",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check network access to Scopus"),
		)
		return identity
	}
	if author == nil {
		return identity
	}

	identity.DisplayName = author.IndexedName
	if author.ORCID != "" {
		identity.RegistryID = orcid.CanonicalURL(r.idBaseURL, author.ORCID)
	}
	logging.WithContext(ctx, r.logger).Debug("scopus profile resolved",
		logging.String("name", identity.DisplayName),
		logging.Bool("has_orcid", identity.RegistryID != ""),
	)
	return identity
}
