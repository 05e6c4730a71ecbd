package dartsarif

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-git/go-git/v5"
)

// DefaultRemote is the remote consulted when detecting the repository URI
const DefaultRemote = "origin"

// Provenance identifies the revision of the analyzed sources. A nil field
// was not supplied and is left out of the SARIF output, an empty string
// was supplied and is kept.
type Provenance struct {
	RepositoryURI *string `json:"repositoryUri,omitempty" yaml:"repository-uri,omitempty"`
	RevisionID    *string `json:"revisionId,omitempty" yaml:"revision-id,omitempty"`
	Branch        *string `json:"branch,omitempty" yaml:"branch,omitempty"`
}

// IsEmpty returns true when no field was supplied
func (p Provenance) IsEmpty() bool {
	return p.RepositoryURI == nil && p.RevisionID == nil && p.Branch == nil
}

// Merge fills the fields of p which were not supplied with the ones from other
func (p Provenance) Merge(other Provenance) Provenance {
	if p.RepositoryURI == nil {
		p.RepositoryURI = other.RepositoryURI
	}
	if p.RevisionID == nil {
		p.RevisionID = other.RevisionID
	}
	if p.Branch == nil {
		p.Branch = other.Branch
	}
	return p
}

// LogValue implements slog.LogValuer and logs the supplied fields only
func (p Provenance) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 3)
	for _, field := range []struct {
		key   string
		value *string
	}{
		{"repositoryUri", p.RepositoryURI},
		{"revisionId", p.RevisionID},
		{"branch", p.Branch},
	} {
		if field.value != nil {
			attrs = append(attrs, slog.String(field.key, *field.value))
		}
	}
	return slog.GroupValue(attrs...)
}

// DetectProvenance reads the git repository containing dir. The branch is
// not set on a detached HEAD, nor the repository URI when there is no
// origin remote.
func DetectProvenance(dir string) (Provenance, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return Provenance{}, fmt.Errorf("open git repository at %s: %w", dir, err)
	}

	var p Provenance
	head, err := repo.Head()
	if err != nil {
		return Provenance{}, fmt.Errorf("resolve HEAD: %w", err)
	}
	revision := head.Hash().String()
	p.RevisionID = &revision
	if head.Name().IsBranch() {
		branch := head.Name().Short()
		p.Branch = &branch
	}

	remote, err := repo.Remote(DefaultRemote)
	switch {
	case errors.Is(err, git.ErrRemoteNotFound):
	case err != nil:
		return Provenance{}, fmt.Errorf("read remote %s: %w", DefaultRemote, err)
	default:
		if urls := remote.Config().URLs; len(urls) > 0 {
			uri := urls[0]
			p.RepositoryURI = &uri
		}
	}
	return p, nil
}
