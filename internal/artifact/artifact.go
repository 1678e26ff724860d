// Package artifact handles the upstream pipeline documents a scaffold plan
// must stay consistent with. The documents arrive already validated by their
// own schema stages; only the fields needed for cross-document checks are
// decoded here.
package artifact

import (
	"errors"
	"fmt"

	"github.com/kreativreason/mason/internal/plan/loader"
)

// ErrProjectNameMismatch indicates the project name differs across the
// input documents.
var ErrProjectNameMismatch = errors.New("inconsistent project_name across input documents")

// Document is the envelope shared by every pipeline artifact.
type Document struct {
	ArtifactType string `json:"artifact_type"`
	Status       string `json:"status"`
	Validation   string `json:"validation"`
	Data         Data   `json:"data"`
}

// Data carries the payload fields shared by all artifact types.
type Data struct {
	ProjectName string `json:"project_name"`
	Version     string `json:"version"`
}

// Load reads an artifact document from a file path.
func Load(filePath string) (*Document, error) {
	ld, err := loader.NewLoaderFromFilePath(filePath)
	if err != nil {
		return nil, err
	}

	doc := &Document{}
	if err := ld.Decode(doc); err != nil {
		return nil, fmt.Errorf("failed to decode artifact '%s': %w", filePath, err)
	}
	return doc, nil
}

// CheckProjectNames verifies the plan's project name matches every supplied
// upstream document. This gate runs before the approval check and before
// any filesystem access.
func CheckProjectNames(planName string, docs ...*Document) error {
	var errs []error
	for _, doc := range docs {
		if doc.Data.ProjectName != planName {
			errs = append(errs, fmt.Errorf("%w: %s has %q, plan has %q",
				ErrProjectNameMismatch, doc.ArtifactType, doc.Data.ProjectName, planName))
		}
	}
	return errors.Join(errs...)
}
