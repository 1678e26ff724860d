package plan

import (
	"fmt"
	"sort"

	"github.com/kreativreason/mason/internal/interpolation"
	"github.com/kreativreason/mason/internal/plan/errz"
	"github.com/kreativreason/mason/internal/plan/loader"
)

// NewPlan loads a scaffold plan from a file path, applying design-brief
// defaults so downstream consumers always see a fully populated brief.
// Validation is a separate step.
func NewPlan(filePath string) (*Plan, error) {
	ld, err := loader.NewLoaderFromFilePath(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errz.ErrFailedToLoadPlan, err)
	}
	return newPlan(ld)
}

// NewPlanFromBytes loads a scaffold plan from raw bytes using the given
// loader constructor.
func NewPlanFromBytes(data []byte, lodFunc loader.LoaderFunc) (*Plan, error) {
	ld, err := loader.NewLoaderFromBytes(data, lodFunc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errz.ErrFailedToLoadPlan, err)
	}
	return newPlan(ld)
}

func newPlan(ld loader.Loader) (*Plan, error) {
	p := &Plan{}
	if err := ld.Decode(p); err != nil {
		return nil, fmt.Errorf("%w: %w", errz.ErrFailedToLoadPlan, err)
	}

	// Path-like template group fields may reference environment variables.
	for i := range p.Data.Templates {
		if err := interpolation.InterpolateStruct(&p.Data.Templates[i]); err != nil {
			return nil, fmt.Errorf("%w: %w", errz.ErrFailedToLoadPlan, err)
		}
	}

	p.Data.Design.ApplyDefaults()
	return p, nil
}

// DirectoryPaths returns the declared directory paths in a stable order.
func (d *Data) DirectoryPaths() []string {
	paths := make([]string, 0, len(d.DirectoryStructure))
	for p := range d.DirectoryStructure {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
