package scaffold

import (
	"io/fs"
	"strconv"
)

// Group statuses. A group is successful only when every file it declared
// was accounted for.
const (
	StatusSuccess = "success"
	StatusPartial = "partial"
)

// FileRecord describes one file that exists after a run.
type FileRecord struct {
	Path        string `json:"path"`
	SizeBytes   int64  `json:"size_bytes"`
	Permissions string `json:"permissions"`
}

// GroupRecord summarizes one applied injection group.
type GroupRecord struct {
	TemplateID         string `json:"template_id"`
	Status             string `json:"status"`
	FilesCreated       int    `json:"files_created"`
	DirectoriesCreated int    `json:"directories_created"`
}

// Result is the run's sole mutable accumulator. The materializer owns it
// for the duration of a run and hands it off frozen to the reporter.
type Result struct {
	DryRun bool `json:"dry_run"`

	FilesCreated      []FileRecord  `json:"files_created"`
	TemplatesApplied  []GroupRecord `json:"templates_applied"`
	DomainsScaffolded []string      `json:"domains_scaffolded"`

	ArchitectureRulesInjected bool `json:"architecture_rules_injected"`
	CommitHooksInjected       bool `json:"commit_hooks_injected"`
	LintConfigInjected        bool `json:"lint_config_injected"`
	DesignSystemInjected      bool `json:"design_system_injected"`
}

// Group returns the applied-group record with the given ID, for callers
// inspecting a specific injection group's outcome.
func (r *Result) Group(id string) (GroupRecord, bool) {
	for _, g := range r.TemplatesApplied {
		if g.TemplateID == id {
			return g, true
		}
	}
	return GroupRecord{}, false
}

// TotalFiles returns how many files the run accounted for across groups.
func (r *Result) TotalFiles() int {
	return len(r.FilesCreated)
}

func permString(mode fs.FileMode) string {
	return strconv.FormatUint(uint64(mode.Perm()), 8)
}
