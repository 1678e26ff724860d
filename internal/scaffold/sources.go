package scaffold

// Template sources live in a fixed, conventionally-named directory tree,
// consumed read-only. The .template extension is stripped on write.
//
//	architecture-rules/   expanded into .claude/rules/
//	tooling/              expanded into the project root, path preserved
//	context/verbatim/     copied byte-for-byte into docs/context/
//	context/substituted/  expanded into docs/context/
//	design-system/        expanded into src/components/ui/, with the
//	                      lib/ subtree expanded into src/lib/
const (
	rulesSourceDir        = "architecture-rules"
	toolingSourceDir      = "tooling"
	contextVerbatimSource = "context/verbatim"
	contextSubstSource    = "context/substituted"
	designSystemSource    = "design-system"
	designSystemLibPrefix = "lib/"

	templateExt = ".template"
)

// Target locations for the fixed injection groups.
const (
	rulesTargetDir   = ".claude/rules"
	contextTargetDir = "docs/context"
	uiTargetDir      = "src/components/ui"
	libTargetDir     = "src/lib"

	frontendDomainsDir = "src/domains"
	backendModulesDir  = "backend/src/modules"
)

// commitHookName is the tooling template whose written file gets executable
// permission bits.
const commitHookName = "pre-commit"

// Identifiers for the fixed injection groups in the result's applied list.
// Ad-hoc plan groups keep their SCAFFOLD-### IDs.
const (
	groupDirectories  = "directory-structure"
	groupDomains      = "domain-structure"
	groupRules        = "architecture-rules"
	groupTooling      = "tooling-config"
	groupContext      = "context-docs"
	groupDesignSystem = "design-system"
)
