package plan

import (
	"fmt"
	"strings"

	"github.com/kreativreason/mason/internal/fancy"
)

// String returns a pretty-printed tree representation of the plan
func (p *Plan) String() string {
	return Tree(p)
}

// Tree converts a Plan into a rendered tree string
func Tree(p *Plan) string {
	t := fancy.Tree()
	t.Root(fancy.RootStyle.Render(
		fmt.Sprintf("Scaffold Plan: %s (%s)", p.Data.ProjectName, p.Data.Version)))

	t.Child(fmt.Sprintf("Architecture: %s", p.Data.ArchitectureStyle))
	t.Child(fmt.Sprintf("Design preset: %s", p.Data.Design.Preset))

	domainsTree := t.Child(fancy.HeaderStyle.Render(
		fmt.Sprintf("Domains (%d)", len(p.Data.Domains.Domains))))
	for _, d := range p.Data.Domains.Domains {
		dt := domainsTree.Child(fancy.DomainText(d.Name))
		dt.Child(fmt.Sprintf("Root: %s", fancy.EntityText(d.RootEntity)))
		dt.Child(fmt.Sprintf("Entities: %s", strings.Join(d.Entities, ", ")))
		if len(d.DependsOn) > 0 {
			dt.Child(fmt.Sprintf("Depends on: %s", strings.Join(d.DependsOn, ", ")))
		}
	}

	dirsTree := t.Child(fancy.HeaderStyle.Render(
		fmt.Sprintf("Directories (%d)", len(p.Data.DirectoryStructure))))
	for _, path := range p.Data.DirectoryPaths() {
		dirsTree.Child(fancy.DirectoryText(path))
	}

	tmplTree := t.Child(fancy.HeaderStyle.Render(
		fmt.Sprintf("Template groups (%d)", len(p.Data.Templates))))
	for _, tmpl := range p.Data.Templates {
		gt := tmplTree.Child(fancy.TemplateText(tmpl.ID))
		gt.Child(fmt.Sprintf("Target: %s", tmpl.TargetPath))
		gt.Child(fmt.Sprintf("Files: %d", len(tmpl.Files)))
	}

	injections := t.Child(fancy.HeaderStyle.Render("Injections"))
	injections.Child(fmt.Sprintf("Architecture rules: %t", p.Data.InjectArchitectureRules))
	injections.Child(fmt.Sprintf("Commit hooks: %t", p.Data.InjectCommitHooks))
	injections.Child(fmt.Sprintf("Lint config: %t", p.Data.InjectLintConfig))
	injections.Child(fmt.Sprintf("Design system: %t", p.Data.InjectDesignSystem))

	return t.String()
}
