// Package scaffold turns a validated plan into directories and files under
// a target project root. Every injection group first plans its operations
// as data, then one apply pass executes them; dry-run runs the same
// planning pass and suppresses the writes. Writes are non-destructive
// throughout: an existing file is never overwritten, so re-applying an
// updated plan only fills gaps.
package scaffold

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/kreativreason/mason/internal/plan"
	"github.com/kreativreason/mason/internal/template"
)

const (
	dirMode  = os.FileMode(0o755)
	fileMode = os.FileMode(0o644)
	execMode = os.FileMode(0o755)
)

// Materializer writes a plan's skeleton into a target filesystem root.
type Materializer struct {
	target    billy.Filesystem
	templates billy.Filesystem
	logger    *slog.Logger
}

// NewMaterializer returns a materializer writing into target. templates is
// the read-only template source tree; it may be nil, in which case every
// template-driven group reports partial status.
func NewMaterializer(target, templates billy.Filesystem, logger *slog.Logger) *Materializer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Materializer{
		target:    target,
		templates: templates,
		logger:    logger.WithGroup("scaffold"),
	}
}

// Apply materializes the plan payload against the target root and returns
// the run's result. In dry-run mode every read and decision still happens
// but nothing is written and no permissions change.
func (m *Materializer) Apply(data *plan.Data, env *template.Environment, dryRun bool) (*Result, error) {
	rp, err := m.planRun(data, env)
	if err != nil {
		return nil, err
	}
	return m.applyRun(data, rp, dryRun)
}

// planRun computes the full operation set for a run, in injection-group
// order, without touching the target filesystem.
func (m *Materializer) planRun(data *plan.Data, env *template.Environment) (*runPlan, error) {
	rp := &runPlan{}

	dirs := groupPlan{id: groupDirectories}
	for _, p := range data.DirectoryPaths() {
		dirs.addDir(cleanRel(p))
	}
	rp.groups = append(rp.groups, dirs)

	rp.groups = append(rp.groups, m.planDomainStructure(data))

	if data.InjectArchitectureRules {
		g := groupPlan{id: groupRules}
		if err := m.planTemplateTree(&g, rulesSourceDir, rulesTargetDir, env); err != nil {
			return nil, err
		}
		rp.groups = append(rp.groups, g)
	}

	if data.InjectCommitHooks || data.InjectLintConfig {
		g, err := m.planTooling(data, env)
		if err != nil {
			return nil, err
		}
		rp.groups = append(rp.groups, g)
	}

	ctx, err := m.planContextDocs(env)
	if err != nil {
		return nil, err
	}
	rp.groups = append(rp.groups, ctx)

	if data.InjectDesignSystem {
		g, err := m.planDesignSystem(env)
		if err != nil {
			return nil, err
		}
		rp.groups = append(rp.groups, g)
	}

	for _, tmpl := range data.Templates {
		rp.groups = append(rp.groups, planAdHocGroup(tmpl, data.ProjectName))
	}

	return rp, nil
}

// planDomainStructure plans the fixed per-domain sub-structure: front-end
// component, constants, and hook groupings plus a back-end feature module,
// each seeded with a barrel re-export placeholder.
func (m *Materializer) planDomainStructure(data *plan.Data) groupPlan {
	g := groupPlan{id: groupDomains}
	for _, d := range data.Domains.Domains {
		for _, grouping := range []string{"components", "constants", "hooks"} {
			dir := path.Join(frontendDomainsDir, d.Name, grouping)
			g.addDir(dir)
			g.addFile(path.Join(dir, "index.ts"),
				[]byte(barrelContent(d.Name, grouping)), fileMode)
		}

		moduleDir := path.Join(backendModulesDir, d.Name)
		g.addDir(moduleDir)
		g.addFile(path.Join(moduleDir, "index.ts"),
			[]byte(barrelContent(d.Name, "module")), fileMode)
	}
	return g
}

// planTemplateTree expands every template under srcDir into dstDir,
// preserving relative paths and stripping the .template extension.
func (m *Materializer) planTemplateTree(g *groupPlan, srcDir, dstDir string, env *template.Environment) error {
	files, err := m.sourceFiles(srcDir)
	if err != nil {
		return err
	}
	if files == nil {
		m.markMissingSource(g, srcDir)
		return nil
	}

	for _, rel := range files {
		content, err := m.expandSource(path.Join(srcDir, rel), env)
		if err != nil {
			return err
		}
		g.addFile(path.Join(dstDir, strings.TrimSuffix(rel, templateExt)), content, fileMode)
	}
	return nil
}

// planTooling expands the lint/format/build-tool configuration templates
// into the project root and the commit-hook script with executable bits.
// Each file is gated by the toggle that owns it.
func (m *Materializer) planTooling(data *plan.Data, env *template.Environment) (groupPlan, error) {
	g := groupPlan{id: groupTooling}

	files, err := m.sourceFiles(toolingSourceDir)
	if err != nil {
		return g, err
	}
	if files == nil {
		m.markMissingSource(&g, toolingSourceDir)
		return g, nil
	}

	for _, rel := range files {
		target := strings.TrimSuffix(rel, templateExt)
		isHook := path.Base(target) == commitHookName

		if isHook && !data.InjectCommitHooks {
			continue
		}
		if !isHook && !data.InjectLintConfig {
			continue
		}

		content, err := m.expandSource(path.Join(toolingSourceDir, rel), env)
		if err != nil {
			return g, err
		}

		mode := fileMode
		if isHook {
			mode = execMode
		}
		g.addFile(target, content, mode)
	}
	return g, nil
}

// planContextDocs plans the canonical context documents. The verbatim set
// must reach every generated project byte-for-byte identical to its
// source; the substituted set is expanded like any other template.
func (m *Materializer) planContextDocs(env *template.Environment) (groupPlan, error) {
	g := groupPlan{id: groupContext}

	verbatim, err := m.sourceFiles(contextVerbatimSource)
	if err != nil {
		return g, err
	}
	if verbatim == nil {
		m.markMissingSource(&g, contextVerbatimSource)
	}
	for _, rel := range verbatim {
		raw, err := util.ReadFile(m.templates, path.Join(contextVerbatimSource, rel))
		if err != nil {
			return g, fmt.Errorf("read template %s: %w", rel, err)
		}
		g.addFile(path.Join(contextTargetDir, strings.TrimSuffix(rel, templateExt)), raw, fileMode)
	}

	subst, err := m.sourceFiles(contextSubstSource)
	if err != nil {
		return g, err
	}
	if subst == nil {
		m.markMissingSource(&g, contextSubstSource)
	}
	for _, rel := range subst {
		content, err := m.expandSource(path.Join(contextSubstSource, rel), env)
		if err != nil {
			return g, err
		}
		g.addFile(path.Join(contextTargetDir, strings.TrimSuffix(rel, templateExt)), content, fileMode)
	}

	return g, nil
}

// planDesignSystem expands the component templates into the UI components
// directory; the lib/ subtree holds the shared utilities and lands beside
// the components under src/lib.
func (m *Materializer) planDesignSystem(env *template.Environment) (groupPlan, error) {
	g := groupPlan{id: groupDesignSystem}

	files, err := m.sourceFiles(designSystemSource)
	if err != nil {
		return g, err
	}
	if files == nil {
		m.markMissingSource(&g, designSystemSource)
		return g, nil
	}

	for _, rel := range files {
		content, err := m.expandSource(path.Join(designSystemSource, rel), env)
		if err != nil {
			return g, err
		}

		target := strings.TrimSuffix(rel, templateExt)
		if lib, ok := strings.CutPrefix(target, designSystemLibPrefix); ok {
			target = path.Join(libTargetDir, lib)
		} else {
			target = path.Join(uiTargetDir, target)
		}
		g.addFile(target, content, fileMode)
	}
	return g, nil
}

// planAdHocGroup resolves one plan-declared template group. Each listed
// file joins onto the group's target path unless it already starts with
// that segment, and gets placeholder content chosen by its extension and
// filename.
func planAdHocGroup(tmpl plan.TemplateApplication, projectName string) groupPlan {
	g := groupPlan{id: tmpl.ID}

	target := strings.Trim(tmpl.TargetPath, "/")
	seen := make(map[string]struct{}, len(tmpl.Files))

	for _, rel := range tmpl.Files {
		full := rel
		if target != "" && !strings.HasPrefix(rel, target) {
			full = target + "/" + rel
		}
		full = cleanRel(full)

		if _, dup := seen[full]; dup {
			continue
		}
		seen[full] = struct{}{}

		g.addFile(full, []byte(placeholderContent(full, projectName)), fileMode)
	}
	return g
}

// applyRun executes a planned run against the target filesystem and
// assembles the result. Dry-run reports counts from the planned set alone;
// it never probes post-write state, so its created-count can overstate the
// delta a real run would produce against a partially-populated root.
func (m *Materializer) applyRun(data *plan.Data, rp *runPlan, dryRun bool) (*Result, error) {
	res := &Result{
		DryRun:                    dryRun,
		DomainsScaffolded:         data.Domains.Names(),
		ArchitectureRulesInjected: data.InjectArchitectureRules,
		CommitHooksInjected:       data.InjectCommitHooks,
		LintConfigInjected:        data.InjectLintConfig,
		DesignSystemInjected:      data.InjectDesignSystem,
	}

	for _, g := range rp.groups {
		// Distinct directories the group touches: planned directories plus
		// every file's parent. A planned directory that also holds a file
		// counts once.
		dirSet := make(map[string]struct{}, len(g.dirs)+len(g.files))

		for _, d := range g.dirs {
			dirSet[d.Path] = struct{}{}
			if dryRun {
				continue
			}
			if err := m.target.MkdirAll(d.Path, dirMode); err != nil {
				return nil, fmt.Errorf("ensure directory %s: %w", d.Path, err)
			}
		}

		for _, f := range g.files {
			dirSet[path.Dir(f.Path)] = struct{}{}

			if !dryRun {
				if err := m.writeFile(f); err != nil {
					return nil, err
				}
			}

			res.FilesCreated = append(res.FilesCreated, m.fileRecord(f, dryRun))
		}

		status := StatusSuccess
		if g.incomplete || len(g.files) < g.declared {
			status = StatusPartial
		}
		res.TemplatesApplied = append(res.TemplatesApplied, GroupRecord{
			TemplateID:         g.id,
			Status:             status,
			FilesCreated:       len(g.files),
			DirectoriesCreated: len(dirSet),
		})
	}

	return res, nil
}

// writeFile writes one planned file unless the target already exists.
// Existing files are preserved untouched, hand-edited content included.
func (m *Materializer) writeFile(f FileOp) error {
	if _, err := m.target.Stat(f.Path); err == nil {
		m.logger.Debug("file exists, preserving", "path", f.Path)
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", f.Path, err)
	}

	if dir := path.Dir(f.Path); dir != "." {
		if err := m.target.MkdirAll(dir, dirMode); err != nil {
			return fmt.Errorf("ensure directory %s: %w", dir, err)
		}
	}
	if err := util.WriteFile(m.target, f.Path, f.Content, f.Mode); err != nil {
		return fmt.Errorf("write %s: %w", f.Path, err)
	}

	// The executable bit on hook scripts must survive the process umask.
	// Not every backing filesystem supports chmod; in-memory ones do not.
	if f.Mode&0o111 != 0 {
		if ch, ok := m.target.(billy.Change); ok {
			if err := ch.Chmod(f.Path, f.Mode); err != nil {
				return fmt.Errorf("chmod %s: %w", f.Path, err)
			}
		}
	}

	m.logger.Debug("file written", "path", f.Path, "bytes", len(f.Content))
	return nil
}

// fileRecord reports a planned file. A real run reads the on-disk metadata
// so pre-existing files report their actual size and permissions.
func (m *Materializer) fileRecord(f FileOp, dryRun bool) FileRecord {
	if !dryRun {
		if info, err := m.target.Stat(f.Path); err == nil {
			return FileRecord{
				Path:        f.Path,
				SizeBytes:   info.Size(),
				Permissions: permString(info.Mode()),
			}
		}
	}
	return FileRecord{
		Path:        f.Path,
		SizeBytes:   int64(len(f.Content)),
		Permissions: permString(f.Mode),
	}
}

// sourceFiles walks one template source directory and returns the relative
// paths of its regular files, sorted for deterministic planning order. A
// nil slice with nil error means the source tree is absent.
func (m *Materializer) sourceFiles(dir string) ([]string, error) {
	if m.templates == nil {
		return nil, nil
	}
	if _, err := m.templates.Stat(dir); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat template source %s: %w", dir, err)
	}

	var files []string
	err := util.Walk(m.templates, dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel := strings.TrimPrefix(p, dir+"/")
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk template source %s: %w", dir, err)
	}

	sort.Strings(files)
	if files == nil {
		files = []string{}
	}
	return files, nil
}

func (m *Materializer) markMissingSource(g *groupPlan, dir string) {
	m.logger.Warn("template source missing", "group", g.id, "dir", dir)
	g.incomplete = true
}

// expandSource reads one template file and expands it against the run's
// environment.
func (m *Materializer) expandSource(srcPath string, env *template.Environment) ([]byte, error) {
	raw, err := util.ReadFile(m.templates, srcPath)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", srcPath, err)
	}
	expanded, err := template.Expand(string(raw), env)
	if err != nil {
		return nil, fmt.Errorf("expand template %s: %w", srcPath, err)
	}
	return []byte(expanded), nil
}

// cleanRel normalizes a plan-supplied relative path. A leading "/" means
// the project root, not the filesystem root.
func cleanRel(p string) string {
	return path.Clean(strings.TrimPrefix(p, "/"))
}
