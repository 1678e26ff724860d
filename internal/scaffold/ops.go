package scaffold

import "os"

// Materialization is computed in two phases: every injection group first
// plans its directory and file operations as plain data, then a single
// apply pass executes them. Dry-run shares the planning phase and skips
// the apply.

// DirOp ensures a directory exists. Pre-existing directories are a no-op.
type DirOp struct {
	Path string
}

// FileOp writes one file, but only when the target does not already exist.
type FileOp struct {
	Path    string
	Content []byte
	Mode    os.FileMode
}

// groupPlan is the planned work for one injection group.
type groupPlan struct {
	id    string
	dirs  []DirOp
	files []FileOp

	// declared is how many files the group was asked to produce.
	declared int

	// incomplete marks a group whose planning could not account for every
	// declared file, for example because a template source is missing. An
	// incomplete group reports partial status.
	incomplete bool
}

// runPlan is the complete planned operation set for one materialization run.
type runPlan struct {
	groups []groupPlan
}

func (g *groupPlan) addDir(path string) {
	g.dirs = append(g.dirs, DirOp{Path: path})
}

func (g *groupPlan) addFile(path string, content []byte, mode os.FileMode) {
	g.files = append(g.files, FileOp{Path: path, Content: content, Mode: mode})
	g.declared++
}
