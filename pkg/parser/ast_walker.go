package parser

import (
	"mvdan.cc/sh/v3/syntax"
)

// astWalker walks the AST and extracts commands and file operations.
type astWalker struct {
	commands   []Command
	fileWrites []FileWrite
}

// visit is called for each node in the AST.
func (w *astWalker) visit(node syntax.Node) bool {
	switch n := node.(type) {
	case *syntax.CallExpr:
		w.extractCommand(n)
	case *syntax.Stmt:
		w.extractRedirect(n)
	}

	return true
}

// extractCommand extracts a command from a CallExpr node.
func (w *astWalker) extractCommand(call *syntax.CallExpr) {
	if len(call.Args) == 0 {
		return
	}

	name := wordToString(call.Args[0])
	if name == "" {
		return
	}

	cmd := Command{
		Name: name,
		Args: wordsToStrings(call.Args[1:]),
		Location: Location{
			Line:   call.Pos().Line(),
			Column: call.Pos().Col(),
		},
	}

	w.commands = append(w.commands, cmd)

	w.extractFileWriteCommand(cmd)
}

// extractRedirect extracts file write operations from redirections.
func (w *astWalker) extractRedirect(stmt *syntax.Stmt) {
	if stmt.Redirs == nil {
		return
	}

	var (
		outputPath     string
		outputOp       WriteOp
		outputLoc      Location
		heredocContent string
		hasOutput      bool
		hasHeredoc     bool
	)

	for _, redir := range stmt.Redirs {
		if redir.Op == syntax.RdrOut || redir.Op == syntax.AppOut {
			path := wordToString(redir.Word)
			if path == "" {
				continue
			}

			outputPath = path

			outputOp = WriteOpRedirect
			if redir.Op == syntax.AppOut {
				outputOp = WriteOpAppend
			}

			outputLoc = Location{
				Line:   redir.Pos().Line(),
				Column: redir.Pos().Col(),
			}
			hasOutput = true
		}

		if redir.Op == syntax.Hdoc || redir.Op == syntax.DashHdoc {
			if redir.Hdoc != nil {
				heredocContent = wordToString(redir.Hdoc)
			}

			hasHeredoc = true
		}
	}

	switch {
	case hasOutput && hasHeredoc:
		w.fileWrites = append(w.fileWrites, FileWrite{
			Path:      outputPath,
			Operation: WriteOpHeredoc,
			Content:   heredocContent,
			Location:  outputLoc,
		})
	case hasOutput:
		w.fileWrites = append(w.fileWrites, FileWrite{
			Path:      outputPath,
			Operation: outputOp,
			Location:  outputLoc,
		})
	}
	// A heredoc without output redirection only feeds a command's stdin.
}

// extractFileWriteCommand detects file write commands (tee, cp, mv).
func (w *astWalker) extractFileWriteCommand(cmd Command) {
	op, targets := getFileWriteOperation(cmd)
	if op == WriteOpNone {
		return
	}

	for _, target := range targets {
		w.fileWrites = append(w.fileWrites, FileWrite{
			Path:      target,
			Operation: op,
			Source:    cmd.Name,
			Location:  cmd.Location,
		})
	}
}

// getFileWriteOperation determines if a command writes to files.
func getFileWriteOperation(cmd Command) (WriteOp, []string) {
	const minCopyArgs = 2 // source + destination

	switch cmd.Name {
	case "tee":
		return WriteOpTee, extractTeeTargets(cmd.Args)

	case "cp":
		if len(cmd.Args) >= minCopyArgs {
			return WriteOpCopy, []string{cmd.Args[len(cmd.Args)-1]}
		}

	case "mv":
		if len(cmd.Args) >= minCopyArgs {
			return WriteOpMove, []string{cmd.Args[len(cmd.Args)-1]}
		}
	}

	return WriteOpNone, nil
}

// extractTeeTargets extracts file targets from tee command arguments.
func extractTeeTargets(args []string) []string {
	targets := make([]string, 0)

	for _, arg := range args {
		if len(arg) > 0 && arg[0] != '-' {
			targets = append(targets, arg)
		}
	}

	return targets
}
