package main

import (
	"fmt"
	"strings"

	"github.com/akowalczyk/c2padocs"
)

// Run executes the repo command.
func (c *RepoCmd) Run(deps *Dependencies) error {
	content, err := deps.Repos.Get(deps.Ctx, c.Repo, c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", c2padocs.ErrorMessage(err))
		return err
	}

	if content.File != nil {
		fmt.Fprintf(deps.Stdout, "**File** `%s/%s`\n\n", c.Repo, c.Path)
		switch {
		case content.File.Binary:
			fmt.Fprintln(deps.Stdout, "(binary or remote file - not fetched)")
		case strings.TrimSpace(content.File.Text) == "":
			fmt.Fprintln(deps.Stdout, "(no previewable content)")
		default:
			fmt.Fprintln(deps.Stdout, content.File.Text)
		}
		return nil
	}

	var files, dirs []string
	for _, e := range content.Entries {
		switch e.Type {
		case "file":
			files = append(files, fmt.Sprintf("- %s (%d bytes)", e.Name, e.Size))
		case "dir":
			dirs = append(dirs, fmt.Sprintf("- %s/", e.Name))
		}
	}

	fmt.Fprintf(deps.Stdout, "**Directory** `%s/%s`\n\n", c.Repo, c.Path)
	fmt.Fprintf(deps.Stdout, "**Files**\n%s\n\n", orNone(files))
	fmt.Fprintf(deps.Stdout, "**Directories**\n%s\n", orNone(dirs))
	return nil
}

func orNone(lines []string) string {
	if len(lines) == 0 {
		return "(none)"
	}
	return strings.Join(lines, "\n")
}
