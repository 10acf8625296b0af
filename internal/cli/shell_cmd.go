package cli

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newShellCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell that keeps the roadmap alive between commands",
		Long: `Start an interactive shell. Every command runs against the same
in-memory roadmap, so edits made in the shell are visible to the next
command. Bare add/update commands open forms; removals ask first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(app)
		},
	}
}

func runShell(app *App) error {
	// The shell owns the terminal; nested removals confirm through the
	// shell's own prompt instead of a second huh program.
	shellApp := *app
	shellApp.Interactive = false

	p := tea.NewProgram(newShellModel(&shellApp))
	_, err := p.Run()
	return err
}

var errUnterminatedQuote = errors.New("unterminated quote")

// splitShellArgs tokenizes a shell line. Single quotes are literal, double
// quotes honour backslash escapes, and an explicitly quoted empty string
// survives as an empty argument.
func splitShellArgs(input string) ([]string, error) {
	var (
		parts   []string
		cur     strings.Builder
		quote   rune
		escaped bool
		inToken bool
	)

	for _, r := range input {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case quote == '\'':
			if r == '\'' {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case quote == '"':
			switch r {
			case '"':
				quote = 0
			case '\\':
				escaped = true
			default:
				cur.WriteRune(r)
			}
		case r == '\\':
			escaped = true
			inToken = true
		case r == '\'' || r == '"':
			quote = r
			inToken = true
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			if inToken {
				parts = append(parts, cur.String())
				cur.Reset()
				inToken = false
			}
		default:
			cur.WriteRune(r)
			inToken = true
		}
	}

	if escaped {
		return nil, fmt.Errorf("trailing escape character")
	}
	if quote != 0 {
		return nil, errUnterminatedQuote
	}
	if inToken {
		parts = append(parts, cur.String())
	}
	return parts, nil
}
