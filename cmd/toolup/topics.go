package toolup

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

//go:embed docs/*.md
var topicDocs embed.FS

// newTopicsCmd exposes the embedded long-form documentation beyond command
// help: "toolup topics" lists them, "toolup topics setup" renders one.
func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topics [topic]",
		Short: MsgTopicsShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topics, err := loadTopics()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				if len(topics) == 0 {
					cmd.Println(MsgNoTopics)
					return nil
				}
				cmd.Println(MsgTopicsHeading)
				names := make([]string, 0, len(topics))
				for name := range topics {
					names = append(names, name)
				}
				sort.Strings(names)
				for _, name := range names {
					cmd.Printf("  %s\n", name)
				}
				return nil
			}

			content, ok := topics[args[0]]
			if !ok {
				return fmt.Errorf(MsgUnknownTopicF, args[0])
			}
			cmd.Print(renderMarkdown(content))
			return nil
		},
	}
}

func loadTopics() (map[string]string, error) {
	entries, err := fs.ReadDir(topicDocs, "docs")
	if err != nil {
		return nil, err
	}

	topics := make(map[string]string, len(entries))
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		raw, err := fs.ReadFile(topicDocs, "docs/"+entry.Name())
		if err != nil {
			return nil, err
		}
		topics[strings.TrimSuffix(entry.Name(), ".md")] = string(raw)
	}
	return topics, nil
}

// renderMarkdown renders topic content for the terminal, falling back to
// the raw text when not on a TTY or when the renderer fails.
func renderMarkdown(content string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return content
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
