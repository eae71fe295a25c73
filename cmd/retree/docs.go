package main

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed docs/*.md
var docFiles embed.FS

var docsCmd = &cobra.Command{
	Use:   "docs [topic]",
	Short: "Show documentation topics",
	Long:  `Docs lists the available documentation topics, or renders one.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return listTopics(cmd)
		}
		return showTopic(cmd, args[0])
	},
}

func topicNames() ([]string, error) {
	entries, err := docFiles.ReadDir("docs")
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".md"))
	}
	sort.Strings(names)
	return names, nil
}

func listTopics(cmd *cobra.Command) error {
	names, err := topicNames()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Available topics:")
	for _, name := range names {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "\nUse `retree docs <topic>` to read one.")
	return nil
}

func showTopic(cmd *cobra.Command, topic string) error {
	content, err := docFiles.ReadFile("docs/" + topic + ".md")
	if err != nil {
		names, _ := topicNames()
		return fmt.Errorf("unknown topic %q (available: %s)",
			topic, strings.Join(names, ", "))
	}

	fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(string(content)))
	return nil
}

// renderMarkdown falls back to the raw text when the terminal can't
// be probed
func renderMarkdown(content string) string {
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
