package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

func newAskCmd(opts *options) *cobra.Command {
	var agentName string
	var raw bool

	cmd := &cobra.Command{
		Use:   "ask QUESTION...",
		Short: "Ask the portfolio agents a question",
		Long: `Sends a natural-language question to the router, which picks the agent
best suited to answer. Use --agent to address one agent directly.`,
		Example: `  finctl ask "I bought 20 ITSA4.SA at 10.50 yesterday"
  finctl ask --agent analysis_agent "how is my portfolio doing?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")
			c := opts.client()

			var answer string
			if agentName == "" {
				routed, err := c.Route(cmd.Context(), question)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "answered by %s\n", routed.Agent)
				answer = routed.Answer
			} else {
				var err error
				answer, err = c.Ask(cmd.Context(), agentName, question)
				if err != nil {
					return err
				}
			}

			if raw {
				fmt.Fprintln(cmd.OutOrStdout(), answer)
				return nil
			}
			rendered, err := renderMarkdown(answer)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	cmd.Flags().StringVar(&agentName, "agent", "", "agent to query directly (default: router)")
	cmd.Flags().BoolVar(&raw, "raw", false, "print the answer without markdown rendering")
	return cmd
}

func renderMarkdown(md string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	return r.Render(md)
}
