package main

import (
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"finagent/internal/client"
)

const defaultBaseURL = "http://localhost:8080"

type options struct {
	baseURL  string
	token    string
	currency string
	timeout  time.Duration
}

func (o *options) client() *client.FinagentClient {
	return client.NewFinagentClient(o.baseURL, o.token, &http.Client{Timeout: o.timeout})
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "finctl",
		Short: "Portfolio ledger and analysis client for finagent",
		Long: `finctl talks to a finagent server. It registers assets and ledger
entries, prints position analysis and asks the portfolio agents questions.

The server URL and access token are read from FINAGENT_URL and FINAGENT_TOKEN.`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.baseURL, "url", envOr("FINAGENT_URL", defaultBaseURL), "finagent server URL")
	flags.StringVar(&opts.token, "token", os.Getenv("FINAGENT_TOKEN"), "access token")
	flags.StringVar(&opts.currency, "currency", envOr("FINAGENT_CURRENCY", "BRL"), "ISO 4217 code used to display amounts")
	flags.DurationVar(&opts.timeout, "timeout", 2*time.Minute, "request timeout")

	root.AddCommand(
		newLoginCmd(opts),
		newAssetsCmd(opts),
		newTxCmd(opts),
		newAnalyzeCmd(opts),
		newAskCmd(opts),
	)
	return root
}

func envOr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
