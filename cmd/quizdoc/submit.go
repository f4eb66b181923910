package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/quizdoc/submit"
)

func newSubmitCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit [file]",
		Short: "Post the questions of a document to a web app",
		Long: `Submit parses a document and posts its questions as a JSON array to the
configured endpoint, such as a Google Apps Script web app that builds a
form. The response body is printed, followed by the edit and published
URLs when the web app returns them.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runSubmit,
	}
	addSubmitFlags(cmd)
	addExtractFlags(cmd)
	return cmd
}

// addSubmitFlags registers the flags that control the HTTP submission.
func addSubmitFlags(cmd *cobra.Command) {
	cmd.Flags().String("endpoint", "", "web app URL the questions are posted to")
	cmd.Flags().Duration("timeout", 0, "submission timeout including retries, must be positive (default 60s)")
	cmd.Flags().Int("max-retries", 0, "retries on HTTP 429, 0 to disable (default 3)")
	cmd.Flags().String("user-agent", "", "User-Agent header")
}

func (a *app) runSubmit(cmd *cobra.Command, args []string) error {
	// Fail before asking for a file when there is nowhere to send it.
	client, err := submit.NewClient(a.cfg.Submit(), submit.WithLogger(a.log))
	if err != nil {
		return err
	}

	questions, ok, err := a.questions(cmd, args)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), noSelection)
		return nil
	}

	resp, err := client.Submit(cmd.Context(), questions)
	if err != nil {
		a.log.Error("submission failed", zap.Error(err))
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, resp.Text())
	if resp.EditURL != "" {
		fmt.Fprintf(out, "Edit URL: %s\n", resp.EditURL)
	}
	if resp.PublishedURL != "" {
		fmt.Fprintf(out, "Published URL: %s\n", resp.PublishedURL)
	}
	return nil
}
