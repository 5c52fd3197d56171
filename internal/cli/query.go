package cli

import (
	"github.com/joeblew999/plat-fontface/pkg/font"
	"github.com/joeblew999/plat-fontface/pkg/fontface"
	"github.com/spf13/cobra"
)

// newQueryCmd prints the planned requests without fetching anything.
func newQueryCmd() *cobra.Command {
	var opts jobOptions

	queryCmd := &cobra.Command{
		Use:   "query",
		Short: "Print the family queries and destinations without fetching",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, jobs, err := opts.load()
			if err != nil {
				return err
			}

			fetcher := fontface.NewFetcher(c.FetchOptions())
			task := fontface.NewTask(fontface.NewPlanner(font.DefaultWeights), fetcher)
			requests, skipped := task.Plan(cmd.Context(), jobs)
			for _, req := range requests {
				cmd.Printf("%s -> %s\n", fetcher.URL(req.Query), req.Dest)
			}
			for _, err := range skipped {
				cmd.Printf("- skipped: %v\n", err)
			}
			return nil
		},
	}

	opts.bind(queryCmd)
	return queryCmd
}
