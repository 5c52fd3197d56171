package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/joeblew999/plat-fontface/internal/config"
	"github.com/joeblew999/plat-fontface/pkg/font"
	"github.com/joeblew999/plat-fontface/pkg/fontface"
	"github.com/spf13/cobra"
	"github.com/zeromicro/go-zero/core/logx"
)

// jobOptions are the flags shared by fetch and query.
type jobOptions struct {
	configFile string
	src        []string
	dest       string
	url        string
}

func (o *jobOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.configFile, "config", "f", "", "config file (yaml, json or toml)")
	cmd.Flags().StringSliceVar(&o.src, "src", nil, "font file glob, repeatable; \"**\" matches directories")
	cmd.Flags().StringVar(&o.dest, "dest", "", "output stylesheet, or directory when ending in /")
	cmd.Flags().StringVar(&o.url, "url", "", "CSS API endpoint (default "+font.GoogleFontsAPI+")")
}

// load merges the config file with the flags and resolves the jobs.
func (o *jobOptions) load() (config.Config, []fontface.Job, error) {
	c, err := config.Load(o.configFile)
	if err != nil {
		return c, nil, err
	}
	if o.url != "" {
		c.Url = o.url
	}

	if len(o.src) > 0 || o.dest != "" {
		if len(o.src) == 0 || o.dest == "" {
			return c, nil, errors.New("--src and --dest must be given together")
		}
		c.Jobs = append(c.Jobs, config.JobConfig{Src: o.src, Dest: o.dest})
	}

	logx.DisableStat()
	if err := logx.SetUp(c.Log); err != nil {
		return c, nil, fmt.Errorf("setup logging: %w", err)
	}

	jobs, err := c.ResolveJobs()
	return c, jobs, err
}

func newTask(c config.Config) *fontface.Task {
	return fontface.NewTask(
		fontface.NewPlanner(font.DefaultWeights),
		fontface.NewFetcher(c.FetchOptions()),
	)
}

// newFetchCmd creates the fetch command.
// Examples:
//
//	fontface fetch --src 'fonts/**/*.ttf' --dest css/font.css
//	fontface fetch -f etc/fontface.yaml
func newFetchCmd() *cobra.Command {
	var (
		opts   jobOptions
		strict bool
	)

	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch stylesheets and rewrite them to use the local fonts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, jobs, err := opts.load()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			if c.Metrics.TextFile != "" {
				fontface.EnableMetrics()
			}
			report := newTask(c).Run(ctx, jobs)
			if c.Metrics.TextFile != "" {
				if err := fontface.WriteMetrics(c.Metrics.TextFile); err != nil {
					logx.Errorf("write metrics '%s' failed: %v", c.Metrics.TextFile, err)
				}
			}
			for _, res := range report.Results {
				if res.OK() {
					cmd.Printf("✓ %s\n", res.Request.Dest)
				} else {
					cmd.Printf("✗ %s: %v\n", res.Request.Dest, res.Err)
				}
			}
			for _, err := range report.Skipped {
				cmd.Printf("- skipped: %v\n", err)
			}

			if report.Degraded() {
				cmd.Printf("Completed with failures: %d written, %d failed\n", report.Written(), len(report.Failed()))
			} else {
				cmd.Printf("Completed: %d written\n", report.Written())
			}

			if strict {
				return report.Err()
			}
			return nil
		},
	}

	opts.bind(fetchCmd)
	fetchCmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any file or request failed")

	return fetchCmd
}
