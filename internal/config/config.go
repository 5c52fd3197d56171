package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joeblew999/plat-fontface/pkg/fontface"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
)

// ErrNoJobs is returned when neither the config file nor flags name a job.
var ErrNoJobs = errors.New("no jobs configured")

// Config holds the fontface configuration.
type Config struct {
	// Url is the CSS API endpoint stylesheets are fetched from.
	Url     string        `json:",default=https://fonts.googleapis.com/css"`
	Jobs    []JobConfig   `json:",optional"`
	Http    HttpConfig    `json:",optional"`
	Metrics MetricsConfig `json:",optional"`
	Log     logx.LogConf  `json:",optional"`
}

// JobConfig is one set of font globs and its destination. A Dest ending in
// "/" receives one stylesheet per family.
type JobConfig struct {
	Src  []string
	Dest string
}

// HttpConfig tunes the client talking to the font service.
type HttpConfig struct {
	Timeout   time.Duration `json:",default=30s"`
	UserAgent string        `json:",optional"`
	RateLimit float64       `json:",default=0"`
}

// MetricsConfig enables the fetch metrics. When TextFile is set they are
// written there after each run, for the node_exporter textfile collector.
type MetricsConfig struct {
	TextFile string `json:",optional"`
}

// Load reads path, or only applies defaults when path is empty.
// ${VAR} references in the file are expanded from the environment.
func Load(path string) (Config, error) {
	var c Config
	if path == "" {
		if err := conf.FillDefault(&c); err != nil {
			return c, fmt.Errorf("fill defaults: %w", err)
		}
		return c, nil
	}
	if err := conf.Load(path, &c, conf.UseEnv()); err != nil {
		return c, fmt.Errorf("load config %s: %w", path, err)
	}
	return c, nil
}

// FetchOptions returns the fetcher settings of c.
func (c Config) FetchOptions() fontface.Options {
	return fontface.Options{
		URL:       c.Url,
		Timeout:   c.Http.Timeout,
		UserAgent: c.Http.UserAgent,
		RateLimit: c.Http.RateLimit,
	}
}

// ResolveJobs expands the source globs of every job.
func (c Config) ResolveJobs() ([]fontface.Job, error) {
	if len(c.Jobs) == 0 {
		return nil, ErrNoJobs
	}
	jobs := make([]fontface.Job, 0, len(c.Jobs))
	for _, jc := range c.Jobs {
		if jc.Dest == "" {
			return nil, fmt.Errorf("job %v: dest is required", jc.Src)
		}
		sources, err := fontface.ExpandSources(jc.Src)
		if err != nil {
			return nil, err
		}
		if len(sources) == 0 {
			logx.Infow("No font files matched", logx.Field("src", jc.Src), logx.Field("dest", jc.Dest))
		}
		jobs = append(jobs, fontface.Job{Sources: sources, Dest: jc.Dest})
	}
	return jobs, nil
}
