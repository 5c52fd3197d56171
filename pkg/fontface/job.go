// Package fontface turns jobs of local TrueType files into self-hosted
// Google Fonts stylesheets.
package fontface

import (
	"context"
	"fmt"
	"strings"

	"github.com/joeblew999/plat-fontface/pkg/font"
	"github.com/zeromicro/go-zero/core/logx"
)

// Job is a resolved list of font files and where their stylesheet goes.
// A Dest ending in "/" is a directory that receives one file per family.
type Job struct {
	Sources []string
	Dest    string
}

// FamilyRequest is one fetch-and-write unit of work.
type FamilyRequest struct {
	Query   string   // value of the family parameter
	Dest    string   // output file
	Sources []string // the job's full source list
}

// IsDirectory reports whether dest names a directory.
func IsDirectory(dest string) bool {
	return strings.HasSuffix(dest, "/")
}

// GroupSources groups sources by family name in first-seen order. Files
// breaking the naming convention are skipped and returned as errors.
func GroupSources(parser *font.Parser, sources []string) ([]font.Family, []error) {
	var (
		families []font.Family
		errs     []error
		index    = make(map[string]int)
	)
	for _, src := range sources {
		d, err := parser.Extract(src)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		i, ok := index[d.Family]
		if !ok {
			i = len(families)
			index[d.Family] = i
			families = append(families, font.Family{Name: d.Family})
		}
		families[i].Formats = append(families[i].Formats, d.Format)
	}
	return families, errs
}

// Planner turns jobs into family requests.
type Planner struct {
	parser  *font.Parser
	encoder *font.Encoder
}

// NewPlanner creates a planner for the given weight table.
func NewPlanner(weights font.WeightTable) *Planner {
	return &Planner{
		parser:  font.NewParser(weights),
		encoder: font.NewEncoder(weights),
	}
}

// Plan builds the requests for job: one combined request for a file
// destination, one per family for a directory destination. Unparseable
// sources are logged and returned alongside the requests.
func (p *Planner) Plan(ctx context.Context, job Job) ([]FamilyRequest, []error) {
	families, errs := GroupSources(p.parser, job.Sources)
	for _, err := range errs {
		logx.WithContext(ctx).Error(err.Error())
	}

	if len(families) == 0 {
		err := fmt.Errorf("%w: %s", ErrNoFamilies, job.Dest)
		logx.WithContext(ctx).Errorw("Nothing to fetch", logx.Field("dest", job.Dest))
		return nil, append(errs, err)
	}

	if !IsDirectory(job.Dest) {
		return []FamilyRequest{{
			Query:   p.encoder.EncodeFamilies(families),
			Dest:    job.Dest,
			Sources: job.Sources,
		}}, errs
	}

	requests := make([]FamilyRequest, 0, len(families))
	for _, f := range families {
		requests = append(requests, FamilyRequest{
			Query:   p.encoder.EncodeFamily(f.Name, f.Formats),
			Dest:    job.Dest + f.Name + ".css",
			Sources: job.Sources,
		})
	}
	return requests, errs
}
