// Package pipeline coordinates a site build: it loads the data files, scores
// every breed, renders the pages and writes the client payload.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dotcommander/racas/internal/breed"
	"github.com/dotcommander/racas/internal/client"
	"github.com/dotcommander/racas/internal/config"
	"github.com/dotcommander/racas/internal/discovery"
	"github.com/dotcommander/racas/internal/rules"
	"github.com/dotcommander/racas/internal/schema"
	"github.com/dotcommander/racas/internal/scoring"
	"github.com/dotcommander/racas/internal/site"
	"github.com/dotcommander/racas/internal/types"
)

// Options selects the outputs a run produces.
type Options struct {
	Pages  bool
	Client bool
}

// AllOutputs renders the pages and writes the client payload.
var AllOutputs = Options{Pages: true, Client: true}

// Dataset holds the loaded data files.
type Dataset struct {
	Files    discovery.DataFiles
	Rules    *rules.RuleTable
	Breeds   []breed.Breed
	Aliases  breed.Aliases
	Settings site.Settings
}

// Pipeline coordinates a build over the configured site root.
type Pipeline struct {
	cfg    *config.Config
	logger *zap.Logger
	opts   Options
	now    func() time.Time
}

// New creates a pipeline. A nil logger discards log output.
func New(cfg *config.Config, logger *zap.Logger, opts Options) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		cfg:    cfg,
		logger: logger,
		opts:   opts,
		now:    time.Now,
	}
}

// WithClock replaces the clock used for timings and the footer year.
func (p *Pipeline) WithClock(now func() time.Time) *Pipeline {
	p.now = now
	return p
}

// Run executes a build with the default outputs.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Summary, error) {
	return New(cfg, logger, AllOutputs).Run(ctx)
}

// Load discovers and decodes the data files. Schema violations in the rule
// table or the breed list abort the load with a *schema.Error.
func (p *Pipeline) Load() (*Dataset, error) {
	fd := discovery.NewFileDiscovery(p.cfg.Root)
	files, err := fd.DiscoverDataFiles(p.cfg.DataDir)
	if err != nil {
		return nil, err
	}

	validator, err := schema.NewValidator()
	if err != nil {
		return nil, fmt.Errorf("error initializing schema validator: %w", err)
	}

	table, err := rules.Load(files.Path(types.KindRules), validator)
	if err != nil {
		return nil, err
	}
	breeds, err := breed.LoadBreeds(files.Path(types.KindBreeds), validator)
	if err != nil {
		return nil, err
	}
	aliases, err := breed.LoadAliases(files.Path(types.KindAliases))
	if err != nil {
		return nil, err
	}
	settings, err := site.LoadSettings(files.Path(types.KindSite))
	if err != nil {
		return nil, err
	}

	p.logger.Info("data loaded",
		zap.String("rules", files.Path(types.KindRules)),
		zap.String("breeds", files.Path(types.KindBreeds)),
		zap.Int("count", len(breeds)),
		zap.Int("aliases", len(aliases)))

	return &Dataset{
		Files:    files,
		Rules:    table,
		Breeds:   breeds,
		Aliases:  aliases,
		Settings: settings,
	}, nil
}

// Score scores breeds in input order. With parallel enabled the breeds are
// scored by at most cfg.Concurrency goroutines.
func (p *Pipeline) Score(ctx context.Context, engine *scoring.Engine, breeds []breed.Breed) ([]site.Scored, error) {
	scored := make([]site.Scored, len(breeds))

	if !p.cfg.Parallel {
		for i, b := range breeds {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			scored[i] = site.Scored{Breed: b, Scores: engine.Score(b)}
		}
		return scored, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Concurrency)
	for i, b := range breeds {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			scored[i] = site.Scored{Breed: b, Scores: engine.Score(b)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scored, nil
}

// Run executes the build and returns its summary.
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	start := p.now()

	ds, err := p.Load()
	if err != nil {
		return nil, err
	}

	engine, err := scoring.NewEngine(ds.Rules, p.cfg.Profile)
	if err != nil {
		return nil, err
	}

	scored, err := p.Score(ctx, engine, ds.Breeds)
	if err != nil {
		return nil, fmt.Errorf("scoring interrupted: %w", err)
	}
	p.logger.Info("breeds scored",
		zap.String("profile", engine.Profile().Name),
		zap.Int("count", len(scored)),
		zap.Bool("parallel", p.cfg.Parallel))

	summary := newSummary(engine.Profile(), start)
	summary.Issues = DuplicateSlugs(ds.Files.Path(types.KindBreeds), ds.Breeds)
	for _, issue := range summary.Issues {
		p.logger.Warn(issue.Message, zap.String("file", issue.File), zap.String("path", issue.Path))
	}

	renderer, err := p.renderer(ds)
	if err != nil {
		return nil, err
	}
	for _, s := range scored {
		summary.addBreed(s, renderer.DetailURL(s.Breed.SlugOrDefault()))
	}

	if p.opts.Pages {
		if err := p.writePages(renderer, scored, summary); err != nil {
			return nil, err
		}
	}

	if p.opts.Client {
		records := make([]client.Record, 0, len(scored))
		for _, s := range scored {
			records = append(records, client.Build(s.Breed, s.Scores, ds.Rules, ds.Aliases))
		}
		path, err := client.Write(p.cfg.DataPath(), records)
		if err != nil {
			return nil, err
		}
		summary.ClientFile = path
		p.logger.Info("client payload written", zap.String("path", path), zap.Int("records", len(records)))
	}

	summary.Duration = p.now().Sub(start)
	return summary, nil
}

// renderer builds the page renderer. Partials found in the templates
// directory win over the ones rendered from the site settings.
func (p *Pipeline) renderer(ds *Dataset) (*site.Renderer, error) {
	fd := discovery.NewFileDiscovery(p.cfg.Root)
	paths, err := fd.DiscoverTemplates(p.cfg.TemplatesDir)
	if err != nil {
		return nil, err
	}
	templates, err := site.LoadTemplates(paths)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("templates discovered", zap.Int("count", len(templates)))

	base := ds.Settings.Base()
	partials := site.RenderPartials(ds.Settings, p.now().Year()).Resolve(templates, base)
	return &site.Renderer{
		Base:      base,
		Partials:  partials,
		Templates: templates,
		Rules:     ds.Rules,
		Aliases:   ds.Aliases,
	}, nil
}

func (p *Pipeline) writePages(r *site.Renderer, scored []site.Scored, summary *Summary) error {
	pages, err := r.RenderAll(scored)
	if err != nil {
		if errors.Is(err, site.ErrMissingTemplate) {
			return fmt.Errorf("%w (templates directory: %s)", err, p.cfg.TemplatesPath())
		}
		return err
	}

	out := p.cfg.OutputPath()
	if err := site.WritePages(out, pages); err != nil {
		return err
	}
	for _, page := range pages {
		p.logger.Debug("page written", zap.String("path", page.Path))
		summary.Pages = append(summary.Pages, page.Path)
	}
	p.logger.Info("pages written", zap.String("output", out), zap.Int("count", len(pages)))
	return nil
}

// DuplicateSlugs reports breeds whose slug was already used by an earlier
// record. The later page overwrites the earlier one.
func DuplicateSlugs(file string, breeds []breed.Breed) []types.ValidationError {
	var issues []types.ValidationError
	seen := make(map[string]int, len(breeds))
	for i, b := range breeds {
		slug := b.SlugOrDefault()
		if first, ok := seen[slug]; ok {
			issues = append(issues, types.ValidationError{
				File:     file,
				Message:  fmt.Sprintf("duplicate slug %q (first used by record %d)", slug, first),
				Severity: types.SeverityWarning,
				Path:     fmt.Sprintf("[%d].slug", i),
			})
			continue
		}
		seen[slug] = i
	}
	return issues
}
