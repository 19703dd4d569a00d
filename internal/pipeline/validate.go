package pipeline

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/dotcommander/racas/internal/breed"
	"github.com/dotcommander/racas/internal/discovery"
	"github.com/dotcommander/racas/internal/rules"
	"github.com/dotcommander/racas/internal/schema"
	"github.com/dotcommander/racas/internal/scoring"
	"github.com/dotcommander/racas/internal/site"
	"github.com/dotcommander/racas/internal/types"
)

// RequiredTemplates lists every template a full build reads.
func RequiredTemplates() []string {
	names := []string{site.TemplateHome, site.TemplateList, site.TemplateDetail, site.TemplateCompare}
	for _, sp := range site.StaticPages {
		names = append(names, sp.Template)
	}
	return names
}

// Validate checks the data files and templates without writing anything.
// Problems are collected into the summary; only discovery failures are
// returned.
func (p *Pipeline) Validate() (*Summary, error) {
	start := p.now()
	summary := &Summary{StartTime: start}

	fd := discovery.NewFileDiscovery(p.cfg.Root)
	files, err := fd.DiscoverDataFiles(p.cfg.DataDir)
	if err != nil {
		return nil, err
	}
	validator, err := schema.NewValidator()
	if err != nil {
		return nil, fmt.Errorf("error initializing schema validator: %w", err)
	}

	rulesFile := files.Path(types.KindRules)
	if data, ok := checkSchema(rulesFile, validator.ValidateRules, summary); ok {
		p.checkRules(rulesFile, data, summary)
	}

	breedsFile := files.Path(types.KindBreeds)
	if data, ok := checkSchema(breedsFile, validator.ValidateBreeds, summary); ok {
		breeds, err := breed.ParseBreeds(breedsFile, data, nil)
		if err != nil {
			summary.Issues = append(summary.Issues, issueFromError(breedsFile, err))
		} else {
			summary.Issues = append(summary.Issues, DuplicateSlugs(breedsFile, breeds)...)
		}
	}

	if path := files.Path(types.KindAliases); path != "" {
		if _, err := breed.LoadAliases(path); err != nil {
			summary.Issues = append(summary.Issues, issueFromError(path, err))
		}
	}
	if path := files.Path(types.KindSite); path != "" {
		if _, err := site.LoadSettings(path); err != nil {
			summary.Issues = append(summary.Issues, issueFromError(path, err))
		}
	}

	missing, err := p.missingTemplates(fd)
	if err != nil {
		return nil, err
	}
	summary.Issues = append(summary.Issues, missing...)

	summary.Duration = p.now().Sub(start)
	p.logger.Info("validation finished",
		zap.Int("errors", summary.ErrorCount()),
		zap.Int("warnings", summary.WarningCount()))
	return summary, nil
}

// checkSchema reads file and validates it. It reports whether the document
// is schema-valid and returns its JSON form.
func checkSchema(file string, validate func(string, []byte) ([]types.ValidationError, error), summary *Summary) ([]byte, bool) {
	data, err := discovery.ReadDataFile(file)
	if err != nil {
		summary.Issues = append(summary.Issues, issueFromError(file, err))
		return nil, false
	}
	issues, err := validate(file, data)
	if err != nil {
		summary.Issues = append(summary.Issues, issueFromError(file, err))
		return nil, false
	}
	summary.Issues = append(summary.Issues, issues...)
	return data, len(issues) == 0
}

// checkRules decodes a schema-valid rule table and checks the weight sets for
// the configured profile.
func (p *Pipeline) checkRules(file string, data []byte, summary *Summary) {
	table, err := rules.Parse(file, data, nil)
	if err != nil {
		summary.Issues = append(summary.Issues, issueFromError(file, err))
		return
	}
	engine, err := scoring.NewEngine(table, p.cfg.Profile)
	if err != nil {
		summary.Issues = append(summary.Issues, issueFromError(file, err))
		return
	}
	summary.Profile = engine.Profile().Name
	summary.ProfileLabel = engine.Profile().Label()
}

func (p *Pipeline) missingTemplates(fd *discovery.FileDiscovery) ([]types.ValidationError, error) {
	found, err := fd.DiscoverTemplates(p.cfg.TemplatesDir)
	if err != nil {
		return nil, err
	}
	var issues []types.ValidationError
	for _, name := range RequiredTemplates() {
		if _, ok := found[name]; ok {
			continue
		}
		issues = append(issues, types.ValidationError{
			File:     p.cfg.TemplatesPath(),
			Message:  fmt.Sprintf("template not found: %s", name),
			Severity: types.SeverityError,
		})
	}
	for _, name := range []string{site.PartialHeadBase, site.PartialHeader, site.PartialFooter} {
		if _, ok := found[name]; !ok {
			issues = append(issues, types.ValidationError{
				File:     p.cfg.TemplatesPath(),
				Message:  fmt.Sprintf("partial %s not found, the default rendered from site settings is used", name),
				Severity: types.SeverityWarning,
			})
		}
	}
	return issues, nil
}

func issueFromError(file string, err error) types.ValidationError {
	return types.ValidationError{
		File:     file,
		Message:  err.Error(),
		Severity: types.SeverityError,
	}
}
