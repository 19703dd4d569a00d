package pipeline

import (
	"go.uber.org/zap"

	"github.com/dotcommander/racas/internal/discovery"
	"github.com/dotcommander/racas/internal/site"
	"github.com/dotcommander/racas/internal/types"
)

// WritePartials renders head-base, header and footer from the site settings
// into the templates directory, replacing any existing copies.
func (p *Pipeline) WritePartials() ([]string, error) {
	fd := discovery.NewFileDiscovery(p.cfg.Root)
	files, err := fd.DiscoverDataFilesWithRegistry(p.cfg.DataDir, []discovery.DataFileEntry{
		{Kind: types.KindSite, BaseName: "site", Required: false},
	})
	if err != nil {
		return nil, err
	}
	settings, err := site.LoadSettings(files.Path(types.KindSite))
	if err != nil {
		return nil, err
	}

	written, err := site.WritePartials(p.cfg.TemplatesPath(), site.RenderPartials(settings, p.now().Year()))
	if err != nil {
		return written, err
	}
	for _, path := range written {
		p.logger.Debug("partial written", zap.String("path", path))
	}
	p.logger.Info("partials written", zap.String("dir", p.cfg.TemplatesPath()), zap.Int("count", len(written)))
	return written, nil
}
