package unicov

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/IgorBayerl/unicov/internal/filereader"
	"github.com/IgorBayerl/unicov/internal/filesystem"
	"github.com/IgorBayerl/unicov/internal/model"
	"github.com/IgorBayerl/unicov/internal/parser"
	"github.com/IgorBayerl/unicov/internal/parser/filtering"
	"golang.org/x/sync/errgroup"
)

// Loader reads reports from a filesystem and runs them through the adapters.
type Loader struct {
	reader *filereader.Reader
}

// NewLoader creates a Loader. A nil fsys uses the host filesystem.
func NewLoader(fsys filesystem.Filesystem) *Loader {
	return &Loader{reader: filereader.New(fsys)}
}

var defaultLoader = NewLoader(nil)

// DetectFormat identifies the adapter for report content.
func DetectFormat(content string) (parser.Format, error) {
	return parser.DetectFormat(content)
}

// FromCoverage loads one report from the host filesystem.
func FromCoverage(ctx context.Context, coverageFile string, format parser.Format, opts parser.Options) (*Unicov, error) {
	return defaultLoader.FromCoverage(ctx, coverageFile, format, opts)
}

// FromCoverages loads several reports from the host filesystem and merges them.
func FromCoverages(ctx context.Context, coverageFiles []string, format parser.Format, opts parser.Options) (*Unicov, error) {
	return defaultLoader.FromCoverages(ctx, coverageFiles, format, opts)
}

// DetectFileFormat reads coverageFile and identifies its format.
func (l *Loader) DetectFileFormat(coverageFile string) (parser.Format, error) {
	content, err := l.read(coverageFile)
	if err != nil {
		return "", err
	}
	format, err := parser.DetectFormat(content)
	if err != nil {
		return "", fmt.Errorf("can't auto detect coverage format of %s: %w", coverageFile, err)
	}
	return format, nil
}

// FromCoverage loads one report. With FormatAuto (or an empty format) the
// adapter is chosen by content signature.
func (l *Loader) FromCoverage(ctx context.Context, coverageFile string, format parser.Format, opts parser.Options) (*Unicov, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := l.load(coverageFile, format, opts)
	if err != nil {
		return nil, err
	}
	return New(data, opts.CaseInsensitive), nil
}

// FromCoverages loads every report concurrently and merges the results once
// all loads have finished. Reports later in coverageFiles win on
// conflicting lines. The first failure aborts the whole load.
func (l *Loader) FromCoverages(ctx context.Context, coverageFiles []string, format parser.Format, opts parser.Options) (*Unicov, error) {
	results := make([]model.CoverageMap, len(coverageFiles))
	g, gctx := errgroup.WithContext(ctx)
	for i, file := range coverageFiles {
		i, file := i, file
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := l.load(file, format, opts)
			if err != nil {
				return err
			}
			results[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return New(model.Merge(results...), opts.CaseInsensitive), nil
}

func (l *Loader) load(coverageFile string, format parser.Format, opts parser.Options) (model.CoverageMap, error) {
	fileFilter, err := filtering.NewDefaultFilter(opts.FileFilters)
	if err != nil {
		return nil, err
	}

	content, err := l.read(coverageFile)
	if err != nil {
		return nil, err
	}

	p, err := selectParser(content, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", coverageFile, err)
	}

	data, err := p.Parse(content, opts)
	if err != nil {
		var parseErr *parser.ParseError
		if errors.As(err, &parseErr) && parseErr.Path == "" {
			parseErr.Path = coverageFile
			return nil, parseErr
		}
		return nil, fmt.Errorf("%s: %w", coverageFile, err)
	}

	data = filtering.Apply(data, fileFilter)
	slog.Info("Loaded coverage report.", "file", coverageFile, "format", p.Format(), "files", len(data))
	return data, nil
}

func (l *Loader) read(coverageFile string) (string, error) {
	if !l.reader.Exists(coverageFile) {
		return "", fmt.Errorf("%w: %s", parser.ErrFileNotFound, coverageFile)
	}
	content, err := l.reader.ReadText(coverageFile)
	if err != nil {
		if filesystem.IsNotExist(err) {
			return "", fmt.Errorf("%w: %w", parser.ErrFileNotFound, err)
		}
		return "", err
	}
	return content, nil
}

func selectParser(content string, format parser.Format) (parser.IParser, error) {
	if format == "" || format == parser.FormatAuto {
		return parser.FindParserForContent(content)
	}
	return parser.ParserFor(format)
}
