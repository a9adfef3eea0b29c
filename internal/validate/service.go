package validate

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"index-schema/internal/diagnostic"
	"index-schema/internal/mapping"
)

// Report is the outcome of validating one definition file.
type Report struct {
	RequestID string
	Source    string
	Table     string
	// Err is set when the definition could not be loaded; Verdict is then empty.
	Err     error
	Verdict Verdict
}

// Accepted reports whether the definition loaded and was accepted.
func (r Report) Accepted() bool {
	return r.Err == nil && r.Verdict.Accepted()
}

// Service runs validations on behalf of callers, tagging each one with a
// request ID and logging its outcome.
type Service struct {
	cfg       Config
	validator *Validator
	logger    *slog.Logger
}

// NewService returns a Service. A nil logger discards log output.
func NewService(cfg Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Service{cfg: cfg, validator: New(cfg), logger: logger}
}

// ValidateDefinition validates one loaded definition.
func (s *Service) ValidateDefinition(ctx context.Context, def *mapping.Definition) Report {
	rep := Report{
		RequestID: uuid.NewString(),
		Source:    def.Source,
		Table:     def.Table(),
	}

	log := s.logger.With("request_id", rep.RequestID, "table", rep.Table,
		"types", len(def.Catalog.TypeNames()))
	if rep.Source != "" {
		log = log.With("source", rep.Source)
	}

	rep.Verdict = s.validator.Validate(def.Mappers, def.Catalog)

	if rep.Verdict.Accepted() {
		for _, e := range rep.Verdict.Plan.Entries {
			log.DebugContext(ctx, "mapper resolved",
				"mapper", e.Mapper.Name,
				"column", e.Mapper.Column.String(),
				"terminal", e.Terminal.String(),
				"multi_valued", e.MultiValued)
		}

		log.InfoContext(ctx, "definition accepted", "mappers", len(def.Mappers))
	} else {
		d := rep.Verdict.Diagnostic
		log.InfoContext(ctx, "definition rejected",
			"mappers", len(def.Mappers),
			"code", d.Code,
			"field", d.Field,
			"detail", d.Detail)
	}

	return rep
}

// ValidateFile loads the definition at path and validates it.
func (s *Service) ValidateFile(ctx context.Context, path string) Report {
	def, err := mapping.LoadFile(path, mapping.WithDocumentCheck(s.cfg.CheckDocument))
	if err != nil {
		rep := Report{RequestID: uuid.NewString(), Source: path, Err: err}
		s.logger.WarnContext(ctx, "definition not loaded",
			"request_id", rep.RequestID, "source", path, "error", err)

		return rep
	}

	return s.ValidateDefinition(ctx, def)
}

// ValidateFiles validates the files concurrently, at most Config.Concurrency
// at a time. Reports keep the order of paths. The only error returned is
// the context's.
func (s *Service) ValidateFiles(ctx context.Context, paths []string) ([]Report, error) {
	reports := make([]Report, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if s.cfg.Concurrency > 0 {
		g.SetLimit(s.cfg.Concurrency)
	}

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			reports[i] = s.ValidateFile(ctx, path)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

// ValidateAll is ValidateFiles for definitions already in memory.
func (s *Service) ValidateAll(ctx context.Context, defs []*mapping.Definition) ([]Report, error) {
	reports := make([]Report, len(defs))

	g, ctx := errgroup.WithContext(ctx)
	if s.cfg.Concurrency > 0 {
		g.SetLimit(s.cfg.Concurrency)
	}

	for i, def := range defs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			reports[i] = s.ValidateDefinition(ctx, def)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

// Summarize collects the rejections and warnings of all reports.
// Load failures are not diagnostics and are left out.
func Summarize(reports []Report) diagnostic.Diagnostics {
	var ds diagnostic.Diagnostics

	for _, r := range reports {
		if r.Err != nil {
			continue
		}

		ds.Add(r.Verdict.Diagnostic)

		for _, w := range r.Verdict.Warnings() {
			ds.Add(w)
		}
	}

	return ds
}
