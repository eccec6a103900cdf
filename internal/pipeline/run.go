package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"hara/internal/catalog"
	"hara/internal/config"
	"hara/internal/index"
	"hara/internal/logging"
	"hara/internal/manifest"
	"hara/internal/metadata"
)

// Stage names in execution order.
const (
	StageScan   = "scan"
	StageEncode = "encode"
	StageIndex  = "index"
	StageWrite  = "write"
)

// Options controls a single build.
type Options struct {
	Config *config.Config
	Logger *slog.Logger
	// RunID is recorded in the search index build history.
	RunID string
	// DryRun stops after encoding; nothing is written.
	DryRun bool
}

// Result summarizes a completed build.
type Result struct {
	Report   catalog.Report
	Format   manifest.Format
	Data     []byte
	Output   manifest.WriteResult
	Indexed  bool
	Duration time.Duration
}

// Run executes a build. The manifest is replaced last, after the catalog has
// been validated and the index rebuilt, so any failure leaves it untouched.
func Run(ctx context.Context, opts Options) (Result, error) {
	if opts.Config == nil {
		return Result{}, errors.New("pipeline: config is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := opts.Config
	logger := logging.NewComponentLogger(opts.Logger, "pipeline")
	started := time.Now()

	format, err := manifest.ParseFormat(cfg.Output.Format)
	if err != nil {
		return Result{}, err
	}
	labels, err := metadata.NewLabels(cfg.Metadata.TitleLabels, cfg.Metadata.CategoryLabels, cfg.Metadata.AbstractLabels)
	if err != nil {
		return Result{}, fmt.Errorf("metadata labels: %w", err)
	}
	builder := catalog.NewBuilder(catalog.Layout{
		MetaRoot:          cfg.Paths.MetaRoot,
		PaperRoot:         cfg.Paths.PaperRoot,
		Extension:         cfg.Metadata.Extension,
		DocumentExtension: cfg.Metadata.DocumentExtension,
	}, labels, opts.Logger)

	result := Result{Format: format}

	err = runStage(ctx, logger, StageScan, func(stageCtx context.Context) error {
		report, err := builder.BuildReport(stageCtx)
		result.Report = report
		return err
	})
	if err != nil {
		return result, err
	}

	err = runStage(ctx, logger, StageEncode, func(context.Context) error {
		if err := manifest.ValidateCatalog(result.Report.Catalog); err != nil {
			return err
		}
		data, err := manifest.Encode(result.Report.Catalog, format)
		result.Data = data
		return err
	})
	if err != nil {
		return result, err
	}

	if opts.DryRun {
		result.Duration = time.Since(started)
		return result, nil
	}

	if cfg.IndexEnabled() {
		err = runStage(ctx, logger, StageIndex, func(stageCtx context.Context) error {
			store, err := index.Open(stageCtx, cfg.Paths.Index)
			if err != nil {
				return err
			}
			defer store.Close()
			return store.Rebuild(stageCtx, opts.RunID, result.Report.Catalog)
		})
		if err != nil {
			return result, err
		}
		result.Indexed = true
	}

	err = runStage(ctx, logger, StageWrite, func(context.Context) error {
		output, err := manifest.Write(cfg.Paths.Output, result.Data)
		result.Output = output
		return err
	})
	if err != nil {
		return result, err
	}

	result.Duration = time.Since(started)
	return result, nil
}

func runStage(ctx context.Context, logger *slog.Logger, name string, fn func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stageCtx := logging.WithStage(ctx, name)
	stageLogger := logging.WithContext(stageCtx, logger)
	stageLogger.Debug("stage started", logging.String(logging.FieldEventType, "stage_start"))

	started := time.Now()
	if err := fn(stageCtx); err != nil {
		stageLogger.Error("stage failed",
			logging.String(logging.FieldEventType, "stage_failure"),
			logging.Duration("elapsed", time.Since(started)),
			logging.Error(err),
		)
		return fmt.Errorf("%s: %w", name, err)
	}

	stageLogger.Debug("stage completed",
		logging.String(logging.FieldEventType, "stage_complete"),
		logging.Duration("elapsed", time.Since(started)),
	)
	return nil
}
