package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simforge/meshbatch/internal/assetfmt"
	"github.com/simforge/meshbatch/internal/check"
	"github.com/simforge/meshbatch/internal/config"
	"github.com/simforge/meshbatch/internal/convert"
	"github.com/simforge/meshbatch/internal/display"
	"github.com/simforge/meshbatch/internal/logging"
	"github.com/simforge/meshbatch/internal/pipeline"
	"github.com/simforge/meshbatch/internal/rangespec"
	"github.com/simforge/meshbatch/internal/term"
)

// runConvert is the top-level batch entry point: load config, validate
// paths, expand the subdirectory range, discover and filter assets, then
// hand the job list to the progress-guarded runner.
func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.InputDir = config.NormalizeDirArg(args[0])
	cfg.OutputDir = config.NormalizeDirArg(args[1])
	if err := cfg.Validate(false); err != nil {
		return err
	}

	term.Configure(cfg.ColorMode)
	log, err := logging.NewLogger(&cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	display.PrintBanner(version)

	inputAbs, outputAbs, err := resolveDirs(&cfg)
	if err != nil {
		return err
	}

	log.Info("In:  %s", cfg.InputDir)
	log.Info("Out: %s", cfg.OutputDir)
	if cfg.DryRun {
		log.Warn("DRY RUN")
	}

	if !cfg.DryRun {
		if err := check.CheckDeps(&cfg); err != nil {
			return err
		}
	}

	var allowed rangespec.AllowedSet
	if spec := strings.TrimSpace(cfg.Subdirs); spec != "" {
		allowed, err = rangespec.NewAllowedSet(spec)
		if err != nil {
			return err
		}
		log.Info("Looking in subdirectories: %s", allowed)
	}

	files, err := pipeline.Discover(inputAbs)
	if err != nil {
		return err
	}
	files, err = pipeline.Filter(inputAbs, files, allowed)
	if err != nil {
		return err
	}

	conv := convert.NewExecConverter(&cfg, log.Writer)
	ctx := cmd.Context()

	stats, err := pipeline.Run(ctx, log, files, func(path string) (pipeline.ItemResult, error) {
		return processFile(ctx, &cfg, log, conv, inputAbs, outputAbs, path)
	})
	if err != nil {
		return err
	}

	log.Info("==============================")
	log.Success("Done: %d converted, %d skipped (%s processed)",
		stats.Converted, stats.Skipped, display.FormatBytes(stats.InputBytes))
	return nil
}

// resolveDirs resolves the input and output trees to absolute paths. The
// input must exist; the output is created if needed and must not be inside
// the input. A nested output is rejected before anything is created on disk,
// then re-checked with symlinks resolved.
func resolveDirs(cfg *config.Config) (inputAbs, outputAbs string, err error) {
	inputAbs, err = absPath(cfg.InputDir)
	if err != nil {
		return "", "", fmt.Errorf("input not found: %s", cfg.InputDir)
	}

	inLex, err := filepath.Abs(cfg.InputDir)
	if err != nil {
		return "", "", fmt.Errorf("cannot resolve input path: %s", cfg.InputDir)
	}
	outLex, err := filepath.Abs(cfg.OutputDir)
	if err != nil {
		return "", "", fmt.Errorf("cannot resolve output path: %s", cfg.OutputDir)
	}
	if err := cfg.ValidatePaths(inLex, outLex); err != nil {
		return "", "", err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return "", "", fmt.Errorf("cannot create output directory: %s", cfg.OutputDir)
	}
	outputAbs, err = absPath(cfg.OutputDir)
	if err != nil {
		return "", "", fmt.Errorf("cannot resolve output path: %s", cfg.OutputDir)
	}
	if err := cfg.ValidatePaths(inputAbs, outputAbs); err != nil {
		return "", "", err
	}
	return inputAbs, outputAbs, nil
}

// processFile handles one asset: derive destination, skip-existing check,
// header sanity check, then run the external converter.
func processFile(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	conv convert.Converter,
	inputAbs, outputAbs, path string,
) (pipeline.ItemResult, error) {
	rel, err := filepath.Rel(inputAbs, path)
	if err != nil {
		return pipeline.ItemResult{}, err
	}

	dst, err := convert.DestPath(inputAbs, outputAbs, path)
	if err != nil {
		return pipeline.ItemResult{}, err
	}

	if cfg.SkipExisting {
		if _, err := os.Stat(dst); err == nil {
			log.Warn("Skip (exists): %s", rel)
			return pipeline.ItemResult{Status: pipeline.StatusSkipped}, nil
		}
	}

	fi, err := os.Stat(path)
	if err != nil {
		// File disappeared between enumeration and processing.
		return pipeline.ItemResult{}, err
	}

	log.Info("Converting: %s (%s)", rel, display.FormatBytes(fi.Size()))
	log.Debug("  -> %s", dst)
	log.Debug("  %s", strings.Join(convert.BuildArgs(cfg, path, dst), " "))

	if f, err := assetfmt.Sniff(path); err == nil {
		switch {
		case f == assetfmt.Unknown:
			log.Debug("  unrecognized header, trusting extension")
		case !assetfmt.MatchesExt(f, filepath.Ext(path)):
			log.Warn("  header looks like %s but extension is %s", f, filepath.Ext(path))
		}
	}

	if cfg.DryRun {
		log.Success("[DRY] Would convert -> %s", dst)
		return pipeline.ItemResult{Status: pipeline.StatusConverted, InputBytes: fi.Size()}, nil
	}

	if err := conv.Convert(ctx, path, dst); err != nil {
		return pipeline.ItemResult{}, err
	}
	return pipeline.ItemResult{Status: pipeline.StatusConverted, InputBytes: fi.Size()}, nil
}

// absPath returns the absolute path with symlinks resolved, for comparing
// input vs output hierarchy.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
