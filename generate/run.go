package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssb/common"
	"cssb/config"
	"cssb/state"
)

// Run implements the build subcommand: read selector definitions, build them
// through the selector builder and write the rendered output.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("generate")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no definitions file has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1) // empty - write to stdout
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	to := cmd.String("to")
	if len(to) == 0 {
		to = env.Cfg.Generate.To
	}
	format, err := common.ParseOutputFmt(to)
	if err != nil {
		log.Warn("Unknown output format requested, switching to text", zap.Error(err))
		format = common.OutputFmtText
	}
	env.To = format
	env.Sort = cmd.Bool("sort") || env.Cfg.Generate.Sort
	env.Sanitize = cmd.Bool("sanitize") || env.Cfg.Generate.Sanitize
	env.Overwrite = cmd.Bool("overwrite")

	log.Info("Generation starting", zap.String("source", src), zap.Stringer("format", format))
	defer func(start time.Time) {
		log.Info("Generation completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read definitions from %q: %w", src, err)
	}
	env.Rpt.StoreData(fmt.Sprintf("input/%s", filepath.Base(src)), data)

	defs, err := LoadDefinitions(data)
	if err != nil {
		return err
	}

	results, buildErr := Build(defs, Options{Sanitize: env.Sanitize, Sort: env.Sort})
	for _, e := range multierr.Errors(buildErr) {
		log.Error("Skipping selector", zap.Error(e))
	}
	log.Debug("Definitions processed", zap.Int("built", len(results)), zap.Int("failed", len(multierr.Errors(buildErr))))

	out, err := Render(results, format)
	if err != nil {
		return err
	}

	if err := write(out, dst, env, log); err != nil {
		return err
	}

	if buildErr != nil {
		return fmt.Errorf("%d of %d definitions failed", len(multierr.Errors(buildErr)), len(defs.Selectors))
	}
	return nil
}

// write sends rendered output to the destination file, or to stdout when no
// destination was given.
func write(out []byte, dst string, env *state.LocalEnv, log *zap.Logger) error {
	if len(dst) == 0 {
		_, err := os.Stdout.Write(out)
		return err
	}

	dst = filepath.Join(filepath.Dir(dst), config.CleanFileName(filepath.Base(dst)))

	if _, err := os.Stat(dst); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", dst)
		}
		log.Warn("Overwriting existing file", zap.String("file", dst))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := os.WriteFile(dst, out, 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	log.Info("Output written", zap.String("file", dst), zap.Int("bytes", len(out)))

	env.Rpt.Store("result"+filepath.Ext(dst), dst)
	return nil
}
