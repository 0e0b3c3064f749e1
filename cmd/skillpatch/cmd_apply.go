package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gw1tools/gw1builds/internal/audit"
	"github.com/gw1tools/gw1builds/internal/config"
	"github.com/gw1tools/gw1builds/internal/gwdata"
	"github.com/gw1tools/gw1builds/internal/patch"
)

const defaultConfigPath = "config/skillpatch.yaml"

var applyFlags struct {
	configPath string
	dataDir    string
	dryRun     bool
}

var applyCmd = &cobra.Command{
	Use:   "apply <patch>...",
	Short: "Apply one or more registered patches to the skill data files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runApply,
}

func init() {
	f := applyCmd.Flags()
	f.StringVarP(&applyFlags.configPath, "config", "c", "", "Config file path (default "+defaultConfigPath+")")
	f.StringVarP(&applyFlags.dataDir, "data-dir", "d", "", "Override the data directory from config")
	f.BoolVarP(&applyFlags.dryRun, "dry-run", "n", false, "Apply in memory and report, but write nothing")
}

func runApply(cmd *cobra.Command, args []string) error {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	ctx := cmd.Context()

	cfgPath := applyFlags.configPath
	if cfgPath == "" {
		cfgPath = defaultConfigPath
		if p := os.Getenv("SKILLPATCH_CONFIG"); p != "" {
			cfgPath = p
		}
	}
	cfg, err := config.LoadSkillPatch(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if applyFlags.dataDir != "" {
		cfg.Data.Dir = applyFlags.dataDir
	}

	// Разрешаем все имена до первой правки: опечатка в последнем
	// аргументе не должна оставить данные наполовину пропатченными.
	patches := make([]patch.Patch, 0, len(args))
	for _, name := range args {
		p, ok := patch.Find(name)
		if !ok {
			return fmt.Errorf("unknown patch %q, run 'skillpatch list' to see registered patches", name)
		}
		patches = append(patches, p)
	}

	var ledger *audit.Ledger
	if cfg.Audit.Enabled {
		dsn := cfg.Audit.Database.DSN()
		ledger, err = audit.New(ctx, dsn)
		if err != nil {
			return fmt.Errorf("connecting audit ledger: %w", err)
		}
		defer ledger.Close()
		if err := audit.RunMigrations(ctx, dsn); err != nil {
			return fmt.Errorf("running audit migrations: %w", err)
		}
		slog.Info("audit ledger connected")
	}

	out := cmd.OutOrStdout()
	for _, p := range patches {
		rep, err := applyOne(ctx, cfg, p, ledger)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %s\n", p.Name, rep.Summary())
		if !rep.OK() {
			return fmt.Errorf("patch %s: %d changes failed, files not written", p.Name, rep.Failed)
		}
	}
	return nil
}

// applyOne прогоняет один патч как отдельный батч: загрузка обоих
// файлов, применение, запись только при нуле ошибок.
func applyOne(ctx context.Context, cfg config.SkillPatch, p patch.Patch, ledger *audit.Ledger) (*patch.Report, error) {
	dataPath := cfg.Data.SkillDataPath()
	descPath := cfg.Data.SkillDescPath()

	run := audit.Run{
		ID:        uuid.New(),
		PatchName: p.Name,
		StartedAt: time.Now(),
		DryRun:    applyFlags.dryRun,
	}
	if ledger != nil {
		var err error
		if run.SkillDataBefore, err = gwdata.Fingerprint(dataPath); err != nil {
			return nil, fmt.Errorf("fingerprinting %s: %w", dataPath, err)
		}
		if run.SkillDescBefore, err = gwdata.Fingerprint(descPath); err != nil {
			return nil, fmt.Errorf("fingerprinting %s: %w", descPath, err)
		}
	}

	st, err := gwdata.LoadAll(dataPath, descPath)
	if err != nil {
		return nil, err
	}

	rep := patch.Apply(st, p)

	if rep.OK() && !applyFlags.dryRun {
		if err := st.Save(); err != nil {
			return nil, fmt.Errorf("saving patched files: %w", err)
		}
		run.FilesWritten = true
		slog.Info("files written", "skilldata", dataPath, "skilldesc", descPath)
	}

	if ledger != nil {
		run.SkillDataAfter = run.SkillDataBefore
		run.SkillDescAfter = run.SkillDescBefore
		if run.FilesWritten {
			if run.SkillDataAfter, err = gwdata.Fingerprint(dataPath); err != nil {
				return nil, fmt.Errorf("fingerprinting %s: %w", dataPath, err)
			}
			if run.SkillDescAfter, err = gwdata.Fingerprint(descPath); err != nil {
				return nil, fmt.Errorf("fingerprinting %s: %w", descPath, err)
			}
		}
		run.FinishedAt = time.Now()
		run.AppliedMechanical = rep.AppliedMechanical
		run.AppliedDescriptions = rep.AppliedDescriptions
		run.Failed = rep.Failed
		if err := ledger.Record(ctx, run); err != nil {
			return nil, err
		}
	}

	return rep, nil
}
