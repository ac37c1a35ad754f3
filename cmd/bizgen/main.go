package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/mmrzaf/bizgen/internal/app"
	"github.com/mmrzaf/bizgen/internal/config"
	"github.com/mmrzaf/bizgen/internal/domain"
	"github.com/mmrzaf/bizgen/internal/infra/repos/presets"
	"github.com/mmrzaf/bizgen/internal/infra/repos/targets"
	"github.com/mmrzaf/bizgen/internal/logging"
	"github.com/mmrzaf/bizgen/internal/registry"
	"github.com/mmrzaf/bizgen/internal/tabular"
	"github.com/mmrzaf/bizgen/internal/timeutil"
	"github.com/mmrzaf/bizgen/internal/validation"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	cfg        *config.Config
	presetsDir string
	targetsDir string
	outputDir  string
	logLevel   string
)

func main() {
	cfg = config.Load()

	rootCmd := &cobra.Command{
		Use:          "bizgen",
		Short:        "Synthetic business records generator",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&presetsDir, "presets-dir", cfg.PresetsDir, "Presets directory")
	rootCmd.PersistentFlags().StringVar(&targetsDir, "targets-dir", cfg.TargetsDir, "Targets directory")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", cfg.OutputDir, "Directory for --save")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level")

	rootCmd.AddCommand(categoriesCmd())
	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(presetCmd())
	rootCmd.AddCommand(targetCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newService() *app.GenerationService {
	logger := logging.NewLogger(logLevel)
	return app.NewGenerationService(
		presets.NewFileRepository(presetsDir),
		targets.NewFileRepository(targetsDir),
		registry.DefaultGeneratorRegistry(),
		logger,
	)
}

func isPath(arg string) bool {
	return strings.Contains(arg, "/") ||
		strings.HasSuffix(arg, ".yaml") || strings.HasSuffix(arg, ".yml") || strings.HasSuffix(arg, ".json")
}

func categoriesCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List categories and subcategories",
		RunE: func(cmd *cobra.Command, args []string) error {
			list := registry.DefaultGeneratorRegistry().Categories()

			if format == "json" {
				data, _ := json.MarshalIndent(list, "", "  ")
				fmt.Println(string(data))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tSUBCATEGORIES")
			for _, c := range list {
				subs := "-"
				if len(c.Subcategories) > 0 {
					subs = strings.Join(c.Subcategories, ", ")
				}
				fmt.Fprintf(w, "%s\t%s\n", c.Name, subs)
			}
			w.Flush()
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "table", "Output format (table|json)")
	return cmd
}

// outputFlags are shared by generate and preset run.
type outputFlags struct {
	seed       int64
	today      string
	format     string
	out        string
	save       bool
	bom        bool
	limit      int
	targetID   string
	targetDSN  string
	targetKind string
	database   string
	table      string
	mode       string
	batchSize  int
}

func (f *outputFlags) register(cmd *cobra.Command, defaultToday string) {
	cmd.Flags().Int64VarP(&f.seed, "seed", "s", 0, "Seed for RNG (random when unset)")
	cmd.Flags().StringVar(&f.today, "today", defaultToday, "Reference date (YYYY-MM-DD, today, -30d)")
	cmd.Flags().StringVarP(&f.format, "format", "f", "csv", "Output format (csv|json|yaml|table)")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "Output file (stdout when empty)")
	cmd.Flags().BoolVar(&f.save, "save", false, "Write to the output dir under the default file name")
	cmd.Flags().BoolVar(&f.bom, "bom", false, "Prefix CSV output with a UTF-8 BOM")
	cmd.Flags().IntVar(&f.limit, "limit", 20, "Rows shown by the table format (0 = all)")
	cmd.Flags().StringVar(&f.targetID, "target-id", "", "Export to a stored target")
	cmd.Flags().StringVar(&f.targetDSN, "target", "", "Export to a target DSN")
	cmd.Flags().StringVar(&f.targetKind, "target-kind", "", "Target kind (required with --target)")
	cmd.Flags().StringVar(&f.database, "database", "", "Override the target database")
	cmd.Flags().StringVar(&f.table, "table", "", "Destination table (default <category>_<subcategory>)")
	cmd.Flags().StringVar(&f.mode, "mode", cfg.DefaultMode, "Table mode (create|truncate|append)")
	cmd.Flags().IntVar(&f.batchSize, "batch-size", cfg.BatchSize, "Rows per insert batch")
}

func (f *outputFlags) options(cmd *cobra.Command) (app.GenerateOptions, error) {
	var opts app.GenerateOptions
	if cmd.Flags().Changed("seed") {
		seed := f.seed
		opts.Seed = &seed
	}
	if f.today != "" {
		today, err := timeutil.ParseDate(f.today, time.Now())
		if err != nil {
			return opts, fmt.Errorf("invalid --today: %w", err)
		}
		opts.Today = today
	}
	return opts, nil
}

func (f *outputFlags) exporting() bool {
	return f.targetID != "" || f.targetDSN != ""
}

// emit writes the result to a file or stdout and exports it when a target
// was named.
func (f *outputFlags) emit(svc *app.GenerationService, res *domain.Result) error {
	format, err := tabular.ParseFormat(f.format)
	if err != nil {
		return err
	}

	if f.exporting() {
		stats, err := f.export(svc, res)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Exported %d rows to %s in %d batches (%.2fs)\n",
			stats.RowsWritten, stats.Table, stats.Batches, stats.DurationSeconds)
		if f.out == "" && !f.save {
			return nil
		}
	}

	opts := tabular.Options{BOM: f.bom, Limit: f.limit}
	path := f.out
	if f.save {
		path = filepath.Join(outputDir, tabular.DefaultFileName(res.Request.Selector(), format))
	}
	if path == "" || path == "-" {
		return tabular.Write(os.Stdout, res.Table, format, opts)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := tabular.Write(file, res.Table, format, opts); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote %d rows to %s (seed %d, fingerprint %s)\n",
		len(res.Table.Rows), path, res.Seed, res.Fingerprint[:12])
	return nil
}

func (f *outputFlags) export(svc *app.GenerationService, res *domain.Result) (*domain.ExportStats, error) {
	opts := app.ExportOptions{
		Database:  f.database,
		Table:     f.table,
		Mode:      f.mode,
		BatchSize: f.batchSize,
	}
	if f.targetDSN != "" {
		if f.targetKind == "" {
			return nil, fmt.Errorf("--target-kind required when using --target DSN")
		}
		return svc.ExportTo(res, &domain.TargetConfig{
			Name: "inline-target",
			Kind: f.targetKind,
			DSN:  f.targetDSN,
		}, opts)
	}
	return svc.Export(res, f.targetID, opts)
}

func generateCmd() *cobra.Command {
	var (
		category    string
		subcategory string
		rows        int
		flags       outputFlags
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate records for a category",
		Example: `  bizgen generate -c Vendas -n 100 -o vendas.csv
  bizgen generate -c logistica --subcategory transporte --format table
  bizgen generate -c Financeiro --subcategory "Contas a Receber" --target-id local`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}
			svc := newService()
			res, err := svc.Generate(domain.GenerationRequest{
				Category:    category,
				Subcategory: subcategory,
				Rows:        rows,
			}, opts)
			if err != nil {
				return err
			}
			return flags.emit(svc, res)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Category (see 'bizgen categories')")
	cmd.Flags().StringVar(&subcategory, "subcategory", "", "Subcategory, when the category has any")
	cmd.Flags().IntVarP(&rows, "rows", "n", cfg.DefaultRows, fmt.Sprintf("Rows to generate (%d-%d)", domain.MinRows, domain.MaxRows))
	_ = cmd.MarkFlagRequired("category")
	flags.register(cmd, cfg.Today)
	return cmd
}

func presetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage presets",
	}

	var format string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := presets.NewFileRepository(presetsDir)
			list, err := repo.List()
			if err != nil {
				return err
			}

			if format == "json" {
				data, _ := json.MarshalIndent(list, "", "  ")
				fmt.Println(string(data))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tSELECTOR\tROWS")
			for _, p := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", p.ID, p.Name, p.Selector(), p.Rows)
			}
			w.Flush()
			return nil
		},
	}
	listCmd.Flags().StringVar(&format, "format", "table", "Output format (table|json)")

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show preset details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := presets.NewFileRepository(presetsDir)
			preset, err := repo.Get(args[0])
			if err != nil {
				return err
			}

			data, _ := yaml.Marshal(preset)
			fmt.Println(string(data))
			return nil
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate <id|path>",
		Short: "Validate a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := presets.NewFileRepository(presetsDir)
			var preset *domain.Preset
			var err error

			if isPath(args[0]) {
				preset, err = repo.GetByPath(args[0])
			} else {
				preset, err = repo.Get(args[0])
			}
			if err != nil {
				return err
			}

			validator := validation.NewValidator(registry.DefaultGeneratorRegistry())
			if err := validator.ValidatePreset(preset); err != nil {
				fmt.Printf("Validation failed: %v\n", err)
				return err
			}

			fmt.Printf("Preset '%s' is valid (%s, %d rows)\n", preset.Name, preset.Selector(), preset.Rows)
			return nil
		},
	}

	var (
		rows  int
		flags outputFlags
	)
	runCmd := &cobra.Command{
		Use:   "run <id|path>",
		Short: "Generate the records a preset describes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}
			svc := newService()
			var res *domain.Result
			if isPath(args[0]) {
				res, err = svc.GeneratePresetFile(args[0], rows, opts)
			} else {
				res, err = svc.GeneratePreset(args[0], rows, opts)
			}
			if err != nil {
				return err
			}
			return flags.emit(svc, res)
		},
	}
	runCmd.Flags().IntVarP(&rows, "rows", "n", 0, "Override the preset row count")
	// A preset's own today applies unless --today is given explicitly.
	flags.register(runCmd, "")

	cmd.AddCommand(listCmd, showCmd, validateCmd, runCmd)
	return cmd
}

func targetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "target",
		Short: "Manage export targets",
	}

	var format string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List targets",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := targets.NewFileRepository(targetsDir)
			list, err := repo.List()
			if err != nil {
				return err
			}
			list = targets.RedactTargets(list)

			if format == "json" {
				data, _ := json.MarshalIndent(list, "", "  ")
				fmt.Println(string(data))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tKIND\tDSN")
			for _, t := range list {
				dsn := t.DSN
				if len(dsn) > 50 {
					dsn = dsn[:47] + "..."
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Name, t.Kind, dsn)
			}
			w.Flush()
			return nil
		},
	}
	listCmd.Flags().StringVar(&format, "format", "table", "Output format (table|json)")

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show target details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := targets.NewFileRepository(targetsDir)
			target, err := repo.Get(args[0])
			if err != nil {
				return err
			}

			data, _ := yaml.Marshal(targets.RedactTarget(target))
			fmt.Println(string(data))
			return nil
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate <id|path>",
		Short: "Validate a target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := loadTarget(args[0])
			if err != nil {
				return err
			}

			validator := validation.NewValidator(nil)
			if err := validator.ValidateTarget(target); err != nil {
				fmt.Printf("Validation failed: %v\n", err)
				return err
			}

			fmt.Printf("Target '%s' is valid\n", target.Name)
			return nil
		},
	}

	var checkFormat string
	checkCmd := &cobra.Command{
		Use:   "check <id|path>",
		Short: "Connect to a target and probe its capabilities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := loadTarget(args[0])
			if err != nil {
				return err
			}

			check, checkErr := app.CheckTarget(target)
			if checkFormat == "json" {
				data, _ := json.MarshalIndent(check, "", "  ")
				fmt.Println(string(data))
				return checkErr
			}
			printCheck(os.Stdout, target, check)
			return checkErr
		},
	}
	checkCmd.Flags().StringVar(&checkFormat, "format", "table", "Output format (table|json)")

	cmd.AddCommand(listCmd, showCmd, validateCmd, checkCmd)
	return cmd
}

func loadTarget(arg string) (*domain.TargetConfig, error) {
	repo := targets.NewFileRepository(targetsDir)
	if isPath(arg) {
		return repo.GetByPath(arg)
	}
	return repo.Get(arg)
}

func printCheck(w io.Writer, target *domain.TargetConfig, check *domain.TargetCheck) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Target\t%s (%s)\n", target.Name, target.Kind)
	fmt.Fprintf(tw, "DSN\t%s\n", targets.RedactDSN(target.DSN))
	fmt.Fprintf(tw, "OK\t%t\n", check.OK)
	if check.ServerVer != "" {
		fmt.Fprintf(tw, "Server\t%s\n", check.ServerVer)
	}
	fmt.Fprintf(tw, "Latency\t%dms\n", check.LatencyMS)
	if check.OK {
		fmt.Fprintf(tw, "Create\t%t\n", check.Capabilities.CanCreate)
		fmt.Fprintf(tw, "Insert\t%t\n", check.Capabilities.CanInsert)
		fmt.Fprintf(tw, "Truncate\t%t\n", check.Capabilities.CanTruncate)
	}
	if check.Error != "" {
		fmt.Fprintf(tw, "Error\t%s\n", check.Error)
	}
	tw.Flush()
}
