// Package cmd provides the root command and CLI setup for commitkind.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/commitkind/commitkind/internal/adapter"
	"github.com/commitkind/commitkind/internal/controller"
	"github.com/commitkind/commitkind/internal/domain"
	m "github.com/commitkind/commitkind/internal/model"
)

const (
	exitCodeFailure    = 1
	exitCodeCorruption = 2
)

var (
	pathFlag           string
	formatFlag         string
	detailsFlag        bool
	diffFlag           bool
	currentVersionFlag string
	excludePatterns    []string
	verboseFlag        bool
	logFileFlag        string
	parallelFlag       int
)

// workflowFactory builds the workflow for the repository enclosing path.
type workflowFactory func(cmd *cobra.Command, path m.Path) (domain.Workflow, error)

// newWorkflow is replaced in tests.
var newWorkflow workflowFactory = buildWorkflow

const rootLongDescription = `Commitkind classifies the staged changes of a Python project as

  FIX    no public API change
  FEAT   additive, non-breaking API change
  MAJOR  removal or breaking API change

It extracts the public classes, functions and parameter lists of the changed
files before and after the change and compares them. To read the "before"
side the working tree is temporarily stashed and rewound to the last commit;
it is always restored, also when the run fails or is interrupted.

The first line of the output is always the bare classification.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "commitkind [path]",
		Short:         "Classify pending changes as FIX, FEAT or MAJOR",
		Long:          rootLongDescription,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: runClassify,
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&pathFlag, pathFlagName, "p", ".", "path inside the repository to classify")

	flags.StringVarP(&formatFlag, formatFlagName, "f", defaultFormat, "output format: text, json or yaml")
	bindFlagToConfig(flags.Lookup(formatFlagName), formatConfigKey)

	flags.StringArrayVarP(&excludePatterns, excludeFlagName, "x", nil, "exclude paths matching a gitignore-style pattern (can be repeated)")
	bindFlagToConfig(flags.Lookup(excludeFlagName), excludeConfigKey)

	flags.IntVar(&parallelFlag, parallelFlagName, defaultParallel, "number of files parsed concurrently")
	bindFlagToConfig(flags.Lookup(parallelFlagName), parallelConfigKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
	flags.StringVar(&logFileFlag, logFileFlagName, "", "log file (default "+defaultLogFilename()+")")

	cmd.Flags().BoolVarP(&detailsFlag, detailsFlagName, "d", defaultDetails, "list every finding, skipped path and failed file")
	bindFlagToConfig(cmd.Flags().Lookup(detailsFlagName), detailsConfigKey)

	cmd.Flags().BoolVar(&diffFlag, diffFlagName, defaultDiff, "print a unified diff of the API surface")
	bindFlagToConfig(cmd.Flags().Lookup(diffFlagName), diffConfigKey)

	cmd.Flags().StringVar(&currentVersionFlag, currentVersionFlagName, "", "current release (e.g. v1.4.2); prints the suggested next version")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

func runClassify(cmd *cobra.Command, args []string) error {
	classifyArgs := domain.ClassifyArgs{
		CurrentVersion:  currentVersionFlag,
		IncludeSurfaces: viper.GetBool(diffConfigKey),
	}

	if classifyArgs.CurrentVersion != "" {
		if _, err := domain.NextVersion(classifyArgs.CurrentVersion, m.Fix); err != nil {
			return fmt.Errorf("--%s: %w", currentVersionFlagName, err)
		}
	}

	wf, err := newWorkflow(cmd, targetPath(args))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := wf.Classify(ctx, classifyArgs); err != nil {
		return reportedError{err: err}
	}

	return nil
}

// targetPath picks the positional path over --path.
func targetPath(args []string) m.Path {
	if len(args) > 0 && args[0] != "" {
		return m.Path(args[0])
	}

	if pathFlag != "" {
		return m.Path(pathFlag)
	}

	return "."
}

func buildWorkflow(cmd *cobra.Command, path m.Path) (domain.Workflow, error) {
	format, err := controller.ParseFormat(viper.GetString(formatConfigKey))
	if err != nil {
		return nil, err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fs := adapter.NewLocalSourceFSAdapter()

	root, err := fs.FindRepositoryRoot(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("locating repository: %w", err)
	}

	vcs, err := adapter.NewGitVersionControl(root, gitTimeout())
	if err != nil {
		return nil, err
	}

	slog.Debug("using repository", "root", vcs.RepoPath(), "target", path)

	extractor := adapter.NewPythonExtractor(fs, root,
		adapter.WithMaxFileSize(viper.GetInt64(maxFileSizeConfigKey)),
		adapter.WithIncludePrivate(viper.GetBool(includePrivateConfigKey)),
	)

	pipeline := domain.NewSnapshotPipeline(vcs, extractor,
		domain.WithParallel(viper.GetInt(parallelConfigKey)),
		domain.WithPathFilter(domain.NewPathFilter(viper.GetStringSlice(excludeConfigKey)...)),
	)

	ui := controller.NewUI(cmd, controller.IsTTY(os.Stdout),
		controller.WithFormat(format),
		controller.WithDetails(viper.GetBool(detailsConfigKey)),
		controller.WithDiff(viper.GetBool(diffConfigKey)),
	)

	return domain.NewWorkflow(pipeline, ui), nil
}

// reportedError marks an error the UI has already shown.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }

func (e reportedError) Unwrap() error { return e.err }

// exitCode maps a failed run to the process exit code. A tree left in doubt
// gets its own code so scripts can stop before touching it.
func exitCode(err error) int {
	if errors.Is(err, domain.ErrStateCorruption) {
		return exitCodeCorruption
	}

	return exitCodeFailure
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	var reported reportedError
	if !errors.As(err, &reported) {
		_, _ = fmt.Fprintf(rootCmd.ErrOrStderr(), "error: %v\n", err)
	}

	os.Exit(exitCode(err))
}
