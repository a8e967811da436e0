package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/inix-labs/inix/internal/branding"
	"github.com/inix-labs/inix/internal/config"
	"github.com/inix-labs/inix/internal/direnv"
	"github.com/inix-labs/inix/internal/platform"
	"github.com/inix-labs/inix/internal/prompt"
	"github.com/inix-labs/inix/internal/reconcile"
	"github.com/inix-labs/inix/internal/scaffold"
	"github.com/inix-labs/inix/internal/templates"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	targetDir  string
	dryRun     bool
	autoAllow  bool
	onConflict reconcile.BehaviorValue
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [templates...]",
	Short: branding.Description(),
	Long: heredoc.Docf(`
		%[1]s copies Nix and direnv templates into the %[2]s/ directory of a
		project and writes a shell.nix and .envrc at the project root that load
		all of them.

		Templates are looked up in the configured template_dirs, then in
		%[3]s, then among the built-in templates.

		When %[2]s/ already exists you are asked how to handle it, unless
		--on-conflict (or the on_conflict setting) decides for you:
		  overwrite       remove %[2]s/ and start over
		  merge-keep      add new templates, keep existing ones
		  merge-replace   add new templates, replace existing ones
		  cancel          do nothing
	`, branding.DisplayName(), branding.ScaffoldDir(), config.Dir()),
	Example: heredoc.Docf(`
		# Add the rust and node templates to the current directory
		%[1]s rust node

		# See what would happen without touching anything
		%[1]s --dry-run --on-conflict merge-keep go

		# Scaffold another directory and allow it in direnv
		%[1]s -d ~/src/api -a go
	`, branding.CLIName()),
	Args:              cobra.ArbitraryArgs,
	ValidArgsFunction: completeTemplates,
	SilenceUsage:      true,
	SilenceErrors:     true,
	RunE:              runReconcile,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&targetDir, "directory", "d", "", "Project directory to scaffold (default: current directory)")
	flags.BoolVarP(&dryRun, "dry-run", "n", false, "Print the plan without writing anything")
	flags.BoolVarP(&autoAllow, "auto-allow", "a", false, "Run direnv allow after writing the environment")
	flags.Var(&onConflict, "on-conflict", "What to do if the scaffold directory exists: overwrite, merge-keep, merge-replace, or cancel")

	_ = rootCmd.RegisterFlagCompletionFunc("on-conflict", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, len(reconcile.Behaviors))
		for i, b := range reconcile.Behaviors {
			names[i] = b.String()
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printError(os.Stderr, err.Error())
		return err
	}
	return nil
}

func runReconcile(cmd *cobra.Command, args []string) error {
	if err := config.Load(); err != nil {
		return err
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	fsys := platform.NewOS()

	target, err := resolveTarget(fsys, targetDir)
	if err != nil {
		return err
	}

	explicit := onConflict.Get()
	if explicit == nil {
		if explicit, err = config.OnConflict(); err != nil {
			return err
		}
	}

	engine := &reconcile.Engine{
		FS:          fsys,
		Resolver:    newResolver(fsys.Afero()),
		Asker:       reconcile.NewPrompter(prompt.NewTerminal(ctx, cmd.InOrStdin(), errOut), errOut),
		BaseFiles:   scaffold.NewRenderer(branding.CLIName(), branding.ScaffoldDir()).Render,
		ScaffoldDir: branding.ScaffoldDir(),
		Out:         out,
	}

	result, err := engine.Reconcile(ctx, reconcile.Request{
		TargetDir: target,
		Names:     args,
		Explicit:  explicit,
		DryRun:    dryRun,
	})
	if errors.Is(err, reconcile.ErrCancelled) {
		printWarning(errOut, "Cancelled. Nothing was written.")
		return nil
	}
	if err != nil {
		return err
	}

	if !result.Applied {
		return nil
	}
	if result.Plan.Resolution.UserCancelled() {
		printWarning(errOut, "Cancelled. Nothing was written.")
		return nil
	}
	report(out, result.Plan)

	if len(result.Plan.Base) > 0 && (autoAllow || config.AutoAllow()) {
		allowDirenv(ctx, cmd, target)
	}
	return nil
}

// resolveTarget returns the absolute project directory, checking that files
// can be placed in it.
func resolveTarget(fsys platform.FS, dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("determining the current directory: %w", err)
		}
		dir = wd
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}

	info, err := fsys.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%q is not a directory, so I cannot place any files there", abs)
	}
	if !platform.IsWritable(info) {
		return "", fmt.Errorf("%q is read-only, so I cannot place any files there", abs)
	}
	return abs, nil
}

// templateLocations lists the user template directories in priority order.
func templateLocations(fsys afero.Fs) []templates.Location {
	var locs []templates.Location
	for _, dir := range config.TemplateDirs() {
		locs = append(locs, templates.Probe(fsys, dir))
	}

	userDir, err := config.UserDir()
	if err != nil {
		locs = append(locs, templates.Location{
			Path:    filepath.Join("<your user configuration directory>", branding.ConfigDir()),
			Problem: templates.ProblemNoConfigDir,
		})
		return locs
	}
	return append(locs, templates.Probe(fsys, userDir))
}

func newResolver(fsys afero.Fs) *templates.Resolver {
	return templates.NewResolver(fsys, templateLocations(fsys), buildVersion)
}

// report summarizes an applied plan.
func report(w io.Writer, p *reconcile.Plan) {
	if p.Empty() {
		printInfo(w, p.Summary())
		return
	}

	if len(p.Written) > 0 {
		printSuccess(w, fmt.Sprintf("Added %s to %s", strings.Join(p.Written, ", "), p.State.Path))
	}
	if len(p.Kept) > 0 {
		printDim(w, fmt.Sprintf("  kept existing: %s", strings.Join(p.Kept, ", ")))
	}
	if len(p.Base) > 0 {
		names := make([]string, len(p.Base))
		for i, b := range p.Base {
			names[i] = filepath.Base(b)
		}
		printSuccess(w, fmt.Sprintf("Wrote %s in %s", strings.Join(names, " and "), p.State.Target))
	}
}

func allowDirenv(ctx context.Context, cmd *cobra.Command, target string) {
	errOut := cmd.ErrOrStderr()
	a := &direnv.Allower{Stdout: cmd.OutOrStdout(), Stderr: errOut}

	_, err := a.Allow(ctx, target)
	switch {
	case errors.Is(err, direnv.ErrNotInstalled):
		printWarning(errOut, "direnv is not installed, so I could not allow the new .envrc. Run `direnv allow` yourself once it is.")
	case err != nil:
		printWarning(errOut, fmt.Sprintf("direnv allow failed: %v", err))
	default:
		printSuccess(cmd.OutOrStdout(), "Allowed the environment in direnv")
	}
}

func completeTemplates(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	_ = config.Load()
	ts, err := newResolver(afero.NewOsFs()).Available()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = t.Name
		if d := t.Description(); d != "" {
			names[i] += "\t" + d
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
