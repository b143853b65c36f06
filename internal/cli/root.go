// Package cli implements the abacus CLI commands.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/watchfire-io/abacus/internal/config"
	"github.com/watchfire-io/abacus/internal/shell"
	"github.com/watchfire-io/abacus/internal/tui"
)

var (
	plainFlag bool
	debugFlag bool
)

// isTerminal reports whether both stdin and stdout are attached to a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

var rootCmd = &cobra.Command{
	Use:   "abacus",
	Short: "Interactive arithmetic calculator",
	Long: `Abacus is a menu-driven calculator that keeps a log of every operation
performed in the session.

Run without arguments for an interactive session (a full-screen UI on a
terminal, a line-oriented menu otherwise), or use a subcommand for a single
calculation.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInteractive,
}

// reportedError is an error whose message was already printed.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// Execute runs the CLI.
func Execute() error {
	err := rootCmd.Execute()
	var reported reportedError
	if err != nil && !errors.As(err, &reported) {
		fmt.Fprintln(os.Stderr, styleError.Render("Error:")+" "+err.Error())
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Write debug entries to the log file")
	rootCmd.Flags().BoolVar(&plainFlag, "plain", false, "Use the line-oriented menu even on a terminal")

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(addCmd)
	for _, cmd := range oneShotCmds() {
		rootCmd.AddCommand(cmd)
	}
	rootCmd.AddCommand(opCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(versionCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	if !plainFlag && isTerminal() {
		settingsPath, err := config.GlobalSettingsFile()
		if err != nil {
			return err
		}
		sess.log.Debug("starting full-screen session")
		return tui.Run(tui.Options{
			Calc:         sess.calc,
			Settings:     sess.settings,
			SettingsPath: settingsPath,
			Save:         config.SaveSettings,
			Log:          sess.log,
		})
	}

	sess.log.Debug("starting line session")
	return shell.New(shell.Options{
		In:       cmd.InOrStdin(),
		Out:      cmd.OutOrStdout(),
		Calc:     sess.calc,
		Settings: sess.settings,
		Save:     config.SaveSettings,
		Banner:   loadBanner(sess),
		Log:      sess.log,
	}).Run()
}

// loadBanner reads the configured banner file. A missing or unreadable file
// falls back to the built-in title.
func loadBanner(sess *session) string {
	path := sess.settings.Appearance.Banner
	if path == "" {
		return ""
	}
	text, err := config.ReadText(path)
	if err != nil {
		sess.log.WithError(err).WithField("path", path).Warn("banner not loaded")
		return ""
	}
	return text
}
