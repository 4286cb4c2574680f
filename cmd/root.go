package cmd

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/mjanumpa/magicsh/commands"
	"github.com/mjanumpa/magicsh/core"
	"github.com/mjanumpa/magicsh/core/config"
	"github.com/mjanumpa/magicsh/core/state"
	"github.com/mjanumpa/magicsh/core/vos"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	cfgPath   string
	statePath string
	colorMode string
	verbose   bool
)

func loadConfig(logger *log.Logger) (*config.Configuration, error) {
	configuration, err := config.Load(afero.NewOsFs(), cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		logger.Printf("No %s in %q, using the defaults", config.ConfigurationName, cfgPath)
		return config.Default(), nil
	}

	return configuration, err
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "magicsh",
	Short: "Mani's Magical CLI (Shell)",
	Long: `An interactive shell with built-in file and text commands, aliases and a
to-do list that are kept between sessions. Anything that isn't built in is
run as a program from the PATH.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.New(io.Discard, "[magicsh] ", log.LstdFlags)
		if verbose {
			logger.SetOutput(cmd.ErrOrStderr())
		}

		configuration, err := loadConfig(logger)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("state") {
			configuration.StateFile = statePath
		}
		if cmd.Flags().Changed("color") {
			configuration.Color = colorMode
		}
		if err := configuration.Validate(); err != nil {
			return err
		}

		commands.SetColorMode(configuration.Color, os.Stdout)

		// Pin the session file before cd moves the working directory.
		sessionPath, err := filepath.Abs(configuration.StateFile)
		if err != nil {
			return err
		}
		logger.Printf("Session file: %s", sessionPath)

		hostOS := vos.NewHostOS(vos.NewHostIO())
		hostOS.SetPTY(vos.PTY{
			Term:  os.Getenv("TERM"),
			IsPTY: isatty.IsTerminal(os.Stdin.Fd()),
		})

		reader, closer, err := core.NewReadline(hostOS)
		if err != nil {
			return err
		}
		defer closer.Close()

		// At the prompt readline reports interrupts itself. While a child runs
		// it receives the interrupt from the terminal and the shell carries on.
		interrupts := make(chan os.Signal, 1)
		signal.Notify(interrupts, os.Interrupt)
		defer func() {
			signal.Stop(interrupts)
			close(interrupts)
		}()
		go func() {
			for sig := range interrupts {
				logger.Printf("Got signal %q, ignoring", sig)
			}
		}()

		shell := core.NewShell(hostOS, reader, configuration, state.NewStore(hostOS, sessionPath), logger)
		return shell.Run(cmd.Context())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.ExecuteContext(context.Background()))
}

func init() {
	rootCmd.Flags().StringVar(&cfgPath, "config", ".", "directory holding "+config.ConfigurationName)
	rootCmd.Flags().StringVar(&statePath, "state", state.DefaultFileName, "file the aliases and to-do items are kept in, .yaml or .yml stores YAML")
	rootCmd.Flags().StringVar(&colorMode, "color", config.ColorAuto, "colorize output (always|auto|never)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
}
