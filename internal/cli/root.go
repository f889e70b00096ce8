package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mordilloSan/openlog/logger"
)

// Execute runs the openlog command and exits with status 1 on error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "openlog [message...]",
		Short: "Write leveled, timestamped log lines",
		Long: `openlog writes a colorized, timestamped line to the console and can
mirror it to log.txt in the working directory.

Without a message it prints one sample line per level.
Every flag can also be set through the environment, e.g. OPENLOG_PREFIX=APP.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.BoolP("file", "f", false, "mirror lines to a log file in the working directory")
	flags.BoolP("dir", "d", false, "keep the log file under ./logs")
	flags.BoolP("session", "s", false, "use a timestamped log_<time>.txt instead of log.txt")
	flags.StringP("prefix", "p", "", "tag inserted into every line")
	flags.Bool("short", false, "use HH:MM timestamps")
	flags.StringP("level", "l", string(logger.InfoLevel), "level tag for the message (INFO, ERROR, WARN, INIT or any other tag)")
	flags.Bool("flush", false, "print the lines written to the log file on stderr when done")
	flags.Bool("plain", false, "strip colors from console output")

	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}
	v.SetEnvPrefix("OPENLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}

func run(cmd *cobra.Command, v *viper.Viper, args []string) error {
	out := cmd.OutOrStdout()
	if v.GetBool("plain") {
		out = &plainWriter{w: out}
	}

	log, err := logger.New(logger.Config{
		WriteToFile:    v.GetBool("file"),
		InDirectory:    v.GetBool("dir"),
		Session:        v.GetBool("session"),
		Prefix:         v.GetString("prefix"),
		ShortTimestamp: v.GetBool("short"),
		Output:         out,
	})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	if len(args) == 0 {
		err = demo(log)
	} else {
		level := logger.Level(strings.ToUpper(v.GetString("level")))
		err = log.Emit(level, strings.Join(args, " "))
	}
	if err != nil {
		return err
	}

	if v.GetBool("flush") {
		printFlushed(cmd.ErrOrStderr(), log.FlushLogs(true))
	}
	return nil
}

// demo writes one line per predefined level.
func demo(log *logger.Logger) error {
	return errors.Join(
		log.Log("This is an info message"),
		log.Error("Something went wrong"),
		log.Warn("This is a warning"),
		log.Init("System initialized"),
	)
}

func printFlushed(w io.Writer, lines []string) {
	fmt.Fprintf(w, "flushed %d line(s)\n", len(lines))
	for _, line := range lines {
		fmt.Fprint(w, line)
	}
}
