// Command lispy is the Lispy interpreter's command-line surface (spec
// §6.3): a REPL when invoked with no files, or a sequential file loader
// when given one or more paths, exiting 0 unless a loaded program calls
// quit.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/lispy-lang/lispy"
	"github.com/lispy-lang/lispy/builtins"
	"github.com/lispy-lang/lispy/eval"
	"github.com/lispy-lang/lispy/internal/parsetree"
	"github.com/lispy-lang/lispy/reader"
)

const version = "0.0.1"

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// replOptions is the REPL's small option struct, the only ambient
// "configuration" this interpreter has: there is no config file, just the
// toggles main wires from flags into the read/eval/print loop.
type replOptions struct {
	debug bool
}

func main() {
	var opts replOptions

	root := &cobra.Command{
		Use:     "lispy [file...]",
		Short:   "Lispy, a tree-walking interpreter for a small Lisp",
		Version: version,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log input lines and file loads to stderr")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, files []string, opts replOptions) error {
	logger := newLogger(opts)
	env := lispy.NewEnv(nil)
	env.SetOutput(cmd.OutOrStdout())
	builtins.Register(env)

	if len(files) > 0 {
		for _, path := range files {
			loadFile(env, path, logger)
		}
		return nil
	}
	return repl(cmd, env, logger)
}

func newLogger(opts replOptions) *slog.Logger {
	level := slog.LevelWarn
	if opts.debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadFile evaluates path as a top-level load call, reusing builtins.Load
// so file-argument loading and the "load" builtin behave identically.
func loadFile(env *lispy.Env, path string, logger *slog.Logger) {
	logger.Debug("loading file", "path", path)
	result := builtins.Load(env, []lispy.Value{lispy.MakeStr(path)})
	if e, ok := lispy.GetErr(result); ok {
		fmt.Fprintln(os.Stderr, errorStyle.Render(e.String()))
	}
}

func repl(cmd *cobra.Command, env *lispy.Env, logger *slog.Logger) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Lispy Version %s\n", version)
	fmt.Fprintln(out, "Type (quit 0) to exit")

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, promptStyle.Render("lispy> "))
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return nil
		}
		line := scanner.Text()
		logger.Debug("read line", "text", line)

		result := evalLine(env, line)
		if e, ok := lispy.GetErr(result); ok {
			fmt.Fprintln(out, errorStyle.Render(e.String()))
			continue
		}
		fmt.Fprintln(out, resultStyle.Render(result.String()))
	}
}

func evalLine(env *lispy.Env, line string) lispy.Value {
	root, err := parsetree.New(strings.NewReader(line)).ParseProgram()
	if err != nil {
		return lispy.MakeErr(err.Error())
	}
	v := reader.Read(root)
	top, ok := lispy.GetSExpr(v)
	if !ok || len(top.Items) == 0 {
		return lispy.MakeSExpr()
	}
	var result lispy.Value = lispy.MakeSExpr()
	for _, form := range top.Items {
		result = eval.Eval(env, form)
	}
	return result
}
