// Command dim is the REPL/one-shot CLI for the dimensional-analysis
// calculator, per spec.md §6. It delegates all evaluation to
// internal/engine and only handles argument dispatch, file/stdin
// reading, and the REPL loop itself.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dimlang/dim/internal/engine"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run builds and executes the root command, returning the process exit
// code: 0 on success, 64 on invalid argument usage, per spec.md §6.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdin, stdout, stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		return 64
	}
	return 0
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var filePath string

	cmd := &cobra.Command{
		Use:   "dim [expression]",
		Short: "Dimensional-analysis calculator",
		Long: `dim evaluates arithmetic expressions whose operands carry physical
units, enforces dimensional correctness, and converts between units.

With no arguments and a TTY stdin, dim starts a REPL. With no arguments
and piped stdin, it reads and evaluates the whole input as a program.
Given an expression argument, it evaluates that one expression.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := engine.New()

			switch {
			case filePath != "":
				return runFile(d, filePath, stdout, stderr)
			case len(args) == 1 && args[0] != "-":
				return runExpression(d, args[0], stdout, stderr)
			case len(args) == 1 && args[0] == "-":
				return runReader(d, stdin, stdout, stderr)
			case isTerminal(stdin):
				return runREPL(d, stdin, stdout, stderr)
			default:
				return runReader(d, stdin, stdout, stderr)
			}
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "read a program from a file instead of an argument or stdin")
	return cmd
}

func runExpression(d *engine.Driver, expr string, stdout, stderr io.Writer) error {
	evalOne(d, expr, stdout, stderr)
	return nil
}

func runFile(d *engine.Driver, path string, stdout, stderr io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("dim: %w", err)
	}
	defer f.Close()
	return runReader(d, f, stdout, stderr)
}

func runReader(d *engine.Driver, r io.Reader, stdout, stderr io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		evalOne(d, scanner.Text(), stdout, stderr)
	}
	return scanner.Err()
}

// runREPL implements the interactive loop spec.md §6 describes: a "> "
// prompt, one expression per line, EOF terminates, blank lines ignored.
func runREPL(d *engine.Driver, stdin io.Reader, stdout, stderr io.Writer) error {
	scanner := bufio.NewScanner(stdin)
	for {
		fmt.Fprint(stdout, "> ")
		if !scanner.Scan() {
			break
		}
		evalOne(d, scanner.Text(), stdout, stderr)
	}
	return scanner.Err()
}

// evalOne evaluates a single line. Per spec.md §7's propagation policy,
// lex/parse/runtime errors print to stderr and never change the process
// exit code from the CLI's perspective — only a successful result is
// printed to stdout.
func evalOne(d *engine.Driver, line string, stdout, stderr io.Writer) {
	out, err := d.Eval(line)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return
	}
	if out == "" {
		return
	}
	fmt.Fprintln(stdout, out)
}

// isTerminal reports whether r is backed by a character device, i.e. an
// interactive terminal rather than a pipe or redirected file.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
