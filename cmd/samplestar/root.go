package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/samplestar-go/samplestar/gridcoord"
	"github.com/samplestar-go/samplestar/mapio"
)

// rootCmd is the samplestar CLI: a thin driver over package samplestar's
// control loop, resolving a named problem from a YAML pack plus a handful
// of run-time overrides.
var rootCmd = &cobra.Command{
	Use:   "samplestar",
	Short: "Run Sample-Star online pathfinding over a problem pack",
}

var (
	flagProblemsFile string
	flagProblemName  string
	flagSeed         int64
	flagVizFile      string
	flagVerbose      bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one named problem from a problem pack to completion",
	RunE:  runRun,
}

var renderCmd = &cobra.Command{
	Use:   "render [map]",
	Short: "Parse a map file and print it back out (no path overlay)",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	runCmd.Flags().StringVarP(&flagProblemsFile, "problems", "p", "problems.yaml", "path to a YAML problem pack")
	runCmd.Flags().StringVarP(&flagProblemName, "name", "n", "", "name of the problem to run (required)")
	runCmd.Flags().Int64VarP(&flagSeed, "seed", "s", 0, "RNG seed (0 selects the deterministic default)")
	runCmd.Flags().StringVarP(&flagVizFile, "viz", "z", "", "optional path to write per-step JSON visualization records")
	runCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "log each committed step to stderr")
	_ = runCmd.MarkFlagRequired("name")

	rootCmd.AddCommand(runCmd, renderCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	problems, err := LoadProblems(flagProblemsFile)
	if err != nil {
		return err
	}
	problem, err := FindProblem(problems, flagProblemName)
	if err != nil {
		return err
	}

	opts := runOptions{problem: problem, seed: flagSeed}
	var vizFile *os.File
	if flagVizFile != "" {
		vizFile, err = os.Create(flagVizFile)
		if err != nil {
			return fmt.Errorf("cmd/samplestar: creating viz output: %w", err)
		}
		defer vizFile.Close()
		opts.vizOut = vizFile
	}
	if flagVerbose {
		opts.logger = func(format string, args ...any) {
			fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
		}
	}

	path, err := RunProblem(cmd.Context(), opts)
	if err != nil {
		return err
	}
	goal := gridcoord.Cell{X: problem.GoalX, Y: problem.GoalY}
	if path[len(path)-1] != goal {
		fmt.Fprintf(cmd.OutOrStdout(), "goal not reached after %d committed steps\n", len(path)-1)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "reached goal in %d committed steps\n", len(path)-1)
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	text, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	grid, err := mapio.Load(string(text))
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), mapio.Render(grid, nil))
	return nil
}

// Execute runs the root command, returning any error for main to report.
func Execute() error {
	return rootCmd.Execute()
}
