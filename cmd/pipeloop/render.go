package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipeloop/enclosure"
	"github.com/katalvlaran/pipeloop/render"
)

func runRender(cmd *cobra.Command, args []string) error {
	res, err := solveInput(cmd, args)
	if err != nil {
		return err
	}
	policy, err := enclosure.ParseStartPolicy(cfg.Solve.StartPolicy)
	if err != nil {
		return err
	}
	inside, err := enclosure.Cells(res.Grid, res.Loop, enclosure.WithStartPolicy(policy))
	if err != nil {
		return err
	}

	styles := render.PlainStyles()
	if cfg.Render.Color {
		styles = render.DefaultStyles(lipgloss.NewRenderer(cmd.OutOrStdout()))
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, render.Grid(res.Grid, res.Loop, inside, styles))
	fmt.Fprintf(out, "farthest: %d  enclosed: %d\n", res.Farthest, res.Enclosed)
	return nil
}
