package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/blazerun/internal/app"
	"go.trai.ch/blazerun/internal/core/domain"
)

type invocationJSON struct {
	Label       string   `json:"label"`
	Name        string   `json:"name"`
	Kind        string   `json:"kind"`
	Argv        []string `json:"argv"`
	Fingerprint string   `json:"fingerprint"`
}

func (c *CLI) newCommandCmd() *cobra.Command {
	var (
		mode   string
		verb   string
		flags  []string
		dir    string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "command [labels...] [-- args...]",
		Short: "Print the build tool command line for each target",
		Long: "Print the build tool command line that runs or debugs each target.\n" +
			"Arguments after -- are passed to every target.",
		RunE: func(cmd *cobra.Command, args []string) error {
			labels, extra := args, []string(nil)
			if dash := cmd.ArgsLenAtDash(); dash >= 0 {
				labels, extra = args[:dash], args[dash:]
			}

			if len(labels) == 0 {
				return domain.ErrNoTargetsSpecified
			}

			m, err := domain.ParseExecutionMode(mode)
			if err != nil {
				return err
			}

			invocations, err := c.app.Command(cmd.Context(), labels, app.CommandOptions{
				Dir:       dir,
				Verb:      verb,
				Mode:      m,
				Flags:     flags,
				ExtraArgs: extra,
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), invocations)
			}
			return writeText(cmd.OutOrStdout(), invocations)
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "run", "Execution mode: run or debug")
	cmd.Flags().StringVar(&verb, "verb", "", "Build tool command verb (defaults to the project or per-kind verb)")
	cmd.Flags().StringArrayVar(&flags, "flag", nil, "Extra build flag, appended after project flags (repeatable)")
	cmd.Flags().StringVarP(&dir, "dir", "C", "", "Directory to start the project search from")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print invocations as JSON")

	return cmd
}

func writeText(w io.Writer, invocations []app.Invocation) error {
	for _, inv := range invocations {
		if _, err := fmt.Fprintln(w, inv.Argv.String()); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, invocations []app.Invocation) error {
	out := make([]invocationJSON, 0, len(invocations))
	for _, inv := range invocations {
		out = append(out, invocationJSON{
			Label:       inv.Target.String(),
			Name:        inv.Target.TargetName(),
			Kind:        inv.Kind.String(),
			Argv:        inv.Argv.Tokens(),
			Fingerprint: inv.Argv.Fingerprint(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
