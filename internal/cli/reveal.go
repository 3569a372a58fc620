package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumipallolabs/rms/internal/command"
)

// revealFailure is returned when show_in_folder reports an error payload
type revealFailure struct {
	payload *command.ErrorPayload
}

func (e *revealFailure) Error() string {
	return e.payload.Kind + ": " + e.payload.Message
}

func newRevealCmd(opts *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "reveal <path>",
		Short: "Show a path in the file manager without starting the shell",
		Long: `Dispatch show_in_folder for a single path and exit.

On failure the error kind and message are printed and rms exits with
status 1. With --json the raw response object is printed instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := command.NewDefaultRegistry(newRevealer(opts.cfg))
			resp := registry.Call(context.Background(), command.ShowInFolderName, command.ShowInFolderArgs{Path: args[0]})

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				if err := enc.Encode(resp); err != nil {
					return err
				}
			}
			if !resp.OK {
				return &revealFailure{payload: resp.Error}
			}
			if !asJSON {
				fmt.Fprintf(cmd.OutOrStdout(), "revealed %s\n", args[0])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the command response as JSON")
	return cmd
}
