package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/learnly/learnly-go/enums"
	"github.com/learnly/learnly-go/guard"
)

// requireRole is the CLI rendering of the route guard: instead of
// redirecting, a denied check fails the command with directions to the
// surface the user actually has access to.
func requireRole(allowed ...enums.Role) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, _ []string) error {
		decision := guard.Check(store.Session(), allowed...)
		switch decision.Action {
		case guard.RedirectLogin:
			return fmt.Errorf("not signed in: run `learnly login` first")
		case guard.RedirectRole:
			return fmt.Errorf("this command is not available to %s accounts; see `learnly --help` for your %s commands",
				decision.Role, decision.Target())
		}
		return nil
	}
}
