package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rngrename/internal/charset"
	"rngrename/internal/termstyle"
)

func newCharsetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "charsets",
		Short: "List the built-in character sets and the cases they support",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			for _, d := range charset.List() {
				cases := "n/a"
				if len(d.Casings) > 0 {
					names := make([]string, len(d.Casings))
					for i, c := range d.Casings {
						names[i] = c.String()
					}
					cases = strings.Join(names, "|")
				}
				fmt.Fprintf(w, "%s %-17s", termstyle.Bold(fmt.Sprintf("%-15s", d.Selection)), cases)
				for i, a := range d.Sets {
					if i > 0 {
						fmt.Fprint(w, " ")
					}
					fmt.Fprintf(w, "%s", termstyle.Cyan(a.String()))
				}
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%s %-17s %s\n", termstyle.Bold(fmt.Sprintf("%-15s", charset.Custom)), "n/a", "--custom-chars")
		},
	}
}
