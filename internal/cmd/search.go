package cmd

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/harrison/searchbench/internal/prompt"
	"github.com/harrison/searchbench/internal/search"
)

// ErrUnsortedValues is returned when --values is not in ascending order
var ErrUnsortedValues = errors.New("values must be sorted in ascending order")

// NewSearchCommand creates the search command
func NewSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Binary search for a target in an integer range",
		Long: `Search for a target in the inclusive range low..high with binary search
and report the index and the number of steps taken.

Values not given as flags are asked for interactively. Input that is not
an integer ends the command with an error. If low is greater than high the
bounds are swapped.

With --values the target is searched in the given sorted list instead,
and the result of linear search is printed alongside.

Examples:
  searchbench search
  searchbench search --target 42 --low 1 --high 100
  searchbench search --target 71 --values 14,25,31,46,52,63,71,84,96,99`,
		Args: cobra.NoArgs,
		RunE: runSearch,
	}

	cmd.Flags().Int("target", 0, "Value to search for")
	cmd.Flags().Int("low", 0, "Lower bound of the range (inclusive)")
	cmd.Flags().Int("high", 0, "Upper bound of the range (inclusive)")
	cmd.Flags().IntSlice("values", nil, "Search this sorted list instead of a range")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	env, err := newRuntimeEnv(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	target := optionalInt(cmd, "target")
	out := cmd.OutOrStdout()
	session := prompt.NewSession(cmd.InOrStdin(), out)

	if changed(cmd, "values") {
		values, _ := cmd.Flags().GetIntSlice("values")
		if !slices.IsSorted(values) {
			return ErrUnsortedValues
		}

		if target == nil {
			t, err := session.ReadInt(prompt.TargetPrompt)
			if err != nil {
				return err
			}
			target = &t
		}

		bin := search.Binary(values, *target)
		lin := search.Linear(values, *target)
		env.log.LogDebug(fmt.Sprintf("Searched %d value(s) for %d", len(values), *target))
		fmt.Fprintf(out, "Binary search: %s\n", describeResult(bin))
		fmt.Fprintf(out, "Linear search: %s\n", describeResult(lin))
		return nil
	}

	res, err := session.Run(target, optionalInt(cmd, "low"), optionalInt(cmd, "high"))
	if err != nil {
		return err
	}
	env.log.LogDebug(fmt.Sprintf("Binary search finished in %d step(s)", res.Steps))
	return nil
}

// optionalInt returns the flag value, or nil when the user did not set it.
func optionalInt(cmd *cobra.Command, name string) *int {
	if !changed(cmd, name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}

func describeResult(res search.Result) string {
	if res.Found() {
		return fmt.Sprintf("found at index %d in %d step(s)", res.Index, res.Steps)
	}
	return fmt.Sprintf("not found after %d step(s)", res.Steps)
}
