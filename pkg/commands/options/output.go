package options

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/calprint/pkg/printers"
)

// OutputOptions selects how results are printed.
type OutputOptions struct {
	Output string
	JSON   bool
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().StringVarP(&po.Output, "output", "o", "text",
		"Output format. One of 'text', 'json' or 'yaml'.")
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON, same as --output=json.")
}

// Format resolves the flags. --json wins over --output.
func (o *OutputOptions) Format() (printers.Format, error) {
	if o.JSON {
		return printers.JSON, nil
	}
	return printers.ParseFormat(o.Output)
}

// HandleError prints err as {"error": ...} when a structured format was asked
// for, otherwise it is returned for cobra to report.
func (o *OutputOptions) HandleError(err error) error {
	if err == nil {
		return nil
	}
	f, ferr := o.Format()
	if ferr != nil || !f.Structured() {
		return err
	}
	if eerr := printers.Encode(color.Output, f, map[string]string{"error": err.Error()}); eerr != nil {
		return fmt.Errorf("%v (printing it: %w)", err, eerr)
	}
	return nil
}
