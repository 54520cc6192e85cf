// Command eseldump reads an eSEL blob and dumps its parsed section and
// parameter tree to stdout. It exists purely to exercise the parse ->
// params pipeline end to end, in the spirit of the teacher's cmd/dump
// and cmd/perfdump: a dump tool for inspection, not a faithful
// rendering engine.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/YADRO-KNS/openpower-esel-parser"
	_ "github.com/YADRO-KNS/openpower-esel-parser/plugins/diag"
	_ "github.com/YADRO-KNS/openpower-esel-parser/plugins/errl"
	_ "github.com/YADRO-KNS/openpower-esel-parser/plugins/fwtrace"
	_ "github.com/YADRO-KNS/openpower-esel-parser/plugins/hbtrace"
	_ "github.com/YADRO-KNS/openpower-esel-parser/plugins/xscom"
)

func main() {
	root := &cobra.Command{
		Use:   "eseldump <file>",
		Short: "Dump the section and parameter tree of an eSEL blob",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dump(args[0])
		},
	}
	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func dump(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	ev, err := esel.Parse(data)
	if err != nil {
		return err
	}

	if rec, ok := ev.SelRecord(); ok {
		fmt.Println("SEL record:")
		printParams(rec.Params())
		fmt.Println()
	}

	for _, s := range ev.Sections() {
		fmt.Printf("== %s ==\n", s.Name())
		printParams(s.HeaderParams())
		printParams(s.PayloadParams())
		fmt.Println()
	}
	return nil
}

func printParams(params esel.Params) {
	for _, p := range params {
		switch p.Kind().String() {
		case "Blank":
			fmt.Println()
		case "Heading":
			fmt.Printf("-- %s --\n", p.Value())
		case "Raw":
			fmt.Println(p.Value())
		default:
			fmt.Printf("  %-24s %s\n", p.Name()+":", p.Value())
		}
	}
}
