// Command tendril-dump builds Tendril values from command-line input and
// prints a deterministic description of their form, length, and content —
// a hand-driven way to check small-string inlining, growth, and sharing
// behavior, in the spirit of the teacher library's cmd/dump_hdf5 debugging
// tool.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/scigolib/tendril"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tendril-dump",
		Short: "Inspect Tendril values built from command-line input",
	}

	rootCmd.AddCommand(describeCmd(), subCmd(), cloneCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <strings...>",
		Short: "Push each argument onto one Tendril and describe the result",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			t := tendril.New()
			defer t.Destroy()
			for _, a := range args {
				if err := t.PushBuffer([]byte(a)); err != nil {
					log.Fatalf("push failed: %v", err)
				}
			}
			printDescription(t)
		},
	}
}

func subCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sub <string> <offset> <length>",
		Short: "Build a Tendril from <string>, take a subslice, and describe both",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			offset := parseUint32(args[1])
			length := parseUint32(args[2])

			t := tendril.New()
			defer t.Destroy()
			if err := t.PushBuffer([]byte(args[0])); err != nil {
				log.Fatalf("push failed: %v", err)
			}

			s := tendril.New()
			defer s.Destroy()
			if err := tendril.Sub(s, t, offset, length); err != nil {
				log.Fatalf("sub failed: %v", err)
			}

			fmt.Println("source:")
			printDescription(t)
			fmt.Println("subslice:")
			printDescription(s)
		},
	}
}

func cloneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clone <string>",
		Short: "Build a Tendril from <string>, clone it, and describe both",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			t := tendril.New()
			defer t.Destroy()
			if err := t.PushBuffer([]byte(args[0])); err != nil {
				log.Fatalf("push failed: %v", err)
			}

			c := tendril.New()
			defer c.Destroy()
			tendril.Clone(c, t)

			fmt.Println("original:")
			printDescription(t)
			fmt.Println("clone:")
			printDescription(c)
		},
	}
}

func printDescription(t *tendril.Tendril) {
	out := tendril.New()
	defer out.Destroy()
	if err := tendril.DebugDescribe(out, t); err != nil {
		log.Fatalf("describe failed: %v", err)
	}
	fmt.Println("  " + string(out.Bytes()))
}

func parseUint32(s string) uint32 {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		log.Fatalf("invalid integer %q: %v", s, err)
	}
	return uint32(v)
}
