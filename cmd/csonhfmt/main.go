// Program csonhfmt parses a CSONH document and prints its parsed tree.
//
// Usage: csonhfmt [--format FORMAT] [FILE]
//
// If FILE is omitted, or is "-", csonhfmt reads from standard input.
// FORMAT selects the printed representation: "tree" (default, a debug
// dump) or "json".
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/csonh-lang/csonh"
	"github.com/pborman/getopt"
)

func main() {
	log.SetFlags(0)

	var format string
	var help bool
	getopt.StringVarLong(&format, "format", 'f', "output format: tree or json", "FORMAT")
	getopt.BoolVarLong(&help, "help", '?', "display help")
	getopt.SetParameters("[FILE]")

	if err := getopt.Getopt(nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.PrintUsage(os.Stderr)
		os.Exit(1)
	}

	if help {
		getopt.CommandLine.PrintUsage(os.Stderr)
		os.Exit(0)
	}

	if format == "" {
		format = "tree"
	}
	if format != "tree" && format != "json" {
		log.Fatalf("invalid --format %q: must be 'tree' or 'json'", format)
	}

	args := getopt.Args()
	in := os.Stdin
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			log.Fatalf("opening %s: %v", args[0], err)
		}
		defer f.Close()
		in = f
	}

	value, err := csonh.ParseReader(in)
	if err != nil {
		log.Fatalf("parse error: %v", err)
	}

	switch format {
	case "tree":
		fmt.Println(csonh.Dump(value))
	case "json":
		out, err := json.MarshalIndent(toJSON(value), "", "  ")
		if err != nil {
			log.Fatalf("marshalling output to JSON: %v", err)
		}
		fmt.Println(string(out))
	}
}

// toJSON converts a csonh.Value into plain Go data structures that
// encoding/json already knows how to render, since Value itself keeps
// Integer and Float as distinct variants that json.Marshal cannot see
// through on its own.
func toJSON(v csonh.Value) interface{} {
	switch v.Kind {
	case csonh.KindNull:
		return nil
	case csonh.KindBoolean:
		return v.Bool
	case csonh.KindInteger:
		return v.Int
	case csonh.KindFloat:
		return v.Float
	case csonh.KindString:
		return v.Str
	case csonh.KindArray:
		out := make([]interface{}, len(v.Arr))
		for i, item := range v.Arr {
			out[i] = toJSON(item)
		}
		return out
	case csonh.KindObject:
		out := make(map[string]interface{}, v.Obj.Len())
		for _, e := range v.Obj.Entries() {
			out[e.Key] = toJSON(e.Value)
		}
		return out
	default:
		return nil
	}
}
