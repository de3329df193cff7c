// Command qjson converts qjson source to standard JSON. By default it
// filters stdin to stdout; given file arguments, it converts each in
// turn and prints the results to stdout separated by newlines.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/qjson/qjson-go"
)

var (
	compact = pflag.BoolP("compact", "c", false, "no-op, kept for compatibility: output is already compact")
	version = pflag.BoolP("version", "v", false, "print the qjson grammar version and exit")
	output  = pflag.StringP("output", "o", "", "write converted JSON to this file instead of stdout")
)

func main() {
	pflag.Parse()

	if *version {
		fmt.Println(qjson.Version)
		return
	}

	w := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fmt.Fprintln(os.Stderr, "qjson:", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	args := pflag.Args()
	if len(args) == 0 {
		if err := convertReader(os.Stdin, w); err != nil {
			fmt.Fprintln(os.Stderr, "qjson:", err)
			os.Exit(1)
		}
		return
	}

	status := 0
	for _, path := range args {
		if err := convertFile(path, w); err != nil {
			fmt.Fprintln(os.Stderr, "qjson:", path+":", err)
			status = 1
		}
	}
	os.Exit(status)
}

func convertFile(path string, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return convertReader(f, w)
}

func convertReader(r io.Reader, w io.Writer) error {
	input, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	out, err := qjson.Decode(input)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
