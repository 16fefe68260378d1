// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command seqcat chains two sources into one stream of lines. A source
// is a file of lines ("-" for stdin), or, with -e, a Starlark
// expression yielding a list, e.g. '[str(x * x) for x in range(10)]'.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/seqcat/concat"
	"github.com/ezrec/seqcat/seq"
	"github.com/ezrec/seqcat/translate"
)

var f = translate.From

func main() {
	var exprMode bool
	var countOnly bool
	var output string

	flag.BoolVar(&exprMode, "e", false, "Sources are Starlark expressions yielding lists")
	flag.BoolVar(&countOnly, "n", false, "Print only the total element count")
	flag.StringVar(&output, "o", "-", "Output file")

	flag.Parse()

	if flag.NArg() != 2 {
		log.Fatalf("%v: %v", os.Args[0], f("expected exactly two sources"))
	}

	first, err := load(flag.Arg(0), exprMode)
	if err != nil {
		log.Fatalf("%v: %v", flag.Arg(0), err)
	}
	second, err := load(flag.Arg(1), exprMode)
	if err != nil {
		log.Fatalf("%v: %v", flag.Arg(1), err)
	}

	var out io.Writer = os.Stdout
	if output != "-" {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		out = ouf
	}

	joined := concat.Concat[string, int, int](seq.FromSlice(first), seq.FromSlice(second))

	if countOnly {
		total := seq.Distance(joined, joined.Start(), joined.End())
		translate.Printer().Fprintf(out, "%d\n", total)
		return
	}

	for line := range joined.Values() {
		fmt.Fprintln(out, line)
	}
}

// load reads a source as lines of a file, or evaluates it as a
// Starlark expression when expr is set.
func load(source string, expr bool) (items []string, err error) {
	if expr {
		return evalList(source)
	}

	inf := os.Stdin
	if source != "-" {
		inf, err = os.Open(source)
		if err != nil {
			return
		}
		defer inf.Close()
	}

	scanner := bufio.NewScanner(inf)
	for scanner.Scan() {
		items = append(items, scanner.Text())
	}
	err = scanner.Err()
	return
}

// evalList evaluates a Starlark expression and flattens the resulting
// iterable into strings.
func evalList(expr string) (items []string, err error) {
	opts := syntax.FileOptions{}
	thread := starlark.Thread{}

	value, err := starlark.EvalOptions(&opts, &thread, "expr", expr, nil)
	if err != nil {
		return
	}

	iterable := starlark.Iterate(value)
	if iterable == nil {
		err = fmt.Errorf("%v", f("expression is not iterable: %v", value.Type()))
		return
	}
	defer iterable.Done()

	var item starlark.Value
	for iterable.Next(&item) {
		if text, ok := starlark.AsString(item); ok {
			items = append(items, text)
		} else {
			items = append(items, item.String())
		}
	}
	return
}
