// Command koeval evaluates Korean or English text and prints the full
// evaluation result as indented JSON.
//
// Usage:
//
//	koeval [-query q] [file]
//
// With no file argument the text is read from stdin. An empty query
// triggers dynamic query generation for the relevance evaluation.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/az-ai-labs/ko-text-eval/evaluate"
)

func main() {
	query := flag.String("query", "", "relevance query (empty generates one from the text)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-query q] [file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	var (
		raw []byte
		err error
	)
	switch flag.NArg() {
	case 0:
		raw, err = io.ReadAll(os.Stdin)
	case 1:
		raw, err = os.ReadFile(flag.Arg(0))
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "koeval: %v\n", err)
		os.Exit(1)
	}

	result := evaluate.EvaluateWithQuery(string(raw), *query)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "koeval: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
