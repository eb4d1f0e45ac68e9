// Command fastparse is an interactive front-end over the example grammars.
// Each input line is parsed with the selected grammar; successes print the
// produced value, failures print the rule trace.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"

	"github.com/krux02/fastparse/infix"
	"github.com/krux02/fastparse/json"
	"github.com/krux02/fastparse/yaml"
)

var grammars = map[string]func(string) (any, error){
	"json": json.Parse,
	"yaml": yaml.Parse,
	"infix": func(s string) (any, error) {
		v, err := infix.Eval(s)
		return v, err
	},
}

func main() {
	name := flag.String("g", "json", "grammar to use: json, yaml or infix")
	verbose := flag.Bool("v", false, "print verbose failure traces")
	flag.Parse()

	parse := grammars[*name]
	if parse == nil {
		fmt.Fprintf(os.Stderr, "unknown grammar %q\n", *name)
		os.Exit(1)
	}

	if flag.NArg() > 0 {
		// non-interactive: parse the arguments and exit
		code := 0
		for _, arg := range flag.Args() {
			if !report(parse, arg, *verbose) {
				code = 1
			}
		}
		os.Exit(code)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          *name + "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		if line == "" {
			continue
		}
		report(parse, line, *verbose)
	}
}

func report(parse func(string) (any, error), input string, verbose bool) bool {
	v, err := parse(input)
	if err != nil {
		fmt.Println(err)
		if f, ok := err.(interface{ VerboseTrace() string }); ok && verbose {
			fmt.Println(f.VerboseTrace())
		}
		return false
	}
	fmt.Printf("%#v\n", v)
	return true
}
