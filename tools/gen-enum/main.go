// Command gen-enum generates the string tables, value list and enum-set
// constructor for an integer enum type.
//
//	//go:generate go run github.com/rdeusser/sets/tools/gen-enum -type Feature
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	var print bool

	options := GeneratorOptions{
		Args: os.Args[1:],
	}

	flag := flag.NewFlagSet("gen-enum", flag.ContinueOnError)

	flag.StringVar(&options.Type, "type", "", "type name")
	flag.StringVar(&options.Output, "output", "", "package directory; the file is written to <dir>/<type>_enum.go")
	flag.StringVar(&options.BuildTags, "tags", "", "comma-separated list of build tags to apply")
	flag.StringVar(&options.SetImport, "set-import", defaultSetImport, "import path of the set package")
	flag.BoolVar(&options.NoSet, "no-set", false, "do not generate the enum-set constructor")
	flag.BoolVar(&print, "print", false, "print the generated code to stdout")

	if err := flag.Parse(os.Args[1:]); err != nil {
		log.Fatalf("%+v", err)
	}

	if len(options.Type) == 0 {
		log.Printf("-type is required")
		os.Exit(1)
	}

	generator := NewGenerator(options)
	src, err := generator.Run()
	if print {
		fmt.Println(string(src))
	}

	if err != nil {
		log.Fatalf("%+v", err)
	}
}
