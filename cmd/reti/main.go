// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/tebeka/atexit"

	"github.com/ezrec/reti/cpu"
	"github.com/ezrec/reti/emulator"
	"github.com/ezrec/reti/translate"
)

var f = translate.From

// defines collects repeated -D NAME=VALUE flags.
type defines map[string]string

func (d defines) String() string {
	var list []string
	for name, value := range d {
		list = append(list, name+"="+value)
	}
	return strings.Join(list, ",")
}

func (d defines) Set(text string) error {
	name, value, ok := strings.Cut(text, "=")
	if !ok || len(name) == 0 {
		return errors.New(f("'%v' is not NAME=VALUE", text))
	}
	d[name] = value
	return nil
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintln(out, f("USAGE"))
	fmt.Fprintln(out, f("    %v [OPTIONS] FILE", os.Args[0]))
	fmt.Fprintln(out)
	fmt.Fprintln(out, f("with FILE being the name of a file containing ReTI instructions, or - for stdin."))
	fmt.Fprintln(out)
	fmt.Fprintln(out, f("OPTIONS"))
	flag.PrintDefaults()
}

func main() {
	var verbose bool
	var stepping bool
	var noDebug bool
	var help bool
	var maxSteps int
	var lang string
	predefine := defines{}

	log.SetFlags(0)
	log.SetPrefix("reti: ")

	flag.BoolVar(&verbose, "v", false, "Verbose mode: trace state and instruction of every step")
	flag.BoolVar(&stepping, "s", false, "Stepping mode: wait for ENTER before every instruction")
	flag.BoolVar(&noDebug, "r", false, "Do not execute debug instructions, or print the final state")
	flag.BoolVar(&help, "h", false, "Print this help message")
	flag.IntVar(&maxSteps, "n", 0, "Maximum steps to execute, 0 for unlimited")
	flag.StringVar(&lang, "l", "", "Language of messages, e.g. en-US")
	flag.Var(predefine, "D", "Predefine an equate, as NAME=VALUE")
	flag.Usage = usage

	flag.Parse()

	if len(lang) != 0 {
		translate.Use(lang)
	}

	if help {
		flag.Usage()
		atexit.Exit(0)
	}

	if flag.NArg() != 1 {
		flag.Usage()
		atexit.Exit(1)
	}

	source := flag.Arg(0)
	inf := os.Stdin
	if source != "-" {
		var err error
		inf, err = os.Open(source)
		if err != nil {
			log.Printf("%v: %v", source, err)
			atexit.Exit(1)
		}
		atexit.Register(func() { inf.Close() })
	}

	asm := &cpu.Assembler{}
	for name, value := range predefine {
		asm.Predefine(name, value)
	}

	prog, err := asm.Parse(inf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v: ", source)
		atexit.Exit(emulator.Report(os.Stderr, err))
	}

	emu := emulator.NewEmulator()
	emu.Program = prog
	emu.Verbose = verbose
	emu.Stepping = stepping
	emu.Debug = !noDebug
	emu.MaxSteps = maxSteps
	emu.Console.Input = os.Stdin
	emu.Console.Output = os.Stdout

	emu.Reset()

	err = emu.Run()
	if err != nil {
		atexit.Exit(emulator.Report(os.Stderr, err))
	}

	if emu.Debug {
		err = emu.WriteReport(os.Stdout)
		if err != nil {
			log.Print(err)
			atexit.Exit(1)
		}
	}

	atexit.Exit(0)
}
