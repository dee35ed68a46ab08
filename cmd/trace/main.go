// Command trace loads a hex-encoded program into memory and single-steps
// it under an interactive debugger.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"m6502/cpu"
	"m6502/mem"
)

func main() {
	addrFlag := flag.String("addr", "0200", "hex load address")
	flag.Parse()

	addr64, err := strconv.ParseUint(*addrFlag, 16, 16)
	if err != nil {
		log.Fatalf("trace: bad -addr: %v", err)
	}

	var program []byte
	if flag.NArg() > 0 {
		program = []byte(flag.Arg(0))
	} else {
		program, err = io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("trace: reading program: %v", err)
		}
	}

	bus := mem.NewBus()
	c := cpu.New(bus)

	if err := cpu.Debug(c, bus, string(program), uint16(addr64)); err != nil {
		fmt.Fprintln(os.Stderr, "trace:", err)
		os.Exit(1)
	}
}
