//go:build linux

// Command microrl-serial drives the engine from a real UART opened with
// github.com/daedaluz/goserial — the canonical resource-constrained
// deployment target the engine is designed for. Input and output both
// go over the same serial port; there is no separate local terminal.
package main

import (
	"flag"
	"fmt"
	"log"

	serial "github.com/daedaluz/goserial"

	"github.com/ajwerner/microrl"
)

func main() {
	dev := flag.String("dev", "/dev/ttyUSB0", "serial device path")
	flag.Parse()

	port, err := serial.Open(*dev, serial.NewOptions())
	if err != nil {
		log.Fatal(err)
	}
	defer port.Close()

	e, err := microrl.New(
		func(e *microrl.Editor, p []byte) { port.Write(p) },
		microrl.WithPrompt("uart> ", 6),
		microrl.WithPrintPromptOnInit(true),
		microrl.WithEndl(microrl.EndlCRLF),
	)
	if err != nil {
		log.Fatal(err)
	}
	e.SetExecutor(func(e *microrl.Editor, argv [][]byte) int {
		for i, tok := range argv {
			fmt.Fprintf(port, "  [%d] %q\r\n", i, tok)
		}
		return 0
	})

	buf := make([]byte, 64)
	for {
		n, err := port.Read(buf)
		if err != nil {
			log.Fatal(err)
		}
		for _, b := range buf[:n] {
			e.InsertByte(b)
		}
	}
}
