// Command microrl-pty demonstrates driving the engine as a front-end
// proxy: local keystrokes are line-edited by microrl, and only a
// completed line is forwarded to a child process running behind a
// pseudo-terminal. The child's own output is copied straight to stdout,
// bypassing the editor entirely.
package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/term"

	"github.com/ajwerner/microrl"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <command> [<args>]\n", os.Args[0])
		os.Exit(1)
	}

	c := exec.Command(os.Args[1], os.Args[2:]...)

	ptmx, err := pty.Start(c)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = ptmx.Close() }()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGWINCH)
	go func() {
		for range ch {
			_ = pty.InheritSize(os.Stdin, ptmx)
		}
	}()
	ch <- syscall.SIGWINCH
	defer func() { signal.Stop(ch); close(ch) }()

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = term.Restore(int(os.Stdin.Fd()), oldState) }()

	go func() { _, _ = io.Copy(os.Stdout, ptmx) }()

	e, err := microrl.New(
		func(e *microrl.Editor, p []byte) { os.Stdout.Write(p) },
		microrl.WithPrompt("pty> ", 5),
		microrl.WithPrintPromptOnInit(true),
	)
	if err != nil {
		log.Fatal(err)
	}
	e.SetExecutor(func(e *microrl.Editor, argv [][]byte) int {
		fmt.Fprintf(ptmx, "%s\n", bytes.Join(argv, []byte(" ")))
		return 0
	})

	buf := make([]byte, 256)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return
		}
		for _, b := range buf[:n] {
			e.InsertByte(b)
		}
	}
}
