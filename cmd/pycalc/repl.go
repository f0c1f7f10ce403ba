package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/chekart/pycalc"
	"github.com/chekart/pycalc/internal/config"
)

// lineReader is the part of *liner.State the loop uses.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

type repl struct {
	in      lineReader
	out     io.Writer
	cfg     config.Config
	verbose bool
}

// loop evaluates lines until the input ends or the user aborts with Ctrl+C.
func (r *repl) loop() error {
	for {
		line, err := r.in.Prompt(r.cfg.Prompt)
		switch {
		case err == nil: // do nothing
		case errors.Is(err, liner.ErrPromptAborted), errors.Is(err, io.EOF):
			r.bye()
			return nil
		default:
			return fmt.Errorf("reading expression: %w", err)
		}
		if strings.TrimSpace(line) != "" {
			r.in.AppendHistory(line)
		}
		v, err := pycalc.Compute(line)
		if err != nil {
			if r.verbose {
				log.Printf("%q: %v", line, err)
			}
			fmt.Fprintln(r.out, r.cfg.ErrorMessage)
			continue
		}
		fmt.Fprintf(r.out, "Result: "+r.cfg.ResultFormat+"\n", v)
	}
}

func (r *repl) bye() {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.cfg.Farewell)
}

// interactive runs the loop on the terminal, keeping line history in the
// configured file.
func interactive(out io.Writer, cfg config.Config, verbose bool) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if cfg.HistoryFile != "" {
		if f, err := os.Open(cfg.HistoryFile); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			f, err := os.Create(cfg.HistoryFile)
			if err != nil {
				log.Printf("saving history: %v", err)
				return
			}
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}()
	}

	r := repl{in: ln, out: out, cfg: cfg, verbose: verbose}

	// Without a terminal, liner can't see Ctrl+C, so it arrives as a signal.
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		r.bye()
		os.Exit(0)
	}()

	return r.loop()
}
