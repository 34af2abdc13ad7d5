package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/jcorbin/goemoj/internal/fileinput"
	"github.com/jcorbin/goemoj/internal/flushio"
	"github.com/jcorbin/goemoj/internal/logio"
	"github.com/jcorbin/goemoj/internal/session"
)

func main() {
	ctx := context.Background()

	var (
		timeout     time.Duration
		trace       bool
		debug       bool
		stepLimit   uint
		sessionPath string
		chatName    string
		deleteChat  bool
		newName     string
	)
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit for each line")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.BoolVar(&debug, "debug", false, "print the stack after each line")
	flag.UintVar(&stepLimit, "step-limit", 0, "limit how many steps each line may take")
	flag.StringVar(&sessionPath, "session", "", "load and save chat transcripts in a YAML file")
	flag.StringVar(&chatName, "chat", "New Chat", "name of the chat to resume from the session file")
	flag.BoolVar(&deleteChat, "delete", false, "delete the chat from the session file, then exit")
	flag.StringVar(&newName, "rename", "", "rename the chat before resuming it; an empty name is "+session.Untitled)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %v [flags] [FILE...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	renaming := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "rename" {
			renaming = true
		}
	})

	var log logio.Logger
	log.SetOutput(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	var opts = []VMOption{
		WithStepLimit(stepLimit),
	}
	if trace {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
	}

	rep := repl{
		vm:      New(opts...),
		log:     &log,
		out:     flushio.NewWriteFlusher(os.Stdout),
		timeout: timeout,
		debug:   debug,
	}
	defer func() {
		log.ErrorIf(rep.out.Flush())
		log.ErrorIf(rep.vm.Close())
	}()

	if sessionPath != "" && deleteChat {
		err := rep.loadChat(sessionPath, chatName)
		if err == nil {
			err = rep.deleteChat()
		}
		if err != nil {
			log.Errorf("%v", err)
		}
		return
	} else if sessionPath != "" {
		err := rep.openChat(ctx, sessionPath, chatName)
		if err == nil && renaming {
			err = rep.renameChat(newName)
		}
		if err != nil {
			log.Errorf("%v", err)
			return
		}
	} else if deleteChat || renaming {
		log.Errorf("-delete and -rename need a -session file")
		return
	}

	if args := flag.Args(); len(args) == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		log.ErrorIf(rep.interact(ctx))
		return
	}

	var in fileinput.Input
	if args := flag.Args(); len(args) == 0 {
		in.Queue = []io.Reader{os.Stdin}
	} else {
		for _, name := range args {
			f, err := os.Open(name)
			if err != nil {
				log.Errorf("%v", err)
				return
			}
			in.Queue = append(in.Queue, f)
		}
	}
	log.ErrorIf(rep.runInput(ctx, &in))
}
