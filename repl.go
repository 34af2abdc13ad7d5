package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/peterh/liner"

	"github.com/jcorbin/goemoj/internal/fileinput"
	"github.com/jcorbin/goemoj/internal/flushio"
	"github.com/jcorbin/goemoj/internal/logio"
	"github.com/jcorbin/goemoj/internal/panicerr"
	"github.com/jcorbin/goemoj/internal/runeio"
	"github.com/jcorbin/goemoj/internal/session"
)

// repl feeds lines of source into a single VM, printing what each produces,
// and optionally recording a chat transcript.
type repl struct {
	vm      *VM
	log     *logio.Logger
	out     flushio.WriteFlusher
	timeout time.Duration
	debug   bool

	store       *session.Store
	sessionPath string
	chat        session.Chat
}

const prompt = "> "

// openChat loads a session file and the named chat, then replays the chat's
// inputs to restore its stack and definitions.
func (rep *repl) openChat(ctx context.Context, path, name string) error {
	if err := rep.loadChat(path, name); err != nil {
		return err
	}
	rep.replay(ctx)
	return nil
}

func (rep *repl) loadChat(path, name string) error {
	store, err := session.Load(path)
	if err != nil {
		return err
	}
	chat, err := store.Chat(name)
	if err != nil {
		return err
	}
	rep.store, rep.sessionPath, rep.chat = store, path, chat
	return nil
}

func (rep *repl) replay(ctx context.Context) {
	for i, line := range rep.chat.Inputs() {
		if _, err := rep.runLine(ctx, line); err != nil {
			rep.log.Printf("replay", "%v#%v: %v", rep.chat.Name, i+1, err)
		}
	}
}

// renameChat renames the open chat, and saves it.
func (rep *repl) renameChat(name string) error {
	rep.chat.Rename(name)
	rep.store.Put(rep.chat)
	return rep.store.Save(rep.sessionPath)
}

// deleteChat removes the open chat from the session file.
func (rep *repl) deleteChat() error {
	if err := rep.store.Remove(rep.chat.ID); err != nil {
		return fmt.Errorf("cannot delete %q: %w", rep.chat.Name, err)
	}
	return rep.store.Save(rep.sessionPath)
}

func (rep *repl) runLine(ctx context.Context, line string) (string, error) {
	if rep.timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, rep.timeout)
		defer cancel()
	}
	return rep.vm.RunLine(ctx, line)
}

// handle runs one line, reports its output or error, and records it.
func (rep *repl) handle(ctx context.Context, loc fmt.Stringer, line string) error {
	out, runErr := rep.runLine(ctx, line)
	stack := stackString(rep.vm.stack)

	if runErr != nil {
		rep.log.Errorf("%v: %v: %v", loc, ErrorKind(runErr), runErr)
		if panicerr.IsPanic(runErr) {
			rep.log.Printf("PANIC", "%s", panicerr.PanicStack(runErr))
		}
	} else if out != "" {
		if _, err := runeio.WriteANSIString(rep.out, out+"\n"); err != nil {
			return err
		}
	}
	if rep.debug {
		if _, err := fmt.Fprintf(rep.out, "# %v\n", stack); err != nil {
			return err
		}
	}
	if err := rep.out.Flush(); err != nil {
		return err
	}

	if rep.store == nil {
		return nil
	}
	rep.chat.Record(session.Input, line)
	rep.chat.Record(session.Debug, stack)
	if runErr != nil {
		rep.chat.Record(session.Error, fmt.Sprintf("%v: %v", ErrorKind(runErr), runErr))
	} else if out != "" {
		rep.chat.Record(session.Output, out)
	}
	rep.store.Put(rep.chat)
	return rep.store.Save(rep.sessionPath)
}

// runInput handles every line read from in.
func (rep *repl) runInput(ctx context.Context, in *fileinput.Input) error {
	for {
		loc, line, err := in.ReadLine()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		if err := rep.handle(ctx, loc, line); err != nil {
			return err
		}
	}
}

type promptLocation int

func (n promptLocation) String() string { return fmt.Sprintf("<stdin>:%v", int(n)) }

// interact reads lines from a terminal, with editing and history.
func (rep *repl) interact(ctx context.Context) error {
	term := liner.NewLiner()
	defer term.Close()
	term.SetCtrlCAborts(true)
	term.SetWordCompleter(rep.complete)

	for n := 1; ; n++ {
		line, err := term.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		if line != "" {
			term.AppendHistory(line)
		}
		if err := rep.handle(ctx, promptLocation(n), line); err != nil {
			return err
		}
	}
}

// complete offers the instruction names bound in the VM, so that they can be
// entered from a keyboard without an emoji picker.
func (rep *repl) complete(line string, pos int) (head string, completions []string, tail string) {
	runes := []rune(line)
	head, tail = string(runes[:pos]), string(runes[pos:])
	for _, prim := range Builtins() {
		completions = append(completions, head+string(prim.Name()))
	}
	var defined []string
	for name := range rep.vm.defs {
		if _, isBuiltin := builtins[name]; !isBuiltin {
			defined = append(defined, head+string(name))
		}
	}
	sort.Strings(defined)
	return "", append(completions, defined...), tail
}
