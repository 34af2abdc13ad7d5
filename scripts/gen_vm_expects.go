// gen_vm_expects writes a functional wrapper for each expect and with method
// of vmTestCase, so that test cases can apply them in bulk:
//
//	vmTest("name").apply(expectVMStack(...), expectVMOutput(...))
//
// Usage: go run scripts/gen_vm_expects.go -- vm_test.go vm_expects_test.go
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"regexp"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

type namedReader interface {
	io.ReadCloser
	Name() string
}

var (
	in  namedReader    = os.Stdin
	out io.WriteCloser = os.Stdout
)

func openArgs(args []string) {
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			log.Fatalf("failed to open %v: %v", args[0], err)
		}
		in = f
	}
	if len(args) > 1 {
		f, err := os.Create(args[1])
		if err != nil {
			log.Fatalf("failed to create %v: %v", args[1], err)
		}
		out = f
	}
}

func main() {
	flag.Parse()
	openArgs(flag.Args())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)

	// generated code is piped through goimports before landing in out
	ready := make(chan struct{})
	eg.Go(func() error {
		fmtCmd := exec.CommandContext(ctx, "goimports")
		pipe, err := fmtCmd.StdinPipe()
		if err != nil {
			return err
		}
		defer out.Close()
		fmtCmd.Stdout = out
		fmtCmd.Stderr = os.Stderr
		out = pipe
		close(ready)
		if err := fmtCmd.Run(); err != nil {
			return fmt.Errorf("goimports failed: %w", err)
		}
		return nil
	})

	eg.Go(func() (rerr error) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ready:
		}
		defer func() {
			if cerr := in.Close(); rerr == nil {
				rerr = cerr
			}
			if cerr := out.Close(); rerr == nil {
				rerr = cerr
			}
		}()
		return generate(ctx)
	})

	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}
}

// expectMethod matches the builder methods of vmTestCase; every parameter must
// be written with its own type, since the argument list is copied verbatim
// into the wrapper.
var expectMethod = regexp.MustCompile(`func \(vmt vmTestCase\) (expect|with)(.+?)\((.*?)\) vmTestCase`)

func generate(ctx context.Context) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "package main\n\n// @generated from %v\n\n", in.Name())
	if args := flag.Args(); len(args) >= 2 {
		buf.WriteString("//go:generate go run scripts/gen_vm_expects.go --")
		for _, arg := range args {
			buf.WriteByte(' ')
			buf.WriteString(arg)
		}
		buf.WriteString("\n\n")
	}

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if match := expectMethod.FindSubmatch(sc.Bytes()); len(match) > 0 {
			base, what, args := match[1], match[2], match[3]
			fmt.Fprintf(&buf, "func %sVM%s(%s) func(vmTestCase) vmTestCase {\n", base, what, args)
			buf.WriteString("\treturn func(vmt vmTestCase) vmTestCase {\n")
			fmt.Fprintf(&buf, "\t\treturn vmt.%s%s(", base, what)
			if err := writeArgNames(&buf, args); err != nil {
				return fmt.Errorf("%s%s: %w", base, what, err)
			}
			buf.WriteString(")\n\t}\n}\n\n")
		}
		if buf.Len() > 0 {
			if _, err := buf.WriteTo(out); err != nil {
				return err
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return sc.Err()
}

func writeArgNames(buf *bytes.Buffer, args []byte) error {
	if len(bytes.TrimSpace(args)) == 0 {
		return nil
	}
	for i, part := range bytes.Split(args, []byte(",")) {
		fields := bytes.Fields(part)
		if len(fields) != 2 {
			return fmt.Errorf("parameter %q must have its own type", bytes.TrimSpace(part))
		}
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.Write(fields[0])
		if bytes.HasPrefix(fields[1], []byte("...")) {
			buf.WriteString("...")
		}
	}
	return nil
}
