/* Package main: Emoj -- a stack language written in emoji

Emoj has no syntax to speak of.  A program is a string of characters, and
every character is consumed, one at a time, as the program runs: there is no
parse tree, no compilation step, and no way to know what a program means
without running it, since any instruction may be redefined as it runs.

The machine has a single stack of values.  A value is one of:

  - an atom: a single character, pushed whenever a character has no
    instruction bound to it
  - a number: an integer of any size, made from digit atoms with ✅
  - a quotation: a list of atoms collected in data mode

Running 123✅ pushes the atoms 1, 2 and 3, and then folds them into the
number 321: digits are read from the top of the stack down, most recent first.

	> 123✅
	# [321]
	> 2✅➕
	# [323]

The machine runs in one of two modes.  In code mode each character is looked
up and executed, or pushed as an atom if unbound.  ❕ switches to data mode,
pushing a new empty quotation; from then on every character is appended to
that quotation, until the next ❕ switches back to code mode.  Since ❕ always
leaves data mode, quotations cannot contain other quotations.

	> ❕👏👏👏❕❕⏫⏫⏫❕
	# [[👏, 👏, 👏] [⏫, ⏫, ⏫]]
	> 🙏
	# [[👏, 👏, 👏] [👏, 👏, 👏] [👏, 👏, 👏] [👏, 👏, 👏]]

Quotations are run with 🙏, chosen between with ⁉, and repeated with 🔁.  A
nested run shares the stack with whatever started it; nesting only changes
which code is being read, and the code that was being read before resumes
once the nested code runs out.

New instructions are defined with 👌, which binds an atom to a quotation:

	> 🤘❕801✅79✅611✅101✅901✅🔤🔤🔤🔤🔤❕👌
	> 🤘
	metal

A built-in runs as soon as it is read, so to redefine one, name it with a
quotation of that single atom instead:

	> ❕➕❕❕✖❕👌
	> 2✅3✅➕
	# [6]

Definitions belong to the machine that made them, and may shadow any
built-in instruction except ❕, which can never be quoted. The stack and
definitions last as long as the machine: each line typed into the REPL
continues where the last one left off, even when a line fails part way
through.

With -session, lines are recorded into a named chat in a YAML file, and
resuming the chat replays its inputs. A new session file starts with the
Getting Started tutorial and a Reference chat, neither of which can be
deleted; other chats can be renamed with -rename or removed with -delete.

The built-in instructions are documented in builtins.go.

*/
package main
