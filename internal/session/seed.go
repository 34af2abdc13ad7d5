package session

import "time"

// Ids of the chats that every new store starts with.
const (
	GettingStartedID = "getting-started"
	ReferenceID      = "reference"
)

// seedChats returns the undeletable chats that a new store starts with: a
// tutorial whose inputs replay cleanly, and a reference card.
func seedChats(now time.Time) []Chat {
	return []Chat{
		{
			ID:          GettingStartedID,
			Name:        "Getting Started",
			Date:        now,
			AllowDelete: false,
			Session:     gettingStarted,
		},
		{
			ID:          ReferenceID,
			Name:        "Reference",
			Date:        now,
			AllowDelete: false,
			Session:     []Entry{{Debug, reference}},
		},
	}
}

var gettingStarted = []Entry{
	{Debug, `Emoj is a stack language written in emoji. Every character you type is an
instruction, and anything that is not an instruction is pushed onto the stack.`},

	{Input, "123✅"},
	{Debug, "[321]"},
	{Debug, `✅ folds the digits on the stack into a number, most recent digit first.`},

	{Input, "2✅➕"},
	{Debug, "[323]"},
	{Debug, `Arithmetic works on the top of the stack. There are also instructions to
rearrange it:

- 🔀 swaps the top two items.
- ⏫ duplicates the top item.
- ⤵ discards the top item.`},

	{Input, "⏫01✅➖"},
	{Debug, "[323 313]"},
	{Input, "🔀⤵"},
	{Debug, "[313]"},
	{Debug, `Values carry no type tag; each instruction interprets them as it sees fit:

- 🔤 prints a number as the character with that code.
- 🔢 prints a value as a number.`},

	{Input, "23✅56✅🔤🔤🔢"},
	{Debug, "[]"},
	{Output, "A 313"},
	{Debug, `❕ switches between code and data mode. In data mode every character is
collected into a quotation instead of being run.`},

	{Input, "❕👏👏👏❕❕⏫⏫⏫❕"},
	{Debug, "[[👏, 👏, 👏] [⏫, ⏫, ⏫]]"},
	{Debug, `🙏 runs the quotation on top of the stack as a program.`},

	{Input, "🙏"},
	{Debug, "[[👏, 👏, 👏] [👏, 👏, 👏] [👏, 👏, 👏] [👏, 👏, 👏]]"},
	{Debug, `👌 gives a name new meaning: push the name, then its code.`},

	{Input, "🤘❕801✅79✅611✅101✅901✅🔤🔤🔤🔤🔤❕👌"},
	{Debug, "[[👏, 👏, 👏] [👏, 👏, 👏] [👏, 👏, 👏] [👏, 👏, 👏]]"},
	{Input, "🤘"},
	{Debug, "[[👏, 👏, 👏] [👏, 👏, 👏] [👏, 👏, 👏] [👏, 👏, 👏]]"},
	{Output, "metal"},
	{Debug, `There are two control flow instructions:

- 🔁 pops a condition and a quotation, and runs the quotation until it leaves 🙅.
- ⁉ pops a condition, an else and a then quotation, and runs then if the
  condition is 🙆, else otherwise.`},

	{Input, "101✅❕🔤❕❕🔢❕🙆⁉"},
	{Debug, "[[👏, 👏, 👏] [👏, 👏, 👏] [👏, 👏, 👏] [👏, 👏, 👏]]"},
	{Output, "e"},
}

const reference = `- 🙆
  Signals OK.

- 🙅
  Signals not OK.

- [s | a b] 👐 -> [s | 🙆/🙅]
  Compares a and b; quotations are only equal to themselves.

- [s | d…] ✅ -> [s | n]
  Folds the digits on top of the stack into a number, most recent first.

- [s | n] 🔤 -> [s]
  Prints n as a character.

- [s | a] 🔢 -> [s]
  Prints a as a number.

- [s] ❕ -> [s | []]
  Switches between code and data mode; quotations do not nest.

- [s | a b] 🔀 -> [s | b a]
  Swaps the top two items.

- [s | a] ⏫ -> [s | a a]
  Duplicates the top item.

- [s | a] ⤵ -> [s]
  Discards the top item.

- [s | q] 🙏 -> [s | …]
  Runs q as a program.

- [s | a q] 👌 -> [s]
  Defines a with the code q; quote a as [a] to redefine a built-in.

- [s | b a] ✖ -> [s | b·a]
  Multiplies b by a.

- [s | b a] ➕ -> [s | b+a]
  Adds a to b.

- [s | b a] ➖ -> [s | b−a]
  Subtracts a from b.

- [s | b a] ➗ -> [s | b÷a]
  Divides b by a, truncating toward zero.

- [s | q c] 🔁 -> [s | …]
  Runs q until it leaves 🙅 on top of the stack; never runs if c is 🙅.

- [s | t e c] ⁉ -> [s | …]
  Runs t if c is 🙆, e otherwise.`
