// Package command parses single-line chat input into local shortcut commands.
// Anything it does not recognize passes through to the model-backed chat path.
package command

import (
	"strconv"
	"strings"

	"github.com/rinisriranganathan/RestBot/internal/order"
)

type Kind int

const (
	// KindPassthrough means the line is free text for the assistant.
	KindPassthrough Kind = iota
	KindEmpty
	KindViewOrder
	KindCheckout
	KindConfirmOrder
	KindCancelOrder
	KindRemove
	// KindHint carries a guidance message and nothing else
	// (/add usage, /remove usage, unknown slash command).
	KindHint
)

// Command is the interpreter's tagged output. Instruction is set only for
// KindRemove; Hint only for KindHint.
type Command struct {
	Kind        Kind
	Instruction order.Instruction
	Hint        string
}

const removeUsage = "Usage: /remove [quantity] [item name]. For customized items, Froastie will try to identify it or ask for clarification."

var numberWords = map[string]int{
	"a": 1, "an": 1,
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18,
	"nineteen": 19, "twenty": 20,
}

// Parse interprets one line of user input. Matching is case-insensitive;
// both slash-prefixed and bare-word forms are recognized.
func Parse(input string) Command {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Command{Kind: KindEmpty}
	}

	lower := strings.ToLower(trimmed)

	if strings.HasPrefix(lower, "/") {
		fields := strings.Fields(lower)
		cmd, args := fields[0], strings.TrimSpace(strings.Join(fields[1:], " "))

		switch cmd {
		case "/add":
			return Command{Kind: KindHint, Hint: "The /add command is not an active command. To add items, just tell Froastie directly, like 'add two samosas and a lassi, make one samosa extra spicy'."}
		case "/remove":
			ins, ok := parseRemoveArgs(args)
			if !ok {
				return Command{Kind: KindHint, Hint: removeUsage}
			}
			return Command{Kind: KindRemove, Instruction: ins}
		case "/vieworder":
			return Command{Kind: KindViewOrder}
		case "/checkout":
			return Command{Kind: KindCheckout}
		case "/confirmorder":
			return Command{Kind: KindConfirmOrder}
		case "/cancelorder":
			return Command{Kind: KindCancelOrder}
		default:
			return Command{Kind: KindHint, Hint: "Unknown command: " + cmd + ". Available: /remove, /vieworder, /checkout, /confirmorder, /cancelorder. Or just chat with Froastie!"}
		}
	}

	switch lower {
	case "vieworder", "view order":
		return Command{Kind: KindViewOrder}
	case "checkout":
		return Command{Kind: KindCheckout}
	case "confirmorder", "confirm order":
		return Command{Kind: KindConfirmOrder}
	case "cancelorder", "cancel order":
		return Command{Kind: KindCancelOrder}
	}

	return Command{Kind: KindPassthrough}
}

// parseRemoveArgs splits "/remove" arguments into quantity and item name.
// A leading positive integer or spelled-out number word is the quantity;
// otherwise the whole argument string is the item name with quantity 1.
func parseRemoveArgs(args string) (order.Instruction, bool) {
	args = strings.TrimSpace(args)
	if args == "" {
		return order.Instruction{}, false
	}

	words := strings.Fields(args)
	if len(words) == 1 {
		return order.Instruction{ItemName: words[0], Quantity: 1}, true
	}

	qty := 1
	name := args
	if n, err := strconv.Atoi(words[0]); err == nil && n > 0 {
		qty = n
		name = strings.Join(words[1:], " ")
	} else if n, ok := numberWords[strings.ToLower(words[0])]; ok {
		qty = n
		name = strings.Join(words[1:], " ")
	}

	if strings.TrimSpace(name) == "" {
		return order.Instruction{}, false
	}
	return order.Instruction{ItemName: name, Quantity: qty}, true
}
