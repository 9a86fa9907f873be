// Package cli provides terminal I/O, output formatting, and meta-command
// dispatch for the frontier world explorer.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nathoo/frontiercore/explore"
	"github.com/nathoo/frontiercore/types"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Session   *explore.Session
	Pack      *types.Pack
	In        io.Reader
	Out       io.Writer
	EchoInput bool   // echo each input line after the prompt (for script playback)
	lastCmd   string // for "again"/"g" repeat
}

// New creates a CLI wired to the given session.
func New(session *explore.Session, pack *types.Pack) *CLI {
	return &CLI{
		Session: session,
		Pack:    pack,
		In:      os.Stdin,
		Out:     os.Stdout,
	}
}

// Run starts the explorer loop: show the world, then prompt → input →
// dispatch → output.
func (c *CLI) Run() {
	c.printLines(c.Session.Step("world"))
	c.printLines(c.Session.Step("region"))

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		// Meta-commands start with '/'.
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return // /quit
			}
			continue
		}

		// "again" / "g" repeats the last command, except mid-conversation
		// where numbers are answers.
		lower := strings.ToLower(input)
		if !c.Session.InConversation() && (lower == "again" || lower == "g") {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else if !c.Session.InConversation() {
			c.lastCmd = input
		}

		c.printLines(c.Session.Step(input))
	}
}

// handleMeta dispatches meta-commands. Returns true if the explorer
// should exit.
func (c *CLI) handleMeta(input string) bool {
	switch strings.Fields(input)[0] {
	case "/quit", "/exit":
		c.printSystem("So long.")
		return true

	case "/help":
		c.cmdHelp()

	case "/pack":
		c.printSystem(fmt.Sprintf("%s v%s by %s", c.Pack.Name, c.Pack.Version, c.Pack.Author))
		c.printSystem(fmt.Sprintf("%d NPC templates, %d quest archetypes, %d encounters, %d snippets, %d price modifiers",
			len(c.Pack.NPCTemplates), len(c.Pack.QuestArchetypes),
			len(c.Pack.Encounters), len(c.Pack.Snippets), len(c.Pack.PriceModifiers)))

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", input))
	}

	return false
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /pack         — Show loaded content pack info",
		"  /quit         — Exit",
		"  /help         — Show this help",
		"",
		"Explorer commands:",
		"  world                 — List regions",
		"  region [n]            — Switch region / list its locations",
		"  location [n] (loc)    — Switch location / describe it",
		"  npc <id>              — Inspect a character",
		"  talk <id>             — Start a conversation (numbers pick replies, 'leave' exits)",
		"  quest <id>            — Inspect a quest",
		"  journal               — Your quest log",
		"  encounters [period]   — What roams near here",
		"  price <base> [tags]   — Quote a price at this location",
		"  stats                 — Your gold, goods, and standing",
		"  time [hour]           — Show or set the hour",
		"  seed                  — Show the world seed",
		"  again (g)             — Repeat your last command",
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) printLines(lines []string) {
	for _, line := range lines {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
