// Package cli implements a command-line UI for the game.
package cli

import (
	"bufio"
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"github.com/janpfeifer/puoriborGo/internal/generics"
	. "github.com/janpfeifer/puoriborGo/internal/state"
	"github.com/pkg/errors"
	"golang.org/x/term"
	"io"
	"os"
	"regexp"
	"strings"
)

var ansiFilter = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// displayWidth of s removes its color/control sequences and returns the number of runes left.
func displayWidth(s string) int {
	return len([]rune(ansiFilter.ReplaceAllString(s, "")))
}

// terminalWidth returns 0 if the output is not a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func (ui *UI) printCentered(block string) {
	lines := strings.Split(block, "\n")
	blockWidth := 0
	for _, line := range lines {
		blockWidth = max(blockWidth, displayWidth(line))
	}
	indent := max((terminalWidth(ui.out)-blockWidth)/2, 0)
	for _, line := range lines {
		if len(line) == 0 {
			_, _ = fmt.Fprintln(ui.out)
			continue
		}
		_, _ = fmt.Fprintf(ui.out, "%s%s\n", strings.Repeat(" ", indent), line)
	}
}

// UI reads commands from an input and prints the board to an output, usually the terminal.
type UI struct {
	color, clearScreen bool
	reader             *bufio.Reader
	out                io.Writer

	pawnStyles [NumPlayers]lipgloss.Style
	wallStyle  lipgloss.Style
}

// Commands that are not actions.
const (
	commandHelp      = "-1"
	commandShowMoves = "4"
)

var (
	quitParser = regexp.MustCompile(`^\s*(q|quit|exit)\s*$`)

	// ErrTooManyErrors is returned by ReadCommand if the user failed 3 times to enter a valid action.
	ErrTooManyErrors = errors.New("failed to read command 3 times")

	// ErrQuit is returned by ReadCommand if the user asked to quit.
	ErrQuit = errors.New("user quit")
)

// New creates a UI reading from stdin and printing to stdout.
func New(color bool, clearScreen bool) *UI {
	return NewWithIO(color, clearScreen, os.Stdin, os.Stdout)
}

// NewWithIO creates a UI reading commands from in and printing to out.
func NewWithIO(color bool, clearScreen bool, in io.Reader, out io.Writer) *UI {
	ui := &UI{
		color:       color,
		clearScreen: clearScreen,
		reader:      bufio.NewReader(in),
		out:         out,
	}
	ui.pawnStyles[PlayerFirst] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	ui.pawnStyles[PlayerSecond] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	ui.wallStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	return ui
}

// Print the board. If showMoves is true, the cells the player can move its pawn to are
// marked with an "X".
func (ui *UI) Print(s State, player PlayerNum, showMoves bool) {
	if ui.clearScreen {
		_, _ = fmt.Fprint(ui.out, "\033[H\033[2J")
	}
	opts := RenderOptions{}
	if ui.color {
		opts.PawnStyle = func(player PlayerNum, text string) string { return ui.pawnStyles[player].Render(text) }
		opts.WallStyle = func(text string) string { return ui.wallStyle.Render(text) }
	}
	if showMoves {
		opts.Overlay = NewOverlay("X", s.LegalMoves(player))
	}
	ui.printCentered(RenderWith(s, opts))
}

// PlayerName returns the name of the player, colored if color is enabled.
func (ui *UI) PlayerName(player PlayerNum) string {
	name := fmt.Sprintf("Player %d", player)
	if ui.color && player < NumPlayers {
		return ui.pawnStyles[player].Render(name)
	}
	return name
}

// PrintWinner prints a banner with the winner, or that the match was not finished.
func (ui *UI) PrintWinner(s State) {
	_, _ = fmt.Fprintln(ui.out)
	winner := s.Winner()
	style := lipgloss.NewStyle().Padding(1, 2)
	if ui.color {
		style = style.Background(lipgloss.Color("13")).Foreground(lipgloss.Color("0"))
	}
	if winner == PlayerInvalid {
		ui.printCentered(style.Render("*** No winner: match not finished ***"))
	} else {
		ui.printCentered(style.Render(fmt.Sprintf("*** %s WINS!! Congratulations! ***",
			strings.ToUpper(fmt.Sprintf("Player %d", winner)))))
	}
	_, _ = fmt.Fprintln(ui.out)
}

// PrintHelp describes the commands accepted by ReadCommand.
func (ui *UI) PrintHelp() {
	_, _ = fmt.Fprint(ui.out, `
    Enter an action as "<kind> <x> <y>", where kind is:
      0: move the pawn to (x, y), e.g. "0 4 1"
      1: place a horizontal wall, on top of the cells (x, y) and (x+1, y)
      2: place a vertical wall, on the left of the cells (x, y) and (x, y+1)
      3: rotate the 4x4 section whose top-left cell is (x, y), costs 2 walls
    Other commands:
     -1: this help
      4: show the cells the pawn can move to
      q: quit
    Coordinates start at (0, 0) on the top-left corner.

`)
}

// ReadCommand reads an action for player, and checks that it is valid.
// The help and show-moves commands are handled here, and don't count as errors.
//
// It returns the action and the state after the action.
func (ui *UI) ReadCommand(s State, player PlayerNum) (action Action, next State, err error) {
	for numErrs := 0; numErrs < 3; {
		_, _ = fmt.Fprintf(ui.out, "    %s action > ", ui.PlayerName(player))
		var text string
		text, err = ui.reader.ReadString('\n')
		if err != nil && (err != io.EOF || text == "") {
			if err == io.EOF {
				err = ErrQuit
			}
			return
		}
		text = strings.TrimSpace(text)
		switch {
		case text == "":
			continue
		case text == commandHelp:
			ui.PrintHelp()
			continue
		case text == commandShowMoves:
			ui.Print(s, player, true)
			targets := generics.SliceMap(s.LegalMoves(player), func(a Action) Pos { return a.Pos })
			_, _ = fmt.Fprintf(ui.out, "    Pawn moves: %s\n", strings.Join(PosStrings(targets), ", "))
			continue
		case quitParser.MatchString(strings.ToLower(text)):
			err = ErrQuit
			return
		}

		action, err = ParseAction(text)
		if err != nil {
			_, _ = fmt.Fprintf(ui.out, "    * Sorry, I didn't understand %q: %v (enter -1 for help)\n", text, err)
			numErrs++
			continue
		}
		next, err = s.Step(player, action)
		if err != nil {
			_, _ = fmt.Fprintf(ui.out, "    * Invalid action %s: %v\n", action, err)
			numErrs++
			continue
		}
		return action, next, nil
	}
	err = ErrTooManyErrors
	return
}

// RunNextMove prints the board and reads actions from the user until a valid one is given.
// It only returns an error if the user quit or the input failed.
func (ui *UI) RunNextMove(s State, player PlayerNum) (State, error) {
	for {
		ui.Print(s, player, false)
		_, _ = fmt.Fprintln(ui.out)
		_, next, err := ui.ReadCommand(s, player)
		if errors.Is(err, ErrTooManyErrors) {
			ui.PrintHelp()
			continue
		}
		if err != nil {
			return s, err
		}
		return next, nil
	}
}
