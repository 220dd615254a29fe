// Package tui plays the game in a terminal. There is no frame clock in a
// terminal, so each key press nudges the simulation forward a few fixed ticks
// and the ball coasts to a stop between presses.
package tui

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"os/exec"
	"strings"

	"github.com/gookit/color"
	"github.com/zyedidia/generic/mapset"

	"mazeroll/pkg/engine/input"
	"mazeroll/pkg/engine/terminal"
	"mazeroll/pkg/engine/world"
	"mazeroll/pkg/game/gameplay"
	"mazeroll/pkg/game/menu"
	"mazeroll/pkg/game/renderer"
	"mazeroll/pkg/game/state"
)

// Icons are two columns wide so maze cells come out roughly square.
const (
	IconWall   = "██"
	IconFloor  = "  "
	IconStart  = "◎ "
	IconGoal   = "★ "
	IconRoute  = "· "
	IconPlayer = "● "
	IconVoid   = "  "
)

// headingIcons are indexed by screen octant, clockwise from up.
var headingIcons = [8]string{"↑ ", "↗ ", "→ ", "↘ ", "↓ ", "↙ ", "← ", "↖ "}

// Viewport margins and minimum sizes
const (
	ViewportMinRows = 7
	ViewportMinCols = 9
	// Lines needed outside the maze: header (2), status and speed (3),
	// help (2), messages pane (header + 5 messages + footer = 7).
	ViewportTopMargin = 15
)

// Simulation pacing for key presses
const (
	tickDt      = 1.0 / 60
	nudgeTicks  = 9  // ticks a movement or turn key counts as held per press
	settleTicks = 90 // upper bound on coasting ticks after a press
)

type keySource interface {
	ReadKey() (string, error)
}

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorWall        color.Style
	colorFloor       color.Style
	colorStart       color.Style
	colorGoal        color.Style
	colorPlayer      color.Style
	colorPath        color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorSubtle      color.Style
	colorLevel       color.Style
	colorWin         color.Style

	bindings input.Bindings
	keys     keySource
	out      io.Writer
	clear    func()
	measure  terminal.Measurer // nil measures stdout

	showRoute bool
	menu      *menu.Menu // open pause menu, nil while playing

	// Cells already seen in first person, reset when the grid changes
	seen     mapset.Set[world.Coord]
	seenGrid *world.Grid
}

// New creates a new TUI renderer reading keys from stdin
func New(bindings input.Bindings) *TUIRenderer {
	return &TUIRenderer{
		bindings: bindings,
		keys:     input.NewKeyReader(),
		out:      os.Stdout,
		clear:    clearScreen,
		measure:  terminal.Stdout,
	}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorWall = color.Style{color.FgBlue}
	t.colorFloor = color.Style{color.FgGray}
	t.colorStart = color.Style{color.FgCyan}
	t.colorGoal = color.Style{color.FgYellow, color.OpBold}
	t.colorPlayer = color.Style{color.FgMagenta, color.OpBold}
	t.colorPath = color.Style{color.FgGreen}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorLevel = color.Style{color.FgCyan, color.OpBold}
	t.colorWin = color.Style{color.FgGreen, color.OpBold}
}

// clearScreen clears the terminal screen
func clearScreen() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleFloor:
		return t.colorFloor.Sprint(text)
	case renderer.StyleStart:
		return t.colorStart.Sprint(text)
	case renderer.StyleGoal:
		return t.colorGoal.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StylePath:
		return t.colorPath.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleLevel:
		return t.colorLevel.Sprint(text)
	case renderer.StyleWin:
		return t.colorWin.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	var sb strings.Builder
	for _, seg := range renderer.Segments(renderer.ApplyMarkup(msg, args...)) {
		sb.WriteString(t.StyleText(seg.Text, seg.Style))
	}
	return sb.String()
}

// Run plays g until the player quits or stdin closes.
func (t *TUIRenderer) Run(g *state.Game) error {
	for !g.Quit {
		t.clear()
		t.RenderFrame(g)

		key, err := t.keys.ReadKey()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		t.HandleKey(g, key)
	}
	return nil
}

// HandleKey applies one key press. Held actions are simulated as a short
// press; everything else goes to the gameplay layer as is.
func (t *TUIRenderer) HandleKey(g *state.Game, key string) {
	intent := t.bindings.MapToIntent(input.NewDebouncedInput(input.RawInput{
		Device: input.DeviceTerminal,
		Code:   key,
	}))

	if t.menu != nil {
		t.menu.HandleIntent(intent)
		if t.menu.Closed() {
			t.menu = nil
		}
		g.Events.Drain()
		return
	}

	switch {
	case intent.Action == input.ActionNone:
		return
	case intent.Action == input.ActionOpenMenu:
		t.menu = menu.NewPauseMenu(g)
		return
	case intent.Action.IsHeld():
		t.nudge(g, intent.Action)
	default:
		if intent.Action == input.ActionHint {
			t.showRoute = !t.showRoute
		}
		gameplay.ProcessIntent(g, intent)
	}
	g.Events.Drain()
}

// nudge holds the action for a few ticks, then lets the ball coast.
func (t *TUIRenderer) nudge(g *state.Game, a input.Action) {
	held := input.NewHeld()
	held.Press(a)
	controls := gameplay.Controls{Move: held.Move(), Turn: held.Turn()}
	for i := 0; i < nudgeTicks; i++ {
		gameplay.Tick(g, controls, tickDt)
	}
	for i := 0; i < settleTicks && g.LastStep.Moving && !g.HasWon; i++ {
		gameplay.Tick(g, gameplay.Controls{}, tickDt)
	}
}

// GetViewportSize returns the viewport dimensions in cells based on terminal size
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	return terminal.Measure(t.measure).Viewport(len([]rune(IconWall)), ViewportTopMargin, ViewportMinRows, ViewportMinCols)
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	fmt.Fprintf(t.out, "%s  %s\n\n", t.colorLevel.Sprint(renderer.LevelText(g)), t.colorSubtle.Sprint(renderer.ModeText(g)))

	switch {
	case t.menu != nil:
		t.printMenu(t.menu)
	case g.Grid != nil:
		t.printMap(g)
	}

	t.printStatusBar(g)
	t.printHelp()
	t.printMessagesPane(g)
}

// printString prints a formatted string
func (t *TUIRenderer) printString(msg string, a ...any) {
	fmt.Fprint(t.out, t.FormatText(msg, a...))
}

// viewportOrigin returns the top-left cell of a window of the given size
// centred on the player and kept inside the grid.
func viewportOrigin(center, size, total int) int {
	if total <= size {
		return 0
	}
	start := center - size/2
	if start < 0 {
		return 0
	}
	if start+size > total {
		return total - size
	}
	return start
}

// printMap renders the part of the maze around the ball
func (t *TUIRenderer) printMap(g *state.Game) {
	viewRows, viewCols := t.GetViewportSize()
	player := g.PlayerCell()
	rows, cols := g.Grid.Rows(), g.Grid.Cols()
	startRow := viewportOrigin(player.Row, viewRows, rows)
	startCol := viewportOrigin(player.Col, viewCols, cols)

	var route map[world.Coord]bool
	if t.showRoute && !g.HasWon {
		route = make(map[world.Coord]bool)
		for _, c := range world.ShortestPath(g.Grid, player, g.Grid.Goal()) {
			route[c] = true
		}
	}

	var visible mapset.Set[world.Coord]
	if g.Camera.IsFirstPerson() {
		visible = t.updateSight(g, player)
	}

	for row := startRow; row < startRow+viewRows && row < rows; row++ {
		var sb strings.Builder
		for col := startCol; col < startCol+viewCols && col < cols; col++ {
			c := world.Coord{Row: row, Col: col}
			switch {
			case visible.Size() == 0 || visible.Has(c):
				sb.WriteString(t.renderCell(g, c, player, route))
			case t.seen.Has(c):
				sb.WriteString(t.renderRemembered(g, c))
			default:
				sb.WriteString(IconVoid)
			}
		}
		fmt.Fprintln(t.out, sb.String())
	}
	fmt.Fprintln(t.out)
}

// updateSight returns the cells visible from the ball and adds them to the
// remembered set.
func (t *TUIRenderer) updateSight(g *state.Game, player world.Coord) mapset.Set[world.Coord] {
	if t.seenGrid != g.Grid {
		t.seen = mapset.New[world.Coord]()
		t.seenGrid = g.Grid
	}
	visible := world.Visible(g.Grid, player, world.SightRadius)
	visible.Each(func(c world.Coord) {
		t.seen.Put(c)
	})
	return visible
}

// renderRemembered draws a cell seen earlier but out of sight now
func (t *TUIRenderer) renderRemembered(g *state.Game, c world.Coord) string {
	switch {
	case c == g.Grid.Goal():
		return t.colorGoal.Sprint(IconGoal)
	case !g.Grid.IsOpenAt(c):
		return t.colorSubtle.Sprint(IconWall)
	default:
		return IconFloor
	}
}

// renderCell returns the string representation of a cell
func (t *TUIRenderer) renderCell(g *state.Game, c, player world.Coord, route map[world.Coord]bool) string {
	if !g.Grid.IsValidPosition(c.Row, c.Col) {
		return IconVoid
	}
	switch {
	case c == player:
		if g.Camera.IsFirstPerson() {
			return t.colorPlayer.Sprint(headingIcon(g.Camera.Yaw))
		}
		return t.colorPlayer.Sprint(IconPlayer)
	case c == g.Grid.Goal():
		return t.colorGoal.Sprint(IconGoal)
	case c == g.Grid.Start():
		return t.colorStart.Sprint(IconStart)
	case !g.Grid.IsOpenAt(c):
		return t.colorWall.Sprint(IconWall)
	case route[c]:
		return t.colorPath.Sprint(IconRoute)
	default:
		return t.colorFloor.Sprint(IconFloor)
	}
}

// headingIcon returns the arrow for a view yaw as seen on the map, where up
// is north (-Z) and right is east (+X).
func headingIcon(yaw float64) string {
	dx, dz := math.Sin(yaw), math.Cos(yaw)
	angle := math.Atan2(dx, -dz) // clockwise from up
	idx := int(math.Round(angle/(math.Pi/4))) % 8
	if idx < 0 {
		idx += 8
	}
	return headingIcons[idx]
}

// speedBar draws the normalized speed as a fixed-width gauge.
func speedBar(speed01 float64, width int) string {
	filled := int(math.Round(speed01 * float64(width)))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}

// printMenu renders the open menu in place of the map
func (t *TUIRenderer) printMenu(m *menu.Menu) {
	fmt.Fprintln(t.out, t.colorLevel.Sprint(m.Title()))
	fmt.Fprintln(t.out)
	for i, item := range m.Items() {
		switch {
		case i == m.Selected():
			fmt.Fprintln(t.out, t.colorActionShort.Sprint("> "+item.GetLabel()))
		case !item.IsSelectable():
			fmt.Fprintln(t.out, t.colorSubtle.Sprint("  "+item.GetLabel()))
		default:
			fmt.Fprintln(t.out, "  "+item.GetLabel())
		}
	}
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(m.Instructions()))
	fmt.Fprintln(t.out)
}

// printStatusBar renders the objective line and the ball's speed
func (t *TUIRenderer) printStatusBar(g *state.Game) {
	t.printString("%s\n", renderer.StatusText(g))
	fmt.Fprintf(t.out, "%s %s  %s %s\n", t.colorSubtle.Sprint("Speed"), speedBar(g.LastStep.Speed01, 20),
		t.colorSubtle.Sprint("Goal"), t.colorLevel.Sprintf("%.1f", g.GoalDistance()))
	fmt.Fprintln(t.out)
}

// printHelp prints the key bindings on one wrapped line
func (t *TUIRenderer) printHelp() {
	lines := renderer.HelpLines(t.bindings)
	formatted := make([]string, len(lines))
	for i, l := range lines {
		formatted[i] = t.FormatText("%s", l)
	}
	fmt.Fprintln(t.out, strings.Join(formatted, t.colorSubtle.Sprint("  ")))
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(g *state.Game) {
	width := terminal.Measure(t.measure).Cols

	label := " Messages "
	labelLen := len(label)
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - labelLen
	if rightLen < 1 {
		rightLen = 1
	}

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", sideLen)+label+strings.Repeat("─", rightLen)))

	if len(g.Messages) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  (no messages)"))
	} else {
		for _, msg := range g.Messages {
			fmt.Fprintf(t.out, "  %s\n", t.FormatText("%s", msg))
		}
	}

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}
