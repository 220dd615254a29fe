package devtools

import (
	"fmt"
	"html"
	"io"
	"os"
	"strings"
	"time"

	"github.com/zyedidia/generic/mapset"

	"mazeroll/pkg/engine/world"
	"mazeroll/pkg/game/renderer"
	"mazeroll/pkg/game/state"
)

// SaveSnapshotHTML saves the whole maze as an HTML file and returns its name
func SaveSnapshotHTML(g *state.Game) (string, error) {
	if g.Grid == nil {
		return "", ErrNoLevel
	}

	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("snapshot-%s.html", timestamp)

	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.WriteString(f, SnapshotHTML(g)); err != nil {
		return "", err
	}
	return filename, nil
}

// SnapshotHTML renders the maze, HUD and message log as a standalone page
func SnapshotHTML(g *state.Game) string {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Maze Roller - Snapshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .status {
            color: #888;
            margin-bottom: 20px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.0;
            font-size: 16px;
        }
        .player { color: #00ff00; font-weight: bold; }
        .wall { color: #5a6c89; }
        .floor { color: #333; }
        .start { color: #6366f1; font-weight: bold; }
        .goal { color: #fbbf24; font-weight: bold; }
        .messages {
            margin-top: 20px;
            border-top: 1px solid #333;
            padding-top: 10px;
        }
        .message { color: #ccc; margin: 5px 0; }
    </style>
</head>
<body>
`)

	b.WriteString(fmt.Sprintf(`    <div class="header">%s</div>`+"\n", html.EscapeString(renderer.LevelText(g))))
	b.WriteString(fmt.Sprintf(`    <div class="status">%s &middot; %s</div>`+"\n",
		html.EscapeString(renderer.StripMarkup(renderer.StatusText(g))),
		html.EscapeString(renderer.ModeText(g))))

	b.WriteString(`    <div class="map-container">` + "\n")
	if g.Grid != nil {
		player := g.PlayerCell()
		none := mapset.New[world.Coord]()
		for row := 0; row < g.Grid.Rows(); row++ {
			b.WriteString(`        <div class="map-row">`)
			for col := 0; col < g.Grid.Cols(); col++ {
				icon, class := cellHTMLInfo(cellSymbol(g, world.Coord{Row: row, Col: col}, player, none))
				b.WriteString(fmt.Sprintf(`<span class="%s">%s</span>`, class, icon))
			}
			b.WriteString("</div>\n")
		}
	}
	b.WriteString(`    </div>` + "\n")

	if len(g.Messages) > 0 {
		b.WriteString(`    <div class="messages">` + "\n")
		for _, msg := range g.Messages {
			b.WriteString(fmt.Sprintf(`        <div class="message">%s</div>`+"\n", html.EscapeString(renderer.StripMarkup(msg))))
		}
		b.WriteString(`    </div>` + "\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// cellHTMLInfo maps a dump symbol to the icon and CSS class used in the page.
func cellHTMLInfo(symbol rune) (icon, class string) {
	switch symbol {
	case '@':
		return "●", "player"
	case 'S':
		return "◎", "start"
	case 'G':
		return "★", "goal"
	case '#':
		return "█", "wall"
	default:
		return "·", "floor"
	}
}
