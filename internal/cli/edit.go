package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/boardkit/boardkit/pkg/board"
	"github.com/boardkit/boardkit/pkg/core/geom"
	"github.com/boardkit/boardkit/pkg/core/guides"
	"github.com/boardkit/boardkit/pkg/core/scene"
	"github.com/boardkit/boardkit/pkg/core/selection"
	"github.com/boardkit/boardkit/pkg/pipeline"
	"github.com/boardkit/boardkit/pkg/render/text"
)

// Editor canvas styles, keyed off the symbolic colors the text renderer emits.
var (
	editFrameStyle    = lipgloss.NewStyle().Foreground(colorCyan)
	editObjectStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	editGuideStyle    = lipgloss.NewStyle().Foreground(colorRed)
	editDistanceStyle = lipgloss.NewStyle().Foreground(colorYellow)
	editLabelStyle    = lipgloss.NewStyle().Foreground(colorGray)
)

// =============================================================================
// Edit Command
// =============================================================================

// editCommand creates the interactive board editor command.
func (c *CLI) editCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <board.json>",
		Short: "Edit a board interactively in the terminal",
		Long: `Open a board file in a full-screen terminal editor.

Move objects with the arrow keys (snapping against siblings, the canvas,
and user guides), step into containers, drag objects between containers,
and save back to the same file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEdit(args[0])
		},
	}
	return cmd
}

func (c *CLI) runEdit(path string) error {
	b, err := board.ReadFile(path)
	if err != nil {
		printError("Failed to read board: %v", err)
		return err
	}
	sc, err := board.ToScene(b)
	if err != nil {
		printError("Invalid board: %v", err)
		return err
	}

	canvas := b.Canvas
	if canvas.Width < 1 {
		canvas.Width = c.Config.Canvas.Width
	}
	if canvas.Height < 1 {
		canvas.Height = c.Config.Canvas.Height
	}

	m := newEditModel(path, b.Name, canvas, b.Guides, sc, c.Config.Snap)
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("editor: %w", err)
	}

	if em, ok := final.(editModel); ok && em.unsaved {
		printWarning("Exited with unsaved changes")
		printNextStep("Render the saved file", "boardkit render "+path)
	}
	return nil
}

// =============================================================================
// Edit Model
// =============================================================================

// editModel is the bubbletea model for the board editor.
type editModel struct {
	path       string
	name       string
	canvas     board.Canvas
	userGuides []guides.UserGuide

	sc   *scene.Scene
	sel  *selection.Context
	snap *guides.Engine

	cursor   int
	lastSnap *guides.SnapResult
	status   string
	unsaved  bool
}

func newEditModel(path, name string, canvas board.Canvas, userGuides []guides.UserGuide, sc *scene.Scene, snapCfg guides.Config) editModel {
	m := editModel{
		path:       path,
		name:       name,
		canvas:     canvas,
		userGuides: userGuides,
		sc:         sc,
		sel:        selection.New(),
		snap:       guides.NewEngine(snapCfg),
	}
	m.syncSelection()
	return m
}

func (m editModel) Init() tea.Cmd {
	return nil
}

// level returns the objects at the current navigation depth.
func (m editModel) level() []*scene.Object {
	return m.sel.ObjectsAtCurrentLevel(m.sc.Roots())
}

// selected returns the object under the cursor, or nil on an empty level.
func (m editModel) selected() *scene.Object {
	objs := m.level()
	if len(objs) == 0 || m.cursor < 0 || m.cursor >= len(objs) {
		return nil
	}
	return objs[m.cursor]
}

// syncSelection clamps the cursor to the current level and mirrors it into
// the selection set.
func (m *editModel) syncSelection() {
	objs := m.level()
	if len(objs) == 0 {
		m.cursor = 0
		m.sel.ClearSelection()
		return
	}
	if m.cursor < 0 {
		m.cursor = len(objs) - 1
	}
	if m.cursor >= len(objs) {
		m.cursor = 0
	}
	m.sel.ClearSelection()
	m.sel.Select(objs[m.cursor].ID)
}

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab", "j":
		m.cursor++
		m.syncSelection()
		m.lastSnap = nil
		m.status = ""

	case "shift+tab", "k":
		m.cursor--
		m.syncSelection()
		m.lastSnap = nil
		m.status = ""

	case "enter":
		obj := m.selected()
		if obj == nil || !obj.CanContainChildren() {
			m.status = "not a container"
			return m, nil
		}
		m.sel.EnterContainer(obj, m.sc.Roots())
		m.cursor = 0
		m.syncSelection()
		m.lastSnap = nil
		m.status = ""

	case "esc":
		if m.sel.AtRoot() {
			return m, nil
		}
		exited := m.sel.Current()
		m.sel.ExitContainer()
		m.cursor = indexIn(m.level(), exited)
		m.syncSelection()
		m.lastSnap = nil
		m.status = ""

	case "up":
		m.moveSelected(0, -1)
	case "down":
		m.moveSelected(0, 1)
	case "left":
		m.moveSelected(-1, 0)
	case "right":
		m.moveSelected(1, 0)

	case "d":
		m.dropSelected()

	case "g":
		cfg := m.snap.Config()
		cfg.Enabled = !cfg.Enabled
		m.snap.SetConfig(cfg)
		if cfg.Enabled {
			m.status = "snapping on"
		} else {
			m.status = "snapping off"
		}
		m.lastSnap = nil

	case "r":
		pipeline.LayoutScene(m.sc)
		m.unsaved = true
		m.lastSnap = nil
		m.status = "layout recomputed"

	case "s":
		b := board.FromScene(m.sc, m.name, m.canvas, m.userGuides)
		if err := board.WriteFile(b, m.path); err != nil {
			m.status = "save failed: " + err.Error()
		} else {
			m.unsaved = false
			m.status = "saved " + m.path
		}
	}
	return m, nil
}

// moveSelected nudges the current object one cell, then snaps the resulting
// position against siblings, the enclosing container, and the canvas.
func (m *editModel) moveSelected(dx, dy int) {
	obj := m.selected()
	if obj == nil {
		return
	}
	if obj.Locked {
		m.status = "object is locked"
		return
	}

	moving := obj.Rect.Translate(dx, dy)

	var others []geom.Rect
	for _, sib := range m.level() {
		if sib.ID == obj.ID {
			continue
		}
		others = append(others, sib.Bounds())
	}

	var container *geom.Rect
	if cur := m.sel.Current(); cur != nil {
		r := cur.Bounds()
		container = &r
	}

	res := m.snap.Snap(moving, others, m.canvas.Width, m.canvas.Height, container, m.userGuides)
	obj.Rect.X = res.X
	obj.Rect.Y = res.Y
	m.sc.MarkDirty(obj.ID)
	m.lastSnap = &res
	m.unsaved = true
	m.status = ""
}

// dropSelected reparents the current object into whatever container sits
// under its center, or back to the root level when nothing accepts it.
func (m *editModel) dropSelected() {
	obj := m.selected()
	if obj == nil {
		return
	}
	cx, cy := obj.Bounds().CenterX(), obj.Bounds().CenterY()

	target := scene.FindDropTarget(m.sc.Roots(), cx, cy, obj)
	index := -1
	if target != nil {
		index = scene.InsertionIndex(target, cx, cy, obj)
	}
	if err := m.sc.Reparent(obj, target, index); err != nil {
		m.status = "drop failed: " + err.Error()
		return
	}
	pipeline.LayoutDirty(m.sc)

	if target != nil {
		m.sel.EnterContainer(target, m.sc.Roots())
		m.status = "dropped into " + displayName(target)
	} else {
		m.sel.ExitToRoot()
		m.status = "moved to root"
	}
	m.cursor = indexIn(m.level(), obj)
	m.syncSelection()
	m.lastSnap = nil
	m.unsaved = true
}

// =============================================================================
// View
// =============================================================================

func (m editModel) View() string {
	var b strings.Builder

	title := m.name
	if title == "" {
		title = m.path
	}
	if m.unsaved {
		title += " *"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(m.breadcrumbLine()))
	b.WriteString("\n\n")

	opts := []text.Option{}
	if obj := m.selected(); obj != nil {
		opts = append(opts, text.WithHighlight(obj.ID))
		if m.snap.Config().ShowPositionLabel && m.lastSnap != nil {
			opts = append(opts, text.WithPositionLabel(obj.Rect.X, obj.Rect.Y))
		}
	}
	if m.lastSnap != nil {
		opts = append(opts, text.WithSnapResult(m.lastSnap))
	}
	buf := text.Render(m.sc.Roots(), m.canvas.Width, m.canvas.Height, opts...)
	b.WriteString(styleBuffer(buf))
	b.WriteString("\n\n")

	help := "tab next · enter descend · esc ascend · arrows move · d drop · g snap · r layout · s save · q quit"
	b.WriteString(StyleDim.Render(help))
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(StyleHighlight.Render(m.status))
	}
	return b.String()
}

// breadcrumbLine renders the navigation path, root first.
func (m editModel) breadcrumbLine() string {
	parts := []string{"root"}
	for _, obj := range m.sel.Breadcrumb() {
		parts = append(parts, displayName(obj))
	}
	return strings.Join(parts, " ▸ ")
}

// styleBuffer converts the renderer's symbolic colors into terminal styles,
// grouping runs of equal color to keep the escape sequences sparse.
func styleBuffer(buf *text.Buffer) string {
	var b strings.Builder
	for y := 0; y < buf.Height(); y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		var run strings.Builder
		runColor := buf.Cell(0, y).Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			b.WriteString(styleFor(runColor).Render(run.String()))
			run.Reset()
		}
		for x := 0; x < buf.Width(); x++ {
			cell := buf.Cell(x, y)
			if cell.Color != runColor {
				flush()
				runColor = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		flush()
	}
	return b.String()
}

func styleFor(c text.Color) lipgloss.Style {
	switch c {
	case text.ColorFrame:
		return editFrameStyle
	case text.ColorObject:
		return editObjectStyle
	case text.ColorGuide:
		return editGuideStyle
	case text.ColorDistance:
		return editDistanceStyle
	case text.ColorLabel:
		return editLabelStyle
	default:
		return lipgloss.NewStyle()
	}
}

// =============================================================================
// Helpers
// =============================================================================

// indexIn returns the position of obj in objs, or 0 when absent.
func indexIn(objs []*scene.Object, obj *scene.Object) int {
	for i, o := range objs {
		if o == obj {
			return i
		}
	}
	return 0
}

func displayName(o *scene.Object) string {
	if o.Name != "" {
		return o.Name
	}
	if len(o.ID) > 8 {
		return o.ID[:8]
	}
	return o.ID
}
