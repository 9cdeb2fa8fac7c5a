package terminal

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/valerio/go-ohms/ohms/backend"
	"github.com/valerio/go-ohms/ohms/backend/terminal/render"
	"github.com/valerio/go-ohms/ohms/band"
	"github.com/valerio/go-ohms/ohms/component"
	"github.com/valerio/go-ohms/ohms/input"
	"github.com/valerio/go-ohms/ohms/input/action"
	"github.com/valerio/go-ohms/ohms/input/event"
	"github.com/valerio/go-ohms/ohms/snapshot"
)

const (
	// component drawing
	bodyX      = 6
	bodyY      = 3
	bodyHeight = 5
	bandWidth  = 3
	bandGap    = 2
	bandInset  = 3
	leadLength = 5

	dividerX      = 48
	minTermWidth  = 80
	minTermHeight = 24
	menuWidth     = 16

	// pointer gestures
	swipeThreshold = 4 // cells of horizontal travel
	holdDuration   = 500 * time.Millisecond
)

// Backend implements the Backend interface using tcell for terminal rendering
type Backend struct {
	screen    tcell.Screen
	running   bool
	logBuffer *render.LogBuffer
	logLevel  slog.Level
	config    backend.BackendConfig

	queueMu    sync.Mutex
	eventQueue []event.Input // Collect events to return

	view     component.View
	focus    int
	hitboxes []hitbox
	menu     *menu

	snapshotDir string // F12 snapshots, working directory when empty

	lastButtons tcell.ButtonMask
	drag        drag
	now         func() time.Time
}

type hitbox struct {
	slot       int
	x, y, w, h int
}

// drag tracks a primary button press until release
type drag struct {
	active bool
	held   bool
	slot   int // band under the press, -1 for the background
	x, y   int
	start  time.Time
}

// menu is the long-press popup listing the values a slot can take
type menu struct {
	slot    int
	options []string
	cursor  int
	top     int
	x, y    int
	rows    int
}

// New creates a new terminal backend
func New() *Backend {
	return &Backend{
		logLevel: slog.LevelInfo,
		now:      time.Now,
	}
}

// SetSnapshotDir sets where F12 snapshots are written
func (t *Backend) SetSnapshotDir(dir string) {
	t.snapshotDir = dir
}

// NewWithScreen creates a terminal backend drawing to an existing screen
func NewWithScreen(screen tcell.Screen) *Backend {
	t := New()
	t.screen = screen
	return t
}

// Init initializes the terminal backend
func (t *Backend) Init(config backend.BackendConfig) error {
	t.config = config
	t.eventQueue = make([]event.Input, 0)

	if t.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to initialize terminal: %w", err)
		}
		t.screen = screen
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	t.screen.EnableMouse()
	t.running = true

	// Create log buffer and route logging to the side panel
	t.logBuffer = render.NewLogBuffer(100)
	handler := render.NewLogBufferHandler(t.logBuffer, slog.LevelDebug)
	slog.SetDefault(slog.New(handler))

	if config.InputManager != nil {
		config.InputManager.On(action.LogLevelIncrease, event.Press, func(event.Input) { t.changeLogLevel(1) })
		config.InputManager.On(action.LogLevelDecrease, event.Press, func(event.Input) { t.changeLogLevel(-1) })
	}

	slog.Info("Terminal backend initialized", "title", config.Title)

	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()

	// Set up signal handling for graceful shutdown
	go t.handleSignals()

	return nil
}

// Update processes pending terminal events and draws the view
func (t *Backend) Update(view component.View) ([]event.Input, error) {
	if view.Kind != t.view.Kind || len(view.Slots) != len(t.view.Slots) {
		t.closeMenu()
		t.focus = 0
	}
	t.view = view
	now := t.now()

	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			t.processKeyEvent(ev)
		case *tcell.EventMouse:
			t.processMouseEvent(ev, now)
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}

	// A press that stays on a band long enough opens its menu
	if t.drag.active && !t.drag.held && t.drag.slot >= 0 && now.Sub(t.drag.start) >= holdDuration {
		t.drag.held = true
		t.openMenu(t.drag.slot)
	}

	events := t.drainQueue()
	for _, evt := range events {
		slog.Debug("UI event", "action", action.GetInfo(evt.Action).Description, "type", evt.Type, "slot", evt.Slot)
	}

	if !t.running {
		return events, nil
	}

	t.render(view)
	t.screen.Show()

	return events, nil
}

// Cleanup cleans up terminal resources
func (t *Backend) Cleanup() error {
	if t.screen != nil {
		slog.Info("Cleaning up terminal backend")
		t.screen.Fini()
	}
	return nil
}

func (t *Backend) queue(evt event.Input) {
	t.queueMu.Lock()
	defer t.queueMu.Unlock()
	t.eventQueue = append(t.eventQueue, evt)
}

func (t *Backend) drainQueue() []event.Input {
	t.queueMu.Lock()
	defer t.queueMu.Unlock()
	events := t.eventQueue
	t.eventQueue = nil
	return events
}

func (t *Backend) handleSignals() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)

	<-signals
	// Signal quit via event queue
	t.queue(event.Input{Action: action.AppQuit, Type: event.Press})
	if t.config.Callbacks.OnQuit != nil {
		t.config.Callbacks.OnQuit()
	}
}

// tcellKeyNameMap converts tcell keys to key names used in default mappings
var tcellKeyNameMap = map[tcell.Key]string{
	tcell.KeyLeft:   "Left",
	tcell.KeyRight:  "Right",
	tcell.KeyEscape: "Escape",
}

// tcellRuneNameMap converts runes to key names used in default mappings
var tcellRuneNameMap = map[rune]string{
	'h': "h",
	'l': "l",
	'b': "b",
	'c': "c",
	'q': "q",
	'+': "+",
	'=': "=",
	'-': "-",
	'_': "_",
}

// buildKeyMapping creates the key mapping from default mappings
func buildKeyMapping() map[tcell.Key]action.Action {
	mapping := make(map[tcell.Key]action.Action)

	for key, keyName := range tcellKeyNameMap {
		if act, ok := input.GetDefaultMapping(keyName); ok {
			mapping[key] = act
		}
	}

	mapping[tcell.KeyCtrlC] = action.AppQuit

	return mapping
}

// buildRuneMapping creates the rune mapping from default mappings
func buildRuneMapping() map[rune]action.Action {
	mapping := make(map[rune]action.Action)

	for r, keyName := range tcellRuneNameMap {
		if act, ok := input.GetDefaultMapping(keyName); ok {
			mapping[r] = act
		}
	}

	return mapping
}

// keyMapping maps tcell keys to actions
var keyMapping = buildKeyMapping()

// runeMapping maps runes to actions
var runeMapping = buildRuneMapping()

func (t *Backend) processKeyEvent(ev *tcell.EventKey) {
	if t.menu != nil {
		t.processMenuKey(ev)
		return
	}

	switch ev.Key() {
	case tcell.KeyEnter:
		t.tap(t.focus)
		return
	case tcell.KeyF12:
		if _, err := snapshot.TakeSnapshot(t.view, t.snapshotDir); err != nil {
			slog.Error("Failed to save snapshot", "error", err)
		}
		return
	case tcell.KeyUp:
		t.moveFocus(-1)
		return
	case tcell.KeyDown, tcell.KeyTab:
		t.moveFocus(1)
		return
	case tcell.KeyRune:
		t.processRuneKey(ev.Rune())
		return
	}

	if act, exists := keyMapping[ev.Key()]; exists {
		t.trigger(act)
	}
}

func (t *Backend) processRuneKey(r rune) {
	switch {
	case r >= '1' && r <= '9':
		// numbered by drawn band, hidden slots are skipped
		visible := t.view.VisibleSlots()
		if n := int(r - '1'); n < len(visible) {
			t.focus = visible[n].Index
		}
		return
	case r == ' ':
		t.tap(t.focus)
		return
	case r == 'm':
		t.openMenu(t.focus)
		return
	}

	if act, exists := runeMapping[r]; exists {
		slog.Debug("Key event (rune)", "rune", string(r), "action", act)
		t.trigger(act)
	}
}

func (t *Backend) trigger(act action.Action) {
	if act == action.AppQuit {
		t.running = false
	}
	t.queue(event.Input{Action: act, Type: event.Press})
}

func (t *Backend) processMenuKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		t.menu.move(-1)
	case tcell.KeyDown, tcell.KeyTab:
		t.menu.move(1)
	case tcell.KeyEnter:
		t.choose(t.menu.cursor)
	case tcell.KeyEscape:
		t.closeMenu()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			t.menu.move(-1)
		case 'j':
			t.menu.move(1)
		case ' ':
			t.choose(t.menu.cursor)
		case 'q':
			t.closeMenu()
		}
	}
}

func (t *Backend) processMouseEvent(ev *tcell.EventMouse, now time.Time) {
	x, y := ev.Position()
	buttons := ev.Buttons()
	pressed := buttons &^ t.lastButtons
	released := t.lastButtons &^ buttons
	t.lastButtons = buttons

	if t.menu != nil {
		if released&tcell.Button1 != 0 {
			t.drag = drag{}
		}
		if pressed&tcell.Button1 != 0 {
			if i, ok := t.menu.optionAt(x, y); ok {
				t.choose(i)
			} else {
				t.closeMenu()
			}
		}
		return
	}

	switch {
	case pressed&tcell.Button2 != 0:
		if slot := t.hitTest(x, y); slot >= 0 {
			t.focus = slot
			t.openMenu(slot)
		}
	case pressed&tcell.Button1 != 0:
		t.drag = drag{active: true, slot: t.hitTest(x, y), x: x, y: y, start: now}
	case released&tcell.Button1 != 0 && t.drag.active:
		t.finishGesture(x)
	}
}

// finishGesture turns a completed press into a tap or a swipe. Presses that
// started on a band never swipe.
func (t *Backend) finishGesture(x int) {
	d := t.drag
	t.drag = drag{}
	if d.held {
		return
	}
	if d.slot >= 0 {
		t.focus = d.slot
		t.tap(d.slot)
		return
	}

	dx := x - d.x
	switch {
	case dx <= -swipeThreshold:
		t.queue(event.Input{Action: action.SwipeLeft, Type: event.Press})
	case dx >= swipeThreshold:
		t.queue(event.Input{Action: action.SwipeRight, Type: event.Press})
	}
}

func (t *Backend) tap(slot int) {
	if !t.slotVisible(slot) {
		return
	}
	t.queue(event.Input{Action: action.BandTap, Type: event.Press, Slot: slot})
}

func (t *Backend) hitTest(x, y int) int {
	for _, hb := range t.hitboxes {
		if x >= hb.x && x < hb.x+hb.w && y >= hb.y && y < hb.y+hb.h {
			return hb.slot
		}
	}
	return -1
}

func (t *Backend) slotVisible(slot int) bool {
	return slot >= 0 && slot < len(t.view.Slots) && t.view.Slots[slot].Visible
}

func (t *Backend) moveFocus(dir int) {
	n := len(t.view.Slots)
	for i := 1; i <= n; i++ {
		slot := ((t.focus+dir*i)%n + n) % n
		if t.slotVisible(slot) {
			t.focus = slot
			return
		}
	}
}

func (t *Backend) openMenu(slot int) {
	if !t.slotVisible(slot) {
		return
	}
	s := t.view.Slots[slot]
	if len(s.Options) == 0 {
		return
	}

	m := &menu{
		slot:    slot,
		options: s.Options,
		x:       slotX(slot),
		y:       1,
	}
	current := s.Text
	if current == "" {
		current = s.Color.String()
	}
	for i, o := range s.Options {
		if o == current {
			m.cursor = i
		}
	}
	t.menu = m
	t.queue(event.Input{Action: action.BandHold, Type: event.Hold, Slot: slot})
}

func (t *Backend) choose(option int) {
	if t.menu == nil {
		return
	}
	t.queue(event.Input{Action: action.BandChoose, Type: event.Press, Slot: t.menu.slot, Option: option})
	t.closeMenu()
}

func (t *Backend) closeMenu() {
	t.menu = nil
}

func (m *menu) move(dir int) {
	m.cursor = (m.cursor + dir + len(m.options)) % len(m.options)
}

// optionAt maps a screen position to a menu entry
func (m *menu) optionAt(x, y int) (int, bool) {
	if x <= m.x || x >= m.x+menuWidth-1 {
		return 0, false
	}
	row := y - m.y - 1
	if row < 0 || row >= m.rows {
		return 0, false
	}
	return m.top + row, true
}

func (t *Backend) changeLogLevel(direction int) {
	oldLevel := t.logLevel
	switch direction {
	case -1:
		switch t.logLevel {
		case slog.LevelDebug:
			t.logLevel = slog.LevelInfo
		case slog.LevelInfo:
			t.logLevel = slog.LevelWarn
		case slog.LevelWarn:
			t.logLevel = slog.LevelError
		}
	case 1:
		switch t.logLevel {
		case slog.LevelError:
			t.logLevel = slog.LevelWarn
		case slog.LevelWarn:
			t.logLevel = slog.LevelInfo
		case slog.LevelInfo:
			t.logLevel = slog.LevelDebug
		}
	}
	if oldLevel != t.logLevel {
		slog.Info("Log filter changed", "from", oldLevel, "to", t.logLevel)
	}
}

func slotX(slot int) int {
	return bodyX + bandInset + slot*(bandWidth+bandGap)
}

func bodyWidth(slots int) int {
	if slots == 0 {
		return 2 * bandInset
	}
	return 2*bandInset + slots*bandWidth + (slots-1)*bandGap
}

func (t *Backend) render(view component.View) {
	termWidth, termHeight := t.screen.Size()
	t.screen.Clear()
	if termWidth < minTermWidth || termHeight < minTermHeight {
		style := tcell.StyleDefault.Foreground(tcell.ColorRed)
		msg := fmt.Sprintf("Terminal too small! Need at least %dx%d", minTermWidth, minTermHeight)
		render.DrawText(t.screen, 0, termHeight/2, termWidth, msg, style)
		return
	}

	t.drawBorders(view, termWidth, termHeight)
	t.drawComponent(view)
	t.drawDisplay(view)
	t.drawLogs(dividerX+1, 1, termWidth-dividerX-1, termHeight)
	if t.menu != nil {
		t.drawMenu(termHeight)
	}
}

func (t *Backend) drawBorders(view component.View, termWidth, termHeight int) {
	borderStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)

	for y := 0; y < termHeight-1; y++ {
		t.screen.SetContent(dividerX, y, '│', nil, borderStyle)
	}

	title := fmt.Sprintf(" %s ", view.Title)
	if view.Kind == component.Resistor {
		title = fmt.Sprintf(" %s, %d bands ", view.Title, len(view.VisibleSlots()))
	}
	render.DrawText(t.screen, 1, 0, dividerX-1, title, titleStyle)

	logTitle := fmt.Sprintf(" Logs [%s] (-/+ filter) ", strings.ToUpper(t.logLevel.String()))
	render.DrawText(t.screen, dividerX+2, 0, termWidth-dividerX-2, logTitle, titleStyle)

	help := fmt.Sprintf(" click=tap  right click/hold=menu  drag=next/prev  %s  space=tap  m=menu  b=5/6 bands  c=component  F12=snapshot  q=quit ",
		focusHint(view))
	render.DrawText(t.screen, 0, termHeight-1, termWidth, help, borderStyle)
}

// focusHint names the number keys that focus a drawn band.
func focusHint(view component.View) string {
	n := len(view.VisibleSlots())
	if n <= 1 {
		return "1 focus"
	}
	return fmt.Sprintf("1-%d focus", n)
}

func (t *Backend) drawComponent(view component.View) {
	width := bodyWidth(len(view.Slots))
	leadStyle := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	leadY := bodyY + bodyHeight/2
	for i := 0; i < leadLength; i++ {
		t.screen.SetContent(bodyX-leadLength+i, leadY, '─', nil, leadStyle)
		t.screen.SetContent(bodyX+width+i, leadY, '─', nil, leadStyle)
	}

	bodyStyle := tcell.StyleDefault.Background(render.TrueColor(view.Body))
	render.FillRect(t.screen, bodyX, bodyY, width, bodyHeight, bodyStyle)

	labelStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	focusStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)

	t.hitboxes = t.hitboxes[:0]
	for n, s := range view.VisibleSlots() {
		x := slotX(s.Index)
		if s.Text != "" {
			digitStyle := bodyStyle.Foreground(render.TrueColor(view.Body.Contrast())).Bold(true)
			render.DrawText(t.screen, x+1, leadY, 1, s.Text, digitStyle)
		} else {
			render.FillRect(t.screen, x, bodyY, bandWidth, bodyHeight, render.BandStyle(s.Color))
		}
		t.hitboxes = append(t.hitboxes, hitbox{slot: s.Index, x: x, y: bodyY, w: bandWidth, h: bodyHeight})

		t.screen.SetContent(x+1, bodyY-1, rune('1'+n), nil, labelStyle)
		if s.Index == t.focus {
			t.screen.SetContent(x+1, bodyY+bodyHeight, '▲', nil, focusStyle)
		}
	}
}

func (t *Backend) drawDisplay(view component.View) {
	valueStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	infoStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)

	y := bodyY + bodyHeight + 2
	for i, line := range strings.Split(view.Display, "\n") {
		render.DrawText(t.screen, bodyX, y+i, dividerX-bodyX, line, valueStyle)
	}

	if t.slotVisible(t.focus) {
		s := view.Slots[t.focus]
		value := s.Text
		if value == "" {
			value = s.Color.String()
		}
		info := fmt.Sprintf("slot %d: %s (%s)", t.focus+1, s.Role, value)
		render.DrawText(t.screen, bodyX, y+3, dividerX-bodyX, info, infoStyle)
	}
}

func (t *Backend) drawMenu(termHeight int) {
	m := t.menu
	m.rows = len(m.options)
	if maxRows := termHeight - m.y - 3; m.rows > maxRows {
		m.rows = maxRows
	}
	if m.cursor < m.top {
		m.top = m.cursor
	}
	if m.cursor >= m.top+m.rows {
		m.top = m.cursor - m.rows + 1
	}

	frame := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	render.FillRect(t.screen, m.x, m.y, menuWidth, m.rows+2, frame)
	for x := m.x; x < m.x+menuWidth; x++ {
		t.screen.SetContent(x, m.y, '─', nil, frame)
		t.screen.SetContent(x, m.y+m.rows+1, '─', nil, frame)
	}
	for y := m.y; y < m.y+m.rows+2; y++ {
		t.screen.SetContent(m.x, y, '│', nil, frame)
		t.screen.SetContent(m.x+menuWidth-1, y, '│', nil, frame)
	}
	t.screen.SetContent(m.x, m.y, '┌', nil, frame)
	t.screen.SetContent(m.x+menuWidth-1, m.y, '┐', nil, frame)
	t.screen.SetContent(m.x, m.y+m.rows+1, '└', nil, frame)
	t.screen.SetContent(m.x+menuWidth-1, m.y+m.rows+1, '┘', nil, frame)

	for row := 0; row < m.rows; row++ {
		i := m.top + row
		y := m.y + 1 + row
		style := frame
		if i == m.cursor {
			style = style.Reverse(true)
		}
		x := m.x + 1
		if c, ok := band.ParseColor(m.options[i]); ok {
			render.FillRect(t.screen, x, y, 2, 1, render.BandStyle(c))
		}
		render.DrawText(t.screen, x+3, y, menuWidth-5, m.options[i], style)
	}
}

func (t *Backend) drawLogs(startX, startY, width, termHeight int) {
	if width <= 0 || startY >= termHeight {
		return
	}

	availableHeight := termHeight - startY - 1
	if availableHeight <= 0 {
		return
	}

	debugStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	infoStyle := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	warnStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	errStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)

	for i, logEntry := range t.logBuffer.GetRecent(availableHeight, t.logLevel) {
		style := infoStyle
		switch logEntry.Level {
		case slog.LevelDebug:
			style = debugStyle
		case slog.LevelWarn:
			style = warnStyle
		case slog.LevelError:
			style = errStyle
		}
		render.DrawText(t.screen, startX, startY+i, width, render.FormatLogEntry(logEntry), style)
	}
}
