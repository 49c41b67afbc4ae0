package viz

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/sortlab/internal/algorithms"
	"github.com/san-kum/sortlab/internal/config"
	"github.com/san-kum/sortlab/internal/metrics"
	"github.com/san-kum/sortlab/internal/playback"
)

const (
	screenMenu = iota
	screenPlay
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	seekJump      = 10
	sizeStep      = 5
	infoWidth     = 76
	infoHeight    = 10
)

// speedLadder is the set of intervals < and > move between.
var speedLadder = []time.Duration{
	10 * time.Millisecond,
	20 * time.Millisecond,
	50 * time.Millisecond,
	100 * time.Millisecond,
	200 * time.Millisecond,
	300 * time.Millisecond,
	500 * time.Millisecond,
}

type Options struct {
	Logger *slog.Logger
	Rand   *rand.Rand
	// SkipMenu starts directly on the playback screen.
	SkipMenu bool
}

// App is the bubbletea model: an algorithm menu and a playback screen.
type App struct {
	ctl   *playback.Controller
	sched *teaScheduler
	log   *slog.Logger

	screen   int
	cursor   int
	names    []algorithms.Name
	theme    Theme
	showInfo bool
	info     viewport.Model
	notice   string

	width, height int
}

func NewApp(cfg *config.Config, opts Options) App {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	sched := newTeaScheduler()
	ctl := playback.New(
		playback.WithScheduler(sched),
		playback.WithRand(opts.Rand),
		playback.WithLogger(opts.Logger),
		playback.WithAlgorithm(cfg.AlgorithmName()),
		playback.WithArraySize(cfg.Size),
		playback.WithInterval(cfg.Interval()),
		playback.WithValueRange(cfg.Min, cfg.Max),
	)
	ctl.Reset()

	names := algorithms.Names()
	cursor := 0
	for i, n := range names {
		if n == cfg.AlgorithmName() {
			cursor = i
		}
	}

	a := App{
		ctl:    ctl,
		sched:  sched,
		log:    opts.Logger,
		names:  names,
		cursor: cursor,
		theme:  GetTheme(cfg.Theme),
		info:   viewport.New(infoWidth, infoHeight),
		width:  defaultWidth,
		height: defaultHeight,
	}
	if opts.SkipMenu {
		a.screen = screenPlay
	}
	return a
}

// Controller exposes the playback controller driving the app.
func (a App) Controller() *playback.Controller { return a.ctl }

func (a App) Init() tea.Cmd { return nil }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil
	case tickMsg:
		return a, a.sched.deliver(msg)
	case tea.KeyMsg:
		var cmd tea.Cmd
		switch a.screen {
		case screenMenu:
			a, cmd = a.menuKey(msg)
		case screenPlay:
			a, cmd = a.playKey(msg)
		}
		if cmd != nil {
			return a, cmd
		}
		return a, a.sched.pending()
	}
	return a, nil
}

func (a App) menuKey(msg tea.KeyMsg) (App, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		a.ctl.Close()
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.names)-1 {
			a.cursor++
		}
	case "enter", " ":
		name := a.names[a.cursor]
		if a.ctl.Status().Algorithm != name {
			if err := a.ctl.SetAlgorithm(name); err != nil {
				a.notice = err.Error()
				return a, nil
			}
		}
		a.loadInfo(name)
		a.screen = screenPlay
	}
	return a, nil
}

func (a App) playKey(msg tea.KeyMsg) (App, tea.Cmd) {
	a.notice = ""
	st := a.ctl.Status()

	switch msg.String() {
	case "q", "ctrl+c":
		a.ctl.Close()
		return a, tea.Quit
	case "esc", "m":
		a.ctl.Pause()
		a.screen = screenMenu
	case " ":
		a.ctl.PlayPause()
	case "l", "right":
		a.ctl.StepForward()
	case "h", "left":
		a.ctl.StepBackward()
	case "[":
		a.seek(max(st.Index-seekJump, 0))
	case "]":
		a.seek(min(st.Index+seekJump, st.Len-1))
	case "g", "home":
		a.seek(0)
	case "G", "end":
		a.seek(st.Len - 1)
	case "r":
		a.ctl.Reset()
	case "+", "=":
		a.ctl.SetArraySize(st.Size + sizeStep)
	case "-", "_":
		a.ctl.SetArraySize(st.Size - sizeStep)
	case "<", ",":
		a.ctl.SetInterval(slower(st.Interval))
	case ">", ".":
		a.ctl.SetInterval(faster(st.Interval))
	case "tab":
		next := algorithms.Next(st.Algorithm)
		if err := a.ctl.SetAlgorithm(next); err != nil {
			a.notice = err.Error()
		}
		for i, n := range a.names {
			if n == next {
				a.cursor = i
			}
		}
		a.loadInfo(next)
	case "t":
		a.theme = NextTheme(a.theme)
	case "i":
		a.showInfo = !a.showInfo
		if a.showInfo {
			a.loadInfo(st.Algorithm)
		}
	case "pgdown":
		a.info.LineDown(3)
	case "pgup":
		a.info.LineUp(3)
	}
	return a, nil
}

// loadInfo fills the info panel and scrolls it back to the top.
func (a *App) loadInfo(name algorithms.Name) {
	info, _ := algorithms.Describe(name)
	desc := lipgloss.NewStyle().Width(infoWidth - 4).Render(info.Description)
	a.info.SetContent(desc + "\n\n" + info.Code)
	a.info.GotoTop()
}

func (a *App) seek(index int) {
	if err := a.ctl.Seek(index); err != nil {
		a.notice = err.Error()
		a.log.Debug("seek rejected", "index", index, "err", err)
	}
}

func slower(d time.Duration) time.Duration {
	for _, s := range speedLadder {
		if s > d {
			return s
		}
	}
	return speedLadder[len(speedLadder)-1]
}

func faster(d time.Duration) time.Duration {
	for i := len(speedLadder) - 1; i >= 0; i-- {
		if speedLadder[i] < d {
			return speedLadder[i]
		}
	}
	return speedLadder[0]
}

func (a App) View() string {
	if a.screen == screenMenu {
		return a.viewMenu()
	}
	return a.viewPlay()
}

func (a App) viewMenu() string {
	var b strings.Builder
	title := lipgloss.NewStyle().Foreground(a.theme.Secondary).Bold(true)
	b.WriteString("\n\n    " + title.Render("SORTLAB") + "\n    " + subtle.Render("sorting algorithm trace lab") + "\n    " + subtle.Render("───────────────────────────") + "\n\n")

	for i, name := range a.names {
		info, _ := algorithms.Describe(name)
		if i == a.cursor {
			marker := lipgloss.NewStyle().Foreground(a.theme.Secondary).Bold(true).Render("▸")
			label := lipgloss.NewStyle().Foreground(a.theme.Text).Bold(true).Render(fmt.Sprintf("%-16s", info.DisplayName))
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", marker, label, lipgloss.NewStyle().Foreground(a.theme.Primary).Render(info.Complexity)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", subtle.Render(fmt.Sprintf("  %-16s", info.DisplayName)), hintStyle.Render(info.Complexity)))
		}
	}
	if a.notice != "" {
		b.WriteString("\n    " + errorStyle.Render(a.notice) + "\n")
	}
	b.WriteString("\n    " + keyHints("j/k", "navigate", "enter", "select", "q", "quit") + "\n")
	return b.String()
}

func (a App) viewPlay() string {
	st := a.ctl.Status()
	step, ok := a.ctl.Current()
	if !ok {
		return "\n  loading..."
	}
	info, _ := algorithms.Describe(st.Algorithm)

	var b strings.Builder
	title := lipgloss.NewStyle().Foreground(a.theme.Secondary).Bold(true)
	b.WriteString(title.Render(strings.ToUpper(info.DisplayName)) + "  " + subtle.Render(info.Complexity) + "\n")
	b.WriteString(Separator(min(a.width, 80)) + "\n\n")

	rows := max(a.height-16, 6)
	b.WriteString(RenderBars(step, rows, a.width-4, a.theme) + "\n\n")

	if st.Algorithm == algorithms.NameHeap {
		b.WriteString(RenderHeapTree(step, a.theme) + "\n\n")
	}

	b.WriteString(lipgloss.NewStyle().Foreground(a.theme.Text).Render(step.Description) + "\n")
	b.WriteString(legend(a.theme) + "\n\n")

	b.WriteString(a.viewStatus(st) + "\n")
	if a.showInfo {
		b.WriteString(panel.Render(a.info.View()) + "\n")
	}
	if a.notice != "" {
		b.WriteString(errorStyle.Render(a.notice) + "\n")
	}
	b.WriteString(keyHints("space", "play", "h/l", "step", "[ ]", "seek", "r", "reset", "+/-", "size", "< >", "speed", "tab", "algo", "t", "theme", "i", "info", "q", "quit"))
	return b.String()
}

func (a App) viewStatus(st playback.Status) string {
	state := statusPaused.Render("❚❚ paused")
	if st.State == playback.Playing {
		state = statusPlaying.Render("▶ playing")
	}

	var left strings.Builder
	left.WriteString(state + "\n")
	left.WriteString(metricLabel.Render("step") + metricValue.Render(fmt.Sprintf("%d / %d", st.Index, st.Len-1)) + "\n")
	left.WriteString(metricLabel.Render("size") + metricValue.Render(fmt.Sprintf("%d", st.Size)) + "\n")
	left.WriteString(metricLabel.Render("interval") + metricValue.Render(st.Interval.String()) + "\n")
	left.WriteString(ProgressBar(st.Progress(), 24, a.theme))

	series := metrics.Series(a.ctl.Trace()[:st.Index+1], metrics.NewComparisons())
	chart := asciigraph.Plot(series,
		asciigraph.Height(4),
		asciigraph.Width(30),
		asciigraph.Caption(fmt.Sprintf("comparisons: %.0f", series[len(series)-1])),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, left.String(), "    ", subtle.Render(chart))
}

// RunInteractive opens the TUI on the alternate screen.
func RunInteractive(cfg *config.Config, opts Options) error {
	app := NewApp(cfg, opts)
	defer app.ctl.Close()
	_, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}
