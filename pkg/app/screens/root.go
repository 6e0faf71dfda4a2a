package screens

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kerbaras/gameshelf/pkg/app/components"
	"github.com/kerbaras/gameshelf/pkg/app/styles"
	"github.com/kerbaras/gameshelf/pkg/data"
	"github.com/kerbaras/gameshelf/pkg/services"
)

// Controller is what the root screen needs from the service layer.
type Controller interface {
	LoadCatalog(ctx context.Context) data.Catalog
	Perform(ctx context.Context, game data.GameRecord, action data.Action) (string, error)
	SendFeedback(text string) error
	Thumbnail(ctx context.Context, path string) (string, error)
	ThumbnailsEnabled() bool
	Progress() <-chan services.DownloadProgress
}

type focusArea int

const (
	focusCatalog focusArea = iota
	focusSidebar
	focusFeedback
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	sidebarWidth  = 22
)

type catalogLoadedMsg struct {
	catalog data.Catalog
}

type thumbnailMsg struct {
	path string
	art  string
}

type actionDoneMsg struct {
	game   string
	action data.Action
	status string
	err    error
}

type feedbackSentMsg struct {
	err error
}

type progressMsg services.DownloadProgress

type RootScreen struct {
	ctx        context.Context
	controller Controller

	// application state
	catalog         data.Catalog
	feedbackVisible bool

	header   *components.Header
	feedback *components.FeedbackPanel
	sidebar  *components.Sidebar
	featured *components.Featured
	list     *components.GameList
	progress *components.ProgressTracker
	viewport viewport.Model
	help     help.Model

	thumbnails    map[string]string
	markdownStyle string
	focus         focusArea
	status        string
	statusErr     bool

	width  int
	height int
}

func NewRootScreen(ctx context.Context, controller Controller, markdownStyle string) *RootScreen {
	thumbnails := map[string]string{}

	list := components.NewGameList()
	list.Thumbnails = thumbnails
	featured := components.NewFeatured()
	featured.Thumbnails = thumbnails

	r := &RootScreen{
		ctx:           ctx,
		controller:    controller,
		catalog:       data.Catalog{},
		header:        components.NewHeader("Games"),
		sidebar:       components.NewSidebar(),
		featured:      featured,
		list:          list,
		progress:      components.NewProgressTracker(defaultWidth),
		viewport:      viewport.New(defaultWidth, defaultHeight),
		help:          help.New(),
		thumbnails:    thumbnails,
		markdownStyle: markdownStyle,
		focus:         focusCatalog,
		width:         defaultWidth,
		height:        defaultHeight,
	}
	r.refresh()
	return r
}

// Catalog is the catalog currently shown.
func (r *RootScreen) Catalog() data.Catalog {
	return r.catalog
}

// FeedbackVisible reports whether the feedback panel is showing.
func (r *RootScreen) FeedbackVisible() bool {
	return r.feedbackVisible
}

func (r *RootScreen) Init() tea.Cmd {
	return tea.Batch(r.loadCatalog(), r.listenForProgress())
}

func (r *RootScreen) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		return catalogLoadedMsg{catalog: r.controller.LoadCatalog(r.ctx)}
	}
}

func (r *RootScreen) listenForProgress() tea.Cmd {
	ch := r.controller.Progress()
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		p, ok := <-ch
		if !ok {
			return nil
		}
		return progressMsg(p)
	}
}

func (r *RootScreen) loadThumbnails() tea.Cmd {
	if !r.controller.ThumbnailsEnabled() {
		return nil
	}

	seen := map[string]bool{}
	var cmds []tea.Cmd
	for _, game := range r.catalog {
		path := game.ImgPath
		if path == "" || seen[path] {
			continue
		}
		seen[path] = true
		cmds = append(cmds, func() tea.Msg {
			art, err := r.controller.Thumbnail(r.ctx, path)
			if err != nil {
				return nil
			}
			return thumbnailMsg{path: path, art: art}
		})
	}
	return tea.Batch(cmds...)
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height

	case catalogLoadedMsg:
		r.setCatalog(msg.catalog)
		cmd = r.loadThumbnails()

	case thumbnailMsg:
		r.thumbnails[msg.path] = msg.art

	case progressMsg:
		r.progress.Update(services.DownloadProgress(msg))
		cmd = r.listenForProgress()

	case actionDoneMsg:
		if msg.action.IsDownload() {
			r.progress.Remove(msg.game, msg.action)
		}
		r.setStatus(msg.status, msg.err)

	case components.SubmitFeedbackMsg:
		cmd = r.sendFeedback(msg.Text)

	case feedbackSentMsg:
		if r.feedback != nil {
			r.feedback.MarkSent(msg.err)
		}

	case tea.MouseMsg:
		r.viewport, cmd = r.viewport.Update(msg)
		return r, cmd

	case tea.KeyMsg:
		cmd = r.handleKey(msg)

	default:
		if r.feedback != nil {
			cmd = r.feedback.Update(msg)
		}
	}

	r.refresh()
	return r, cmd
}

func (r *RootScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	if r.focus == focusFeedback {
		switch msg.String() {
		case "ctrl+c":
			return tea.Quit
		case "ctrl+f":
			return r.toggleFeedback()
		case "tab":
			r.cycleFocus()
			return nil
		}
		return r.feedback.Update(msg)
	}

	switch {
	case key.Matches(msg, components.Keys.Quit):
		return tea.Quit
	case key.Matches(msg, components.Keys.Feedback):
		return r.toggleFeedback()
	case key.Matches(msg, components.Keys.Help):
		r.help.ShowAll = !r.help.ShowAll
	case key.Matches(msg, components.Keys.Focus):
		r.cycleFocus()
	case key.Matches(msg, components.Keys.Up):
		r.move(-1)
	case key.Matches(msg, components.Keys.Down):
		r.move(1)
	case key.Matches(msg, components.Keys.Jump):
		if r.focus == focusSidebar {
			r.jumpToSelectedLink()
		}
	case key.Matches(msg, components.Keys.Source):
		return r.perform(data.ActionSource)
	case key.Matches(msg, components.Keys.Linux):
		return r.perform(data.ActionLinux)
	case key.Matches(msg, components.Keys.Windows):
		return r.perform(data.ActionWindows)
	}
	return nil
}

func (r *RootScreen) setCatalog(catalog data.Catalog) {
	if catalog == nil {
		catalog = data.Catalog{}
	}
	r.catalog = catalog
	r.list.SetItems(catalog)
	r.featured.SetCatalog(catalog)
	r.sidebar.SetCatalog(catalog)
}

// toggleFeedback flips the panel. Hiding drops the panel with its buffer.
func (r *RootScreen) toggleFeedback() tea.Cmd {
	r.feedbackVisible = !r.feedbackVisible
	if !r.feedbackVisible {
		r.feedback = nil
		if r.focus == focusFeedback {
			r.focus = focusCatalog
		}
		return nil
	}

	r.feedback = components.NewFeedbackPanel(r.markdownStyle, r.width)
	r.focus = focusFeedback
	return r.feedback.Init()
}

func (r *RootScreen) cycleFocus() {
	switch r.focus {
	case focusCatalog:
		r.focus = focusSidebar
	case focusSidebar:
		if r.feedbackVisible {
			r.focus = focusFeedback
		} else {
			r.focus = focusCatalog
		}
	default:
		r.focus = focusCatalog
	}
}

func (r *RootScreen) move(delta int) {
	if r.focus == focusSidebar {
		if delta < 0 {
			r.sidebar.Prev()
		} else {
			r.sidebar.Next()
		}
		return
	}

	if delta < 0 {
		r.list.Prev()
	} else {
		r.list.Next()
	}
	r.refresh()
	r.scrollToSelected()
}

func (r *RootScreen) jumpToSelectedLink() {
	link, ok := r.sidebar.Selected()
	if !ok || !r.list.JumpTo(link.Target) {
		return
	}
	r.focus = focusCatalog
	r.refresh()
	r.scrollToSelected()
}

func (r *RootScreen) perform(action data.Action) tea.Cmd {
	game := r.list.Selected()
	if game == nil {
		return nil
	}
	if _, enabled := game.Action(action); !enabled {
		r.setStatus("", fmt.Errorf("%s is not available for %s", action.Label(), game.Name))
		return nil
	}

	selected := *game
	if action.IsDownload() {
		r.setStatus(fmt.Sprintf("Downloading %s (%s)...", selected.Name, action), nil)
	}
	return func() tea.Msg {
		status, err := r.controller.Perform(r.ctx, selected, action)
		return actionDoneMsg{game: selected.Name, action: action, status: status, err: err}
	}
}

func (r *RootScreen) sendFeedback(text string) tea.Cmd {
	return func() tea.Msg {
		return feedbackSentMsg{err: r.controller.SendFeedback(text)}
	}
}

func (r *RootScreen) setStatus(status string, err error) {
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		r.status = err.Error()
		r.statusErr = true
		return
	}
	r.status = status
	r.statusErr = false
}

// refresh lays the screen out for the current size and content.
func (r *RootScreen) refresh() {
	contentWidth := r.width - sidebarWidth - 3
	if contentWidth < 30 {
		contentWidth = 30
	}

	r.header.Width = r.width
	r.header.FeedbackOpen = r.feedbackVisible
	if r.feedback != nil {
		r.feedback.SetWidth(r.width)
	}
	r.sidebar.Width = sidebarWidth
	r.sidebar.Focused = r.focus == focusSidebar
	r.list.Width = contentWidth
	r.list.Focused = r.focus == focusCatalog
	r.featured.Width = contentWidth
	r.progress.SetWidth(contentWidth)

	r.viewport.Width = contentWidth
	r.viewport.Height = max(r.height-lipgloss.Height(r.chrome()), 3)
	r.viewport.SetContent(r.content())
}

// content is the scrollable column: featured entries then the full catalog.
func (r *RootScreen) content() string {
	list := r.list.View()
	if featured := r.featured.View(); featured != "" {
		return featured + "\n" + list
	}
	return list
}

func (r *RootScreen) listTop() int {
	if featured := r.featured.View(); featured != "" {
		return lipgloss.Height(featured)
	}
	return 0
}

func (r *RootScreen) scrollToSelected() {
	top := r.listTop() + r.list.Offset(r.list.SelectedIndex)
	if top < r.viewport.YOffset || top >= r.viewport.YOffset+r.viewport.Height {
		r.viewport.SetYOffset(top)
	}
}

// chrome is everything around the body, used for sizing.
func (r *RootScreen) chrome() string {
	parts := []string{r.header.View()}
	if r.feedback != nil {
		parts = append(parts, r.feedback.View())
	}
	parts = append(parts, r.footer())
	return strings.Join(parts, "\n")
}

func (r *RootScreen) footer() string {
	var parts []string
	if r.progress.HasActive() {
		parts = append(parts, strings.TrimRight(r.progress.View(), "\n"))
	}
	if r.status != "" {
		style := styles.StatusCompleted
		if r.statusErr {
			style = styles.StatusError
		}
		parts = append(parts, style.Render(r.status))
	}

	helpView := r.help.View(components.Keys)
	if r.focus == focusFeedback {
		helpView = r.help.ShortHelpView(components.Keys.TypingHelp())
	}
	parts = append(parts, styles.HelpStyle.Render(helpView))
	return strings.Join(parts, "\n")
}

func (r *RootScreen) View() string {
	body := lipgloss.JoinHorizontal(lipgloss.Top, r.sidebar.View(), r.viewport.View())

	parts := []string{r.header.View()}
	if r.feedback != nil {
		parts = append(parts, r.feedback.View())
	}
	parts = append(parts, body, r.footer())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
