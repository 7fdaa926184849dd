package tui

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuicard/internal/deck"
	"github.com/verte-zerg/tuicard/internal/model"
	"github.com/verte-zerg/tuicard/internal/session"
	"github.com/verte-zerg/tuicard/internal/store"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	questionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	correctStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#73D13D"))
	wrongStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	dividerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
)

// Model implements the Bubble Tea review UI. All navigation goes through the
// session state: entering a screen pushes, leaving pops, and card-to-card
// movement replaces the top so history does not grow.
type Model struct {
	cfg      model.ReviewConfig
	store    *store.Store
	deckPath string
	cards    []deck.Card
	sess     *session.State[screen]

	width  int
	height int

	startedAt time.Time
}

// NewModel constructs a review TUI model. cards is the session sequence
// already derived by session.Transform; an empty sequence is valid and
// renders as a deck with nothing to review.
func NewModel(cfg model.ReviewConfig, st *store.Store, cards []deck.Card, params session.Params, rnd *rand.Rand) *Model {
	m := &Model{
		cfg:      cfg,
		store:    st,
		deckPath: cfg.DeckPath,
		cards:    cards,
		sess:     session.NewState[screen](rnd, params),
	}
	m.sess.GoTo(menuScreen{}, nil)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if s, ok := m.top().(cardScreen); ok {
			m.setCardBody(&s)
			m.sess.ReplaceTop(s)
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch s := m.top().(type) {
		case menuScreen:
			return m.updateMenu(s, msg)
		case cardScreen:
			return m.updateCard(s, msg)
		case summaryScreen:
			return m.updateSummary(s, msg)
		}
	}
	return m, nil
}

func (m *Model) top() screen {
	top, ok := m.sess.Top()
	if !ok {
		panic("tui: navigation stack is empty")
	}
	return top
}

func (m *Model) menuItems() []string {
	items := []string{}
	if len(m.cards) > 0 {
		items = append(items, "Start pass")
		if snap, ok := m.resumeSnapshot(); ok && snap.cursor < len(snap.pass) {
			items = append(items, "Resume pass")
		}
	}
	items = append(items, "Quit")
	return items
}

func (m *Model) resumeSnapshot() (cardSnapshot, bool) {
	v, ok := m.sess.Snapshot(cardID)
	if !ok {
		return cardSnapshot{}, false
	}
	snap, ok := cardSnapshotFrom(v)
	if !ok || !snap.started {
		return cardSnapshot{}, false
	}
	return snap, true
}

func (m *Model) updateMenu(s menuScreen, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.menuItems()
	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
		m.sess.ReplaceTop(s)
	case "down", "j":
		if s.cursor < len(items)-1 {
			s.cursor++
		}
		m.sess.ReplaceTop(s)
	case "q":
		return m, tea.Quit
	case "enter", " ":
		if s.cursor >= len(items) {
			s.cursor = len(items) - 1
		}
		switch items[s.cursor] {
		case "Start pass":
			m.startPass(s, false)
		case "Resume pass":
			m.startPass(s, true)
		case "Quit":
			return m, tea.Quit
		}
	}
	return m, nil
}

// startPass begins a fresh pass over the whole session sequence, or resumes
// the one remembered in the card snapshot.
func (m *Model) startPass(s menuScreen, resume bool) {
	if len(m.cards) == 0 {
		return
	}
	card := cardScreen{}
	if snap, ok := m.resumeSnapshot(); resume && ok {
		card.pass = snap.pass
		card.cursor = snap.cursor
		card.retry = snap.retry
		card.revealed = snap.revealed
	} else {
		pass := make([]int, len(m.cards))
		for i := range pass {
			pass[i] = i
		}
		card.pass = pass
		m.sess.StartPass(len(m.cards))
		m.startedAt = time.Now()
	}
	m.setCardBody(&card)
	m.sess.GoTo(card, menuSnapshot{cursor: s.cursor})
}

func (m *Model) updateCard(s cardScreen, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	review := m.sess.Params.Review
	switch msg.String() {
	case "esc":
		if m.sess.CanGoBack() {
			m.sess.SaveSnapshot(cardID, s.snapshot())
			m.goBackToMenu()
		}
		return m, nil
	case " ":
		if !s.revealed {
			s.revealed = true
			m.setCardBody(&s)
			m.sess.ReplaceTop(s)
			return m, nil
		}
		if !review {
			m.advance(s)
		}
		return m, nil
	case "enter":
		if s.revealed && !review {
			m.advance(s)
		}
		return m, nil
	case "y":
		if s.revealed && review {
			m.sess.Tracker.Record(s.pass[s.cursor], true)
			m.advance(s)
		}
		return m, nil
	case "n":
		if s.revealed && review {
			m.sess.Tracker.Record(s.pass[s.cursor], false)
			m.advance(s)
		}
		return m, nil
	}
	if s.revealed {
		var cmd tea.Cmd
		s.body, cmd = s.body.Update(msg)
		m.sess.ReplaceTop(s)
		return m, cmd
	}
	return m, nil
}

// advance moves to the next card in the pass, or finishes the pass.
func (m *Model) advance(s cardScreen) {
	s.cursor++
	s.revealed = false
	if s.cursor >= len(s.pass) {
		m.finishPass(s)
		return
	}
	m.setCardBody(&s)
	m.sess.ReplaceTop(s)
}

func (m *Model) finishPass(s cardScreen) {
	summary := summaryScreen{viewed: len(s.pass), retry: s.retry}
	if m.sess.Params.Review && m.sess.Tracker != nil {
		summary.correct, summary.incorrect, summary.unseen = m.sess.Tracker.Summary()
		summary.remaining = m.sess.Tracker.Remaining()
		if !s.retry {
			m.saveReview(summary)
		}
	}
	// A finished pass cannot be resumed.
	m.sess.SaveSnapshot(cardID, nil)
	m.sess.ReplaceTop(summary)
}

func (m *Model) saveReview(summary summaryScreen) {
	if m.store == nil {
		return
	}
	endedAt := time.Now()
	stats := model.ReviewStats{
		StartedAt:  m.startedAt,
		EndedAt:    endedAt,
		DeckPath:   m.deckPath,
		Cards:      len(m.cards),
		Correct:    summary.correct,
		Incorrect:  summary.incorrect,
		DurationMs: endedAt.Sub(m.startedAt).Milliseconds(),
	}
	if _, err := m.store.InsertReview(context.Background(), stats); err != nil {
		logErrf("failed to save review: %v\n", err)
	}
}

func (m *Model) updateSummary(s summaryScreen, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		if m.sess.Params.Review && len(s.remaining) > 0 {
			card := cardScreen{pass: s.remaining, retry: true}
			m.setCardBody(&card)
			m.sess.ReplaceTop(card)
		}
		return m, nil
	case "q":
		return m, tea.Quit
	case "esc", "enter":
		if m.sess.CanGoBack() {
			m.goBackToMenu()
		}
		return m, nil
	}
	return m, nil
}

// goBackToMenu pops the current screen and restores the menu cursor from its
// snapshot.
func (m *Model) goBackToMenu() {
	top, snap := m.sess.GoBack()
	menu, ok := top.(menuScreen)
	if !ok {
		return
	}
	if saved, ok := menuSnapshotFrom(snap); ok {
		menu.cursor = saved.cursor
		m.sess.ReplaceTop(menu)
	}
}

func (m *Model) contentWidth() int {
	width := int(float64(m.width) * 0.70)
	if width < 1 {
		width = 20
	}
	return width
}

func (m *Model) sizedViewport(content string) viewport.Model {
	height := m.height - 8
	if height < 3 {
		height = 3
	}
	vp := viewport.New(m.contentWidth(), height)
	vp.SetContent(content)
	return vp
}

func (m *Model) setCardBody(s *cardScreen) {
	if !s.revealed || s.cursor >= len(s.pass) {
		s.body = m.sizedViewport("")
		return
	}
	answer := m.cards[s.pass[s.cursor]].Answer
	s.body = m.sizedViewport(answerStyle.Render(wrapText(answer, m.contentWidth())))
}

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	switch s := m.top().(type) {
	case menuScreen:
		content = m.viewMenu(s)
	case cardScreen:
		content = m.viewCard(s)
	case summaryScreen:
		content = m.viewSummary(s)
	}
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) viewMenu(s menuScreen) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.deckPath))
	b.WriteString("\n")
	if len(m.cards) == 0 {
		b.WriteString(pendingStyle.Render("No cards in this chunk."))
	} else {
		b.WriteString(pendingStyle.Render(fmt.Sprintf("%d cards", len(m.cards))))
	}
	b.WriteString("\n\n")
	for i, item := range m.menuItems() {
		if i == s.cursor {
			b.WriteString(cursorStyle.Render("▸ " + item))
		} else {
			b.WriteString(pendingStyle.Render("  " + item))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("↑/↓ move · enter select · q quit"))
	return b.String()
}

func (m *Model) viewCard(s cardScreen) string {
	if s.cursor >= len(s.pass) {
		return ""
	}
	card := m.cards[s.pass[s.cursor]]
	header := fmt.Sprintf("Card %d/%d", s.cursor+1, len(s.pass))
	if s.retry {
		header += " · retry"
	}
	var b strings.Builder
	b.WriteString(footerStyle.Render(header))
	b.WriteString("\n\n")
	b.WriteString(questionStyle.Render(wrapText(card.Question, m.contentWidth())))
	b.WriteString("\n")
	b.WriteString(dividerStyle.Render(strings.Repeat("─", m.contentWidth())))
	b.WriteString("\n")
	if s.revealed {
		b.WriteString(s.body.View())
		b.WriteString("\n\n")
		if m.sess.Params.Review {
			b.WriteString(footerStyle.Render("y correct · n incorrect · esc menu"))
		} else {
			b.WriteString(footerStyle.Render("space next · esc menu"))
		}
	} else {
		b.WriteString(pendingStyle.Render("(space to reveal)"))
		b.WriteString("\n\n")
		b.WriteString(footerStyle.Render("space reveal · esc menu"))
	}
	return b.String()
}

func (m *Model) viewSummary(s summaryScreen) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Pass finished"))
	b.WriteString("\n\n")
	if m.sess.Params.Review {
		b.WriteString(correctStyle.Render(fmt.Sprintf("correct   %d", s.correct)))
		b.WriteString("\n")
		b.WriteString(wrongStyle.Render(fmt.Sprintf("incorrect %d", s.incorrect)))
		b.WriteString("\n")
		if s.unseen > 0 {
			b.WriteString(pendingStyle.Render(fmt.Sprintf("unseen    %d", s.unseen)))
			b.WriteString("\n")
		}
		if len(s.remaining) > 0 {
			b.WriteString("\n")
			b.WriteString(footerStyle.Render(fmt.Sprintf("r retry %d remaining · enter menu", len(s.remaining))))
			return b.String()
		}
		b.WriteString("\n")
		b.WriteString(correctStyle.Render("All cards correct."))
		b.WriteString("\n\n")
	} else {
		b.WriteString(pendingStyle.Render(fmt.Sprintf("%d cards viewed", s.viewed)))
		b.WriteString("\n\n")
	}
	b.WriteString(footerStyle.Render("enter menu · q quit"))
	return b.String()
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
