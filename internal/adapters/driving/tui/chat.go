package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/askdocs-cli/internal/core/domain"
)

// exchange is one question/answer round in the session history.
type exchange struct {
	question string
	answer   string
	hits     []domain.RetrievedChunk
}

// answerReceived carries a completed answer back to the model.
type answerReceived struct {
	question string
	answer   string
	hits     []domain.RetrievedChunk
}

// Chat is the bubbletea model for the interactive chat session.
type Chat struct {
	styles *Styles
	ports  *Ports
	ctx    context.Context

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	history     []exchange
	waiting     bool
	showContext bool
	topK        int

	width  int
	height int
	ready  bool
}

// NewChat creates the chat model. Ports must carry an ask service.
func NewChat(ports *Ports) (*Chat, error) {
	if err := ports.Validate(); err != nil {
		return nil, err
	}

	styles := DefaultStyles()

	ti := textinput.New()
	ti.Placeholder = "Ask a question about your documents..."
	ti.Focus()
	ti.CharLimit = 512

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Muted

	topK := ports.TopK
	if topK < 1 {
		topK = 4
	}

	return &Chat{
		topK:     topK,
		styles:   styles,
		ports:    ports,
		ctx:      context.Background(),
		input:    ti,
		viewport: viewport.New(80, 20),
		spinner:  sp,
		width:    80,
		height:   24,
	}, nil
}

// WithContext sets the context used for service calls.
func (c *Chat) WithContext(ctx context.Context) *Chat {
	if ctx != nil {
		c.ctx = ctx
	}
	return c
}

// Init initialises the model.
func (c *Chat) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the chat model.
func (c *Chat) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.setDimensions(msg.Width, msg.Height)
		c.ready = true
		return c, nil

	case tea.KeyMsg:
		return c.handleKeyMsg(msg)

	case answerReceived:
		c.waiting = false
		c.history = append(c.history, exchange{
			question: msg.question,
			answer:   msg.answer,
			hits:     msg.hits,
		})
		c.renderHistory()
		c.viewport.GotoBottom()
		return c, nil

	case spinner.TickMsg:
		if !c.waiting {
			return c, nil
		}
		var cmd tea.Cmd
		c.spinner, cmd = c.spinner.Update(msg)
		return c, cmd
	}

	var cmds []tea.Cmd

	var inputCmd tea.Cmd
	c.input, inputCmd = c.input.Update(msg)
	if inputCmd != nil {
		cmds = append(cmds, inputCmd)
	}

	var vpCmd tea.Cmd
	c.viewport, vpCmd = c.viewport.Update(msg)
	if vpCmd != nil {
		cmds = append(cmds, vpCmd)
	}

	return c, tea.Batch(cmds...)
}

func (c *Chat) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return c, tea.Quit

	case tea.KeyCtrlT:
		c.showContext = !c.showContext
		c.renderHistory()
		return c, nil

	case tea.KeyCtrlK:
		// Cycle the retrieval depth through 1..8.
		c.topK = c.topK%8 + 1
		return c, nil

	case tea.KeyEnter:
		if c.waiting {
			return c, nil
		}
		question := strings.TrimSpace(c.input.Value())
		if question == "" {
			return c, nil
		}
		c.input.SetValue("")
		c.waiting = true
		return c, tea.Batch(c.spinner.Tick, c.ask(question))

	case tea.KeyPgUp:
		c.viewport.ViewUp()
		return c, nil

	case tea.KeyPgDown:
		c.viewport.ViewDown()
		return c, nil

	default:
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// ask answers the question off the update loop. Answer always returns
// displayable text, so there is no error branch here; Retrieve is best
// effort and only feeds the context toggle.
func (c *Chat) ask(question string) tea.Cmd {
	return func() tea.Msg {
		k := c.topK
		hits, err := c.ports.Ask.Retrieve(c.ctx, question, k)
		if err != nil {
			hits = nil
		}
		answer := c.ports.Ask.Answer(c.ctx, question, k)
		return answerReceived{question: question, answer: answer, hits: hits}
	}
}

func (c *Chat) setDimensions(width, height int) {
	c.width = width
	c.height = height

	c.input.Width = width - 8

	// Title, input box (3 with border) and help line take fixed rows.
	vpHeight := height - 6
	if vpHeight < 3 {
		vpHeight = 3
	}
	c.viewport.Width = width
	c.viewport.Height = vpHeight
	c.renderHistory()
}

// renderHistory rebuilds the viewport content from the session history.
func (c *Chat) renderHistory() {
	if len(c.history) == 0 {
		c.viewport.SetContent(c.styles.Muted.Render(
			"No questions yet. Type one below and press Enter."))
		return
	}

	var b strings.Builder
	for i, ex := range c.history {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(c.styles.Question.Render("You: " + ex.question))
		b.WriteString("\n")
		if c.showContext && len(ex.hits) > 0 {
			b.WriteString(c.styles.Context.Render(formatHits(ex.hits)))
			b.WriteString("\n")
		}
		b.WriteString(c.styles.Answer.Render(ex.answer))
	}
	c.viewport.SetContent(b.String())
}

// formatHits renders retrieved chunks for the context toggle.
func formatHits(hits []domain.RetrievedChunk) string {
	lines := make([]string, len(hits))
	for i, hit := range hits {
		content := hit.Chunk.Content
		if len(content) > 200 {
			content = content[:200] + "..."
		}
		lines[i] = fmt.Sprintf("[%s #%d %.3f] %s",
			hit.Chunk.Source, hit.Chunk.Index, hit.Similarity, content)
	}
	return strings.Join(lines, "\n")
}

// View renders the chat UI.
func (c *Chat) View() string {
	if !c.ready {
		return "Loading..."
	}

	title := c.styles.Title.Render("askdocs chat")

	var status string
	if c.waiting {
		status = c.spinner.View() + c.styles.Muted.Render(" thinking...")
	} else {
		status = c.styles.Input.Render(c.input.View())
	}

	contextState := "off"
	if c.showContext {
		contextState = "on"
	}
	help := c.styles.Help.Render(
		fmt.Sprintf("enter: ask • ctrl+t: context (%s) • ctrl+k: top-k (%d) • pgup/pgdn: scroll • esc: quit",
			contextState, c.topK))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		c.viewport.View(),
		status,
		help,
	)
}
