package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/liyas/soalgen/internal/config"
	"github.com/liyas/soalgen/internal/exam"
	"github.com/liyas/soalgen/internal/export"
	"github.com/liyas/soalgen/internal/prefs"
	"github.com/liyas/soalgen/internal/service"
)

// App ties the request form, the package views and the modals together.
type App struct {
	ctx       context.Context
	cfg       config.Config
	generator *service.GeneratorService
	coord     *service.Coordinator
	exporter  *export.Exporter

	state  appState
	width  int
	height int

	form       formModel
	generating bool
	pageErr    string

	pkg        exam.Package
	epoch      int // bumped when a whole new package replaces pkg
	hasPackage bool
	tab        exam.Kind
	cursors    map[exam.Kind]int

	modal        modalState
	editor       *service.EditorSession
	editorCursor int
	editorFields []editorField
	editingField bool
	inputBuffer  string
	explanation  string
	deleteTarget int
	exportCursor int

	spin   spinner.Model
	status string
}

type appState string

const (
	viewForm    appState = "form"
	viewPackage appState = "package"
)

type modalState string

const (
	modalNone          modalState = ""
	modalEditor        modalState = "editor"
	modalExplain       modalState = "explain"
	modalConfirmDelete modalState = "confirmDelete"
	modalExport        modalState = "export"
)

func New(ctx context.Context, cfg config.Config, generator *service.GeneratorService, coord *service.Coordinator, exporter *export.Exporter) *App {
	header, err := prefs.LoadHeader()
	if err != nil {
		header = exam.HeaderInfo{}
	}
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = busyStyle
	return &App{
		ctx:       ctx,
		cfg:       cfg,
		generator: generator,
		coord:     coord,
		exporter:  exporter,
		state:     viewForm,
		form:      newFormModel(cfg, header),
		tab:       exam.KindQuestion,
		cursors:   map[exam.Kind]int{},
		spin:      spin,
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
	case tea.KeyMsg:
		if a.modal != modalNone {
			return a.handleModalKey(m)
		}
		if a.state == viewForm {
			return a.handleFormKey(m)
		}
		return a.handlePackageKey(m)
	case generatedMsg:
		a.generating = false
		a.pageErr = ""
		a.pkg = m.pkg
		a.epoch++
		a.hasPackage = true
		a.state = viewPackage
		a.tab = exam.KindQuestion
		a.cursors = map[exam.Kind]int{}
		a.status = ""
	case generateErrMsg:
		a.generating = false
		a.pageErr = service.MsgGenerateErr
	case regeneratedMsg:
		// a completion for a package that was replaced meanwhile, or for a
		// question deleted meanwhile, is dropped
		if m.epoch != a.epoch {
			a.coord.Finish()
			return a, nil
		}
		if _, ok := a.pkg.Question(m.n); !ok {
			a.coord.Finish()
			return a, nil
		}
		a.pkg = exam.ReplaceQuestion(a.pkg, m.n, m.q)
		token := a.coord.FinishSuccess(m.n, service.MsgRegenerated)
		return a, scheduleFeedbackClear(token)
	case regenerateErrMsg:
		token := a.coord.FinishError(m.n, service.MsgRegenerateErr)
		return a, scheduleFeedbackClear(token)
	case explainedMsg:
		a.coord.Finish()
		a.explanation = m.text
		a.modal = modalExplain
	case explainErrMsg:
		token := a.coord.FinishError(m.n, service.MsgExplainErr)
		return a, scheduleFeedbackClear(token)
	case spinner.TickMsg:
		_, busy := a.coord.BusyItem()
		if a.generating || busy {
			var cmd tea.Cmd
			a.spin, cmd = a.spin.Update(m)
			return a, cmd
		}
	case feedbackExpiredMsg:
		a.coord.ClearFeedback(m.token)
	case exportedMsg:
		a.status = "Tersimpan: " + m.path
	case errMsg:
		a.status = "error: " + m.Error()
	}
	return a, nil
}

func (a *App) View() string {
	var body string
	switch a.state {
	case viewPackage:
		body = a.renderPackage()
	default:
		body = a.renderForm()
	}
	if a.modal != modalNone {
		return a.overlayModal(body, a.renderModal())
	}
	return body
}

// messages
type generatedMsg struct{ pkg exam.Package }

type generateErrMsg struct{ err error }

type regeneratedMsg struct {
	q     exam.QuestionItem
	n     int
	epoch int
}

type regenerateErrMsg struct {
	n   int
	err error
}

type explainedMsg struct {
	n    int
	text string
}

type explainErrMsg struct {
	n   int
	err error
}

type feedbackExpiredMsg struct{ token uuid.UUID }

type exportedMsg struct{ path string }

type errMsg struct{ error }

func scheduleFeedbackClear(token uuid.UUID) tea.Cmd {
	return tea.Tick(service.FeedbackTTL, func(time.Time) tea.Msg {
		return feedbackExpiredMsg{token: token}
	})
}

// styles
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	tabStyle      = lipgloss.NewStyle().Faint(true)
	activeTab     = lipgloss.NewStyle().Bold(true).Reverse(true)
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	busyStyle     = lipgloss.NewStyle().Faint(true).Italic(true)
	pageErrStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	fieldKeyStyle = lipgloss.NewStyle().Faint(true)
)
