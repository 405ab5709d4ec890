package tui

import (
	"context"
	"time"

	"github.com/Veraticus/parceiro/internal/actions"
	"github.com/Veraticus/parceiro/internal/model"
	"github.com/Veraticus/parceiro/internal/notify"
	"github.com/Veraticus/parceiro/internal/report"
	"github.com/Veraticus/parceiro/internal/service"
	"github.com/Veraticus/parceiro/internal/tui/components"
	"github.com/Veraticus/parceiro/internal/tui/themes"
	"github.com/Veraticus/parceiro/internal/views"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Page is one entry of the navigation menu.
type Page int

// Pages in menu order.
const (
	PageDashboard Page = iota
	PageLeads
	PageSales
	PageCommissions
	PageMaterials
	PageProfile
)

var pageTitles = []string{
	"Dashboard",
	"Meus Leads",
	"Minhas Vendas",
	"Minhas Comissões",
	"Materiais de Apoio",
	"Perfil",
}

func (p Page) String() string {
	if p < 0 || int(p) >= len(pageTitles) {
		return "Desconhecida"
	}
	return pageTitles[p]
}

// Model holds the main TUI state.
type Model struct {
	theme         themes.Theme
	lastError     error
	store         service.RecordStore
	actions       *actions.Service
	notifications *notify.Channel
	snapshot      *service.Snapshot
	partnerName   string
	status        string
	config        Config
	keymap        KeyMap
	help          help.Model
	leads         components.ListModel[model.Lead]
	sales         components.ListModel[model.Sale]
	commissions   components.ListModel[model.CommissionEntry]
	profile       components.ProfileModel
	dashboard     components.DashboardModel
	materials     components.MaterialsModel
	sidebar       components.SidebarModel
	toast         components.ToastModel
	page          Page
	width         int
	height        int
	showHelp      bool
	quitting      bool
	ready         bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	theme := cfg.Theme
	now := cfg.Clock
	if now == nil {
		now = time.Now
	}

	h := help.New()
	h.ShowAll = true

	m := Model{
		theme:         theme,
		config:        cfg,
		keymap:        DefaultKeyMap(),
		help:          h,
		store:         cfg.Store,
		actions:       cfg.Actions,
		notifications: cfg.Notifications,
		partnerName:   cfg.PartnerName,
		width:         cfg.Width,
		height:        cfg.Height,
		page:          PageDashboard,

		dashboard: components.NewDashboardModel(theme, cfg.ReferralLink),
		leads: components.NewListModel(views.Leads(), nil, report.KindLeads, theme).
			WithEmptyAction("Copiar Meu Link"),
		sales: components.NewListModel(views.Sales(now), nil, report.KindSales, theme),
		commissions: components.NewListModel(views.Commissions(now), nil, report.KindCommissions, theme).
			WithExportLabel("Baixar Extrato").
			WithSummary(components.CommissionCards),
		materials: components.NewMaterialsModel(theme),
		profile:   components.NewProfileModel(theme),
		sidebar:   components.NewSidebarModel(theme, pageTitles),
		toast:     components.NewToastModel(theme),
	}
	m.handleResize()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadSnapshot(),
		waitForNotification(m.notifications),
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, handled := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case snapshotLoadedMsg:
		m.handleSnapshotLoaded(msg)
		return m, nil

	case switchPageMsg:
		m.activatePage(msg.page)
		return m, nil

	case notificationMsg:
		return m, tea.Batch(
			m.toast.Show(msg.notification),
			waitForNotification(m.notifications),
		)

	case components.ToastExpiredMsg:
		m.toast, _ = m.toast.Update(msg)
		return m, nil

	case actionDoneMsg:
		m.handleActionDone(msg)
		return m, nil

	case components.CopyLinkRequestMsg,
		components.OpenLinkRequestMsg,
		components.ExportRequestMsg,
		components.DownloadRequestMsg,
		components.PreviewRequestMsg,
		components.SaveProfileRequestMsg,
		components.SavePaymentRequestMsg:
		return m, m.handleRequest(msg)
	}

	cmd := m.updateActivePage(msg)
	return m, cmd
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.ready {
		return m.renderLoading()
	}

	if m.lastError != nil && m.snapshot == nil {
		return m.renderLoadError()
	}

	// Responsive layout based on terminal size
	if m.width < 80 {
		return m.renderCompactView()
	}

	return m.renderFullView()
}

// capturing reports whether the active page is taking text input, in which
// case only the force quit key is global.
func (m Model) capturing() bool {
	switch m.page {
	case PageLeads:
		return m.leads.Searching()
	case PageSales:
		return m.sales.Searching()
	case PageProfile:
		return m.profile.Capturing()
	default:
		return false
	}
}

// handleGlobalKeys handles keys that work on every page.
func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return tea.Quit, true
	}

	if m.capturing() {
		return nil, false
	}

	if m.showHelp {
		if key.Matches(msg, m.keymap.Help) || msg.String() == "esc" {
			m.showHelp = false
		}
		return nil, true
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return tea.Quit, true

	case key.Matches(msg, m.keymap.Help):
		m.showHelp = true
		return nil, true

	case key.Matches(msg, m.keymap.ClearScreen):
		return tea.ClearScreen, true

	case key.Matches(msg, m.keymap.Refresh):
		m.status = "Recarregando..."
		return m.loadSnapshot(), true

	case key.Matches(msg, m.keymap.NextPage):
		return switchPage(m.stepPage(1)), true

	case key.Matches(msg, m.keymap.PrevPage):
		return switchPage(m.stepPage(-1)), true

	case key.Matches(msg, m.keymap.GoToPage):
		return switchPage(Page(msg.Runes[0] - '1')), true
	}

	return nil, false
}

func (m Model) stepPage(delta int) Page {
	n := len(pageTitles)
	return Page(((int(m.page)+delta)%n + n) % n)
}

// activatePage shows a page as if it were opened for the first time: list
// filters are reset and profile edits are discarded.
func (m *Model) activatePage(p Page) {
	if p < 0 || int(p) >= len(pageTitles) {
		return
	}
	m.page = p
	m.sidebar.SetActive(int(p))
	m.status = ""

	snap := m.snapshot
	if snap == nil {
		return
	}

	switch p {
	case PageDashboard:
		m.dashboard.SetData(views.Summarize(snap.Leads, snap.Sales, snap.Commissions), snap.Activities)
	case PageLeads:
		m.leads.Activate(snap.Leads)
	case PageSales:
		m.sales.Activate(snap.Sales)
	case PageCommissions:
		m.commissions.Activate(snap.Commissions)
	case PageMaterials:
		m.materials.SetMaterials(snap.Materials)
	case PageProfile:
		if snap.Profile != nil {
			m.profile.SetProfile(*snap.Profile)
		}
	}
}

func (m *Model) handleSnapshotLoaded(msg snapshotLoadedMsg) {
	m.ready = true
	m.lastError = msg.err
	if msg.err != nil {
		return
	}

	m.snapshot = msg.snapshot
	m.status = ""
	if m.partnerName == "" && msg.snapshot.Profile != nil {
		m.partnerName = msg.snapshot.Profile.FullName
	}

	// Every page starts from the new records; the active one keeps focus.
	current := m.page
	for p := range pageTitles {
		m.activatePage(Page(p))
	}
	m.activatePage(current)
}

func (m *Model) handleActionDone(msg actionDoneMsg) {
	if msg.err != nil {
		m.lastError = msg.err
		m.status = ""
		return
	}
	m.lastError = nil
	m.status = msg.detail
}

// handleRequest runs the side effect a page asked for.
func (m Model) handleRequest(msg tea.Msg) tea.Cmd {
	svc := m.actions
	if svc == nil {
		return nil
	}
	link := m.config.ReferralLink

	switch msg := msg.(type) {
	case components.CopyLinkRequestMsg:
		return runAction("copy-link", func(ctx context.Context) (string, error) {
			return "", svc.CopyReferralLink(ctx, link)
		})

	case components.OpenLinkRequestMsg:
		return runAction("open-link", func(context.Context) (string, error) {
			return "", svc.OpenLink(link)
		})

	case components.ExportRequestMsg:
		return runAction("export", func(ctx context.Context) (string, error) {
			res, err := svc.ExportReport(ctx, msg.Kind, msg.Table)
			return res.Location, err
		})

	case components.DownloadRequestMsg:
		return runAction("download", func(context.Context) (string, error) {
			return "", svc.DownloadMaterial(msg.Material)
		})

	case components.PreviewRequestMsg:
		return runAction("preview", func(context.Context) (string, error) {
			return "", svc.PreviewMaterial(msg.Material)
		})

	case components.SaveProfileRequestMsg:
		return runAction("save-profile", func(context.Context) (string, error) {
			return "", svc.SaveProfile(msg.Profile)
		})

	case components.SavePaymentRequestMsg:
		return runAction("save-payment", func(context.Context) (string, error) {
			return "", svc.SavePaymentInfo(msg.Payment)
		})
	}
	return nil
}

// updateActivePage delegates a message to the page on screen.
func (m *Model) updateActivePage(msg tea.Msg) tea.Cmd {
	if m.snapshot == nil || m.showHelp {
		return nil
	}

	var cmd tea.Cmd
	switch m.page {
	case PageDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case PageLeads:
		m.leads, cmd = m.leads.Update(msg)
	case PageSales:
		m.sales, cmd = m.sales.Update(msg)
	case PageCommissions:
		m.commissions, cmd = m.commissions.Update(msg)
	case PageMaterials:
		m.materials, cmd = m.materials.Update(msg)
	case PageProfile:
		m.profile, cmd = m.profile.Update(msg)
	}
	return cmd
}

// handleResize adjusts component sizes when terminal resizes.
func (m *Model) handleResize() {
	width, height := m.contentSize()
	m.dashboard.Resize(width, height)
	m.leads.Resize(width, height)
	m.sales.Resize(width, height)
	m.commissions.Resize(width, height)
	m.materials.Resize(width, height)
	m.profile.Resize(width, height)
	m.sidebar.Resize(height)
	m.help.Width = width
}

// contentSize is the space left for the active page.
func (m Model) contentSize() (int, int) {
	// Header (2), status bar (1) and the border (2).
	height := max(m.height-5, 5)
	if m.width < 80 {
		return max(m.width-4, 20), max(height-1, 4)
	}
	return max(m.width-m.sidebar.Width()-5, 20), height
}
