package tabs

import (
	"github.com/jask/venturedesk/core"
	"github.com/jask/venturedesk/widgets"
)

// StaticTab is a routed view made only of static panes laid out side by
// side. The video, documents, payments and security views use it.
type StaticTab struct {
	paneTab
	id    string
	title string
	route string
	order []string
}

func newStaticTab(id, title, route string, panes ...*StaticPane) *StaticTab {
	hosted := make([]Pane, 0, len(panes))
	order := make([]string, 0, len(panes))
	for _, p := range panes {
		hosted = append(hosted, p)
		order = append(order, p.ID())
	}
	return &StaticTab{paneTab: paneTab{host: NewPaneHost(hosted...)}, id: id, title: title, route: route, order: order}
}

func (t *StaticTab) ID() string    { return t.id }
func (t *StaticTab) Title() string { return t.title }
func (t *StaticTab) Route() string { return t.route }

func (t *StaticTab) Build(m *core.Model) widgets.Widget {
	ws := make([]widgets.Widget, 0, len(t.order))
	for _, id := range t.order {
		ws = append(ws, t.host.BuildPane(id))
	}
	return widgets.HStack{Widgets: ws, Gap: 1}
}

func NewVideoCallTab() *StaticTab {
	return newStaticTab("video-call", "Video Call", "/video-call",
		NewStaticPane("stage", "Call", "pane:video:stage", 'c', true,
			"No active call.\n\nStart a call from a confirmed meeting.", 0),
		NewStaticPane("devices", "Devices", "pane:video:devices", 'd', true,
			"Camera      off\nMicrophone  muted\nScreen      not shared", 0),
	)
}

func NewDocumentsTab() *StaticTab {
	return newStaticTab("documents", "Document Chamber", "/documents",
		NewStaticPane("files", "Documents", "pane:documents:files", 'f', true,
			"No documents uploaded.", 0),
		NewStaticPane("signatures", "Signatures", "pane:documents:signatures", 's', true,
			"Nothing awaiting signature.", 0),
	)
}

func NewPaymentsTab() *StaticTab {
	return newStaticTab("payments", "Payments", "/payments",
		NewStaticPane("wallet", "Wallet", "pane:payments:wallet", 'w', true,
			"Balance  $0.00", 0),
		NewStaticPane("history", "Transactions", "pane:payments:history", 'h', true,
			"No transactions yet.", 0),
	)
}

func NewSecurityTab() *StaticTab {
	return newStaticTab("security", "Security", "/security",
		NewStaticPane("auth", "Two-Factor Authentication", "pane:security:auth", 'a', true,
			"Two-factor authentication is not enabled.", 0),
		NewStaticPane("sessions", "Sessions", "pane:security:sessions", 's', true,
			"1 active session (this terminal).", 0),
	)
}
