package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/carbon/internal/handler"
	"github.com/MKhiriev/carbon/models"
)

const historyPageSize = 8

type statusModel struct {
	ctx     context.Context
	handler *handler.Handler
	info    models.AppBuildInfo

	spinner spinner.Model
	busy    bool

	status   models.SyncStatusResult
	account  models.AccountStatusResult
	history  []models.SyncAttempt
	dataPath string

	notice   string
	errMsg   string
	showInfo bool
	confirm  bool
}

func newStatusModel(ctx context.Context, h *handler.Handler, info models.AppBuildInfo) statusModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return statusModel{
		ctx:     ctx,
		handler: h,
		info:    info,
		spinner: s,
	}
}

func (m statusModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadStatus(), m.loadHistory())
}

func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case statusLoadedMsg:
		m.status = msg.status
		m.account = msg.account
		m.dataPath = msg.path
		return m, nil

	case historyLoadedMsg:
		m.history = msg.attempts
		return m, nil

	case syncDoneMsg:
		m.busy = false
		if msg.outcome.Success {
			m.errMsg = ""
			m.notice = msg.op + ": успешно"
			if msg.outcome.ShouldUpdateLocal {
				m.notice += " (документ обновлён с реплики)"
			}
		} else {
			m.notice = ""
			m.errMsg = msg.op + ": " + valueOrDash(msg.outcome.Error)
		}
		return m, tea.Batch(m.loadStatus(), m.loadHistory(), m.clearNoticeLater())

	case updateCheckedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = "проверка обновлений: " + msg.err.Error()
		} else if msg.info.Available {
			m.notice = "доступно обновление " + valueOrDash(msg.info.Version) + " (U — скачать)"
		} else {
			m.notice = "обновлений нет"
		}
		return m, m.clearNoticeLater()

	case installDoneMsg:
		m.busy = false
		if msg.resp.Installed {
			m.notice = "обновление скачано: " + valueOrDash(msg.resp.Path)
		} else {
			m.errMsg = "обновление: " + valueOrDash(msg.resp.Error)
		}
		return m, m.clearNoticeLater()

	case initDoneMsg:
		m.busy = false
		if msg.resp.Initialized {
			m.notice = "синхронизация инициализирована"
			if !msg.resp.Subscriptions {
				m.notice += " (подписки не зарегистрированы)"
			}
		} else {
			m.errMsg = "инициализация не удалась"
		}
		return m, tea.Batch(m.loadStatus(), m.clearNoticeLater())

	case deleteDoneMsg:
		m.busy = false
		if msg.deleted {
			m.notice = "данные на реплике удалены"
		} else {
			m.errMsg = "не удалось удалить данные на реплике"
		}
		return m, tea.Batch(m.loadStatus(), m.loadHistory(), m.clearNoticeLater())

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "буфер обмена: " + msg.err.Error()
		} else {
			m.notice = "путь скопирован в буфер обмена"
		}
		return m, m.clearNoticeLater()

	case clearStatusMsg:
		m.notice = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m statusModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.showInfo {
		if key.Matches(msg, keys.esc) {
			m.showInfo = false
		}
		return m, nil
	}

	if m.confirm {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirm = false
			m.busy = true
			return m, m.deleteRemote()
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.confirm = false
		}
		return m, nil
	}

	if m.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.sync):
		m.busy = true
		return m, m.runSync("синхронизация", m.handler.FullSync)
	case key.Matches(msg, keys.push):
		m.busy = true
		return m, m.runSync("отправка", m.handler.Push)
	case key.Matches(msg, keys.pull):
		m.busy = true
		return m, m.runSync("загрузка", m.handler.Pull)
	case key.Matches(msg, keys.update):
		m.busy = true
		return m, m.checkUpdates()
	case key.Matches(msg, keys.install):
		m.busy = true
		return m, m.installUpdate()
	case key.Matches(msg, keys.init):
		m.busy = true
		return m, m.initSync()
	case key.Matches(msg, keys.delete):
		m.confirm = true
	case key.Matches(msg, keys.copy):
		return m, m.copyDataPath()
	case key.Matches(msg, keys.info):
		m.showInfo = true
	case key.Matches(msg, keys.refresh):
		return m, tea.Batch(m.loadStatus(), m.loadHistory())
	}

	return m, nil
}

func (m statusModel) View() string {
	if m.showInfo {
		return appStyle.Render(renderBuildInfoWindow(m.info))
	}

	var b strings.Builder

	b.WriteString("Статус: ")
	if m.busy {
		b.WriteString(m.spinner.View() + " выполняется...")
	} else {
		b.WriteString(m.status.Status.String())
	}
	if m.status.Error != nil {
		b.WriteString(" (" + fitText(*m.status.Error, 40) + ")")
	}
	b.WriteString("\n")

	b.WriteString("Аккаунт: " + m.account.Status.String() + "\n")
	b.WriteString("Файл: " + fitText(m.dataPath, 60) + "\n\n")

	b.WriteString(titleStyle.Render("Последние операции") + "\n")
	if len(m.history) == 0 {
		b.WriteString("  -\n")
	}
	for _, attempt := range m.history {
		b.WriteString("  " + renderAttempt(attempt) + "\n")
	}

	if m.confirm {
		b.WriteString("\n" + errorStyle.Render("Удалить данные на реплике? (y/n)") + "\n")
	}
	if m.notice != "" {
		b.WriteString("\n" + noticeStyle.Render(m.notice) + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(fitText(m.errMsg, 70)) + "\n")
	}

	hotKeys := "s: синхронизация  p: отправка  l: загрузка  u: обновления  i: инициализация\n" +
		"  d: удалить на реплике  c: копировать путь  b: о программе  r: обновить экран"

	return appStyle.Render(renderPage(titleStyle.Render("CARBON"), b.String(), helpStyle.Render(hotKeys)))
}

func renderAttempt(attempt models.SyncAttempt) string {
	mark := "✓"
	if !attempt.Success {
		mark = "✗"
	}
	line := fmt.Sprintf("%s %-9s %s", mark, attempt.Op, attempt.FinishedAt.Local().Format("02.01 15:04:05"))
	if attempt.Conflict {
		line += "  конфликт"
	}
	if attempt.Error != nil {
		line += "  " + fitText(*attempt.Error, 30)
	}
	return line
}

// ── commands ────────────────────────────────────────────────────────────────

func (m statusModel) loadStatus() tea.Cmd {
	return func() tea.Msg {
		return statusLoadedMsg{
			status:  m.handler.GetSyncStatus(m.ctx),
			account: m.handler.GetAccountStatus(m.ctx),
			path:    m.handler.GetDataPath(m.ctx).Path,
		}
	}
}

func (m statusModel) loadHistory() tea.Cmd {
	return func() tea.Msg {
		return historyLoadedMsg{attempts: m.handler.RecentActivity(m.ctx, historyPageSize)}
	}
}

func (m statusModel) runSync(op string, call func(context.Context) models.SyncOutcome) tea.Cmd {
	return func() tea.Msg {
		return syncDoneMsg{op: op, outcome: call(m.ctx)}
	}
}

func (m statusModel) checkUpdates() tea.Cmd {
	return func() tea.Msg {
		info, err := m.handler.CheckForUpdates(m.ctx)
		return updateCheckedMsg{info: info, err: err}
	}
}

func (m statusModel) installUpdate() tea.Cmd {
	return func() tea.Msg {
		return installDoneMsg{resp: m.handler.InstallUpdate(m.ctx)}
	}
}

func (m statusModel) initSync() tea.Cmd {
	return func() tea.Msg {
		return initDoneMsg{resp: m.handler.InitSync(m.ctx)}
	}
}

func (m statusModel) deleteRemote() tea.Cmd {
	return func() tea.Msg {
		return deleteDoneMsg{deleted: m.handler.DeleteRemoteData(m.ctx).Deleted}
	}
}

func (m statusModel) copyDataPath() tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(m.handler.GetDataPath(m.ctx).Path)}
	}
}

func (m statusModel) clearNoticeLater() tea.Cmd {
	return tea.Tick(5*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
