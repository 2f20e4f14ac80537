package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/watchface-sync/internal/service"
	"github.com/MKhiriev/watchface-sync/models"
)

func (m model) View() string {
	if m.showInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder
	b.WriteString("Состояние: ")
	b.WriteString(m.describeState())
	b.WriteString("\n")
	b.WriteString("Телефон: ")
	b.WriteString(describeNode(m.state))
	b.WriteString("\n")
	b.WriteString("Синхронизация батареи: ")
	b.WriteString(m.describePreference())
	b.WriteString("\n")
	b.WriteString("Батарея телефона: ")
	b.WriteString(describeBattery(m.battery))

	page := renderPage(titleStyle.Render("WATCHFACE SYNC"), b.String(), helpStyle.Render(m.help.View(keys)))

	if m.status != "" {
		page += "\n\n" + toastStyle.Render(m.status)
	}
	if m.errMsg != "" {
		page += "\n\n" + errorStyle.Render(m.errMsg)
	}
	return appStyle.Render(page)
}

func (m model) describeState() string {
	switch st := m.state.(type) {
	case models.StateLoading:
		return m.spinner.View() + " Поиск телефона..."
	case models.StatePhoneNotFound:
		return "Телефон не найден"
	case models.StatePhoneFound:
		return m.spinner.View() + " Телефон найден, запрашиваем статус..."
	case models.StateWaitingForResponse:
		return m.spinner.View() + " Ожидание ответа телефона..."
	case models.StatePhoneStatusResponse:
		return "Подтверждено телефоном"
	case models.StateSendingRequest:
		if st.Activating {
			return m.spinner.View() + " Включение..."
		}
		return m.spinner.View() + " Выключение..."
	case models.StateError:
		return errorStyle.Render(humanizeErrorKind(st.ErrorKind)) + " (r: повторить)"
	}
	return "-"
}

func describeNode(s models.SyncState) string {
	node, ok := models.StateNode(s)
	if !ok {
		return "-"
	}
	name := node.DisplayName
	if name == "" {
		name = node.ID
	}
	if node.Nearby {
		return fmt.Sprintf("%s (%s, рядом)", name, fitText(node.ID, 24))
	}
	return fmt.Sprintf("%s (%s)", name, fitText(node.ID, 24))
}

// describePreference prefers the value confirmed by the phone and falls back
// to the locally cached one.
func (m model) describePreference() string {
	switch st := m.state.(type) {
	case models.StatePhoneStatusResponse:
		return onOff(st.SyncActivated)
	case models.StateError:
		return onOff(st.SyncActivated) + inactiveStyle.Render(" (локально)")
	case models.StatePhoneNotFound:
		return onOff(st.SyncActivated) + inactiveStyle.Render(" (локально)")
	}
	if m.cachedErr != nil {
		return "-"
	}
	return onOff(m.cached) + inactiveStyle.Render(" (локально)")
}

func describeBattery(b service.PhoneBattery) string {
	if !b.Known {
		return "-"
	}
	return fmt.Sprintf("%d%%", b.Level)
}

func onOff(v bool) string {
	if v {
		return activeStyle.Render("включена")
	}
	return inactiveStyle.Render("выключена")
}
