package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mktflow/app"
	"mktflow/model"
)

type focusPane int

const (
	focusViews focusPane = iota
	focusContent
)

func (f focusPane) String() string {
	if f == focusContent {
		return "contenido"
	}
	return "vistas"
}

type uiMode int

const (
	modeNormal uiMode = iota
	modeAddCampaign
	modeItemForm
	modeConfirmDelete
	modeConfirmClear
)

type deleteKind int

const (
	deleteNone deleteKind = iota
	deleteCampaign
	deleteItem
)

type formStep int

const (
	stepTitle formStep = iota
	stepDate
	stepCategory
	stepDescription
)

// Model is the bubbletea model for the calendar dashboard: a views pane on
// the left (general + campaigns) and the active view's content on the right.
type Model struct {
	svc *app.Service

	focus      focusPane
	mode       uiMode
	viewCursor int
	itemCursor int

	input textinput.Model

	draft       model.ContentItem
	editing     bool
	step        formStep
	categoryIdx int

	confirmKind deleteKind
	confirmID   string
	confirmName string

	showHelp bool

	status    string
	statusErr bool

	width  int
	height int
}

// NewModel builds the dashboard over an already loaded service.
func NewModel(svc *app.Service, startupStatus string) *Model {
	status := strings.TrimSpace(startupStatus)
	if status == "" {
		status = "Listo"
	}

	input := textinput.New()
	input.CharLimit = 200
	input.Width = 48

	m := &Model{
		svc:    svc,
		focus:  focusViews,
		mode:   modeNormal,
		status: status,
		input:  input,
	}
	m.syncViewCursor()
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch m.mode {
		case modeAddCampaign, modeItemForm:
			return m, m.updateInputMode(msg)
		case modeConfirmDelete, modeConfirmClear:
			m.updateConfirmMode(msg)
		default:
			if quit := m.updateNormalMode(msg); quit {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m *Model) updateNormalMode(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+c", "q":
		return true
	case "tab":
		if m.focus == focusViews {
			m.focus = focusContent
		} else {
			m.focus = focusViews
		}
		m.setStatus(fmt.Sprintf("Foco en %s", m.focus.String()), false)
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "enter":
		m.activateView()
	case "a":
		m.startAdd()
	case "e":
		m.startEditItem()
	case "x":
		m.cycleStatus()
	case "d":
		m.startDeleteConfirm()
	case "D":
		m.startClearConfirm()
	case "u":
		m.undo()
	case "r":
		m.redo()
	case "?":
		m.showHelp = !m.showHelp
		if m.showHelp {
			m.setStatus("Atajos abiertos (pulsa ? o Esc para cerrar)", false)
		} else {
			m.setStatus("Atajos ocultos", false)
		}
	case "esc":
		if m.showHelp {
			m.showHelp = false
			m.setStatus("Atajos ocultos", false)
		}
	}

	m.ensureSelection()
	return false
}

func (m *Model) updateInputMode(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.mode = modeNormal
		m.input.Blur()
		m.input.SetValue("")
		m.setStatus("Cancelado", false)
		return nil
	case "enter":
		m.applyInput()
		return nil
	}

	if m.mode == modeItemForm && m.step == stepCategory {
		switch msg.String() {
		case "j", "down":
			m.categoryIdx = clamp(m.categoryIdx+1, 0, len(model.ContentCategories)-1)
		case "k", "up":
			m.categoryIdx = clamp(m.categoryIdx-1, 0, len(model.ContentCategories)-1)
		case "1", "2", "3", "4", "5", "6":
			m.categoryIdx = int(msg.String()[0] - '1')
		}
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) updateConfirmMode(msg tea.KeyMsg) {
	switch strings.ToLower(msg.String()) {
	case "y":
		if m.mode == modeConfirmClear {
			m.confirmClear()
			return
		}
		m.confirmDelete()
	case "n", "esc", "enter":
		m.confirmKind = deleteNone
		m.confirmID = ""
		m.confirmName = ""
		m.mode = modeNormal
		m.setStatus("Acción cancelada", false)
	}
}

func (m *Model) applyInput() {
	text := strings.TrimSpace(m.input.Value())
	switch m.mode {
	case modeAddCampaign:
		if err := m.svc.AddCampaign(text); err != nil {
			switch err {
			case app.ErrInvalidName:
				m.setStatus("El nombre de la campaña no puede estar vacío", true)
			case app.ErrReservedName:
				m.setStatus("\"general\" es un nombre reservado", true)
			case app.ErrCampaignExists:
				m.setStatus("Ya existe una campaña con ese nombre", true)
			default:
				m.setStatus("Error al crear campaña: "+err.Error(), true)
			}
			return
		}
		m.mode = modeNormal
		m.input.Blur()
		m.input.SetValue("")
		m.syncViewCursor()
		m.setStatus("Campaña creada: "+text, false)
	case modeItemForm:
		m.advanceForm(text)
	}
}

func (m *Model) advanceForm(text string) {
	switch m.step {
	case stepTitle:
		if text == "" {
			m.setStatus("El título no puede estar vacío", true)
			return
		}
		m.draft.Title = text
		m.step = stepDate
		m.input.SetValue("")
		if !m.draft.Date.IsZero() {
			m.input.SetValue(m.draft.Date.Format("2006-01-02"))
		}
		m.input.Placeholder = "2026-09-15"
	case stepDate:
		date, err := parseFormDate(text)
		if err != nil {
			m.setStatus("Fecha no válida (usa AAAA-MM-DD o DD/MM/AAAA)", true)
			return
		}
		m.draft.Date = date
		m.step = stepCategory
	case stepCategory:
		m.draft.Category = model.ContentCategories[m.categoryIdx]
		m.step = stepDescription
		m.input.SetValue(m.draft.Description)
		m.input.Placeholder = "Descripción (opcional)"
	case stepDescription:
		m.draft.Description = strings.TrimSpace(m.input.Value())
		m.submitForm()
	}
}

func (m *Model) submitForm() {
	var err error
	if m.editing {
		err = m.svc.UpdateContent(m.draft)
	} else {
		_, err = m.svc.AddContent(m.draft)
	}
	if err != nil {
		m.setStatus("Error al guardar contenido: "+err.Error(), true)
		return
	}

	m.mode = modeNormal
	m.input.Blur()
	m.input.SetValue("")
	m.itemCursor = m.indexOfItem(m.draft.ID)
	if m.editing {
		m.setStatus("Contenido actualizado • u deshace", false)
	} else {
		m.setStatus("Contenido agregado • u deshace", false)
	}
	m.draft = model.ContentItem{}
	m.editing = false
}

func (m *Model) moveCursor(delta int) {
	if m.focus == focusViews {
		views := m.viewNames()
		m.viewCursor = clamp(m.viewCursor+delta, 0, len(views)-1)
		return
	}

	items := m.svc.Content()
	if len(items) == 0 {
		return
	}
	m.itemCursor = clamp(m.itemCursor+delta, 0, len(items)-1)
}

func (m *Model) activateView() {
	if m.focus != focusViews {
		return
	}
	views := m.viewNames()
	if m.viewCursor < 0 || m.viewCursor >= len(views) {
		return
	}
	name := views[m.viewCursor]
	if err := m.svc.SetActiveView(name); err != nil {
		m.setStatus("Error al cambiar de vista: "+err.Error(), true)
		return
	}
	m.itemCursor = 0
	m.setStatus("Vista activa: "+displayView(name), false)
}

func (m *Model) startAdd() {
	if m.focus == focusViews {
		m.mode = modeAddCampaign
		m.input.SetValue("")
		m.input.Placeholder = "Nombre de la campaña"
		m.input.Focus()
		return
	}

	m.mode = modeItemForm
	m.editing = false
	m.draft = model.ContentItem{Status: model.StatusTodo}
	m.step = stepTitle
	m.categoryIdx = 0
	m.input.SetValue("")
	m.input.Placeholder = "Título del contenido"
	m.input.Focus()
}

func (m *Model) startEditItem() {
	if m.focus != focusContent {
		m.setStatus("Editar contenido: cambia el foco a Contenido (Tab)", false)
		return
	}
	item, ok := m.selectedItem()
	if !ok {
		m.setStatus("Ningún contenido seleccionado", true)
		return
	}
	m.mode = modeItemForm
	m.editing = true
	m.draft = item
	m.step = stepTitle
	m.categoryIdx = categoryIndex(item.Category)
	m.input.SetValue(item.Title)
	m.input.Placeholder = "Título del contenido"
	m.input.Focus()
}

func (m *Model) cycleStatus() {
	if m.focus != focusContent {
		m.setStatus("Cambiar estado: cambia el foco a Contenido (Tab)", false)
		return
	}
	item, ok := m.selectedItem()
	if !ok {
		m.setStatus("Ningún contenido seleccionado", true)
		return
	}
	next := nextStatus(item.Status)
	if err := m.svc.UpdateStatus(item.ID, next); err != nil {
		m.setStatus("Error al cambiar estado: "+err.Error(), true)
		return
	}
	m.setStatus("Estado: "+string(next), false)
}

func (m *Model) startDeleteConfirm() {
	if m.focus == focusViews {
		views := m.viewNames()
		if m.viewCursor <= 0 || m.viewCursor >= len(views) {
			m.setStatus("La vista general no se puede eliminar", false)
			return
		}
		name := views[m.viewCursor]
		count := len(m.svc.State().Campaigns[name])
		label := name
		if count > 0 {
			label = fmt.Sprintf("%s (%d contenidos)", name, count)
		}
		m.mode = modeConfirmDelete
		m.confirmKind = deleteCampaign
		m.confirmID = name
		m.confirmName = label
		return
	}

	item, ok := m.selectedItem()
	if !ok {
		m.setStatus("Ningún contenido seleccionado", true)
		return
	}
	m.mode = modeConfirmDelete
	m.confirmKind = deleteItem
	m.confirmID = item.ID
	m.confirmName = item.Title
}

func (m *Model) startClearConfirm() {
	if m.focus != focusContent {
		m.setStatus("Vaciar vista: cambia el foco a Contenido (Tab)", false)
		return
	}
	count := len(m.svc.Content())
	if count == 0 {
		m.setStatus("No hay contenido que vaciar en esta vista", false)
		return
	}
	m.mode = modeConfirmClear
	m.confirmName = fmt.Sprintf("%s (%d contenidos)", displayView(m.svc.ActiveView()), count)
}

func (m *Model) confirmDelete() {
	switch m.confirmKind {
	case deleteCampaign:
		m.svc.DeleteCampaign(m.confirmID)
		m.syncViewCursor()
		m.persistStatus("Campaña eliminada • u deshace")
	case deleteItem:
		m.svc.DeleteContent(m.confirmID)
		m.persistStatus("Contenido eliminado • u deshace")
	}
	m.mode = modeNormal
	m.confirmKind = deleteNone
	m.confirmID = ""
	m.confirmName = ""
	m.ensureSelection()
}

func (m *Model) confirmClear() {
	m.svc.SetContent([]model.ContentItem{})
	m.mode = modeNormal
	m.confirmName = ""
	m.itemCursor = 0
	m.persistStatus("Vista vaciada • u deshace")
}

func (m *Model) undo() {
	if err := m.svc.Undo(); err != nil {
		if err == app.ErrNothingToUndo {
			m.setStatus("Nada que deshacer", false)
			return
		}
		m.setStatus("Error al deshacer: "+err.Error(), true)
		return
	}
	m.syncViewCursor()
	m.persistStatus("Deshecho • r rehace")
}

func (m *Model) redo() {
	if err := m.svc.Redo(); err != nil {
		if err == app.ErrNothingToRedo {
			m.setStatus("Nada que rehacer", false)
			return
		}
		m.setStatus("Error al rehacer: "+err.Error(), true)
		return
	}
	m.syncViewCursor()
	m.persistStatus("Rehecho")
}

func (m *Model) persistStatus(success string) {
	// The service persists on every committed change; the TUI only reports.
	m.ensureSelection()
	m.setStatus(success, false)
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m *Model) ensureSelection() {
	views := m.viewNames()
	m.viewCursor = clamp(m.viewCursor, 0, len(views)-1)

	items := m.svc.Content()
	if len(items) == 0 {
		m.itemCursor = 0
		return
	}
	m.itemCursor = clamp(m.itemCursor, 0, len(items)-1)
}

// syncViewCursor points the cursor at the active view after campaign
// lifecycle changes or undo/redo.
func (m *Model) syncViewCursor() {
	active := m.svc.ActiveView()
	for i, name := range m.viewNames() {
		if name == active {
			m.viewCursor = i
			return
		}
	}
	m.viewCursor = 0
}

func (m *Model) viewNames() []string {
	return append([]string{model.GeneralView}, m.svc.Campaigns()...)
}

func (m *Model) selectedItem() (model.ContentItem, bool) {
	items := m.svc.Content()
	if len(items) == 0 {
		return model.ContentItem{}, false
	}
	if m.itemCursor < 0 || m.itemCursor >= len(items) {
		m.itemCursor = 0
	}
	return items[m.itemCursor], true
}

func (m *Model) indexOfItem(id string) int {
	items := m.svc.Content()
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	if len(items) == 0 {
		return 0
	}
	return len(items) - 1
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "cargando..."
	}

	title := lipgloss.NewStyle().Bold(true).Render("mktflow")
	summary := fmt.Sprintf("foco: %s • vista: %s", m.focus.String(), displayView(m.svc.ActiveView()))
	if m.svc.CanUndo() {
		summary += " • u deshace"
	}
	if m.svc.CanRedo() {
		summary += " • r rehace"
	}
	header := lipgloss.JoinHorizontal(lipgloss.Left,
		title,
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("  "+summary),
	)

	viewW := m.viewportWidth()
	const paneGap = 1
	const rightInset = 6
	outerPaneW := viewW - rightInset
	if outerPaneW < 40 {
		outerPaneW = viewW
	}
	innerPaneW := outerPaneW - 2
	if innerPaneW < 20 {
		innerPaneW = outerPaneW
	}

	panelH := m.height - 6
	if panelH < 8 {
		panelH = 8
	}
	innerPaneH := panelH - 2
	if innerPaneH < 6 {
		innerPaneH = 6
	}

	leftW, rightW := m.paneWidths(innerPaneW, paneGap)
	split := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderViewsPanel(leftW, innerPaneH),
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("│"),
		m.renderContentPanel(rightW, innerPaneH),
	)

	frameColor := lipgloss.Color("240")
	if m.mode == modeNormal {
		frameColor = lipgloss.Color("39")
	}
	panes := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(frameColor).
		Width(outerPaneW).
		Height(panelH).
		Render(split)

	if outerPaneW < viewW {
		panes = lipgloss.JoinHorizontal(lipgloss.Top, panes, strings.Repeat(" ", viewW-outerPaneW))
	}

	statusText := m.status
	if statusText == "" {
		statusText = "Listo"
	}
	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("70"))
	if m.statusErr {
		statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	}

	rightHint := "? atajos"
	if m.showHelp {
		rightHint = "Esc/? cerrar atajos"
	}
	footerLine := m.renderFooter(statusText, statusStyle, rightHint)

	promptLine := m.renderPrompt(viewW)

	parts := []string{header}

	if m.showHelp {
		popupW := viewW - 8
		if popupW > 96 {
			popupW = 96
		}
		if popupW < 56 {
			popupW = viewW - 2
		}
		if popupW < 40 {
			popupW = 40
		}
		popup := m.renderHelpOverlay(popupW)
		panes = lipgloss.Place(viewW, panelH, lipgloss.Center, lipgloss.Center, popup)
	}

	parts = append(parts, panes, footerLine)
	if promptLine != "" && !m.showHelp {
		parts = append(parts, promptLine)
	}
	return strings.Join(parts, "\n")
}

func (m *Model) renderPrompt(width int) string {
	prompt := ""
	switch m.mode {
	case modeAddCampaign:
		prompt = "Nueva campaña: " + m.input.View()
	case modeItemForm:
		switch m.step {
		case stepTitle:
			prompt = "Título: " + m.input.View()
		case stepDate:
			prompt = "Fecha: " + m.input.View()
		case stepCategory:
			prompt = "Categoría (j/k o 1..6, Enter confirma): " + renderCategoryPicker(m.categoryIdx)
		case stepDescription:
			prompt = "Descripción: " + m.input.View()
		}
	case modeConfirmDelete:
		target := "contenido"
		if m.confirmKind == deleteCampaign {
			target = "campaña"
		}
		prompt = fmt.Sprintf("¿Eliminar %s \"%s\"? [y/N]", target, m.confirmName)
	case modeConfirmClear:
		prompt = fmt.Sprintf("¿Vaciar la vista %s? [y/N]", m.confirmName)
	}
	if prompt == "" {
		return ""
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Width(width).Render(prompt)
}

func renderCategoryPicker(selected int) string {
	parts := make([]string, len(model.ContentCategories))
	for i, c := range model.ContentCategories {
		label := fmt.Sprintf("%d %s", i+1, c)
		if i == selected {
			label = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Render("[" + label + "]")
		}
		parts[i] = label
	}
	return strings.Join(parts, "  ")
}

func (m *Model) viewportWidth() int {
	if m.width <= 0 {
		return 1
	}
	// Reserve one column to avoid clipping the right border on some
	// terminals.
	if m.width > 1 {
		return m.width - 1
	}
	return m.width
}

func (m *Model) paneWidths(total, gap int) (int, int) {
	if total <= 0 {
		return 24, 30
	}
	if gap < 0 {
		gap = 0
	}

	minLeft := 20
	minRight := 30
	if total < minLeft+minRight+gap {
		left := total / 3
		if left < 12 {
			left = 12
		}
		right := total - left - gap
		if right < 12 {
			right = 12
			left = total - right - gap
			if left < 10 {
				left = 10
			}
		}
		return left, right
	}

	left := total / 4
	if left < 22 {
		left = 22
	}
	if left > 34 {
		left = 34
	}

	right := total - left - gap
	if right < minRight {
		right = minRight
		left = total - right - gap
	}
	if left < minLeft {
		left = minLeft
		right = total - left - gap
	}

	return left, right
}

func (m *Model) renderFooter(statusText string, statusStyle lipgloss.Style, rightHint string) string {
	left := strings.TrimSpace(statusText)
	right := strings.TrimSpace(rightHint)
	if left == "" {
		left = "Listo"
	}
	if right == "" {
		right = "? atajos"
	}

	leftW := utf8.RuneCountInString(left)
	rightW := utf8.RuneCountInString(right)
	width := m.viewportWidth()
	if width <= 0 {
		width = leftW + rightW + 2
	}

	if leftW+rightW+1 > width {
		maxLeft := width - rightW - 1
		if maxLeft < 8 {
			maxLeft = 8
		}
		left = truncateRunes(left, maxLeft)
		leftW = utf8.RuneCountInString(left)
	}

	padding := width - leftW - rightW
	if padding < 1 {
		padding = 1
	}

	rightStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	line := statusStyle.Render(left) + strings.Repeat(" ", padding) + rightStyle.Render(right)
	return lipgloss.NewStyle().Width(width).Render(line)
}

func (m *Model) renderHelpOverlay(width int) string {
	title := lipgloss.NewStyle().Bold(true).Render("Atajos")
	section := lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Bold(true)
	line := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	rows := []string{
		title,
		"",
		section.Render("Globales"),
		line.Render("  Tab alterna foco • j/k navega • q sale"),
		line.Render("  u deshace • r rehace • ? abre/cierra atajos"),
		"",
		section.Render("Vistas (con foco en Vistas)"),
		line.Render("  a crea campaña • d elimina campaña • Enter activa vista"),
		"",
		section.Render("Contenido (con foco en Contenido)"),
		line.Render("  a agrega • e edita • x cambia estado • d elimina"),
		line.Render("  D vacía la vista activa"),
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("244")).
		Padding(1, 2)

	return style.Width(width).Render(strings.Join(rows, "\n"))
}

func (m *Model) renderViewsPanel(width, height int) string {
	views := m.viewNames()
	active := m.svc.ActiveView()
	state := m.svc.State()

	lines := make([]string, 0, len(views)+1)
	lines = append(lines, panelTitleStyled("Vistas", m.focus == focusViews))
	for i, name := range views {
		cursor := " "
		if i == m.viewCursor {
			cursor = "▸"
		}
		marker := " "
		if name == active {
			marker = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render("●")
		}
		count := len(state.General)
		if name != model.GeneralView {
			count = len(state.Campaigns[name])
		}
		line := fmt.Sprintf("%s %s %s (%d)", cursor, marker, displayView(name), count)
		if i == m.viewCursor {
			style := lipgloss.NewStyle().Bold(true)
			if m.focus == focusViews {
				style = style.Foreground(lipgloss.Color("229"))
			}
			line = style.Render(line)
		}
		lines = append(lines, line)
	}

	panelStyle := lipgloss.NewStyle().
		Width(width).
		Height(height)
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderContentPanel(width, height int) string {
	items := m.svc.Content()
	title := fmt.Sprintf("Contenido — %s", displayView(m.svc.ActiveView()))

	lines := make([]string, 0, len(items)+2)
	lines = append(lines, panelTitleStyled(title, m.focus == focusContent))

	if len(items) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render("Vista vacía. Pulsa 'a' para agregar contenido."))
	} else {
		for i, item := range items {
			cursor := " "
			if i == m.itemCursor {
				cursor = "▸"
			}
			date := item.Date.Format("02/01")
			line := fmt.Sprintf("%s %s %s %s  %s",
				cursor,
				statusIndicator(item.Status),
				date,
				categoryGlyph(item.Category),
				truncateRunes(item.Title, width-16),
			)
			if i == m.itemCursor {
				style := lipgloss.NewStyle().Bold(true)
				if m.focus == focusContent {
					style = style.Foreground(lipgloss.Color("229"))
				}
				line = style.Render(line)
			}
			lines = append(lines, line)
		}
	}

	panelStyle := lipgloss.NewStyle().
		Width(width).
		Height(height)
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func panelTitleStyled(title string, active bool) string {
	base := lipgloss.NewStyle().Bold(true)
	if !active {
		return base.Render(title)
	}
	text := base.Foreground(lipgloss.Color("229")).Render(title)
	marker := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")).Render("*")
	return lipgloss.JoinHorizontal(lipgloss.Left, text, " ", marker)
}

func displayView(name string) string {
	if name == model.GeneralView {
		return "General"
	}
	return name
}

func statusIndicator(s model.ContentStatus) string {
	switch s {
	case model.StatusInProgress:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Render("◐")
	case model.StatusDone:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("40")).Render("●")
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Render("○")
	}
}

// categoryGlyph returns the emoji prefix of a category tag.
func categoryGlyph(c model.ContentCategory) string {
	fields := strings.Fields(string(c))
	if len(fields) == 0 {
		return " "
	}
	return fields[0]
}

func categoryIndex(c model.ContentCategory) int {
	for i, known := range model.ContentCategories {
		if known == c {
			return i
		}
	}
	return 0
}

func nextStatus(s model.ContentStatus) model.ContentStatus {
	switch s {
	case model.StatusTodo:
		return model.StatusInProgress
	case model.StatusInProgress:
		return model.StatusDone
	default:
		return model.StatusTodo
	}
}

func parseFormDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{"2006-01-02", "02/01/2006", "02/01/06"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return model.Date(t.Year(), t.Month(), t.Day()), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date: %q", raw)
}

func truncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	r := []rune(s)
	return string(r[:max-1]) + "…"
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
