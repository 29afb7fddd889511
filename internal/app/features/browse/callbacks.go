// internal/app/features/browse/callbacks.go
package browse

import (
	"fmt"
	"html"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Krill-lover/welccom/internal/app/bot"
	"github.com/Krill-lover/welccom/internal/app/store/catalog"
	"github.com/Krill-lover/welccom/internal/app/store/stats"
	"github.com/Krill-lover/welccom/internal/app/system/subjects"
	"github.com/Krill-lover/welccom/internal/domain/models"
)

// ShowMainMenu rewrites the current message into the main menu.
func (h *Handler) ShowMainMenu(cb *tgbotapi.CallbackQuery) {
	h.Stats.RegisterAction(cb.From.ID, "main_menu", "")
	menu := MainMenuKeyboard(h.Admins.IsAdmin(cb.From.ID))
	h.Gate.EditText(cb.Message.Chat.ID, cb.Message.MessageID, "🎯 Главное меню", &menu)
}

func (h *Handler) ShowHelp(cb *tgbotapi.CallbackQuery) {
	h.Stats.RegisterAction(cb.From.ID, "help_callback", "")
	menu := MainMenuKeyboard(h.Admins.IsAdmin(cb.From.ID))
	h.Gate.EditText(cb.Message.Chat.ID, cb.Message.MessageID, helpText, &menu)
}

func (h *Handler) ShowSubjects(cb *tgbotapi.CallbackQuery) {
	h.Stats.RegisterAction(cb.From.ID, "all_materials_view", "")
	menu := subjectsKeyboard()
	h.Gate.EditText(cb.Message.Chat.ID, cb.Message.MessageID, "📚 Выберите предмет:", &menu)
}

func (h *Handler) ShowRecent(cb *tgbotapi.CallbackQuery) {
	h.Stats.RegisterAction(cb.From.ID, "recent_materials_view", "")

	recent, err := h.Catalog.Recent(5)
	if err != nil {
		h.Log.Error("load recent materials", zap.Error(err))
		h.Gate.AnswerCallback(cb.ID, "⚠️ Не удалось загрузить материалы")
		return
	}
	menu := MainMenuKeyboard(h.Admins.IsAdmin(cb.From.ID))
	if len(recent) == 0 {
		h.Gate.EditText(cb.Message.Chat.ID, cb.Message.MessageID, "📭 Пока нет материалов.", &menu)
		return
	}
	h.Gate.EditText(cb.Message.Chat.ID, cb.Message.MessageID, recentListText(recent), &menu)
}

// ShowSubject opens a subject: roster subjects go to the group picker,
// everything else to the type picker.
func (h *Handler) ShowSubject(cb *tgbotapi.CallbackQuery, a bot.Action) {
	s, ok := subjects.Get(a.SubjectKey)
	if !ok {
		h.Gate.AnswerCallback(cb.ID, "❌ Ошибка: предмет не найден")
		return
	}
	h.Stats.RegisterAction(cb.From.ID, stats.ActionSubjectView, s.Name)

	if s.HasRoster() {
		menu := groupsKeyboard(s)
		text := fmt.Sprintf("📖 %s\n\nВыберите группу:", s.Name)
		h.Gate.EditText(cb.Message.Chat.ID, cb.Message.MessageID, text, &menu)
		return
	}
	menu := typesKeyboard(s)
	text := fmt.Sprintf("📖 %s\n\nВыберите тип материалов:", s.Name)
	h.Gate.EditText(cb.Message.Chat.ID, cb.Message.MessageID, text, &menu)
}

// ShowGroupMaterials lists the materials of one subject/group pair. The
// subject travels inside the token, so the screen renders the same no
// matter which message the button lived on.
func (h *Handler) ShowGroupMaterials(cb *tgbotapi.CallbackQuery, a bot.Action) {
	s, ok := subjects.Get(a.SubjectKey)
	if !ok {
		h.Gate.AnswerCallback(cb.ID, "❌ Ошибка: предмет не найден")
		return
	}

	materials, err := h.Catalog.BySubjectAndGroup(s.Name, a.Group)
	if err != nil {
		h.Log.Error("load materials by group", zap.String("subject", s.Name), zap.Error(err))
		h.Gate.AnswerCallback(cb.ID, "⚠️ Не удалось загрузить материалы")
		return
	}

	if len(materials) == 0 {
		groupText := "лекций"
		if a.Group != models.GroupAll {
			groupText = "группы " + a.Group
		}
		menu := groupsKeyboard(s)
		text := fmt.Sprintf("📭 Нет материалов по предмету %s для %s.", s.Name, groupText)
		h.Gate.EditText(cb.Message.Chat.ID, cb.Message.MessageID, text, &menu)
		return
	}

	groupText := "лекции"
	if a.Group != models.GroupAll {
		groupText = "для группы " + a.Group
	}
	menu := materialsKeyboard(materials, bot.TokenSubject(s.Key))
	text := fmt.Sprintf("📖 Материалы по %s %s:", s.Name, groupText)
	h.Gate.EditText(cb.Message.Chat.ID, cb.Message.MessageID, text, &menu)
}

// ShowTypeMaterials lists the materials of one subject/type pair.
func (h *Handler) ShowTypeMaterials(cb *tgbotapi.CallbackQuery, a bot.Action) {
	s, ok := subjects.Get(a.SubjectKey)
	if !ok {
		h.Gate.AnswerCallback(cb.ID, "❌ Ошибка: предмет не найден")
		return
	}
	materialType, ok := s.TypeAt(a.TypeIndex)
	if !ok {
		h.Gate.AnswerCallback(cb.ID, "❌ Ошибка: тип не найден")
		return
	}

	materials, err := h.Catalog.BySubjectAndType(s.Name, materialType)
	if err != nil {
		h.Log.Error("load materials by type", zap.String("subject", s.Name), zap.Error(err))
		h.Gate.AnswerCallback(cb.ID, "⚠️ Не удалось загрузить материалы")
		return
	}

	if len(materials) == 0 {
		typeText := "лекций"
		if materialType != subjects.DefaultType {
			typeText = "практических работ"
		}
		menu := typesKeyboard(s)
		text := fmt.Sprintf("📭 Нет %s по предмету %s.", typeText, s.Name)
		h.Gate.EditText(cb.Message.Chat.ID, cb.Message.MessageID, text, &menu)
		return
	}

	menu := materialsKeyboard(materials, bot.TokenSubject(s.Key))
	text := fmt.Sprintf("📖 %s по %s:", materialType, s.Name)
	h.Gate.EditText(cb.Message.Chat.ID, cb.Message.MessageID, text, &menu)
}

// ShowMaterial renders the detail card, counts the view, and delivers the
// attached file as a follow-up message.
func (h *Handler) ShowMaterial(cb *tgbotapi.CallbackQuery, a bot.Action) {
	m, err := h.Catalog.Get(a.MaterialID)
	if err != nil {
		if err == catalog.ErrNotFound {
			h.Gate.AnswerCallback(cb.ID, "⚠️ Материал не найден")
		} else {
			h.Log.Error("load material", zap.String("material_id", a.MaterialID), zap.Error(err))
			h.Gate.AnswerCallback(cb.ID, "⚠️ Не удалось загрузить материал")
		}
		return
	}

	h.Stats.RegisterAction(cb.From.ID, stats.ActionMaterialView, m.ID)
	views := h.Stats.MaterialViews(m.ID)

	menu := materialDetailKeyboard(m.ID, h.Admins.IsAdmin(cb.From.ID))
	h.Gate.EditText(cb.Message.Chat.ID, cb.Message.MessageID, materialDetailText(m, views), &menu)

	if !m.HasFile() {
		return
	}
	if !h.Media.Exists(m.FilePath) {
		h.Log.Warn("material file missing", zap.String("material_id", m.ID), zap.String("file", m.FilePath))
		h.Gate.SendText(cb.Message.Chat.ID, "⚠️ Не удалось загрузить файл. Возможно, файл был удален или поврежден.", nil)
		return
	}
	caption := "📎 Файл к материалу: " + m.Title
	if err := h.Gate.SendAsset(cb.Message.Chat.ID, h.Media.FullPath(m.FilePath), caption); err != nil {
		h.Log.Warn("send material file", zap.String("material_id", m.ID), zap.Error(err))
		h.Gate.SendText(cb.Message.Chat.ID, "⚠️ Не удалось загрузить файл. Возможно, файл был удален или поврежден.", nil)
	}
}

// BackToList returns from a detail card to the list it came from. The
// list is rebuilt from the material's own subject, group, and type, so
// the jump works even when the card was reached from /recent.
func (h *Handler) BackToList(cb *tgbotapi.CallbackQuery, a bot.Action) {
	m, err := h.Catalog.Get(a.MaterialID)
	if err != nil {
		h.ShowSubjects(cb)
		return
	}
	s, ok := subjects.ByName(m.Subject)
	if !ok {
		h.ShowSubjects(cb)
		return
	}

	if s.HasRoster() {
		h.ShowGroupMaterials(cb, bot.Action{Kind: bot.KindGroup, SubjectKey: s.Key, Group: m.Group})
		return
	}
	typeIndex := s.TypeIndex(m.MaterialType)
	h.ShowTypeMaterials(cb, bot.Action{Kind: bot.KindMaterialType, SubjectKey: s.Key, TypeIndex: typeIndex})
}

func recentListText(materials []models.Material) string {
	var b strings.Builder
	b.WriteString("🆕 Последние материалы:\n\n")
	for i, m := range materials {
		b.WriteString(fmt.Sprintf("%d. %s - %s", i+1, html.EscapeString(m.Title), html.EscapeString(m.Subject)))
		if !m.ForAllGroups() {
			b.WriteString(fmt.Sprintf(" (%s)", m.Group))
		}
		if m.MaterialType != "" {
			b.WriteString(fmt.Sprintf(" [%s]", m.MaterialType))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func materialDetailText(m models.Material, views int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📚 %s\n\n", html.EscapeString(m.Title)))
	b.WriteString("Предмет: " + html.EscapeString(m.Subject))
	if !m.ForAllGroups() {
		b.WriteString("\nГруппа: " + m.Group)
	}
	if m.MaterialType != "" {
		b.WriteString("\nТип: " + m.MaterialType)
	}
	b.WriteString("\nДата добавления: " + m.DateAdded)
	b.WriteString(fmt.Sprintf("\n👀 Просмотров: %d\n\n", views))
	if m.Description != "" {
		b.WriteString(html.EscapeString(m.Description))
	} else {
		b.WriteString("Описание отсутствует")
	}
	return b.String()
}
