// internal/app/features/adminpanel/panel.go
package adminpanel

import (
	"fmt"
	"html"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Krill-lover/welccom/internal/app/bot"
	"github.com/Krill-lover/welccom/internal/app/store/catalog"
)

const panelTitle = "👨‍💻 Панель администратора"

// ShowPanelCmd answers /admin and its text aliases.
func (h *Handler) ShowPanelCmd(msg *tgbotapi.Message) {
	if !h.Admins.IsAdmin(msg.From.ID) {
		h.Gate.SendText(msg.Chat.ID, "🚫 Доступ запрещен", nil)
		return
	}
	h.Gate.SendSticker(msg.Chat.ID, h.AdminSticker)
	h.Stats.RegisterAction(msg.From.ID, "admin_access", "")

	menu := panelKeyboard()
	h.Gate.SendText(msg.Chat.ID, panelTitle, &menu)
}

// ShowPanel rewrites the current message into the admin panel. Opening
// the panel discards any open wizard draft, so the cancel buttons inside
// the wizard land here.
func (h *Handler) ShowPanel(cb *tgbotapi.CallbackQuery) {
	if !h.Admins.IsAdmin(cb.From.ID) {
		h.deny(cb.ID)
		return
	}
	h.Gate.SendSticker(cb.Message.Chat.ID, h.AdminSticker)
	h.Sessions.Clear(cb.From.ID)
	h.Stats.RegisterAction(cb.From.ID, "admin_panel_access", "")

	menu := panelKeyboard()
	h.Gate.EditText(cb.Message.Chat.ID, cb.Message.MessageID, panelTitle, &menu)
}

// Manage lists recent materials with per-item delete buttons.
func (h *Handler) Manage(cb *tgbotapi.CallbackQuery) {
	if !h.Admins.IsAdmin(cb.From.ID) {
		h.deny(cb.ID)
		return
	}

	materials, err := h.Catalog.Recent(20)
	if err != nil {
		h.Log.Error("load materials for manage screen", zap.Error(err))
		h.Gate.AnswerCallback(cb.ID, "⚠️ Не удалось загрузить материалы")
		return
	}
	if len(materials) == 0 {
		menu := panelKeyboard()
		h.Gate.EditText(cb.Message.Chat.ID, cb.Message.MessageID, "📭 Нет материалов для управления.", &menu)
		return
	}

	menu := manageKeyboard(materials)
	text := "🗑 Управление материалами:\n\nВыберите материал для удаления:"
	h.Gate.EditText(cb.Message.Chat.ID, cb.Message.MessageID, text, &menu)
}

// ConfirmDelete asks before deleting a material opened from its detail
// card.
func (h *Handler) ConfirmDelete(cb *tgbotapi.CallbackQuery, a bot.Action) {
	if !h.Admins.IsAdmin(cb.From.ID) {
		h.deny(cb.ID)
		return
	}

	m, err := h.Catalog.Get(a.MaterialID)
	if err != nil {
		h.Gate.AnswerCallback(cb.ID, "⚠️ Материал не найден")
		return
	}

	menu := deleteConfirmKeyboard(m.ID)
	text := fmt.Sprintf("⚠️ Подтверждение удаления\n\nВы уверены, что хотите удалить материал:\n%s?", html.EscapeString(m.Title))
	h.Gate.EditText(cb.Message.Chat.ID, cb.Message.MessageID, text, &menu)
}

// Delete removes a material and its stored asset.
func (h *Handler) Delete(cb *tgbotapi.CallbackQuery, a bot.Action) {
	if !h.Admins.IsAdmin(cb.From.ID) {
		h.deny(cb.ID)
		return
	}

	m, err := h.Catalog.Get(a.MaterialID)
	if err != nil {
		if err == catalog.ErrNotFound {
			h.Gate.AnswerCallback(cb.ID, "⚠️ Материал не найден")
		} else {
			h.Log.Error("load material for delete", zap.String("material_id", a.MaterialID), zap.Error(err))
			h.Gate.AnswerCallback(cb.ID, "❌ Ошибка при удалении")
		}
		return
	}

	removed, err := h.Catalog.Delete(m.ID)
	if err != nil {
		h.Log.Error("delete material", zap.String("material_id", m.ID), zap.Error(err))
		h.Gate.AnswerCallback(cb.ID, "❌ Ошибка при удалении")
		return
	}
	if !removed {
		h.Gate.AnswerCallback(cb.ID, "⚠️ Материал не найден")
		return
	}

	menu := panelKeyboard()
	text := fmt.Sprintf("✅ Материал '%s' удален!", html.EscapeString(m.Title))
	h.Gate.EditText(cb.Message.Chat.ID, cb.Message.MessageID, text, &menu)
}
