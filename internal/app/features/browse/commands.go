// internal/app/features/browse/commands.go
package browse

import (
	"fmt"
	"html"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const welcomeText = `👋 Добро пожаловать в бот учебных материалов!

📚 Доступные предметы:
• Информатика (группы 11-17)
• Архитектура
• ИТ (Информационные технологии)
• МДК 05.01

Выберите действие в меню ниже:`

const helpText = `📚 Доступные команды:

/start - Главное меню
/menu - Главное меню
/help - Справка
/id - Показать ID
/recent - Последние материалы
/admin - Панель администратора

Используйте кнопки меню для удобства! 🎯`

// Start greets a new chat: sticker first, then the welcome screen.
func (h *Handler) Start(msg *tgbotapi.Message) {
	userID := msg.From.ID
	h.Gate.SendSticker(msg.Chat.ID, h.WelcomeSticker)

	h.Stats.RegisterUser(userID)
	h.Stats.RegisterAction(userID, "start_command", "")

	menu := MainMenuKeyboard(h.Admins.IsAdmin(userID))
	h.Gate.SendText(msg.Chat.ID, welcomeText, &menu)
}

func (h *Handler) MainMenu(msg *tgbotapi.Message) {
	h.Stats.RegisterAction(msg.From.ID, "menu_command", "")
	menu := MainMenuKeyboard(h.Admins.IsAdmin(msg.From.ID))
	h.Gate.SendText(msg.Chat.ID, "🎯 Главное меню", &menu)
}

func (h *Handler) Help(msg *tgbotapi.Message) {
	h.Stats.RegisterAction(msg.From.ID, "help_command", "")
	h.Gate.SendText(msg.Chat.ID, helpText, nil)
}

func (h *Handler) WhoAmI(msg *tgbotapi.Message) {
	username := msg.From.UserName
	if username == "" {
		username = "Не указан"
	}
	text := fmt.Sprintf(`🆔 Ваши идентификаторы:

👤 User ID: %d
Имя: %s
Username: @%s`, msg.From.ID, html.EscapeString(msg.From.FirstName), html.EscapeString(username))
	h.Gate.SendText(msg.Chat.ID, text, nil)
}

// Recent answers /recent and its text aliases with the five newest
// materials as plain text.
func (h *Handler) Recent(msg *tgbotapi.Message) {
	h.Stats.RegisterAction(msg.From.ID, "recent_command", "")

	recent, err := h.Catalog.Recent(5)
	if err != nil {
		h.Log.Error("load recent materials", zap.Error(err))
		h.Gate.SendText(msg.Chat.ID, "⚠️ Не удалось загрузить материалы.", nil)
		return
	}
	if len(recent) == 0 {
		h.Gate.SendText(msg.Chat.ID, "📭 Пока нет материалов.", nil)
		return
	}
	h.Gate.SendText(msg.Chat.ID, recentListText(recent), nil)
}

func (h *Handler) Subjects(msg *tgbotapi.Message) {
	h.Stats.RegisterAction(msg.From.ID, "text_materials", "")
	menu := subjectsKeyboard()
	h.Gate.SendText(msg.Chat.ID, "📚 Выберите предмет:", &menu)
}

// Unknown handles any message no other route claimed.
func (h *Handler) Unknown(msg *tgbotapi.Message) {
	if msg.IsCommand() {
		h.Gate.SendText(msg.Chat.ID, "❓ Неизвестная команда. Используйте меню или /help", nil)
		return
	}
	menu := MainMenuKeyboard(h.Admins.IsAdmin(msg.From.ID))
	h.Gate.SendText(msg.Chat.ID,
		"🤔 Не понял ваше сообщение. Используйте кнопки меню или текстовые команды:\n\n"+
			"• 'меню' - Главное меню\n"+
			"• 'помощь' - Справка\n"+
			"• 'материалы' - Все предметы\n"+
			"• 'последние' - Новые материалы\n"+
			"• 'id' - Мой ID",
		&menu)
}
