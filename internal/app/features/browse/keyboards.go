// internal/app/features/browse/keyboards.go
package browse

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Krill-lover/welccom/internal/app/bot"
	"github.com/Krill-lover/welccom/internal/domain/models"
	"github.com/Krill-lover/welccom/internal/app/system/subjects"
)

// MainMenuKeyboard is the top-level navigation. Exported because the
// wizard's cancel flow also lands on the main menu.
func MainMenuKeyboard(isAdmin bool) tgbotapi.InlineKeyboardMarkup {
	items := []bot.MenuItem{
		{Label: "📚 Все предметы", Token: bot.TokenAllSubjects()},
		{Label: "🆕 Последние", Token: bot.TokenRecent()},
	}
	if isAdmin {
		items = append(items, bot.MenuItem{Label: "👑 Админ-панель", Token: bot.TokenAdminPanel()})
	}
	items = append(items, bot.MenuItem{Label: "ℹ️ Помощь", Token: bot.TokenHelp()})
	return bot.Menu(items, 2, 1, 1)
}

func subjectsKeyboard() tgbotapi.InlineKeyboardMarkup {
	var items []bot.MenuItem
	for _, s := range subjects.All() {
		items = append(items, bot.MenuItem{Label: "📖 " + s.Name, Token: bot.TokenSubject(s.Key)})
	}
	items = append(items, bot.MenuItem{Label: "⬅️ Назад", Token: bot.TokenMainMenu()})
	return bot.Menu(items, 2)
}

func groupsKeyboard(s subjects.Subject) tgbotapi.InlineKeyboardMarkup {
	var items []bot.MenuItem
	if s.HasRoster() {
		for _, g := range s.Groups {
			items = append(items, bot.MenuItem{Label: "👥 " + g, Token: bot.TokenGroup(s.Key, g)})
		}
	} else {
		items = append(items, bot.MenuItem{Label: subjects.DefaultType, Token: bot.TokenGroup(s.Key, models.GroupAll)})
	}
	items = append(items, bot.MenuItem{Label: "⬅️ Назад", Token: bot.TokenAllSubjects()})
	return bot.Menu(items, 2)
}

func typesKeyboard(s subjects.Subject) tgbotapi.InlineKeyboardMarkup {
	var items []bot.MenuItem
	if s.HasTypes() {
		for i, label := range s.Types {
			items = append(items, bot.MenuItem{Label: label, Token: bot.TokenMaterialType(s.Key, i)})
		}
	} else {
		items = append(items, bot.MenuItem{Label: subjects.DefaultType, Token: bot.TokenMaterialType(s.Key, 0)})
	}
	items = append(items, bot.MenuItem{Label: "⬅️ Назад", Token: bot.TokenAllSubjects()})
	return bot.Menu(items)
}

// materialsKeyboard lists materials as buttons; backToken decides where
// the trailing back button leads, so every list carries its own way home.
func materialsKeyboard(materials []models.Material, backToken string) tgbotapi.InlineKeyboardMarkup {
	var items []bot.MenuItem
	for _, m := range materials {
		items = append(items, bot.MenuItem{Label: m.Title, Token: bot.TokenMaterial(m.ID)})
	}
	items = append(items, bot.MenuItem{Label: "⬅️ Назад", Token: backToken})
	return bot.Menu(items)
}

func materialDetailKeyboard(materialID string, isAdmin bool) tgbotapi.InlineKeyboardMarkup {
	items := []bot.MenuItem{
		{Label: "⬅️ Назад к материалам", Token: bot.TokenMaterialBack(materialID)},
	}
	if isAdmin {
		items = append(items, bot.MenuItem{Label: "🗑 Удалить", Token: bot.TokenDeleteAsk(materialID)})
	}
	return bot.Menu(items)
}
