// internal/app/features/adminpanel/keyboards.go
package adminpanel

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Krill-lover/welccom/internal/app/bot"
	"github.com/Krill-lover/welccom/internal/app/system/subjects"
	"github.com/Krill-lover/welccom/internal/domain/models"
)

func panelKeyboard() tgbotapi.InlineKeyboardMarkup {
	return bot.Menu([]bot.MenuItem{
		{Label: "➕ Добавить материал", Token: bot.TokenAddMaterial()},
		{Label: "🗑 Управление материалами", Token: bot.TokenManageMaterials()},
		{Label: "📊 Статистика", Token: bot.TokenAdminStats()},
		{Label: "⬅️ В главное меню", Token: bot.TokenMainMenu()},
	})
}

func statsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return bot.Menu([]bot.MenuItem{
		{Label: "📊 Общая статистика", Token: bot.TokenAdminStats()},
		{Label: "📈 Детальная статистика", Token: bot.TokenDetailedStats()},
		{Label: "👥 Активность пользователей", Token: bot.TokenUsersStats()},
		{Label: "📚 Популярные материалы", Token: bot.TokenPopularMaterials()},
		{Label: "⬅️ В админ-панель", Token: bot.TokenAdminPanel()},
	})
}

func wizardSubjectsKeyboard() tgbotapi.InlineKeyboardMarkup {
	var items []bot.MenuItem
	for _, s := range subjects.All() {
		items = append(items, bot.MenuItem{Label: "📖 " + s.Name, Token: bot.TokenWizardSubject(s.Key)})
	}
	items = append(items, bot.MenuItem{Label: "❌ Отмена", Token: bot.TokenAdminPanel()})
	return bot.Menu(items, 2)
}

func wizardGroupsKeyboard(s subjects.Subject) tgbotapi.InlineKeyboardMarkup {
	var items []bot.MenuItem
	if s.HasRoster() {
		for _, g := range s.Groups {
			items = append(items, bot.MenuItem{Label: "👥 " + g, Token: bot.TokenWizardGroup(g)})
		}
	} else {
		items = append(items, bot.MenuItem{Label: subjects.DefaultType, Token: bot.TokenWizardGroup(models.GroupAll)})
	}
	items = append(items,
		bot.MenuItem{Label: "⬅️ Назад", Token: bot.TokenWizardBack()},
		bot.MenuItem{Label: "❌ Отмена", Token: bot.TokenAdminPanel()},
	)
	return bot.Menu(items, 2)
}

func wizardTypesKeyboard(s subjects.Subject) tgbotapi.InlineKeyboardMarkup {
	var items []bot.MenuItem
	if s.HasTypes() {
		for i, label := range s.Types {
			items = append(items, bot.MenuItem{Label: label, Token: bot.TokenWizardType(i)})
		}
	} else {
		items = append(items, bot.MenuItem{Label: subjects.DefaultType, Token: bot.TokenWizardType(0)})
	}
	items = append(items,
		bot.MenuItem{Label: "⬅️ Назад", Token: bot.TokenWizardBack()},
		bot.MenuItem{Label: "❌ Отмена", Token: bot.TokenAdminPanel()},
	)
	return bot.Menu(items)
}

func wizardCancelKeyboard() tgbotapi.InlineKeyboardMarkup {
	return bot.Menu([]bot.MenuItem{
		{Label: "⬅️ Назад", Token: bot.TokenWizardBack()},
		{Label: "❌ Отмена", Token: bot.TokenAdminPanel()},
	}, 2)
}

func manageKeyboard(materials []models.Material) tgbotapi.InlineKeyboardMarkup {
	var items []bot.MenuItem
	for _, m := range materials {
		items = append(items, bot.MenuItem{Label: "🗑 " + m.Title, Token: bot.TokenDelete(m.ID)})
	}
	items = append(items, bot.MenuItem{Label: "⬅️ Назад", Token: bot.TokenAdminPanel()})
	return bot.Menu(items)
}

func deleteConfirmKeyboard(materialID string) tgbotapi.InlineKeyboardMarkup {
	return bot.Menu([]bot.MenuItem{
		{Label: "✅ Да, удалить", Token: bot.TokenDelete(materialID)},
		{Label: "❌ Отмена", Token: bot.TokenMaterial(materialID)},
	}, 2)
}
