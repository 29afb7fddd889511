// internal/app/features/adminpanel/statsview.go
package adminpanel

import (
	"fmt"
	"html"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// ShowStats renders the overview: totals, weekly activity, and the
// per-subject material counts.
func (h *Handler) ShowStats(cb *tgbotapi.CallbackQuery) {
	if !h.Admins.IsAdmin(cb.From.ID) {
		h.deny(cb.ID)
		return
	}
	h.Stats.RegisterAction(cb.From.ID, "stats_view", "")

	all, err := h.Catalog.All()
	if err != nil {
		h.Log.Error("load catalog for stats", zap.Error(err))
		h.Gate.AnswerCallback(cb.ID, "⚠️ Не удалось загрузить статистику")
		return
	}
	perSubject := make(map[string]int)
	var subjectOrder []string
	for _, m := range all {
		if _, seen := perSubject[m.Subject]; !seen {
			subjectOrder = append(subjectOrder, m.Subject)
		}
		perSubject[m.Subject]++
	}

	weekly := h.Stats.DailyStats(7)
	weeklyActions, weeklyUsers := 0, 0
	for _, day := range weekly {
		weeklyActions += day.Actions
		weeklyUsers += day.ActiveUsers
	}

	var b strings.Builder
	b.WriteString("📊 ОБЩАЯ СТАТИСТИКА\n\n")
	b.WriteString(fmt.Sprintf("👥 Всего пользователей: %d\n", h.Stats.TotalUsers()))
	b.WriteString(fmt.Sprintf("🟢 Активных сегодня: %d\n", h.Stats.ActiveUsersToday()))
	b.WriteString(fmt.Sprintf("📚 Всего материалов: %d\n", len(all)))
	b.WriteString(fmt.Sprintf("📈 Активность за неделю: %d действий\n", weeklyActions))
	b.WriteString(fmt.Sprintf("👤 Уникальных за неделю: %d пользователей\n\n", weeklyUsers))
	b.WriteString("📖 Материалы по предметам:\n")
	for _, subject := range subjectOrder {
		b.WriteString(fmt.Sprintf("• %s: %d материалов\n", html.EscapeString(subject), perSubject[subject]))
	}

	menu := statsKeyboard()
	h.Gate.EditText(cb.Message.Chat.ID, cb.Message.MessageID, b.String(), &menu)
}

// ShowDetailedStats renders the seven-day breakdown, newest day first.
func (h *Handler) ShowDetailedStats(cb *tgbotapi.CallbackQuery) {
	if !h.Admins.IsAdmin(cb.From.ID) {
		h.deny(cb.ID)
		return
	}
	h.Stats.RegisterAction(cb.From.ID, "detailed_stats_view", "")

	today := h.Now().Format("2006-01-02")
	yesterday := h.Now().AddDate(0, 0, -1).Format("2006-01-02")

	var b strings.Builder
	b.WriteString("📈 ДЕТАЛЬНАЯ СТАТИСТИКА ЗА 7 ДНЕЙ\n\n")
	for _, day := range h.Stats.DailyStats(7) {
		label := day.Date
		switch day.Date {
		case today:
			label = "Сегодня"
		case yesterday:
			label = "Вчера"
		default:
			if d, err := time.Parse("2006-01-02", day.Date); err == nil {
				label = d.Format("02.01")
			}
		}
		b.WriteString(fmt.Sprintf("📅 %s:\n", label))
		b.WriteString(fmt.Sprintf("   👤 Новые: %d\n", day.NewUsers))
		b.WriteString(fmt.Sprintf("   🟢 Активные: %d\n", day.ActiveUsers))
		b.WriteString(fmt.Sprintf("   📝 Действия: %d\n\n", day.Actions))
	}

	menu := statsKeyboard()
	h.Gate.EditText(cb.Message.Chat.ID, cb.Message.MessageID, b.String(), &menu)
}

// ShowPopularMaterials renders the top-10 view counters joined with
// catalog titles.
func (h *Handler) ShowPopularMaterials(cb *tgbotapi.CallbackQuery) {
	if !h.Admins.IsAdmin(cb.From.ID) {
		h.deny(cb.ID)
		return
	}
	h.Stats.RegisterAction(cb.From.ID, "popular_materials_view", "")

	popular := h.Stats.PopularMaterials(10)

	var b strings.Builder
	if len(popular) == 0 {
		b.WriteString("📊 ПОПУЛЯРНЫЕ МАТЕРИАЛЫ\n\nПока нет статистики просмотров.")
	} else {
		b.WriteString("📊 САМЫЕ ПОПУЛЯРНЫЕ МАТЕРИАЛЫ\n\n")
		rank := 0
		for _, row := range popular {
			m, err := h.Catalog.Get(row.Key)
			if err != nil {
				// Deleted materials keep their counters; skip them here.
				continue
			}
			rank++
			b.WriteString(fmt.Sprintf("%d. %s\n", rank, html.EscapeString(m.Title)))
			b.WriteString(fmt.Sprintf("   👀 Просмотров: %d\n", row.Views))
			b.WriteString(fmt.Sprintf("   📚 Предмет: %s\n\n", html.EscapeString(m.Subject)))
		}
	}

	menu := statsKeyboard()
	h.Gate.EditText(cb.Message.Chat.ID, cb.Message.MessageID, b.String(), &menu)
}

// ShowUsersStats renders the top-10 most active users.
func (h *Handler) ShowUsersStats(cb *tgbotapi.CallbackQuery) {
	if !h.Admins.IsAdmin(cb.From.ID) {
		h.deny(cb.ID)
		return
	}
	h.Stats.RegisterAction(cb.From.ID, "users_stats_view", "")

	top := h.Stats.TopUsers(10)

	var b strings.Builder
	b.WriteString("👥 ТОП-10 АКТИВНЫХ ПОЛЬЗОВАТЕЛЕЙ\n\n")
	if len(top) == 0 {
		b.WriteString("Пока нет данных об активности пользователей.")
	} else {
		for i, u := range top {
			b.WriteString(fmt.Sprintf("%d. ID: %s\n", i+1, u.UserID))
			b.WriteString(fmt.Sprintf("   📝 Всего действий: %d\n", u.TotalActions))
			b.WriteString(fmt.Sprintf("   📅 Первый визит: %s\n", u.FirstSeen))
			b.WriteString(fmt.Sprintf("   🔄 Последний визит: %s\n\n", u.LastSeen))
		}
	}

	menu := statsKeyboard()
	h.Gate.EditText(cb.Message.Chat.ID, cb.Message.MessageID, b.String(), &menu)
}
