// internal/app/bot/menu.go
package bot

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// MenuItem is one inline button: a label the user sees and the callback
// token it fires.
type MenuItem struct {
	Label string
	Token string
}

// Menu lays items out into an inline keyboard. The layout arguments give
// row widths in order; the last width repeats for the remaining items.
// With no layout every button gets its own row.
func Menu(items []MenuItem, layout ...int) tgbotapi.InlineKeyboardMarkup {
	if len(layout) == 0 {
		layout = []int{1}
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	i, li := 0, 0
	for i < len(items) {
		width := layout[li]
		if li < len(layout)-1 {
			li++
		}
		if width < 1 {
			width = 1
		}
		end := i + width
		if end > len(items) {
			end = len(items)
		}
		row := make([]tgbotapi.InlineKeyboardButton, 0, end-i)
		for _, item := range items[i:end] {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(item.Label, item.Token))
		}
		rows = append(rows, row)
		i = end
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
