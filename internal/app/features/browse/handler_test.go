// internal/app/features/browse/handler_test.go
package browse_test

import (
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Krill-lover/welccom/internal/app/bot"
	"github.com/Krill-lover/welccom/internal/app/features/browse"
	"github.com/Krill-lover/welccom/internal/app/store/catalog"
	"github.com/Krill-lover/welccom/internal/app/store/media"
	"github.com/Krill-lover/welccom/internal/app/store/stats"
	"github.com/Krill-lover/welccom/internal/app/system/access"
	"github.com/Krill-lover/welccom/internal/domain/models"
	"github.com/Krill-lover/welccom/internal/testutil"
)

const (
	studentID = int64(100)
	adminID   = int64(1862652984)
)

func newHandler(t *testing.T) (*browse.Handler, *testutil.RecordingGateway, *catalog.Store, *media.Store, *stats.Store) {
	t.Helper()
	f := testutil.NewFixtures(t)
	cat, med, st := f.Stores()
	gate := &testutil.RecordingGateway{}
	h := browse.NewHandler(gate, cat, med, st, access.AdminList{adminID}, "sticker-id", zap.NewNop())
	return h, gate, cat, med, st
}

func TestStart_SendsStickerAndMenu(t *testing.T) {
	h, gate, _, _, st := newHandler(t)

	h.Start(testutil.Command(studentID, "start"))

	if len(gate.Stickers) != 1 || gate.Stickers[0] != "sticker-id" {
		t.Errorf("expected welcome sticker, got %v", gate.Stickers)
	}
	msg := gate.LastMessage()
	if !strings.Contains(msg.Text, "Добро пожаловать") {
		t.Errorf("unexpected welcome text %q", msg.Text)
	}
	if msg.Menu == nil {
		t.Fatal("expected main menu keyboard")
	}
	if st.TotalUsers() != 1 {
		t.Errorf("expected the user to be registered, total users = %d", st.TotalUsers())
	}
}

func TestMainMenu_AdminSeesAdminButton(t *testing.T) {
	h, gate, _, _, _ := newHandler(t)

	h.MainMenu(testutil.Command(adminID, "menu"))
	if !menuHasToken(gate.LastMessage().Menu, bot.TokenAdminPanel()) {
		t.Error("expected admin panel button for admin")
	}

	h.MainMenu(testutil.Command(studentID, "menu"))
	if menuHasToken(gate.LastMessage().Menu, bot.TokenAdminPanel()) {
		t.Error("did not expect admin panel button for student")
	}
}

func TestRecent_EmptyCatalog(t *testing.T) {
	h, gate, _, _, _ := newHandler(t)

	h.Recent(testutil.Command(studentID, "recent"))

	if got := gate.LastMessage().Text; got != "📭 Пока нет материалов." {
		t.Errorf("unexpected reply %q", got)
	}
}

func TestRecent_ListsNewestFirst(t *testing.T) {
	h, gate, cat, _, _ := newHandler(t)
	f := testutil.NewFixtures(t)
	f.Material(cat, "old00001", func(m *models.Material) {
		m.Title = "Старая лекция"
		m.DateAdded = "2026-08-01"
	})
	f.Material(cat, "new00001", func(m *models.Material) {
		m.Title = "Новая лекция"
		m.DateAdded = "2026-08-30"
	})

	h.Recent(testutil.Command(studentID, "recent"))

	text := gate.LastMessage().Text
	newPos := strings.Index(text, "Новая лекция")
	oldPos := strings.Index(text, "Старая лекция")
	if newPos < 0 || oldPos < 0 || newPos > oldPos {
		t.Errorf("expected newest material listed first:\n%s", text)
	}
	if !strings.Contains(text, "(14)") {
		t.Errorf("expected group annotation in list:\n%s", text)
	}
}

func TestShowSubject_RosterGoesToGroups(t *testing.T) {
	h, gate, _, _, st := newHandler(t)

	cb := testutil.Callback(studentID, "s:информатика")
	h.ShowSubject(cb, bot.ParseAction(cb.Data))

	msg := gate.LastMessage()
	if !strings.Contains(msg.Text, "Выберите группу") {
		t.Errorf("expected group picker, got %q", msg.Text)
	}
	if !menuHasToken(msg.Menu, bot.TokenGroup("информатика", "11")) {
		t.Error("expected a group button in the keyboard")
	}
	if got := st.PopularSubjects(); len(got) != 1 || got[0].Key != "Информатика" {
		t.Errorf("expected subject view recorded, got %v", got)
	}
}

func TestShowSubject_TaxonomyGoesToTypes(t *testing.T) {
	h, gate, _, _, _ := newHandler(t)

	cb := testutil.Callback(studentID, "s:мдк")
	h.ShowSubject(cb, bot.ParseAction(cb.Data))

	msg := gate.LastMessage()
	if !strings.Contains(msg.Text, "Выберите тип материалов") {
		t.Errorf("expected type picker, got %q", msg.Text)
	}
	if !menuHasToken(msg.Menu, bot.TokenMaterialType("мдк", 1)) {
		t.Error("expected a type button in the keyboard")
	}
}

func TestShowGroupMaterials_FiltersByGroup(t *testing.T) {
	h, gate, cat, _, _ := newHandler(t)
	f := testutil.NewFixtures(t)
	f.Material(cat, "grp14aaa", func(m *models.Material) { m.Title = "Для 14"; m.Group = "14" })
	f.Material(cat, "grp15aaa", func(m *models.Material) { m.Title = "Для 15"; m.Group = "15" })

	cb := testutil.Callback(studentID, "g:информатика:14")
	h.ShowGroupMaterials(cb, bot.ParseAction(cb.Data))

	msg := gate.LastMessage()
	if !menuHasToken(msg.Menu, bot.TokenMaterial("grp14aaa")) {
		t.Error("expected group 14 material button")
	}
	if menuHasToken(msg.Menu, bot.TokenMaterial("grp15aaa")) {
		t.Error("did not expect group 15 material button")
	}
	if !menuHasToken(msg.Menu, bot.TokenSubject("информатика")) {
		t.Error("expected back button to the subject screen")
	}
}

func TestShowGroupMaterials_EmptyShowsGroupsAgain(t *testing.T) {
	h, gate, _, _, _ := newHandler(t)

	cb := testutil.Callback(studentID, "g:информатика:17")
	h.ShowGroupMaterials(cb, bot.ParseAction(cb.Data))

	msg := gate.LastMessage()
	if !strings.Contains(msg.Text, "Нет материалов") {
		t.Errorf("expected empty notice, got %q", msg.Text)
	}
	if !menuHasToken(msg.Menu, bot.TokenGroup("информатика", "11")) {
		t.Error("expected group picker to be offered again")
	}
}

func TestShowTypeMaterials_FiltersByType(t *testing.T) {
	h, gate, cat, _, _ := newHandler(t)
	f := testutil.NewFixtures(t)
	f.Material(cat, "lectures", func(m *models.Material) {
		m.Subject = "МДК 05.01"
		m.Group = models.GroupAll
		m.MaterialType = "📚 Лекции"
	})
	f.Material(cat, "practice", func(m *models.Material) {
		m.Subject = "МДК 05.01"
		m.Group = models.GroupAll
		m.MaterialType = "📝 Практические работы"
	})

	cb := testutil.Callback(studentID, "t:мдк:0")
	h.ShowTypeMaterials(cb, bot.ParseAction(cb.Data))

	msg := gate.LastMessage()
	if !menuHasToken(msg.Menu, bot.TokenMaterial("lectures")) {
		t.Error("expected lecture material button")
	}
	if menuHasToken(msg.Menu, bot.TokenMaterial("practice")) {
		t.Error("did not expect practice material button")
	}
}

func TestShowMaterial_CountsViewAndSendsFile(t *testing.T) {
	h, gate, cat, med, st := newHandler(t)
	f := testutil.NewFixtures(t)
	if err := med.Save("mat00001.pdf", strings.NewReader("content")); err != nil {
		t.Fatalf("save media: %v", err)
	}
	f.Material(cat, "mat00001", func(m *models.Material) {
		m.Title = "Лекция 1"
		m.FilePath = "mat00001.pdf"
	})

	cb := testutil.Callback(studentID, "m:mat00001")
	h.ShowMaterial(cb, bot.ParseAction(cb.Data))

	if got := st.MaterialViews("mat00001"); got != 1 {
		t.Errorf("material views = %d, want 1", got)
	}
	var detail string
	for _, m := range gate.Messages {
		if m.Edited {
			detail = m.Text
		}
	}
	if !strings.Contains(detail, "👀 Просмотров: 1") {
		t.Errorf("expected view counter in detail card:\n%s", detail)
	}
	if len(gate.Assets) != 1 || !strings.HasSuffix(gate.Assets[0].Path, "mat00001.pdf") {
		t.Errorf("expected file delivery, got %v", gate.Assets)
	}
}

func TestShowMaterial_MissingFileWarnsButShowsCard(t *testing.T) {
	h, gate, cat, _, _ := newHandler(t)
	f := testutil.NewFixtures(t)
	f.Material(cat, "gone0001", func(m *models.Material) { m.FilePath = "gone0001.pdf" })

	cb := testutil.Callback(studentID, "m:gone0001")
	h.ShowMaterial(cb, bot.ParseAction(cb.Data))

	if len(gate.Assets) != 0 {
		t.Errorf("did not expect asset delivery, got %v", gate.Assets)
	}
	if got := gate.LastMessage().Text; !strings.Contains(got, "Не удалось загрузить файл") {
		t.Errorf("expected missing-file warning, got %q", got)
	}
}

func TestShowMaterial_NotFound(t *testing.T) {
	h, gate, _, _, _ := newHandler(t)

	cb := testutil.Callback(studentID, "m:absent01")
	h.ShowMaterial(cb, bot.ParseAction(cb.Data))

	if len(gate.Callbacks) != 1 || !strings.Contains(gate.Callbacks[0], "не найден") {
		t.Errorf("expected not-found callback answer, got %v", gate.Callbacks)
	}
}

func TestShowMaterial_AdminGetsDeleteButton(t *testing.T) {
	h, gate, cat, _, _ := newHandler(t)
	f := testutil.NewFixtures(t)
	f.Material(cat, "mat00002", nil)

	cb := testutil.Callback(adminID, "m:mat00002")
	h.ShowMaterial(cb, bot.ParseAction(cb.Data))

	if !menuHasToken(gate.LastMessage().Menu, bot.TokenDeleteAsk("mat00002")) {
		t.Error("expected delete button for admin")
	}

	gate.Messages = nil
	cb = testutil.Callback(studentID, "m:mat00002")
	h.ShowMaterial(cb, bot.ParseAction(cb.Data))
	if menuHasToken(gate.LastMessage().Menu, bot.TokenDeleteAsk("mat00002")) {
		t.Error("did not expect delete button for student")
	}
}

func TestBackToList_DerivedFromMaterialFields(t *testing.T) {
	h, gate, cat, _, _ := newHandler(t)
	f := testutil.NewFixtures(t)
	f.Material(cat, "mat00003", func(m *models.Material) { m.Group = "15" })

	cb := testutil.Callback(studentID, "mb:mat00003")
	h.BackToList(cb, bot.ParseAction(cb.Data))

	msg := gate.LastMessage()
	if !strings.Contains(msg.Text, "для группы 15") {
		t.Errorf("expected the group 15 list, got %q", msg.Text)
	}
	if !menuHasToken(msg.Menu, bot.TokenMaterial("mat00003")) {
		t.Error("expected the material's own list")
	}
}

func TestBackToList_TypedSubject(t *testing.T) {
	h, gate, cat, _, _ := newHandler(t)
	f := testutil.NewFixtures(t)
	f.Material(cat, "mat00004", func(m *models.Material) {
		m.Subject = "Архитектура"
		m.Group = models.GroupAll
		m.MaterialType = "📝 Практические работы"
	})

	cb := testutil.Callback(studentID, "mb:mat00004")
	h.BackToList(cb, bot.ParseAction(cb.Data))

	msg := gate.LastMessage()
	if !strings.Contains(msg.Text, "📝 Практические работы по Архитектура") {
		t.Errorf("expected the practice list, got %q", msg.Text)
	}
}

func TestBackToList_DeletedMaterialFallsBackToSubjects(t *testing.T) {
	h, gate, _, _, _ := newHandler(t)

	cb := testutil.Callback(studentID, "mb:deleted1")
	h.BackToList(cb, bot.ParseAction(cb.Data))

	if got := gate.LastMessage().Text; got != "📚 Выберите предмет:" {
		t.Errorf("expected subject picker fallback, got %q", got)
	}
}

func TestUnknown_TextOffersMenu(t *testing.T) {
	h, gate, _, _, _ := newHandler(t)

	h.Unknown(testutil.Message(studentID, "что это"))
	msg := gate.LastMessage()
	if !strings.Contains(msg.Text, "Не понял ваше сообщение") || msg.Menu == nil {
		t.Errorf("expected hint with menu, got %q", msg.Text)
	}

	h.Unknown(testutil.Command(studentID, "frobnicate"))
	if got := gate.LastMessage().Text; !strings.Contains(got, "Неизвестная команда") {
		t.Errorf("expected unknown-command reply, got %q", got)
	}
}

func menuHasToken(menu *tgbotapi.InlineKeyboardMarkup, token string) bool {
	if menu == nil {
		return false
	}
	for _, row := range menu.InlineKeyboard {
		for _, btn := range row {
			if btn.CallbackData != nil && *btn.CallbackData == token {
				return true
			}
		}
	}
	return false
}
