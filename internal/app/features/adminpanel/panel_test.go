// internal/app/features/adminpanel/panel_test.go
package adminpanel_test

import (
	"strings"
	"testing"

	"github.com/Krill-lover/welccom/internal/app/bot"
	"github.com/Krill-lover/welccom/internal/domain/models"
	"github.com/Krill-lover/welccom/internal/testutil"
)

func TestShowPanelCmd_AdminGetsStickerAndPanel(t *testing.T) {
	h, gate, _, _, _ := newHandler(t)

	h.ShowPanelCmd(testutil.Command(adminID, "admin"))

	if len(gate.Stickers) != 1 || gate.Stickers[0] != "admin-sticker" {
		t.Errorf("expected admin sticker, got %v", gate.Stickers)
	}
	msg := gate.LastMessage()
	if !strings.Contains(msg.Text, "Панель администратора") || msg.Menu == nil {
		t.Errorf("expected admin panel, got %q", msg.Text)
	}
}

func TestShowPanelCmd_OutsiderDenied(t *testing.T) {
	h, gate, _, _, _ := newHandler(t)

	h.ShowPanelCmd(testutil.Command(outsiderID, "admin"))

	if len(gate.Stickers) != 0 {
		t.Errorf("did not expect sticker for outsider, got %v", gate.Stickers)
	}
	if got := gate.LastMessage().Text; got != "🚫 Доступ запрещен" {
		t.Errorf("expected denial, got %q", got)
	}
}

func TestShowPanel_ClearsOpenDraft(t *testing.T) {
	h, _, _, _, _ := newHandler(t)

	step(t, h, "add_material")
	if !h.Sessions.Active(adminID) {
		t.Fatal("expected open session")
	}

	h.ShowPanel(testutil.Callback(adminID, "admin_panel"))

	if h.Sessions.Active(adminID) {
		t.Error("expected opening the panel to discard the draft")
	}
}

func TestManage_EmptyCatalog(t *testing.T) {
	h, gate, _, _, _ := newHandler(t)

	h.Manage(testutil.Callback(adminID, "manage_materials"))

	if got := gate.LastMessage().Text; !strings.Contains(got, "Нет материалов для управления") {
		t.Errorf("expected empty notice, got %q", got)
	}
}

func TestManage_ListsDeleteButtons(t *testing.T) {
	h, gate, cat, _, _ := newHandler(t)
	f := testutil.NewFixtures(t)
	f.Material(cat, "mat00001", nil)

	h.Manage(testutil.Callback(adminID, "manage_materials"))

	menu := gate.LastMessage().Menu
	if menu == nil {
		t.Fatal("expected manage keyboard")
	}
	found := false
	for _, row := range menu.InlineKeyboard {
		for _, btn := range row {
			if btn.CallbackData != nil && *btn.CallbackData == bot.TokenDelete("mat00001") {
				found = true
			}
		}
	}
	if !found {
		t.Error("expected delete button for the material")
	}
}

func TestConfirmDelete_ShowsConfirmation(t *testing.T) {
	h, gate, cat, _, _ := newHandler(t)
	f := testutil.NewFixtures(t)
	f.Material(cat, "mat00002", func(m *models.Material) { m.Title = "Лекция 2" })

	cb := testutil.Callback(adminID, "dc:mat00002")
	h.ConfirmDelete(cb, bot.ParseAction(cb.Data))

	msg := gate.LastMessage()
	if !strings.Contains(msg.Text, "Подтверждение удаления") || !strings.Contains(msg.Text, "Лекция 2") {
		t.Errorf("expected confirmation prompt, got %q", msg.Text)
	}
}

func TestDelete_RemovesMaterialAndAsset(t *testing.T) {
	h, gate, cat, med, _ := newHandler(t)
	f := testutil.NewFixtures(t)
	if err := med.Save("mat00003.pdf", strings.NewReader("x")); err != nil {
		t.Fatalf("save media: %v", err)
	}
	f.Material(cat, "mat00003", func(m *models.Material) { m.FilePath = "mat00003.pdf" })

	cb := testutil.Callback(adminID, "dm:mat00003")
	h.Delete(cb, bot.ParseAction(cb.Data))

	if _, err := cat.Get("mat00003"); err == nil {
		t.Error("expected material gone from catalog")
	}
	if med.Exists("mat00003.pdf") {
		t.Error("expected stored asset removed")
	}
	if got := gate.LastMessage().Text; !strings.Contains(got, "удален!") {
		t.Errorf("expected deletion confirmation, got %q", got)
	}
}

func TestDelete_StaleButton(t *testing.T) {
	h, gate, _, _, _ := newHandler(t)

	cb := testutil.Callback(adminID, "dm:absent01")
	h.Delete(cb, bot.ParseAction(cb.Data))

	if len(gate.Callbacks) != 1 || !strings.Contains(gate.Callbacks[0], "не найден") {
		t.Errorf("expected not-found answer, got %v", gate.Callbacks)
	}
}

func TestDelete_OutsiderDenied(t *testing.T) {
	h, gate, cat, _, _ := newHandler(t)
	f := testutil.NewFixtures(t)
	f.Material(cat, "mat00004", nil)

	cb := testutil.Callback(outsiderID, "dm:mat00004")
	h.Delete(cb, bot.ParseAction(cb.Data))

	if _, err := cat.Get("mat00004"); err != nil {
		t.Error("expected material untouched")
	}
	if len(gate.Callbacks) != 1 || !strings.Contains(gate.Callbacks[0], "Доступ запрещен") {
		t.Errorf("expected denial answer, got %v", gate.Callbacks)
	}
}
