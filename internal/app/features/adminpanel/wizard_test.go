// internal/app/features/adminpanel/wizard_test.go
package adminpanel_test

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/Krill-lover/welccom/internal/app/bot"
	"github.com/Krill-lover/welccom/internal/app/features/adminpanel"
	"github.com/Krill-lover/welccom/internal/app/store/catalog"
	"github.com/Krill-lover/welccom/internal/app/store/media"
	"github.com/Krill-lover/welccom/internal/app/store/stats"
	"github.com/Krill-lover/welccom/internal/app/system/access"
	"github.com/Krill-lover/welccom/internal/app/system/subjects"
	"github.com/Krill-lover/welccom/internal/domain/models"
	"github.com/Krill-lover/welccom/internal/testutil"
)

const (
	adminID    = int64(1862652984)
	outsiderID = int64(42)
)

func newHandler(t *testing.T) (*adminpanel.Handler, *testutil.RecordingGateway, *catalog.Store, *media.Store, *stats.Store) {
	t.Helper()
	f := testutil.NewFixtures(t)
	cat, med, st := f.Stores()
	gate := &testutil.RecordingGateway{FileContent: []byte("file-bytes")}
	h := adminpanel.NewHandler(gate, cat, med, st, access.AdminList{adminID}, "admin-sticker", zap.NewNop())
	return h, gate, cat, med, st
}

func step(t *testing.T, h *adminpanel.Handler, data string) {
	t.Helper()
	cb := testutil.Callback(adminID, data)
	a := bot.ParseAction(cb.Data)
	switch a.Kind {
	case bot.KindAddMaterial:
		h.StartWizard(cb)
	case bot.KindWizardSubject:
		h.ChooseSubject(cb, a)
	case bot.KindWizardGroup:
		h.ChooseGroup(cb, a)
	case bot.KindWizardType:
		h.ChooseType(cb, a)
	case bot.KindWizardBack:
		h.Back(cb)
	default:
		t.Fatalf("unexpected token %q in wizard test", data)
	}
}

func TestWizard_PlainSubjectFullRun(t *testing.T) {
	h, gate, cat, med, _ := newHandler(t)

	step(t, h, "add_material")
	step(t, h, "as:ит")
	step(t, h, "at:0")
	h.HandleMessage(testutil.Message(adminID, "Lecture 1"))
	h.HandleMessage(testutil.Message(adminID, "-"))
	h.HandleMessage(testutil.DocumentMessage(adminID, "file-1", "notes.pdf"))

	all, err := cat.All()
	if err != nil {
		t.Fatalf("read catalog: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected exactly one committed material, got %d", len(all))
	}
	var m models.Material
	for _, m = range all {
	}
	if m.Subject != "ИТ" || m.Group != models.GroupAll || m.MaterialType != subjects.DefaultType {
		t.Errorf("unexpected taxonomy fields: %+v", m)
	}
	if m.Title != "Lecture 1" || m.Description != "" {
		t.Errorf("unexpected text fields: %+v", m)
	}
	if !strings.HasSuffix(m.FilePath, ".pdf") || !med.Exists(m.FilePath) {
		t.Errorf("expected stored pdf asset, got %q", m.FilePath)
	}
	if got := gate.LastMessage().Text; !strings.Contains(got, "✅ Материал успешно добавлен!") {
		t.Errorf("expected success confirmation, got %q", got)
	}
	if h.Sessions.Active(adminID) {
		t.Error("expected session cleared after commit")
	}
}

func TestWizard_RosterSubjectCarriesGroup(t *testing.T) {
	h, _, cat, _, _ := newHandler(t)

	step(t, h, "add_material")
	step(t, h, "as:информатика")
	step(t, h, "ag:15")
	h.HandleMessage(testutil.Message(adminID, "Сети"))
	h.HandleMessage(testutil.Message(adminID, "Введение в сети"))
	h.HandleMessage(testutil.PhotoMessage(adminID, "small", "large"))

	all, _ := cat.All()
	if len(all) != 1 {
		t.Fatalf("expected one material, got %d", len(all))
	}
	for _, m := range all {
		if m.Group != "15" || m.MaterialType != "" {
			t.Errorf("unexpected taxonomy fields: %+v", m)
		}
		if m.Description != "Введение в сети" {
			t.Errorf("unexpected description %q", m.Description)
		}
		if !strings.HasSuffix(m.FilePath, "_photo.jpg") {
			t.Errorf("expected photo suffix, got %q", m.FilePath)
		}
	}
}

func TestWizard_EmptyTitleRePrompts(t *testing.T) {
	h, gate, cat, _, _ := newHandler(t)

	step(t, h, "add_material")
	step(t, h, "as:ит")
	step(t, h, "at:0")
	h.HandleMessage(testutil.Message(adminID, "   "))

	sess, ok := h.Sessions.Get(adminID)
	if !ok || sess.Step != adminpanel.StepTitle {
		t.Fatalf("expected session to stay at the title step, got %+v", sess)
	}
	if got := gate.LastMessage().Text; !strings.Contains(got, "не может быть пустым") {
		t.Errorf("expected re-prompt, got %q", got)
	}
	if all, _ := cat.All(); len(all) != 0 {
		t.Errorf("expected no catalog mutation, got %d entries", len(all))
	}
}

func TestWizard_TitleMarkupStripped(t *testing.T) {
	h, _, cat, _, _ := newHandler(t)

	step(t, h, "add_material")
	step(t, h, "as:ит")
	step(t, h, "at:0")
	h.HandleMessage(testutil.Message(adminID, "<b>Лекция</b> 1"))
	h.HandleMessage(testutil.Message(adminID, "-"))
	h.HandleMessage(testutil.VideoMessage(adminID, "vid-1"))

	all, _ := cat.All()
	for _, m := range all {
		if m.Title != "Лекция 1" {
			t.Errorf("expected markup stripped from title, got %q", m.Title)
		}
		if !strings.HasSuffix(m.FilePath, "_video.mp4") {
			t.Errorf("expected video suffix, got %q", m.FilePath)
		}
	}
}

func TestWizard_MessageWithoutAttachmentRePrompts(t *testing.T) {
	h, gate, cat, _, _ := newHandler(t)

	step(t, h, "add_material")
	step(t, h, "as:ит")
	step(t, h, "at:0")
	h.HandleMessage(testutil.Message(adminID, "Лекция"))
	h.HandleMessage(testutil.Message(adminID, "-"))
	h.HandleMessage(testutil.Message(adminID, "вот файл"))

	sess, ok := h.Sessions.Get(adminID)
	if !ok || sess.Step != adminpanel.StepFile {
		t.Fatalf("expected session to stay at the file step, got %+v", sess)
	}
	if got := gate.LastMessage().Text; !strings.Contains(got, "Не удалось сохранить файл") {
		t.Errorf("expected retry prompt, got %q", got)
	}
	if all, _ := cat.All(); len(all) != 0 {
		t.Errorf("expected no catalog mutation, got %d entries", len(all))
	}
}

func TestWizard_SecondFileAfterCommitDoesNothing(t *testing.T) {
	h, _, cat, _, _ := newHandler(t)

	step(t, h, "add_material")
	step(t, h, "as:ит")
	step(t, h, "at:0")
	h.HandleMessage(testutil.Message(adminID, "Лекция"))
	h.HandleMessage(testutil.Message(adminID, "-"))
	h.HandleMessage(testutil.DocumentMessage(adminID, "file-1", "a.pdf"))
	h.HandleMessage(testutil.DocumentMessage(adminID, "file-2", "b.pdf"))

	if all, _ := cat.All(); len(all) != 1 {
		t.Errorf("expected exactly one material after repeat send, got %d", len(all))
	}
}

func TestWizard_BackFromTitleReturnsToBranch(t *testing.T) {
	h, gate, _, _, _ := newHandler(t)

	// Roster branch: back from the title step reopens the group picker.
	step(t, h, "add_material")
	step(t, h, "as:информатика")
	step(t, h, "ag:14")
	step(t, h, "admin_back")

	sess, _ := h.Sessions.Get(adminID)
	if sess.Step != adminpanel.StepGroup {
		t.Errorf("expected group step after back, got %v", sess.Step)
	}
	if !strings.Contains(gate.LastMessage().Text, "Выберите группу") {
		t.Errorf("expected group prompt, got %q", gate.LastMessage().Text)
	}

	// Taxonomy branch: back from the title step reopens the type picker.
	step(t, h, "add_material")
	step(t, h, "as:мдк")
	step(t, h, "at:1")
	step(t, h, "admin_back")

	sess, _ = h.Sessions.Get(adminID)
	if sess.Step != adminpanel.StepType {
		t.Errorf("expected type step after back, got %v", sess.Step)
	}
	if !strings.Contains(gate.LastMessage().Text, "Выберите тип материала") {
		t.Errorf("expected type prompt, got %q", gate.LastMessage().Text)
	}
}

func TestWizard_BackFromGroupReturnsToSubjects(t *testing.T) {
	h, gate, _, _, _ := newHandler(t)

	step(t, h, "add_material")
	step(t, h, "as:информатика")
	step(t, h, "admin_back")

	sess, _ := h.Sessions.Get(adminID)
	if sess.Step != adminpanel.StepSubject {
		t.Errorf("expected subject step after back, got %v", sess.Step)
	}
	if !strings.Contains(gate.LastMessage().Text, "Выберите предмет") {
		t.Errorf("expected subject prompt, got %q", gate.LastMessage().Text)
	}
}

func TestWizard_SubjectPickDoesNotCountAsView(t *testing.T) {
	h, _, _, _, st := newHandler(t)

	step(t, h, "add_material")
	step(t, h, "as:ит")

	if views := st.PopularSubjects(); len(views) != 0 {
		t.Errorf("wizard subject pick must not count as a subject view, got %v", views)
	}
	users := st.TopUsers(1)
	if len(users) == 0 || users[0].TotalActions < 2 {
		t.Errorf("expected wizard actions in the per-user ledger, got %v", users)
	}
}

func TestWizard_StaleStepButtonAnswered(t *testing.T) {
	h, gate, _, _, _ := newHandler(t)

	step(t, h, "add_material")
	// Group token while the wizard still waits for a subject.
	cb := testutil.Callback(adminID, "ag:14")
	h.ChooseGroup(cb, bot.ParseAction(cb.Data))

	if len(gate.Callbacks) == 0 || !strings.Contains(gate.Callbacks[len(gate.Callbacks)-1], "устарела") {
		t.Errorf("expected stale-button answer, got %v", gate.Callbacks)
	}
}

func TestWizard_NonAdminDenied(t *testing.T) {
	h, gate, _, _, _ := newHandler(t)

	cb := testutil.Callback(outsiderID, "add_material")
	h.StartWizard(cb)

	if h.Sessions.Active(outsiderID) {
		t.Error("expected no session for outsider")
	}
	if len(gate.Callbacks) != 1 || !strings.Contains(gate.Callbacks[0], "Доступ запрещен") {
		t.Errorf("expected denial answer, got %v", gate.Callbacks)
	}
}

func TestCancel_ClearsSession(t *testing.T) {
	h, gate, _, _, _ := newHandler(t)

	step(t, h, "add_material")
	cb := testutil.Callback(adminID, "cancel")
	h.Cancel(cb, bot.Menu([]bot.MenuItem{{Label: "m", Token: bot.TokenMainMenu()}}))

	if h.Sessions.Active(adminID) {
		t.Error("expected session cleared by cancel")
	}
	if got := gate.LastMessage().Text; got != "❌ Действие отменено." {
		t.Errorf("unexpected cancel reply %q", got)
	}
}
