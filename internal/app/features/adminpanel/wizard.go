// internal/app/features/adminpanel/wizard.go
package adminpanel

import (
	"fmt"
	"html"
	"path/filepath"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Krill-lover/welccom/internal/app/bot"
	"github.com/Krill-lover/welccom/internal/app/system/subjects"
	"github.com/Krill-lover/welccom/internal/app/system/textclean"
	"github.com/Krill-lover/welccom/internal/domain/models"
)

const subjectPrompt = "📝 ДОБАВЛЕНИЕ МАТЕРИАЛА\n\nВыберите предмет:"

// StartWizard opens a fresh submission draft at the subject step.
func (h *Handler) StartWizard(cb *tgbotapi.CallbackQuery) {
	if !h.Admins.IsAdmin(cb.From.ID) {
		h.deny(cb.ID)
		return
	}
	h.Stats.RegisterAction(cb.From.ID, "add_material_start", "")

	h.Sessions.Start(cb.From.ID)
	menu := wizardSubjectsKeyboard()
	h.Gate.EditText(cb.Message.Chat.ID, cb.Message.MessageID, subjectPrompt, &menu)
}

// ChooseSubject records the subject and branches: roster subjects go on
// to the group step, everything else to the type step.
func (h *Handler) ChooseSubject(cb *tgbotapi.CallbackQuery, a bot.Action) {
	sess, ok := h.sessionAt(cb, StepSubject)
	if !ok {
		return
	}
	s, ok := subjects.Get(a.SubjectKey)
	if !ok {
		h.Gate.AnswerCallback(cb.ID, "❌ Ошибка: предмет не найден")
		return
	}
	// A wizard pick is not a student view; it goes into the per-user
	// ledger but must not feed the subject_views counter.
	h.Stats.RegisterAction(cb.From.ID, "subject_selected", s.Name)

	sess.Subject = s
	if s.HasRoster() {
		sess.Step = StepGroup
		menu := wizardGroupsKeyboard(s)
		h.Gate.EditText(cb.Message.Chat.ID, cb.Message.MessageID, groupPrompt(s), &menu)
		return
	}
	sess.Step = StepType
	menu := wizardTypesKeyboard(s)
	h.Gate.EditText(cb.Message.Chat.ID, cb.Message.MessageID, typePrompt(s), &menu)
}

func (h *Handler) ChooseGroup(cb *tgbotapi.CallbackQuery, a bot.Action) {
	sess, ok := h.sessionAt(cb, StepGroup)
	if !ok {
		return
	}
	if a.Group != models.GroupAll && !sess.Subject.HasGroup(a.Group) {
		h.Gate.AnswerCallback(cb.ID, "❌ Ошибка: группа не найдена")
		return
	}

	sess.Group = a.Group
	sess.Step = StepTitle

	groupText := "Все"
	if a.Group != models.GroupAll {
		groupText = a.Group
	}
	text := fmt.Sprintf("📝 %s\nГруппа: %s\n\nВведите название материала:", sess.Subject.Name, groupText)
	menu := wizardCancelKeyboard()
	h.Gate.EditText(cb.Message.Chat.ID, cb.Message.MessageID, text, &menu)
}

func (h *Handler) ChooseType(cb *tgbotapi.CallbackQuery, a bot.Action) {
	sess, ok := h.sessionAt(cb, StepType)
	if !ok {
		return
	}
	label, ok := sess.Subject.TypeAt(a.TypeIndex)
	if !ok {
		h.Gate.AnswerCallback(cb.ID, "❌ Ошибка: тип не найден")
		return
	}

	sess.Group = models.GroupAll
	sess.MaterialType = label
	sess.Step = StepTitle

	noun := "лекции"
	if label != subjects.DefaultType {
		noun = "практической работы"
	}
	text := fmt.Sprintf("📝 %s\nТип: %s\n\nВведите название %s:", sess.Subject.Name, label, noun)
	menu := wizardCancelKeyboard()
	h.Gate.EditText(cb.Message.Chat.ID, cb.Message.MessageID, text, &menu)
}

// HandleMessage feeds a free-form message into the open wizard session.
// The dispatcher calls it only when the sender has an active session.
func (h *Handler) HandleMessage(msg *tgbotapi.Message) {
	sess, ok := h.Sessions.Get(msg.From.ID)
	if !ok {
		return
	}
	switch sess.Step {
	case StepTitle:
		h.handleTitle(msg, sess)
	case StepDescription:
		h.handleDescription(msg, sess)
	case StepFile:
		h.handleFile(msg, sess)
	default:
		// Button step: remind which screen we are on.
		h.Gate.SendText(msg.Chat.ID, "Используйте кнопки выше, чтобы продолжить.", nil)
	}
}

func (h *Handler) handleTitle(msg *tgbotapi.Message, sess *Session) {
	title := textclean.Strip(msg.Text)
	if title == "" {
		h.Gate.SendText(msg.Chat.ID, "❌ Название не может быть пустым. Введите название:", nil)
		return
	}

	sess.Title = title
	sess.Step = StepDescription

	text := draftSummary(sess) + "\nВведите описание материала (или '-' чтобы пропустить):"
	menu := wizardCancelKeyboard()
	h.Gate.SendText(msg.Chat.ID, text, &menu)
}

func (h *Handler) handleDescription(msg *tgbotapi.Message, sess *Session) {
	description := textclean.Strip(msg.Text)
	if description == "-" {
		description = ""
	}

	sess.Description = description
	sess.Step = StepFile

	text := draftSummary(sess) + "\n📎 Отправьте файл материала (документ, фото или видео):"
	menu := wizardCancelKeyboard()
	h.Gate.SendText(msg.Chat.ID, text, &menu)
}

// handleFile stores the attachment and commits the draft. Any failure
// before the catalog write keeps the session at the file step so the
// admin can retry; after a successful commit the session is gone, so a
// repeated send can never create a second material.
func (h *Handler) handleFile(msg *tgbotapi.Message, sess *Session) {
	const retryText = "❌ Не удалось сохранить файл. Пожалуйста, попробуйте отправить файл еще раз:"

	materialID := uuid.New().String()[:8]
	fileID, assetName, ok := attachmentOf(msg, materialID)
	if !ok {
		h.Gate.SendText(msg.Chat.ID, retryText, nil)
		return
	}

	body, err := h.Gate.DownloadFile(fileID)
	if err != nil {
		h.Log.Warn("download attachment", zap.String("file_id", fileID), zap.Error(err))
		h.Gate.SendText(msg.Chat.ID, retryText, nil)
		return
	}
	defer body.Close()

	if err := h.Media.Save(assetName, body); err != nil {
		h.Log.Error("store attachment", zap.String("asset", assetName), zap.Error(err))
		h.Gate.SendText(msg.Chat.ID, retryText, nil)
		return
	}

	material := models.Material{
		ID:           materialID,
		Title:        sess.Title,
		Subject:      sess.Subject.Name,
		Group:        sess.Group,
		MaterialType: sess.MaterialType,
		Description:  sess.Description,
		FilePath:     assetName,
		DateAdded:    h.Now().Format("2006-01-02"),
	}

	h.Sessions.Clear(msg.From.ID)
	menu := panelKeyboard()

	if err := h.Catalog.Add(material); err != nil {
		h.Log.Error("commit material", zap.String("material_id", materialID), zap.Error(err))
		h.Gate.SendText(msg.Chat.ID, "❌ Ошибка при сохранении материала.", &menu)
		return
	}

	groupInfo := ""
	if !material.ForAllGroups() {
		groupInfo = " для группы " + material.Group
	}
	typeInfo := ""
	if material.MaterialType != "" {
		typeInfo = " (" + material.MaterialType + ")"
	}
	text := fmt.Sprintf(
		"✅ Материал успешно добавлен!\n\n📚 Название: %s\n🎯 Предмет: %s%s%s\n📄 Файл: %s\n📅 Дата: %s",
		html.EscapeString(material.Title), html.EscapeString(material.Subject),
		groupInfo, typeInfo, assetName, material.DateAdded,
	)
	h.Gate.SendText(msg.Chat.ID, text, &menu)
}

// Back steps the wizard to the previous screen, rebuilt purely from the
// session draft.
func (h *Handler) Back(cb *tgbotapi.CallbackQuery) {
	sess, ok := h.Sessions.Get(cb.From.ID)
	if !ok {
		h.ShowPanel(cb)
		return
	}

	switch sess.Step {
	case StepGroup, StepType:
		sess.Step = StepSubject
		menu := wizardSubjectsKeyboard()
		h.Gate.EditText(cb.Message.Chat.ID, cb.Message.MessageID, subjectPrompt, &menu)
	case StepTitle:
		if sess.Subject.HasRoster() {
			sess.Step = StepGroup
			menu := wizardGroupsKeyboard(sess.Subject)
			h.Gate.EditText(cb.Message.Chat.ID, cb.Message.MessageID, groupPrompt(sess.Subject), &menu)
			return
		}
		sess.Step = StepType
		menu := wizardTypesKeyboard(sess.Subject)
		h.Gate.EditText(cb.Message.Chat.ID, cb.Message.MessageID, typePrompt(sess.Subject), &menu)
	default:
		h.Sessions.Clear(cb.From.ID)
		h.ShowPanel(cb)
	}
}

// Cancel aborts any open draft and returns to the main menu.
func (h *Handler) Cancel(cb *tgbotapi.CallbackQuery, mainMenu tgbotapi.InlineKeyboardMarkup) {
	h.Sessions.Clear(cb.From.ID)
	h.Gate.EditText(cb.Message.Chat.ID, cb.Message.MessageID, "❌ Действие отменено.", &mainMenu)
}

func (h *Handler) sessionAt(cb *tgbotapi.CallbackQuery, step Step) (*Session, bool) {
	if !h.Admins.IsAdmin(cb.From.ID) {
		h.deny(cb.ID)
		return nil, false
	}
	sess, ok := h.Sessions.Get(cb.From.ID)
	if !ok || sess.Step != step {
		h.Gate.AnswerCallback(cb.ID, "⚠️ Эта кнопка устарела")
		return nil, false
	}
	return sess, true
}

func groupPrompt(s subjects.Subject) string {
	return fmt.Sprintf("📝 %s\n\nВыберите группу:", s.Name)
}

func typePrompt(s subjects.Subject) string {
	return fmt.Sprintf("📝 %s\n\nВыберите тип материала:", s.Name)
}

func draftSummary(sess *Session) string {
	var b strings.Builder
	b.WriteString("📝 " + sess.Subject.Name + "\n")
	if sess.Group != "" && sess.Group != models.GroupAll {
		b.WriteString("Группа: " + sess.Group + "\n")
	}
	if sess.MaterialType != "" {
		b.WriteString("Тип: " + sess.MaterialType + "\n")
	}
	if sess.Title != "" {
		b.WriteString("Название: " + html.EscapeString(sess.Title) + "\n")
	}
	if sess.Step >= StepFile {
		description := sess.Description
		if description == "" {
			description = "нет"
		}
		b.WriteString("Описание: " + html.EscapeString(description) + "\n")
	}
	return b.String()
}

// attachmentOf picks the strongest attachment from the message and names
// the stored asset after the material id: documents keep their original
// extension, photos and videos get fixed suffixes. For photos Telegram
// sends several sizes; the last one is the largest.
func attachmentOf(msg *tgbotapi.Message, materialID string) (fileID, assetName string, ok bool) {
	switch {
	case msg.Document != nil:
		return msg.Document.FileID, materialID + filepath.Ext(msg.Document.FileName), true
	case len(msg.Photo) > 0:
		return msg.Photo[len(msg.Photo)-1].FileID, materialID + "_photo.jpg", true
	case msg.Video != nil:
		return msg.Video.FileID, materialID + "_video.mp4", true
	}
	return "", "", false
}
