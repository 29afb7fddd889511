// internal/testutil/fixtures.go
package testutil

import (
	"path/filepath"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Krill-lover/welccom/internal/app/store/catalog"
	"github.com/Krill-lover/welccom/internal/app/store/media"
	"github.com/Krill-lover/welccom/internal/app/store/stats"
	"github.com/Krill-lover/welccom/internal/domain/models"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	t *testing.T
}

// NewFixtures creates a new Fixtures instance.
func NewFixtures(t *testing.T) *Fixtures {
	t.Helper()
	return &Fixtures{t: t}
}

// Stores builds a catalog, media, and stats store backed by a fresh
// temporary directory.
func (f *Fixtures) Stores() (*catalog.Store, *media.Store, *stats.Store) {
	f.t.Helper()
	dir := f.t.TempDir()

	med, err := media.New(filepath.Join(dir, "media"), zap.NewNop())
	if err != nil {
		f.t.Fatalf("create media store: %v", err)
	}
	cat := catalog.New(filepath.Join(dir, "materials.json"), med, zap.NewNop())
	st := stats.New(filepath.Join(dir, "statistics.json"), zap.NewNop())
	return cat, med, st
}

// Material creates a catalog entry with sensible defaults; override
// fields via the mutate callback.
func (f *Fixtures) Material(cat *catalog.Store, id string, mutate func(*models.Material)) models.Material {
	f.t.Helper()
	m := models.Material{
		ID:        id,
		Title:     "Лекция " + id,
		Subject:   "Информатика",
		Group:     "14",
		DateAdded: "2026-09-01",
	}
	if mutate != nil {
		mutate(&m)
	}
	if err := cat.Add(m); err != nil {
		f.t.Fatalf("add material %s: %v", id, err)
	}
	return m
}

// Message builds an inbound private-chat text message.
func Message(userID int64, text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		MessageID: 1,
		From:      &tgbotapi.User{ID: userID, FirstName: "Test", UserName: "tester"},
		Chat:      &tgbotapi.Chat{ID: userID, Type: "private"},
		Text:      text,
	}
}

// Command builds an inbound slash command message.
func Command(userID int64, command string) *tgbotapi.Message {
	msg := Message(userID, "/"+command)
	msg.Entities = []tgbotapi.MessageEntity{{
		Type:   "bot_command",
		Offset: 0,
		Length: len("/" + command),
	}}
	return msg
}

// Callback builds an inbound callback query carrying the given token.
func Callback(userID int64, data string) *tgbotapi.CallbackQuery {
	return &tgbotapi.CallbackQuery{
		ID:      "cb-1",
		From:    &tgbotapi.User{ID: userID, FirstName: "Test", UserName: "tester"},
		Message: Message(userID, "screen"),
		Data:    data,
	}
}

// DocumentMessage builds an admin upload carrying a document attachment.
func DocumentMessage(userID int64, fileID, fileName string) *tgbotapi.Message {
	msg := Message(userID, "")
	msg.Document = &tgbotapi.Document{FileID: fileID, FileName: fileName}
	return msg
}

// PhotoMessage builds an admin upload carrying a photo in several sizes.
func PhotoMessage(userID int64, fileIDs ...string) *tgbotapi.Message {
	msg := Message(userID, "")
	for _, id := range fileIDs {
		msg.Photo = append(msg.Photo, tgbotapi.PhotoSize{FileID: id})
	}
	return msg
}

// VideoMessage builds an admin upload carrying a video attachment.
func VideoMessage(userID int64, fileID string) *tgbotapi.Message {
	msg := Message(userID, "")
	msg.Video = &tgbotapi.Video{FileID: fileID}
	return msg
}
