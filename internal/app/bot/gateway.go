// internal/app/bot/gateway.go
package bot

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Gateway is the messaging surface handlers talk to. Send and edit
// failures are logged inside the gateway so handler code stays linear;
// only operations a handler branches on return an error.
type Gateway interface {
	SendText(chatID int64, text string, menu *tgbotapi.InlineKeyboardMarkup)
	EditText(chatID int64, messageID int, text string, menu *tgbotapi.InlineKeyboardMarkup)
	SendSticker(chatID int64, stickerID string)
	SendAsset(chatID int64, path, caption string) error
	AnswerCallback(callbackID, text string)
	DownloadFile(fileID string) (io.ReadCloser, error)
}

// Telegram is the Bot API backed Gateway.
type Telegram struct {
	api    *tgbotapi.BotAPI
	client *http.Client
	log    *zap.Logger
}

func NewTelegram(api *tgbotapi.BotAPI, logger *zap.Logger) *Telegram {
	return &Telegram{
		api:    api,
		client: &http.Client{Timeout: 60 * time.Second},
		log:    logger,
	}
}

func (t *Telegram) SendText(chatID int64, text string, menu *tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if menu != nil {
		msg.ReplyMarkup = *menu
	}
	if _, err := t.api.Send(msg); err != nil {
		t.log.Warn("send message failed", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

// EditText rewrites an existing message in place. Edit failures are
// common in normal operation (stale message, identical content) and are
// logged at debug only.
func (t *Telegram) EditText(chatID int64, messageID int, text string, menu *tgbotapi.InlineKeyboardMarkup) {
	var edit tgbotapi.EditMessageTextConfig
	if menu != nil {
		edit = tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, *menu)
	} else {
		edit = tgbotapi.NewEditMessageText(chatID, messageID, text)
	}
	edit.ParseMode = tgbotapi.ModeHTML
	if _, err := t.api.Send(edit); err != nil {
		t.log.Debug("edit message failed", zap.Int64("chat_id", chatID), zap.Int("message_id", messageID), zap.Error(err))
	}
}

func (t *Telegram) SendSticker(chatID int64, stickerID string) {
	if stickerID == "" {
		return
	}
	sticker := tgbotapi.NewSticker(chatID, tgbotapi.FileID(stickerID))
	if _, err := t.api.Send(sticker); err != nil {
		t.log.Warn("send sticker failed", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

// SendAsset delivers a stored file, picking the Telegram media class from
// the file extension.
func (t *Telegram) SendAsset(chatID int64, path, caption string) error {
	var msg tgbotapi.Chattable
	switch strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".") {
	case "jpg", "jpeg", "png", "gif":
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(path))
		photo.Caption = caption
		msg = photo
	case "mp4", "avi", "mov", "mkv":
		video := tgbotapi.NewVideo(chatID, tgbotapi.FilePath(path))
		video.Caption = caption
		msg = video
	default:
		doc := tgbotapi.NewDocument(chatID, tgbotapi.FilePath(path))
		doc.Caption = caption
		msg = doc
	}
	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("send asset %s: %w", filepath.Base(path), err)
	}
	return nil
}

func (t *Telegram) AnswerCallback(callbackID, text string) {
	cb := tgbotapi.NewCallback(callbackID, text)
	if _, err := t.api.Request(cb); err != nil {
		t.log.Debug("answer callback failed", zap.Error(err))
	}
}

// DownloadFile opens a stream for an uploaded file. The caller owns the
// ReadCloser.
func (t *Telegram) DownloadFile(fileID string) (io.ReadCloser, error) {
	file, err := t.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("resolve file %s: %w", fileID, err)
	}
	resp, err := t.client.Get(file.Link(t.api.Token))
	if err != nil {
		return nil, fmt.Errorf("download file %s: %w", fileID, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("download file %s: unexpected status %s", fileID, resp.Status)
	}
	return resp.Body, nil
}
