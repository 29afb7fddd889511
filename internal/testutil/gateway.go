// internal/testutil/gateway.go
package testutil

import (
	"bytes"
	"io"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// SentMessage records one outbound text, either sent fresh or edited in
// place.
type SentMessage struct {
	ChatID    int64
	MessageID int // zero for fresh sends
	Text      string
	Menu      *tgbotapi.InlineKeyboardMarkup
	Edited    bool
}

// SentAsset records one delivered file.
type SentAsset struct {
	ChatID  int64
	Path    string
	Caption string
}

// RecordingGateway captures everything a handler tries to send so tests
// can assert on the conversation without a live Bot API.
type RecordingGateway struct {
	Messages  []SentMessage
	Assets    []SentAsset
	Stickers  []string
	Callbacks []string

	// AssetErr, when set, is returned from SendAsset.
	AssetErr error
	// FileContent backs DownloadFile; DownloadErr overrides it.
	FileContent []byte
	DownloadErr error
}

func (g *RecordingGateway) SendText(chatID int64, text string, menu *tgbotapi.InlineKeyboardMarkup) {
	g.Messages = append(g.Messages, SentMessage{ChatID: chatID, Text: text, Menu: menu})
}

func (g *RecordingGateway) EditText(chatID int64, messageID int, text string, menu *tgbotapi.InlineKeyboardMarkup) {
	g.Messages = append(g.Messages, SentMessage{ChatID: chatID, MessageID: messageID, Text: text, Menu: menu, Edited: true})
}

func (g *RecordingGateway) SendSticker(chatID int64, stickerID string) {
	g.Stickers = append(g.Stickers, stickerID)
}

func (g *RecordingGateway) SendAsset(chatID int64, path, caption string) error {
	if g.AssetErr != nil {
		return g.AssetErr
	}
	g.Assets = append(g.Assets, SentAsset{ChatID: chatID, Path: path, Caption: caption})
	return nil
}

func (g *RecordingGateway) AnswerCallback(callbackID, text string) {
	g.Callbacks = append(g.Callbacks, text)
}

func (g *RecordingGateway) DownloadFile(fileID string) (io.ReadCloser, error) {
	if g.DownloadErr != nil {
		return nil, g.DownloadErr
	}
	return io.NopCloser(bytes.NewReader(g.FileContent)), nil
}

// LastMessage returns the most recent recorded message.
func (g *RecordingGateway) LastMessage() SentMessage {
	if len(g.Messages) == 0 {
		return SentMessage{}
	}
	return g.Messages[len(g.Messages)-1]
}
