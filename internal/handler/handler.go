package handler

import (
	"fmt"
	"time"

	"vacation-tracker-bot/internal/config"
	"vacation-tracker-bot/internal/service"
	"vacation-tracker-bot/pkg/dateutil"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// Sender отправляет ответы в Telegram, реализуется telegram.Client
type Sender interface {
	Send(msg tgbotapi.Chattable) error
	Answer(callbackID, text string) error
}

const (
	callbackConfirmReset = "confirm_reset"
	callbackConfirmClear = "confirm_clear"
	callbackCancel       = "cancel_action"
)

type Handler struct {
	client     Sender
	tracker    *service.TrackerService
	userStates map[int64]string
	config     *config.BotConfig
	logger     *logrus.Logger
	now        func() time.Time
}

func NewHandler(
	client Sender,
	tracker *service.TrackerService,
	cfg *config.BotConfig,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		client:     client,
		tracker:    tracker,
		userStates: make(map[int64]string),
		config:     cfg,
		logger:     logger,
		now:        dateutil.Today,
	}
}

// HandleUpdates обрабатывает обновления по одному, пока канал не закрыт
func (h *Handler) HandleUpdates(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		h.HandleUpdate(update)
	}
}

func (h *Handler) HandleUpdate(update tgbotapi.Update) {
	// Обработка callback query (для inline кнопок)
	if update.CallbackQuery != nil {
		h.handleCallbackQuery(update.CallbackQuery)
		return
	}

	if update.Message == nil {
		return
	}

	h.handleMessage(update.Message)
}

func (h *Handler) isOwner(chatID int64) bool {
	return chatID == h.config.OwnerChatID
}

// handleCallbackQuery обрабатывает inline кнопки
func (h *Handler) handleCallbackQuery(callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil || callback.Message.Chat == nil {
		return
	}
	chatID := callback.Message.Chat.ID
	data := callback.Data

	// Отвечаем на callback (убираем "часики" у кнопки)
	defer func() {
		if err := h.client.Answer(callback.ID, ""); err != nil {
			h.logger.WithError(err).Debug("Failed to answer callback")
		}
	}()

	if !h.isOwner(chatID) {
		h.logger.WithField("chat_id", chatID).Warn("Callback from foreign chat ignored")
		return
	}

	// Удаляем клавиатуру
	h.send(tgbotapi.NewEditMessageReplyMarkup(chatID, callback.Message.MessageID, tgbotapi.NewInlineKeyboardMarkup()))

	switch data {
	case callbackConfirmReset:
		if err := h.tracker.ResetContract(); err != nil {
			h.replyError(chatID, "сброса договора", err)
			return
		}
		h.reply(chatID, "✅ Договор сброшен. Вахты и больничные сохранены.\nИспользуйте /setup чтобы задать новую дату начала.")

	case callbackConfirmClear:
		if err := h.tracker.ClearPeriods(); err != nil {
			h.replyError(chatID, "очистки периодов", err)
			return
		}
		h.reply(chatID, "✅ Все вахты и больничные удалены.")

	case callbackCancel:
		h.reply(chatID, "❌ Действие отменено.")

	default:
		h.logger.WithField("data", data).Warn("Unknown callback data")
	}
}

func (h *Handler) handleMessage(message *tgbotapi.Message) {
	if message.Chat == nil {
		return
	}
	chatID := message.Chat.ID

	username := ""
	if message.From != nil {
		username = message.From.UserName
	}
	h.logger.WithFields(logrus.Fields{
		"chat_id":  chatID,
		"username": username,
	}).Infof("Message: %s", message.Text)

	if !h.isOwner(chatID) {
		h.logger.WithField("chat_id", chatID).Warn("Message from foreign chat rejected")
		h.reply(chatID, "⛔ Этот бот доступен только владельцу.")
		return
	}

	// Проверяем, находится ли пользователь в процессе настройки
	if state, exists := h.userStates[chatID]; exists {
		if message.IsCommand() && message.Command() == "cancel" {
			delete(h.userStates, chatID)
			h.reply(chatID, "❌ Настройка отменена.")
			return
		}
		h.handleSetupState(message, state)
		return
	}

	if message.IsCommand() {
		h.handleCommand(message)
		return
	}

	h.reply(chatID, "🤔 Я понимаю только команды. Используйте /help для списка команд.")
}

func (h *Handler) send(msg tgbotapi.Chattable) {
	if err := h.client.Send(msg); err != nil {
		h.logger.WithError(err).Error("Failed to send message")
	}
}

func (h *Handler) reply(chatID int64, text string) {
	h.send(tgbotapi.NewMessage(chatID, text))
}

func (h *Handler) replyMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	h.send(msg)
}

func (h *Handler) confirm(chatID int64, text string, confirmData string) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Да", confirmData),
			tgbotapi.NewInlineKeyboardButtonData("❌ Нет, отменить", callbackCancel),
		),
	)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard
	h.send(msg)
}

// replyError показывает ошибку пользователю
func (h *Handler) replyError(chatID int64, action string, err error) {
	if isValidationError(err) {
		h.reply(chatID, "⛔ "+err.Error())
		return
	}

	h.logger.WithError(err).WithField("action", action).Error("Command failed")
	h.reply(chatID, fmt.Sprintf("❌ Ошибка %s: %s", action, err.Error()))
}

// replyRejected - то же для изменения данных: ошибка проверки ввода означает отклоненную запись
func (h *Handler) replyRejected(chatID int64, action string, err error) {
	if isValidationError(err) {
		h.reply(chatID, "⛔ Запись отклонена: "+err.Error())
		return
	}

	h.replyError(chatID, action, err)
}
