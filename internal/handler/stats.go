package handler

import (
	"vacation-tracker-bot/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// showStats показывает итоги с начала договора по сегодня
func (h *Handler) showStats(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	report, err := h.tracker.Report(h.now())
	if err != nil {
		h.replyError(chatID, "расчета статистики", err)
		return
	}

	h.reply(chatID, service.FormatReport(report))
}

func (h *Handler) showLocations(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	report, err := h.tracker.Report(h.now())
	if err != nil {
		h.replyError(chatID, "расчета статистики", err)
		return
	}

	h.reply(chatID, service.FormatLocations(report.Summary))
}

func (h *Handler) showCalendar(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID
	today := h.now()

	year, month, err := parseCalendarArgs(args, today)
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	calendar, err := h.tracker.Calendar(year, month, today)
	if err != nil {
		h.replyError(chatID, "построения календаря", err)
		return
	}

	h.replyMarkdown(chatID, service.FormatCalendar(calendar))
}

// exportData отправляет данные файлом
func (h *Handler) exportData(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	filename, data, err := h.tracker.Export(args, h.now())
	if err != nil {
		h.replyError(chatID, "экспорта", err)
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: filename, Bytes: data})
	doc.Caption = "💾 Резервная копия данных"
	h.send(doc)
}
