package handler

import (
	"fmt"

	"vacation-tracker-bot/internal/service"
	"vacation-tracker-bot/pkg/dateutil"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// addWorkPeriod добавляет вахту
func (h *Handler) addWorkPeriod(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if args == "" {
		h.replyMarkdown(chatID,
			`🛠️ *Добавление вахты*

Формат команды:
/work дата_начала дата_окончания [объект]

Примеры:
/work 03.01.2020 05.01.2020 RigA
→ Вахта с 3 по 5 января 2020 на объекте RigA

/work 10.02 20.02
→ Вахта в текущем году без объекта

💡 Больничный в дни вахты считается больничным.`)
		return
	}

	parsed, err := parsePeriodArgs(args, h.now(), true)
	if err != nil {
		h.reply(chatID, "❌ Неверный формат: "+err.Error()+"\nИспользуйте: /work дата_начала дата_окончания [объект]")
		return
	}

	period, err := h.tracker.AddWorkPeriod(parsed.start, parsed.end, parsed.location)
	if err != nil {
		h.replyRejected(chatID, "добавления вахты", err)
		return
	}

	response := fmt.Sprintf(`✅ Вахта добавлена!

🛠️ Период: %s - %s
📅 Количество дней: %d`,
		dateutil.FormatDisplay(period.StartDate),
		dateutil.FormatDisplay(period.EndDate),
		period.Days(),
	)
	if period.Location != "" {
		response += "\n📍 Объект: " + period.Location
	}

	h.reply(chatID, response)
}

// addSickPeriod добавляет больничный
func (h *Handler) addSickPeriod(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if args == "" {
		h.replyMarkdown(chatID,
			`🏥 *Добавление больничного*

Формат команды:
/sick дата_начала дата_окончания

Пример:
/sick 04.01.2020 04.01.2020
→ Больничный на один день 4 января 2020

💡 Дни больничного не расходуют и не пополняют баланс.`)
		return
	}

	parsed, err := parsePeriodArgs(args, h.now(), false)
	if err != nil {
		h.reply(chatID, "❌ Неверный формат: "+err.Error()+"\nИспользуйте: /sick дата_начала дата_окончания")
		return
	}

	period, err := h.tracker.AddSickPeriod(parsed.start, parsed.end)
	if err != nil {
		h.replyRejected(chatID, "добавления больничного", err)
		return
	}

	h.reply(chatID, fmt.Sprintf(`✅ Больничный добавлен!

🏥 Период: %s - %s
📅 Количество дней: %d`,
		dateutil.FormatDisplay(period.StartDate),
		dateutil.FormatDisplay(period.EndDate),
		period.Days(),
	))
}

func (h *Handler) showWorkPeriods(message *tgbotapi.Message) {
	h.reply(message.Chat.ID, service.FormatWorkPeriods(h.tracker.WorkPeriods()))
}

func (h *Handler) showSickPeriods(message *tgbotapi.Message) {
	h.reply(message.Chat.ID, service.FormatSickPeriods(h.tracker.SickPeriods()))
}

// deleteWorkPeriod удаляет вахту по номеру из /works
func (h *Handler) deleteWorkPeriod(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	index, err := parseIndex(args)
	if err != nil {
		h.reply(chatID, "❌ "+err.Error()+"\nНомера вахт: /works")
		return
	}

	removed, err := h.tracker.DeleteWorkPeriod(index)
	if err != nil {
		h.replyRejected(chatID, "удаления вахты", err)
		return
	}

	h.reply(chatID, fmt.Sprintf("🗑️ Вахта %s - %s удалена.",
		dateutil.FormatDisplay(removed.StartDate), dateutil.FormatDisplay(removed.EndDate)))
}

// deleteSickPeriod удаляет больничный по номеру из /sicks
func (h *Handler) deleteSickPeriod(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	index, err := parseIndex(args)
	if err != nil {
		h.reply(chatID, "❌ "+err.Error()+"\nНомера больничных: /sicks")
		return
	}

	removed, err := h.tracker.DeleteSickPeriod(index)
	if err != nil {
		h.replyRejected(chatID, "удаления больничного", err)
		return
	}

	h.reply(chatID, fmt.Sprintf("🗑️ Больничный %s - %s удален.",
		dateutil.FormatDisplay(removed.StartDate), dateutil.FormatDisplay(removed.EndDate)))
}

// clearPeriods просит подтвердить удаление всех периодов
func (h *Handler) clearPeriods(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if len(h.tracker.WorkPeriods()) == 0 && len(h.tracker.SickPeriods()) == 0 {
		h.reply(chatID, "📭 Удалять нечего: вахт и больничных нет.")
		return
	}

	h.confirm(chatID, "⚠️ Удалить все вахты и больничные?\nЭто действие нельзя отменить.", callbackConfirmClear)
}
