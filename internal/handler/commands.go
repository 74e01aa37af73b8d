package handler

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const helpText = `📖 Команды трекера

⚙️ Договор:
/setup - настроить дату начала учета и начальный баланс
/setup 01.01.2020 3 - то же одной командой
/contract - текущие настройки
/reset - сбросить дату начала договора

🛠️ Вахты:
/work 03.01.2020 05.01.2020 RigA - добавить вахту (объект необязателен)
/works - список вахт
/delwork 2 - удалить вахту по номеру

🏥 Больничные:
/sick 04.01.2020 04.01.2020 - добавить больничный
/sicks - список больничных
/delsick 1 - удалить больничный по номеру

📊 Итоги:
/stats - дни и баланс на сегодня
/locations - рабочие дни по объектам
/calendar [год месяц] - календарь месяца
/export [json|yaml] - выгрузить данные файлом

🧹 /clear - удалить все вахты и больничные

Даты: ГГГГ-ММ-ДД, ДД.ММ.ГГГГ, ДД-ММ-ГГГГ или ДД.ММ (текущий год).
Все дни с начала договора, кроме вахт и больничных, считаются отдыхом.`

func (h *Handler) handleCommand(message *tgbotapi.Message) {
	command := message.Command()
	args := message.CommandArguments()

	switch command {
	case "start":
		h.sendStartMessage(message)
	case "help":
		h.reply(message.Chat.ID, helpText)

	// Договор
	case "setup":
		h.startSetup(message, args)
	case "contract":
		h.showContract(message)
	case "reset":
		h.resetContract(message)

	// Периоды
	case "work":
		h.addWorkPeriod(message, args)
	case "sick":
		h.addSickPeriod(message, args)
	case "works":
		h.showWorkPeriods(message)
	case "sicks":
		h.showSickPeriods(message)
	case "delwork":
		h.deleteWorkPeriod(message, args)
	case "delsick":
		h.deleteSickPeriod(message, args)
	case "clear":
		h.clearPeriods(message)

	// Итоги
	case "stats":
		h.showStats(message)
	case "locations":
		h.showLocations(message)
	case "calendar":
		h.showCalendar(message, args)
	case "export":
		h.exportData(message, args)

	case "cancel":
		h.reply(message.Chat.ID, "🤷 Нечего отменять.")

	default:
		h.sendUnknownCommand(message)
	}
}

func (h *Handler) sendStartMessage(message *tgbotapi.Message) {
	text := "👋 Привет! Я считаю рабочие дни, дни отдыха и больничные и веду баланс дней отдыха.\n\n"
	if !h.tracker.HasContract() {
		text += "Для начала задайте дату начала учета: /setup\n\n"
	}
	text += "Список команд: /help"

	h.reply(message.Chat.ID, text)
}

func (h *Handler) sendUnknownCommand(message *tgbotapi.Message) {
	h.reply(message.Chat.ID, "❌ Неизвестная команда. Используйте /help для списка команд.")
}
