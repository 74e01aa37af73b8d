package handler

import (
	"fmt"
	"strings"

	"vacation-tracker-bot/internal/service"
	"vacation-tracker-bot/pkg/dateutil"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	stateAwaitingContractStart  = "awaiting_contract_start"
	stateAwaitingInitialBalance = "awaiting_initial_balance:"
)

// startSetup начинает настройку договора. С аргументами настраивает сразу.
func (h *Handler) startSetup(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if h.tracker.HasContract() {
		h.reply(chatID, "❌ Договор уже настроен!\nИспользуйте /contract чтобы посмотреть его или /reset чтобы начать заново.")
		return
	}

	if parts := strings.Fields(args); len(parts) > 0 {
		if len(parts) > 2 {
			h.reply(chatID, "❌ Неверный формат. Используйте: /setup дата_начала [баланс]")
			return
		}

		start, err := dateutil.Parse(parts[0], h.now())
		if err != nil {
			h.reply(chatID, "❌ Ошибка парсинга даты начала: "+err.Error())
			return
		}

		balanceStr := "0"
		if len(parts) == 2 {
			balanceStr = parts[1]
		}
		h.finishSetup(chatID, dateutil.FormatISO(start), balanceStr)
		return
	}

	h.userStates[chatID] = stateAwaitingContractStart

	text := `⚙️ Настройка договора

Шаг 1 из 2:
📅 Отправьте дату начала учета (например, 01.01.2020):

/cancel - отменить`

	h.reply(chatID, text)
}

// handleSetupState обрабатывает шаги настройки договора
func (h *Handler) handleSetupState(message *tgbotapi.Message, state string) {
	chatID := message.Chat.ID
	text := strings.TrimSpace(message.Text)

	if state == stateAwaitingContractStart {
		start, err := dateutil.Parse(text, h.now())
		if err != nil {
			// остаемся на этом шаге
			h.reply(chatID, "❌ "+err.Error()+"\nПопробуйте еще раз или /cancel")
			return
		}

		h.userStates[chatID] = stateAwaitingInitialBalance + dateutil.FormatISO(start)

		h.reply(chatID, fmt.Sprintf(`Шаг 2 из 2:
✅ Дата начала: %s
⚖️ Отправьте начальный баланс дней отдыха (0, если не знаете; отрицательный, если вы должны дни):`,
			dateutil.FormatDisplay(start)))
		return
	}

	if strings.HasPrefix(state, stateAwaitingInitialBalance) {
		startISO := strings.TrimPrefix(state, stateAwaitingInitialBalance)
		if _, err := parseBalance(text); err != nil {
			h.reply(chatID, "❌ "+err.Error()+"\nПопробуйте еще раз или /cancel")
			return
		}

		h.finishSetup(chatID, startISO, text)
		return
	}

	// неизвестное состояние
	delete(h.userStates, chatID)
	h.logger.WithField("state", state).Warn("Unknown user state dropped")
}

func (h *Handler) finishSetup(chatID int64, startISO, balanceStr string) {
	delete(h.userStates, chatID)

	balance, err := parseBalance(balanceStr)
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	start, err := dateutil.ParseISO(startISO)
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	if err := h.tracker.SetupContract(start, balance); err != nil {
		h.replyError(chatID, "настройки договора", err)
		return
	}

	h.reply(chatID, fmt.Sprintf(`🎉 Договор настроен!

%s

Теперь добавляйте вахты командой /work, а итоги смотрите в /stats.`,
		service.FormatContract(h.tracker.State())))
}

// showContract показывает настройки договора
func (h *Handler) showContract(message *tgbotapi.Message) {
	h.reply(message.Chat.ID, service.FormatContract(h.tracker.State()))
}

// resetContract просит подтвердить сброс договора
func (h *Handler) resetContract(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if !h.tracker.HasContract() {
		h.reply(chatID, "📭 Договор не настроен. Используйте /setup")
		return
	}

	h.confirm(chatID,
		"⚠️ Сбросить дату начала договора?\nВахты и больничные останутся, но не будут учитываться, пока вы не настроите договор заново.",
		callbackConfirmReset)
}
