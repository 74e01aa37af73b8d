package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Client struct {
	Bot          *tgbotapi.BotAPI
	UpdateConfig tgbotapi.UpdateConfig
}

func NewClient(token string, debug bool) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	bot.Debug = debug

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60

	return &Client{
		Bot:          bot,
		UpdateConfig: updateConfig,
	}, nil
}

// Send отправляет сообщение или документ
func (c *Client) Send(msg tgbotapi.Chattable) error {
	_, err := c.Bot.Send(msg)
	return err
}

// Answer подтверждает нажатие inline-кнопки
func (c *Client) Answer(callbackID, text string) error {
	_, err := c.Bot.Request(tgbotapi.NewCallback(callbackID, text))
	return err
}
