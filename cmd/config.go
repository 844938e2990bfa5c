package cmd

type Config struct {
	HTTPPort       string
	TelegramToken  string
	TelegramChatID string
	OrdersFilePath string
}
