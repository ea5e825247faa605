package chat

const (
	LogPrefixAsk       = "internal.chat.usecase.Ask"
	LogPrefixAfterTurn = "internal.chat.usecase.afterReply"
	LogPrefixContext   = "internal.chat.usecase.BuildContext"
)

const (
	DefaultHistoryWindow = 10
	DefaultHistoryLimit  = 20
	MaxHistoryLimit      = 200
)
