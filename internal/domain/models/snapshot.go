package models

import "time"

// Document is the field mapping of a stored snapshot, returned to clients verbatim.
type Document map[string]interface{}

// Fixed collection names written by the trading bot.
const (
	CollectionBotStatus = "bot_status"
	CollectionPortfolio = "portfolio"
	CollectionSignals   = "signals"
)

// BotStatus is the payload served when the bot has not published a status yet.
type BotStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type Balance struct {
	Total     float64 `json:"total"`
	Available float64 `json:"available"`
	PnL       float64 `json:"pnl"`
}

// Portfolio is the payload served when no portfolio snapshot exists.
type Portfolio struct {
	Balance         Balance `json:"balance"`
	ActivePositions int     `json:"active_positions"`
}

// Entity binds a dashboard resource to its collection and its fallback payload.
type Entity struct {
	Name       string
	Collection string
	Default    func(now time.Time) interface{}
}
