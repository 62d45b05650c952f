// telegram_handler.go
package main

import (
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/pivolan/go_utils"

	"github.com/curveplot/curve_visualizer/config"
	"github.com/curveplot/curve_visualizer/plot"
)

var (
	chatMu          sync.Mutex
	chatSampleSizes = map[int64]int{}
	chatLastSeen    = map[int64]time.Time{}
)

const helpText = `Hi! 👋

Send me a description of your score statistics and I will draw the expected normal distribution curve.

The description must contain these exact phrases:
- "average is N%"
- "deviation of N%"
- "from N% to N%"

Example:
"The class average is 77.31% with a standard deviation of 15.17%. Scores ranged from 24% to 100%."

Commands:
/samples N - set the sample size used to scale the curve
/help - show this message`

func handleText(bot *tgbotapi.BotAPI, update tgbotapi.Update) {
	message := update.Message

	if cmd := message.Command(); cmd != "" {
		handleCommand(bot, message, cmd)
		return
	}

	sampleSize := sampleSizeForChat(message.Chat.ID)
	result := Visualize(message.Text, strconv.Itoa(sampleSize))
	if result.State == StateError {
		msg := tgbotapi.NewMessage(message.Chat.ID, result.ErrorMessage)
		bot.Send(msg)
		return
	}

	formattedStats := GenerateStatsTable(result.Stats, result.SampleSize, result.Points)
	msg := tgbotapi.NewMessage(message.Chat.ID, "<pre>\n"+formattedStats+"\n</pre>")
	msg.ParseMode = tgbotapi.ModeHTML
	bot.Send(msg)

	labels, values := curveSeries(result.Points)
	png, err := plot.DrawCurve(plot.NewCurveData(labels, values, curveGraphName))
	if err != nil {
		log.Printf("Error rendering curve for chat %d: %v", message.Chat.ID, err)
		return
	}
	data := tgbotapi.FileBytes{Name: "curve" + time.Now().Format("20060102-150405") + ".png", Bytes: png}
	doc := tgbotapi.NewDocumentUpload(message.Chat.ID, data)
	doc.Caption = fmt.Sprintf("Expected score distribution for %d samples", result.SampleSize)
	bot.Send(doc)
}

func handleCommand(bot *tgbotapi.BotAPI, message *tgbotapi.Message, cmd string) {
	switch {
	case go_utils.InArray(cmd, []string{"start", "help"}):
		msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
		bot.Send(msg)
	case cmd == "samples":
		n, err := ParseSampleSize(message.CommandArguments())
		if err != nil {
			msg := tgbotapi.NewMessage(message.Chat.ID, err.Error())
			bot.Send(msg)
			return
		}
		setChatSampleSize(message.Chat.ID, n)
		msg := tgbotapi.NewMessage(message.Chat.ID, fmt.Sprintf("Sample size set to %d", n))
		bot.Send(msg)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Unknown command, see /help")
		bot.Send(msg)
	}
}

func sampleSizeForChat(chatID int64) int {
	chatMu.Lock()
	defer chatMu.Unlock()
	chatLastSeen[chatID] = time.Now()
	if n, ok := chatSampleSizes[chatID]; ok {
		return n
	}
	return config.GetConfig().DefaultSampleSize
}

func setChatSampleSize(chatID int64, n int) {
	chatMu.Lock()
	defer chatMu.Unlock()
	chatSampleSizes[chatID] = n
	chatLastSeen[chatID] = time.Now()
}

func purgeOldChats(maxAge time.Time) {
	chatMu.Lock()
	defer chatMu.Unlock()
	for chatID, seen := range chatLastSeen {
		if seen.Before(maxAge) {
			delete(chatSampleSizes, chatID)
			delete(chatLastSeen, chatID)
		}
	}
}
