package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-telegram-bot-api/telegram-bot-api"

	"github.com/curveplot/curve_visualizer/config"
)

func main() {
	cfg := config.GetConfig()

	http.HandleFunc("/", handleIndex)
	http.HandleFunc("/chart", handleChart)
	http.HandleFunc("/plot", handlePlot)

	go func() {
		for {
			time.Sleep(time.Minute)
			maxAge := time.Now().Add(-time.Hour)
			purgeOldResults(maxAge)
			purgeOldChats(maxAge)
		}
	}()

	if cfg.TgToken == "" {
		log.Println("TG_TOKEN is empty, telegram bot disabled")
		log.Println("listen on: http://localhost" + cfg.ListenAddr)
		log.Fatalln(http.ListenAndServe(cfg.ListenAddr, nil))
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TgToken)
	if err != nil {
		log.Fatal("tg error ", err)
	}
	log.Printf("Authorized on account %s", bot.Self.UserName)

	go func() {
		log.Println("listen on: http://localhost" + cfg.ListenAddr)
		err := http.ListenAndServe(cfg.ListenAddr, nil)
		if err != nil {
			log.Println("Error starting server:", err)
			os.Exit(1)
		}
	}()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates, err := bot.GetUpdatesChan(u)
	if err != nil {
		log.Fatal("tg updates error ", err)
	}
	for update := range updates {
		if update.Message == nil {
			continue
		}
		if update.Message.Text != "" {
			handleText(bot, update)
		}
	}
}
