package main

import (
	"log"

	_ "github.com/joho/godotenv/autoload"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/mailer"
	"github.com/Zachkp/portfolio/internal/store"
	"github.com/Zachkp/portfolio/internal/web"
)

func main() {
	cfg := config.Load()

	site, err := content.Load(cfg.ContentPath)
	if err != nil {
		log.Fatal("Failed to load content: ", err)
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}
	defer st.Close()
	log.Println("Privacy-conscious visitor tracking initialized")

	sender := mailer.NewSMTPSender(mailer.SMTPConfig{
		Host: cfg.SMTPHost,
		Port: cfg.SMTPPort,
		User: cfg.SMTPUser,
		Pass: cfg.SMTPPass,
		To:   cfg.ToEmail,
	})
	if cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		log.Println("WARNING: SMTP credentials not configured, contact form deliveries will fail")
	}

	r := web.New(cfg, site, st, sender).Router()
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
