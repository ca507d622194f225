package main

import (
	"context"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/bodul/xword"
)

func main() {
	// A missing .env file is fine, the environment may be set directly.
	godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	ctx := context.Background()

	projectID := os.Getenv("GCP_PROJECT_ID")

	var gemini *xword.GeminiClient
	if projectID != "" {
		var err error
		gemini, err = xword.NewGeminiClient(ctx, projectID, os.Getenv("GCP_REGION"))
		if err != nil {
			log.Fatal("could not initialize Gemini", "err", err)
		}
		defer gemini.Close()
		log.Info("Gemini client ready", "project", projectID)
	} else {
		log.Warn("GCP_PROJECT_ID not set, photo extraction disabled")
	}

	srv := xword.NewServer(xword.NewStore(), gemini)

	log.Info("server listening", "addr", "http://localhost:"+port)
	if err := http.ListenAndServe(":"+port, srv); err != nil {
		log.Fatal("server stopped", "err", err)
	}
}
