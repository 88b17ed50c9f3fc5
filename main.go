package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/Shahid-Raza547/civiltech-backend/config"
	"github.com/Shahid-Raza547/civiltech-backend/handlers"
	"github.com/Shahid-Raza547/civiltech-backend/middleware"
	"github.com/Shahid-Raza547/civiltech-backend/routes"
)

var (
	Version   = "dev"
	BuildTime = ""
)

func main() {
	versionFlag := flag.Bool("version", false, "Print version info and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("Version:   %s\n", Version)
		fmt.Printf("BuildTime: %s\n", BuildTime)
		os.Exit(0)
	}

	cfg := config.Load()

	db, err := config.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := config.Migrate(db, cfg); err != nil {
		log.Fatalf("could not run migrations: %v", err)
	}

	features := config.DetectFeatures(db)
	tokens := middleware.NewTokenService(cfg.JWTSecret)
	files := handlers.NewFileStore(cfg.UploadDir)

	h := handlers.New(db, features, tokens, files)
	handler := routes.Register(h, cfg.UploadDir)

	log.Println("Server starting at port", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
