package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Nagrajupatel/Chat-App/internal/storage"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	storageSvc := storage.NewStorageService(db, nil, "") // No redis needed for admin CLI

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "history":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin history <user_a> <user_b>")
			os.Exit(1)
		}
		if err := dumpConversation(storageSvc, os.Args[2], os.Args[3]); err != nil {
			log.Fatalf("Error loading conversation: %v", err)
		}
	case "purge":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin purge <user_a> <user_b>")
			os.Exit(1)
		}
		deleted, err := storageSvc.DeleteConversation(os.Args[2], os.Args[3])
		if err != nil {
			log.Fatalf("Error purging conversation: %v", err)
		}
		fmt.Printf("Deleted %d messages between %s and %s.\n", deleted, os.Args[2], os.Args[3])
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

func dumpConversation(s storage.Storage, userA, userB string) error {
	messages, err := s.GetConversation(userA, userB)
	if err != nil {
		return err
	}
	if len(messages) == 0 {
		fmt.Printf("No messages between %s and %s.\n", userA, userB)
		return nil
	}
	for _, m := range messages {
		fmt.Printf("%s  %s -> %s: %s\n", m.Timestamp.Format(time.RFC3339), m.Sender, m.Receiver, m.Content)
	}
	return nil
}
