/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"
	"log"

	"github.com/Sarthak-Jamdade/CEP-Review1/internal/config"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/database"
	"github.com/spf13/cobra"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the fixed hostel admin accounts",
	Long: `Insert the four fixed hostel admin accounts if they do not exist yet.
The command is idempotent: admins already present are left untouched.
Seeded admins log in with the default password "admin123" and should
change it immediately.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. 加载配置
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// 2. 连接数据库并迁移
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect database: %w", err)
		}
		defer func() {
			sqlDB, _ := db.DB()
			if sqlDB != nil {
				sqlDB.Close()
			}
		}()

		if err := database.Migrate(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		// 3. 写入固定管理员
		log.Println("Seeding fixed admin accounts...")
		created, err := database.SeedAdmins(db)
		if err != nil {
			return fmt.Errorf("failed to seed admins: %w", err)
		}

		log.Printf("Seed completed: %d admin(s) created", created)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().String("config", "", "Config file path (default: config.yaml)")
}
