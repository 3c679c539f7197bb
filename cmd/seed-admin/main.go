package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"recipe-sharing-backend/internal/config"
	"recipe-sharing-backend/internal/database"
	"recipe-sharing-backend/internal/models"
	"recipe-sharing-backend/internal/repository"
	"recipe-sharing-backend/pkg/utils"

	"github.com/spf13/cobra"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates the seed-admin command.
func NewRootCmd() *cobra.Command {
	cfg := config.LoadConfig()
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Create the administrator account",
		Long: `Create the administrator account if no user with the given email
exists. Defaults come from ADMIN_NAME, ADMIN_EMAIL and ADMIN_PASSWORD.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			utils.NewLogger(cfg.Server.GinMode)

			db, err := database.Connect(cfg)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}

			return seedAdmin(cmd.Context(), repository.NewUserRepo(db), cmd.OutOrStdout(), name, email, password)
		},
	}

	cmd.Flags().StringVar(&name, "name", cfg.Admin.Name, "admin display name")
	cmd.Flags().StringVar(&email, "email", cfg.Admin.Email, "admin email")
	cmd.Flags().StringVar(&password, "password", cfg.Admin.Password, "admin password")

	return cmd
}

type adminStore interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
}

func seedAdmin(ctx context.Context, store adminStore, out io.Writer, name, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return errors.New("admin email and password are required")
	}
	if len(password) < 6 {
		return errors.New("admin password must be at least 6 characters long")
	}

	if _, err := store.FindUserByEmail(ctx, email); err == nil {
		fmt.Fprintf(out, "admin %s already exists\n", email)
		return nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("look up admin: %w", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &models.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	if err := store.CreateUser(ctx, admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	fmt.Fprintf(out, "admin %s created with id %d\n", email, admin.ID)
	return nil
}
