package main

import (
	"github.com/NomadCrew/travel-timeline-backend/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const redacted = "********"

type configView struct {
	Server struct {
		Environment    string   `yaml:"environment" json:"environment"`
		Port           string   `yaml:"port" json:"port"`
		AllowedOrigins []string `yaml:"allowed_origins" json:"allowedOrigins"`
		Version        string   `yaml:"version" json:"version"`
	} `yaml:"server" json:"server"`

	Database struct {
		Host     string `yaml:"host" json:"host"`
		Port     int    `yaml:"port" json:"port"`
		User     string `yaml:"user" json:"user"`
		Password string `yaml:"password" json:"password"`
		Name     string `yaml:"name" json:"name"`
		SSLMode  string `yaml:"ssl_mode" json:"sslMode"`
	} `yaml:"database" json:"database"`

	Redis struct {
		Address  string `yaml:"address" json:"address"`
		Password string `yaml:"password" json:"password"`
		DB       int    `yaml:"db" json:"db"`
		UseTLS   bool   `yaml:"use_tls" json:"useTls"`
	} `yaml:"redis" json:"redis"`

	Store struct {
		TripDriver        string `yaml:"trip_driver" json:"tripDriver"`
		PreferencesDriver string `yaml:"preferences_driver" json:"preferencesDriver"`
		SeedFile          string `yaml:"seed_file" json:"seedFile"`
		RunMigrations     bool   `yaml:"run_migrations" json:"runMigrations"`
	} `yaml:"store" json:"store"`

	Continents []string `yaml:"continents" json:"continents"`
}

func redact(secret string) string {
	if secret == "" {
		return ""
	}
	return redacted
}

func newConfigView(cfg *config.Config) configView {
	var v configView
	v.Server.Environment = string(cfg.Server.Environment)
	v.Server.Port = cfg.Server.Port
	v.Server.AllowedOrigins = cfg.Server.AllowedOrigins
	v.Server.Version = cfg.Server.Version

	v.Database.Host = cfg.Database.Host
	v.Database.Port = cfg.Database.Port
	v.Database.User = cfg.Database.User
	v.Database.Password = redact(cfg.Database.Password)
	v.Database.Name = cfg.Database.Name
	v.Database.SSLMode = cfg.Database.SSLMode

	v.Redis.Address = cfg.Redis.Address
	v.Redis.Password = redact(cfg.Redis.Password)
	v.Redis.DB = cfg.Redis.DB
	v.Redis.UseTLS = cfg.Redis.UseTLS

	v.Store.TripDriver = cfg.Store.TripDriver
	v.Store.PreferencesDriver = cfg.Store.PreferencesDriver
	v.Store.SeedFile = cfg.Store.SeedFile
	v.Store.RunMigrations = cfg.Store.RunMigrations

	v.Continents = cfg.Metrics.Continents
	return v
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective server configuration with secrets redacted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			view := newConfigView(cfg)
			out := cmd.OutOrStdout()
			if opts.output == outputJSON {
				return writeJSON(out, view)
			}

			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(view); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
