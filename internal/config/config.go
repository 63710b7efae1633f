package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string `mapstructure:"PORT"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`

	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`

	RedisAddr string `mapstructure:"REDIS_ADDR"`

	AccessSecret  string `mapstructure:"ACCESS_SECRET"`
	RefreshSecret string `mapstructure:"REFRESH_SECRET"`

	// Почта (SendGrid)
	SendgridKey string `mapstructure:"SENDGRID_API_KEY"`
	SenderEmail string `mapstructure:"SENDER_EMAIL"`
	FrontendURL string `mapstructure:"FRONTEND_URL"`

	// SSLCommerz. Если StoreID пустой - работаем в демо-режиме
	SSLCzStoreID     string `mapstructure:"SSLCZ_STORE_ID"`
	SSLCzStorePasswd string `mapstructure:"SSLCZ_STORE_PASSWD"`
	SSLCzSandbox     bool   `mapstructure:"SSLCZ_SANDBOX"`

	// Супер-админы: список email через запятую + префиксный токен
	AdminEmails     string `mapstructure:"ADMIN_EMAILS"`
	SuperAdminToken string `mapstructure:"SUPER_ADMIN_TOKEN"`
}

func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	// ВАЖНО: Явно биндим
	viper.BindEnv("PORT")
	viper.BindEnv("ALLOWED_ORIGINS")
	viper.BindEnv("DB_HOST")
	viper.BindEnv("DB_PORT")
	viper.BindEnv("DB_USER")
	viper.BindEnv("DB_PASSWORD")
	viper.BindEnv("DB_NAME")
	viper.BindEnv("REDIS_ADDR")
	viper.BindEnv("ACCESS_SECRET")
	viper.BindEnv("REFRESH_SECRET")
	viper.BindEnv("SENDGRID_API_KEY")
	viper.BindEnv("SENDER_EMAIL")
	viper.BindEnv("FRONTEND_URL")
	viper.BindEnv("SSLCZ_STORE_ID")
	viper.BindEnv("SSLCZ_STORE_PASSWD")
	viper.BindEnv("SSLCZ_SANDBOX")
	viper.BindEnv("ADMIN_EMAILS")
	viper.BindEnv("SUPER_ADMIN_TOKEN")

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	err = viper.Unmarshal(&config)
	return
}

// Список email супер-админов из конфига
func (c Config) AdminEmailList() []string {
	if c.AdminEmails == "" {
		return nil
	}
	parts := strings.Split(c.AdminEmails, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if e := strings.TrimSpace(strings.ToLower(p)); e != "" {
			out = append(out, e)
		}
	}
	return out
}
