package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Stats          Stats          `mapstructure:",squash"`
	DailyStatsSync DailyStatsSync `mapstructure:",squash"`
	SecretKey      string         `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Stats regroupe les réglages du moteur de statistiques : seuils par défaut
// (utilisés par le planificateur d'instantanés, jamais par l'endpoint HTTP
// qui exige les trois seuils explicitement) et politique des dépenses sans
// catégorie.
type Stats struct {
	SeuilMataDefaut       int64 `mapstructure:"stats_seuil_mata"`
	SeuilMlcDefaut        int64 `mapstructure:"stats_seuil_mlc"`
	SeuilMataPanierDefaut int64 `mapstructure:"stats_seuil_mata_panier"`
	// BucketNonCategorise : true = les dépenses sans catégorie vont dans le
	// seau non_categorise ; false = elles sont rejetées du rapport
	BucketNonCategorise bool `mapstructure:"stats_bucket_non_categorise"`
}

type DailyStatsSync struct {
	CronSchedule string `mapstructure:"daily_stats_sync_cron"`
	Enabled      bool   `mapstructure:"daily_stats_sync_enabled"`
	// RetentionDays : les instantanés plus anciens sont purgés après chaque
	// génération ; 0 = conservation illimitée
	RetentionDays int `mapstructure:"daily_stats_sync_retention_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/livraison")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Seuils par défaut observés en production (FCFA)
	viper.SetDefault("STATS_SEUIL_MATA", 20000)
	viper.SetDefault("STATS_SEUIL_MLC", 1750)
	viper.SetDefault("STATS_SEUIL_MATA_PANIER", 10000)
	viper.SetDefault("STATS_BUCKET_NON_CATEGORISE", true)

	viper.SetDefault("DAILY_STATS_SYNC_CRON", "0 5 * * *") // Tous les jours à 5h du matin
	viper.SetDefault("DAILY_STATS_SYNC_ENABLED", false)
	viper.SetDefault("DAILY_STATS_SYNC_RETENTION_DAYS", 90)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Charger d'abord le fichier .env avec godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Lecture du .env par Viper (optionnelle, godotenv a déjà chargé)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Variables chargées par godotenv (viper n'a pas pu lire .env):", err)
	} else {
		logrus.Info("Fichier .env lu par Viper avec succès")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile charge le fichier .env avec godotenv en essayant plusieurs
// emplacements connus
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Impossible d'obtenir le répertoire courant:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Fichier .env chargé avec succès depuis:", location)
			return
		}
	}

	logrus.Warn("Aucun fichier .env trouvé dans les emplacements connus")
}
