package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	API struct {
		EventsURL   string `mapstructure:"events_url"`
		PersonsURL  string `mapstructure:"persons_url"`
		ScheduleURL string `mapstructure:"schedule_url"`
		Term        string `mapstructure:"term"`
	} `mapstructure:"api"`
	Browse struct {
		WindowDays int `mapstructure:"window_days"`
	} `mapstructure:"browse"`
	Database struct {
		Host    string `mapstructure:"host"`
		Port    string `mapstructure:"port"`
		Name    string `mapstructure:"name"`
		SSLMode string `mapstructure:"sslmode"`
	} `mapstructure:"database"`
	AWS struct {
		Region        string `mapstructure:"region"`
		UsernameParam string `mapstructure:"username_param"`
		PasswordParam string `mapstructure:"password_param"`
	} `mapstructure:"aws"`
}

func Load() *Config {
	viper.SetEnvPrefix("ACTIVITY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Register keys
	viper.BindEnv("api.events_url")
	viper.BindEnv("api.persons_url")
	viper.BindEnv("api.schedule_url")
	viper.BindEnv("api.term")
	viper.BindEnv("browse.window_days")
	viper.BindEnv("database.host")
	viper.BindEnv("database.port")
	viper.BindEnv("database.name")
	viper.BindEnv("database.sslmode")
	viper.BindEnv("aws.region")
	viper.BindEnv("aws.username_param")
	viper.BindEnv("aws.password_param")

	// Defaults
	viper.SetDefault("api.events_url", "https://calendar.byu.edu/api/Events.json")
	viper.SetDefault("api.persons_url", "https://api.byu.edu/byuapi/persons/v3")
	viper.SetDefault("api.schedule_url", "https://api.byu.edu/domains/legacy/academic/registration/studentschedule/v1")
	viper.SetDefault("api.term", "20221")
	viper.SetDefault("browse.window_days", 30)
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", "5432")
	viper.SetDefault("database.name", "activity_finder")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("aws.region", "us-west-2")
	viper.SetDefault("aws.username_param", "/ch-technical-application/dev/USERNAME")
	viper.SetDefault("aws.password_param", "/ch-technical-application/dev/PASSWORD")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Warning: Config error: %s", err)
		} else {
			log.Println("Info: config.yaml not found, using Environment Variables only.")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Fatalf("Unable to decode config: %v", err)
	}

	return &cfg
}
