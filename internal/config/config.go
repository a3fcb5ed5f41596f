package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Host       string     `koanf:"host"`
	Frontend   Frontend   `koanf:"frontend"`
	Google     Google     `koanf:"google"`
	OpenAI     OpenAI     `koanf:"openai"`
	Scheduling Scheduling `koanf:"scheduling"`
	Database   Database   `koanf:"db"`
}

type Frontend struct {
	Enabled bool `koanf:"enabled"`
}

type Google struct {
	ClientId     string `koanf:"clientid"`
	ClientSecret string `koanf:"clientsecret"`
}

type OpenAI struct {
	ApiKey string `koanf:"apikey"`
	Model  string `koanf:"model"`
}

// Scheduling holds the working-hours window used when scanning for free
// meeting slots and the slot duration applied when the caller does not
// request one explicitly.
type Scheduling struct {
	WorkdayStartHour       int `koanf:"workdaystarthour"`
	WorkdayEndHour         int `koanf:"workdayendhour"`
	DefaultDurationMinutes int `koanf:"defaultdurationminutes"`
}

type Database struct {
	Host   string `koanf:"host"`
	Port   int    `koanf:"port"`
	User   string `koanf:"user"`
	Pass   string `koanf:"pass"`
	Name   string `koanf:"name"`
	Schema string `koanf:"schema"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Host: "http://localhost:3000",
		Frontend: Frontend{
			Enabled: true,
		},
		OpenAI: OpenAI{
			Model: "gpt-4o-mini",
		},
		Scheduling: Scheduling{
			WorkdayStartHour:       9,
			WorkdayEndHour:         17,
			DefaultDurationMinutes: 60,
		},
		Database: Database{
			Host:   "localhost",
			Port:   5432,
			User:   "workspaceai",
			Pass:   "",
			Name:   "workspaceai",
			Schema: "workspaceai",
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "WORKSPACEAI_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "WORKSPACEAI_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
