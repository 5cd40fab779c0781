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
	Addr     string   `koanf:"addr"`
	ApiKey   string   `koanf:"apikey"`
	Storage  Storage  `koanf:"storage"`
	Database Database `koanf:"db"`
	Backup   Backup   `koanf:"backup"`
	Work     Work     `koanf:"work"`
}

type Storage struct {
	// Backend selects the persistence collaborator: "database" keeps the
	// document collections in the configured SQL database, "file" keeps them
	// as JSON files under Dir.
	Backend string `koanf:"backend"`
	Dir     string `koanf:"dir"`
}

type Database struct {
	// Driver is "sqlite" or "postgres".
	Driver string `koanf:"driver"`
	// Path is the SQLite database file, used only with the sqlite driver.
	Path   string `koanf:"path"`
	Host   string `koanf:"host"`
	Port   int    `koanf:"port"`
	User   string `koanf:"user"`
	Pass   string `koanf:"pass"`
	Name   string `koanf:"name"`
	Schema string `koanf:"schema"`
}

type Backup struct {
	Enabled bool   `koanf:"enabled"`
	Dir     string `koanf:"dir"`
}

// Work carries the default work-day shape and the hourly rates applied when
// no settings document has been stored yet.
type Work struct {
	DefaultStartTime    string `koanf:"defaultstarttime"`
	DefaultEndTime      string `koanf:"defaultendtime"`
	DefaultPauseMinutes int    `koanf:"defaultpauseminutes"`
	Rates               []Rate `koanf:"rates"`
}

type Rate struct {
	Type string  `koanf:"type"`
	Rate float64 `koanf:"rate"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Addr: ":8282",
		Storage: Storage{
			Backend: "database",
			Dir:     "./data",
		},
		Database: Database{
			Driver: "sqlite",
			Path:   "./data/riso.db",
			Host:   "localhost",
			Port:   5432,
			User:   "riso",
			Pass:   "",
			Name:   "riso",
			Schema: "riso",
		},
		Backup: Backup{
			Enabled: false,
			Dir:     "./backup",
		},
		Work: Work{
			DefaultStartTime:    "07:30",
			DefaultEndTime:      "16:30",
			DefaultPauseMinutes: 60,
			Rates: []Rate{
				{Type: "Ordinaria", Rate: 18.50},
				{Type: "Straordinaria", Rate: 27.75},
				{Type: "Festiva", Rate: 35.00},
				{Type: "Ferie", Rate: 18.50},
				{Type: "Permesso", Rate: 18.50},
				{Type: "Malattia", Rate: 15.00},
				{Type: "104", Rate: 18.50},
			},
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
		Prefix: "RISO_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "RISO_")), "_", ".")
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
