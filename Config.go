/*
File Name:  Config.go
Copyright:  2026 Vicinet s.r.o.
Author:     Vicinet developers
*/

package core

import (
	_ "embed" // Required for embedding the default config file
	"io/ioutil"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Version is the current core library version
const Version = "Alpha 1/2026"

// Config are all settings of a node.
type Config struct {
	LogFile string `yaml:"LogFile"` // Log file

	// User specific settings
	PrivateKey string `yaml:"PrivateKey"` // The Private Key, hex encoded so it can be copied manually

	// This node's own role in the vicinity.
	Competence      string   `yaml:"Competence"`      // Competence tag, e.g. "doctor".
	Interests       []string `yaml:"Interests"`       // Interest tags.
	ServicePriority int      `yaml:"ServicePriority"` // Priority when this node itself requests service. 1 is most urgent.

	// CompetenceTiers are consulted in priority order when delegating critical data.
	CompetenceTiers []string `yaml:"CompetenceTiers"`

	// DiscoveryInterval is the time in seconds between discovery rounds. Default 10.
	DiscoveryInterval int `yaml:"DiscoveryInterval"`

	// TrustDatabase is the folder for the persistent trust database. Empty keeps trust in memory only.
	TrustDatabase string `yaml:"TrustDatabase"`

	// Web API settings. APIListen is a list of IP:Port combinations. Empty disables the API.
	APIListen []string `yaml:"APIListen"`
	APIKey    string   `yaml:"APIKey"` // API key, UUID format. Empty disables authentication.

	filename string
}

//go:embed "Config Default.yaml"
var defaultConfig []byte

// LoadConfig reads the YAML configuration file. If an error is returned, the application shall exit.
// Status: see the Exit codes in Exit.go. ExitSuccess means the config was loaded.
func LoadConfig(filename string) (config *Config, status int, err error) {
	var configData []byte
	config = &Config{filename: filename}

	// check if the file is non existent or empty
	stats, err := os.Stat(filename)
	if err != nil && os.IsNotExist(err) || err == nil && stats.Size() == 0 {
		configData = defaultConfig
	} else if err != nil {
		return nil, ExitErrorConfigAccess, err
	} else if configData, err = ioutil.ReadFile(filename); err != nil {
		return nil, ExitErrorConfigRead, err
	}

	// parse the config
	if err = yaml.Unmarshal(configData, config); err != nil {
		return nil, ExitErrorConfigParse, err
	}

	return config, ExitSuccess, nil
}

func (backend *Backend) saveConfig() {
	data, err := yaml.Marshal(backend.Config)
	if err != nil {
		backend.LogError("saveConfig", "marshalling config: %v\n", err.Error())
		return
	}

	err = ioutil.WriteFile(backend.Config.filename, data, 0644)
	if err != nil {
		backend.LogError("saveConfig", "writing config '%s': %v\n", backend.Config.filename, err.Error())
		return
	}
}

// InitLog redirects subsequent log messages into the log file specified in the configuration
func (config *Config) InitLog() (err error) {
	logFile, err := os.OpenFile(config.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return err
	}
	//defer logFile.Close()	// has to remain open until program closes

	log.SetOutput(logFile)
	log.Printf("---- Vicinet Core " + Version + " ----\n")

	return nil
}
