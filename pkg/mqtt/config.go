package mqtt

import (
	"flag"
	"os"

	"github.com/denisbrodbeck/machineid"
)

// Config provides options to set up the MQTT bridge.
type Config struct {
	// BrokerURL specifies the MQTT broker to use,
	// e.g. mqtt://host:port/topic-prefix. Empty disables the bridge.
	BrokerURL string
	// ClientID overrides the machine-derived MQTT client id.
	ClientID string
}

var defaultConfig = Config{}

func init() {
	if val := os.Getenv("DR16_MQTT_URL"); val != "" {
		defaultConfig.BrokerURL = val
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.BrokerURL, "mqtt", defaultConfig.BrokerURL, "MQTT broker URL, empty to disable.")
	flag.StringVar(&defaultConfig.ClientID, "mqtt-client-id", defaultConfig.ClientID, "MQTT client ID, derived from machine ID if empty.")
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// NewQueue creates a Queue from the config.
func (c *Config) NewQueue() (*Queue, error) {
	opts, topicPrefix, err := ClientOptionsFromURL(c.BrokerURL)
	if err != nil {
		return nil, err
	}
	if clientID := c.ClientID; clientID != "" {
		opts.SetClientID(clientID)
	} else {
		opts.SetClientID("dr16-" + MachineID())
	}
	return NewQueue(opts, topicPrefix), nil
}

// MachineID retrieves the unique ID identifying the machine.
func MachineID() string {
	id, err := machineid.ID()
	if err != nil {
		panic(err)
	}
	return id
}
