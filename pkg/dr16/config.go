package dr16

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/QDU-Robomaster/DR16/pkg/uart"
)

// DefaultTopicName is the broadcast topic carrying decoded frames.
const DefaultTopicName = "dr16_cmd"

// Config defines the configurations for the receiver.
type Config struct {
	// Device is the serial device path of the receiver link.
	Device string
	// WSURL reads frames from a websocket endpoint instead of a
	// serial device, for remote or simulated receivers.
	WSURL string
	// Topic is the broadcast topic name.
	Topic string
	// RecoverDelay is the pause after a corrupted frame.
	RecoverDelay time.Duration
}

var defaultConfig = Config{
	Device:       "/dev/ttyUSB0",
	Topic:        DefaultTopicName,
	RecoverDelay: DefaultRecoverDelay,
}

func init() {
	if val := os.Getenv("DR16_DEVICE"); val != "" {
		defaultConfig.Device = val
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Device, "device", defaultConfig.Device, "Serial device of the receiver.")
	flag.StringVar(&defaultConfig.WSURL, "ws", defaultConfig.WSURL, "WebSocket frame stream URL, overrides -device.")
	flag.StringVar(&defaultConfig.Topic, "topic", defaultConfig.Topic, "Broadcast topic name.")
	flag.DurationVar(&defaultConfig.RecoverDelay, "recover-delay", defaultConfig.RecoverDelay, "Pause after a corrupted frame.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// OpenPort opens the configured transport.
func (c *Config) OpenPort() (uart.Port, error) {
	if c.WSURL != "" {
		return uart.DialWS(c.WSURL, "http://localhost/")
	}
	if c.Device == "" {
		return nil, fmt.Errorf("no receiver device configured")
	}
	return uart.OpenSerial(c.Device, uart.DR16Config)
}

// NewReceiver creates a receiver using the config.
func (c *Config) NewReceiver(port uart.Port, pub Publisher) *Receiver {
	r := NewReceiver(port, pub)
	r.RecoverDelay = c.RecoverDelay
	return r
}
