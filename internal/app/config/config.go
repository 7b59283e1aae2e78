// Package config holds the global settings of the service and the logic
// that fills them from command-line flags and environment variables.
package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// Config is the set of runtime settings. Environment variables take
// precedence over flags, flags over defaults.
type Config struct {
	Address          string `env:"SERVER_ADDRESS"`
	HostedOn         string `env:"BASE_URL"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"INFO"`
	DatabaseDSN      string `env:"DATABASE_DSN"`
	RedisAddr        string `env:"REDIS_ADDR"`
	FileStoragePath  string `env:"FILE_STORAGE_PATH"`
	MigrationsDir    string `env:"MIGRATIONS_DIR" envDefault:"migrations"`
	SecretKey        string `env:"SECRET_KEY"`
	TokenTTLHours    int    `env:"TOKEN_TTL_HOURS" envDefault:"24"`
	TrustedSubnet    string `env:"TRUSTED_SUBNET"`
	Region           string `env:"REGION"`
	ServiceVersion   string `env:"SERVICE_VERSION" envDefault:"v1.0.0"`
	EventsBufferSize int    `env:"EVENTS_BUFFER_SIZE" envDefault:"1024"`
}

// Sanitize normalizes the settings that have a required shape.
func (cfg *Config) Sanitize() {
	if !strings.HasSuffix(cfg.HostedOn, "/") {
		cfg.HostedOn = cfg.HostedOn + "/"
	}
}

// Settings is the global configuration object.
var Settings Config

func newConfigFromArgs(argsConfig ArgsConfig) Config {
	cfg := Settings
	cfg.Address = argsConfig.Address.String()
	cfg.HostedOn = argsConfig.HostedOn.String()
	return cfg
}

// ArgsConfig carries the flag-provided part of the configuration.
type ArgsConfig struct {
	Address  NetAddress
	HostedOn HTTPAddress
}

var argsConfig ArgsConfig

// NetAddress is a host:port pair usable as a flag.Value.
type NetAddress struct {
	Host string
	Port int
}

func (n *NetAddress) String() string {
	return n.Host + ":" + strconv.Itoa(n.Port)
}

// Set implements flag.Value.
func (n *NetAddress) Set(flagValue string) error {
	host, port, err := net.SplitHostPort(flagValue)
	if err != nil {
		return err
	}
	if host == "" && port == "" {
		n.Host = "localhost"
		n.Port = 8080
		return nil
	}
	port = strings.TrimSuffix(port, "/")
	n.Host = host
	n.Port, err = strconv.Atoi(port)
	return err
}

// HTTPAddress is a scheme://host:port triple usable as a flag.Value.
type HTTPAddress struct {
	Scheme string
	Host   string
	Port   int
}

func (h *HTTPAddress) String() string {
	return fmt.Sprintf(`%s%s:%d/`, h.Scheme, h.Host, h.Port)
}

// Set implements flag.Value.
func (h *HTTPAddress) Set(flagValue string) error {
	addressParts := strings.Split(flagValue, "://")
	if addressParts == nil {
		h.Scheme = "http://"
		h.Host = "localhost"
		h.Port = 8080
		return nil
	}
	if len(addressParts) != 2 {
		fmt.Println("wrong base address format (must be schema://host:port)")
		return errors.New("wrong base address format (must be schema://host:port)")
	}
	netAddress := new(NetAddress)
	err := netAddress.Set(addressParts[1])
	if err != nil {
		fmt.Println("error setting host:port from base address:", err)
		return err
	}
	h.Scheme = addressParts[0] + "://"
	h.Host = netAddress.Host
	h.Port = netAddress.Port
	return err
}

// ParseFlags reads the command-line flags into the global Settings.
func ParseFlags() {
	hostAddr := new(NetAddress)
	baseAddr := new(HTTPAddress)
	flag.Var(hostAddr, "a", "Address to host on host:port")
	flag.Var(baseAddr, "b", "base url for resulting short url (scheme://host:port)")
	flag.StringVar(&Settings.DatabaseDSN, "d", "", "Postgres DSN for the key-value store")
	flag.StringVar(&Settings.RedisAddr, "r", "", "Redis address for the key-value store")
	flag.StringVar(&Settings.FileStoragePath, "f", "", "path of the file journal for the in-memory store")
	flag.StringVar(&Settings.TrustedSubnet, "t", "", "CIDR of the subnet trusted to call internal endpoints")
	flag.Parse()
	if hostAddr.Host == "" && hostAddr.Port == 0 {
		hostAddr.Host = "localhost"
		hostAddr.Port = 8080
	}
	if baseAddr.Host == "" && baseAddr.Port == 0 && baseAddr.Scheme == "" {
		baseAddr.Scheme = "http://"
		baseAddr.Host = "localhost"
		baseAddr.Port = 8080
	}
	argsConfig.Address = *hostAddr
	argsConfig.HostedOn = *baseAddr
	Settings = newConfigFromArgs(argsConfig)
}

func init() {
	Settings.Address = "localhost:8080"
	Settings.HostedOn = "http://localhost:8080/"
	Settings.LogLevel = "INFO"
	Settings.MigrationsDir = "migrations"
	Settings.TokenTTLHours = 24
	Settings.ServiceVersion = "v1.0.0"
	Settings.EventsBufferSize = 1024
}
