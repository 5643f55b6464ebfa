package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args (normally os.Args[1:]).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc health server address in format [host]:[port]
//	-c/-config json file path with configs
//	-secret-key session signing key
//	-cloudant-url document store URL
//	-cloudant-apikey document store IAM API key
//	-fallback-driver fallback store driver (memory, sqlite)
//	-fallback-dsn fallback SQLite DSN
//	-bcrypt-cost bcrypt work factor
//	-session-ttl session lifetime (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level minimum log level
//	-debug-endpoint enable GET /api/debug
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var jsonConfigPath string
	var secretKey string
	var cloudantURL, cloudantAPIKey string
	var fallbackDriver, fallbackDSN string
	var bcryptCost int
	var sessionTTL time.Duration
	var requestTimeout time.Duration
	var logLevel string
	var debugEndpoint bool

	flags := flag.NewFlagSet("health-portal", flag.ContinueOnError)
	flags.Var(&serverAddress, "a", "Net address host:port")
	flags.Var(&grpcServerAddress, "grpc-address", "Net grpc health server address host:port")
	flags.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flags.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flags.StringVar(&secretKey, "secret-key", "", "Session signing key")
	flags.StringVar(&cloudantURL, "cloudant-url", "", "Document store URL")
	flags.StringVar(&cloudantAPIKey, "cloudant-apikey", "", "Document store IAM API key")
	flags.StringVar(&fallbackDriver, "fallback-driver", "", "Fallback store driver (memory, sqlite)")
	flags.StringVar(&fallbackDSN, "fallback-dsn", "", "Fallback SQLite DSN")
	flags.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt work factor")
	flags.DurationVar(&sessionTTL, "session-ttl", 0, "Session lifetime (e.g., 1h, 30m)")
	flags.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flags.StringVar(&logLevel, "log-level", "", "Minimum log level")
	flags.BoolVar(&debugEndpoint, "debug-endpoint", false, "Enable GET /api/debug")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			DebugEndpoint: debugEndpoint,
		},
		Auth: Auth{
			BcryptCost: bcryptCost,
			SessionTTL: sessionTTL,
		},
		SecretKey: secretKey,
		Cloudant: Cloudant{
			APIKey: cloudantAPIKey,
			URL:    cloudantURL,
		},
		Fallback: Fallback{
			Driver: fallbackDriver,
			DSN:    fallbackDSN,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		LogLevel:     logLevel,
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on all interfaces. It validates the port range, checks
// IP correctness unless host is "localhost", and returns an error if the
// format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
