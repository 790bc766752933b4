package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
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

// ParseFlags parses all configuration flags from os.Args using
// flag.CommandLine.
//
// Flags:
//
//	-a remote API base URL used by the client
//	-listen dev server listen address in format [host]:[port]
//	-d client cookie jar database path
//	-c/-config json file path with configs
//	-cookie session cookie name
//	-token session token to store before start
//	-login request and store a session token for an email
//	-logout remove the stored session before start
//	-log-file client log file path
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout client request timeout (e.g., "15s")
//	-server-timeout dev server request timeout (e.g., "30s", "1m")
func ParseFlags() (*StructuredConfig, error) {
	var serverAddress NetAddress
	var apiAddress string
	var databaseDSN string
	var jsonConfigPath string
	var sessionCookie string
	var importToken string
	var loginEmail string
	var logout bool
	var logFile string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var apiTimeout time.Duration

	fs := flag.CommandLine
	fs.StringVar(&apiAddress, "a", "", "Remote API base URL")
	fs.Var(&serverAddress, "listen", "Dev server net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Cookie jar database path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&sessionCookie, "cookie", "", "Session cookie name")
	fs.StringVar(&importToken, "token", "", "Session token to store")
	fs.StringVar(&loginEmail, "login", "", "Email to request a session token for")
	fs.BoolVar(&logout, "logout", false, "Remove the stored session")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&apiTimeout, "request-timeout", 0, "Client request timeout (e.g., 15s)")
	fs.DurationVar(&requestTimeout, "server-timeout", 0, "Dev server request timeout (e.g., 30s, 1m)")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SessionCookie: sessionCookie,
			ImportToken:   importToken,
			LoginEmail:    loginEmail,
			Logout:        logout,
			LogFile:       logFile,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    apiAddress,
			RequestTimeout: apiTimeout,
		},
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
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
