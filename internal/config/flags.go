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

func newFlagSet() *flag.FlagSet {
	name := "watchface-sync"
	if len(os.Args) > 0 {
		name = os.Args[0]
	}
	return flag.NewFlagSet(name, flag.ContinueOnError)
}

// parseFlags registers all configuration flags on fs and parses args.
//
// Flags:
//
//	-a companion http address in format [host]:[port]
//	-grpc-address companion grpc address in format [host]:[port]
//	-phone wearable: companion address (host:port or URL)
//	-d database DSN
//	-c/-config json file path with configs
//	-node-id node identifier
//	-node-name node display name
//	-pairing-secret shared pairing secret
//	-request-timeout request timeout (e.g., "5s")
//	-response-timeout ack wait timeout (e.g., "5s")
//	-discovery-timeout loading state timeout (e.g., "5s")
//	-battery-interval battery report interval (e.g., "1m")
//	-log-file wearable log file path
func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var phoneAddress string
	var databaseDSN string
	var jsonConfigPath string
	var nodeID, nodeName string
	var pairingSecret string
	var requestTimeout time.Duration
	var responseTimeout, discoveryTimeout time.Duration
	var batteryInterval time.Duration
	var logFile string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&phoneAddress, "phone", "", "Companion address")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&nodeID, "node-id", "", "Node identifier")
	fs.StringVar(&nodeName, "node-name", "", "Node display name")
	fs.StringVar(&pairingSecret, "pairing-secret", "", "Shared pairing secret")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 5s)")
	fs.DurationVar(&responseTimeout, "response-timeout", 0, "Acknowledgement timeout (e.g., 5s)")
	fs.DurationVar(&discoveryTimeout, "discovery-timeout", 0, "Discovery timeout (e.g., 5s)")
	fs.DurationVar(&batteryInterval, "battery-interval", 0, "Battery report interval (e.g., 1m)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			NodeID:        nodeID,
			NodeName:      nodeName,
			PairingSecret: pairingSecret,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			PhoneAddress:   phoneAddress,
			RequestTimeout: requestTimeout,
		},
		Sync: Sync{
			ResponseTimeout:  responseTimeout,
			DiscoveryTimeout: discoveryTimeout,
		},
		Workers: Workers{
			BatteryReportInterval: batteryInterval,
		},
		Log:          Log{File: logFile},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// It returns an empty string when neither Host nor Port are set.
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
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
