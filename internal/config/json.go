package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		NodeID        string   `json:"node_id"`
		NodeName      string   `json:"node_name"`
		PairingSecret string   `json:"pairing_secret"`
		TokenTTL      Duration `json:"token_ttl"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		PhoneAddress   string   `json:"phone_address"`
		RequestTimeout Duration `json:"request_timeout"`
		ReconnectDelay Duration `json:"reconnect_delay"`
	} `json:"adapter,omitempty"`

	Sync struct {
		ResponseTimeout  Duration `json:"response_timeout"`
		DiscoveryTimeout Duration `json:"discovery_timeout"`
	} `json:"sync,omitempty"`

	Workers struct {
		BatteryReportInterval Duration `json:"battery_report_interval"`
		DiscoveryInterval     Duration `json:"discovery_interval"`
	} `json:"workers,omitempty"`

	Battery struct {
		SysfsRoot     string `json:"sysfs_root"`
		FallbackLevel int    `json:"fallback_level"`
	} `json:"battery,omitempty"`

	Log struct {
		File string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			NodeID:        jsonCfg.App.NodeID,
			NodeName:      jsonCfg.App.NodeName,
			PairingSecret: jsonCfg.App.PairingSecret,
			TokenTTL:      time.Duration(jsonCfg.App.TokenTTL),
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			PhoneAddress:   jsonCfg.Adapter.PhoneAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			ReconnectDelay: time.Duration(jsonCfg.Adapter.ReconnectDelay),
		},
		Sync: Sync{
			ResponseTimeout:  time.Duration(jsonCfg.Sync.ResponseTimeout),
			DiscoveryTimeout: time.Duration(jsonCfg.Sync.DiscoveryTimeout),
		},
		Workers: Workers{
			BatteryReportInterval: time.Duration(jsonCfg.Workers.BatteryReportInterval),
			DiscoveryInterval:     time.Duration(jsonCfg.Workers.DiscoveryInterval),
		},
		Battery: Battery{
			SysfsRoot:     jsonCfg.Battery.SysfsRoot,
			FallbackLevel: jsonCfg.Battery.FallbackLevel,
		},
		Log:          Log{File: jsonCfg.Log.File},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
