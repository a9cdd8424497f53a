// SPDX-License-Identifier: MIT
package tls

import (
	"crypto/tls"
	"fmt"

	"github.com/thatcatcamp/sectioncss/internal/config"
)

// Config points at a PEM certificate chain and key supplied by the operator
type Config struct {
	Enabled  bool
	CertFile string
	KeyFile  string
	Port     string
}

// LoadConfig reads the server.tls_* keys
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Enabled:  config.GetBool("server.tls_enabled"),
		CertFile: config.GetString("server.tls_cert"),
		KeyFile:  config.GetString("server.tls_key"),
		Port:     config.GetString("server.https_port"),
	}

	if cfg.Enabled {
		if cfg.CertFile == "" || cfg.KeyFile == "" {
			return nil, fmt.Errorf("server.tls_cert and server.tls_key are required when TLS is enabled")
		}
		if cfg.Port == "" {
			cfg.Port = "8443"
		}
	}
	return cfg, nil
}

// ServerConfig loads the key pair and returns a TLS 1.2+ server config
func (c *Config) ServerConfig() (*tls.Config, error) {
	pair, err := tls.LoadX509KeyPair(c.CertFile, c.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load certificate: %w", err)
	}
	return &tls.Config{
		MinVersion:   tls.VersionTLS12,
		Certificates: []tls.Certificate{pair},
	}, nil
}
