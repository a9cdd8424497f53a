// SPDX-License-Identifier: MIT
package tls

import (
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"strings"
	"time"
)

// CertificateStatus describes the leaf certificate being served
type CertificateStatus struct {
	Subject         string
	DNSNames        []string
	Issuer          string
	NotBefore       time.Time
	NotAfter        time.Time
	DaysUntilExpiry int
}

// Status parses the first certificate in CertFile
func (c *Config) Status(now time.Time) (*CertificateStatus, error) {
	certPEM, err := os.ReadFile(c.CertFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate: %w", err)
	}

	block, _ := pem.Decode(certPEM)
	if block == nil || block.Type != "CERTIFICATE" {
		return nil, fmt.Errorf("%s: no PEM certificate found", c.CertFile)
	}

	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse certificate: %w", err)
	}

	return &CertificateStatus{
		Subject:         cert.Subject.CommonName,
		DNSNames:        cert.DNSNames,
		Issuer:          cert.Issuer.CommonName,
		NotBefore:       cert.NotBefore,
		NotAfter:        cert.NotAfter,
		DaysUntilExpiry: int(cert.NotAfter.Sub(now).Hours() / 24),
	}, nil
}

// Names returns the subject and DNS names for display
func (s *CertificateStatus) Names() string {
	names := append([]string{}, s.DNSNames...)
	if len(names) == 0 {
		names = append(names, s.Subject)
	}
	return strings.Join(names, ",")
}
