package tlsconfig

import (
	"crypto/tls"
	"crypto/x509"
	_ "embed"
	"errors"
	"fmt"
)

// Self-signed pair for localhost and 127.0.0.1
//
//go:embed cert.pem
var embeddedCertificate []byte

//go:embed key.pem
var embeddedKey []byte

type Config struct {
	CertFile string
	KeyFile  string
}

func Build(c Config) (*tls.Config, error) {
	var cert tls.Certificate
	var err error

	switch {
	case c.CertFile != "" && c.KeyFile != "":
		cert, err = tls.LoadX509KeyPair(c.CertFile, c.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("load tls keypair: %w", err)
		}
	case c.CertFile != "" || c.KeyFile != "":
		return nil, errors.New("tls cert and key files must be configured together")
	default:
		cert, err = tls.X509KeyPair(embeddedCertificate, embeddedKey)
		if err != nil {
			return nil, fmt.Errorf("parse embedded tls keypair: %w", err)
		}
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}, nil
}

// CertPool trusts only the embedded certificate, for clients talking to a server using the default pair
func CertPool() (*x509.CertPool, error) {
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(embeddedCertificate) {
		return nil, errors.New("parse embedded certificate pem")
	}

	return pool, nil
}
