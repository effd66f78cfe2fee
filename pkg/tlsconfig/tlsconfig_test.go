package tlsconfig

import (
	"crypto/tls"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEmbedded(t *testing.T) {
	cfg, err := Build(Config{})
	require.NoError(t, err)

	require.Len(t, cfg.Certificates, 1)
	assert.Equal(t, uint16(tls.VersionTLS12), cfg.MinVersion)
}

func TestBuildFromFiles(t *testing.T) {
	dir := t.TempDir()
	certFile := filepath.Join(dir, "cert.pem")
	keyFile := filepath.Join(dir, "key.pem")
	require.NoError(t, os.WriteFile(certFile, embeddedCertificate, 0o600))
	require.NoError(t, os.WriteFile(keyFile, embeddedKey, 0o600))

	cfg, err := Build(Config{CertFile: certFile, KeyFile: keyFile})
	require.NoError(t, err)
	assert.Len(t, cfg.Certificates, 1)
}

func TestBuildErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.pem")
	require.NoError(t, os.WriteFile(garbage, []byte("not a pem"), 0o600))

	_, err := Build(Config{CertFile: garbage})
	assert.Error(t, err)

	_, err = Build(Config{KeyFile: garbage})
	assert.Error(t, err)

	_, err = Build(Config{CertFile: garbage, KeyFile: garbage})
	assert.Error(t, err)

	_, err = Build(Config{CertFile: filepath.Join(dir, "missing.pem"), KeyFile: garbage})
	assert.Error(t, err)
}

func TestCertPool(t *testing.T) {
	pool, err := CertPool()
	require.NoError(t, err)
	assert.NotNil(t, pool)
}
