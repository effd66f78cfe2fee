package api

import (
	"github.com/travigo/nextrip-test-server/pkg/tlsconfig"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "run the nextrip test server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "listen",
				Value:   "0.0.0.0:3000",
				Usage:   "listen target for the HTTPS server",
				EnvVars: []string{"NEXTRIP_LISTEN"},
			},
			&cli.StringFlag{
				Name:    "cert-file",
				Usage:   "PEM certificate replacing the embedded self-signed one",
				EnvVars: []string{"NEXTRIP_TLS_CERT_FILE"},
			},
			&cli.StringFlag{
				Name:    "key-file",
				Usage:   "PEM private key replacing the embedded self-signed one",
				EnvVars: []string{"NEXTRIP_TLS_KEY_FILE"},
			},
			&cli.StringFlag{
				Name:    "metrics-listen",
				Usage:   "listen target for the plain HTTP metrics server, disabled when empty",
				EnvVars: []string{"NEXTRIP_METRICS_LISTEN"},
			},
		},
		Action: func(c *cli.Context) error {
			return SetupServer(c.Context, ServerConfig{
				Listen:        c.String("listen"),
				MetricsListen: c.String("metrics-listen"),
				TLS: tlsconfig.Config{
					CertFile: c.String("cert-file"),
					KeyFile:  c.String("key-file"),
				},
			})
		},
	}
}
