package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/studiosite/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-g string   gRPC health bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-s string   session signing secret
//	-t int      session validity, minutes
//	-u string   admin email
//	-p string   admin password or bcrypt hash
//	-l int      maximum page size for list endpoints
//	-w string   static directory served for pages
//
// Args are filtered with flagx.FilterArgs first so that -c/-config and
// -env, owned by other layers, do not trip the parser.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-g", "-d", "-s", "-t", "-u", "-p", "-l", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "address and port of the gRPC health endpoint")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "session secret key")

	sessionTTL := fs.Int("t", int(config.SessionTTL.Minutes()), "session validity (in minutes)")

	fs.StringVar(&config.AdminEmail, "u", config.AdminEmail, "admin email")
	fs.StringVar(&config.AdminPassword, "p", config.AdminPassword, "admin password or bcrypt hash")
	fs.IntVar(&config.MaxPageLimit, "l", config.MaxPageLimit, "maximum page size")
	fs.StringVar(&config.StaticDir, "w", config.StaticDir, "static pages directory")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionTTL = time.Duration(*sessionTTL) * time.Minute
}
