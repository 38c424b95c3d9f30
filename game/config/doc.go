// Package config provides runtime settings for the Tower of Hanoi server.
//
// Settings are read from environment variables (a .env file is loaded by
// the main command before parsing):
//
//	HANOI_HOST              listen host (localhost)
//	HANOI_PORT              listen port (8080)
//	HANOI_DEFAULT_DISKS     disks used when a request omits n (3)
//	HANOI_SOLVE_DELAY       pause between solver moves in text mode (500ms)
//	HANOI_SESSION_TTL       idle time before a session is removed (24h)
//	HANOI_CLEANUP_INTERVAL  how often expired sessions are swept (1h)
//	NGROK_ENABLED           start a public tunnel
//	NGROK_AUTHTOKEN         tunnel auth token (NGROK_AUTH_TOKEN also accepted)
//	NGROK_DOMAIN            custom tunnel domain
//
// Usage:
//
//	settings, err := config.Load()
//	if err != nil {
//		log.Fatal(err)
//	}
//	log.Printf("listening on %s", settings.Addr())
//
// Command-line flags override individual values after loading.
package config
