// Package config loads marquee's TOML configuration.
//
// # Resolution
//
//  1. If a path is explicitly provided (the --config flag), use it
//  2. Otherwise, use ~/.config/marquee/config.toml
//  3. If the file doesn't exist, use defaults
//  4. Empty or whitespace-only values fall back to their defaults
//  5. MARQUEE_API_BASE_URL, when set, replaces api_base_url
//
// Command-line flags are applied on top of the returned Config by the CLI.
//
// # TOML Format
//
//	api_base_url = "http://localhost:8080/api"
//	placeholder_poster = "/no-image.png"
//	imdb_title_url = "https://www.imdb.com/title/%s"
//	request_timeout = "10s"
//	latest_only = true
//	probe_posters = true
//	log_file = "~/.local/state/marquee/marquee.log"
//	log_level = "info"
//
// Every key is optional. latest_only drops responses from searches or detail
// lookups that were superseded by a newer one; turn it off to let the last
// response to arrive win. log_file is tilde-expanded.
//
// # Error Handling
//
// Load returns errors for unreadable files, invalid TOML, and a
// request_timeout that is not a positive Go duration. A missing file is not
// an error.
package config
