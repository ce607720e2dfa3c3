// Package commands implements the newsreels command line: the reels UI as
// the root command and a headless list command for checking the API.
package commands
