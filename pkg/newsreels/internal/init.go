// Package internal contains the SDL plumbing behind the newsreels screens:
// window, fonts, theme, text, images and pointer input.
// Types and functions in this package are not part of the public API.
package internal

import _ "github.com/BrandonKowalski/certifiable" // Add CA certificates to the default trust store
